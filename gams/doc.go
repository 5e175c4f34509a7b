// Package gams renders puzzle data in the shapes a GAMS model loads: a
// scalar-parameter include file with $set directives, and one CSV table per
// section indexed by line label (i1.., j1..) and block position (t1..).
package gams
