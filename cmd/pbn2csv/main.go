// Command pbn2csv converts a webpbn.com .cwc puzzle export into the CSV
// tables and include file read by the nonogram GAMS model.
//
// To convert puzzle #48, export it from https://webpbn.com/export.cgi as a
// ".CWC file", save it as 48.cwc and run:
//
//	pbn2csv 48
//
// This writes p48.inc, p48sR.csv, p48cR.csv, p48sC.csv and p48cC.csv next to
// the input.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
