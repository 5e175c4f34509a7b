// Package cwc reads puzzle definitions in the webpbn.com ".cwc" export format.
//
// A .cwc document is strictly positional: three header lines (row count,
// column count, color count) followed by four sections of whitespace-separated
// tokens, one line per row or column:
//
//   - row block lengths
//   - row block colors
//   - column block lengths
//   - column block colors
//
// Sections are separated by a single line that is consumed without being
// inspected. Nothing in the format is self-describing, so the header is the
// only source of truth for how many lines each section spans.
//
// The package is structured around a single read cursor:
//
//   - Reader: hands out input lines one at a time and remembers the line
//     number of the last one, so errors can point at a position.
//   - ParseHeader and Reader.BlockLine: turn lines into typed values.
//   - Errors: ParseError and its specializations.
//
// Usage:
//
//	r := cwc.NewReader(f)
//	h, err := cwc.ParseHeader(r)
//	if err != nil {
//	    return err
//	}
//	for _, sec := range cwc.Sections {
//	    for i := 0; i < h.Count(sec.Axis); i++ {
//	        line, err := r.BlockLine()
//	        ...
//	    }
//	}
package cwc
