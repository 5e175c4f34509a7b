package gams

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/kamilkhanlab/nonogram-ilp/cwc"
)

// newWriter returns a CSV writer in the dialect the model's data loader
// expects: comma separated, minimal quoting, CRLF records.
func newWriter(w io.Writer) *csv.Writer {
	cw := csv.NewWriter(w)
	cw.UseCRLF = true
	return cw
}

// writeRecord writes one record through cw. A record holding a single empty
// field is written as "" so it is not mistaken for a blank line; encoding/csv
// would emit nothing for it.
func writeRecord(w io.Writer, cw *csv.Writer, record []string) error {
	if len(record) != 1 || record[0] != "" {
		return cw.Write(record)
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\"\"\r\n")
	return err
}

// lineLabel returns the body-row label for position k (0-based) on axis a.
func lineLabel(a cwc.Axis, k int) string {
	if a == cwc.Rows {
		return "i" + strconv.Itoa(k+1)
	}
	return "j" + strconv.Itoa(k+1)
}

// HeaderRow returns the header record for a table with n block positions.
func HeaderRow(n int) []string {
	row := []string{""}
	for t := 0; t < n; t++ {
		row = append(row, "t"+strconv.Itoa(t+1))
	}
	return row
}

// BodyRow builds the record for one line: label, tokens, then empty cells up
// to width data cells. Lines wider than width are kept whole.
func BodyRow(label string, line cwc.BlockLine, width int) []string {
	row := make([]string, 0, 1+max(width, len(line)))
	row = append(row, label)
	row = append(row, line...)
	for i := len(line); i < width; i++ {
		row = append(row, "")
	}
	return row
}

// WriteSection renders one section table, pulling one block line per body row
// from r. It returns the number of body rows written.
func WriteSection(w io.Writer, h cwc.Header, s cwc.Section, r *cwc.Reader) (int, error) {
	cw := newWriter(w)
	width := h.Count(s.Axis.Other())
	if err := writeRecord(w, cw, HeaderRow(width)); err != nil {
		return 0, err
	}

	n := h.Count(s.Axis)
	rows := 0
	for k := 0; k < n; k++ {
		line, err := r.BlockLine()
		if err != nil {
			return rows, fmt.Errorf("reading %s for %s: %w", s, lineLabel(s.Axis, k), err)
		}
		if err := cw.Write(BodyRow(lineLabel(s.Axis, k), line, width)); err != nil {
			return rows, err
		}
		rows++
	}

	cw.Flush()
	return rows, cw.Error()
}
