package gams

import "github.com/kamilkhanlab/nonogram-ilp/cwc"

// FileSet holds the five output document names for one puzzle.
type FileSet struct {
	Params string
	Tables map[cwc.Section]string
}

// Names derives the output document names for a puzzle identifier:
// p<id>.inc and p<id><role><axis>.csv.
func Names(id string) FileSet {
	fs := FileSet{
		Params: "p" + id + ".inc",
		Tables: make(map[cwc.Section]string, len(cwc.Sections)),
	}
	for _, s := range cwc.Sections {
		fs.Tables[s] = TableName(id, s)
	}
	return fs
}

// TableName returns the CSV name for one section, e.g. "p48sR.csv".
func TableName(id string, s cwc.Section) string {
	role := "s"
	if s.Role == cwc.Colors {
		role = "c"
	}
	axis := "R"
	if s.Axis == cwc.Columns {
		axis = "C"
	}
	return "p" + id + role + axis + ".csv"
}
