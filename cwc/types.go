package cwc

// Axis identifies the rows or the columns of the puzzle grid.
type Axis int

const (
	Rows Axis = iota
	Columns
)

// Other returns the opposite axis.
func (a Axis) Other() Axis {
	if a == Rows {
		return Columns
	}
	return Rows
}

func (a Axis) String() string {
	if a == Rows {
		return "rows"
	}
	return "columns"
}

// Role identifies what the tokens of a section describe.
type Role int

const (
	Lengths Role = iota
	Colors
)

func (r Role) String() string {
	if r == Lengths {
		return "lengths"
	}
	return "colors"
}

// Section names one of the four fixed-order groups of block lines.
type Section struct {
	Axis Axis
	Role Role
}

func (s Section) String() string {
	if s.Axis == Rows {
		return "row " + s.Role.String()
	}
	return "column " + s.Role.String()
}

// Sections lists the sections in the order they appear in a document.
var Sections = []Section{
	{Axis: Rows, Role: Lengths},
	{Axis: Rows, Role: Colors},
	{Axis: Columns, Role: Lengths},
	{Axis: Columns, Role: Colors},
}

// Header holds the three leading integers of a document. Values are taken
// as written; zero and negative counts are not rejected.
type Header struct {
	Rows    int
	Columns int
	Colors  int
}

// Count returns the number of lines along the given axis.
func (h Header) Count(a Axis) int {
	if a == Rows {
		return h.Rows
	}
	return h.Columns
}

// Size is the larger of the two grid dimensions.
func (h Header) Size() int {
	return max(h.Rows, h.Columns)
}

// BlockLine is the token sequence for one row or column of a section.
// Its length is independent of the header.
type BlockLine []string

// InputName returns the document name for a puzzle identifier, e.g. "48.cwc".
func InputName(id string) string {
	return id + ".cwc"
}
