package convert

import (
	"fmt"
	"strings"
)

// InvalidIDError reports a puzzle identifier that cannot name a file.
type InvalidIDError struct {
	ID string
}

func (e *InvalidIDError) Error() string {
	if e.ID == "" {
		return "puzzle identifier is empty"
	}
	return fmt.Sprintf("puzzle identifier %q must not contain path separators", e.ID)
}

// MissingInputError reports that the input document could not be opened.
type MissingInputError struct {
	Name  string // e.g. "48.cwc"
	Dir   string
	Cause error
}

func (e *MissingInputError) Error() string {
	if e.Dir == "" || e.Dir == "." {
		return fmt.Sprintf("did not locate %q in current directory", e.Name)
	}
	return fmt.Sprintf("did not locate %q in directory %q", e.Name, e.Dir)
}

func (e *MissingInputError) Unwrap() error { return e.Cause }

func validateID(id string) error {
	if id == "" || strings.ContainsAny(id, `/\`) {
		return &InvalidIDError{ID: id}
	}
	return nil
}
