package convert

import (
	"fmt"
	"os"
	"path/filepath"
)

// Document is one rendered output file.
type Document struct {
	Name string
	Path string // set once written
	Rows int    // body rows; zero for the parameter file
	Data []byte
}

// writeDocument creates or truncates dir/doc.Name, writes it and closes it
// before returning.
func writeDocument(dir string, doc *Document) (err error) {
	path := filepath.Join(dir, doc.Name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", doc.Name, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing %s: %w", doc.Name, cerr)
		}
	}()

	if _, err := f.Write(doc.Data); err != nil {
		return fmt.Errorf("writing %s: %w", doc.Name, err)
	}
	doc.Path = path
	return nil
}
