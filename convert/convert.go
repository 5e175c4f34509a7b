// Package convert turns a .cwc puzzle export into the GAMS input set: one
// parameter include file and four CSV tables.
package convert

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/kamilkhanlab/nonogram-ilp/cwc"
	"github.com/kamilkhanlab/nonogram-ilp/gams"
)

// Options configures a conversion run.
type Options struct {
	// ID names the puzzle; it selects <ID>.cwc and prefixes every output.
	ID string

	// InputDir holds the .cwc document. Empty means the working directory.
	InputDir string

	// OutputDir receives the generated documents. Empty means InputDir.
	OutputDir string

	// DryRun renders every document but writes none.
	DryRun bool

	// Strict fails the run when the input ends before the header's counts
	// are satisfied. Otherwise missing lines read as blank.
	Strict bool

	// Events receives progress events. May be nil.
	Events *EventEmitter
}

// Result describes a completed conversion.
type Result struct {
	RunID     string
	Header    cwc.Header
	Documents []*Document // in write order: .inc, sR, cR, sC, cC

	// MissingLines counts block and separator lines absent from the input
	// and read as blank.
	MissingLines int
}

// Run converts one puzzle. Nothing is written unless the whole input parses,
// so a failed run leaves no output documents behind.
func Run(opts Options) (*Result, error) {
	runID := uuid.NewString()
	start := time.Now()

	res, err := run(runID, opts)
	if err != nil {
		opts.Events.Emit(ConversionFailedEvent(runID, err.Error(), time.Since(start)))
		return nil, err
	}
	opts.Events.Emit(ConversionCompletedEvent(runID, time.Since(start), len(res.Documents), opts.DryRun))
	return res, nil
}

func run(runID string, opts Options) (*Result, error) {
	if err := validateID(opts.ID); err != nil {
		return nil, err
	}
	inDir := opts.InputDir
	if inDir == "" {
		inDir = "."
	}
	outDir := opts.OutputDir
	if outDir == "" {
		outDir = inDir
	}

	name := cwc.InputName(opts.ID)
	input := filepath.Join(inDir, name)
	opts.Events.Emit(ConversionStartedEvent(runID, opts.ID, input))

	docs, h, missing, err := renderFile(runID, opts, inDir, name)
	if err != nil {
		return nil, err
	}

	if !opts.DryRun {
		for _, doc := range docs {
			if err := writeDocument(outDir, doc); err != nil {
				return nil, err
			}
			opts.Events.Emit(DocumentWrittenEvent(runID, doc.Path, len(doc.Data)))
		}
	}

	return &Result{RunID: runID, Header: h, Documents: docs, MissingLines: missing}, nil
}

// renderFile opens the input, renders all five documents and closes the input.
func renderFile(runID string, opts Options, dir, name string) ([]*Document, cwc.Header, int, error) {
	f, err := os.Open(filepath.Join(dir, name))
	if err != nil {
		return nil, cwc.Header{}, 0, &MissingInputError{Name: name, Dir: dir, Cause: err}
	}
	defer f.Close()

	r := cwc.NewReader(f)
	r.Strict = opts.Strict
	docs, h, err := Render(runID, opts.ID, r, opts.Events)
	if err != nil {
		return nil, h, 0, fmt.Errorf("%s: %w", name, err)
	}
	return docs, h, r.Missing(), nil
}

// Render consumes a whole document from r and returns the rendered outputs
// for puzzle id, parameter file first. Section separators are skipped by
// position only.
func Render(runID, id string, r *cwc.Reader, events *EventEmitter) ([]*Document, cwc.Header, error) {
	h, err := cwc.ParseHeader(r)
	if err != nil {
		return nil, cwc.Header{}, err
	}
	events.Emit(HeaderParsedEvent(runID, h.Rows, h.Columns, h.Colors))

	names := gams.Names(id)

	var params bytes.Buffer
	if err := gams.WriteParams(&params, h); err != nil {
		return nil, h, err
	}
	docs := []*Document{{Name: names.Params, Data: params.Bytes()}}

	for i, sec := range cwc.Sections {
		if i > 0 {
			if err := r.Skip(); err != nil {
				return nil, h, fmt.Errorf("before %s: %w", sec, err)
			}
		}
		var buf bytes.Buffer
		rows, err := gams.WriteSection(&buf, h, sec, r)
		if err != nil {
			return nil, h, err
		}
		events.Emit(SectionRenderedEvent(runID, sec.String(), rows))
		docs = append(docs, &Document{Name: names.Tables[sec], Rows: rows, Data: buf.Bytes()})
	}
	return docs, h, nil
}
