package gams

import (
	"fmt"
	"io"

	"github.com/kamilkhanlab/nonogram-ilp/cwc"
)

// WriteParams writes the include file declaring size and nColors. Each value
// is set only if the model has not already set it. The last directive has no
// line terminator.
func WriteParams(w io.Writer, h cwc.Header) error {
	_, err := fmt.Fprintf(w,
		"* upper bound on number of rows and number of columns\n"+
			"$if not set size $set size %d\n\n"+
			"* upper bound on number of colors\n"+
			"$if not set nColors $set nColors %d",
		h.Size(), h.Colors)
	return err
}
