package rec

import (
	"fmt"
	"io"
)

// Dump writes a human-readable listing of every record to w, one line per
// field, for debugging. Output is not part of the text format and is not
// parseable.
func (s *Store[R]) Dump(w io.Writer) {
	for i := range s.recs {
		fmt.Fprintf(w, "record %d:\n", i)
		for _, f := range s.fields {
			fmt.Fprintf(w, "\t%s = %v\n", f.name, f.value(&s.recs[i]))
		}
	}
}
