package tuple

import (
	"fmt"
	"io"
)

// String renders the pair as "[ <first>  <second> ]", fields are formatted with %v
func (p Pair[A, B]) String() string {
	return fmt.Sprintf("[ %v  %v ]", p.First, p.Second)
}

// WriteTo writes the rendered pair followed by a line terminator to w
func (p Pair[A, B]) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, p.String()+"\n")
	return int64(n), err
}

// Printer writes pairs to an output sink with chained calls.
// The first write error stops every following write and is reported by Err.
type Printer struct {
	w       io.Writer
	written int64
	err     error
}

// Create a printer writing to w
func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w}
}

// Print writes v, usually a Pair, and returns the printer for chaining
func (pr *Printer) Print(v io.WriterTo) *Printer {
	if pr.err != nil {
		return pr
	}
	n, err := v.WriteTo(pr.w)
	pr.written += n
	pr.err = err
	return pr
}

// Writer returns the underlying output sink
func (pr *Printer) Writer() io.Writer { return pr.w }

// Number of bytes written so far
func (pr *Printer) Written() int64 { return pr.written }

func (pr *Printer) Err() error { return pr.err }
