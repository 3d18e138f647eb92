package tuple_test

import (
	"errors"
	"io"
)

// element type that owns a slice, duplicated through Copy
type buffer struct {
	data []int
}

func (b buffer) Copy() buffer {
	data := make([]int, len(b.data))
	copy(data, b.data)
	return buffer{data: data}
}

func newBuffer(data ...int) buffer {
	return buffer{data: data}
}

// element type that must not be copied after construction
type guarded struct {
	noCopy [0]func()
	name   string
	seq    int
}

// writer that fails once the given number of bytes has been written
type failingWriter struct {
	limit int
	n     int
}

var errWriterFull = errors.New("writer full")

func (w *failingWriter) Write(p []byte) (int, error) {
	if w.n+len(p) > w.limit {
		return 0, errWriterFull
	}
	w.n += len(p)
	return len(p), nil
}

var _ io.Writer = &failingWriter{}
