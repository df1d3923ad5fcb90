package core

import (
	"fmt"
	"io"
)

// EOFBehavior controls what a `,` does when the input stream is
// exhausted. The command-line tool always uses EOFFatal; the
// tree-walk and simple-interpreter back-ends additionally accept the
// other variants as a programmatic option for callers that embed them.
type EOFBehavior int

const (
	EOFFatal    EOFBehavior = iota // `,` past end-of-stream is an IOError
	EOFZero                        // the cell is set to 0
	EOFMinusOne                    // the cell is set to 255
	EOFNoChange                    // the cell keeps its previous value
)

// IOError reports a failed `,` or `.` at runtime.
type IOError struct {
	Op  byte // ',' or '.'
	Err error
}

func (e *IOError) Error() string { return fmt.Sprintf("%c: %v", e.Op, e.Err) }
func (e *IOError) Unwrap() error { return e.Err }

// ReadByteWithEOF reads one byte from r, applying behavior on a short
// read or error. changed reports whether value should actually be
// written to the current cell (false only for EOFNoChange at EOF).
func ReadByteWithEOF(r io.Reader, behavior EOFBehavior) (value byte, changed bool, err error) {
	var buf [1]byte
	n, rerr := r.Read(buf[:])
	if n == 1 && rerr == nil {
		return buf[0], true, nil
	}
	switch behavior {
	case EOFZero:
		return 0, true, nil
	case EOFMinusOne:
		return 255, true, nil
	case EOFNoChange:
		return 0, false, nil
	default:
		return 0, false, &IOError{Op: ',', Err: io.ErrUnexpectedEOF}
	}
}

// flusher is implemented by writers (e.g. *bufio.Writer) that buffer
// and need an explicit flush after every `.`.
type flusher interface {
	Flush() error
}

// WriteByte writes b to w and flushes immediately if w supports it.
func WriteByte(w io.Writer, b byte) error {
	if _, err := w.Write([]byte{b}); err != nil {
		return &IOError{Op: '.', Err: err}
	}
	if f, ok := w.(flusher); ok {
		if err := f.Flush(); err != nil {
			return &IOError{Op: '.', Err: err}
		}
	}
	return nil
}
