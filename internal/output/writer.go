package output

import (
	"io"
	"os"

	"golang.org/x/sys/unix"
)

// Writer writes to a raw file descriptor using writev.
// Errors from the kernel are returned unchanged.
type Writer struct {
	fd     int
	writev func(fd int, iovs [][]byte) (int, error)
}

// NewWriter creates a Writer for fd.
func NewWriter(fd uintptr) *Writer {
	return &Writer{fd: int(fd), writev: unix.Writev}
}

// NewStdoutWriter creates a Writer that writes to stdout.
func NewStdoutWriter() *Writer {
	return NewWriter(os.Stdout.Fd())
}

// Write implements io.Writer, retrying until data is fully written.
// A write that makes no progress without an error reports io.ErrShortWrite.
func (w *Writer) Write(data []byte) (int, error) {
	written := 0
	for written < len(data) {
		n, err := w.writev(w.fd, [][]byte{data[written:]})
		if n > 0 {
			written += n
		}
		if err != nil {
			if err == unix.EINTR {
				continue
			}
			return written, err
		}
		if n <= 0 {
			return written, io.ErrShortWrite
		}
	}
	return written, nil
}
