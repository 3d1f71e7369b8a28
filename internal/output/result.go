package output

import "github.com/dl/fmtfn"

// Result is one greeting ready to be formatted.
type Result struct {
	// UserID is nil for the anonymous user.
	UserID *uint64
	Value  fmtfn.Func
}

// Anonymous reports whether the result greets the anonymous user.
func (r *Result) Anonymous() bool {
	return r.UserID == nil
}

// sliceWriter appends everything written to it. It lets a fmtfn.Func render
// straight into a formatter's reusable buffer.
type sliceWriter []byte

func (w *sliceWriter) Write(p []byte) (int, error) {
	*w = append(*w, p...)
	return len(p), nil
}
