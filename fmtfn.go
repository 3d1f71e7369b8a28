// Package fmtfn turns a function that writes text into a sink into a value
// that fmt can print.
//
// A [Func] renders the same text for both the human-facing verbs (%v, %s,
// Println) and the diagnostic ones (%#v, %+v):
//
//	hello := fmtfn.New(func(w io.Writer) error {
//		_, err := io.WriteString(w, "user number 1234")
//		return err
//	})
//	fmt.Printf("Hello %v\n", hello) // Hello user number 1234
//
// Inside fmt the sink passed to the function is the [fmt.State], so a
// function that wants different debug output can type-assert it and check
// Flag('#').
package fmtfn

import (
	"fmt"
	"io"
)

// Func writes a textual rendering of some value into w.
// The zero value is nil and must not be rendered.
type Func func(w io.Writer) error

// New wraps f. It is the same as the conversion Func(f).
func New(f func(w io.Writer) error) Func {
	return Func(f)
}

// Bind returns a Func that renders v with fn.
func Bind[T any](fn func(w io.Writer, v T) error, v T) Func {
	return func(w io.Writer) error {
		return fn(w, v)
	}
}

// Display writes the human-facing rendering into w.
// The returned error is exactly the one reported by the wrapped function.
func (f Func) Display(w io.Writer) error {
	return f(w)
}

// Debug writes the diagnostic rendering into w. It is identical to Display.
func (f Func) Debug(w io.Writer) error {
	return f(w)
}

// Format implements fmt.Formatter for every verb.
//
// fmt offers no way to return an error from here, so a failure is written
// inline as %!verb(ERROR=msg), after whatever was already written.
func (f Func) Format(s fmt.State, verb rune) {
	if err := f(s); err != nil {
		fmt.Fprintf(s, "%%!%c(ERROR=%v)", verb, err)
	}
}

// String implements fmt.Stringer.
func (f Func) String() string {
	return fmt.Sprintf("%v", f)
}

// GoString implements fmt.GoStringer.
func (f Func) GoString() string {
	return fmt.Sprintf("%#v", f)
}

var (
	_ fmt.Formatter  = Func(nil)
	_ fmt.Stringer   = Func(nil)
	_ fmt.GoStringer = Func(nil)
)
