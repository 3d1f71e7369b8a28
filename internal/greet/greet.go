package greet

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/dl/fmtfn"
)

// ErrInvalidUserID is returned by ParseUserID for tokens that are neither a
// user number nor an anonymous marker.
var ErrInvalidUserID = errors.New("invalid user id")

// User writes the display name for a user: "user number N", or
// "anonymous user" when id is nil.
func User(w io.Writer, id *uint64) error {
	if id != nil {
		_, err := fmt.Fprintf(w, "user number %d", *id)
		return err
	}
	_, err := io.WriteString(w, "anonymous user")
	return err
}

// Greeting returns a printable value rendering User for id.
func Greeting(id *uint64) fmtfn.Func {
	return fmtfn.Bind(User, id)
}

// ParseUserID parses a command-line token. "anon", "anonymous" and "-"
// select the anonymous user and return nil.
func ParseUserID(s string) (*uint64, error) {
	switch s {
	case "anon", "anonymous", "-":
		return nil, nil
	}
	id, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidUserID, s)
	}
	return &id, nil
}
