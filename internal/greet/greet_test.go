package greet

import (
	"bytes"
	"errors"
	"fmt"
	"testing"
)

type errWriter struct{ err error }

func (w errWriter) Write(p []byte) (int, error) { return 0, w.err }

func TestUser_Known(t *testing.T) {
	id := uint64(1234)
	var buf bytes.Buffer
	if err := User(&buf, &id); err != nil {
		t.Fatalf("User() error: %v", err)
	}
	if got, want := buf.String(), "user number 1234"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestUser_Anonymous(t *testing.T) {
	var buf bytes.Buffer
	if err := User(&buf, nil); err != nil {
		t.Fatalf("User() error: %v", err)
	}
	if got, want := buf.String(), "anonymous user"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestUser_WriteError(t *testing.T) {
	want := errors.New("pipe closed")
	id := uint64(1)
	if err := User(errWriter{want}, &id); err != want {
		t.Errorf("got %v, want %v", err, want)
	}
	if err := User(errWriter{want}, nil); err != want {
		t.Errorf("anonymous: got %v, want %v", err, want)
	}
}

func TestGreeting_Template(t *testing.T) {
	id := uint64(1234)

	got := fmt.Sprintf("Hello %v", Greeting(&id))
	if want := "Hello user number 1234"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	got = fmt.Sprintf("Hello %#v", Greeting(nil))
	if want := "Hello anonymous user"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestParseUserID(t *testing.T) {
	tests := []struct {
		in      string
		want    *uint64
		wantErr bool
	}{
		{in: "1234", want: ptr(1234)},
		{in: "0", want: ptr(0)},
		{in: "18446744073709551615", want: ptr(18446744073709551615)},
		{in: "anon"},
		{in: "anonymous"},
		{in: "-"},
		{in: "-5", wantErr: true},
		{in: "abc", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseUserID(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidUserID) {
					t.Fatalf("ParseUserID(%q) error = %v, want ErrInvalidUserID", tt.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseUserID(%q) error: %v", tt.in, err)
			}
			switch {
			case tt.want == nil && got != nil:
				t.Errorf("got %d, want nil", *got)
			case tt.want != nil && got == nil:
				t.Errorf("got nil, want %d", *tt.want)
			case tt.want != nil && *got != *tt.want:
				t.Errorf("got %d, want %d", *got, *tt.want)
			}
		})
	}
}

func ptr(v uint64) *uint64 { return &v }
