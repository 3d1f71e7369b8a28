package output

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/sys/unix"
)

// Styles holds the lipgloss styles for output formatting.
type Styles struct {
	Prefix    lipgloss.Style
	User      lipgloss.Style
	Anonymous lipgloss.Style
}

// NewStyles creates the default color styles for the given color profile.
// The profile is fixed up front, so the styles emit escape codes even when
// stdout is a pipe.
func NewStyles(profile termenv.Profile) Styles {
	r := lipgloss.NewRenderer(io.Discard, termenv.WithProfile(profile))
	base := r.NewStyle().Inline(true).TabWidth(lipgloss.NoTabConversion)
	return Styles{
		Prefix:    base.Foreground(lipgloss.Color("6")),            // cyan
		User:      base.Foreground(lipgloss.Color("2")).Bold(true), // bold green
		Anonymous: base.Foreground(lipgloss.Color("8")).Italic(true),
	}
}

// NoStyles returns styles with no coloring.
func NoStyles() Styles {
	return Styles{
		Prefix:    lipgloss.NewStyle(),
		User:      lipgloss.NewStyle(),
		Anonymous: lipgloss.NewStyle(),
	}
}

// IsTerminal checks if the given file descriptor is a terminal using ioctl.
func IsTerminal(fd uintptr) bool {
	_, err := unix.IoctlGetTermios(int(fd), unix.TCGETS)
	return err == nil
}

// StdoutIsTerminal returns true if stdout is a terminal.
func StdoutIsTerminal() bool {
	return IsTerminal(os.Stdout.Fd())
}
