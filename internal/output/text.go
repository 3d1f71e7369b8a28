package output

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// TextFormatter formats results as one human-readable line each.
type TextFormatter struct {
	styles   Styles
	prefix   string
	debug    bool
	useColor bool
}

// NewTextFormatter creates a TextFormatter. prefix is written before every
// rendered value; debug selects the diagnostic rendering.
func NewTextFormatter(styles Styles, prefix string, debug bool, useColor bool) *TextFormatter {
	return &TextFormatter{
		styles:   styles,
		prefix:   prefix,
		debug:    debug,
		useColor: useColor,
	}
}

func (f *TextFormatter) Format(buf []byte, result Result) ([]byte, error) {
	start := len(buf)
	render := result.Value.Display
	if f.debug {
		render = result.Value.Debug
	}

	if !f.useColor {
		buf = append(buf, f.prefix...)
		w := sliceWriter(buf)
		if err := render(&w); err != nil {
			return buf[:start], err
		}
		buf = append([]byte(w), '\n')
		return buf, nil
	}

	// Styles need the whole value, so render it on the side first.
	var value sliceWriter
	if err := render(&value); err != nil {
		return buf, err
	}
	style := f.styles.User
	if result.Anonymous() {
		style = f.styles.Anonymous
	}
	buf = appendStyled(buf, f.styles.Prefix, f.prefix)
	buf = appendStyled(buf, style, string(value))
	buf = append(buf, '\n')
	return buf, nil
}

// appendStyled wraps each line of s in the style's escape codes. Lines are
// styled one at a time so the text itself is never padded or re-laid out.
func appendStyled(buf []byte, style lipgloss.Style, s string) []byte {
	for i, line := range strings.Split(s, "\n") {
		if i > 0 {
			buf = append(buf, '\n')
		}
		if line != "" {
			buf = append(buf, style.Render(line)...)
		}
	}
	return buf
}

var _ Formatter = (*TextFormatter)(nil)
