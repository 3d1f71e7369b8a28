package output

import (
	"encoding/json"
)

// JSONFormatter formats results as JSON Lines (one JSON object per greeting).
type JSONFormatter struct {
	prefix string
}

// NewJSONFormatter creates a JSONFormatter.
func NewJSONFormatter(prefix string) *JSONFormatter {
	return &JSONFormatter{prefix: prefix}
}

// jsonGreeting is the JSON serialization format for a greeting.
type jsonGreeting struct {
	Type    string  `json:"type"`
	UserID  *uint64 `json:"user_id,omitempty"`
	Display string  `json:"display"`
	Debug   string  `json:"debug"`
}

func (f *JSONFormatter) Format(buf []byte, result Result) ([]byte, error) {
	display := sliceWriter(f.prefix)
	if err := result.Value.Display(&display); err != nil {
		return buf, err
	}
	debug := sliceWriter(f.prefix)
	if err := result.Value.Debug(&debug); err != nil {
		return buf, err
	}

	jg := jsonGreeting{
		Type:    "greeting",
		UserID:  result.UserID,
		Display: string(display),
		Debug:   string(debug),
	}
	data, err := json.Marshal(jg)
	if err != nil {
		return buf, err
	}
	buf = append(buf, data...)
	buf = append(buf, '\n')
	return buf, nil
}

// Ensure JSONFormatter implements Formatter.
var _ Formatter = (*JSONFormatter)(nil)
