package cli

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/dl/fmtfn/internal/greet"
	"github.com/dl/fmtfn/internal/output"
)

// ColorMode controls when colored output is used.
type ColorMode int

const (
	ColorAuto   ColorMode = iota // color when stdout is a terminal
	ColorAlways                  // always use color
	ColorNever                   // never use color
)

// ParseColorMode parses "auto", "always" or "never". An empty string is auto.
func ParseColorMode(s string) (ColorMode, error) {
	switch s {
	case "", "auto":
		return ColorAuto, nil
	case "always":
		return ColorAlways, nil
	case "never":
		return ColorNever, nil
	}
	return ColorAuto, fmt.Errorf("invalid color mode %q (want auto, always or never)", s)
}

func (m ColorMode) String() string {
	switch m {
	case ColorAlways:
		return "always"
	case ColorNever:
		return "never"
	default:
		return "auto"
	}
}

// Config holds all configuration for one fmtfn invocation.
type Config struct {
	// UserIDs are the positional arguments; see greet.ParseUserID.
	UserIDs    []string
	Anonymous  bool
	Debug      bool
	JSONOutput bool
	Color      ColorMode
	Prefix     string
	LogLevel   string
}

// DefaultConfig returns the configuration used when neither the config file
// nor flags say otherwise.
func DefaultConfig() Config {
	return Config{
		Color:    ColorAuto,
		Prefix:   "Hello ",
		LogLevel: "warn",
	}
}

// Validate checks that the config is valid and returns an error if not.
func (c *Config) Validate() error {
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log level %q", c.LogLevel)
	}
	if c.Color < ColorAuto || c.Color > ColorNever {
		return fmt.Errorf("invalid color mode: %d", c.Color)
	}
	for _, s := range c.UserIDs {
		if _, err := greet.ParseUserID(s); err != nil {
			return err
		}
	}
	return nil
}

// Results builds one greeting per user id, in argument order. An anonymous
// greeting is appended when Anonymous is set or no ids were given.
func (c *Config) Results() ([]output.Result, error) {
	results := make([]output.Result, 0, len(c.UserIDs)+1)
	for _, s := range c.UserIDs {
		id, err := greet.ParseUserID(s)
		if err != nil {
			return nil, err
		}
		results = append(results, output.Result{UserID: id, Value: greet.Greeting(id)})
	}
	if c.Anonymous || len(c.UserIDs) == 0 {
		results = append(results, output.Result{Value: greet.Greeting(nil)})
	}
	return results, nil
}
