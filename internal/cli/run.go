package cli

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"

	"github.com/dl/fmtfn/internal/output"
)

// Exit codes returned by Run.
const (
	ExitOK      = 0
	ExitRender  = 1
	ExitInvalid = 2
)

// Run renders the greetings described by cfg to stdout.
// Returns exit code: 0 = all rendered, 1 = a render or write failed, 2 = invalid config.
func Run(cfg Config) int {
	logger := newLogger(os.Stderr, cfg.LogLevel)

	useColor := false
	switch cfg.Color {
	case ColorAlways:
		useColor = true
	case ColorNever:
		useColor = false
	case ColorAuto:
		useColor = output.StdoutIsTerminal()
	}

	return run(cfg, output.NewStdoutWriter(), useColor, logger)
}

func newLogger(w io.Writer, level string) *log.Logger {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		lvl = log.WarnLevel
	}
	return log.NewWithOptions(w, log.Options{
		Level:  lvl,
		Prefix: "fmtfn",
	})
}

func newFormatter(cfg Config, useColor bool) output.Formatter {
	if cfg.JSONOutput {
		return output.NewJSONFormatter(cfg.Prefix)
	}
	styles := output.NoStyles()
	if useColor {
		styles = output.NewStyles(termenv.ANSI)
	}
	return output.NewTextFormatter(styles, cfg.Prefix, cfg.Debug, useColor)
}

func run(cfg Config, w io.Writer, useColor bool, logger *log.Logger) int {
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "err", err)
		return ExitInvalid
	}
	results, err := cfg.Results()
	if err != nil {
		logger.Error("invalid arguments", "err", err)
		return ExitInvalid
	}
	return render(results, newFormatter(cfg, useColor), w, logger)
}

// render formats and writes every result. A failed render is logged and
// skipped; a failed write stops immediately.
func render(results []output.Result, formatter output.Formatter, w io.Writer, logger *log.Logger) int {
	code := ExitOK
	buf := make([]byte, 0, 256)
	for i, r := range results {
		var err error
		buf, err = formatter.Format(buf[:0], r)
		if err != nil {
			logger.Error("render failed", "index", i, "anonymous", r.Anonymous(), "err", err)
			code = ExitRender
			continue
		}
		if _, err := w.Write(buf); err != nil {
			logger.Error("write failed", "err", err)
			return ExitRender
		}
		logger.Debug("rendered", "greeting", r.Value)
	}
	return code
}
