package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// exitCodeError carries a non-zero exit code out of cobra's RunE.
type exitCodeError int

func (e exitCodeError) Error() string {
	return fmt.Sprintf("exit status %d", int(e))
}

// NewRootCommand builds the fmtfn command. defaults seeds the flag values;
// runFn performs the rendering and returns an exit code.
func NewRootCommand(defaults Config, runFn func(Config) int) *cobra.Command {
	cfg := defaults
	color := defaults.Color.String()

	cmd := &cobra.Command{
		Use:   "fmtfn [user-id...]",
		Short: "Print greetings rendered through a formatting function",
		Long: `fmtfn prints "Hello user number N" for every user id argument and
"Hello anonymous user" for "anon", "-" or when no ids are given.`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := ParseColorMode(color)
			if err != nil {
				return err
			}
			cfg.Color = mode
			cfg.UserIDs = args
			if code := runFn(cfg); code != ExitOK {
				return exitCodeError(code)
			}
			return nil
		},
	}
	bindFlags(cmd.Flags(), &cfg, &color)
	return cmd
}

func bindFlags(fs *pflag.FlagSet, cfg *Config, color *string) {
	fs.BoolVarP(&cfg.Anonymous, "anonymous", "a", cfg.Anonymous, "also greet the anonymous user")
	fs.BoolVarP(&cfg.Debug, "debug", "d", cfg.Debug, "use the debug rendering (%#v)")
	fs.BoolVar(&cfg.JSONOutput, "json", cfg.JSONOutput, "print JSON Lines with both renderings")
	fs.StringVar(color, "color", *color, "when to use color: auto, always, never")
	fs.StringVarP(&cfg.Prefix, "prefix", "p", cfg.Prefix, "text written before each greeting")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level: debug, info, warn, error")
}

// Execute loads the config file, runs the root command against os.Args and
// returns the process exit code.
func Execute() int {
	logger := newLogger(os.Stderr, DefaultConfig().LogLevel)

	path := ConfigPath()
	fc, err := LoadConfigFile(path)
	if err != nil {
		logger.Error("failed to load config", "path", path, "err", err)
		return ExitInvalid
	}
	defaults, err := fc.Apply(DefaultConfig())
	if err != nil {
		logger.Error("failed to load config", "path", path, "err", err)
		return ExitInvalid
	}
	if lvl, err := log.ParseLevel(defaults.LogLevel); err == nil {
		logger.SetLevel(lvl)
	}

	cmd := NewRootCommand(defaults, Run)
	cmd.SetArgs(os.Args[1:])
	return exitCode(cmd.Execute(), logger)
}

func exitCode(err error, logger *log.Logger) int {
	if err == nil {
		return ExitOK
	}
	var code exitCodeError
	if errors.As(err, &code) {
		return int(code)
	}
	logger.Error("command failed", "err", err)
	return ExitInvalid
}
