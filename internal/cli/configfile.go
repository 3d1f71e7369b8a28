package cli

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileConfig is the on-disk configuration. Every field is optional and
// supplies a default that command-line flags can override.
type FileConfig struct {
	Color    string  `yaml:"color"`
	Prefix   *string `yaml:"prefix"`
	LogLevel string  `yaml:"log_level"`
	Debug    bool    `yaml:"debug"`
	JSON     bool    `yaml:"json"`
}

// ConfigPath returns the config file location: FMTFN_CONFIG_PATH if set,
// otherwise ~/.fmtfn.yaml. It returns "" when no home directory is known.
func ConfigPath() string {
	if path := os.Getenv("FMTFN_CONFIG_PATH"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".fmtfn.yaml")
}

// LoadConfigFile reads the YAML config file at path.
// A missing file (or empty path) yields a zero FileConfig and no error.
func LoadConfigFile(path string) (FileConfig, error) {
	var fc FileConfig
	if path == "" {
		return fc, nil
	}

	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return fc, nil
	}
	if err != nil {
		return fc, err
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&fc); err != nil && !errors.Is(err, io.EOF) {
		return FileConfig{}, fmt.Errorf("parse %s: %w", path, err)
	}
	return fc, nil
}

// Apply layers the file's values over cfg.
func (fc FileConfig) Apply(cfg Config) (Config, error) {
	if fc.Color != "" {
		mode, err := ParseColorMode(fc.Color)
		if err != nil {
			return cfg, fmt.Errorf("config file: %w", err)
		}
		cfg.Color = mode
	}
	if fc.Prefix != nil {
		cfg.Prefix = *fc.Prefix
	}
	if fc.LogLevel != "" {
		cfg.LogLevel = fc.LogLevel
	}
	cfg.Debug = cfg.Debug || fc.Debug
	cfg.JSONOutput = cfg.JSONOutput || fc.JSON
	return cfg, nil
}
