// Package config loads the searchtrace CLI configuration file.
//
// The file is TOML. Every key is optional: values missing from the file keep
// their Default. Unknown keys are rejected so typos surface immediately.
//
//	algorithm      = "astar"
//	output         = "text"   # or "json"
//	max_expansions = 0        # 0 = unlimited
//
//	[grid]
//	rows                 = 15
//	cols                 = 15
//	seed                 = 42
//	diagonal_probability = 0.3
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/katalvlaran/searchtrace/builder"
	"github.com/katalvlaran/searchtrace/strategy"
)

const (
	appName  = "searchtrace"
	fileName = "config.toml"

	OutputText = "text"
	OutputJSON = "json"

	DefaultAlgorithm = "astar"
	DefaultGridSize  = 15
	DefaultSeed      = 42
)

// Sentinel errors.
var (
	// ErrInvalid is returned by Validate and wraps every rejected value.
	ErrInvalid = errors.New("config: invalid value")

	// ErrUnknownKey is returned when the file holds keys Config does not define.
	ErrUnknownKey = errors.New("config: unknown key")
)

// Config is the CLI configuration.
type Config struct {
	Algorithm     string `toml:"algorithm"`
	Output        string `toml:"output"`
	MaxExpansions int    `toml:"max_expansions"`
	Grid          Grid   `toml:"grid"`
}

// Grid configures the generated sample grid.
type Grid struct {
	Rows                int     `toml:"rows"`
	Cols                int     `toml:"cols"`
	Seed                int64   `toml:"seed"`
	DiagonalProbability float64 `toml:"diagonal_probability"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Algorithm: DefaultAlgorithm,
		Output:    OutputText,
		Grid: Grid{
			Rows:                DefaultGridSize,
			Cols:                DefaultGridSize,
			Seed:                DefaultSeed,
			DiagonalProbability: builder.DefaultDiagonalProbability,
		},
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/searchtrace/config.toml, falling back
// to ~/.config/searchtrace/config.toml.
func DefaultPath() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, appName, fileName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(home, ".config", appName, fileName), nil
}

// Load reads path over Default and validates the result.
//
// An empty path selects DefaultPath; in that case a missing file is not an
// error and Default is returned as is. An explicit path must exist.
func Load(path string) (Config, error) {
	cfg := Default()
	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return cfg, nil
		}
		path = p
	}

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}

		return Config{}, fmt.Errorf("config: %s: %w", path, err)
	}
	if extra := md.Undecoded(); len(extra) > 0 {
		keys := make([]string, len(extra))
		for i, k := range extra {
			keys[i] = k.String()
		}
		sort.Strings(keys)

		return Config{}, fmt.Errorf("%w in %s: %s", ErrUnknownKey, path, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", path, err)
	}

	return cfg, nil
}

// Validate reports the first out-of-range value.
func (c Config) Validate() error {
	if _, err := strategy.Parse(c.Algorithm); err != nil {
		return fmt.Errorf("%w: algorithm: %w", ErrInvalid, err)
	}
	switch c.Output {
	case OutputText, OutputJSON:
	default:
		return fmt.Errorf("%w: output %q (want %q or %q)", ErrInvalid, c.Output, OutputText, OutputJSON)
	}
	if c.MaxExpansions < 0 {
		return fmt.Errorf("%w: max_expansions %d < 0", ErrInvalid, c.MaxExpansions)
	}
	if c.Grid.Rows < 1 || c.Grid.Cols < 1 {
		return fmt.Errorf("%w: grid %dx%d", ErrInvalid, c.Grid.Rows, c.Grid.Cols)
	}
	if p := c.Grid.DiagonalProbability; !(p >= 0 && p <= 1) {
		return fmt.Errorf("%w: diagonal_probability %g not in [0,1]", ErrInvalid, p)
	}

	return nil
}

// AlgorithmValue returns the parsed Algorithm. Call after Validate.
func (c Config) AlgorithmValue() strategy.Algorithm {
	alg, _ := strategy.Parse(c.Algorithm)

	return alg
}
