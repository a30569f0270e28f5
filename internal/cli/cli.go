// Package cli implements the searchtrace command-line interface.
//
// # Commands
//
//   - run: execute one search and print its summary, steps or JSON trace
//   - compare: run several algorithms concurrently over the same graph
//   - generate: write a generated grid, a sample or a converted file as YAML, TOML or JSON
//   - samples: list or print the embedded sample graphs
//
// Graphs come from --graph (a YAML, TOML or JSON file), --sample (an
// embedded fixture), --maze (an ASCII map) or, by default, a seeded --grid.
//
// # Configuration
//
// Defaults for algorithm, grid size, seed, diagonal probability, expansion
// cap and output format are read from --config or
// $XDG_CONFIG_HOME/searchtrace/config.toml. Flags always win.
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging, which
// includes one line per node expansion. The logger is carried in the
// command context.
package cli

import (
	"context"
	"errors"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/searchtrace/internal/config"
)

const appName = "searchtrace"

// version is set with -ldflags "-X .../internal/cli.version=v1.2.3".
var version = "dev"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// Sentinel errors.
var (
	// ErrNoEndpoints is returned when a loaded graph names no start or goal
	// and none was given on the command line.
	ErrNoEndpoints = errors.New("cli: --start and --goal are required for this graph")

	// ErrBadGridSize is returned for a malformed --grid value.
	ErrBadGridSize = errors.New("cli: --grid must look like 15x15 or 15")

	// ErrConflictingSources is returned when more than one graph source is given.
	ErrConflictingSources = errors.New("cli: use only one of --graph, --sample, --grid, --maze")
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	out        io.Writer
	configPath string
	verbose    bool
	cfg        config.Config
}

// New creates a CLI writing results to out and logs to logw.
func New(out, logw io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(logw, level),
		out:    out,
		cfg:    config.Default(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           appName,
		Short:         "searchtrace runs graph searches and records every step",
		Long:          `searchtrace runs BFS, DFS, Dijkstra, A* and Greedy best-first search over the same graph and emits a replayable, step-by-step trace for each of them.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if c.verbose {
				c.SetLogLevel(LogDebug)
			}
			cfg, err := config.Load(c.configPath)
			if err != nil {
				return err
			}
			c.cfg = cfg

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			cmd.SetContext(withLogger(ctx, c.Logger))

			return nil
		},
	}

	root.SetOut(c.out)
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/searchtrace/config.toml)")
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(c.runCommand())
	root.AddCommand(c.compareCommand())
	root.AddCommand(c.generateCommand())
	root.AddCommand(c.samplesCommand())

	return root
}
