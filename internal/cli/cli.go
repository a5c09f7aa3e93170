// Package cli implements the svgbuild command-line interface.
//
// # Commands
//
//   - render: build an SVG document from a TOML, YAML or JSON scene
//   - serve: run the HTTP render server
//   - cache: inspect or clear the local render cache
//   - completion: generate shell completion scripts
//
// All commands accept --verbose (-v) for debug logging. The logger travels
// through context.Context; see withLogger and loggerFromContext.
package cli

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/svgbuild/pkg/buildinfo"
	"github.com/matzehuels/svgbuild/pkg/cache"
	"github.com/matzehuels/svgbuild/pkg/pipeline"
)

const appName = "svgbuild"

// Log levels for callers that construct a CLI.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds state shared by all commands.
type CLI struct {
	Logger *log.Logger

	stdout io.Writer
	stderr io.Writer
}

// New creates a CLI that prints results to stdout and logs to stderr.
func New(stdout, stderr io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(stderr, level),
		stdout: stdout,
		stderr: stderr,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root command with every subcommand registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           appName,
		Short:         "svgbuild renders declarative scenes to SVG",
		Long:          `svgbuild turns TOML, YAML or JSON scene descriptions into SVG documents, from the command line or over HTTP.`,
		Version:       buildinfo.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetVersionTemplate(buildinfo.Template())
	root.SetOut(c.stdout)
	root.SetErr(c.stderr)

	root.AddCommand(c.renderCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())
	return root
}

// out prints status lines to stdout.
func (c *CLI) out() printer { return printer{w: c.stdout} }

// newRunner creates a pipeline runner backed by the local file cache.
func (c *CLI) newRunner(noCache bool) (*pipeline.Runner, error) {
	cc, err := c.newFileCache(noCache)
	if err != nil {
		return nil, err
	}
	return pipeline.NewRunner(cc, nil, c.Logger), nil
}

// newFileCache opens the XDG cache directory. Without a home directory the
// CLI runs uncached rather than failing.
func (c *CLI) newFileCache(noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	dir, err := cacheDir()
	if err != nil {
		printer{w: c.stderr}.warning("Render cache disabled: %v", err)
		return cache.NewNullCache(), nil
	}
	fc, err := cache.NewFileCache(dir)
	if err != nil {
		return nil, err
	}
	return fc, nil
}

// cacheDir returns $XDG_CACHE_HOME/svgbuild, or ~/.cache/svgbuild.
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}
