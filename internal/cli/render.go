package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/svgbuild/pkg/errors"
	"github.com/matzehuels/svgbuild/pkg/pipeline"
	"github.com/matzehuels/svgbuild/pkg/scene"
)

// stdio is the file name meaning stdin for input and stdout for output.
const stdio = "-"

// renderOpts holds the render command's flags.
type renderOpts struct {
	output    string // output file; "-" for stdout, "" for <scene>.svg
	format    string // scene format; inferred from the extension when empty
	precision int    // fixed decimals for coordinates, when set
	grouping  bool   // thousands separators in numbers
	noCache   bool
	refresh   bool
}

func (c *CLI) renderCommand() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render <scene>",
		Short: "Render a scene file to SVG",
		Long: `Render a TOML, YAML or JSON scene to an SVG document.

The scene format is inferred from the file extension unless --format is
given. Use "-" as the scene to read from stdin and -o - to write the
document to stdout.`,
		Example: `  svgbuild render chart.toml
  svgbuild render chart.yaml -o out/chart.svg --precision 2
  cat chart.json | svgbuild render - --format json -o -`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var precision *int
			if cmd.Flags().Changed("precision") {
				precision = &opts.precision
			}
			return c.runRender(cmd.Context(), cmd.InOrStdin(), args[0], precision, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", `output file ("-" for stdout; default <scene>.svg)`)
	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "scene format: toml, yaml, json (default from extension)")
	cmd.Flags().IntVarP(&opts.precision, "precision", "p", 0, "fixed decimals for coordinates (default shortest form)")
	cmd.Flags().BoolVar(&opts.grouping, "grouping", false, "use thousands separators in numbers")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the render cache")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "re-render even when a cached result exists")
	_ = cmd.RegisterFlagCompletionFunc("format", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		names := make([]string, len(scene.Formats))
		for i, f := range scene.Formats {
			names[i] = string(f)
		}
		return names, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

func (c *CLI) runRender(ctx context.Context, stdin io.Reader, input string, precision *int, opts renderOpts) error {
	logger := loggerFromContext(ctx)
	registerLogHooks(logger)
	prog := newProgress(logger)

	runner, err := c.newRunner(opts.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	popts := pipeline.Options{
		Precision: precision,
		Grouping:  opts.grouping,
		Refresh:   opts.refresh,
		Logger:    logger,
	}
	if opts.format != "" {
		f, err := scene.ParseFormat(opts.format)
		if err != nil {
			return err
		}
		popts.Format = f
	}

	var res *pipeline.Result
	if input == stdio {
		if popts.Format == "" {
			popts.Format = scene.FormatTOML
		}
		data, err := io.ReadAll(stdin)
		if err != nil {
			return errors.Wrap(errors.ErrCodeInternal, err, "read stdin")
		}
		popts.Source = "stdin"
		res, err = runner.Execute(ctx, data, popts)
		if err != nil {
			return err
		}
	} else {
		res, err = runner.ExecuteFile(ctx, input, popts)
		if err != nil {
			return err
		}
	}

	output := outputPath(input, opts.output)
	if output == stdio {
		_, err := c.stdout.Write(res.SVG)
		return err
	}
	if err := writeOutput(output, res.SVG); err != nil {
		return err
	}

	p := c.out()
	p.success("Rendered %s", displayName(input))
	p.file(output)
	p.stats(res.Stats.Elements(), len(res.SVG), res.CacheHit)
	prog.done("render complete")
	return nil
}

// outputPath resolves the -o flag. Without one, the document goes next to
// the scene with an .svg extension, or to stdout when reading stdin.
func outputPath(input, output string) string {
	if output != "" {
		return output
	}
	if input == stdio {
		return stdio
	}
	return strings.TrimSuffix(input, filepath.Ext(input)) + ".svg"
}

func writeOutput(path string, data []byte) error {
	if err := errors.ValidatePath(path); err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrap(errors.ErrCodeInternal, err, "create output directory")
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "write %s", path)
	}
	return nil
}

func displayName(input string) string {
	if input == stdio {
		return "stdin"
	}
	return filepath.Base(input)
}
