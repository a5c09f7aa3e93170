package cli

import (
	"context"
	"io"

	"github.com/spf13/cobra"
)

// Run executes the svgbuild command line with args (without the program
// name). Results go to stdout, logs and progress to stderr.
//
// Logging defaults to info level; --verbose (-v) switches to debug. The
// logger is attached to the command context and reaches every command
// through loggerFromContext.
//
//	func main() {
//	    ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
//	    defer stop()
//	    if err := cli.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
//	        os.Exit(1)
//	    }
//	}
func Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	c := New(stdout, stderr, LogInfo)

	var verbose bool
	root := c.RootCommand()
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		level := LogInfo
		if verbose {
			level = LogDebug
		}
		c.SetLogLevel(level)
		cmd.SetContext(withLogger(cmd.Context(), c.Logger))
		return nil
	}

	root.SetArgs(args)
	return root.ExecuteContext(ctx)
}
