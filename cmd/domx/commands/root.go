// Package commands implements the CLI commands for domx.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/domx/internal/app"
	"go.trai.ch/domx/internal/build"
)

// CLI represents the command line interface for domx.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Build(ctx context.Context, opts app.BuildOptions) error
	Serve(ctx context.Context, opts app.ServeOptions) error
	Transform(ctx context.Context, opts app.TransformOptions) error
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "domx",
		Short:         "Bundle JSX to DOM expressions with a caching transform pipeline",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	flags := rootCmd.PersistentFlags()
	flags.StringP("dir", "C", ".", "Directory to search for domx.yaml from")
	flags.StringP("mode", "m", "", "Session mode: development or production (default depends on the command)")
	flags.Bool("cache", false, "Force transform caching on")
	flags.Bool("no-cache", false, "Force transform caching off")
	rootCmd.MarkFlagsMutuallyExclusive("cache", "no-cache")
	flags.String("program-scope", "", "Program reuse: file, shared or unit")
	flags.String("log-format", "auto", "Log format: auto, pretty or json")
	flags.Bool("verbose", false, "Report every transformed unit")
	flags.Bool("stats", false, "Log transform cache counters when the command finishes")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(c.newBuildCmd())
	rootCmd.AddCommand(c.newServeCmd())
	rootCmd.AddCommand(c.newTransformCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// sessionOptions reads the persistent flags shared by every command.
func sessionOptions(cmd *cobra.Command) app.SessionOptions {
	dir, _ := cmd.Flags().GetString("dir")
	mode, _ := cmd.Flags().GetString("mode")
	scope, _ := cmd.Flags().GetString("program-scope")
	format, _ := cmd.Flags().GetString("log-format")
	verbose, _ := cmd.Flags().GetBool("verbose")
	stats, _ := cmd.Flags().GetBool("stats")

	opts := app.SessionOptions{
		Dir:          dir,
		Mode:         mode,
		ProgramScope: scope,
		Verbose:      verbose,
		Stats:        stats,
		LogFormat:    format,
	}

	if cmd.Flags().Changed("cache") {
		enabled, _ := cmd.Flags().GetBool("cache")
		opts.Caching = &enabled
	}
	if cmd.Flags().Changed("no-cache") {
		disabled, _ := cmd.Flags().GetBool("no-cache")
		enabled := !disabled
		opts.Caching = &enabled
	}
	return opts
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}
