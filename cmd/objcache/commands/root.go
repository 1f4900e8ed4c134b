// Package commands implements the CLI commands for objcache.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/objcache/internal/app"
	"go.trai.ch/objcache/internal/build"
)

// CLI represents the command line interface for objcache.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Key(ctx context.Context, opts app.ContextOptions) (app.KeyResult, error)
	Lookup(ctx context.Context, opts app.ContextOptions, source string) (string, error)
	Store(ctx context.Context, opts app.StoreOptions, source, object string) error
	Inspect(ctx context.Context, opts app.ContextOptions, w io.Writer) error
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "objcache",
		Short:         "A target-scoped cache for compiled objects",
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

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(c.newKeyCmd())
	rootCmd.AddCommand(c.newLookupCmd())
	rootCmd.AddCommand(c.newStoreCmd())
	rootCmd.AddCommand(c.newInspectCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
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

// addContextFlags registers the flags selecting the build context.
func addContextFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("prefix", "p", ".", "Project prefix the cache directory is scoped to")
	cmd.Flags().StringP("target", "t", "", "Build target identifier")
	cmd.Flags().StringArrayP("define", "D", nil, "Preprocessor definition (repeatable)")
	_ = cmd.MarkFlagRequired("target")
}

func contextOptions(cmd *cobra.Command) app.ContextOptions {
	prefix, _ := cmd.Flags().GetString("prefix")
	target, _ := cmd.Flags().GetString("target")
	defs, _ := cmd.Flags().GetStringArray("define")
	return app.ContextOptions{
		Prefix:      prefix,
		Target:      target,
		Definitions: defs,
	}
}
