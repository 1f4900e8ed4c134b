package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newInspectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "List the cached entries of a context and their validity",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Inspect(cmd.Context(), contextOptions(cmd), cmd.OutOrStdout())
		},
	}
	addContextFlags(cmd)
	return cmd
}
