package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newLookupCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lookup SOURCE",
		Short: "Print the cached object of a source, exit 1 on a miss",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := c.app.Lookup(cmd.Context(), contextOptions(cmd), args[0])
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
	addContextFlags(cmd)
	return cmd
}
