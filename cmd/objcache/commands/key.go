package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newKeyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "key",
		Short: "Print the context hash and cache directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			res, err := c.app.Key(cmd.Context(), contextOptions(cmd))
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\n%s\n", res.Hash, res.Dir)
			return nil
		},
	}
	addContextFlags(cmd)
	return cmd
}
