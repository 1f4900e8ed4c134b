package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/objcache/internal/app"
)

func (c *CLI) newStoreCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "store SOURCE OBJECT",
		Short: "Insert a compiled object into the cache",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			headers, _ := cmd.Flags().GetStringArray("header")
			headersFile, _ := cmd.Flags().GetString("headers-file")

			return c.app.Store(cmd.Context(), app.StoreOptions{
				ContextOptions: contextOptions(cmd),
				Headers:        headers,
				HeadersFile:    headersFile,
			}, args[0], args[1])
		},
	}
	addContextFlags(cmd)
	cmd.Flags().StringArrayP("header", "H", nil, "Header included by the source (repeatable)")
	cmd.Flags().String("headers-file", "", "File listing included headers, one per line")
	return cmd
}
