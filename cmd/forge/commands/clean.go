package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newCleanCmd() *cobra.Command {
	var disk bool

	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Empty the in-memory cache tables",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			c.app.Clean(disk)
			if disk {
				cmd.Println("cleared memory tables, snapshots, and terrain bundles")
				return
			}
			cmd.Println("cleared memory tables")
		},
	}
	cmd.Flags().BoolVar(&disk, "disk", false, "Also remove persisted snapshots and terrain bundles")

	return cmd
}
