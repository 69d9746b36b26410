package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newRecentCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "recent",
		Short: "List recently converted files, most recent first",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			recent := c.app.Recent()
			if len(recent) == 0 {
				cmd.Println("no recent files")
				return
			}
			for _, p := range recent {
				cmd.Println(p)
			}
		},
	}
}
