package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/zerr"
)

func (c *CLI) newCommitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "commit [files...]",
		Short: "Replace original binaries with their re-encoded versions",
		Long: "Commit deletes each original, converts its intermediate representation " +
			"to a fresh binary, and renames the result onto the original name. The " +
			"protocol is not transactional; per-file outcomes are always reported.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result := c.app.Commit(cmd.Context(), args)

			for _, f := range result.FullyConverted {
				cmd.Printf("converted  %s\n", f)
			}
			for _, f := range result.PartiallyConverted {
				cmd.Printf("PARTIAL    %s (intermediate preserved)\n", f)
			}
			for _, f := range result.Untouched {
				cmd.Printf("untouched  %s\n", f)
			}

			if !result.Complete() {
				err := zerr.With(zerr.New("commit batch incomplete"),
					"partial", len(result.PartiallyConverted))
				return zerr.With(err, "untouched", len(result.Untouched))
			}
			return nil
		},
	}
}
