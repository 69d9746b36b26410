package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/zerr"
)

func (c *CLI) newConvertCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "convert [paths...]",
		Short: "Convert source asset files, skipping ones with valid fingerprints",
		Long: "Convert runs the external converter over the given files. Directory " +
			"arguments are scanned for source assets. Files whose content and " +
			"derived artifact are unchanged since the last conversion are skipped.",
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				// Display command usage help without returning an error
				_ = cmd.Help()
				return nil
			}

			report, err := c.app.Convert(cmd.Context(), args)
			cmd.Printf("skipped: %d  succeeded: %d  failed: %d\n",
				report.Skipped, report.Succeeded, report.Failed)
			for _, te := range report.Errors {
				cmd.Printf("  %s: %s\n", te.Path, te.Reason)
			}
			if err != nil {
				return err
			}
			if report.Failed > 0 {
				return zerr.With(zerr.New("conversion batch finished with failures"),
					"failed", report.Failed)
			}
			return nil
		},
	}
}
