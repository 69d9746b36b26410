package commands

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
	"go.trai.ch/forge/internal/core/domain"
)

func (c *CLI) newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show cache hit/miss statistics and memory usage",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			stats := c.app.Stats()
			if !stats.Enabled {
				cmd.Println("cache disabled")
				return
			}

			cmd.Printf("memory: %s / %s\n",
				formatBytes(stats.MemoryUsage), formatBytes(stats.MemoryMax))

			domains := make([]domain.CacheDomain, 0, len(stats.PerDomain))
			for d := range stats.PerDomain {
				domains = append(domains, d)
			}
			sort.Slice(domains, func(i, j int) bool { return domains[i] < domains[j] })

			for _, d := range domains {
				ds := stats.PerDomain[d]
				cmd.Printf("%-22s hits %-6d misses %-6d rate %5.1f%%  entries %d\n",
					d, ds.Hits, ds.Misses, ds.Rate(), stats.Sizes[d])
			}
			cmd.Printf("overall hit rate: %.1f%%\n", stats.OverallRate())
		},
	}
}

func formatBytes(n int64) string {
	const mb = 1 << 20
	if n >= mb {
		return fmt.Sprintf("%.1f MiB", float64(n)/float64(mb))
	}
	return fmt.Sprintf("%d B", n)
}
