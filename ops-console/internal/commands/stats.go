package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"hospital-ops/client/dashboard"
	"hospital-ops/ops-console/internal/render"
)

func newStatsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show system-wide summary counts (admin)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireRole("admin"); err != nil {
				return err
			}

			a := dashboard.NewAdmin(client)
			stats, err := a.Stats(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to load stats: %w", err)
			}
			render.Stats(cmd.OutOrStdout(), stats)
			return nil
		},
	}
}
