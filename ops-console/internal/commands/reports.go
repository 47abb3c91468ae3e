package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"hospital-ops/client/dashboard"
	"hospital-ops/ops-console/internal/render"
)

var reportFlags struct {
	start  string
	end    string
	format string
	out    string
}

func newReportsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reports",
		Short: "Show the aggregate report (admin)",
		RunE:  runReportsShow,
	}
	cmd.PersistentFlags().StringVar(&reportFlags.start, "start", "", "Range start, YYYY-MM-DD")
	cmd.PersistentFlags().StringVar(&reportFlags.end, "end", "", "Range end, YYYY-MM-DD")

	export := &cobra.Command{
		Use:   "export",
		Short: "Download the report as a file",
		RunE:  runReportsExport,
	}
	export.Flags().StringVar(&reportFlags.format, "format", "pdf", "Export format (pdf, csv)")
	export.Flags().StringVar(&reportFlags.out, "out", "", "Output file; defaults to hospital-report.<format>")

	cmd.AddCommand(export)
	return cmd
}

func runReportsShow(cmd *cobra.Command, args []string) error {
	if err := requireRole("admin"); err != nil {
		return err
	}

	a := dashboard.NewAdmin(client)
	report, err := a.Report(cmd.Context(), reportFlags.start, reportFlags.end)
	if err != nil {
		return fmt.Errorf("failed to load report: %w", err)
	}
	render.Report(cmd.OutOrStdout(), report)
	return nil
}

func runReportsExport(cmd *cobra.Command, args []string) error {
	if err := requireRole("admin"); err != nil {
		return err
	}

	a := dashboard.NewAdmin(client)
	blob, err := a.ExportReport(cmd.Context(), reportFlags.format, reportFlags.start, reportFlags.end)
	if err != nil {
		return fmt.Errorf("failed to export report: %w", err)
	}

	name := reportFlags.out
	if name == "" {
		name = "hospital-report." + reportFlags.format
	}
	if err := os.WriteFile(name, blob, 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s (%d bytes)\n", name, len(blob))
	return nil
}
