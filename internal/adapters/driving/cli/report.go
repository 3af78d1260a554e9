package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vislab-robotics/boxed-cli/internal/adapters/driven/config/file"
	"github.com/vislab-robotics/boxed-cli/internal/adapters/driving/report"
)

var reportOut string

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Render an HTML report of the imported dataset",
	Long: `Renders a standalone HTML page with charts over the imported dataset:
scene duration histogram, packing sequence lengths and per-object grasp
coverage.`,
	RunE: runReport,
}

func init() {
	reportCmd.Flags().StringVarP(&reportOut, "out", "o", "", "output file (default boxed-report.html)")
	rootCmd.AddCommand(reportCmd)
}

func runReport(cmd *cobra.Command, _ []string) error {
	if reportService == nil {
		return errors.New("report service not configured")
	}

	data, err := reportService.Build(cmd.Context())
	if err != nil {
		return fmt.Errorf("building report: %w", err)
	}

	out := reportOut
	if out == "" && configStore != nil {
		out = configStore.GetString(file.KeyReportOutput)
	}
	if out == "" {
		out = "boxed-report.html"
	}

	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("creating %s: %w", out, err)
	}
	defer f.Close()

	if err := report.NewBuilder().Render(data, f); err != nil {
		return err
	}

	cmd.Printf("Report written to %s\n", out)
	return nil
}
