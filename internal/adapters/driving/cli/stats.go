package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vislab-robotics/boxed-cli/internal/core/domain"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Summarise the imported dataset",
	Long: `Prints summary statistics over the imported dataset: scene duration
distribution and object motion (path lengths and the observed trajectory
sample rate against the nominal 20 Hz).`,
	RunE: runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, _ []string) error {
	if statsService == nil {
		return errors.New("stats service not configured")
	}

	ctx := cmd.Context()

	durations, err := statsService.Durations(ctx)
	switch {
	case errors.Is(err, domain.ErrEmptyDataset):
		cmd.Println("No scenes with trajectories imported.")
	case err != nil:
		return fmt.Errorf("computing duration stats: %w", err)
	default:
		cmd.Println("Scene durations:")
		cmd.Printf("  scenes: %d\n", durations.Count)
		cmd.Printf("  mean:   %.0f ms\n", durations.Mean)
		cmd.Printf("  stddev: %.0f ms\n", durations.StdDev)
		cmd.Printf("  min:    %.0f ms\n", durations.Min)
		cmd.Printf("  median: %.0f ms\n", durations.Median)
		cmd.Printf("  p90:    %.0f ms\n", durations.P90)
		cmd.Printf("  max:    %.0f ms\n", durations.Max)
	}

	trajectories, err := statsService.Trajectories(ctx)
	if errors.Is(err, domain.ErrEmptyDataset) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("computing trajectory stats: %w", err)
	}

	cmd.Println("Object motion:")
	cmd.Printf("  objects:         %d\n", trajectories.Objects)
	cmd.Printf("  samples:         %d\n", trajectories.Samples)
	cmd.Printf("  total path:      %.2f m\n", trajectories.TotalPathLength)
	cmd.Printf("  mean path:       %.2f m\n", trajectories.MeanPathLength)
	cmd.Printf("  sample interval: %.1f ms (nominal %.0f ms)\n",
		trajectories.MeanSampleInterval, domain.NominalSampleIntervalMS)
	return nil
}
