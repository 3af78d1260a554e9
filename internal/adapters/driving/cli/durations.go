package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var durationsJSON bool

var durationsCmd = &cobra.Command{
	Use:   "durations",
	Short: "List scene durations",
	Long: `Lists the duration of every imported scene in milliseconds: the time
from the first trajectory sample of the first-packed object to the last
sample of the last-packed object.`,
	RunE: runDurations,
}

func init() {
	durationsCmd.Flags().BoolVar(&durationsJSON, "json", false, "output durations as JSON")
	rootCmd.AddCommand(durationsCmd)
}

func runDurations(cmd *cobra.Command, _ []string) error {
	if queryService == nil {
		return errors.New("query service not configured")
	}

	durations, err := queryService.SceneDurations(cmd.Context())
	if err != nil {
		return fmt.Errorf("listing durations: %w", err)
	}

	if durationsJSON {
		data, err := json.MarshalIndent(durations, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal durations: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	if len(durations) == 0 {
		cmd.Println("No scenes with trajectories imported.")
		return nil
	}

	for _, d := range durations {
		cmd.Printf("%d ms (%.1fs)\n", d, float64(d)/1000)
	}
	return nil
}
