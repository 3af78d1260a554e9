package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vislab-robotics/boxed-cli/internal/core/domain"
)

var (
	sequencesUnique     bool
	sequencesStartToken bool
	sequencesJSON       bool
)

var sequencesCmd = &cobra.Command{
	Use:   "sequences",
	Short: "List the packing order of every scene",
	Long: `Lists the object packing sequences of all imported scenes, one scene
per line, in the order the participant packed the objects into the box.`,
	RunE: runSequences,
}

func init() {
	sequencesCmd.Flags().BoolVarP(&sequencesUnique, "unique", "u", false,
		"only scenes guaranteed to contain each object at most once")
	sequencesCmd.Flags().BoolVar(&sequencesStartToken, "start-token", false,
		"prepend the "+domain.StartToken+" token to every sequence")
	sequencesCmd.Flags().BoolVar(&sequencesJSON, "json", false, "output sequences as JSON")
	rootCmd.AddCommand(sequencesCmd)
}

func runSequences(cmd *cobra.Command, _ []string) error {
	if queryService == nil {
		return errors.New("query service not configured")
	}

	opts := domain.SequenceOptions{
		UniqueOnly: sequencesUnique,
		StartToken: sequencesStartToken,
	}
	sequences, err := queryService.Sequences(cmd.Context(), opts)
	if err != nil {
		return fmt.Errorf("listing sequences: %w", err)
	}

	if sequencesJSON {
		data, err := json.MarshalIndent(sequences, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal sequences: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	if len(sequences) == 0 {
		cmd.Println("No scenes imported.")
		return nil
	}

	for _, seq := range sequences {
		cmd.Println(strings.Join(seq, " -> "))
	}
	return nil
}
