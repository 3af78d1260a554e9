package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var objectsCmd = &cobra.Command{
	Use:   "objects",
	Short: "List the object catalog with grasp coverage",
	Long: `Lists every object in the dataset catalog together with the number of
grasps recorded for it across the imported scenes.`,
	RunE: runObjects,
}

func init() {
	rootCmd.AddCommand(objectsCmd)
}

func runObjects(cmd *cobra.Command, _ []string) error {
	if queryService == nil {
		return errors.New("query service not configured")
	}

	coverage, err := queryService.Objects(cmd.Context())
	if err != nil {
		return fmt.Errorf("listing objects: %w", err)
	}

	for _, c := range coverage {
		cmd.Printf("%-22s %4d grasps\n", c.Name, c.PickCount)
	}
	return nil
}
