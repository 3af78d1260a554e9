package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var layoutCmd = &cobra.Command{
	Use:   "layout [participant] [scene]",
	Short: "Show the initial layout of one scene",
	Long: `Shows the starting pose of every object in a scene, as captured before
the participant began packing, plus the top-down snapshot location.`,
	Args: cobra.ExactArgs(2),
	RunE: runLayout,
}

func init() {
	rootCmd.AddCommand(layoutCmd)
}

func runLayout(cmd *cobra.Command, args []string) error {
	if queryService == nil {
		return errors.New("query service not configured")
	}

	participant, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid participant %q", args[0])
	}
	number, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("invalid scene %q", args[1])
	}

	scene, err := queryService.InitialLayout(cmd.Context(), participant, number)
	if err != nil {
		return fmt.Errorf("getting scene %d/%d: %w", participant, number, err)
	}

	cmd.Printf("Participant %d, scene %d\n", scene.Participant, scene.Number)
	if len(scene.InitialLayout) == 0 {
		cmd.Println("No initial layout captured.")
	}
	for _, entry := range scene.InitialLayout {
		cmd.Printf("  %-22s #%04d at [%.4f, %.4f, %.4f]\n",
			entry.Name, entry.UniqueID,
			entry.Pose.Translation[0], entry.Pose.Translation[1], entry.Pose.Translation[2])
	}
	if scene.Snapshot != nil {
		cmd.Printf("Snapshot: %s (%dx%d)\n",
			scene.Snapshot.Path, scene.Snapshot.Width, scene.Snapshot.Height)
	}
	return nil
}
