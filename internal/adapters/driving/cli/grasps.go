package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/vislab-robotics/boxed-cli/internal/core/domain"
)

var (
	graspsObjects []string
	graspsJSON    bool
)

var graspsCmd = &cobra.Command{
	Use:   "grasps [pick|place]",
	Short: "List recorded grasp poses by object",
	Long: `Lists the pick or place poses recorded across all imported scenes,
grouped by clean object name. Each pose is a 3x3 rotation matrix and a
translation vector in metres.`,
	Args: cobra.ExactArgs(1),
	RunE: runGrasps,
}

func init() {
	graspsCmd.Flags().StringArrayVarP(&graspsObjects, "object", "o", nil,
		"restrict to an object (repeatable)")
	graspsCmd.Flags().BoolVar(&graspsJSON, "json", false, "output poses as JSON")
	rootCmd.AddCommand(graspsCmd)
}

func runGrasps(cmd *cobra.Command, args []string) error {
	if queryService == nil {
		return errors.New("query service not configured")
	}

	kind := domain.GraspKind(args[0])
	poses, err := queryService.GraspPoses(cmd.Context(), kind, graspsObjects)
	if err != nil {
		return fmt.Errorf("listing %s poses: %w", args[0], err)
	}

	if graspsJSON {
		data, err := json.MarshalIndent(poses, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal poses: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	if len(poses) == 0 {
		cmd.Println("No poses found.")
		return nil
	}

	names := make([]string, 0, len(poses))
	for name := range poses {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		cmd.Printf("%s (%d %s poses)\n", name, len(poses[name]), kind)
		for _, pose := range poses[name] {
			cmd.Printf("  t = [%.4f, %.4f, %.4f]\n",
				pose.Translation[0], pose.Translation[1], pose.Translation[2])
		}
	}
	return nil
}
