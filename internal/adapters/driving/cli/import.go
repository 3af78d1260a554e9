package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vislab-robotics/boxed-cli/internal/adapters/driven/config/file"
	"github.com/vislab-robotics/boxed-cli/internal/adapters/driven/decoders"
	"github.com/vislab-robotics/boxed-cli/internal/adapters/driven/scanner/filesystem"
	"github.com/vislab-robotics/boxed-cli/internal/core/services"
)

var (
	importWatch  bool
	importCamera bool
)

var importCmd = &cobra.Command{
	Use:   "import [dataset-root]",
	Short: "Import a BoxED dataset tree into the local index",
	Long: `Walks a BoxED dataset tree (participant directories containing scene
directories) and imports every scene into the local SQLite index.
Re-importing a scene replaces its objects.

The dataset root defaults to the configured dataset.root.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runImport,
}

func init() {
	importCmd.Flags().BoolVarP(&importWatch, "watch", "w", false, "re-import when dataset files change")
	importCmd.Flags().BoolVar(&importCamera, "camera", false, "also import headset camera trajectories")
	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	root := ""
	if len(args) > 0 {
		root = args[0]
	} else if configStore != nil {
		root = configStore.GetString(file.KeyDatasetRoot)
	}
	if root == "" {
		return errors.New("no dataset root: pass one or set dataset.root")
	}

	camera := importCamera
	if !camera && configStore != nil {
		camera = configStore.GetBool(file.KeyCameraTrajectories)
	}

	orch := services.NewImportOrchestrator(
		filesystem.Factory(),
		decoders.NewDefaultRegistry(),
		sceneStore,
		runStore,
		camera,
	)

	if importWatch {
		cmd.Printf("Watching %s (ctrl-c to stop)...\n", root)
		return orch.Watch(cmd.Context(), root)
	}

	cmd.Printf("Importing %s...\n", root)
	status, err := orch.Import(cmd.Context(), root)
	if err != nil {
		return fmt.Errorf("import failed: %w", err)
	}

	cmd.Printf("Imported %d scenes, %d objects", status.Scenes, status.Objects)
	if status.ErrorCount > 0 {
		cmd.Printf(" (%d files skipped)", status.ErrorCount)
	}
	cmd.Println()

	// Remember the root for later runs (best effort).
	if configStore != nil {
		configStore.Set(file.KeyDatasetRoot, root) //nolint:errcheck
	}
	return nil
}
