// Package cli implements the boxed command line interface. Commands
// share a set of package-level services wired against the SQLite index
// in the boxed data directory.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vislab-robotics/boxed-cli/internal/adapters/driven/config/file"
	"github.com/vislab-robotics/boxed-cli/internal/adapters/driven/storage/sqlite"
	"github.com/vislab-robotics/boxed-cli/internal/core/ports/driven"
	"github.com/vislab-robotics/boxed-cli/internal/core/ports/driving"
	"github.com/vislab-robotics/boxed-cli/internal/core/services"
	"github.com/vislab-robotics/boxed-cli/internal/logger"
)

var (
	version = "dev"

	verbose   bool
	dataDir   string
	configDir string

	store         *sqlite.Store
	configStore   driven.ConfigStore
	sceneStore    driven.SceneStore
	runStore      driven.ImportStateStore
	queryService  driving.QueryService
	statsService  driving.StatsService
	reportService driving.ReportService
)

var rootCmd = &cobra.Command{
	Use:   "boxed",
	Short: "Import and query the BoxED box-packing dataset",
	Long: `boxed imports a BoxED virtual-reality box-packing dataset into a
local SQLite index and answers questions about it: packing sequences,
grasp poses, scene durations, initial layouts and summary statistics.

The index lives in ~/.boxed by default.`,
	SilenceUsage:      true,
	PersistentPreRunE: initServices,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "data directory (default ~/.boxed/data)")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "config directory (default ~/.boxed)")
}

// initServices wires the shared services before any command runs.
func initServices(cmd *cobra.Command, _ []string) error {
	logger.SetVerbose(verbose)

	// Version and help do not need the index.
	if cmd.Name() == "version" {
		return nil
	}

	cfg, err := file.NewConfigStore(configDir)
	if err != nil {
		return fmt.Errorf("opening config: %w", err)
	}
	configStore = cfg

	dir := dataDir
	if dir == "" {
		dir = cfg.GetString(file.KeyDataDir)
	}

	store, err = sqlite.NewStore(dir)
	if err != nil {
		return fmt.Errorf("opening index: %w", err)
	}

	sceneStore = store.SceneStore()
	runStore = store.ImportStateStore()
	queryService = services.NewQuery(sceneStore)
	stats := services.NewStats(sceneStore, runStore, queryService)
	statsService = stats
	reportService = stats
	return nil
}

// Execute runs the root command. The version string is stamped at build
// time.
func Execute(v string) error {
	if v != "" {
		version = v
	}
	defer func() {
		if store != nil {
			store.Close() //nolint:errcheck
		}
	}()
	return rootCmd.Execute()
}
