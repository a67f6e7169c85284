package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/trajlab/annotator-api/pkg/config"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "annotator-api",
	Short: "Trajectory annotation API server",
	Long: `Trajectory Annotation API - persistence and progress tracking for video labeling

Annotators watch short robot-trajectory videos and label temporal subtasks
(start step, end step, description, time spent). This server validates and
atomically persists each submission against a per-video annotation cap and
reports aggregate labeling progress per video.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// NewRootCmd returns the root command (exported for testing)
func NewRootCmd() *cobra.Command {
	return rootCmd
}

func init() {
	cobra.OnInitialize(initConfig)
}

// initConfig loads the configuration when a command needs it
func initConfig() {
	// Version and help output should not depend on a readable config
	cmd, _, _ := rootCmd.Find(os.Args[1:])
	if cmd != nil && (cmd.Name() == "version" || cmd.Name() == "help") {
		return
	}

	if err := config.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing config: %v\n", err)
		os.Exit(1)
	}
}
