package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/trajlab/annotator-api/internal/database"
	"github.com/trajlab/annotator-api/internal/models"
	"github.com/trajlab/annotator-api/pkg/config"
)

// migrateCmd represents the migrate command
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Manage the annotation schema",
	Long: `Manage the annotation database schema for the configured environment.

Table names are prefixed per environment (dev_, prod_, test1_), so each
deployment operates on its own annotations and subtasks tables.

Available subcommands:
  up      - Create the tables if they are absent
  drop    - Drop both tables
  status  - Show whether the tables exist and their row counts`,
}

// migrateUpCmd ensures the schema exists
var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Create the annotation tables if absent",
	Long: `Ensure the annotations and subtasks tables exist for the configured
environment. Safe to run repeatedly; existing tables are left untouched.`,
	RunE: runMigrateUp,
}

// migrateDropCmd drops both tables
var migrateDropCmd = &cobra.Command{
	Use:   "drop",
	Short: "Drop the annotation tables",
	Long: `Drop the subtasks and annotations tables for the configured
environment. All persisted annotations are lost.`,
	RunE: runMigrateDrop,
}

// migrateStatusCmd shows schema status
var migrateStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show schema status",
	Long: `Display whether the annotation tables exist for the configured
environment, and their current row counts.`,
	RunE: runMigrateStatus,
}

func init() {
	rootCmd.AddCommand(migrateCmd)
	migrateCmd.AddCommand(migrateUpCmd)
	migrateCmd.AddCommand(migrateDropCmd)
	migrateCmd.AddCommand(migrateStatusCmd)

	migrateDropCmd.Flags().BoolP("yes", "y", false, "skip the confirmation prompt")
}

// openDatabase connects using the current configuration
func openDatabase() (*database.DB, *config.Config, error) {
	cfg, err := config.GetConfig()
	if err != nil {
		return nil, nil, err
	}

	db, err := database.Initialize(cfg.Database, cfg.Environment)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	return db, cfg, nil
}

func runMigrateUp(cmd *cobra.Command, args []string) error {
	db, cfg, err := openDatabase()
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	if err := db.EnsureSchema(cfg.Annotations.Policy); err != nil {
		return err
	}

	names := db.TableNames()
	fmt.Printf("Tables ready: %s, %s\n", names.Annotations, names.Subtasks)
	return nil
}

func runMigrateDrop(cmd *cobra.Command, args []string) error {
	db, _, err := openDatabase()
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	yes, _ := cmd.Flags().GetBool("yes")
	if !yes {
		names := db.TableNames()
		fmt.Printf("WARNING: This will drop %s and %s. Continue? (y/N): ",
			names.Subtasks, names.Annotations)
		var response string
		_, _ = fmt.Scanln(&response)
		if response != "y" && response != "Y" {
			fmt.Println("Drop cancelled")
			return nil
		}
	}

	if err := db.DropSchema(); err != nil {
		return err
	}

	fmt.Println("Tables dropped successfully")
	return nil
}

func runMigrateStatus(cmd *cobra.Command, args []string) error {
	db, _, err := openDatabase()
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	names := db.TableNames()
	fmt.Println("Schema Status")
	fmt.Println(repeatString("-", 40))

	if !db.HasSchema() {
		fmt.Printf("Tables %s, %s: missing (run 'annotator-api migrate up')\n",
			names.Annotations, names.Subtasks)
		return nil
	}

	var annotationCount, subtaskCount int64
	if err := db.Model(&models.Annotation{}).Count(&annotationCount).Error; err != nil {
		return fmt.Errorf("counting annotations: %w", err)
	}
	if err := db.Model(&models.Subtask{}).Count(&subtaskCount).Error; err != nil {
		return fmt.Errorf("counting subtasks: %w", err)
	}

	fmt.Printf("%-20s present (%d rows)\n", names.Annotations, annotationCount)
	fmt.Printf("%-20s present (%d rows)\n", names.Subtasks, subtaskCount)
	return nil
}
