package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/trajlab/annotator-api/api"
	"github.com/trajlab/annotator-api/api/types"
	"github.com/trajlab/annotator-api/internal/database"
	annotationsvc "github.com/trajlab/annotator-api/internal/services/annotations"
	"github.com/trajlab/annotator-api/internal/services/videos"
	"github.com/trajlab/annotator-api/pkg/config"
)

var (
	serverHost string
	serverPort int
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the annotation API server",
	Long: `Start the Trajectory Annotation API server with the configured settings.

Schema creation is a prerequisite for serving traffic: the server ensures
the environment's annotation tables exist before listening, and refuses to
start when the store is unreachable.

Example:
  annotator-api serve
  annotator-api serve --port 9090
  annotator-api serve --host 0.0.0.0 --port 8080`,
	RunE: runServer,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	// Server flags
	serveCmd.Flags().StringVar(&serverHost, "host", "", "server host (overrides config)")
	serveCmd.Flags().IntVar(&serverPort, "port", 0, "server port (overrides config)")
}

func runServer(cmd *cobra.Command, args []string) error {
	cfg, err := config.GetConfig()
	if err != nil {
		return err
	}

	// Use config values if flags not provided
	if serverHost == "" {
		serverHost = cfg.Server.Host
	}
	if serverPort == 0 {
		serverPort = cfg.Server.Port
	}

	// A failed connection at startup is fatal: no traffic without a store
	db, err := database.Initialize(cfg.Database, cfg.Environment)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer func() { _ = db.Close() }()

	if err := db.EnsureSchema(cfg.Annotations.Policy); err != nil {
		return fmt.Errorf("failed to ensure schema: %w", err)
	}

	// Load the static catalog once at startup
	catalog, err := videos.NewFileCatalog(cfg.Videos.CatalogPath)
	if err != nil {
		return fmt.Errorf("failed to load video catalog: %w", err)
	}

	repository := annotationsvc.NewRepository(db.DB)
	deps := &types.Dependencies{
		DB:                db,
		AnnotationService: annotationsvc.NewService(repository, catalog, cfg.Annotations),
		Catalog:           catalog,
	}

	server := api.NewServer(fmt.Sprintf("%s:%d", serverHost, serverPort), cfg.Server)
	server.SetDependencies(deps)
	if err := server.Initialize(); err != nil {
		return fmt.Errorf("failed to initialize server: %w", err)
	}

	fmt.Printf("Starting Trajectory Annotation API server on %s:%d\n", serverHost, serverPort)
	fmt.Printf("Environment: %s (tables: %s, %s)\n",
		cfg.Environment, db.TableNames().Annotations, db.TableNames().Subtasks)

	// Channel to listen for interrupt signals
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	// Channel to receive server errors
	serverErr := make(chan error, 1)

	// Start server in a goroutine
	go func() {
		if err := server.Start(); err != nil && err != http.ErrServerClosed {
			serverErr <- fmt.Errorf("server error: %w", err)
		}
	}()

	fmt.Printf("Server is ready to handle requests at %s:%d\n", serverHost, serverPort)

	// Wait for interrupt signal or server error
	select {
	case <-stop:
		fmt.Println("\nShutting down server...")
	case err := <-serverErr:
		fmt.Fprintf(os.Stderr, "\n%v\n", err)
		fmt.Println("Shutting down server...")
	}

	// Create a context with timeout for shutdown
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	// Attempt graceful shutdown
	if err := server.Shutdown(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Server forced to shutdown: %v\n", err)
		return err
	}

	fmt.Println("Server gracefully stopped")
	return nil
}
