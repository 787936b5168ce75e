package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hojoonlee/toondex/internal/api"
	"github.com/hojoonlee/toondex/internal/core"
	"github.com/hojoonlee/toondex/internal/jobs"
	"github.com/hojoonlee/toondex/internal/library"
)

const version = "1.0.0"

func main() {
	log.SetOutput(os.Stdout)
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	// Initialize the core application components
	app, err := core.New(version)
	if err != nil {
		log.Fatalf("Fatal error during application setup: %v", err)
	}

	// Register background jobs with the manager.
	app.JobManager().Register(library.SyncJobID, "Catalog Sync", library.SyncCatalog)

	// Build the catalog once at startup so the API has something to serve.
	if err := app.JobManager().RunJob(library.SyncJobID, app); err != nil {
		log.Printf("Warning: initial catalog sync could not start: %v", err)
	}

	// Watch the library directory so renames and new archives show up
	// without waiting for the next scheduled sync.
	watcher := library.NewWatcherService(app)
	if err := watcher.Start(); err != nil {
		log.Printf("Warning: file watcher could not start: %v", err)
	} else {
		defer watcher.Stop()
	}

	// Start the periodic sync scheduler.
	jobs.StartJobs(app)

	// Setup the API server
	server := api.NewServer(app)
	addr := fmt.Sprintf(":%d", app.Config().Port)
	httpServer := &http.Server{
		Addr:    addr,
		Handler: server.Router(),
	}
	// --- Graceful Shutdown ---
	// Start the server in a goroutine so it doesn't block.
	go func() {
		log.Printf("Starting web server on %s", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Could not start server: %v", err)
		}
	}()

	// Wait for an interrupt signal.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	// Create a context with a timeout to allow existing connections to finish.
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Attempt a graceful shutdown.
	if err := httpServer.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting.")
}
