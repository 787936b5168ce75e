package core

import (
	"fmt"
	"log"

	"github.com/hojoonlee/toondex/internal/config"
	"github.com/hojoonlee/toondex/internal/jobs"
	"github.com/hojoonlee/toondex/internal/store"
	"github.com/hojoonlee/toondex/internal/util"
	"github.com/hojoonlee/toondex/internal/websocket"
)

// App holds the core components of the application that are shared
// between the server and the background jobs. It implements
// jobs.JobContext.
type App struct {
	cfg        *config.Config
	wsHub      *websocket.Hub
	catalog    *store.Catalog
	jobManager *jobs.JobManager
	version    string
}

// New sets up and returns a new App instance. It handles loading the
// configuration and wiring the shared components.
func New(version string) (*App, error) {
	// Load configuration from config.yml
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return NewWithConfig(cfg, version)
}

// NewWithConfig wires an App around an already-loaded configuration.
func NewWithConfig(cfg *config.Config, version string) (*App, error) {
	// The export directory must be writable before anything runs; it is
	// created here when missing. The library path is only read, so a
	// missing library surfaces as an empty catalog at sync time instead.
	if err := util.ValidateFolderPath(cfg.Export.Path, "."); err != nil {
		return nil, fmt.Errorf("invalid export path: %w", err)
	}

	app := &App{
		cfg:     cfg,
		wsHub:   websocket.NewHub(),
		catalog: store.NewCatalog(),
		version: version,
	}
	app.jobManager = jobs.NewManager(app)

	// The hub must be consuming broadcasts before any job can send them.
	go app.wsHub.Run()

	log.Println("Core application setup complete.")
	return app, nil
}

// Config returns the loaded configuration.
func (a *App) Config() *config.Config { return a.cfg }

// WsHub returns the websocket hub for progress broadcasts.
func (a *App) WsHub() *websocket.Hub { return a.wsHub }

// Catalog returns the shared catalog snapshot store.
func (a *App) Catalog() *store.Catalog { return a.catalog }

// JobManager returns the background job manager.
func (a *App) JobManager() *jobs.JobManager { return a.jobManager }

// Version returns the application version string.
func (a *App) Version() string { return a.version }
