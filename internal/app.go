// Package internal provides the App struct that wires all components of
// taskmaster together and initializes the CLI layer.
package internal

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/somsu123/taskmaster/internal/activity"
	"github.com/somsu123/taskmaster/internal/cli"
	"github.com/somsu123/taskmaster/internal/config"
	"github.com/somsu123/taskmaster/internal/storage"
	"github.com/somsu123/taskmaster/pkg/models"
)

// App holds the service dependencies of a taskmaster workspace.
type App struct {
	BasePath string

	// Configuration
	ConfigMgr config.Manager
	Config    *models.Config

	// Storage layer
	Store storage.TaskStore

	// Observability
	ActivityLog activity.Log
}

// NewApp creates and wires all components for the workspace rooted at
// basePath.
func NewApp(basePath string) (*App, error) {
	app := &App{BasePath: basePath}

	// --- Configuration ---
	app.ConfigMgr = config.NewManager(basePath)
	cfg, err := app.ConfigMgr.Load()
	if err != nil {
		return nil, fmt.Errorf("loading configuration: %w", err)
	}
	if err := app.ConfigMgr.Validate(cfg); err != nil {
		return nil, err
	}
	app.Config = cfg

	// --- Storage layer ---
	tasksPath := cfg.TasksFile
	if !filepath.IsAbs(tasksPath) {
		tasksPath = filepath.Join(basePath, tasksPath)
	}
	app.Store = storage.NewTaskStore(tasksPath)

	// --- Observability ---
	if cfg.ActivityLog != "" {
		logPath := cfg.ActivityLog
		if !filepath.IsAbs(logPath) {
			logPath = filepath.Join(basePath, logPath)
		}
		app.ActivityLog, err = activity.NewLog(logPath)
		if err != nil {
			// Non-fatal: disable activity recording if the log can't be opened.
			app.ActivityLog = nil
		}
	}

	// --- Wire CLI package-level variables ---
	cli.Store = app.Store
	cli.ActivityLog = app.ActivityLog
	if cfg.DefaultPriority.Valid() {
		cli.DefaultPriority = cfg.DefaultPriority
	}

	return app, nil
}

// Close releases resources held by the App, such as the activity log file
// handle. It is safe to call Close on an App whose ActivityLog is nil.
func (a *App) Close() error {
	if a.ActivityLog != nil {
		return a.ActivityLog.Close()
	}
	return nil
}

// ResolveBasePath determines the workspace directory for taskmaster data.
// It checks the TASKMASTER_HOME env var, then walks up from the current
// directory looking for .taskmaster.yaml, and falls back to the current
// directory.
func ResolveBasePath() string {
	if home := os.Getenv("TASKMASTER_HOME"); home != "" {
		return home
	}
	dir, err := os.Getwd()
	if err != nil {
		return "."
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, config.FileName)); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	cwd, _ := os.Getwd()
	return cwd
}
