// Package config loads, validates, and bootstraps taskmaster settings from
// the .taskmaster.yaml workspace file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/somsu123/taskmaster/pkg/models"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// FileName is the workspace configuration file taskmaster looks for.
const FileName = ".taskmaster.yaml"

// Manager defines the interface for loading, validating, and writing the
// workspace configuration.
type Manager interface {
	Load() (*models.Config, error)
	Validate(cfg *models.Config) error
	WriteDefault() (path string, created bool, err error)
}

// viperManager implements Manager using Viper for reading the YAML
// configuration file.
type viperManager struct {
	// basePath is the directory where .taskmaster.yaml resides.
	basePath string
}

// NewManager creates a Manager that reads configuration relative to basePath.
func NewManager(basePath string) Manager {
	return &viperManager{basePath: basePath}
}

// Default returns a Config populated with the built-in defaults.
func Default() *models.Config {
	return &models.Config{
		TasksFile:       "tasks.json",
		DefaultPriority: models.PriorityMedium,
		ActivityLog:     ".taskmaster_activity.jsonl",
	}
}

// Load reads .taskmaster.yaml from the base path. A missing file is not an
// error; the defaults are returned.
func (m *viperManager) Load() (*models.Config, error) {
	cfg := Default()

	v := viper.New()
	v.SetConfigName(".taskmaster")
	v.SetConfigType("yaml")
	v.AddConfigPath(m.basePath)

	// Set Viper defaults so missing keys fall back gracefully.
	v.SetDefault("tasks_file", cfg.TasksFile)
	v.SetDefault("defaults.priority", string(cfg.DefaultPriority))
	v.SetDefault("activity_log", cfg.ActivityLog)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading %s: %w", FileName, err)
	}

	// Map nested YAML keys to flat Config fields.
	cfg.TasksFile = v.GetString("tasks_file")
	cfg.DefaultPriority = models.Priority(v.GetString("defaults.priority"))

	// IsSet distinguishes "key absent" (keep default) from "explicitly
	// empty" (activity logging disabled).
	if v.IsSet("activity_log") {
		cfg.ActivityLog = v.GetString("activity_log")
	}

	return cfg, nil
}

// Validate checks the configuration for invalid values and returns a clear
// error message identifying every problem.
func (m *viperManager) Validate(cfg *models.Config) error {
	if cfg == nil {
		return fmt.Errorf("configuration is nil")
	}

	var errs []string

	if strings.TrimSpace(cfg.TasksFile) == "" {
		errs = append(errs, "tasks_file must not be empty")
	}

	if cfg.DefaultPriority != "" && !cfg.DefaultPriority.Valid() {
		errs = append(errs, fmt.Sprintf(
			"defaults.priority %q is invalid, must be one of: low, medium, high",
			cfg.DefaultPriority,
		))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(errs, "\n  - "))
	}

	return nil
}

// fileConfig mirrors the on-disk YAML layout of .taskmaster.yaml.
type fileConfig struct {
	TasksFile string `yaml:"tasks_file"`
	Defaults  struct {
		Priority string `yaml:"priority"`
	} `yaml:"defaults"`
	ActivityLog string `yaml:"activity_log"`
}

// WriteDefault creates .taskmaster.yaml with the built-in defaults. An
// existing file is left untouched and reported with created=false.
func (m *viperManager) WriteDefault() (string, bool, error) {
	path := filepath.Join(m.basePath, FileName)

	if _, err := os.Stat(path); err == nil {
		return path, false, nil
	} else if !os.IsNotExist(err) {
		return "", false, fmt.Errorf("checking %s: %w", FileName, err)
	}

	cfg := Default()
	var fc fileConfig
	fc.TasksFile = cfg.TasksFile
	fc.Defaults.Priority = string(cfg.DefaultPriority)
	fc.ActivityLog = cfg.ActivityLog

	data, err := yaml.Marshal(&fc)
	if err != nil {
		return "", false, fmt.Errorf("marshaling default config: %w", err)
	}
	if err := os.MkdirAll(m.basePath, 0o750); err != nil {
		return "", false, fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return "", false, fmt.Errorf("writing %s: %w", FileName, err)
	}

	return path, true, nil
}
