package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/somsu123/taskmaster/pkg/models"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}

func TestLoad_Defaults_WhenNoFile(t *testing.T) {
	dir := t.TempDir()
	m := NewManager(dir)

	cfg, err := m.Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.TasksFile != "tasks.json" {
		t.Errorf("TasksFile = %q, want %q", cfg.TasksFile, "tasks.json")
	}
	if cfg.DefaultPriority != models.PriorityMedium {
		t.Errorf("DefaultPriority = %q, want %q", cfg.DefaultPriority, models.PriorityMedium)
	}
	if cfg.ActivityLog != ".taskmaster_activity.jsonl" {
		t.Errorf("ActivityLog = %q, want %q", cfg.ActivityLog, ".taskmaster_activity.jsonl")
	}
}

func TestLoad_ReadsConfigFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, FileName, `
tasks_file: work/todo.json
defaults:
  priority: high
activity_log: work/activity.jsonl
`)

	m := NewManager(dir)
	cfg, err := m.Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.TasksFile != "work/todo.json" {
		t.Errorf("TasksFile = %q, want %q", cfg.TasksFile, "work/todo.json")
	}
	if cfg.DefaultPriority != models.PriorityHigh {
		t.Errorf("DefaultPriority = %q, want %q", cfg.DefaultPriority, models.PriorityHigh)
	}
	if cfg.ActivityLog != "work/activity.jsonl" {
		t.Errorf("ActivityLog = %q, want %q", cfg.ActivityLog, "work/activity.jsonl")
	}
}

func TestLoad_PartialConfig_FillsDefaults(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, FileName, `
defaults:
  priority: low
`)

	m := NewManager(dir)
	cfg, err := m.Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.DefaultPriority != models.PriorityLow {
		t.Errorf("DefaultPriority = %q, want %q", cfg.DefaultPriority, models.PriorityLow)
	}
	if cfg.TasksFile != "tasks.json" {
		t.Errorf("TasksFile = %q, want default %q", cfg.TasksFile, "tasks.json")
	}
	if cfg.ActivityLog != ".taskmaster_activity.jsonl" {
		t.Errorf("ActivityLog = %q, want default kept", cfg.ActivityLog)
	}
}

func TestLoad_EmptyActivityLogDisablesIt(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, FileName, `
activity_log: ""
`)

	m := NewManager(dir)
	cfg, err := m.Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.ActivityLog != "" {
		t.Errorf("ActivityLog = %q, want empty (disabled)", cfg.ActivityLog)
	}
}

func TestLoad_MalformedYAML(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, FileName, "tasks_file: [unclosed\n")

	m := NewManager(dir)
	if _, err := m.Load(); err == nil {
		t.Fatal("expected error for malformed config file")
	}
}

func TestValidate(t *testing.T) {
	m := NewManager(t.TempDir())

	tests := []struct {
		name    string
		cfg     *models.Config
		wantErr string
	}{
		{
			name: "valid",
			cfg:  Default(),
		},
		{
			name:    "empty tasks_file",
			cfg:     &models.Config{TasksFile: "  ", DefaultPriority: models.PriorityMedium},
			wantErr: "tasks_file must not be empty",
		},
		{
			name:    "invalid priority",
			cfg:     &models.Config{TasksFile: "tasks.json", DefaultPriority: "urgent"},
			wantErr: `defaults.priority "urgent" is invalid`,
		},
		{
			name:    "nil config",
			cfg:     nil,
			wantErr: "configuration is nil",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := m.Validate(tt.cfg)
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not mention %q", err.Error(), tt.wantErr)
			}
		})
	}
}

func TestValidate_CollectsAllProblems(t *testing.T) {
	m := NewManager(t.TempDir())

	err := m.Validate(&models.Config{TasksFile: "", DefaultPriority: "urgent"})
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !strings.Contains(err.Error(), "tasks_file") || !strings.Contains(err.Error(), "defaults.priority") {
		t.Errorf("expected both problems reported, got %q", err.Error())
	}
}

func TestWriteDefault(t *testing.T) {
	dir := t.TempDir()
	m := NewManager(dir)

	path, created, err := m.WriteDefault()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !created {
		t.Fatal("expected created=true on first write")
	}
	if path != filepath.Join(dir, FileName) {
		t.Errorf("path = %q, want %q", path, filepath.Join(dir, FileName))
	}

	// The written file loads back as the defaults.
	cfg, err := m.Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.TasksFile != "tasks.json" || cfg.DefaultPriority != models.PriorityMedium {
		t.Errorf("written defaults did not round-trip: %+v", cfg)
	}

	// A second write must not overwrite.
	if _, created, err := m.WriteDefault(); err != nil || created {
		t.Fatalf("expected created=false on existing file, got created=%v err=%v", created, err)
	}
}
