package cli

import (
	"fmt"
	"strings"
	"testing"

	"github.com/somsu123/taskmaster/internal/activity"
	"github.com/somsu123/taskmaster/pkg/models"
)

func TestDeleteCmd_Registration(t *testing.T) {
	found := false
	for _, cmd := range rootCmd.Commands() {
		if cmd.Name() == "delete" {
			found = true
			break
		}
	}
	if !found {
		t.Error("expected 'delete' command to be registered on root")
	}
}

func TestDeleteCmd_NilStore(t *testing.T) {
	origStore := Store
	defer func() { Store = origStore }()
	Store = nil

	err := deleteCmd.RunE(deleteCmd, []string{"1"})
	if err == nil {
		t.Fatal("expected error when Store is nil")
	}
	if !strings.Contains(err.Error(), "task store not initialized") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestDeleteCmd_InvalidID(t *testing.T) {
	origStore := Store
	defer func() { Store = origStore }()
	Store = &storeMock{}

	err := deleteCmd.RunE(deleteCmd, []string{"one"})
	if err == nil {
		t.Fatal("expected error for non-numeric id")
	}
	if !strings.Contains(err.Error(), "invalid task id") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestDeleteCmd_Success(t *testing.T) {
	origStore := Store
	origLog := ActivityLog
	defer func() {
		Store = origStore
		ActivityLog = origLog
	}()

	var capturedID int
	Store = &storeMock{
		deleteFn: func(id int) (bool, error) {
			capturedID = id
			return true, nil
		},
		listFn: func(includeCompleted bool) []models.Task {
			return []models.Task{{ID: 3, Title: "Water plants", Priority: models.PriorityLow}}
		},
	}
	log := &logMock{}
	ActivityLog = log

	err := deleteCmd.RunE(deleteCmd, []string{"3"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if capturedID != 3 {
		t.Errorf("Delete called with id %d, want 3", capturedID)
	}
	if len(log.entries) != 1 {
		t.Fatalf("expected 1 activity entry, got %d", len(log.entries))
	}
	if log.entries[0].Type != activity.TypeDeleted {
		t.Errorf("entry type = %q, want %q", log.entries[0].Type, activity.TypeDeleted)
	}
	// The title is captured before the task disappears from the store.
	if log.entries[0].Title != "Water plants" {
		t.Errorf("entry title = %q, want %q", log.entries[0].Title, "Water plants")
	}
}

func TestDeleteCmd_NotFound(t *testing.T) {
	origStore := Store
	origLog := ActivityLog
	defer func() {
		Store = origStore
		ActivityLog = origLog
	}()

	Store = &storeMock{
		deleteFn: func(id int) (bool, error) { return false, nil },
	}
	log := &logMock{}
	ActivityLog = log

	err := deleteCmd.RunE(deleteCmd, []string{"99"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(log.entries) != 0 {
		t.Errorf("expected no activity entries, got %d", len(log.entries))
	}
}

func TestDeleteCmd_StoreError(t *testing.T) {
	origStore := Store
	defer func() { Store = origStore }()

	Store = &storeMock{
		deleteFn: func(id int) (bool, error) {
			return false, fmt.Errorf("read-only filesystem")
		},
	}

	err := deleteCmd.RunE(deleteCmd, []string{"1"})
	if err == nil {
		t.Fatal("expected error from Delete")
	}
	if !strings.Contains(err.Error(), "read-only filesystem") {
		t.Errorf("unexpected error: %v", err)
	}
}
