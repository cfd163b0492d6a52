package task

import (
	"strings"
	"testing"
	"time"
)

func validList() List {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	return List{
		{ID: 1, Name: "Buy milk", Status: StatusTodo, CreatedAt: now, UpdatedAt: now},
		{ID: 2, Name: "Ship release", Description: "v1.2", Status: StatusDone, CreatedAt: now, UpdatedAt: now.Add(time.Hour)},
	}
}

func TestValidateAcceptsValidList(t *testing.T) {
	result := validList().Validate()
	if !result.UsedSchema {
		t.Fatalf("schema validation unavailable: %v", result.Warnings)
	}
	if !result.Valid {
		t.Errorf("expected valid, got errors: %v", result.Errors)
	}
}

func TestValidateAcceptsEmptyList(t *testing.T) {
	result := List{}.Validate()
	if !result.Valid {
		t.Errorf("expected valid, got errors: %v", result.Errors)
	}
}

func TestValidateRejections(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(List) List
		wantSub string
	}{
		{
			"invalid status",
			func(l List) List { l[0].Status = "doing"; return l },
			"status",
		},
		{
			"empty name",
			func(l List) List { l[0].Name = ""; return l },
			"name",
		},
		{
			"non-positive id",
			func(l List) List { l[0].ID = 0; return l },
			"id",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.mutate(validList()).Validate()
			if result.Valid {
				t.Fatal("expected validation failure, got valid")
			}
			found := false
			for _, err := range result.Errors {
				if strings.Contains(err.Error(), tt.wantSub) {
					found = true
				}
			}
			if !found {
				t.Errorf("no error mentioning %q in %v", tt.wantSub, result.Errors)
			}
		})
	}
}

func TestValidateMinimalDuplicateIDs(t *testing.T) {
	l := validList()
	l[1].ID = 1

	result := &ValidationResult{Valid: true}
	l.validateMinimal(result)
	if result.Valid {
		t.Fatal("expected duplicate id rejection")
	}
	found := false
	for _, err := range result.Errors {
		if strings.Contains(err.Error(), "duplicate") {
			found = true
		}
	}
	if !found {
		t.Errorf("no duplicate-id error in %v", result.Errors)
	}
}

func TestValidateMinimalUpdatedBeforeCreated(t *testing.T) {
	l := validList()
	l[0].UpdatedAt = l[0].CreatedAt.Add(-time.Hour)

	result := &ValidationResult{Valid: true}
	l.validateMinimal(result)
	if result.Valid {
		t.Fatal("expected rejection when updatedAt precedes createdAt")
	}
}
