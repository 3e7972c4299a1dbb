package audit

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/itops-tools/absence-backend-go/internal/domain/audit"
)

// Recorder appends audit entries for entity mutations. It must be called
// inside the same transaction as the mutation it records so the trail and
// the data cannot diverge.
type Recorder struct {
	repo  audit.Repository
	actor string
}

func NewRecorder(repo audit.Repository, actor string) *Recorder {
	if actor == "" {
		actor = "system"
	}
	return &Recorder{repo: repo, actor: actor}
}

// RecordCreate appends a CREATE entry with the persisted snapshot.
func (r *Recorder) RecordCreate(ctx context.Context, entityType string, entityID int64, newValues interface{}, description string) error {
	snapshot, err := json.Marshal(newValues)
	if err != nil {
		return fmt.Errorf("failed to marshal new values: %w", err)
	}
	if description == "" {
		description = fmt.Sprintf("Created %s with ID %d", entityType, entityID)
	}

	_, err = r.repo.Append(ctx, audit.Entry{
		Action:      audit.ActionCreate,
		EntityType:  entityType,
		EntityID:    &entityID,
		Actor:       r.actor,
		NewValues:   snapshot,
		Description: &description,
	})
	if err != nil {
		return fmt.Errorf("failed to append CREATE audit entry: %w", err)
	}
	return nil
}

// RecordUpdate appends an UPDATE entry with before and after snapshots.
func (r *Recorder) RecordUpdate(ctx context.Context, entityType string, entityID int64, oldValues, newValues interface{}, description string) error {
	oldSnapshot, err := json.Marshal(oldValues)
	if err != nil {
		return fmt.Errorf("failed to marshal old values: %w", err)
	}
	newSnapshot, err := json.Marshal(newValues)
	if err != nil {
		return fmt.Errorf("failed to marshal new values: %w", err)
	}
	if description == "" {
		description = fmt.Sprintf("Updated %s with ID %d", entityType, entityID)
	}

	_, err = r.repo.Append(ctx, audit.Entry{
		Action:      audit.ActionUpdate,
		EntityType:  entityType,
		EntityID:    &entityID,
		Actor:       r.actor,
		OldValues:   oldSnapshot,
		NewValues:   newSnapshot,
		Description: &description,
	})
	if err != nil {
		return fmt.Errorf("failed to append UPDATE audit entry: %w", err)
	}
	return nil
}

// RecordDelete appends a DELETE entry with the snapshot captured before
// removal.
func (r *Recorder) RecordDelete(ctx context.Context, entityType string, entityID int64, oldValues interface{}, description string) error {
	snapshot, err := json.Marshal(oldValues)
	if err != nil {
		return fmt.Errorf("failed to marshal old values: %w", err)
	}
	if description == "" {
		description = fmt.Sprintf("Deleted %s with ID %d", entityType, entityID)
	}

	_, err = r.repo.Append(ctx, audit.Entry{
		Action:      audit.ActionDelete,
		EntityType:  entityType,
		EntityID:    &entityID,
		Actor:       r.actor,
		OldValues:   snapshot,
		Description: &description,
	})
	if err != nil {
		return fmt.Errorf("failed to append DELETE audit entry: %w", err)
	}
	return nil
}
