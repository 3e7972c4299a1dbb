package audit

import (
	"context"
	"fmt"

	"github.com/itops-tools/absence-backend-go/internal/domain/audit"
)

// Service exposes the read and purge side of the audit trail.
type Service struct {
	audit.Repository
}

func NewService(repo audit.Repository) *Service {
	return &Service{Repository: repo}
}

// List returns a page of audit entries newest-first plus the total count.
// The limit defaults to 100 and is capped at 1000.
func (s *Service) List(ctx context.Context, filter audit.ListFilter) ([]audit.Entry, int64, error) {
	filter = filter.Normalized()

	entries, total, err := s.Repository.List(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list audit logs: %w", err)
	}
	return entries, total, nil
}

func (s *Service) Get(ctx context.Context, id int64) (audit.Entry, error) {
	return s.Repository.GetByID(ctx, id)
}

// Stats reports total entries, counts per action, and the latest entry.
func (s *Service) Stats(ctx context.Context) (audit.Stats, error) {
	byAction, err := s.Repository.CountByAction(ctx)
	if err != nil {
		return audit.Stats{}, fmt.Errorf("failed to count audit logs by action: %w", err)
	}

	var total int64
	for _, count := range byAction {
		total += count
	}

	latest, err := s.Repository.Latest(ctx)
	if err != nil {
		return audit.Stats{}, fmt.Errorf("failed to get latest audit log: %w", err)
	}

	return audit.Stats{
		TotalLogs: total,
		ByAction:  byAction,
		LatestLog: latest,
	}, nil
}

// Purge bulk-deletes audit entries, optionally only those of one action.
func (s *Service) Purge(ctx context.Context, action *audit.Action) (int64, error) {
	deleted, err := s.Repository.Purge(ctx, action)
	if err != nil {
		return 0, fmt.Errorf("failed to purge audit logs: %w", err)
	}
	return deleted, nil
}
