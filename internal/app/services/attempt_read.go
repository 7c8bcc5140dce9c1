package services

import (
	"context"
	"fmt"

	"github.com/fr0stylo/tflwatch/internal/app/domain"
	"github.com/fr0stylo/tflwatch/internal/app/ports"
)

const (
	defaultAttemptLimit = 20
	maxAttemptLimit     = 200
)

// AttemptReadService provides read-side views of the attempt history.
type AttemptReadService struct {
	store ports.AttemptReadStore
}

// NewAttemptReadService constructs a read-side service.
func NewAttemptReadService(store ports.AttemptReadStore) *AttemptReadService {
	return &AttemptReadService{store: store}
}

// ListRecentAttempts returns newest attempts first. Limit is clamped to [1, 200].
func (s *AttemptReadService) ListRecentAttempts(ctx context.Context, limit int) ([]domain.AttemptSummary, error) {
	switch {
	case limit <= 0:
		limit = defaultAttemptLimit
	case limit > maxAttemptLimit:
		limit = maxAttemptLimit
	}
	return s.store.ListRecentAttempts(ctx, limit)
}

// GetAttempt returns one attempt, or ports.ErrNotFound.
func (s *AttemptReadService) GetAttempt(ctx context.Context, attemptID int64) (domain.AttemptSummary, error) {
	return s.store.GetAttempt(ctx, attemptID)
}

// GetAttemptDisruptions returns an attempt with the disruptions stored for it.
func (s *AttemptReadService) GetAttemptDisruptions(ctx context.Context, attemptID int64) (domain.AttemptSummary, []domain.DisruptionRecord, error) {
	attempt, err := s.store.GetAttempt(ctx, attemptID)
	if err != nil {
		return domain.AttemptSummary{}, nil, err
	}
	records, err := s.store.ListDisruptions(ctx, attemptID)
	if err != nil {
		return domain.AttemptSummary{}, nil, fmt.Errorf("list disruptions for attempt %d: %w", attemptID, err)
	}
	return attempt, records, nil
}
