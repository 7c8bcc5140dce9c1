package ports

import (
	"context"
	"errors"

	"github.com/fr0stylo/tflwatch/internal/app/domain"
)

// ErrNotFound is returned by read stores when a row does not exist.
var ErrNotFound = errors.New("not found")

// AttemptReadStore serves the read API. It never writes.
type AttemptReadStore interface {
	ListRecentAttempts(ctx context.Context, limit int) ([]domain.AttemptSummary, error)
	GetAttempt(ctx context.Context, attemptID int64) (domain.AttemptSummary, error)
	ListDisruptions(ctx context.Context, attemptID int64) ([]domain.DisruptionRecord, error)
}
