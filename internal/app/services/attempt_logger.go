package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/fr0stylo/tflwatch/internal/app/ports"
)

// AttemptLogger appends one api_call_log row per fetch.
type AttemptLogger struct {
	stores ports.IngestionStoreFactory
	log    *slog.Logger
}

// NewAttemptLogger constructs an attempt logger.
func NewAttemptLogger(stores ports.IngestionStoreFactory, log *slog.Logger) *AttemptLogger {
	if log == nil {
		log = slog.Default()
	}
	return &AttemptLogger{stores: stores, log: log}
}

// LogAttempt stores one attempt on its own connection and returns the
// identifier assigned by that insert.
func (l *AttemptLogger) LogAttempt(ctx context.Context, observedAt time.Time, httpCode int, errorText *string, disruptionCount *int) (int64, error) {
	store, err := l.stores.Open(ctx)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrConnectionAcquire, err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			l.log.WarnContext(ctx, "Failed to release attempt log connection", "error", err)
		}
	}()

	attemptID, err := store.InsertAttempt(ctx, ports.AttemptInput{
		Timestamp:       observedAt,
		HTTPCode:        httpCode,
		ErrorText:       errorText,
		DisruptionCount: disruptionCount,
	})
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrLogPersist, err)
	}
	return attemptID, nil
}
