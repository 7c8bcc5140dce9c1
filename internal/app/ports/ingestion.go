package ports

import (
	"context"
	"time"
)

// IngestionStore is the append-only storage contract for one pipeline stage.
// Each store holds one store connection until Close.
type IngestionStore interface {
	InsertAttempt(ctx context.Context, attempt AttemptInput) (int64, error)
	InsertDisruption(ctx context.Context, disruption DisruptionInput) error
	Close() error
}

// AttemptInput is one api_call_log append request.
type AttemptInput struct {
	Timestamp       time.Time
	HTTPCode        int
	ErrorText       *string
	DisruptionCount *int
}

// DisruptionInput is one disruption append request. Response is canonical JSON.
type DisruptionInput struct {
	Response     []byte
	TimeReceived time.Time
	AttemptID    int64
}

// IngestionStoreFactory acquires stage-scoped ingestion stores.
type IngestionStoreFactory interface {
	Open(ctx context.Context) (IngestionStore, error)
}
