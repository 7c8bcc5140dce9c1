package sqlstore

import (
	"context"

	"github.com/fr0stylo/tflwatch/internal/app/ports"
	"github.com/fr0stylo/tflwatch/internal/db"
)

// IngestionStoreFactory hands each pipeline stage its own pooled connection.
type IngestionStoreFactory struct {
	database *db.Database
}

// NewIngestionStoreFactory creates a factory backed by a shared DB handle.
// Opened stores release their connection on Close but never close the pool.
func NewIngestionStoreFactory(database *db.Database) *IngestionStoreFactory {
	return &IngestionStoreFactory{database: database}
}

// Open acquires a dedicated connection for one stage.
func (f *IngestionStoreFactory) Open(ctx context.Context) (ports.IngestionStore, error) {
	session, err := f.database.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	return newIngestionStore(session, session.Close), nil
}

var _ ports.IngestionStoreFactory = (*IngestionStoreFactory)(nil)
