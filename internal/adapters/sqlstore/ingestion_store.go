package sqlstore

import (
	"context"
	"database/sql"

	"github.com/fr0stylo/tflwatch/internal/app/ports"
	"github.com/fr0stylo/tflwatch/internal/db/queries"
)

type ingestionDatabase interface {
	InsertAPICallLog(ctx context.Context, arg queries.InsertAPICallLogParams) (int64, error)
	InsertDisruption(ctx context.Context, arg queries.InsertDisruptionParams) error
}

type ingestionStore struct {
	db      ingestionDatabase
	closeFn func() error
}

func newIngestionStore(database ingestionDatabase, closeFn func() error) *ingestionStore {
	return &ingestionStore{db: database, closeFn: closeFn}
}

func (s *ingestionStore) InsertAttempt(ctx context.Context, attempt ports.AttemptInput) (int64, error) {
	errorText := sql.NullString{}
	if attempt.ErrorText != nil {
		errorText = sql.NullString{String: *attempt.ErrorText, Valid: true}
	}

	disruptionCount := sql.NullInt64{}
	if attempt.DisruptionCount != nil {
		disruptionCount = sql.NullInt64{Int64: int64(*attempt.DisruptionCount), Valid: true}
	}

	return s.db.InsertAPICallLog(ctx, queries.InsertAPICallLogParams{
		Timestamp:       attempt.Timestamp,
		HttpCode:        int64(attempt.HTTPCode),
		ErrorText:       errorText,
		DisruptionCount: disruptionCount,
	})
}

func (s *ingestionStore) InsertDisruption(ctx context.Context, disruption ports.DisruptionInput) error {
	return s.db.InsertDisruption(ctx, queries.InsertDisruptionParams{
		Response:     disruption.Response,
		TimeReceived: disruption.TimeReceived,
		ApiCallLogID: disruption.AttemptID,
	})
}

func (s *ingestionStore) Close() error {
	if s.closeFn == nil {
		return nil
	}
	closeFn := s.closeFn
	s.closeFn = nil
	return closeFn()
}

var _ ports.IngestionStore = (*ingestionStore)(nil)
