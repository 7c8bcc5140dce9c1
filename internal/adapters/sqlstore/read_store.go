package sqlstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"github.com/fr0stylo/tflwatch/internal/app/domain"
	"github.com/fr0stylo/tflwatch/internal/app/ports"
	"github.com/fr0stylo/tflwatch/internal/db/queries"
)

type readDatabase interface {
	GetAPICallLog(ctx context.Context, apiCallLogID int64) (queries.ApiCallLogWithCount, error)
	ListRecentAPICallLogs(ctx context.Context, limit int64) ([]queries.ApiCallLogWithCount, error)
	ListDisruptionsByAPICallLog(ctx context.Context, apiCallLogID int64) ([]queries.Disruption, error)
}

// ReadStore serves attempt history from the shared pool.
type ReadStore struct {
	db readDatabase
}

func NewReadStore(database readDatabase) *ReadStore {
	return &ReadStore{db: database}
}

func (s *ReadStore) ListRecentAttempts(ctx context.Context, limit int) ([]domain.AttemptSummary, error) {
	rows, err := s.db.ListRecentAPICallLogs(ctx, int64(limit))
	if err != nil {
		return nil, err
	}
	out := make([]domain.AttemptSummary, 0, len(rows))
	for _, row := range rows {
		out = append(out, mapAttemptSummary(row))
	}
	return out, nil
}

func (s *ReadStore) GetAttempt(ctx context.Context, attemptID int64) (domain.AttemptSummary, error) {
	row, err := s.db.GetAPICallLog(ctx, attemptID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.AttemptSummary{}, ports.ErrNotFound
		}
		return domain.AttemptSummary{}, err
	}
	return mapAttemptSummary(row), nil
}

func (s *ReadStore) ListDisruptions(ctx context.Context, attemptID int64) ([]domain.DisruptionRecord, error) {
	rows, err := s.db.ListDisruptionsByAPICallLog(ctx, attemptID)
	if err != nil {
		return nil, err
	}
	out := make([]domain.DisruptionRecord, 0, len(rows))
	for _, row := range rows {
		out = append(out, domain.DisruptionRecord{
			Response:     json.RawMessage(row.Response),
			TimeReceived: row.TimeReceived,
			AttemptID:    row.ApiCallLogID,
		})
	}
	return out, nil
}

func mapAttemptSummary(row queries.ApiCallLogWithCount) domain.AttemptSummary {
	record := domain.AttemptRecord{
		ID:        row.ApiCallLogID,
		Timestamp: row.Timestamp,
		HTTPCode:  int(row.HttpCode),
	}
	if row.ErrorText.Valid {
		text := row.ErrorText.String
		record.ErrorText = &text
	}
	if row.DisruptionCount.Valid {
		count := int(row.DisruptionCount.Int64)
		record.DisruptionCount = &count
	}
	return domain.AttemptSummary{AttemptRecord: record, StoredDisruptions: row.StoredDisruptions}
}

var _ ports.AttemptReadStore = (*ReadStore)(nil)
