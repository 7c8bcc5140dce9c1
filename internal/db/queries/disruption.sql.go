package queries

import (
	"context"
	"time"
)

const insertDisruptionSQLite = `-- name: InsertDisruption :exec
INSERT INTO disruption (response, time_received, api_call_log_id)
VALUES (json(?), ?, ?)
`

const insertDisruptionPostgres = `-- name: InsertDisruption :exec
INSERT INTO disruption (response, time_received, api_call_log_id)
VALUES (?::jsonb, ?, ?)
`

type InsertDisruptionParams struct {
	Response     []byte
	TimeReceived time.Time
	ApiCallLogID int64
}

// InsertDisruption binds the document as text so the store parses and validates it natively.
func (q *Queries) InsertDisruption(ctx context.Context, arg InsertDisruptionParams) error {
	query := insertDisruptionSQLite
	if q.dialect == DialectPostgres {
		query = insertDisruptionPostgres
	}
	_, err := q.db.ExecContext(ctx, q.rebind(query),
		string(arg.Response),
		FormatTimestamp(arg.TimeReceived),
		arg.ApiCallLogID,
	)
	return err
}

const listDisruptionsByAPICallLog = `-- name: ListDisruptionsByAPICallLog :many
SELECT disruption_id, response, time_received, api_call_log_id
FROM disruption
WHERE api_call_log_id = ?
ORDER BY disruption_id
`

func (q *Queries) ListDisruptionsByAPICallLog(ctx context.Context, apiCallLogID int64) ([]Disruption, error) {
	rows, err := q.db.QueryContext(ctx, q.rebind(listDisruptionsByAPICallLog), apiCallLogID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Disruption
	for rows.Next() {
		var i Disruption
		if err := rows.Scan(
			&i.DisruptionID,
			&i.Response,
			(*timestamp)(&i.TimeReceived),
			&i.ApiCallLogID,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
