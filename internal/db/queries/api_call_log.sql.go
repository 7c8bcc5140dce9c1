package queries

import (
	"context"
	"database/sql"
	"time"
)

const insertAPICallLog = `-- name: InsertAPICallLog :one
INSERT INTO api_call_log (timestamp, http_code, error_text, disruption_count)
VALUES (?, ?, ?, ?)
RETURNING api_call_log_id
`

type InsertAPICallLogParams struct {
	Timestamp       time.Time
	HttpCode        int64
	ErrorText       sql.NullString
	DisruptionCount sql.NullInt64
}

func (q *Queries) InsertAPICallLog(ctx context.Context, arg InsertAPICallLogParams) (int64, error) {
	row := q.db.QueryRowContext(ctx, q.rebind(insertAPICallLog),
		FormatTimestamp(arg.Timestamp),
		arg.HttpCode,
		arg.ErrorText,
		arg.DisruptionCount,
	)
	var apiCallLogID int64
	err := row.Scan(&apiCallLogID)
	return apiCallLogID, err
}

const getAPICallLog = `-- name: GetAPICallLog :one
SELECT l.api_call_log_id, l.timestamp, l.http_code, l.error_text, l.disruption_count,
       (SELECT COUNT(*) FROM disruption d WHERE d.api_call_log_id = l.api_call_log_id) AS stored_disruptions
FROM api_call_log l
WHERE l.api_call_log_id = ?
`

type ApiCallLogWithCount struct {
	ApiCallLog
	StoredDisruptions int64
}

func (q *Queries) GetAPICallLog(ctx context.Context, apiCallLogID int64) (ApiCallLogWithCount, error) {
	row := q.db.QueryRowContext(ctx, q.rebind(getAPICallLog), apiCallLogID)
	var i ApiCallLogWithCount
	err := row.Scan(
		&i.ApiCallLogID,
		(*timestamp)(&i.Timestamp),
		&i.HttpCode,
		&i.ErrorText,
		&i.DisruptionCount,
		&i.StoredDisruptions,
	)
	return i, err
}

const listRecentAPICallLogs = `-- name: ListRecentAPICallLogs :many
SELECT l.api_call_log_id, l.timestamp, l.http_code, l.error_text, l.disruption_count,
       (SELECT COUNT(*) FROM disruption d WHERE d.api_call_log_id = l.api_call_log_id) AS stored_disruptions
FROM api_call_log l
ORDER BY l.api_call_log_id DESC
LIMIT ?
`

func (q *Queries) ListRecentAPICallLogs(ctx context.Context, limit int64) ([]ApiCallLogWithCount, error) {
	rows, err := q.db.QueryContext(ctx, q.rebind(listRecentAPICallLogs), limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []ApiCallLogWithCount
	for rows.Next() {
		var i ApiCallLogWithCount
		if err := rows.Scan(
			&i.ApiCallLogID,
			(*timestamp)(&i.Timestamp),
			&i.HttpCode,
			&i.ErrorText,
			&i.DisruptionCount,
			&i.StoredDisruptions,
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
