package queries

import (
	"database/sql"
	"time"
)

type ApiCallLog struct {
	ApiCallLogID    int64
	Timestamp       time.Time
	HttpCode        int64
	ErrorText       sql.NullString
	DisruptionCount sql.NullInt64
}

type Disruption struct {
	DisruptionID int64
	Response     []byte
	TimeReceived time.Time
	ApiCallLogID int64
}
