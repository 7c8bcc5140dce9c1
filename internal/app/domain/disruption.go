package domain

import (
	"encoding/json"
	"time"
)

// FetchStatus classifies one upstream call.
type FetchStatus string

const (
	// FetchSuccess is a 200 response whose body is a JSON array of objects.
	FetchSuccess FetchStatus = "success"
	// FetchHTTPError is any non-200 response.
	FetchHTTPError FetchStatus = "http_error"
	// FetchTransportError covers timeouts, DNS, connection and TLS failures.
	FetchTransportError FetchStatus = "transport_error"
	// FetchMalformedResponse is a 200 response whose body is not a JSON array of objects.
	FetchMalformedResponse FetchStatus = "malformed_response"
)

// FetchResult is the classified outcome of one fetch. ObservedAt is UTC, whole seconds.
type FetchResult struct {
	Status     FetchStatus
	HTTPCode   int
	Messages   []json.RawMessage
	ErrorText  string
	ObservedAt time.Time
}

// OK reports whether the fetch produced messages to persist.
func (r FetchResult) OK() bool {
	return r.Status == FetchSuccess
}

// AttemptRecord is one row of api_call_log.
type AttemptRecord struct {
	ID              int64
	Timestamp       time.Time
	HTTPCode        int
	ErrorText       *string
	DisruptionCount *int
}

// DisruptionRecord is one row of disruption.
type DisruptionRecord struct {
	Response     json.RawMessage
	TimeReceived time.Time
	AttemptID    int64
}

// MessageFailure describes one disruption message that could not be stored.
type MessageFailure struct {
	Index  int    `json:"index"`
	Reason string `json:"reason"`
}

// WriteReport summarises one writer pass.
type WriteReport struct {
	Attempted int              `json:"attempted"`
	Succeeded int              `json:"succeeded"`
	Failures  []MessageFailure `json:"failures,omitempty"`
}

// Complete reports whether every attempted message was stored.
func (r WriteReport) Complete() bool {
	return len(r.Failures) == 0 && r.Succeeded == r.Attempted
}

// AttemptSummary is an attempt joined with the number of stored disruptions.
type AttemptSummary struct {
	AttemptRecord
	StoredDisruptions int64
}

// ObservedNow truncates t to whole seconds in UTC.
func ObservedNow(t time.Time) time.Time {
	return t.UTC().Truncate(time.Second)
}
