package services

import (
	"errors"
	"fmt"

	"github.com/fr0stylo/tflwatch/internal/app/domain"
)

var (
	// ErrTransport indicates the upstream call failed before any response arrived.
	ErrTransport = errors.New("transport error")
	// ErrHTTPStatus indicates the upstream answered with a non-200 status.
	ErrHTTPStatus = errors.New("upstream http error")
	// ErrMalformedResponse indicates a 200 body that is not a JSON array of objects.
	ErrMalformedResponse = errors.New("malformed upstream response")
	// ErrLogPersist indicates the attempt record could not be stored.
	ErrLogPersist = errors.New("attempt log persist failed")
	// ErrMessagePersist indicates one disruption message could not be stored.
	ErrMessagePersist = errors.New("disruption persist failed")
	// ErrConnectionAcquire indicates no store connection could be obtained.
	ErrConnectionAcquire = errors.New("store connection unavailable")
)

// ErrorKind classifies pipeline failures for exit codes and telemetry.
type ErrorKind string

const (
	// ErrorUnknown is used when error is nil or not classified.
	ErrorUnknown ErrorKind = "unknown"
	// ErrorTransport maps ErrTransport.
	ErrorTransport ErrorKind = "transport"
	// ErrorHTTPStatus maps ErrHTTPStatus.
	ErrorHTTPStatus ErrorKind = "http_status"
	// ErrorMalformedResponse maps ErrMalformedResponse.
	ErrorMalformedResponse ErrorKind = "malformed_response"
	// ErrorLogPersist maps ErrLogPersist.
	ErrorLogPersist ErrorKind = "log_persist"
	// ErrorMessagePersist maps ErrMessagePersist.
	ErrorMessagePersist ErrorKind = "message_persist"
	// ErrorConnectionAcquire maps ErrConnectionAcquire.
	ErrorConnectionAcquire ErrorKind = "connection_acquire"
)

// ClassifyError classifies a returned pipeline error.
func ClassifyError(err error) ErrorKind {
	switch {
	case err == nil:
		return ErrorUnknown
	case errors.Is(err, ErrConnectionAcquire):
		return ErrorConnectionAcquire
	case errors.Is(err, ErrLogPersist):
		return ErrorLogPersist
	case errors.Is(err, ErrMessagePersist):
		return ErrorMessagePersist
	case errors.Is(err, ErrTransport):
		return ErrorTransport
	case errors.Is(err, ErrHTTPStatus):
		return ErrorHTTPStatus
	case errors.Is(err, ErrMalformedResponse):
		return ErrorMalformedResponse
	default:
		return ErrorUnknown
	}
}

// FetchError converts a failed fetch into its sentinel error, nil on success.
func FetchError(result domain.FetchResult) error {
	switch result.Status {
	case domain.FetchSuccess:
		return nil
	case domain.FetchHTTPError:
		return fmt.Errorf("%w: status %d: %s", ErrHTTPStatus, result.HTTPCode, result.ErrorText)
	case domain.FetchMalformedResponse:
		return fmt.Errorf("%w: %s", ErrMalformedResponse, result.ErrorText)
	default:
		return fmt.Errorf("%w: %s", ErrTransport, result.ErrorText)
	}
}
