package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"
	"unicode/utf8"

	"github.com/fr0stylo/tflwatch/internal/app/domain"
	"github.com/fr0stylo/tflwatch/internal/app/ports"
)

var errNotObject = errors.New("document is not a JSON object")

// DisruptionWriter appends disruption messages linked to a logged attempt.
type DisruptionWriter struct {
	stores ports.IngestionStoreFactory
	log    *slog.Logger
}

// NewDisruptionWriter constructs a disruption writer.
func NewDisruptionWriter(stores ports.IngestionStoreFactory, log *slog.Logger) *DisruptionWriter {
	if log == nil {
		log = slog.Default()
	}
	return &DisruptionWriter{stores: stores, log: log}
}

// WriteDisruptions stores each message in order. A failed message is recorded
// in the report and the remaining messages are still attempted. The returned
// error is non-nil only when no connection could be acquired.
func (w *DisruptionWriter) WriteDisruptions(ctx context.Context, messages []json.RawMessage, observedAt time.Time, attemptID int64) (domain.WriteReport, error) {
	report := domain.WriteReport{Attempted: len(messages)}
	if len(messages) == 0 {
		return report, nil
	}

	store, err := w.stores.Open(ctx)
	if err != nil {
		return report, fmt.Errorf("%w: %v", ErrConnectionAcquire, err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			w.log.WarnContext(ctx, "Failed to release disruption writer connection", "error", err)
		}
	}()

	for index, message := range messages {
		if err := w.writeOne(ctx, store, message, observedAt, attemptID); err != nil {
			w.log.WarnContext(ctx, "Failed to persist disruption", "attempt_id", attemptID, "index", index, "error", err)
			report.Failures = append(report.Failures, domain.MessageFailure{Index: index, Reason: err.Error()})
			continue
		}
		report.Succeeded++
	}
	return report, nil
}

func (w *DisruptionWriter) writeOne(ctx context.Context, store ports.IngestionStore, message json.RawMessage, observedAt time.Time, attemptID int64) error {
	document, err := CanonicalJSON(message)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrMessagePersist, err)
	}
	if err := store.InsertDisruption(ctx, ports.DisruptionInput{
		Response:     document,
		TimeReceived: observedAt,
		AttemptID:    attemptID,
	}); err != nil {
		return fmt.Errorf("%w: %v", ErrMessagePersist, err)
	}
	return nil
}

// CanonicalJSON re-encodes one JSON object with sorted keys and no
// insignificant whitespace. Numbers keep their original text. Documents
// that would not survive the round trip unchanged, such as invalid UTF-8
// or repeated keys, are rejected.
func CanonicalJSON(raw []byte) ([]byte, error) {
	if !utf8.Valid(raw) {
		return nil, errors.New("decode document: invalid UTF-8")
	}
	if err := checkDuplicateKeys(json.NewDecoder(bytes.NewReader(raw))); err != nil {
		return nil, fmt.Errorf("decode document: %w", err)
	}

	decoder := json.NewDecoder(bytes.NewReader(raw))
	decoder.UseNumber()

	var value any
	if err := decoder.Decode(&value); err != nil {
		return nil, fmt.Errorf("decode document: %w", err)
	}
	if _, err := decoder.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("decode document: trailing data after object")
	}
	if _, ok := value.(map[string]any); !ok {
		return nil, errNotObject
	}

	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(value); err != nil {
		return nil, fmt.Errorf("encode document: %w", err)
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

func checkDuplicateKeys(decoder *json.Decoder) error {
	token, err := decoder.Token()
	if err != nil {
		return err
	}
	delim, ok := token.(json.Delim)
	if !ok {
		return nil
	}
	switch delim {
	case '{':
		seen := make(map[string]struct{})
		for decoder.More() {
			keyToken, err := decoder.Token()
			if err != nil {
				return err
			}
			key, _ := keyToken.(string)
			if _, dup := seen[key]; dup {
				return fmt.Errorf("duplicate key %q", key)
			}
			seen[key] = struct{}{}
			if err := checkDuplicateKeys(decoder); err != nil {
				return err
			}
		}
	case '[':
		for decoder.More() {
			if err := checkDuplicateKeys(decoder); err != nil {
				return err
			}
		}
	}
	_, err = decoder.Token()
	return err
}
