package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"github.com/fr0stylo/tflwatch/internal/app/domain"
	"github.com/fr0stylo/tflwatch/internal/app/ports"
	"github.com/fr0stylo/tflwatch/internal/observability"
)

// OutcomeStatus is the final classification of one pipeline invocation.
type OutcomeStatus string

const (
	OutcomeSucceeded    OutcomeStatus = "succeeded"
	OutcomeFetchFailed  OutcomeStatus = "fetch_failed"
	OutcomePartialWrite OutcomeStatus = "partial_write"
	OutcomeStoreFailed  OutcomeStatus = "store_failed"
)

// Process exit codes per outcome. ExitConfig covers failures before Run.
const (
	ExitSucceeded    = 0
	ExitConfig       = 1
	ExitFetchFailed  = 2
	ExitPartialWrite = 3
	ExitStoreFailed  = 4
)

// Outcome summarises one invocation.
type Outcome struct {
	Status      OutcomeStatus
	RunID       string
	AttemptID   int64
	FetchStatus domain.FetchStatus
	HTTPCode    int
	Report      domain.WriteReport
}

// ExitCode maps the outcome onto the process exit status.
func (o Outcome) ExitCode() int {
	switch o.Status {
	case OutcomeSucceeded:
		return ExitSucceeded
	case OutcomeFetchFailed:
		return ExitFetchFailed
	case OutcomePartialWrite:
		return ExitPartialWrite
	default:
		return ExitStoreFailed
	}
}

// Pipeline sequences fetch, attempt logging and disruption writing.
type Pipeline struct {
	fetcher  ports.DisruptionFetcher
	logger   *AttemptLogger
	writer   *DisruptionWriter
	log      *slog.Logger
	metrics  pipelineMetrics
	newRunID func() string
}

// NewPipeline wires the three stages around one store factory.
func NewPipeline(fetcher ports.DisruptionFetcher, stores ports.IngestionStoreFactory, log *slog.Logger) *Pipeline {
	if log == nil {
		log = slog.Default()
	}
	return &Pipeline{
		fetcher:  fetcher,
		logger:   NewAttemptLogger(stores, log),
		writer:   NewDisruptionWriter(stores, log),
		log:      log,
		metrics:  newPipelineMetrics(),
		newRunID: uuid.NewString,
	}
}

// Run performs one invocation. Exactly one attempt is logged unless the
// store itself fails, and disruptions are written only after that log
// succeeded. Cancelling ctx only interrupts the fetch; logging and writing
// always run to completion. The returned error is set only for store failures.
func (p *Pipeline) Run(ctx context.Context) (outcome Outcome, err error) {
	outcome.RunID = p.newRunID()
	ctx = observability.WithRunID(ctx, outcome.RunID)
	defer func() {
		p.metrics.recordRun(ctx, outcome.Status)
	}()

	result := p.fetch(ctx)
	outcome.FetchStatus = result.Status
	outcome.HTTPCode = result.HTTPCode

	ctx = context.WithoutCancel(ctx)
	attemptID, err := p.logAttempt(ctx, result)
	if err != nil {
		outcome.Status = OutcomeStoreFailed
		p.log.ErrorContext(ctx, "Failed to log fetch attempt", "kind", ClassifyError(err), "error", err)
		return outcome, err
	}
	outcome.AttemptID = attemptID

	if !result.OK() {
		outcome.Status = OutcomeFetchFailed
		p.log.WarnContext(ctx, "Disruption fetch failed",
			"attempt_id", attemptID,
			"kind", ClassifyError(FetchError(result)),
			"http_code", result.HTTPCode,
			"error", result.ErrorText,
		)
		return outcome, nil
	}

	report, err := p.write(ctx, result, attemptID)
	outcome.Report = report
	if err != nil {
		outcome.Status = OutcomeStoreFailed
		p.log.ErrorContext(ctx, "Failed to write disruptions", "attempt_id", attemptID, "kind", ClassifyError(err), "error", err)
		return outcome, err
	}

	if report.Complete() {
		outcome.Status = OutcomeSucceeded
		p.log.InfoContext(ctx, "Disruptions ingested", "attempt_id", attemptID, "count", report.Succeeded)
		return outcome, nil
	}

	outcome.Status = OutcomePartialWrite
	p.log.WarnContext(ctx, "Disruptions partially ingested",
		"attempt_id", attemptID,
		"attempted", report.Attempted,
		"succeeded", report.Succeeded,
		"failed", len(report.Failures),
	)
	return outcome, nil
}

func (p *Pipeline) fetch(ctx context.Context) domain.FetchResult {
	ctx, span := observability.StartStageSpan(ctx, "fetch")
	defer span.End()

	start := time.Now()
	result := p.fetcher.Fetch(ctx)
	p.metrics.recordFetch(ctx, result.Status, time.Since(start))
	if result.ObservedAt.IsZero() {
		result.ObservedAt = domain.ObservedNow(time.Now())
	}

	span.SetAttributes(
		attribute.String("tfl.fetch.status", string(result.Status)),
		attribute.Int("http.response.status_code", result.HTTPCode),
		attribute.Int("tfl.fetch.messages", len(result.Messages)),
	)
	span.RecordError(FetchError(result))
	return result
}

func (p *Pipeline) logAttempt(ctx context.Context, result domain.FetchResult) (int64, error) {
	ctx, span := observability.StartStageSpan(ctx, "log_attempt")
	defer span.End()

	var (
		errorText       *string
		disruptionCount *int
	)
	if result.OK() {
		count := len(result.Messages)
		disruptionCount = &count
	} else {
		text := result.ErrorText
		errorText = &text
	}

	attemptID, err := p.logger.LogAttempt(ctx, result.ObservedAt, result.HTTPCode, errorText, disruptionCount)
	span.RecordError(err)
	if err == nil {
		span.SetAttributes(attribute.Int64("tfl.attempt_id", attemptID))
	}
	return attemptID, err
}

func (p *Pipeline) write(ctx context.Context, result domain.FetchResult, attemptID int64) (domain.WriteReport, error) {
	ctx, span := observability.StartStageSpan(ctx, "write_disruptions")
	defer span.End()

	report, err := p.writer.WriteDisruptions(ctx, result.Messages, result.ObservedAt, attemptID)
	p.metrics.recordWrite(ctx, report)
	span.SetAttributes(
		attribute.Int("tfl.write.attempted", report.Attempted),
		attribute.Int("tfl.write.succeeded", report.Succeeded),
		attribute.Int("tfl.write.failed", len(report.Failures)),
	)
	span.RecordError(err)
	return report, err
}
