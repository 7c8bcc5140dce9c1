package services

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/fr0stylo/tflwatch/internal/app/domain"
)

type pipelineMetrics struct {
	runs      metric.Int64Counter
	persisted metric.Int64Counter
	failed    metric.Int64Counter
	fetch     metric.Float64Histogram
}

func newPipelineMetrics() pipelineMetrics {
	meter := otel.Meter("github.com/fr0stylo/tflwatch/internal/app/services")
	runs, _ := meter.Int64Counter("tflwatch.pipeline.runs")
	persisted, _ := meter.Int64Counter("tflwatch.disruptions.persisted")
	failed, _ := meter.Int64Counter("tflwatch.disruptions.failed")
	fetch, _ := meter.Float64Histogram("tflwatch.fetch.duration", metric.WithUnit("s"))
	return pipelineMetrics{
		runs:      runs,
		persisted: persisted,
		failed:    failed,
		fetch:     fetch,
	}
}

func (m pipelineMetrics) recordRun(ctx context.Context, status OutcomeStatus) {
	m.runs.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", string(status))))
}

func (m pipelineMetrics) recordFetch(ctx context.Context, status domain.FetchStatus, elapsed time.Duration) {
	m.fetch.Record(ctx, elapsed.Seconds(), metric.WithAttributes(attribute.String("status", string(status))))
}

func (m pipelineMetrics) recordWrite(ctx context.Context, report domain.WriteReport) {
	if report.Succeeded > 0 {
		m.persisted.Add(ctx, int64(report.Succeeded))
	}
	if len(report.Failures) > 0 {
		m.failed.Add(ctx, int64(len(report.Failures)))
	}
}
