package metrics

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// BusinessMetrics records envelope operation outcomes: how many operations ran
// and how long they took, labelled by domain, operation, and status.
type BusinessMetrics interface {
	// RecordOperation counts one completed operation.
	// Domain is the bounded context ("crypto"), operation the call
	// ("encrypt", "decrypt_multiple"), status "success" or "error".
	RecordOperation(ctx context.Context, domain, operation, status string)

	// RecordDuration records how long an operation took. Durations land in a
	// seconds histogram so dashboards can compute percentiles; with Argon2 in
	// the path, these are expected to sit in the hundreds of milliseconds.
	RecordDuration(ctx context.Context, domain, operation string, duration time.Duration, status string)
}

// otelBusinessMetrics implements BusinessMetrics on OpenTelemetry instruments.
type otelBusinessMetrics struct {
	operations metric.Int64Counter
	durations  metric.Float64Histogram
}

// NewBusinessMetrics creates the OpenTelemetry-backed recorder. Instrument
// names are prefixed with the namespace ("<ns>_operations_total" and
// "<ns>_operation_duration_seconds").
func NewBusinessMetrics(meterProvider metric.MeterProvider, namespace string) (BusinessMetrics, error) {
	meter := meterProvider.Meter(namespace)

	operations, err := meter.Int64Counter(
		fmt.Sprintf("%s_operations_total", namespace),
		metric.WithDescription("Total number of envelope operations"),
		metric.WithUnit("{operation}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create operations counter: %w", err)
	}

	durations, err := meter.Float64Histogram(
		fmt.Sprintf("%s_operation_duration_seconds", namespace),
		metric.WithDescription("Duration of envelope operations in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create durations histogram: %w", err)
	}

	return &otelBusinessMetrics{
		operations: operations,
		durations:  durations,
	}, nil
}

// operationAttributes builds the shared label set for both instruments.
func operationAttributes(domain, operation, status string) metric.MeasurementOption {
	return metric.WithAttributes(
		attribute.String("domain", domain),
		attribute.String("operation", operation),
		attribute.String("status", status),
	)
}

func (b *otelBusinessMetrics) RecordOperation(ctx context.Context, domain, operation, status string) {
	b.operations.Add(ctx, 1, operationAttributes(domain, operation, status))
}

func (b *otelBusinessMetrics) RecordDuration(
	ctx context.Context,
	domain, operation string,
	duration time.Duration,
	status string,
) {
	b.durations.Record(ctx, duration.Seconds(), operationAttributes(domain, operation, status))
}

// noopBusinessMetrics discards all recordings. Used when metrics collection
// is disabled so callers never need a nil check.
type noopBusinessMetrics struct{}

// NewNoOpBusinessMetrics creates a recorder that discards everything.
func NewNoOpBusinessMetrics() BusinessMetrics {
	return noopBusinessMetrics{}
}

func (noopBusinessMetrics) RecordOperation(ctx context.Context, domain, operation, status string) {}

func (noopBusinessMetrics) RecordDuration(
	ctx context.Context,
	domain, operation string,
	duration time.Duration,
	status string,
) {
}
