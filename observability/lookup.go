package observability

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/kbukum/microinjection/injection"
)

// Outcome attribute values for injection.miss.total.
const (
	OutcomeHandled = "handled"
	OutcomeDefault = "default"
)

// Attribute keys for injection.miss.total.
const (
	AttrKey     = "key"
	AttrOutcome = "outcome"
)

// LookupMetrics counts lookups that reach a miss handler.
type LookupMetrics struct {
	missTotal metric.Int64Counter
}

// NewLookupMetrics creates metric instruments on the given meter.
func NewLookupMetrics(meter metric.Meter) (*LookupMetrics, error) {
	missTotal, err := meter.Int64Counter("injection.miss.total",
		metric.WithDescription("Lookups of keys without an override"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating injection.miss.total counter: %w", err)
	}
	return &LookupMetrics{missTotal: missTotal}, nil
}

// RecordMiss records one lookup of key that had no override.
func (m *LookupMetrics) RecordMiss(ctx context.Context, key injection.KeyDescriptor, handled bool) {
	outcome := OutcomeDefault
	if handled {
		outcome = OutcomeHandled
	}
	m.missTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String(AttrKey, key.Name()),
		attribute.String(AttrOutcome, outcome),
	))
}

// Instrument wraps next so every call is counted. A nil next counts the miss
// and lets the key default apply.
func (m *LookupMetrics) Instrument(next injection.MissHandler) injection.MissHandler {
	return func(key injection.KeyDescriptor) any {
		var result any
		if next != nil {
			result = next(key)
		}
		m.RecordMiss(context.Background(), key, result != nil)
		return result
	}
}
