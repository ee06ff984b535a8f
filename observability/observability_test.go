package observability

import (
	"context"
	"testing"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/kbukum/microinjection/injection"
)

func newTestMetrics(t *testing.T) (*LookupMetrics, *sdkmetric.ManualReader) {
	t.Helper()
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() { _ = mp.Shutdown(context.Background()) })

	m, err := NewLookupMetrics(mp.Meter("test"))
	if err != nil {
		t.Fatalf("unexpected error creating metrics: %v", err)
	}
	return m, reader
}

// missCounts collects injection.miss.total data points keyed by key/outcome.
func missCounts(t *testing.T, reader *sdkmetric.ManualReader) map[[2]string]int64 {
	t.Helper()
	var rm metricdata.ResourceMetrics
	if err := reader.Collect(context.Background(), &rm); err != nil {
		t.Fatalf("collect failed: %v", err)
	}

	counts := make(map[[2]string]int64)
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name != "injection.miss.total" {
				continue
			}
			sum, ok := m.Data.(metricdata.Sum[int64])
			if !ok {
				t.Fatalf("expected Sum[int64], got %T", m.Data)
			}
			for _, dp := range sum.DataPoints {
				key, _ := dp.Attributes.Value(attribute.Key(AttrKey))
				outcome, _ := dp.Attributes.Value(attribute.Key(AttrOutcome))
				counts[[2]string{key.AsString(), outcome.AsString()}] = dp.Value
			}
		}
	}
	return counts
}

func TestDefaultMeterConfig(t *testing.T) {
	cfg := DefaultMeterConfig("test-service")

	if cfg.ServiceName != "test-service" {
		t.Errorf("expected ServiceName 'test-service', got %s", cfg.ServiceName)
	}
	if cfg.Interval != 15*time.Second {
		t.Errorf("expected Interval 15s, got %v", cfg.Interval)
	}
	if cfg.Endpoint != "localhost:4318" {
		t.Errorf("expected Endpoint 'localhost:4318', got %s", cfg.Endpoint)
	}
}

func TestMeterConfigApplyDefaults(t *testing.T) {
	cfg := MeterConfig{ServiceName: "svc", Endpoint: "collector:4318"}
	cfg.ApplyDefaults()
	if cfg.Endpoint != "collector:4318" {
		t.Errorf("expected endpoint preserved, got %s", cfg.Endpoint)
	}
	if cfg.Interval != 15*time.Second || cfg.ServiceVersion != "1.0.0" || cfg.Environment != "development" {
		t.Errorf("unexpected defaults %+v", cfg)
	}
}

func TestNewLookupMetricsNoop(t *testing.T) {
	m, err := NewLookupMetrics(noop.NewMeterProvider().Meter("test"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	key := injection.NewKey("k", 1)
	m.RecordMiss(context.Background(), key, true)
}

func TestInstrumentCountsOutcomes(t *testing.T) {
	m, reader := newTestMetrics(t)

	port := injection.NewKey("port", 8080)
	host := injection.NewKey("host", "localhost")

	handler := m.Instrument(func(key injection.KeyDescriptor) any {
		if key.ID() == port.ID() {
			return 9090
		}
		return nil
	})
	values := injection.New(injection.WithMissHandler(handler))

	if got := injection.Get(values, port); got != 9090 {
		t.Errorf("expected handler value 9090, got %d", got)
	}
	injection.Get(values, port)
	if got := injection.Get(values, host); got != "localhost" {
		t.Errorf("expected default host, got %q", got)
	}

	counts := missCounts(t, reader)
	if counts[[2]string{"port", OutcomeHandled}] != 2 {
		t.Errorf("expected 2 handled port misses, got %v", counts)
	}
	if counts[[2]string{"host", OutcomeDefault}] != 1 {
		t.Errorf("expected 1 default host miss, got %v", counts)
	}
}

func TestInstrumentNilHandler(t *testing.T) {
	m, reader := newTestMetrics(t)
	key := injection.NewKey("retries", 3)
	values := injection.New(injection.WithMissHandler(m.Instrument(nil)))

	if got := injection.Get(values, key); got != 3 {
		t.Errorf("expected default 3, got %d", got)
	}
	if counts := missCounts(t, reader); counts[[2]string{"retries", OutcomeDefault}] != 1 {
		t.Errorf("expected 1 default miss, got %v", counts)
	}
}

func TestInstrumentSkipsStoredKeys(t *testing.T) {
	m, reader := newTestMetrics(t)
	key := injection.NewKey("retries", 3)
	values := injection.New(injection.WithMissHandler(m.Instrument(nil)))
	injection.Set(&values, key, 5)

	injection.Get(values, key)
	if counts := missCounts(t, reader); len(counts) != 0 {
		t.Errorf("expected no misses for stored key, got %v", counts)
	}
}

func TestMeter(t *testing.T) {
	if Meter("test") == nil {
		t.Error("expected non-nil meter")
	}
}

func TestInitMeter(t *testing.T) {
	prev := otel.GetMeterProvider()
	t.Cleanup(func() { otel.SetMeterProvider(prev) })

	cfg := DefaultMeterConfig("test-service")
	cfg.Enabled = true

	mp, err := InitMeter(context.Background(), &cfg)
	if err != nil {
		t.Fatalf("InitMeter failed: %v", err)
	}
	if otel.GetMeterProvider() != metric.MeterProvider(mp) {
		t.Error("expected InitMeter to install the provider globally")
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	_ = mp.Shutdown(ctx)
}

func TestInitMeterDisabled(t *testing.T) {
	before := otel.GetMeterProvider()

	cfg := DefaultMeterConfig("test-service")
	cfg.Enabled = false

	mp, err := InitMeter(context.Background(), &cfg)
	if err != nil {
		t.Fatalf("InitMeter failed: %v", err)
	}
	if mp == nil {
		t.Fatal("expected a provider when export is disabled")
	}
	if otel.GetMeterProvider() != before {
		t.Error("expected global provider to stay untouched when export is disabled")
	}

	m, err := NewLookupMetrics(mp.Meter("test"))
	if err != nil {
		t.Fatalf("unexpected error creating metrics: %v", err)
	}
	values := injection.New(injection.WithMissHandler(m.Instrument(nil)))
	if got := injection.Get(values, injection.NewKey("port", 80)); got != 80 {
		t.Errorf("expected default through disabled provider, got %d", got)
	}
	if err := mp.Shutdown(context.Background()); err != nil {
		t.Errorf("unexpected shutdown error: %v", err)
	}
}
