package config

import (
	"context"

	"github.com/spf13/viper"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"

	"github.com/kbukum/microinjection/injection"
	"github.com/kbukum/microinjection/logger"
	"github.com/kbukum/microinjection/observability"
)

// NewSource returns a Source over v rooted at the configured prefix.
func (s *Settings) NewSource(v *viper.Viper) *Source {
	return NewSource(v, s.Source.Prefix)
}

// Root is a composition root assembled from configuration. Its Values
// resolve keys without an override from the Source, and every such lookup
// is counted on injection.miss.total.
type Root struct {
	Settings Settings
	Source   *Source
	Values   injection.Values
	meters   *sdkmetric.MeterProvider
}

// Bootstrap loads Settings for serviceName, initializes the global logger
// and the meter provider from them, and builds the root Values.
func Bootstrap(ctx context.Context, serviceName string, opts ...LoaderOption) (*Root, error) {
	v, err := Load(serviceName, opts...)
	if err != nil {
		return nil, err
	}

	var settings Settings
	if err := decode(v, serviceName, &settings); err != nil {
		return nil, err
	}

	logger.Init(&settings.Logging)

	mp, err := observability.InitMeter(ctx, &settings.Metrics)
	if err != nil {
		return nil, err
	}
	metrics, err := observability.NewLookupMetrics(mp.Meter("injection"))
	if err != nil {
		_ = mp.Shutdown(ctx)
		return nil, err
	}

	src := settings.NewSource(v)
	logger.Get("config").Info("injection root ready", logger.Fields(
		"service", settings.Name,
		logger.FieldSource, settings.Source.Prefix,
		"metrics", settings.Metrics.Enabled,
	))

	return &Root{
		Settings: settings,
		Source:   src,
		Values:   injection.New(injection.WithMissHandler(metrics.Instrument(src.MissHandler()))),
		meters:   mp,
	}, nil
}

// MeterProvider returns the provider backing the root's lookup metrics.
func (r *Root) MeterProvider() *sdkmetric.MeterProvider {
	return r.meters
}

// Shutdown flushes and stops the meter provider.
func (r *Root) Shutdown(ctx context.Context) error {
	return r.meters.Shutdown(ctx)
}
