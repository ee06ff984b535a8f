// Package observability provides OpenTelemetry metrics for injection
// containers.
//
//	mp, err := observability.InitMeter(ctx, &settings.Metrics)
//	defer mp.Shutdown(ctx)
//
//	metrics, err := observability.NewLookupMetrics(observability.Meter("orders"))
//	values := injection.New(injection.WithMissHandler(metrics.Instrument(src.MissHandler())))
//
// Every lookup that reaches the miss handler is counted in
// injection.miss.total, tagged with the key name and whether the handler
// supplied a value.
package observability
