// Package observability carries gridhub's ambient instrumentation: a zap
// logger factory, a Prometheus collector for solver runs, and OpenTelemetry
// tracer provider setup.
//
// Library packages never reach for globals here. They accept a *zap.Logger,
// a *Collector and a trace.Tracer through options, all of which may be
// nil/no-op.
package observability
