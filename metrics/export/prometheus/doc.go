// Package prometheus provides Prometheus collectors for partialpass metrics.
//
// [NewPrometheusExporter] accepts a [partialpass.Engine] and exposes an [http.Handler]
// that renders all partialpass counters and histograms in Prometheus text exposition format.
// Counter names are prefixed partialpass_*_total; the single histogram is
// partialpass_enroll_latency_seconds.
//
// # What this package must NOT do
//
//   - Register metrics in a global Prometheus registry — callers mount the Handler.
//   - Mutate engine state.
package prometheus
