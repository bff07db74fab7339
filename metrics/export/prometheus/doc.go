// Package prometheus provides Prometheus collectors for goSession metrics.
//
// [NewPrometheusExporter] accepts a [goSession.Codec] and exposes an [http.Handler]
// that renders all goSession counters and the open-latency histogram in Prometheus
// text exposition format. Counter names are prefixed gosession_*_total; the single
// histogram is gosession_open_latency_microseconds.
//
// # What this package must NOT do
//
//   - Register metrics in a global Prometheus registry — callers mount the Handler.
//   - Mutate codec state.
package prometheus
