package internaldefs

import (
	goSession "github.com/MrEthical07/goSession"
)

// CounterDef defines a public type used by goSession APIs.
//
// CounterDef instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type CounterDef struct {
	ID   goSession.MetricID
	Name string
	Help string
}

// HistogramDef defines a public type used by goSession APIs.
//
// HistogramDef instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type HistogramDef struct {
	ID   goSession.MetricID
	Name string
	Help string
}

// CounterDefs is an exported constant or variable used by the session codec.
var CounterDefs = []CounterDef{
	{ID: goSession.MetricOpenSuccess, Name: "gosession_open_success_total", Help: "Session cookies decoded and authenticated successfully."},
	{ID: goSession.MetricOpenRejected, Name: "gosession_open_rejected_total", Help: "Session cookies rejected during decode or authentication."},
	{ID: goSession.MetricCookieMissing, Name: "gosession_cookie_missing_total", Help: "Requests carrying no session cookie."},
	{ID: goSession.MetricSealSuccess, Name: "gosession_seal_success_total", Help: "Session records sealed into cookies successfully."},
	{ID: goSession.MetricSealFailure, Name: "gosession_seal_failure_total", Help: "Failed attempts to seal a session record."},
	{ID: goSession.MetricClearIssued, Name: "gosession_clear_issued_total", Help: "Clear-cookie headers issued."},
}

// HistogramDefs is an exported constant or variable used by the session codec.
var HistogramDefs = []HistogramDef{
	{ID: goSession.MetricOpenLatency, Name: "gosession_open_latency_microseconds", Help: "Open latency histogram."},
}

// HistogramBounds is an exported constant or variable used by the session codec.
var HistogramBounds = []string{
	"16",
	"32",
	"64",
	"128",
	"256",
	"512",
	"1024",
	"+Inf",
}

// HistogramBoundSuffix is an exported constant or variable used by the session codec.
var HistogramBoundSuffix = []string{
	"16",
	"32",
	"64",
	"128",
	"256",
	"512",
	"1024",
	"inf",
}

// NormalizeBuckets describes the normalizebuckets operation and its observable behavior.
//
// NormalizeBuckets does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func NormalizeBuckets(raw []uint64) [8]uint64 {
	var out [8]uint64
	for i := 0; i < len(out) && i < len(raw); i++ {
		out[i] = raw[i]
	}
	return out
}

// CumulativeBuckets describes the cumulativebuckets operation and its observable behavior.
//
// CumulativeBuckets does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func CumulativeBuckets(raw [8]uint64) [8]uint64 {
	var out [8]uint64
	var running uint64
	for i := 0; i < len(raw); i++ {
		running += raw[i]
		out[i] = running
	}
	return out
}
