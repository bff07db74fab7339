package goSession

import "errors"

// Config defines a public type used by goSession APIs.
//
// Config instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Config struct {
	Record  RecordConfig
	Audit   AuditConfig
	Metrics MetricsConfig
}

/*
====================================
RECORD CONFIG
====================================
*/

// RecordConfig defines a public type used by goSession APIs.
//
// RecordConfig instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type RecordConfig struct {
	// MaxEncodedSize caps the serialized record in bytes before sealing.
	// The sealed token grows by the nonce, tag, and base64 expansion, so
	// this must stay well under common 4096-byte cookie limits.
	MaxEncodedSize int
}

/*
====================================
AUDIT CONFIG
====================================
*/

// AuditConfig defines a public type used by goSession APIs.
//
// AuditConfig instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type AuditConfig struct {
	Enabled    bool
	BufferSize int
	DropIfFull bool
}

/*
====================================
METRICS CONFIG
====================================
*/

// MetricsConfig defines a public type used by goSession APIs.
//
// MetricsConfig instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type MetricsConfig struct {
	Enabled                 bool
	EnableLatencyHistograms bool
}

// DefaultConfig describes the defaultconfig operation and its observable behavior.
//
// DefaultConfig does not mutate shared global state and can be used concurrently.
func DefaultConfig() Config {
	return defaultConfig()
}

func defaultConfig() Config {
	return Config{
		Record: RecordConfig{
			MaxEncodedSize: 2048,
		},
		Audit: AuditConfig{
			Enabled:    false,
			BufferSize: 256,
			DropIfFull: true,
		},
		Metrics: MetricsConfig{
			Enabled:                 true,
			EnableLatencyHistograms: false,
		},
	}
}

func cloneConfig(cfg Config) Config {
	// Config holds no reference types today; a value copy is a deep copy.
	return cfg
}

// Validate describes the validate operation and its observable behavior.
//
// Validate may return an error when input validation fails.
func (c *Config) Validate() error {
	if c.Record.MaxEncodedSize < 64 {
		return errors.New("Record MaxEncodedSize must be >= 64")
	}
	if c.Record.MaxEncodedSize > 3072 {
		return errors.New("Record MaxEncodedSize must be <= 3072 to fit a cookie")
	}

	// Audit
	if c.Audit.Enabled {
		if c.Audit.BufferSize <= 0 {
			return errors.New("Audit BufferSize must be > 0 when audit is enabled")
		}
	}

	return nil
}
