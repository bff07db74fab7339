package goSession

import (
	"context"
	"net/http"
	"time"

	"github.com/MrEthical07/goSession/cookie"
	"github.com/MrEthical07/goSession/kdf"
	"github.com/MrEthical07/goSession/seal"
	"github.com/MrEthical07/goSession/session"
)

// Codec defines a public type used by goSession APIs.
//
// Codec instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
//
// The shared secret is dependency-injected into every call rather than held
// on the Codec, so tests can exercise arbitrary (including deliberately
// wrong) secrets against the same instance.
type Codec struct {
	config  Config
	audit   *auditDispatcher
	metrics *Metrics
}

// GetSession extracts, decrypts, and verifies the session cookie on r. It
// never fails: a missing header, missing cookie, malformed token, wrong
// secret, or malformed plaintext all yield the anonymous record. The reasons
// are indistinguishable to the caller on purpose; diagnostics go to the audit
// sink only.
func (c *Codec) GetSession(r *http.Request, secret string) session.Record {
	if c == nil || r == nil {
		return session.Record{}
	}

	header := r.Header.Get("Cookie")
	if header == "" {
		c.metrics.Inc(MetricCookieMissing)
		return session.Record{}
	}

	token, ok := cookie.SessionToken(cookie.ParseHeader(header))
	if !ok {
		c.metrics.Inc(MetricCookieMissing)
		return session.Record{}
	}

	key, err := kdf.Derive(secret)
	if err != nil {
		// Misconfiguration, not client input. Still resolves to the
		// anonymous record: a corrupt deployment must fail closed, not
		// crash request handling.
		c.metrics.Inc(MetricOpenRejected)
		c.emit(r.Context(), AuditEvent{
			EventType: EventSecretRejected,
			Reason:    err.Error(),
		})
		return session.Record{}
	}

	start := time.Now()
	plaintext, reason := seal.OpenClassified(token, key)
	c.metrics.Observe(MetricOpenLatency, time.Since(start))

	if reason != seal.RejectNone {
		c.metrics.Inc(MetricOpenRejected)
		c.emit(r.Context(), AuditEvent{
			EventType:   EventSessionRejected,
			Reason:      reason.String(),
			IP:          clientIPFromContext(r.Context()),
			TokenLength: len(token),
		})
		return session.Record{}
	}

	record, err := session.Decode(plaintext)
	if err != nil {
		// Authentic but unparseable plaintext: a record written by an
		// incompatible schema. Same observable outcome as any reject.
		c.metrics.Inc(MetricOpenRejected)
		c.emit(r.Context(), AuditEvent{
			EventType:   EventSessionRejected,
			Reason:      "record",
			IP:          clientIPFromContext(r.Context()),
			TokenLength: len(token),
		})
		return session.Record{}
	}

	c.metrics.Inc(MetricOpenSuccess)
	c.emit(r.Context(), AuditEvent{
		EventType: EventSessionOpened,
		IP:        clientIPFromContext(r.Context()),
		Success:   true,
	})

	return record
}

// BuildSessionHeader seals record under secret and returns the Set-Cookie
// header value establishing the session. Errors are configuration or entropy
// failures, never functions of the record contents a client controls beyond
// the size cap.
func (c *Codec) BuildSessionHeader(record session.Record, secret string) (string, error) {
	if c == nil {
		return "", ErrCodecNotReady
	}

	key, err := kdf.Derive(secret)
	if err != nil {
		c.metrics.Inc(MetricSealFailure)
		c.emit(context.Background(), AuditEvent{
			EventType: EventSecretRejected,
			Reason:    err.Error(),
		})
		return "", ErrSecretMalformed
	}

	plaintext, err := session.Encode(record)
	if err != nil || len(plaintext) > c.config.Record.MaxEncodedSize {
		c.metrics.Inc(MetricSealFailure)
		c.emit(context.Background(), AuditEvent{
			EventType: EventSealFailed,
			Reason:    "record too large",
		})
		return "", ErrRecordTooLarge
	}

	token, err := seal.Seal(plaintext, key)
	if err != nil {
		c.metrics.Inc(MetricSealFailure)
		c.emit(context.Background(), AuditEvent{
			EventType: EventSealFailed,
			Reason:    err.Error(),
		})
		return "", err
	}

	c.metrics.Inc(MetricSealSuccess)
	c.emit(context.Background(), AuditEvent{
		EventType: EventSessionSealed,
		Success:   true,
	})

	return cookie.EncodeSetCookie(token), nil
}

// BuildClearHeader returns the Set-Cookie header value that deletes the
// session cookie client-side.
func (c *Codec) BuildClearHeader() string {
	if c == nil {
		return cookie.EncodeClearCookie()
	}

	c.metrics.Inc(MetricClearIssued)
	c.emit(context.Background(), AuditEvent{
		EventType: EventCookieCleared,
		Success:   true,
	})

	return cookie.EncodeClearCookie()
}

// MetricsSnapshot describes the metricssnapshot operation and its observable behavior.
func (c *Codec) MetricsSnapshot() MetricsSnapshot {
	if c == nil {
		return MetricsSnapshot{}
	}
	return c.metrics.Snapshot()
}

// AuditDropped reports how many audit events were discarded because the
// dispatch buffer was full.
func (c *Codec) AuditDropped() uint64 {
	if c == nil {
		return 0
	}
	return c.audit.Dropped()
}

// Close drains and stops the audit dispatcher. The Codec remains usable for
// crypto operations afterwards; only audit delivery stops.
func (c *Codec) Close() {
	if c == nil {
		return
	}
	c.audit.Close()
}

func (c *Codec) emit(ctx context.Context, event AuditEvent) {
	if c.audit == nil {
		return
	}
	event.Timestamp = time.Now().UTC()
	c.audit.Emit(ctx, event)
}
