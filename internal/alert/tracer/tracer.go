// Package tracer provides a lightweight tracing abstraction for the alert
// module.
//
// The alert service emits spans around the crisis report operation without
// depending directly on OpenTelemetry APIs. Implementations:
//   - NoopTracer: for tests (zero overhead)
//   - OTelTracer: OpenTelemetry adapter for production
package tracer

import "context"

// Span represents an active trace span.
type Span interface {
	// End completes the span, recording any error that occurred.
	// End must be called exactly once, typically via defer.
	End(err error)

	// SetAttributes adds key-value pairs to the span.
	SetAttributes(attrs ...Attribute)

	// AddEvent records a timestamped event within the span.
	AddEvent(name string, attrs ...Attribute)
}

// Tracer creates spans. Implementations must be safe for concurrent use.
type Tracer interface {
	Start(ctx context.Context, name string, attrs ...Attribute) (context.Context, Span)
}

// Attribute represents a key-value pair attached to spans.
type Attribute struct {
	Key   string
	Value any
}

// String creates a string attribute.
func String(key, value string) Attribute {
	return Attribute{Key: key, Value: value}
}

// Bool creates a boolean attribute.
func Bool(key string, value bool) Attribute {
	return Attribute{Key: key, Value: value}
}

// Int64 creates an int64 attribute.
func Int64(key string, value int64) Attribute {
	return Attribute{Key: key, Value: value}
}

// Span names used by the alert module.
const (
	SpanReport   = "alert.report"
	SpanDisclose = "alert.disclose"
)

// Attribute keys used by the alert module. Only identifiers and policy
// outcomes go on spans, never alert text.
const (
	AttrCaseID         = "case_id"
	AttrAlertType      = "alert_type"
	AttrSeverity       = "severity"
	AttrConsentGranted = "consent_granted"
	AttrScope          = "scope"
	AttrWithheldReason = "withheld_reason"
)

// Event names used by the alert module.
const (
	EventConsentChecked    = "consent.checked"
	EventDisclosureWritten = "disclosure.written"
)
