package policy

import (
	"regexp"
	"strings"
)

// FallbackNotice is the fixed attorney-facing text used when the reporter
// supplies no pre-redacted message. It contains no case specifics.
const FallbackNotice = "Client crisis reported; RN referral initiated. No medical details disclosed per HIPAA minimum necessary standard."

// redactedToken replaces any substring that looks like identifying detail.
const redactedToken = "[redacted]"

var (
	emailPattern = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)
	phonePattern = regexp.MustCompile(`\+?\d[\d\s().-]{7,}\d`)
	ssnPattern   = regexp.MustCompile(`\b\d{3}-\d{2}-\d{4}\b`)
	datePattern  = regexp.MustCompile(`\b\d{1,2}/\d{1,2}/\d{2,4}\b`)
)

// Redact produces the attorney-safe message for an external alert.
//
// Callers are expected to supply text already written to the minimum
// necessary standard, but supplied text is scrubbed anyway: contact details,
// SSNs, and date-of-birth style strings are replaced before persisting. An
// empty message falls back to the fixed generic notice.
func Redact(minimalMessage string) string {
	msg := strings.TrimSpace(minimalMessage)
	if msg == "" {
		return FallbackNotice
	}

	msg = emailPattern.ReplaceAllString(msg, redactedToken)
	msg = ssnPattern.ReplaceAllString(msg, redactedToken)
	msg = datePattern.ReplaceAllString(msg, redactedToken)
	msg = phonePattern.ReplaceAllString(msg, redactedToken)
	return msg
}
