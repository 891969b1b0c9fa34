// Package policy decides whether and how much crisis-alert detail may be
// disclosed to a case's attorney. The decision function is deliberately pure:
// it has no side effects and no storage access, so the audit trail built on
// top of it stays trustworthy and the gating rules stay testable in isolation.
package policy

import (
	consentmodels "caresignal/internal/consent/models"
	"caresignal/pkg/domain"
)

// WithholdReason explains why an external disclosure was not made.
type WithholdReason string

const (
	ReasonNone            WithholdReason = ""
	ReasonNoConsent       WithholdReason = "no_consent"
	ReasonConsentRevoked  WithholdReason = "consent_revoked"
	ReasonConsentExpired  WithholdReason = "consent_expired"
	ReasonNoAttorney      WithholdReason = "no_attorney_assigned"
	ReasonDeliveryFailed  WithholdReason = "delivery_failed"
	ReasonConsentUnproven WithholdReason = "consent_lookup_failed"
)

// Decision is the outcome of a disclosure policy evaluation.
type Decision struct {
	// AllowExternal is true only when the client's consent is effective.
	AllowExternal bool
	// Scope is the widest disclosure tier permitted for the attorney-facing
	// record. Under current policy this is never ScopeFull.
	Scope domain.DisclosureScope
	// Reason is set when AllowExternal is false.
	Reason WithholdReason
}

// Decide evaluates the client's consent status against the alert severity.
//
// Severity is accepted for policy evolution but currently does not affect
// gating: there is no severity-based override of the client's privacy choice.
// Unknown consent states fail closed.
func Decide(status consentmodels.Status, severity domain.Severity) Decision {
	_ = severity

	switch status {
	case consentmodels.StatusActive:
		return Decision{AllowExternal: true, Scope: domain.ScopeMinimal}
	case consentmodels.StatusRevoked:
		return Decision{AllowExternal: false, Scope: domain.ScopeInternal, Reason: ReasonConsentRevoked}
	case consentmodels.StatusExpired:
		return Decision{AllowExternal: false, Scope: domain.ScopeInternal, Reason: ReasonConsentExpired}
	case consentmodels.StatusNone:
		return Decision{AllowExternal: false, Scope: domain.ScopeInternal, Reason: ReasonNoConsent}
	default:
		return Decision{AllowExternal: false, Scope: domain.ScopeInternal, Reason: ReasonNoConsent}
	}
}
