// Package models defines the crisis alert record. Internal and
// attorney-facing alerts share one shape and one table; the Scope field tells
// them apart, and Metadata carries the consent snapshot captured at report
// time.
package models

import (
	"time"

	"caresignal/pkg/domain"
	dErrors "caresignal/pkg/domain-errors"
)

// AlertType categorizes what the care team is reporting.
type AlertType string

const (
	TypeCrisis            AlertType = "crisis"
	TypeWellnessCheck     AlertType = "wellness_check"
	TypeEmergencyReferral AlertType = "emergency_referral"
	TypeSafetyConcern     AlertType = "safety_concern"

	// TypeCrisisNotification is the fixed type stamped on every
	// attorney-facing alert. The minimal notice never reveals what kind of
	// event the care team recorded.
	TypeCrisisNotification AlertType = "crisis_notification"
)

// Reportable returns true for the alert types a reporter may supply.
// TypeCrisisNotification is system-generated and not reportable.
func (t AlertType) Reportable() bool {
	switch t {
	case TypeCrisis, TypeWellnessCheck, TypeEmergencyReferral, TypeSafetyConcern:
		return true
	}
	return false
}

// IsValid returns true for any alert type that may be persisted.
func (t AlertType) IsValid() bool {
	return t.Reportable() || t == TypeCrisisNotification
}

func (t AlertType) String() string {
	return string(t)
}

// Metadata keys stamped onto alert records.
const (
	MetaConsentChecked       = "consent_checked"
	MetaConsentGranted       = "consent_granted"
	MetaConsentStatus        = "consent_status"
	MetaParentAlertID        = "parent_alert_id"
	MetaDisclosureAuthorized = "disclosure_authorized"
	MetaWithheldReason       = "withheld_reason"
	MetaAlertType            = "alert_type"
	MetaSeverity             = "severity"
)

// Alert is a single crisis alert row.
//
// Internal alerts (ScopeInternal) carry the reporter's full clinical detail
// and the consent snapshot keys. External alerts (ScopeMinimal) carry only
// redacted text plus MetaParentAlertID linking back to the internal record.
type Alert struct {
	ID        domain.AlertID
	CaseID    domain.CaseID
	Type      AlertType
	Severity  domain.Severity
	Message   string
	Scope     domain.DisclosureScope
	CreatedBy domain.UserID
	CreatedAt time.Time
	Metadata  map[string]any
}

// Validate enforces the invariants an alert must satisfy before persisting.
func (a *Alert) Validate() error {
	if a.ID.IsNil() {
		return dErrors.New(dErrors.CodeInvariantViolation, "alert ID required")
	}
	if a.CaseID.IsNil() {
		return dErrors.New(dErrors.CodeInvariantViolation, "case ID required")
	}
	if !a.Type.IsValid() {
		return dErrors.New(dErrors.CodeInvariantViolation, "invalid alert type")
	}
	if !a.Severity.IsValid() {
		return dErrors.New(dErrors.CodeInvariantViolation, "invalid severity")
	}
	if !a.Scope.IsValid() {
		return dErrors.New(dErrors.CodeInvariantViolation, "invalid scope")
	}
	if a.Scope == domain.ScopeFull {
		return dErrors.New(dErrors.CodePolicyViolation, "full-detail alerts may not leave the care team")
	}
	if a.CreatedBy.IsNil() {
		return dErrors.New(dErrors.CodeInvariantViolation, "reporting user required")
	}
	return nil
}
