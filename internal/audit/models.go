package audit

import "time"

// Event is emitted from domain logic to capture key actions. Keep it
// transport-agnostic so stores and sinks can fan out.
type Event struct {
	Timestamp time.Time
	ActorID   string
	ClientID  string
	CaseID    string
	Action    string
	Decision  string
	Reason    string
}

// Actions recorded by the consent and alert services.
const (
	ActionConsentGranted    = "consent_granted"
	ActionConsentRevoked    = "consent_revoked"
	ActionConsentReinstated = "consent_reinstated"
	ActionAlertReported     = "alert_reported"
	ActionDisclosureMade    = "disclosure_made"
	ActionDisclosureHeld    = "disclosure_withheld"
	ActionDisclosureFailed  = "disclosure_failed"
)

// Decisions attached to events.
const (
	DecisionGranted  = "granted"
	DecisionRevoked  = "revoked"
	DecisionApproved = "approved"
	DecisionWithheld = "withheld"
)
