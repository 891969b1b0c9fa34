package handler

// ReportRequest is the payload for reporting a crisis alert.
type ReportRequest struct {
	CaseID string `json:"case_id"`
	// AlertType is one of crisis, wellness_check, emergency_referral,
	// safety_concern.
	AlertType string `json:"alert_type"`
	Severity  string `json:"severity"`
	// Message is the full clinical detail, visible to the care team only.
	Message string `json:"message"`
	// MinimalMessage is optional attorney-facing text; it is scrubbed again
	// server-side and an empty value falls back to the generic notice.
	MinimalMessage string `json:"minimal_message,omitempty"`
}
