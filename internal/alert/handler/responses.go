package handler

import (
	"time"

	"caresignal/internal/alert/models"
	"caresignal/internal/alert/service"
)

// ReportResponse surfaces the explicit disclosure outcome; callers must not
// assume the attorney was notified just because the report succeeded.
type ReportResponse struct {
	AlertID          string `json:"alert_id"`
	ConsentGranted   bool   `json:"consent_granted"`
	AttorneyNotified bool   `json:"attorney_notified"`
	Outcome          string `json:"outcome"`
	WithheldReason   string `json:"withheld_reason,omitempty"`
	Warning          string `json:"warning,omitempty"`
}

// AlertView is the read model for a single alert.
type AlertView struct {
	ID        string    `json:"id"`
	CaseID    string    `json:"case_id"`
	Type      string    `json:"type"`
	Severity  string    `json:"severity"`
	Message   string    `json:"message"`
	Scope     string    `json:"scope"`
	CreatedBy string    `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
}

// ListResponse wraps a case's alerts.
type ListResponse struct {
	Alerts []AlertView `json:"alerts"`
}

func formatResult(r *service.Result) *ReportResponse {
	return &ReportResponse{
		AlertID:          r.AlertID.String(),
		ConsentGranted:   r.ConsentGranted,
		AttorneyNotified: r.AttorneyNotified,
		Outcome:          string(r.Outcome),
		WithheldReason:   string(r.WithheldReason),
		Warning:          r.Warning,
	}
}

func formatAlerts(alerts []*models.Alert) ListResponse {
	views := make([]AlertView, 0, len(alerts))
	for _, a := range alerts {
		views = append(views, AlertView{
			ID:        a.ID.String(),
			CaseID:    a.CaseID.String(),
			Type:      a.Type.String(),
			Severity:  a.Severity.String(),
			Message:   a.Message,
			Scope:     a.Scope.String(),
			CreatedBy: a.CreatedBy.String(),
			CreatedAt: a.CreatedAt,
		})
	}
	return ListResponse{Alerts: views}
}
