package handler

import (
	"time"

	"caresignal/internal/consent/models"
)

// ConsentResponse is the read model for a consent record.
type ConsentResponse struct {
	ConsentID string     `json:"consent_id"`
	ClientID  string     `json:"client_id"`
	Status    string     `json:"status"`
	Effective bool       `json:"effective"`
	SignedAt  *time.Time `json:"signed_at,omitempty"`
	RevokedAt *time.Time `json:"revoked_at,omitempty"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}

// StatusResponse reports the client's current consent state. A client with no
// record on file reports status "none".
type StatusResponse struct {
	ClientID  string     `json:"client_id"`
	Status    string     `json:"status"`
	Effective bool       `json:"effective"`
	SignedAt  *time.Time `json:"signed_at,omitempty"`
	RevokedAt *time.Time `json:"revoked_at,omitempty"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}

func formatRecord(record *models.Record, now time.Time) *ConsentResponse {
	return &ConsentResponse{
		ConsentID: record.ID.String(),
		ClientID:  record.ClientID.String(),
		Status:    string(record.ComputeStatus(now)),
		Effective: record.Effective(now),
		SignedAt:  record.SignedAt,
		RevokedAt: record.RevokedAt,
		ExpiresAt: record.ExpiresAt,
	}
}

func formatStatus(clientID string, view *models.StatusView) *StatusResponse {
	return &StatusResponse{
		ClientID:  clientID,
		Status:    string(view.Status),
		Effective: view.Effective,
		SignedAt:  view.SignedAt,
		RevokedAt: view.RevokedAt,
		ExpiresAt: view.ExpiresAt,
	}
}
