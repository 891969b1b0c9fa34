package disclosure

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"caresignal/internal/platform/middleware"
	respond "caresignal/internal/transport/http/json"
	"caresignal/internal/transport/http/shared"
	"caresignal/pkg/domain"
	dErrors "caresignal/pkg/domain-errors"
)

// EntryView is the read model for a disclosure log entry.
type EntryView struct {
	ID              string         `json:"id"`
	CaseID          string         `json:"case_id"`
	AlertID         string         `json:"alert_id"`
	AuthorizationID string         `json:"authorization_id"`
	DisclosedTo     string         `json:"disclosed_to"`
	DisclosedToRole string         `json:"disclosed_to_role"`
	Scope           string         `json:"scope"`
	Reason          string         `json:"reason"`
	DisclosedBy     string         `json:"disclosed_by"`
	DisclosedAt     time.Time      `json:"disclosed_at"`
	Metadata        map[string]any `json:"metadata,omitempty"`
	Supersedes      string         `json:"supersedes,omitempty"`
}

// ListResponse wraps a case's disclosure trail.
type ListResponse struct {
	Disclosures []EntryView `json:"disclosures"`
}

// Handler serves the compliance read of the disclosure log.
type Handler struct {
	logger *slog.Logger
	store  Store
}

// NewHandler creates a disclosure Handler.
func NewHandler(store Store, logger *slog.Logger) *Handler {
	return &Handler{
		logger: logger,
		store:  store,
	}
}

// Register registers the disclosure routes with the chi router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/cases/{caseID}/disclosures", h.handleListByCase)
}

func (h *Handler) handleListByCase(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := middleware.GetRequestID(ctx)

	caseID, err := domain.ParseCaseID(chi.URLParam(r, "caseID"))
	if err != nil {
		shared.WriteError(w, err)
		return
	}

	entries, err := h.store.ListByCase(ctx, caseID)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list disclosures",
			"request_id", requestID,
			"case_id", caseID.String(),
			"error", err,
		)
		shared.WriteError(w, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list disclosures"))
		return
	}

	views := make([]EntryView, 0, len(entries))
	for _, e := range entries {
		views = append(views, formatEntry(e))
	}
	respond.WriteJSON(w, http.StatusOK, ListResponse{Disclosures: views})
}

func formatEntry(e *Entry) EntryView {
	view := EntryView{
		ID:              e.ID.String(),
		CaseID:          e.CaseID.String(),
		AlertID:         e.AlertID.String(),
		AuthorizationID: e.AuthorizationID.String(),
		DisclosedTo:     e.DisclosedTo.String(),
		DisclosedToRole: string(e.DisclosedToRole),
		Scope:           e.Scope.String(),
		Reason:          e.Reason,
		DisclosedBy:     e.DisclosedBy.String(),
		DisclosedAt:     e.DisclosedAt,
		Metadata:        e.Metadata,
	}
	if e.Supersedes != nil {
		view.Supersedes = e.Supersedes.String()
	}
	return view
}
