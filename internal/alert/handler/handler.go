package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"caresignal/internal/alert/models"
	"caresignal/internal/alert/service"
	"caresignal/internal/platform/middleware"
	respond "caresignal/internal/transport/http/json"
	"caresignal/internal/transport/http/shared"
	"caresignal/pkg/domain"
	dErrors "caresignal/pkg/domain-errors"
)

// Service defines the interface for crisis alert operations.
type Service interface {
	Report(ctx context.Context, params service.ReportParams) (*service.Result, error)
	ListByCase(ctx context.Context, caseID domain.CaseID, scope domain.DisclosureScope) ([]*models.Alert, error)
}

// Handler handles crisis alert endpoints.
type Handler struct {
	logger *slog.Logger
	alerts Service
}

// New creates a new alert Handler.
func New(alerts Service, logger *slog.Logger) *Handler {
	return &Handler{
		logger: logger,
		alerts: alerts,
	}
}

// Register registers the alert routes with the chi router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/alerts/crisis", h.handleReport)
	r.Get("/cases/{caseID}/alerts", h.handleListByCase)
}

func (h *Handler) handleReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := middleware.GetRequestID(ctx)

	actor, ok := middleware.GetActor(ctx)
	if !ok {
		h.logger.ErrorContext(ctx, "actor missing from context despite auth middleware",
			"request_id", requestID,
		)
		shared.WriteError(w, dErrors.New(dErrors.CodeInternal, "authentication context error"))
		return
	}

	var req ReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WarnContext(ctx, "failed to decode crisis report request",
			"request_id", requestID,
			"error", err,
		)
		shared.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}

	caseID, err := domain.ParseCaseID(req.CaseID)
	if err != nil {
		shared.WriteError(w, err)
		return
	}

	result, err := h.alerts.Report(ctx, service.ReportParams{
		CaseID:         caseID,
		AlertType:      models.AlertType(req.AlertType),
		Severity:       domain.Severity(req.Severity),
		Message:        req.Message,
		MinimalMessage: req.MinimalMessage,
		ReportedBy:     actor.UserID,
		Device:         deviceMetadata(ctx),
	})
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to report crisis alert",
			"request_id", requestID,
			"case_id", req.CaseID,
			"error", err,
		)
		shared.WriteError(w, err)
		return
	}

	if result.Warning != "" {
		h.logger.WarnContext(ctx, "crisis report degraded",
			"request_id", requestID,
			"case_id", req.CaseID,
			"withheld_reason", string(result.WithheldReason),
		)
	}

	respond.WriteJSON(w, http.StatusCreated, formatResult(result))
}

func (h *Handler) handleListByCase(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := middleware.GetRequestID(ctx)

	caseID, err := domain.ParseCaseID(chi.URLParam(r, "caseID"))
	if err != nil {
		shared.WriteError(w, err)
		return
	}

	scope := domain.DisclosureScope(r.URL.Query().Get("scope"))

	alerts, err := h.alerts.ListByCase(ctx, caseID, scope)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list case alerts",
			"request_id", requestID,
			"case_id", caseID.String(),
			"error", err,
		)
		shared.WriteError(w, err)
		return
	}

	respond.WriteJSON(w, http.StatusOK, formatAlerts(alerts))
}

// deviceMetadata flattens the parsed client context for the disclosure log.
func deviceMetadata(ctx context.Context) map[string]any {
	meta, ok := middleware.GetClientMeta(ctx)
	if !ok {
		return nil
	}
	return map[string]any{
		"device_browser":     meta.Browser,
		"device_os":          meta.OS,
		"device_platform":    meta.Platform,
		"device_fingerprint": meta.Fingerprint,
	}
}
