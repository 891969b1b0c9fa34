package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"caresignal/internal/consent/models"
	"caresignal/internal/platform/middleware"
	respond "caresignal/internal/transport/http/json"
	"caresignal/internal/transport/http/shared"
	"caresignal/pkg/domain"
	dErrors "caresignal/pkg/domain-errors"
)

// Service defines the interface for consent lifecycle operations.
type Service interface {
	Grant(ctx context.Context, clientID domain.ClientID, actorID domain.UserID) (*models.Record, error)
	Revoke(ctx context.Context, clientID domain.ClientID, actorID domain.UserID) (*models.Record, error)
	Reinstate(ctx context.Context, clientID domain.ClientID, actorID domain.UserID) (*models.Record, error)
	Status(ctx context.Context, clientID domain.ClientID) (*models.StatusView, error)
}

// Handler handles consent lifecycle endpoints.
type Handler struct {
	logger  *slog.Logger
	consent Service
}

// New creates a new consent Handler.
func New(consent Service, logger *slog.Logger) *Handler {
	return &Handler{
		logger:  logger,
		consent: consent,
	}
}

// Register registers the consent routes with the chi router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/consents/grant", h.handleGrant)
	r.Post("/consents/revoke", h.handleRevoke)
	r.Post("/consents/reinstate", h.handleReinstate)
	r.Get("/consents/{clientID}", h.handleStatus)
}

func (h *Handler) handleGrant(w http.ResponseWriter, r *http.Request) {
	h.handleLifecycle(w, r, "grant", h.consent.Grant)
}

func (h *Handler) handleRevoke(w http.ResponseWriter, r *http.Request) {
	h.handleLifecycle(w, r, "revoke", h.consent.Revoke)
}

func (h *Handler) handleReinstate(w http.ResponseWriter, r *http.Request) {
	h.handleLifecycle(w, r, "reinstate", h.consent.Reinstate)
}

// handleLifecycle is the shared decode-call-respond path for the three
// lifecycle operations; they take the same request and return the same view.
func (h *Handler) handleLifecycle(
	w http.ResponseWriter,
	r *http.Request,
	op string,
	fn func(ctx context.Context, clientID domain.ClientID, actorID domain.UserID) (*models.Record, error),
) {
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

	var req ConsentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WarnContext(ctx, "failed to decode consent request",
			"request_id", requestID,
			"operation", op,
			"error", err,
		)
		shared.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}

	clientID, err := domain.ParseClientID(req.ClientID)
	if err != nil {
		shared.WriteError(w, err)
		return
	}

	record, err := fn(ctx, clientID, actor.UserID)
	if err != nil {
		h.logger.ErrorContext(ctx, "consent operation failed",
			"request_id", requestID,
			"operation", op,
			"client_id", req.ClientID,
			"error", err,
		)
		shared.WriteError(w, err)
		return
	}

	respond.WriteJSON(w, http.StatusOK, formatRecord(record, time.Now()))
}

func (h *Handler) handleStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := middleware.GetRequestID(ctx)

	clientID, err := domain.ParseClientID(chi.URLParam(r, "clientID"))
	if err != nil {
		shared.WriteError(w, err)
		return
	}

	view, err := h.consent.Status(ctx, clientID)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to read consent status",
			"request_id", requestID,
			"client_id", clientID.String(),
			"error", err,
		)
		shared.WriteError(w, err)
		return
	}

	respond.WriteJSON(w, http.StatusOK, formatStatus(clientID.String(), view))
}
