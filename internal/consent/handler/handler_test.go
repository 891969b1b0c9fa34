package handler

//go:generate mockgen -source=handler.go -destination=mocks/consent-mocks.go -package=mocks Service

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"caresignal/internal/consent/handler/mocks"
	"caresignal/internal/consent/models"
	"caresignal/internal/platform/middleware"
	"caresignal/pkg/domain"
	dErrors "caresignal/pkg/domain-errors"
)

type ConsentHandlerSuite struct {
	suite.Suite
}

func TestConsentHandlerSuite(t *testing.T) {
	suite.Run(t, new(ConsentHandlerSuite))
}

func newTestRouter(t *testing.T) (*mocks.MockService, chi.Router) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	mockService := mocks.NewMockService(ctrl)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	h := New(mockService, logger)
	r := chi.NewRouter()
	h.Register(r)
	return mockService, r
}

func newConsentRequest(t *testing.T, endpoint string, clientID string, actor *middleware.Actor) *http.Request {
	t.Helper()
	payload, err := json.Marshal(ConsentRequest{ClientID: clientID})
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, endpoint, bytes.NewReader(payload))
	if actor != nil {
		req = req.WithContext(middleware.WithActor(req.Context(), *actor))
	}
	return req
}

func activeRecord(clientID domain.ClientID) *models.Record {
	now := time.Now()
	expiry := now.Add(365 * 24 * time.Hour)
	return &models.Record{
		ID:        domain.NewConsentID(),
		ClientID:  clientID,
		Granted:   true,
		SignedAt:  &now,
		ExpiresAt: &expiry,
		CreatedAt: now,
	}
}

func (s *ConsentHandlerSuite) TestHandleGrant() {
	clientID := domain.ClientID(uuid.New())
	actor := &middleware.Actor{UserID: domain.UserID(uuid.New()), Role: domain.RoleClient}

	s.Run("200 - consent granted", func() {
		mockService, r := newTestRouter(s.T())
		mockService.EXPECT().
			Grant(gomock.Any(), clientID, actor.UserID).
			Return(activeRecord(clientID), nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, newConsentRequest(s.T(), "/consents/grant", clientID.String(), actor))

		assert.Equal(s.T(), http.StatusOK, w.Code)
		var resp ConsentResponse
		require.NoError(s.T(), json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(s.T(), clientID.String(), resp.ClientID)
		assert.Equal(s.T(), "active", resp.Status)
		assert.True(s.T(), resp.Effective)
	})

	s.Run("400 - invalid client ID", func() {
		_, r := newTestRouter(s.T())
		w := httptest.NewRecorder()
		r.ServeHTTP(w, newConsentRequest(s.T(), "/consents/grant", "not-a-uuid", actor))

		assert.Equal(s.T(), http.StatusBadRequest, w.Code)
	})

	s.Run("500 - actor missing from context", func() {
		_, r := newTestRouter(s.T())
		w := httptest.NewRecorder()
		r.ServeHTTP(w, newConsentRequest(s.T(), "/consents/grant", clientID.String(), nil))

		assert.Equal(s.T(), http.StatusInternalServerError, w.Code)
	})
}

func (s *ConsentHandlerSuite) TestHandleRevoke() {
	clientID := domain.ClientID(uuid.New())
	actor := &middleware.Actor{UserID: domain.UserID(uuid.New()), Role: domain.RoleClient}

	s.Run("200 - consent revoked", func() {
		mockService, r := newTestRouter(s.T())
		record := activeRecord(clientID)
		now := time.Now()
		record.Revoked = true
		record.RevokedAt = &now
		mockService.EXPECT().
			Revoke(gomock.Any(), clientID, actor.UserID).
			Return(record, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, newConsentRequest(s.T(), "/consents/revoke", clientID.String(), actor))

		assert.Equal(s.T(), http.StatusOK, w.Code)
		var resp ConsentResponse
		require.NoError(s.T(), json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(s.T(), "revoked", resp.Status)
		assert.False(s.T(), resp.Effective)
	})

	s.Run("404 - no consent on file", func() {
		mockService, r := newTestRouter(s.T())
		mockService.EXPECT().
			Revoke(gomock.Any(), clientID, actor.UserID).
			Return(nil, dErrors.New(dErrors.CodeNotFound, "no consent on file for client"))

		w := httptest.NewRecorder()
		r.ServeHTTP(w, newConsentRequest(s.T(), "/consents/revoke", clientID.String(), actor))

		assert.Equal(s.T(), http.StatusNotFound, w.Code)
	})
}

func (s *ConsentHandlerSuite) TestHandleStatus() {
	clientID := domain.ClientID(uuid.New())

	s.Run("200 - no record reports status none", func() {
		mockService, r := newTestRouter(s.T())
		mockService.EXPECT().
			Status(gomock.Any(), clientID).
			Return(&models.StatusView{Status: models.StatusNone, Effective: false}, nil)

		req := httptest.NewRequest(http.MethodGet, "/consents/"+clientID.String(), nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(s.T(), http.StatusOK, w.Code)
		var resp StatusResponse
		require.NoError(s.T(), json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(s.T(), "none", resp.Status)
		assert.False(s.T(), resp.Effective)
	})

	s.Run("400 - invalid client ID", func() {
		_, r := newTestRouter(s.T())
		req := httptest.NewRequest(http.MethodGet, "/consents/nope", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(s.T(), http.StatusBadRequest, w.Code)
	})
}
