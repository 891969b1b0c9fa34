package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"caresignal/internal/audit"
	"caresignal/internal/consent/metrics"
	"caresignal/internal/consent/models"
	"caresignal/internal/consent/store"
	"caresignal/pkg/domain"
	dErrors "caresignal/pkg/domain-errors"
)

// Store defines the persistence interface for consent records.
// Error Contract:
// - FindByClient returns store.ErrNotFound when no record exists
// - Other methods return nil on success or wrapped errors on failure
type Store interface {
	Save(ctx context.Context, record *models.Record) error
	FindByClient(ctx context.Context, clientID domain.ClientID) (*models.Record, error)
	Update(ctx context.Context, record *models.Record) error
}

type Option func(*Service)

const defaultConsentTTL = 365 * 24 * time.Hour // 1 year

// Service persists consent decisions and enforces lifecycle rules.
// Records are superseded in place; history is tracked via the audit trail.
type Service struct {
	store      Store
	auditor    *audit.Publisher
	metrics    *metrics.Metrics
	logger     *slog.Logger
	consentTTL time.Duration
}

func NewService(store Store, auditor *audit.Publisher, logger *slog.Logger, opts ...Option) *Service {
	svc := &Service{
		store:      store,
		auditor:    auditor,
		logger:     logger,
		consentTTL: defaultConsentTTL,
	}
	for _, opt := range opts {
		opt(svc)
	}
	if svc.consentTTL <= 0 {
		svc.consentTTL = defaultConsentTTL
	}
	return svc
}

// WithMetrics sets the metrics instance for the service.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// WithConsentTTL configures the time-to-live duration for granted consents.
// If not set or set to zero/negative, defaults to 1 year.
func WithConsentTTL(ttl time.Duration) Option {
	return func(s *Service) {
		if ttl > 0 {
			s.consentTTL = ttl
		}
	}
}

// Grant records the client's authorization for attorney notification. An
// existing record (revoked, expired, or active) is superseded in place.
func (s *Service) Grant(ctx context.Context, clientID domain.ClientID, actorID domain.UserID) (*models.Record, error) {
	if clientID.IsNil() {
		return nil, dErrors.New(dErrors.CodeBadRequest, "client ID required")
	}

	now := time.Now()
	expiry := now.Add(s.consentTTL)

	existing, err := s.store.FindByClient(ctx, clientID)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to read consent")
	}

	if err == nil && existing != nil {
		wasEffective := existing.Effective(now)

		updated := *existing
		updated.Granted = true
		updated.Revoked = false
		updated.RevokedAt = nil
		updated.SignedAt = &now
		updated.ExpiresAt = &expiry
		if err := s.store.Update(ctx, &updated); err != nil {
			return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to renew consent")
		}
		s.emitAudit(ctx, clientID, actorID, audit.ActionConsentGranted, audit.DecisionGranted)
		if s.metrics != nil {
			s.metrics.IncrementGranted()
			if !wasEffective {
				s.metrics.IncrementActive()
			}
		}
		return &updated, nil
	}

	record, err := models.NewRecord(domain.NewConsentID(), clientID, now, &expiry)
	if err != nil {
		return nil, err
	}
	if err := s.store.Save(ctx, record); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to save consent")
	}
	s.emitAudit(ctx, clientID, actorID, audit.ActionConsentGranted, audit.DecisionGranted)
	if s.metrics != nil {
		s.metrics.IncrementGranted()
		s.metrics.IncrementActive()
	}
	return record, nil
}

// Revoke withdraws the client's authorization. Revoking an already revoked
// record is a no-op so replays cannot distort the audit trail.
func (s *Service) Revoke(ctx context.Context, clientID domain.ClientID, actorID domain.UserID) (*models.Record, error) {
	if clientID.IsNil() {
		return nil, dErrors.New(dErrors.CodeBadRequest, "client ID required")
	}

	record, err := s.store.FindByClient(ctx, clientID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, "no consent on file for client")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to read consent")
	}
	if record.Revoked {
		return record, nil
	}

	now := time.Now()
	wasEffective := record.Effective(now)

	updated := *record
	updated.Revoked = true
	updated.RevokedAt = &now
	if err := s.store.Update(ctx, &updated); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to revoke consent")
	}
	s.emitAudit(ctx, clientID, actorID, audit.ActionConsentRevoked, audit.DecisionRevoked)
	if s.metrics != nil {
		s.metrics.IncrementRevoked()
		if wasEffective {
			s.metrics.DecrementActive()
		}
	}
	return &updated, nil
}

// Reinstate restores a previously revoked authorization with a fresh
// signature timestamp and expiry.
func (s *Service) Reinstate(ctx context.Context, clientID domain.ClientID, actorID domain.UserID) (*models.Record, error) {
	if clientID.IsNil() {
		return nil, dErrors.New(dErrors.CodeBadRequest, "client ID required")
	}

	record, err := s.store.FindByClient(ctx, clientID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, "no consent on file for client")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to read consent")
	}

	now := time.Now()
	if record.Effective(now) {
		return record, nil
	}

	expiry := now.Add(s.consentTTL)
	updated := *record
	updated.Granted = true
	updated.Revoked = false
	updated.RevokedAt = nil
	updated.SignedAt = &now
	updated.ExpiresAt = &expiry
	if err := s.store.Update(ctx, &updated); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to reinstate consent")
	}
	s.emitAudit(ctx, clientID, actorID, audit.ActionConsentReinstated, audit.DecisionGranted)
	if s.metrics != nil {
		s.metrics.IncrementReinstated()
		s.metrics.IncrementActive()
	}
	return &updated, nil
}

// Status reports the client's consent state. A missing record is not an
// error; it reports StatusNone with Effective=false (fail closed).
func (s *Service) Status(ctx context.Context, clientID domain.ClientID) (*models.StatusView, error) {
	if clientID.IsNil() {
		return nil, dErrors.New(dErrors.CodeBadRequest, "client ID required")
	}

	record, err := s.store.FindByClient(ctx, clientID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			view := &models.StatusView{Status: models.StatusNone, Effective: false}
			s.countCheck(view)
			return view, nil
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to read consent")
	}

	now := time.Now()
	view := &models.StatusView{
		Status:    record.ComputeStatus(now),
		Effective: record.Effective(now),
		SignedAt:  record.SignedAt,
		RevokedAt: record.RevokedAt,
		ExpiresAt: record.ExpiresAt,
	}
	s.countCheck(view)
	return view, nil
}

func (s *Service) countCheck(view *models.StatusView) {
	if s.metrics == nil {
		return
	}
	if view.Effective {
		s.metrics.IncrementCheckPassed()
		return
	}
	s.metrics.IncrementCheckFailed(string(view.Status))
}

func (s *Service) emitAudit(ctx context.Context, clientID domain.ClientID, actorID domain.UserID, action, decision string) {
	if s.auditor == nil {
		return
	}
	_ = s.auditor.Emit(ctx, audit.Event{
		ActorID:  actorID.String(),
		ClientID: clientID.String(),
		Action:   action,
		Decision: decision,
		Reason:   "user_initiated",
	})
}
