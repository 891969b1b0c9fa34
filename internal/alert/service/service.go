// Package service orchestrates the crisis report operation: record the alert
// for the care team, evaluate the client's standing consent, and, only when
// authorized, disclose a minimal notice to the case's attorney.
package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"caresignal/internal/alert/metrics"
	"caresignal/internal/alert/models"
	"caresignal/internal/alert/tracer"
	"caresignal/internal/assignment"
	"caresignal/internal/audit"
	consentmodels "caresignal/internal/consent/models"
	consentstore "caresignal/internal/consent/store"
	"caresignal/internal/disclosure"
	"caresignal/internal/notify"
	"caresignal/internal/policy"
	"caresignal/pkg/domain"
	dErrors "caresignal/pkg/domain-errors"
)

// Store persists crisis alerts.
// Error Contract:
// - FindByID returns a CodeNotFound domain error when no alert exists
// - Other methods return nil on success or wrapped errors on failure
type Store interface {
	Save(ctx context.Context, alert *models.Alert) error
	FindByID(ctx context.Context, id domain.AlertID) (*models.Alert, error)
	ListByCase(ctx context.Context, caseID domain.CaseID) ([]*models.Alert, error)
}

// ConsentSource reads the client's standing consent record.
// FindByClient returns consentstore.ErrNotFound when no record exists.
type ConsentSource interface {
	FindByClient(ctx context.Context, clientID domain.ClientID) (*consentmodels.Record, error)
}

// AssignmentSource resolves case assignments.
// FindByCaseAndRole returns assignment.ErrNotFound when the role is unfilled.
type AssignmentSource interface {
	FindByCaseAndRole(ctx context.Context, caseID domain.CaseID, role domain.Role) (*assignment.Assignment, error)
}

// MessageStore persists the attorney's in-app message.
type MessageStore interface {
	Save(ctx context.Context, msg *notify.Message) error
}

// DisclosureStore appends to the compliance disclosure trail.
type DisclosureStore interface {
	Append(ctx context.Context, entry *disclosure.Entry) error
}

// TxStores bundles the stores that participate in the disclosure transaction.
type TxStores struct {
	Alerts      Store
	Messages    MessageStore
	Disclosures DisclosureStore
}

// TxRunner executes the disclosure writes as one atomic unit: the external
// alert, the attorney message, and the disclosure log entry commit together
// or not at all.
type TxRunner interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context, stores TxStores) error) error
}

// Outcome is the disclosure result of a crisis report.
type Outcome string

const (
	OutcomeDisclosed Outcome = "disclosed"
	OutcomeWithheld  Outcome = "withheld"
)

// Warning texts surfaced to the reporter when external delivery degrades.
const (
	warnConsentLookupFailed = "consent could not be verified; attorney notification withheld"
	warnDeliveryFailed      = "attorney notification failed; alert visible to care team only"
)

// ReportParams carries the reporter's input for a crisis report.
type ReportParams struct {
	CaseID    domain.CaseID
	AlertType models.AlertType
	Severity  domain.Severity
	// Message is the reporter's full clinical detail. It never leaves the
	// care team.
	Message string
	// MinimalMessage, if set, is attorney-facing text written to the minimum
	// necessary standard. It is scrubbed again before persisting; empty falls
	// back to the fixed generic notice.
	MinimalMessage string
	ReportedBy     domain.UserID
	// Device describes the reporting client, stamped into the disclosure log.
	Device map[string]any
}

// Result is the outcome of a crisis report. AttorneyNotified is the explicit
// flag callers must check: a successful report does not imply the attorney
// was told.
type Result struct {
	AlertID          domain.AlertID
	ConsentGranted   bool
	AttorneyNotified bool
	Outcome          Outcome
	WithheldReason   policy.WithholdReason
	Warning          string
}

type Option func(*Service)

// Service runs the consent-gated crisis alert workflow.
type Service struct {
	store       Store
	tx          TxRunner
	consents    ConsentSource
	assignments AssignmentSource
	auditor     *audit.Publisher
	metrics     *metrics.Metrics
	tracer      tracer.Tracer
	logger      *slog.Logger
}

func NewService(
	store Store,
	tx TxRunner,
	consents ConsentSource,
	assignments AssignmentSource,
	auditor *audit.Publisher,
	logger *slog.Logger,
	opts ...Option,
) *Service {
	svc := &Service{
		store:       store,
		tx:          tx,
		consents:    consents,
		assignments: assignments,
		auditor:     auditor,
		tracer:      tracer.NewNoop(),
		logger:      logger,
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc
}

// WithMetrics sets the metrics instance for the service.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// WithTracer sets the tracer for the service.
func WithTracer(t tracer.Tracer) Option {
	return func(s *Service) {
		if t != nil {
			s.tracer = t
		}
	}
}

// caseContext is what the pre-report reads produce: the client's consent
// state and the attorney assigned to the case, if any.
type caseContext struct {
	consent       *consentmodels.Record
	consentStatus consentmodels.Status
	lookupFailed  bool
	attorney      *assignment.Assignment
}

// Report records a crisis alert and, when the client's consent permits,
// discloses a minimal notice to the case's attorney.
//
// The internal alert is the one write that must succeed: if it fails the
// whole report fails. Disclosure failures degrade the result instead of
// failing the report, so the care team never loses visibility because the
// attorney could not be reached.
func (s *Service) Report(ctx context.Context, params ReportParams) (result *Result, err error) {
	if params.CaseID.IsNil() {
		return nil, dErrors.New(dErrors.CodeBadRequest, "case ID required")
	}
	if params.ReportedBy.IsNil() {
		return nil, dErrors.New(dErrors.CodeBadRequest, "reporting user required")
	}
	if !params.AlertType.Reportable() {
		return nil, dErrors.New(dErrors.CodeBadRequest, "invalid alert type")
	}
	if !params.Severity.IsValid() {
		return nil, dErrors.New(dErrors.CodeBadRequest, "invalid severity")
	}
	if params.Message == "" {
		return nil, dErrors.New(dErrors.CodeBadRequest, "alert message required")
	}

	start := time.Now()
	defer func() {
		if s.metrics != nil {
			s.metrics.ObserveReportDuration(time.Since(start).Seconds())
		}
	}()

	ctx, span := s.tracer.Start(ctx, tracer.SpanReport,
		tracer.String(tracer.AttrCaseID, params.CaseID.String()),
		tracer.String(tracer.AttrAlertType, params.AlertType.String()),
		tracer.String(tracer.AttrSeverity, params.Severity.String()),
	)
	defer func() { span.End(err) }()

	cc, err := s.gatherCaseContext(ctx, params.CaseID)
	if err != nil {
		return nil, err
	}

	decision := policy.Decide(cc.consentStatus, params.Severity)
	if cc.lookupFailed {
		decision.Reason = policy.ReasonConsentUnproven
	}
	span.AddEvent(tracer.EventConsentChecked,
		tracer.Bool(tracer.AttrConsentGranted, decision.AllowExternal),
	)

	now := time.Now()
	internal := &models.Alert{
		ID:        domain.NewAlertID(),
		CaseID:    params.CaseID,
		Type:      params.AlertType,
		Severity:  params.Severity,
		Message:   params.Message,
		Scope:     domain.ScopeInternal,
		CreatedBy: params.ReportedBy,
		CreatedAt: now,
		Metadata: map[string]any{
			models.MetaConsentChecked: true,
			models.MetaConsentGranted: decision.AllowExternal,
			models.MetaConsentStatus:  string(cc.consentStatus),
		},
	}
	if err := s.store.Save(ctx, internal); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to record crisis alert")
	}
	if s.metrics != nil {
		s.metrics.IncrementReported(params.AlertType.String(), params.Severity.String())
	}
	s.emitAudit(ctx, params, audit.ActionAlertReported, audit.DecisionApproved, string(params.AlertType))

	result = &Result{
		AlertID:        internal.ID,
		ConsentGranted: decision.AllowExternal,
	}

	if !decision.AllowExternal {
		return s.withhold(ctx, params, result, decision.Reason, cc.lookupFailedWarning()), nil
	}
	if cc.attorney == nil {
		return s.withhold(ctx, params, result, policy.ReasonNoAttorney, ""), nil
	}

	if err := s.disclose(ctx, params, internal, cc, now); err != nil {
		s.logger.ErrorContext(ctx, "disclosure transaction failed",
			"case_id", params.CaseID.String(),
			"alert_id", internal.ID.String(),
			"error", err,
		)
		if s.metrics != nil {
			s.metrics.IncrementDeliveryFailure()
		}
		s.emitAudit(ctx, params, audit.ActionDisclosureFailed, audit.DecisionWithheld, string(policy.ReasonDeliveryFailed))
		result.Outcome = OutcomeWithheld
		result.WithheldReason = policy.ReasonDeliveryFailed
		result.Warning = warnDeliveryFailed
		return result, nil
	}

	span.SetAttributes(tracer.String(tracer.AttrScope, domain.ScopeMinimal.String()))
	if s.metrics != nil {
		s.metrics.IncrementDisclosed()
	}
	s.emitAudit(ctx, params, audit.ActionDisclosureMade, audit.DecisionApproved, string(params.AlertType)+"_notification")
	result.AttorneyNotified = true
	result.Outcome = OutcomeDisclosed
	return result, nil
}

// gatherCaseContext runs the pre-report reads concurrently: one goroutine
// resolves the case's client and their consent record, the other resolves the
// attorney assignment. A consent read failure is not fatal: it is logged and
// treated as absent consent so the report still fails closed.
func (s *Service) gatherCaseContext(ctx context.Context, caseID domain.CaseID) (*caseContext, error) {
	cc := &caseContext{consentStatus: consentmodels.StatusNone}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		client, err := s.assignments.FindByCaseAndRole(gctx, caseID, domain.RoleClient)
		if err != nil {
			if errors.Is(err, assignment.ErrNotFound) {
				s.logger.WarnContext(gctx, "case has no client assignment, treating as no consent",
					"case_id", caseID.String(),
				)
				return nil
			}
			cc.lookupFailed = true
			s.logger.WarnContext(gctx, "client lookup failed, treating as no consent",
				"case_id", caseID.String(),
				"error", err,
			)
			return nil
		}

		record, err := s.consents.FindByClient(gctx, domain.ClientID(client.UserID))
		if err != nil {
			if errors.Is(err, consentstore.ErrNotFound) {
				return nil
			}
			cc.lookupFailed = true
			s.logger.WarnContext(gctx, "consent lookup failed, treating as no consent",
				"case_id", caseID.String(),
				"error", err,
			)
			return nil
		}
		cc.consent = record
		cc.consentStatus = record.ComputeStatus(time.Now())
		return nil
	})

	g.Go(func() error {
		attorney, err := s.assignments.FindByCaseAndRole(gctx, caseID, domain.RoleAttorney)
		if err != nil {
			// Absence is normal; a hard failure just means nobody to notify.
			if !errors.Is(err, assignment.ErrNotFound) {
				s.logger.WarnContext(gctx, "attorney lookup failed",
					"case_id", caseID.String(),
					"error", err,
				)
			}
			return nil
		}
		cc.attorney = attorney
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to gather case context")
	}
	return cc, nil
}

// disclose performs the authorized writes as one transaction: the minimal
// external alert, the attorney's in-app message, and the disclosure log
// entry.
func (s *Service) disclose(ctx context.Context, params ReportParams, internal *models.Alert, cc *caseContext, now time.Time) (err error) {
	ctx, span := s.tracer.Start(ctx, tracer.SpanDisclose,
		tracer.String(tracer.AttrCaseID, params.CaseID.String()),
	)
	defer func() { span.End(err) }()

	notice := policy.Redact(params.MinimalMessage)

	// The attorney-facing record carries a fixed type and severity. The true
	// clinical severity and event kind stay with the internal alert; the
	// minimal notice must not reveal either.
	external := &models.Alert{
		ID:        domain.NewAlertID(),
		CaseID:    params.CaseID,
		Type:      models.TypeCrisisNotification,
		Severity:  domain.SeverityMedium,
		Message:   notice,
		Scope:     domain.ScopeMinimal,
		CreatedBy: params.ReportedBy,
		CreatedAt: now,
		Metadata: map[string]any{
			models.MetaParentAlertID:        internal.ID.String(),
			models.MetaDisclosureAuthorized: true,
		},
	}

	msg := &notify.Message{
		ID:            domain.NewMessageID(),
		CaseID:        params.CaseID,
		SenderID:      params.ReportedBy,
		RecipientRole: domain.RoleAttorney,
		Subject:       "Crisis alert for your client",
		Body:          notice,
		Status:        notify.StatusPending,
		CreatedAt:     now,
	}

	entry := &disclosure.Entry{
		ID:              domain.NewDisclosureID(),
		CaseID:          params.CaseID,
		AlertID:         external.ID,
		AuthorizationID: cc.consent.ID,
		DisclosedTo:     cc.attorney.UserID,
		DisclosedToRole: domain.RoleAttorney,
		Scope:           domain.ScopeMinimal,
		Reason:          string(params.AlertType) + "_notification",
		DisclosedBy:     params.ReportedBy,
		DisclosedAt:     now,
		Metadata:        disclosureMetadata(internal, params.Device),
	}

	err = s.tx.RunInTx(ctx, func(ctx context.Context, stores TxStores) error {
		if err := stores.Alerts.Save(ctx, external); err != nil {
			return err
		}
		if err := stores.Messages.Save(ctx, msg); err != nil {
			return err
		}
		return stores.Disclosures.Append(ctx, entry)
	})
	if err != nil {
		return err
	}
	span.AddEvent(tracer.EventDisclosureWritten)
	return nil
}

// ListByCase returns the case's alerts, optionally filtered by scope.
func (s *Service) ListByCase(ctx context.Context, caseID domain.CaseID, scope domain.DisclosureScope) ([]*models.Alert, error) {
	if caseID.IsNil() {
		return nil, dErrors.New(dErrors.CodeBadRequest, "case ID required")
	}
	if scope != "" && !scope.IsValid() {
		return nil, dErrors.New(dErrors.CodeBadRequest, "invalid scope filter")
	}

	alerts, err := s.store.ListByCase(ctx, caseID)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list alerts")
	}
	if scope == "" {
		return alerts, nil
	}
	filtered := make([]*models.Alert, 0, len(alerts))
	for _, a := range alerts {
		if a.Scope == scope {
			filtered = append(filtered, a)
		}
	}
	return filtered, nil
}

func (s *Service) withhold(ctx context.Context, params ReportParams, result *Result, reason policy.WithholdReason, warning string) *Result {
	if s.metrics != nil {
		s.metrics.IncrementWithheld(string(reason))
	}
	s.emitAudit(ctx, params, audit.ActionDisclosureHeld, audit.DecisionWithheld, string(reason))
	result.Outcome = OutcomeWithheld
	result.WithheldReason = reason
	result.Warning = warning
	return result
}

func (cc *caseContext) lookupFailedWarning() string {
	if cc.lookupFailed {
		return warnConsentLookupFailed
	}
	return ""
}

// disclosureMetadata captures what was actually disclosed about. The true
// alert type and severity belong here, in the compliance trail, not on the
// attorney-facing record.
func disclosureMetadata(internal *models.Alert, device map[string]any) map[string]any {
	meta := map[string]any{
		models.MetaParentAlertID: internal.ID.String(),
		models.MetaAlertType:     string(internal.Type),
		models.MetaSeverity:      string(internal.Severity),
	}
	for k, v := range device {
		meta[k] = v
	}
	return meta
}

func (s *Service) emitAudit(ctx context.Context, params ReportParams, action, decision, reason string) {
	if s.auditor == nil {
		return
	}
	_ = s.auditor.Emit(ctx, audit.Event{
		ActorID:  params.ReportedBy.String(),
		CaseID:   params.CaseID.String(),
		Action:   action,
		Decision: decision,
		Reason:   reason,
	})
}
