package service_test

//go:generate mockgen -source=service.go -destination=mocks/mocks.go -package=mocks Store,ConsentSource,AssignmentSource,MessageStore,DisclosureStore,TxRunner

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	alertmodels "caresignal/internal/alert/models"
	"caresignal/internal/alert/service"
	"caresignal/internal/alert/service/mocks"
	alertstore "caresignal/internal/alert/store"
	"caresignal/internal/assignment"
	"caresignal/internal/audit"
	consentmodels "caresignal/internal/consent/models"
	consentservice "caresignal/internal/consent/service"
	consentstore "caresignal/internal/consent/store"
	"caresignal/internal/disclosure"
	"caresignal/internal/notify"
	"caresignal/internal/policy"
	"caresignal/pkg/domain"
	dErrors "caresignal/pkg/domain-errors"
)

type ReportSuite struct {
	suite.Suite

	alerts      *alertstore.InMemoryStore
	consents    *consentstore.InMemoryStore
	assignments *assignment.InMemoryStore
	messages    *notify.InMemoryStore
	disclosures *disclosure.InMemoryStore
	auditStore  *audit.InMemoryStore
	service     *service.Service

	caseID     domain.CaseID
	clientID   domain.ClientID
	attorneyID domain.UserID
	reporterID domain.UserID
}

func (s *ReportSuite) SetupTest() {
	s.alerts = alertstore.NewInMemory()
	s.consents = consentstore.New()
	s.assignments = assignment.NewInMemory()
	s.messages = notify.NewInMemory()
	s.disclosures = disclosure.NewInMemory()
	s.auditStore = audit.NewInMemoryStore()

	tx := service.NewPassthroughTx(service.TxStores{
		Alerts:      s.alerts,
		Messages:    s.messages,
		Disclosures: s.disclosures,
	})
	s.service = service.NewService(
		s.alerts,
		tx,
		s.consents,
		s.assignments,
		audit.NewPublisher(s.auditStore),
		slog.New(slog.NewTextHandler(io.Discard, nil)),
	)

	s.caseID = domain.CaseID(uuid.New())
	s.clientID = domain.ClientID(uuid.New())
	s.attorneyID = domain.UserID(uuid.New())
	s.reporterID = domain.UserID(uuid.New())

	ctx := context.Background()
	require.NoError(s.T(), s.assignments.Save(ctx, &assignment.Assignment{
		CaseID:     s.caseID,
		UserID:     domain.UserID(s.clientID),
		Role:       domain.RoleClient,
		AssignedAt: time.Now(),
	}))
}

func TestReportSuite(t *testing.T) {
	suite.Run(t, new(ReportSuite))
}

func (s *ReportSuite) assignAttorney() {
	require.NoError(s.T(), s.assignments.Save(context.Background(), &assignment.Assignment{
		CaseID:     s.caseID,
		UserID:     s.attorneyID,
		Role:       domain.RoleAttorney,
		AssignedAt: time.Now(),
	}))
}

func (s *ReportSuite) grantConsent() *consentmodels.Record {
	now := time.Now()
	expiry := now.Add(365 * 24 * time.Hour)
	record, err := consentmodels.NewRecord(domain.NewConsentID(), s.clientID, now, &expiry)
	require.NoError(s.T(), err)
	require.NoError(s.T(), s.consents.Save(context.Background(), record))
	return record
}

func (s *ReportSuite) report(minimal string) (*service.Result, error) {
	return s.service.Report(context.Background(), service.ReportParams{
		CaseID:         s.caseID,
		AlertType:      alertmodels.TypeCrisis,
		Severity:       domain.SeverityHigh,
		Message:        "client reported acute distress during check-in call",
		MinimalMessage: minimal,
		ReportedBy:     s.reporterID,
	})
}

func (s *ReportSuite) TestReport_ConsentActiveAttorneyAssigned() {
	record := s.grantConsent()
	s.assignAttorney()

	result, err := s.report("")
	require.NoError(s.T(), err)
	require.NotNil(s.T(), result)

	assert.True(s.T(), result.ConsentGranted)
	assert.True(s.T(), result.AttorneyNotified)
	assert.Equal(s.T(), service.OutcomeDisclosed, result.Outcome)
	assert.Empty(s.T(), result.Warning)

	alerts, err := s.alerts.ListByCase(context.Background(), s.caseID)
	require.NoError(s.T(), err)
	require.Len(s.T(), alerts, 2)

	internal, external := splitByScope(s.T(), alerts)
	assert.Equal(s.T(), result.AlertID, internal.ID)
	assert.Equal(s.T(), alertmodels.TypeCrisis, internal.Type)
	assert.Equal(s.T(), "client reported acute distress during check-in call", internal.Message)
	assert.Equal(s.T(), true, internal.Metadata[alertmodels.MetaConsentGranted])

	assert.Equal(s.T(), alertmodels.TypeCrisisNotification, external.Type)
	assert.Equal(s.T(), policy.FallbackNotice, external.Message)
	assert.Equal(s.T(), internal.ID.String(), external.Metadata[alertmodels.MetaParentAlertID])

	messages, err := s.messages.ListByCaseAndRole(context.Background(), s.caseID, domain.RoleAttorney)
	require.NoError(s.T(), err)
	require.Len(s.T(), messages, 1)
	assert.Equal(s.T(), policy.FallbackNotice, messages[0].Body)
	assert.Equal(s.T(), notify.StatusPending, messages[0].Status)

	entries, err := s.disclosures.ListByCase(context.Background(), s.caseID)
	require.NoError(s.T(), err)
	require.Len(s.T(), entries, 1)
	assert.Equal(s.T(), external.ID, entries[0].AlertID)
	assert.Equal(s.T(), record.ID, entries[0].AuthorizationID)
	assert.Equal(s.T(), s.attorneyID, entries[0].DisclosedTo)
	assert.Equal(s.T(), domain.ScopeMinimal, entries[0].Scope)
	assert.Equal(s.T(), "crisis_notification", entries[0].Reason)
}

// TestReport_AlertTypeThreadsThrough verifies a non-crisis report keeps its
// type on the internal record and in the disclosure trail, while the
// attorney-facing record stays generic.
func (s *ReportSuite) TestReport_AlertTypeThreadsThrough() {
	s.grantConsent()
	s.assignAttorney()

	result, err := s.service.Report(context.Background(), service.ReportParams{
		CaseID:     s.caseID,
		AlertType:  alertmodels.TypeWellnessCheck,
		Severity:   domain.SeverityMedium,
		Message:    "client missed two scheduled check-ins",
		ReportedBy: s.reporterID,
	})
	require.NoError(s.T(), err)
	assert.True(s.T(), result.AttorneyNotified)

	alerts, err := s.alerts.ListByCase(context.Background(), s.caseID)
	require.NoError(s.T(), err)
	internal, external := splitByScope(s.T(), alerts)
	assert.Equal(s.T(), alertmodels.TypeWellnessCheck, internal.Type)
	assert.Equal(s.T(), alertmodels.TypeCrisisNotification, external.Type)

	entries, err := s.disclosures.ListByCase(context.Background(), s.caseID)
	require.NoError(s.T(), err)
	require.Len(s.T(), entries, 1)
	assert.Equal(s.T(), "wellness_check_notification", entries[0].Reason)
	assert.Equal(s.T(), "wellness_check", entries[0].Metadata[alertmodels.MetaAlertType])
	assert.Equal(s.T(), "medium", entries[0].Metadata[alertmodels.MetaSeverity])
}

// TestReport_ExternalAlertRevealsNoSeverity verifies the attorney-facing
// record carries the fixed notification severity regardless of the clinical
// grade. The true severity is recorded on the internal alert and in the
// disclosure trail only.
func (s *ReportSuite) TestReport_ExternalAlertRevealsNoSeverity() {
	s.grantConsent()
	s.assignAttorney()

	_, err := s.service.Report(context.Background(), service.ReportParams{
		CaseID:     s.caseID,
		AlertType:  alertmodels.TypeCrisis,
		Severity:   domain.SeverityCritical,
		Message:    "client expressed intent to self-harm",
		ReportedBy: s.reporterID,
	})
	require.NoError(s.T(), err)

	alerts, err := s.alerts.ListByCase(context.Background(), s.caseID)
	require.NoError(s.T(), err)
	internal, external := splitByScope(s.T(), alerts)
	assert.Equal(s.T(), domain.SeverityCritical, internal.Severity)
	assert.Equal(s.T(), domain.SeverityMedium, external.Severity)

	entries, err := s.disclosures.ListByCase(context.Background(), s.caseID)
	require.NoError(s.T(), err)
	require.Len(s.T(), entries, 1)
	assert.Equal(s.T(), "critical", entries[0].Metadata[alertmodels.MetaSeverity])
}

func (s *ReportSuite) TestReport_MinimalMessageIsScrubbed() {
	s.grantConsent()
	s.assignAttorney()

	result, err := s.report("Crisis reported; callback at 415-555-0142 or casework@example.com")
	require.NoError(s.T(), err)
	assert.True(s.T(), result.AttorneyNotified)

	alerts, err := s.alerts.ListByCase(context.Background(), s.caseID)
	require.NoError(s.T(), err)
	_, external := splitByScope(s.T(), alerts)
	assert.NotContains(s.T(), external.Message, "415-555-0142")
	assert.NotContains(s.T(), external.Message, "casework@example.com")
	assert.Contains(s.T(), external.Message, "[redacted]")
}

func (s *ReportSuite) TestReport_NoConsentWithholdsDisclosure() {
	s.assignAttorney()

	result, err := s.report("")
	require.NoError(s.T(), err)

	assert.False(s.T(), result.ConsentGranted)
	assert.False(s.T(), result.AttorneyNotified)
	assert.Equal(s.T(), service.OutcomeWithheld, result.Outcome)
	assert.Equal(s.T(), policy.ReasonNoConsent, result.WithheldReason)

	alerts, err := s.alerts.ListByCase(context.Background(), s.caseID)
	require.NoError(s.T(), err)
	require.Len(s.T(), alerts, 1)
	assert.Equal(s.T(), domain.ScopeInternal, alerts[0].Scope)

	messages, err := s.messages.ListByCaseAndRole(context.Background(), s.caseID, domain.RoleAttorney)
	require.NoError(s.T(), err)
	assert.Empty(s.T(), messages)

	entries, err := s.disclosures.ListByCase(context.Background(), s.caseID)
	require.NoError(s.T(), err)
	assert.Empty(s.T(), entries)
}

func (s *ReportSuite) TestReport_RevokedConsentWithholdsEvenCritical() {
	record := s.grantConsent()
	s.assignAttorney()

	now := time.Now()
	record.Revoked = true
	record.RevokedAt = &now
	require.NoError(s.T(), s.consents.Update(context.Background(), record))

	result, err := s.service.Report(context.Background(), service.ReportParams{
		CaseID:     s.caseID,
		AlertType:  alertmodels.TypeCrisis,
		Severity:   domain.SeverityCritical,
		Message:    "client unreachable after expressing intent to self-harm",
		ReportedBy: s.reporterID,
	})
	require.NoError(s.T(), err)

	assert.False(s.T(), result.ConsentGranted)
	assert.Equal(s.T(), policy.ReasonConsentRevoked, result.WithheldReason)

	alerts, err := s.alerts.ListByCase(context.Background(), s.caseID)
	require.NoError(s.T(), err)
	require.Len(s.T(), alerts, 1)
}

// TestReport_RevocationAfterDisclosureLeavesTrailIntact verifies that
// withdrawing consent is prospective only: entries already in the disclosure
// trail keep their authorization reference, and the next report is withheld.
func (s *ReportSuite) TestReport_RevocationAfterDisclosureLeavesTrailIntact() {
	record := s.grantConsent()
	s.assignAttorney()

	_, err := s.report("")
	require.NoError(s.T(), err)

	ctx := context.Background()
	before, err := s.disclosures.ListByCase(ctx, s.caseID)
	require.NoError(s.T(), err)
	require.Len(s.T(), before, 1)

	consents := consentservice.NewService(s.consents, nil, slog.New(slog.NewTextHandler(io.Discard, nil)))
	revoked, err := consents.Revoke(ctx, s.clientID, domain.UserID(s.clientID))
	require.NoError(s.T(), err)
	require.True(s.T(), revoked.Revoked)

	after, err := s.disclosures.ListByCase(ctx, s.caseID)
	require.NoError(s.T(), err)
	require.Len(s.T(), after, 1)
	assert.Equal(s.T(), before[0].ID, after[0].ID)
	assert.Equal(s.T(), record.ID, after[0].AuthorizationID)
	assert.Equal(s.T(), before[0].DisclosedAt, after[0].DisclosedAt)

	result, err := s.report("")
	require.NoError(s.T(), err)
	assert.False(s.T(), result.AttorneyNotified)
	assert.Equal(s.T(), policy.ReasonConsentRevoked, result.WithheldReason)

	final, err := s.disclosures.ListByCase(ctx, s.caseID)
	require.NoError(s.T(), err)
	assert.Len(s.T(), final, 1)
}

func (s *ReportSuite) TestReport_ConsentButNoAttorney() {
	s.grantConsent()

	result, err := s.report("")
	require.NoError(s.T(), err)

	assert.True(s.T(), result.ConsentGranted)
	assert.False(s.T(), result.AttorneyNotified)
	assert.Equal(s.T(), service.OutcomeWithheld, result.Outcome)
	assert.Equal(s.T(), policy.ReasonNoAttorney, result.WithheldReason)

	alerts, err := s.alerts.ListByCase(context.Background(), s.caseID)
	require.NoError(s.T(), err)
	require.Len(s.T(), alerts, 1)
}

func (s *ReportSuite) TestReport_ValidationErrors() {
	s.Run("missing case ID", func() {
		_, err := s.service.Report(context.Background(), service.ReportParams{
			AlertType:  alertmodels.TypeCrisis,
			Severity:   domain.SeverityHigh,
			Message:    "detail",
			ReportedBy: s.reporterID,
		})
		require.Error(s.T(), err)
		assert.True(s.T(), dErrors.HasCode(err, dErrors.CodeBadRequest))
	})

	s.Run("missing alert type", func() {
		_, err := s.service.Report(context.Background(), service.ReportParams{
			CaseID:     s.caseID,
			Severity:   domain.SeverityHigh,
			Message:    "detail",
			ReportedBy: s.reporterID,
		})
		require.Error(s.T(), err)
		assert.True(s.T(), dErrors.HasCode(err, dErrors.CodeBadRequest))
	})

	s.Run("unknown alert type", func() {
		_, err := s.service.Report(context.Background(), service.ReportParams{
			CaseID:     s.caseID,
			AlertType:  "escalation",
			Severity:   domain.SeverityHigh,
			Message:    "detail",
			ReportedBy: s.reporterID,
		})
		require.Error(s.T(), err)
		assert.True(s.T(), dErrors.HasCode(err, dErrors.CodeBadRequest))
	})

	s.Run("notification type is not reportable", func() {
		_, err := s.service.Report(context.Background(), service.ReportParams{
			CaseID:     s.caseID,
			AlertType:  alertmodels.TypeCrisisNotification,
			Severity:   domain.SeverityHigh,
			Message:    "detail",
			ReportedBy: s.reporterID,
		})
		require.Error(s.T(), err)
		assert.True(s.T(), dErrors.HasCode(err, dErrors.CodeBadRequest))
	})

	s.Run("invalid severity", func() {
		_, err := s.service.Report(context.Background(), service.ReportParams{
			CaseID:     s.caseID,
			AlertType:  alertmodels.TypeCrisis,
			Severity:   "urgent",
			Message:    "detail",
			ReportedBy: s.reporterID,
		})
		require.Error(s.T(), err)
		assert.True(s.T(), dErrors.HasCode(err, dErrors.CodeBadRequest))
	})

	s.Run("empty message", func() {
		_, err := s.service.Report(context.Background(), service.ReportParams{
			CaseID:     s.caseID,
			AlertType:  alertmodels.TypeCrisis,
			Severity:   domain.SeverityHigh,
			ReportedBy: s.reporterID,
		})
		require.Error(s.T(), err)
		assert.True(s.T(), dErrors.HasCode(err, dErrors.CodeBadRequest))
	})
}

func (s *ReportSuite) TestListByCase_ScopeFilter() {
	s.grantConsent()
	s.assignAttorney()

	_, err := s.report("")
	require.NoError(s.T(), err)

	minimal, err := s.service.ListByCase(context.Background(), s.caseID, domain.ScopeMinimal)
	require.NoError(s.T(), err)
	require.Len(s.T(), minimal, 1)
	assert.Equal(s.T(), domain.ScopeMinimal, minimal[0].Scope)

	all, err := s.service.ListByCase(context.Background(), s.caseID, "")
	require.NoError(s.T(), err)
	assert.Len(s.T(), all, 2)

	_, err = s.service.ListByCase(context.Background(), s.caseID, "everything")
	require.Error(s.T(), err)
	assert.True(s.T(), dErrors.HasCode(err, dErrors.CodeBadRequest))
}

func splitByScope(t *testing.T, alerts []*alertmodels.Alert) (internal, external *alertmodels.Alert) {
	t.Helper()
	for _, a := range alerts {
		switch a.Scope {
		case domain.ScopeInternal:
			internal = a
		case domain.ScopeMinimal:
			external = a
		}
	}
	require.NotNil(t, internal, "expected an internal alert")
	require.NotNil(t, external, "expected an external alert")
	return internal, external
}

// FailureSuite induces lookup and transaction failures unreachable via the
// in-memory stores.
type FailureSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	alerts      *alertstore.InMemoryStore
	consents    *mocks.MockConsentSource
	assignments *mocks.MockAssignmentSource
	tx          *mocks.MockTxRunner
	service     *service.Service

	caseID     domain.CaseID
	clientID   domain.ClientID
	attorneyID domain.UserID
	reporterID domain.UserID
}

func (s *FailureSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.alerts = alertstore.NewInMemory()
	s.consents = mocks.NewMockConsentSource(s.ctrl)
	s.assignments = mocks.NewMockAssignmentSource(s.ctrl)
	s.tx = mocks.NewMockTxRunner(s.ctrl)
	s.service = service.NewService(
		s.alerts,
		s.tx,
		s.consents,
		s.assignments,
		nil,
		slog.New(slog.NewTextHandler(io.Discard, nil)),
	)

	s.caseID = domain.CaseID(uuid.New())
	s.clientID = domain.ClientID(uuid.New())
	s.attorneyID = domain.UserID(uuid.New())
	s.reporterID = domain.UserID(uuid.New())
}

func (s *FailureSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestFailureSuite(t *testing.T) {
	suite.Run(t, new(FailureSuite))
}

func (s *FailureSuite) expectClientAssignment() {
	s.assignments.EXPECT().
		FindByCaseAndRole(gomock.Any(), s.caseID, domain.RoleClient).
		Return(&assignment.Assignment{
			CaseID: s.caseID,
			UserID: domain.UserID(s.clientID),
			Role:   domain.RoleClient,
		}, nil)
}

func (s *FailureSuite) expectAttorneyAssignment() {
	s.assignments.EXPECT().
		FindByCaseAndRole(gomock.Any(), s.caseID, domain.RoleAttorney).
		Return(&assignment.Assignment{
			CaseID: s.caseID,
			UserID: s.attorneyID,
			Role:   domain.RoleAttorney,
		}, nil)
}

func (s *FailureSuite) activeConsent() *consentmodels.Record {
	now := time.Now()
	expiry := now.Add(24 * time.Hour)
	record, err := consentmodels.NewRecord(domain.NewConsentID(), s.clientID, now, &expiry)
	require.NoError(s.T(), err)
	return record
}

// TestReport_ConsentLookupFailureFailsClosed verifies that a consent read
// error withholds disclosure instead of failing the report or, worse,
// disclosing anyway.
func (s *FailureSuite) TestReport_ConsentLookupFailureFailsClosed() {
	s.expectClientAssignment()
	s.expectAttorneyAssignment()
	s.consents.EXPECT().
		FindByClient(gomock.Any(), s.clientID).
		Return(nil, assert.AnError)

	result, err := s.service.Report(context.Background(), service.ReportParams{
		CaseID:     s.caseID,
		AlertType:  alertmodels.TypeCrisis,
		Severity:   domain.SeverityCritical,
		Message:    "detail",
		ReportedBy: s.reporterID,
	})
	require.NoError(s.T(), err)

	assert.False(s.T(), result.ConsentGranted)
	assert.False(s.T(), result.AttorneyNotified)
	assert.Equal(s.T(), policy.ReasonConsentUnproven, result.WithheldReason)
	assert.NotEmpty(s.T(), result.Warning)

	alerts, listErr := s.alerts.ListByCase(context.Background(), s.caseID)
	require.NoError(s.T(), listErr)
	require.Len(s.T(), alerts, 1)
	assert.Equal(s.T(), domain.ScopeInternal, alerts[0].Scope)
}

// TestReport_DisclosureTxFailureDegrades verifies that a failed disclosure
// transaction surfaces a warning while the internal alert stands.
func (s *FailureSuite) TestReport_DisclosureTxFailureDegrades() {
	s.expectClientAssignment()
	s.expectAttorneyAssignment()
	s.consents.EXPECT().
		FindByClient(gomock.Any(), s.clientID).
		Return(s.activeConsent(), nil)
	s.tx.EXPECT().
		RunInTx(gomock.Any(), gomock.Any()).
		Return(assert.AnError)

	result, err := s.service.Report(context.Background(), service.ReportParams{
		CaseID:     s.caseID,
		AlertType:  alertmodels.TypeCrisis,
		Severity:   domain.SeverityHigh,
		Message:    "detail",
		ReportedBy: s.reporterID,
	})
	require.NoError(s.T(), err)

	assert.True(s.T(), result.ConsentGranted)
	assert.False(s.T(), result.AttorneyNotified)
	assert.Equal(s.T(), service.OutcomeWithheld, result.Outcome)
	assert.Equal(s.T(), policy.ReasonDeliveryFailed, result.WithheldReason)
	assert.NotEmpty(s.T(), result.Warning)

	alerts, listErr := s.alerts.ListByCase(context.Background(), s.caseID)
	require.NoError(s.T(), listErr)
	require.Len(s.T(), alerts, 1)
}

// TestReport_InternalAlertFailureIsFatal verifies the one write that must
// succeed: if the internal alert cannot be recorded the whole report fails.
func (s *FailureSuite) TestReport_InternalAlertFailureIsFatal() {
	store := mocks.NewMockStore(s.ctrl)
	svc := service.NewService(
		store,
		s.tx,
		s.consents,
		s.assignments,
		nil,
		slog.New(slog.NewTextHandler(io.Discard, nil)),
	)

	s.expectClientAssignment()
	s.expectAttorneyAssignment()
	s.consents.EXPECT().
		FindByClient(gomock.Any(), s.clientID).
		Return(s.activeConsent(), nil)
	store.EXPECT().
		Save(gomock.Any(), gomock.Any()).
		Return(assert.AnError)

	_, err := svc.Report(context.Background(), service.ReportParams{
		CaseID:     s.caseID,
		AlertType:  alertmodels.TypeCrisis,
		Severity:   domain.SeverityHigh,
		Message:    "detail",
		ReportedBy: s.reporterID,
	})
	require.Error(s.T(), err)
	assert.True(s.T(), dErrors.HasCode(err, dErrors.CodeInternal))
}
