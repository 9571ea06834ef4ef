package apply

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chandrashekharddev/agroscheme/constants"
	"github.com/chandrashekharddev/agroscheme/internal/common"
	"github.com/chandrashekharddev/agroscheme/internal/eligibility"
	"github.com/chandrashekharddev/agroscheme/internal/entity"
)

// In-memory fakes for the store ports.

type fakeFarmers struct {
	byID  map[uuid.UUID]*entity.Farmer
	order []uuid.UUID
}

func newFakeFarmers() *fakeFarmers {
	return &fakeFarmers{byID: make(map[uuid.UUID]*entity.Farmer)}
}

func (f *fakeFarmers) add(farmer *entity.Farmer) {
	f.byID[farmer.ID] = farmer
	f.order = append(f.order, farmer.ID)
}

func (f *fakeFarmers) GetByID(_ context.Context, id uuid.UUID) (*entity.Farmer, error) {
	farmer, ok := f.byID[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	return farmer, nil
}

func (f *fakeFarmers) ListAutoApply(_ context.Context) ([]*entity.Farmer, error) {
	var out []*entity.Farmer
	for _, id := range f.order {
		if f.byID[id].AutoApply {
			out = append(out, f.byID[id])
		}
	}
	return out, nil
}

type fakeSchemes struct {
	byID map[uuid.UUID]*entity.Scheme
}

func newFakeSchemes() *fakeSchemes {
	return &fakeSchemes{byID: make(map[uuid.UUID]*entity.Scheme)}
}

func (f *fakeSchemes) GetByID(_ context.Context, id uuid.UUID) (*entity.Scheme, error) {
	scheme, ok := f.byID[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	return scheme, nil
}

type fakeDocuments struct {
	byFarmer map[uuid.UUID][]*entity.FarmerDocument
}

func newFakeDocuments() *fakeDocuments {
	return &fakeDocuments{byFarmer: make(map[uuid.UUID][]*entity.FarmerDocument)}
}

func (f *fakeDocuments) add(farmerID uuid.UUID, docType constants.DocumentType, fields string) {
	f.byFarmer[farmerID] = append(f.byFarmer[farmerID], &entity.FarmerDocument{
		ID:       uuid.New(),
		FarmerID: farmerID,
		DocType:  docType,
		Fields:   json.RawMessage(fields),
	})
}

func (f *fakeDocuments) ListByFarmer(_ context.Context, farmerID uuid.UUID) ([]*entity.FarmerDocument, error) {
	return f.byFarmer[farmerID], nil
}

type fakeApplications struct {
	byPair  map[[2]uuid.UUID]*entity.Application
	byAppID map[string]*entity.Application
	// duplicateIDs forces the next N inserts to fail with an
	// application-identifier collision.
	duplicateIDs int
	// raceWinner simulates a concurrent writer: invisible to the existence
	// check, it lands in the store right before Insert so the insert loses
	// on the pair constraint.
	raceWinner *entity.Application
	inserts    int
}

func newFakeApplications() *fakeApplications {
	return &fakeApplications{
		byPair:  make(map[[2]uuid.UUID]*entity.Application),
		byAppID: make(map[string]*entity.Application),
	}
}

func (f *fakeApplications) GetByFarmerAndScheme(_ context.Context, farmerID, schemeID uuid.UUID) (*entity.Application, error) {
	app, ok := f.byPair[[2]uuid.UUID{farmerID, schemeID}]
	if !ok {
		return nil, common.ErrNotFound
	}
	return app, nil
}

func (f *fakeApplications) GetByApplicationID(_ context.Context, applicationID string) (*entity.Application, error) {
	app, ok := f.byAppID[applicationID]
	if !ok {
		return nil, common.ErrNotFound
	}
	return app, nil
}

func (f *fakeApplications) Insert(_ context.Context, app *entity.Application) (*entity.Application, error) {
	f.inserts++
	if w := f.raceWinner; w != nil {
		f.byPair[[2]uuid.UUID{w.FarmerID, w.SchemeID}] = w
		f.byAppID[w.ApplicationID] = w
		f.raceWinner = nil
	}
	if _, exists := f.byPair[[2]uuid.UUID{app.FarmerID, app.SchemeID}]; exists {
		return nil, common.ErrAlreadyApplied
	}
	if f.duplicateIDs > 0 {
		f.duplicateIDs--
		return nil, common.ErrDuplicateApplicationID
	}
	if _, exists := f.byAppID[app.ApplicationID]; exists {
		return nil, common.ErrDuplicateApplicationID
	}
	stored := *app
	stored.ID = uuid.New()
	f.byPair[[2]uuid.UUID{app.FarmerID, app.SchemeID}] = &stored
	f.byAppID[app.ApplicationID] = &stored
	return &stored, nil
}

func (f *fakeApplications) Update(_ context.Context, app *entity.Application) (*entity.Application, error) {
	existing, ok := f.byAppID[app.ApplicationID]
	if !ok {
		return nil, common.ErrNotFound
	}
	*existing = *app
	return existing, nil
}

type fakeNotifications struct {
	created []*entity.Notification
	fail    bool
}

func (f *fakeNotifications) Create(_ context.Context, n *entity.Notification) error {
	if f.fail {
		return errors.New("notification channel down")
	}
	f.created = append(f.created, n)
	return nil
}

// Fixture: one scheme requiring age >= 18 and an Aadhaar card.

type fixture struct {
	svc           *Service
	farmers       *fakeFarmers
	schemes       *fakeSchemes
	documents     *fakeDocuments
	applications  *fakeApplications
	notifications *fakeNotifications
	scheme        *entity.Scheme
}

var fixedNow = time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		farmers:       newFakeFarmers(),
		schemes:       newFakeSchemes(),
		documents:     newFakeDocuments(),
		applications:  newFakeApplications(),
		notifications: &fakeNotifications{},
	}
	f.scheme = &entity.Scheme{
		ID:                uuid.New(),
		Name:              "Kisan Samman Yojana",
		BenefitAmount:     6000,
		Criteria:          json.RawMessage(`{"age_min": 18}`),
		RequiredDocuments: []string{"Aadhaar Card"},
		Active:            true,
	}
	f.schemes.byID[f.scheme.ID] = f.scheme

	f.svc = NewService(f.farmers, f.schemes, f.documents, f.applications, f.notifications, eligibility.DefaultKeywords(), nil)
	f.svc.now = func() time.Time { return fixedNow }
	return f
}

func (f *fixture) addEligibleFarmer() *entity.Farmer {
	farmer := &entity.Farmer{ID: uuid.New(), FarmerCode: "F-001", Name: "Ramesh Kumar", AutoApply: true}
	f.farmers.add(farmer)
	f.documents.add(farmer.ID, constants.DocTypeAadhaar, `{"date_of_birth": "1985-06-15"}`)
	return farmer
}

func (f *fixture) addUnderageFarmer() *entity.Farmer {
	farmer := &entity.Farmer{ID: uuid.New(), FarmerCode: "F-002", Name: "Kiran Pawar", AutoApply: true}
	f.farmers.add(farmer)
	f.documents.add(farmer.ID, constants.DocTypeAadhaar, `{"date_of_birth": "2015-01-01"}`)
	return farmer
}

func TestManualApplyEligible(t *testing.T) {
	f := newFixture(t)
	farmer := f.addEligibleFarmer()

	result, err := f.svc.ManualApply(context.Background(), farmer.ID, f.scheme.ID)
	require.NoError(t, err)

	assert.True(t, result.Applied)
	assert.False(t, result.AlreadyApplied)
	require.NotNil(t, result.Application)

	app := result.Application
	assert.Equal(t, constants.StatusPending, app.Status)
	assert.Equal(t, constants.SourceManual, app.Source)
	require.NotNil(t, app.AppliedAmount)
	assert.Equal(t, 6000.0, *app.AppliedAmount)
	assert.NotEmpty(t, app.Eligibility)
	require.Len(t, app.StatusHistory, 1)
	assert.Equal(t, constants.StatusPending, app.StatusHistory[0].Status)

	require.Len(t, f.notifications.created, 1)
	assert.Equal(t, farmer.ID, f.notifications.created[0].FarmerID)
	assert.Equal(t, constants.NotifyApplication, f.notifications.created[0].Type)
}

func TestManualApplyIneligible(t *testing.T) {
	f := newFixture(t)
	farmer := f.addUnderageFarmer()

	result, err := f.svc.ManualApply(context.Background(), farmer.ID, f.scheme.ID)
	require.NoError(t, err)

	assert.False(t, result.Applied)
	assert.Nil(t, result.Application)
	assert.False(t, result.Verdict.Eligible)
	assert.Contains(t, result.Verdict.MissingCriteria, "age_min")
	assert.Zero(t, f.applications.inserts)
	assert.Empty(t, f.notifications.created)
}

func TestManualApplyMissingDocumentBlocks(t *testing.T) {
	f := newFixture(t)
	farmer := &entity.Farmer{ID: uuid.New(), FarmerCode: "F-003", Name: "Nilesh Shinde", AutoApply: true}
	f.farmers.add(farmer)
	// Income certificate proves nothing about the Aadhaar requirement.
	f.documents.add(farmer.ID, constants.DocTypeIncomeCertificate, `{"annual_income": 50000}`)

	result, err := f.svc.ManualApply(context.Background(), farmer.ID, f.scheme.ID)
	require.NoError(t, err)

	assert.False(t, result.Applied)
	assert.False(t, result.Verdict.HasRequiredDocuments)
	assert.Equal(t, []string{"Aadhaar Card"}, result.Verdict.MissingDocuments)
}

func TestManualApplyTwiceReturnsExisting(t *testing.T) {
	f := newFixture(t)
	farmer := f.addEligibleFarmer()

	first, err := f.svc.ManualApply(context.Background(), farmer.ID, f.scheme.ID)
	require.NoError(t, err)
	require.True(t, first.Applied)

	second, err := f.svc.ManualApply(context.Background(), farmer.ID, f.scheme.ID)
	require.NoError(t, err)

	assert.False(t, second.Applied)
	assert.True(t, second.AlreadyApplied)
	require.NotNil(t, second.Application)
	assert.Equal(t, first.Application.ApplicationID, second.Application.ApplicationID)
	// Only the first attempt reached the store.
	assert.Equal(t, 1, f.applications.inserts)
}

func TestManualApplyUnknownFarmer(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.ManualApply(context.Background(), uuid.New(), f.scheme.ID)
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestManualApplyIDCollisionRetries(t *testing.T) {
	f := newFixture(t)
	farmer := f.addEligibleFarmer()
	f.applications.duplicateIDs = 2

	result, err := f.svc.ManualApply(context.Background(), farmer.ID, f.scheme.ID)
	require.NoError(t, err)

	assert.True(t, result.Applied)
	assert.Equal(t, 3, f.applications.inserts)
}

func TestManualApplyIDCollisionExhausted(t *testing.T) {
	f := newFixture(t)
	farmer := f.addEligibleFarmer()
	f.applications.duplicateIDs = 10

	_, err := f.svc.ManualApply(context.Background(), farmer.ID, f.scheme.ID)
	assert.ErrorIs(t, err, common.ErrDuplicateApplicationID)
	assert.Equal(t, 3, f.applications.inserts)
}

func TestManualApplyLosesInsertRace(t *testing.T) {
	f := newFixture(t)
	farmer := f.addEligibleFarmer()
	f.applications.raceWinner = &entity.Application{
		ApplicationID: "APP20260830-AAAAAA",
		FarmerID:      farmer.ID,
		SchemeID:      f.scheme.ID,
		Status:        constants.StatusPending,
		Source:        constants.SourceAuto,
	}

	result, err := f.svc.ManualApply(context.Background(), farmer.ID, f.scheme.ID)
	require.NoError(t, err)

	assert.False(t, result.Applied)
	assert.True(t, result.AlreadyApplied)
	require.NotNil(t, result.Application)
	assert.Equal(t, "APP20260830-AAAAAA", result.Application.ApplicationID)
	// The losing attempt reached the store exactly once and sent nothing.
	assert.Equal(t, 1, f.applications.inserts)
	assert.Empty(t, f.notifications.created)
}

func TestAutoApplyLosesInsertRace(t *testing.T) {
	f := newFixture(t)
	farmer := f.addEligibleFarmer()
	f.applications.raceWinner = &entity.Application{
		ApplicationID: "APP20260830-BBBBBB",
		FarmerID:      farmer.ID,
		SchemeID:      f.scheme.ID,
		Status:        constants.StatusPending,
		Source:        constants.SourceManual,
	}

	created, err := f.svc.AutoApply(context.Background(), f.scheme.ID)
	require.NoError(t, err)

	// The farmer is silently skipped; the winner's application stands.
	assert.Empty(t, created)
	assert.Empty(t, f.notifications.created)
	existing, err := f.applications.GetByFarmerAndScheme(context.Background(), farmer.ID, f.scheme.ID)
	require.NoError(t, err)
	assert.Equal(t, "APP20260830-BBBBBB", existing.ApplicationID)
}

func TestManualApplyNotificationFailureIsNotFatal(t *testing.T) {
	f := newFixture(t)
	farmer := f.addEligibleFarmer()
	f.notifications.fail = true

	result, err := f.svc.ManualApply(context.Background(), farmer.ID, f.scheme.ID)
	require.NoError(t, err)
	assert.True(t, result.Applied)
}

func TestAutoApplySweep(t *testing.T) {
	f := newFixture(t)
	eligible := f.addEligibleFarmer()
	f.addUnderageFarmer()
	optedOut := &entity.Farmer{ID: uuid.New(), FarmerCode: "F-004", Name: "Vilas Patil", AutoApply: false}
	f.farmers.add(optedOut)
	f.documents.add(optedOut.ID, constants.DocTypeAadhaar, `{"date_of_birth": "1980-01-01"}`)

	created, err := f.svc.AutoApply(context.Background(), f.scheme.ID)
	require.NoError(t, err)

	require.Len(t, created, 1)
	assert.Equal(t, eligible.ID, created[0].FarmerID)
	assert.Equal(t, constants.SourceAuto, created[0].Source)
}

func TestAutoApplyIsIdempotent(t *testing.T) {
	f := newFixture(t)
	f.addEligibleFarmer()

	first, err := f.svc.AutoApply(context.Background(), f.scheme.ID)
	require.NoError(t, err)
	require.Len(t, first, 1)

	second, err := f.svc.AutoApply(context.Background(), f.scheme.ID)
	require.NoError(t, err)
	assert.Empty(t, second)
}

func TestAutoApplyUnknownScheme(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.AutoApply(context.Background(), uuid.New())
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestUpdateStatusLegalTransition(t *testing.T) {
	f := newFixture(t)
	farmer := f.addEligibleFarmer()
	result, err := f.svc.ManualApply(context.Background(), farmer.ID, f.scheme.ID)
	require.NoError(t, err)

	amount := 6000.0
	updated, err := f.svc.UpdateStatus(context.Background(), result.Application.ApplicationID, constants.StatusApproved, &amount)
	require.NoError(t, err)

	assert.Equal(t, constants.StatusApproved, updated.Status)
	require.NotNil(t, updated.ApprovedAmount)
	assert.Equal(t, 6000.0, *updated.ApprovedAmount)
	require.Len(t, updated.StatusHistory, 2)
	assert.Equal(t, constants.StatusApproved, updated.StatusHistory[1].Status)

	// Application notification plus the status-change one.
	require.Len(t, f.notifications.created, 2)
	assert.Equal(t, constants.NotifyStatusChange, f.notifications.created[1].Type)
}

func TestUpdateStatusIllegalTransition(t *testing.T) {
	f := newFixture(t)
	farmer := f.addEligibleFarmer()
	result, err := f.svc.ManualApply(context.Background(), farmer.ID, f.scheme.ID)
	require.NoError(t, err)

	_, err = f.svc.UpdateStatus(context.Background(), result.Application.ApplicationID, constants.StatusApproved, nil)
	require.NoError(t, err)

	// Approved is terminal.
	_, err = f.svc.UpdateStatus(context.Background(), result.Application.ApplicationID, constants.StatusRejected, nil)
	assert.ErrorIs(t, err, common.ErrIllegalTransition)
}

func TestUpdateStatusUnknownApplication(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.UpdateStatus(context.Background(), "APP20260830-FFFFFF", constants.StatusApproved, nil)
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestEvaluateSnapshotDecodes(t *testing.T) {
	f := newFixture(t)
	farmer := f.addEligibleFarmer()

	result, err := f.svc.ManualApply(context.Background(), farmer.ID, f.scheme.ID)
	require.NoError(t, err)

	var verdict eligibility.Verdict
	require.NoError(t, json.Unmarshal(result.Application.Eligibility, &verdict))
	assert.True(t, verdict.Eligible)
	assert.Equal(t, 100.0, verdict.MatchPercentage)
}
