package service_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"awaaz/internal/domain"
	"awaaz/internal/service"
	"awaaz/internal/wizard"
	"awaaz/mocks"
)

func newDraftService(store *mocks.MockDraftStore, otpSvc *mocks.MockOTPService) service.DraftService {
	return service.NewDraftService(wizard.NewManager(store, time.Hour), otpSvc)
}

func storedDraft(t *testing.T, d *wizard.Draft) *domain.DraftRecord {
	t.Helper()
	d.SavedAt = time.Now().UTC()
	payload, err := json.Marshal(d)
	require.NoError(t, err)
	return &domain.DraftRecord{UserID: d.UserID, Payload: payload, SavedAt: d.SavedAt}
}

func TestDraftGet_StartsFreshWhenNoneStored(t *testing.T) {
	store := new(mocks.MockDraftStore)
	svc := newDraftService(store, new(mocks.MockOTPService))

	userID := uuid.New()
	store.On("Load", mock.Anything, userID).Return(nil, domain.ErrNotFound)

	d := svc.Get(context.Background(), userID)
	require.NotNil(t, d)
	assert.Equal(t, userID, d.UserID)
	assert.Equal(t, wizard.StepTitle, d.Step)
	assert.Len(t, d.Recipients, 1)
	assert.False(t, d.Verified)
}

func TestDraftGet_RestoresStoredDraft(t *testing.T) {
	store := new(mocks.MockDraftStore)
	svc := newDraftService(store, new(mocks.MockOTPService))

	userID := uuid.New()
	d := wizard.NewDraft(userID)
	d.Form.Title = "Save the city lake from encroachment"
	d.Step = wizard.StepDetails
	store.On("Load", mock.Anything, userID).Return(storedDraft(t, d), nil)

	got := svc.Get(context.Background(), userID)
	assert.Equal(t, "Save the city lake from encroachment", got.Form.Title)
	assert.Equal(t, wizard.StepDetails, got.Step)
}

func TestDraftSave_ForcesOwnership(t *testing.T) {
	store := new(mocks.MockDraftStore)
	svc := newDraftService(store, new(mocks.MockOTPService))

	userID := uuid.New()
	d := wizard.NewDraft(uuid.New()) // claims to belong to someone else

	var saved *domain.DraftRecord
	store.On("Save", mock.Anything, mock.AnythingOfType("*domain.DraftRecord")).
		Run(func(args mock.Arguments) {
			saved = args.Get(1).(*domain.DraftRecord)
		}).
		Return(nil)

	require.NoError(t, svc.Save(context.Background(), userID, d))
	require.NotNil(t, saved)
	assert.Equal(t, userID, saved.UserID)
	assert.Equal(t, userID, d.UserID)
}

func TestDraftSave_RepairsEmptyRecipientsAndStep(t *testing.T) {
	store := new(mocks.MockDraftStore)
	svc := newDraftService(store, new(mocks.MockOTPService))

	userID := uuid.New()
	d := wizard.NewDraft(userID)
	d.Recipients = nil
	d.Step = wizard.Step(42)

	store.On("Save", mock.Anything, mock.AnythingOfType("*domain.DraftRecord")).Return(nil)

	require.NoError(t, svc.Save(context.Background(), userID, d))
	assert.Len(t, d.Recipients, 1)
	assert.Equal(t, wizard.StepTitle, d.Step)
}

func TestDraftReset_ClearsStore(t *testing.T) {
	store := new(mocks.MockDraftStore)
	svc := newDraftService(store, new(mocks.MockOTPService))

	userID := uuid.New()
	store.On("Clear", mock.Anything, userID).Return(nil)

	require.NoError(t, svc.Reset(context.Background(), userID))
	store.AssertExpectations(t)
}

func TestDraftVerify_FlipsFlagAndPersists(t *testing.T) {
	store := new(mocks.MockDraftStore)
	otpSvc := new(mocks.MockOTPService)
	svc := newDraftService(store, otpSvc)

	userID := uuid.New()
	challengeID := uuid.New()
	otpSvc.On("VerifyCode", mock.Anything, userID, challengeID, "482913").Return(nil)
	store.On("Load", mock.Anything, userID).Return(nil, domain.ErrNotFound)
	store.On("Save", mock.Anything, mock.AnythingOfType("*domain.DraftRecord")).Return(nil)

	d, err := svc.Verify(context.Background(), userID, challengeID, "482913")
	require.NoError(t, err)
	assert.True(t, d.Verified)
	otpSvc.AssertExpectations(t)
	store.AssertExpectations(t)
}

func TestDraftVerify_WrongCodeLeavesDraftAlone(t *testing.T) {
	store := new(mocks.MockDraftStore)
	otpSvc := new(mocks.MockOTPService)
	svc := newDraftService(store, otpSvc)

	userID := uuid.New()
	challengeID := uuid.New()
	otpSvc.On("VerifyCode", mock.Anything, userID, challengeID, "000000").Return(domain.ErrChallengeCode)

	_, err := svc.Verify(context.Background(), userID, challengeID, "000000")
	assert.ErrorIs(t, err, domain.ErrChallengeCode)
	store.AssertNotCalled(t, "Save")
}
