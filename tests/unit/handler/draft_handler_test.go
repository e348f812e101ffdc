package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"awaaz/internal/domain"
	"awaaz/internal/handler"
	"awaaz/internal/middleware"
	"awaaz/internal/wizard"
	"awaaz/mocks"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// setAuthContext injects the context keys AuthMiddleware would have set.
func setAuthContext(c *gin.Context, userID uuid.UUID, role domain.UserRole) {
	c.Set(middleware.ContextKeyUserID, userID)
	c.Set(middleware.ContextKeyEmail, "ravi@example.com")
	c.Set(middleware.ContextKeyPhone, "9876543210")
	c.Set(middleware.ContextKeyRole, string(role))
}

func newTestContext(t *testing.T, method, path string, body interface{}) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, path, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	c.Request = req
	return c, w
}

func decodeResponse(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestDraftGet_ReturnsDraftView(t *testing.T) {
	draftSvc := new(mocks.MockDraftService)
	h := handler.NewDraftHandler(draftSvc, new(mocks.MockPetitionService), new(mocks.MockOTPService), new(mocks.MockUserService))

	userID := uuid.New()
	draftSvc.On("Get", mock.Anything, userID).Return(wizard.NewDraft(userID))

	c, w := newTestContext(t, http.MethodGet, "/api/v1/drafts/petition", nil)
	setAuthContext(c, userID, domain.RoleMember)
	h.Get(c)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeResponse(t, w)
	assert.Equal(t, true, resp["success"])

	data := resp["data"].(map[string]interface{})
	assert.Equal(t, false, data["complete"])
	require.Contains(t, data, "stepErrors")

	// A fresh draft fails step 1 with the required-field sentinel.
	stepErrors := data["stepErrors"].(map[string]interface{})
	step1 := stepErrors["1"].(map[string]interface{})
	assert.Equal(t, "This field is required", step1["title"])
}

func TestDraftGet_MissingAuthContext(t *testing.T) {
	h := handler.NewDraftHandler(new(mocks.MockDraftService), new(mocks.MockPetitionService), new(mocks.MockOTPService), new(mocks.MockUserService))

	c, w := newTestContext(t, http.MethodGet, "/api/v1/drafts/petition", nil)
	h.Get(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestDraftSave_PersistsAndEchoesValidation(t *testing.T) {
	draftSvc := new(mocks.MockDraftService)
	h := handler.NewDraftHandler(draftSvc, new(mocks.MockPetitionService), new(mocks.MockOTPService), new(mocks.MockUserService))

	userID := uuid.New()
	draftSvc.On("Save", mock.Anything, userID, mock.AnythingOfType("*wizard.Draft")).Return(nil)

	body := wizard.NewDraft(userID)
	body.Form.Title = "Save the city lake from encroachment"
	body.Categories = []string{"environment"}

	c, w := newTestContext(t, http.MethodPut, "/api/v1/drafts/petition", body)
	setAuthContext(c, userID, domain.RoleMember)
	h.Save(c)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeResponse(t, w)
	data := resp["data"].(map[string]interface{})

	// Step 1 is now satisfied; later steps still block completion.
	stepErrors := data["stepErrors"].(map[string]interface{})
	assert.NotContains(t, stepErrors, "1")
	assert.Contains(t, stepErrors, "4")
	assert.Equal(t, false, data["complete"])
	draftSvc.AssertExpectations(t)
}

func TestDraftSave_MalformedBody(t *testing.T) {
	draftSvc := new(mocks.MockDraftService)
	h := handler.NewDraftHandler(draftSvc, new(mocks.MockPetitionService), new(mocks.MockOTPService), new(mocks.MockUserService))

	c, w := newTestContext(t, http.MethodPut, "/api/v1/drafts/petition", nil)
	c.Request.Body = http.NoBody
	setAuthContext(c, uuid.New(), domain.RoleMember)
	h.Save(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	draftSvc.AssertNotCalled(t, "Save")
}

func TestDraftReset(t *testing.T) {
	draftSvc := new(mocks.MockDraftService)
	h := handler.NewDraftHandler(draftSvc, new(mocks.MockPetitionService), new(mocks.MockOTPService), new(mocks.MockUserService))

	userID := uuid.New()
	draftSvc.On("Reset", mock.Anything, userID).Return(nil)

	c, w := newTestContext(t, http.MethodDelete, "/api/v1/drafts/petition", nil)
	setAuthContext(c, userID, domain.RoleMember)
	h.Reset(c)

	assert.Equal(t, http.StatusOK, w.Code)
	draftSvc.AssertExpectations(t)
}

func TestDraftSendCode_RejectsInvalidMobile(t *testing.T) {
	draftSvc := new(mocks.MockDraftService)
	otpSvc := new(mocks.MockOTPService)
	h := handler.NewDraftHandler(draftSvc, new(mocks.MockPetitionService), otpSvc, new(mocks.MockUserService))

	userID := uuid.New()
	draftSvc.On("Get", mock.Anything, userID).Return(wizard.NewDraft(userID))

	c, w := newTestContext(t, http.MethodPost, "/api/v1/drafts/petition/send-code", nil)
	setAuthContext(c, userID, domain.RoleMember)
	h.SendCode(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	otpSvc.AssertNotCalled(t, "SendCode")
}

func TestDraftSendCode_IssuesChallenge(t *testing.T) {
	draftSvc := new(mocks.MockDraftService)
	otpSvc := new(mocks.MockOTPService)
	h := handler.NewDraftHandler(draftSvc, new(mocks.MockPetitionService), otpSvc, new(mocks.MockUserService))

	userID := uuid.New()
	d := wizard.NewDraft(userID)
	d.Form.Starter.Mobile = "9876543210"
	draftSvc.On("Get", mock.Anything, userID).Return(d)

	challengeID := uuid.New()
	otpSvc.On("SendCode", mock.Anything, userID, "9876543210").Return(challengeID, nil)

	c, w := newTestContext(t, http.MethodPost, "/api/v1/drafts/petition/send-code", nil)
	setAuthContext(c, userID, domain.RoleMember)
	h.SendCode(c)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeResponse(t, w)
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, challengeID.String(), data["challenge_id"])
	otpSvc.AssertExpectations(t)
}

func TestDraftVerify_Success(t *testing.T) {
	draftSvc := new(mocks.MockDraftService)
	h := handler.NewDraftHandler(draftSvc, new(mocks.MockPetitionService), new(mocks.MockOTPService), new(mocks.MockUserService))

	userID := uuid.New()
	challengeID := uuid.New()
	verified := wizard.NewDraft(userID)
	verified.Verified = true
	draftSvc.On("Verify", mock.Anything, userID, challengeID, "482913").Return(verified, nil)

	c, w := newTestContext(t, http.MethodPost, "/api/v1/drafts/petition/verify", gin.H{
		"challenge_id": challengeID,
		"code":         "482913",
	})
	setAuthContext(c, userID, domain.RoleMember)
	h.Verify(c)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeResponse(t, w)
	data := resp["data"].(map[string]interface{})
	draft := data["draft"].(map[string]interface{})
	assert.Equal(t, true, draft["verified"])
}

func TestDraftVerify_WrongCode(t *testing.T) {
	draftSvc := new(mocks.MockDraftService)
	h := handler.NewDraftHandler(draftSvc, new(mocks.MockPetitionService), new(mocks.MockOTPService), new(mocks.MockUserService))

	userID := uuid.New()
	challengeID := uuid.New()
	draftSvc.On("Verify", mock.Anything, userID, challengeID, "000000").Return(nil, domain.ErrChallengeCode)

	c, w := newTestContext(t, http.MethodPost, "/api/v1/drafts/petition/verify", gin.H{
		"challenge_id": challengeID,
		"code":         "000000",
	})
	setAuthContext(c, userID, domain.RoleMember)
	h.Verify(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeResponse(t, w)
	errObj := resp["error"].(map[string]interface{})
	assert.Equal(t, "INVALID_CODE", errObj["code"])
}

func TestDraftSubmit_CreatesPetition(t *testing.T) {
	petitionSvc := new(mocks.MockPetitionService)
	h := handler.NewDraftHandler(new(mocks.MockDraftService), petitionSvc, new(mocks.MockOTPService), new(mocks.MockUserService))

	userID := uuid.New()
	petition := &domain.Petition{ID: uuid.New(), Title: "Save the city lake from encroachment"}
	petitionSvc.On("SubmitDraft", mock.Anything, userID).Return(petition, nil)

	c, w := newTestContext(t, http.MethodPost, "/api/v1/drafts/petition/submit", nil)
	setAuthContext(c, userID, domain.RoleMember)
	h.Submit(c)

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestDraftSubmit_IncompleteDraft(t *testing.T) {
	petitionSvc := new(mocks.MockPetitionService)
	h := handler.NewDraftHandler(new(mocks.MockDraftService), petitionSvc, new(mocks.MockOTPService), new(mocks.MockUserService))

	userID := uuid.New()
	petitionSvc.On("SubmitDraft", mock.Anything, userID).Return(nil, domain.ErrDraftIncomplete)

	c, w := newTestContext(t, http.MethodPost, "/api/v1/drafts/petition/submit", nil)
	setAuthContext(c, userID, domain.RoleMember)
	h.Submit(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeResponse(t, w)
	errObj := resp["error"].(map[string]interface{})
	assert.Equal(t, "DRAFT_INCOMPLETE", errObj["code"])
}
