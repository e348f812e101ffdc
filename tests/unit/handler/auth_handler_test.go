package handler_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"awaaz/internal/domain"
	"awaaz/internal/handler"
	"awaaz/internal/service"
	"awaaz/mocks"
)

func newAuthHandler() (*handler.AuthHandler, *mocks.MockAuthService, *mocks.MockUserService, *mocks.MockOTPService) {
	authSvc := new(mocks.MockAuthService)
	userSvc := new(mocks.MockUserService)
	otpSvc := new(mocks.MockOTPService)
	return handler.NewAuthHandler(authSvc, userSvc, otpSvc), authSvc, userSvc, otpSvc
}

func TestLoginHandler_Success(t *testing.T) {
	h, authSvc, _, _ := newAuthHandler()

	authSvc.On("Login", mock.Anything, service.LoginInput{
		Email:    "ravi@example.com",
		Password: "correct-password",
	}).Return(&service.TokenPair{AccessToken: "access", RefreshToken: "refresh"}, nil)

	c, w := newTestContext(t, http.MethodPost, "/api/v1/auth/login", gin.H{
		"email":    "ravi@example.com",
		"password": "correct-password",
	})
	h.Login(c)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeResponse(t, w)
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, "access", data["access_token"])
}

func TestLoginHandler_InvalidCredentials(t *testing.T) {
	h, authSvc, _, _ := newAuthHandler()

	authSvc.On("Login", mock.Anything, mock.AnythingOfType("service.LoginInput")).
		Return(nil, domain.ErrInvalidCredentials)

	c, w := newTestContext(t, http.MethodPost, "/api/v1/auth/login", gin.H{
		"email":    "ravi@example.com",
		"password": "wrong-password",
	})
	h.Login(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLoginHandler_MissingFields(t *testing.T) {
	h, authSvc, _, _ := newAuthHandler()

	c, w := newTestContext(t, http.MethodPost, "/api/v1/auth/login", gin.H{"email": "ravi@example.com"})
	h.Login(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	authSvc.AssertNotCalled(t, "Login")
}

func TestRegisterHandler_DuplicateEmail(t *testing.T) {
	h, authSvc, _, _ := newAuthHandler()

	authSvc.On("Register", mock.Anything, mock.AnythingOfType("service.RegisterInput")).
		Return(nil, nil, domain.ErrDuplicateEmail)

	c, w := newTestContext(t, http.MethodPost, "/api/v1/auth/register", gin.H{
		"full_name": "Ravi Kumar",
		"email":     "ravi@example.com",
		"phone":     "9876543210",
		"password":  "correct-password",
	})
	h.Register(c)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestSendOTPHandler_UnknownPhone(t *testing.T) {
	h, _, userSvc, otpSvc := newAuthHandler()

	userSvc.On("GetByPhone", mock.Anything, "9876543210").Return(nil, domain.ErrNotFound)

	c, w := newTestContext(t, http.MethodPost, "/api/v1/auth/otp/send", gin.H{"phone": "9876543210"})
	h.SendOTP(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	otpSvc.AssertNotCalled(t, "SendCode")
}

func TestSendOTPHandler_Success(t *testing.T) {
	h, _, userSvc, otpSvc := newAuthHandler()

	user := &domain.User{ID: uuid.New(), Phone: "9876543210", IsActive: true}
	challengeID := uuid.New()
	userSvc.On("GetByPhone", mock.Anything, "9876543210").Return(user, nil)
	otpSvc.On("SendCode", mock.Anything, user.ID, "9876543210").Return(challengeID, nil)

	c, w := newTestContext(t, http.MethodPost, "/api/v1/auth/otp/send", gin.H{"phone": "9876543210"})
	h.SendOTP(c)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeResponse(t, w)
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, challengeID.String(), data["challenge_id"])
}

func TestVerifyOTPHandler_IssuesTokens(t *testing.T) {
	h, authSvc, _, otpSvc := newAuthHandler()

	user := &domain.User{ID: uuid.New(), Phone: "9876543210", IsActive: true}
	challengeID := uuid.New()
	otpSvc.On("ResolveChallenge", mock.Anything, challengeID, "482913").Return(user, nil)
	authSvc.On("TokensForUser", user).Return(&service.TokenPair{AccessToken: "access"}, nil)

	c, w := newTestContext(t, http.MethodPost, "/api/v1/auth/otp/verify", gin.H{
		"challenge_id": challengeID,
		"code":         "482913",
	})
	h.VerifyOTP(c)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeResponse(t, w)
	data := resp["data"].(map[string]interface{})
	tokens := data["tokens"].(map[string]interface{})
	assert.Equal(t, "access", tokens["access_token"])
}

func TestVerifyOTPHandler_WrongCode(t *testing.T) {
	h, authSvc, _, otpSvc := newAuthHandler()

	challengeID := uuid.New()
	otpSvc.On("ResolveChallenge", mock.Anything, challengeID, "000000").
		Return(nil, domain.ErrChallengeCode)

	c, w := newTestContext(t, http.MethodPost, "/api/v1/auth/otp/verify", gin.H{
		"challenge_id": challengeID,
		"code":         "000000",
	})
	h.VerifyOTP(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	authSvc.AssertNotCalled(t, "TokensForUser")
}

func TestRefreshHandler_Expired(t *testing.T) {
	h, authSvc, _, _ := newAuthHandler()

	authSvc.On("RefreshToken", mock.Anything, "stale-token").Return(nil, domain.ErrUnauthorized)

	c, w := newTestContext(t, http.MethodPost, "/api/v1/auth/refresh", gin.H{"refresh_token": "stale-token"})
	h.RefreshToken(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
