package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"awaaz/internal/service"
)

// AuthHandler handles authentication endpoints.
type AuthHandler struct {
	authService service.AuthService
	userService service.UserService
	otpService  service.OTPService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService service.AuthService, userService service.UserService, otpService service.OTPService) *AuthHandler {
	return &AuthHandler{authService: authService, userService: userService, otpService: otpService}
}

// RefreshInput is the request body for token refresh.
type RefreshInput struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// SendCodeInput is the request body for requesting a verification code.
type SendCodeInput struct {
	Phone string `json:"phone" binding:"required"`
}

// VerifyCodeInput is the request body for resolving a verification challenge.
type VerifyCodeInput struct {
	ChallengeID uuid.UUID `json:"challenge_id" binding:"required"`
	Code        string    `json:"code" binding:"required"`
}

// Register handles POST /api/v1/auth/register
// @Summary Register an account
// @Tags auth
// @Accept json
// @Produce json
// @Param input body service.RegisterInput true "Registration details"
// @Success 201 {object} APIResponse
// @Failure 400 {object} APIResponse
// @Failure 409 {object} APIResponse
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var input service.RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	user, tokenPair, err := h.authService.Register(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, gin.H{"user": user, "tokens": tokenPair})
}

// Login handles POST /api/v1/auth/login
// @Summary Log in with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param input body service.LoginInput true "Credentials"
// @Success 200 {object} APIResponse
// @Failure 401 {object} APIResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var input service.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	tokenPair, err := h.authService.Login(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, tokenPair)
}

// RefreshToken handles POST /api/v1/auth/refresh
// @Summary Exchange a refresh token for a new token pair
// @Tags auth
// @Accept json
// @Produce json
// @Param input body RefreshInput true "Refresh token"
// @Success 200 {object} APIResponse
// @Failure 401 {object} APIResponse
// @Router /auth/refresh [post]
func (h *AuthHandler) RefreshToken(c *gin.Context) {
	var input RefreshInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	tokenPair, err := h.authService.RefreshToken(c.Request.Context(), input.RefreshToken)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, tokenPair)
}

// SendOTP handles POST /api/v1/auth/otp/send
// @Summary Request a phone sign-in code
// @Tags auth
// @Accept json
// @Produce json
// @Param input body SendCodeInput true "Phone number"
// @Success 200 {object} APIResponse
// @Failure 404 {object} APIResponse
// @Router /auth/otp/send [post]
func (h *AuthHandler) SendOTP(c *gin.Context) {
	var input SendCodeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	user, err := h.userService.GetByPhone(c.Request.Context(), input.Phone)
	if err != nil {
		HandleError(c, err)
		return
	}

	challengeID, err := h.otpService.SendCode(c.Request.Context(), user.ID, input.Phone)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"challenge_id": challengeID})
}

// VerifyOTP handles POST /api/v1/auth/otp/verify
// @Summary Resolve a phone sign-in challenge and receive tokens
// @Tags auth
// @Accept json
// @Produce json
// @Param input body VerifyCodeInput true "Challenge and code"
// @Success 200 {object} APIResponse
// @Failure 400 {object} APIResponse
// @Failure 404 {object} APIResponse
// @Router /auth/otp/verify [post]
func (h *AuthHandler) VerifyOTP(c *gin.Context) {
	var input VerifyCodeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	user, err := h.otpService.ResolveChallenge(c.Request.Context(), input.ChallengeID, input.Code)
	if err != nil {
		HandleError(c, err)
		return
	}

	tokenPair, err := h.authService.TokensForUser(user)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"user": user, "tokens": tokenPair})
}
