package handler

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"awaaz/internal/domain"
	"awaaz/internal/middleware"
)

// APIResponse is the standard envelope for all API responses.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *APIError   `json:"error,omitempty"`
	Meta    *PagMeta    `json:"meta,omitempty"`
}

// APIError holds error details in the response.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// PagMeta holds pagination metadata.
type PagMeta struct {
	Total  int `json:"total"`
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// RespondOK sends a 200 success response.
func RespondOK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, APIResponse{Success: true, Data: data})
}

// RespondCreated sends a 201 success response.
func RespondCreated(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, APIResponse{Success: true, Data: data})
}

// RespondPaginated sends a 200 success response with pagination metadata.
func RespondPaginated(c *gin.Context, data interface{}, meta PagMeta) {
	c.JSON(http.StatusOK, APIResponse{Success: true, Data: data, Meta: &meta})
}

// RespondError sends an error response with the given status code.
func RespondError(c *gin.Context, status int, code, msg string) {
	c.JSON(status, APIResponse{
		Success: false,
		Error:   &APIError{Code: code, Message: msg},
	})
}

// MapDomainError translates domain errors to HTTP status codes and error codes.
func MapDomainError(err error) (status int, code, msg string) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, "NOT_FOUND", "resource not found"
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized, "UNAUTHORIZED", "unauthorized"
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, "FORBIDDEN", "forbidden"
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, "INVALID_CREDENTIALS", "invalid credentials"
	case errors.Is(err, domain.ErrUserInactive):
		return http.StatusForbidden, "USER_INACTIVE", "user is inactive"
	case errors.Is(err, domain.ErrDuplicateEmail):
		return http.StatusConflict, "DUPLICATE_EMAIL", "email already registered"
	case errors.Is(err, domain.ErrDuplicatePhone):
		return http.StatusConflict, "DUPLICATE_PHONE", "phone number already registered"
	case errors.Is(err, domain.ErrPetitionNotFound):
		return http.StatusNotFound, "PETITION_NOT_FOUND", "petition not found"
	case errors.Is(err, domain.ErrCategoryNotFound):
		return http.StatusNotFound, "CATEGORY_NOT_FOUND", "category not found"
	case errors.Is(err, domain.ErrDuplicateCategory):
		return http.StatusConflict, "DUPLICATE_CATEGORY", "category already exists"
	case errors.Is(err, domain.ErrInvalidCategoryName):
		return http.StatusBadRequest, "INVALID_CATEGORY_NAME", "category name must be 3-15 characters"
	case errors.Is(err, domain.ErrDraftIncomplete):
		return http.StatusBadRequest, "DRAFT_INCOMPLETE", "draft does not pass all wizard steps"
	case errors.Is(err, domain.ErrEmptyComment):
		return http.StatusBadRequest, "EMPTY_COMMENT", "comment body is empty"
	case errors.Is(err, domain.ErrAlreadySigned):
		return http.StatusConflict, "ALREADY_SIGNED", "you have already signed this petition"
	case errors.Is(err, domain.ErrConstituencyDenied):
		return http.StatusForbidden, "CONSTITUENCY_DENIED", "your constituency is not accepted for this petition"
	case errors.Is(err, domain.ErrAadharRequired):
		return http.StatusBadRequest, "AADHAR_REQUIRED", "this petition requires signers to provide a valid Aadhar number"
	case errors.Is(err, domain.ErrChallengeNotFound):
		return http.StatusNotFound, "CHALLENGE_NOT_FOUND", "verification challenge not found or expired"
	case errors.Is(err, domain.ErrChallengeCode):
		return http.StatusBadRequest, "INVALID_CODE", "verification code does not match"
	case errors.Is(err, domain.ErrTooManyAttempts):
		return http.StatusTooManyRequests, "TOO_MANY_ATTEMPTS", "too many verification attempts; request a new code"
	case errors.Is(err, domain.ErrPhoneNotVerified):
		return http.StatusForbidden, "PHONE_NOT_VERIFIED", "please verify your phone number first"
	case errors.Is(err, domain.ErrUnsupportedFileType):
		return http.StatusBadRequest, "UNSUPPORTED_FILE_TYPE", "unsupported image type; allowed: jpg, png"
	case errors.Is(err, domain.ErrFileTooLarge):
		return http.StatusRequestEntityTooLarge, "FILE_TOO_LARGE", "image exceeds maximum allowed size"
	case errors.Is(err, domain.ErrUploadFailed):
		return http.StatusInternalServerError, "UPLOAD_FAILED", "image upload to storage failed"
	case errors.Is(err, domain.ErrPasswordLoginNotAllowed):
		return http.StatusBadRequest, "PASSWORD_LOGIN_NOT_ALLOWED", "this account uses phone sign-in; request an OTP instead"
	default:
		return http.StatusInternalServerError, "INTERNAL_ERROR", "an internal error occurred"
	}
}

// extractUserID extracts the authenticated user ID from the request context.
// Returns false if auth context is missing (error response already written).
func extractUserID(c *gin.Context) (uuid.UUID, bool) {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		RespondError(c, http.StatusUnauthorized, "UNAUTHORIZED", "missing user context")
		return uuid.Nil, false
	}
	return userID, true
}

// HandleError maps a domain error and sends the appropriate error response.
func HandleError(c *gin.Context, err error) {
	status, code, msg := MapDomainError(err)
	if status >= 500 {
		requestID, _ := c.Get("request_id")
		log.Printf("[%s] internal error: %v", requestID, err)
	}
	RespondError(c, status, code, msg)
}

// parsePagination extracts offset and limit from query params with defaults.
func parsePagination(c *gin.Context) (offset, limit int) {
	offset, _ = strconv.Atoi(c.DefaultQuery("offset", "0"))
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "20"))
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return offset, limit
}
