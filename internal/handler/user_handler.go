package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"awaaz/internal/service"
)

// UserHandler handles user profile endpoints.
type UserHandler struct {
	userService service.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// Me handles GET /api/v1/users/me
// @Summary Get the authenticated user's profile
// @Tags users
// @Produce json
// @Success 200 {object} APIResponse{data=domain.User}
// @Failure 401 {object} APIResponse
// @Security BearerAuth
// @Router /users/me [get]
func (h *UserHandler) Me(c *gin.Context) {
	userID, ok := extractUserID(c)
	if !ok {
		return
	}

	user, err := h.userService.GetByID(c.Request.Context(), userID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, user)
}

// UpdateMe handles PATCH /api/v1/users/me
// @Summary Update the authenticated user's profile
// @Tags users
// @Accept json
// @Produce json
// @Param input body service.UpdateProfileInput true "Fields to update"
// @Success 200 {object} APIResponse{data=domain.User}
// @Failure 400 {object} APIResponse
// @Security BearerAuth
// @Router /users/me [patch]
func (h *UserHandler) UpdateMe(c *gin.Context) {
	userID, ok := extractUserID(c)
	if !ok {
		return
	}

	var input service.UpdateProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	user, err := h.userService.UpdateProfile(c.Request.Context(), userID, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, user)
}
