package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"awaaz/internal/service"
)

// CategoryHandler handles category endpoints.
type CategoryHandler struct {
	categoryService service.CategoryService
}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler(categoryService service.CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

// createCategoryRequest is the request body for category creation.
type createCategoryRequest struct {
	Name string `json:"name" binding:"required"`
	Icon string `json:"icon"`
}

// List handles GET /api/v1/categories
// @Summary List petition categories
// @Tags categories
// @Produce json
// @Success 200 {object} APIResponse{data=[]domain.Category}
// @Router /categories [get]
func (h *CategoryHandler) List(c *gin.Context) {
	RespondOK(c, h.categoryService.List(c.Request.Context()))
}

// Create handles POST /api/v1/categories
// @Summary Create a petition category
// @Tags categories
// @Accept json
// @Produce json
// @Param input body createCategoryRequest true "Category"
// @Success 201 {object} APIResponse{data=domain.Category}
// @Failure 400 {object} APIResponse
// @Failure 409 {object} APIResponse
// @Security BearerAuth
// @Router /categories [post]
func (h *CategoryHandler) Create(c *gin.Context) {
	userID, ok := extractUserID(c)
	if !ok {
		return
	}

	var req createCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	category, err := h.categoryService.Create(c.Request.Context(), service.CreateCategoryInput{
		CreatedBy: userID,
		Name:      req.Name,
		Icon:      req.Icon,
	})
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, category)
}
