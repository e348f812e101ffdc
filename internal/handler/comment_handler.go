package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"awaaz/internal/service"
)

// CommentHandler handles petition comment endpoints.
type CommentHandler struct {
	commentService service.CommentService
}

// NewCommentHandler creates a new CommentHandler.
func NewCommentHandler(commentService service.CommentService) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

// createCommentRequest is the request body for posting a comment.
type createCommentRequest struct {
	Body string `json:"body" binding:"required"`
}

// Create handles POST /api/v1/petitions/:id/comments
// @Summary Comment on a petition
// @Tags comments
// @Accept json
// @Produce json
// @Param id path string true "Petition ID"
// @Param input body createCommentRequest true "Comment"
// @Success 201 {object} APIResponse{data=domain.Comment}
// @Failure 400 {object} APIResponse
// @Failure 404 {object} APIResponse
// @Security BearerAuth
// @Router /petitions/{id}/comments [post]
func (h *CommentHandler) Create(c *gin.Context) {
	userID, ok := extractUserID(c)
	if !ok {
		return
	}

	petitionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "petition id must be a valid UUID")
		return
	}

	var req createCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	comment, err := h.commentService.Create(c.Request.Context(), service.CreateCommentInput{
		PetitionID: petitionID,
		UserID:     userID,
		Body:       req.Body,
	})
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, comment)
}

// List handles GET /api/v1/petitions/:id/comments
// @Summary List comments on a petition
// @Tags comments
// @Produce json
// @Param id path string true "Petition ID"
// @Param offset query int false "Pagination offset" default(0)
// @Param limit query int false "Pagination limit (max 100)" default(20)
// @Success 200 {object} APIResponse{data=[]domain.Comment,meta=PagMeta}
// @Router /petitions/{id}/comments [get]
func (h *CommentHandler) List(c *gin.Context) {
	petitionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "petition id must be a valid UUID")
		return
	}

	offset, limit := parsePagination(c)
	comments, total, err := h.commentService.ListByPetition(c.Request.Context(), petitionID, offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, comments, PagMeta{Total: total, Offset: offset, Limit: limit})
}
