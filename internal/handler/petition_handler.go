package handler

import (
	"errors"
	"io"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"awaaz/internal/domain"
	"awaaz/internal/export"
	"awaaz/internal/port"
	"awaaz/internal/service"
	"awaaz/internal/wizard"
)

// PetitionHandler handles petition endpoints.
type PetitionHandler struct {
	petitionService service.PetitionService
	userService     service.UserService
}

// NewPetitionHandler creates a new PetitionHandler.
func NewPetitionHandler(petitionService service.PetitionService, userService service.UserService) *PetitionHandler {
	return &PetitionHandler{petitionService: petitionService, userService: userService}
}

// signRequest is the request body for signing a petition.
type signRequest struct {
	Constituency string `json:"constituency"`
	Comment      string `json:"comment"`
	AadharNumber string `json:"aadharNumber"`
}

// List handles GET /api/v1/petitions
// @Summary Browse petitions
// @Tags petitions
// @Produce json
// @Param category query string false "Category slug"
// @Param country query string false "Country"
// @Param status query string false "Status" Enums(active, closed, won)
// @Param search query string false "Title search"
// @Param offset query int false "Pagination offset" default(0)
// @Param limit query int false "Pagination limit (max 100)" default(20)
// @Success 200 {object} APIResponse{data=[]domain.Petition,meta=PagMeta}
// @Router /petitions [get]
func (h *PetitionHandler) List(c *gin.Context) {
	offset, limit := parsePagination(c)

	filter := port.PetitionFilter{
		Category: c.Query("category"),
		Country:  c.Query("country"),
		Status:   domain.PetitionStatus(c.Query("status")),
		Search:   c.Query("search"),
	}

	petitions, total, err := h.petitionService.List(c.Request.Context(), filter, offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, petitions, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// Get handles GET /api/v1/petitions/:id
// @Summary Get a petition
// @Tags petitions
// @Produce json
// @Param id path string true "Petition ID"
// @Success 200 {object} APIResponse{data=domain.Petition}
// @Failure 404 {object} APIResponse
// @Router /petitions/{id} [get]
func (h *PetitionHandler) Get(c *gin.Context) {
	petitionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "petition id must be a valid UUID")
		return
	}

	petition, err := h.petitionService.GetByID(c.Request.Context(), petitionID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, petition)
}

// Publish handles POST /api/v1/petitions
// @Summary Publish a petition
// @Description Accepts the assembled wizard output as multipart form data with an optional image
// @Tags petitions
// @Accept multipart/form-data
// @Produce json
// @Param title formData string true "Petition title"
// @Param country formData string true "Country"
// @Param categories formData string true "JSON array of category slugs"
// @Param decisionMakers formData string true "JSON array of decision makers"
// @Param petitionDetails formData string true "JSON petition details"
// @Param petitionStarter formData string true "JSON petition starter"
// @Param signingRequirements formData string false "JSON signing requirements"
// @Param image formData file false "Petition image (JPG or PNG)"
// @Success 201 {object} APIResponse{data=domain.Petition}
// @Failure 400 {object} APIResponse
// @Failure 413 {object} APIResponse
// @Security BearerAuth
// @Router /petitions [post]
func (h *PetitionHandler) Publish(c *gin.Context) {
	userID, ok := extractUserID(c)
	if !ok {
		return
	}

	input := &service.PublishInput{
		UserID:                  userID,
		Title:                   c.PostForm(wizard.PartTitle),
		Country:                 c.PostForm(wizard.PartCountry),
		CategoriesJSON:          c.PostForm(wizard.PartCategories),
		DecisionMakersJSON:      c.PostForm(wizard.PartDecisionMakers),
		PetitionDetailsJSON:     c.PostForm(wizard.PartPetitionDetails),
		PetitionStarterJSON:     c.PostForm(wizard.PartPetitionStarter),
		SigningRequirementsJSON: c.PostForm(wizard.PartSigningRequirements),
	}

	if file, header, err := c.Request.FormFile(wizard.PartImage); err == nil {
		defer func() { _ = file.Close() }()
		input.Image = file
		input.ImageHeader = header
	}

	petition, err := h.petitionService.Publish(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, petition)
}

// Sign handles POST /api/v1/petitions/:id/sign
// @Summary Sign a petition
// @Tags petitions
// @Accept json
// @Produce json
// @Param id path string true "Petition ID"
// @Param input body signRequest false "Signature details"
// @Success 201 {object} APIResponse{data=domain.Signature}
// @Failure 403 {object} APIResponse
// @Failure 409 {object} APIResponse
// @Security BearerAuth
// @Router /petitions/{id}/sign [post]
func (h *PetitionHandler) Sign(c *gin.Context) {
	userID, ok := extractUserID(c)
	if !ok {
		return
	}

	petitionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "petition id must be a valid UUID")
		return
	}

	// The body is optional; signing without constituency or comment is valid
	// when the petition imposes no requirements.
	var req signRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	user, err := h.userService.GetByID(c.Request.Context(), userID)
	if err != nil {
		HandleError(c, err)
		return
	}

	signature, err := h.petitionService.Sign(c.Request.Context(), &service.SignInput{
		PetitionID:   petitionID,
		UserID:       userID,
		SignerName:   user.FullName,
		Constituency: req.Constituency,
		Comment:      req.Comment,
		AadharNumber: req.AadharNumber,
	})
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, signature)
}

// ListSignatures handles GET /api/v1/petitions/:id/signatures
// @Summary List signatures on a petition
// @Tags petitions
// @Produce json
// @Param id path string true "Petition ID"
// @Param offset query int false "Pagination offset" default(0)
// @Param limit query int false "Pagination limit (max 100)" default(20)
// @Success 200 {object} APIResponse{data=[]domain.Signature,meta=PagMeta}
// @Router /petitions/{id}/signatures [get]
func (h *PetitionHandler) ListSignatures(c *gin.Context) {
	petitionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "petition id must be a valid UUID")
		return
	}

	offset, limit := parsePagination(c)
	signatures, total, err := h.petitionService.ListSignatures(c.Request.Context(), petitionID, offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, signatures, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// ExportSignatures handles GET /api/v1/petitions/:id/signatures/export
// @Summary Export a petition's signatures
// @Description Streams all signatures as CSV or an Excel workbook. Creator only.
// @Tags petitions
// @Produce octet-stream
// @Param id path string true "Petition ID"
// @Param format query string false "Export format" Enums(csv, xlsx) default(csv)
// @Success 200 {file} file
// @Failure 403 {object} APIResponse
// @Failure 404 {object} APIResponse
// @Security BearerAuth
// @Router /petitions/{id}/signatures/export [get]
func (h *PetitionHandler) ExportSignatures(c *gin.Context) {
	userID, ok := extractUserID(c)
	if !ok {
		return
	}

	petitionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "petition id must be a valid UUID")
		return
	}

	format := c.DefaultQuery("format", "csv")
	if format != "csv" && format != "xlsx" {
		RespondError(c, http.StatusBadRequest, "INVALID_FORMAT", "format must be csv or xlsx")
		return
	}

	petition, signatures, err := h.petitionService.AllSignatures(c.Request.Context(), petitionID, userID)
	if err != nil {
		HandleError(c, err)
		return
	}

	filename := export.BuildFilename(petition.Title, format)
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)

	if format == "xlsx" {
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Status(http.StatusOK)
		if err := export.WriteXLSX(c.Writer, petition.Title, signatures); err != nil {
			// Headers are already sent; nothing left to do but log.
			requestID, _ := c.Get("request_id")
			log.Printf("[%s] signature export failed: %v", requestID, err)
		}
		return
	}

	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Status(http.StatusOK)
	_, _ = c.Writer.Write(export.BOM)

	w := export.NewCSVWriter(c.Writer)
	if err := w.WriteHeader(); err != nil {
		return
	}
	if err := w.WriteSignatures(signatures); err != nil {
		return
	}
	w.Flush()
}
