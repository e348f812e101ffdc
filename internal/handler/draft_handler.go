package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"awaaz/internal/service"
	"awaaz/internal/wizard"
)

// DraftHandler handles petition wizard draft endpoints.
type DraftHandler struct {
	draftService    service.DraftService
	petitionService service.PetitionService
	otpService      service.OTPService
	userService     service.UserService
}

// NewDraftHandler creates a new DraftHandler.
func NewDraftHandler(
	draftService service.DraftService,
	petitionService service.PetitionService,
	otpService service.OTPService,
	userService service.UserService,
) *DraftHandler {
	return &DraftHandler{
		draftService:    draftService,
		petitionService: petitionService,
		otpService:      otpService,
		userService:     userService,
	}
}

// draftView is the wire shape of a draft plus the validation state the wizard
// needs to enable or disable its controls.
type draftView struct {
	Draft      *wizard.Draft             `json:"draft"`
	StepErrors map[int]map[string]string `json:"stepErrors"`
	Complete   bool                      `json:"complete"`
}

func newDraftView(d *wizard.Draft) draftView {
	errs := make(map[int]map[string]string, 4)
	for s := wizard.StepTitle; s <= wizard.StepStarter; s++ {
		if e := wizard.StepErrors(d, s); len(e) > 0 {
			errs[int(s)] = e
		}
	}
	return draftView{Draft: d, StepErrors: errs, Complete: d.Complete()}
}

// verifyRequest is the request body for draft phone verification.
type verifyRequest struct {
	ChallengeID uuid.UUID `json:"challenge_id" binding:"required"`
	Code        string    `json:"code" binding:"required"`
}

// Get handles GET /api/v1/drafts/petition
// @Summary Restore the petition draft
// @Description Returns the saved draft, or a fresh one when none is usable
// @Tags drafts
// @Produce json
// @Success 200 {object} APIResponse
// @Security BearerAuth
// @Router /drafts/petition [get]
func (h *DraftHandler) Get(c *gin.Context) {
	userID, ok := extractUserID(c)
	if !ok {
		return
	}

	d := h.draftService.Get(c.Request.Context(), userID)
	RespondOK(c, newDraftView(d))
}

// Save handles PUT /api/v1/drafts/petition
// @Summary Save the petition draft
// @Description Overwrites the stored draft wholesale with the submitted wizard state
// @Tags drafts
// @Accept json
// @Produce json
// @Param input body wizard.Draft true "Wizard state"
// @Success 200 {object} APIResponse
// @Failure 400 {object} APIResponse
// @Security BearerAuth
// @Router /drafts/petition [put]
func (h *DraftHandler) Save(c *gin.Context) {
	userID, ok := extractUserID(c)
	if !ok {
		return
	}

	var d wizard.Draft
	if err := c.ShouldBindJSON(&d); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	if err := h.draftService.Save(c.Request.Context(), userID, &d); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, newDraftView(&d))
}

// Reset handles DELETE /api/v1/drafts/petition
// @Summary Discard the petition draft
// @Tags drafts
// @Produce json
// @Success 200 {object} APIResponse
// @Security BearerAuth
// @Router /drafts/petition [delete]
func (h *DraftHandler) Reset(c *gin.Context) {
	userID, ok := extractUserID(c)
	if !ok {
		return
	}

	if err := h.draftService.Reset(c.Request.Context(), userID); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"message": "draft discarded"})
}

// SendCode handles POST /api/v1/drafts/petition/send-code
// @Summary Request a verification code for the draft's starter phone
// @Tags drafts
// @Produce json
// @Success 200 {object} APIResponse
// @Failure 400 {object} APIResponse
// @Security BearerAuth
// @Router /drafts/petition/send-code [post]
func (h *DraftHandler) SendCode(c *gin.Context) {
	userID, ok := extractUserID(c)
	if !ok {
		return
	}

	d := h.draftService.Get(c.Request.Context(), userID)
	mobile := d.Form.Starter.Mobile
	if res := wizard.ValidateField(wizard.FieldStarterMobile, mobile); !res.Valid {
		RespondError(c, http.StatusBadRequest, "INVALID_MOBILE", "enter a valid mobile number before requesting a code")
		return
	}

	challengeID, err := h.otpService.SendCode(c.Request.Context(), userID, mobile)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"challenge_id": challengeID})
}

// Verify handles POST /api/v1/drafts/petition/verify
// @Summary Resolve the draft's phone verification challenge
// @Tags drafts
// @Accept json
// @Produce json
// @Param input body verifyRequest true "Challenge and code"
// @Success 200 {object} APIResponse
// @Failure 400 {object} APIResponse
// @Failure 404 {object} APIResponse
// @Security BearerAuth
// @Router /drafts/petition/verify [post]
func (h *DraftHandler) Verify(c *gin.Context) {
	userID, ok := extractUserID(c)
	if !ok {
		return
	}

	var req verifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	d, err := h.draftService.Verify(c.Request.Context(), userID, req.ChallengeID, req.Code)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, newDraftView(d))
}

// Submit handles POST /api/v1/drafts/petition/submit
// @Summary Publish the completed draft as a petition
// @Description Assembles the draft, creates the petition, and clears the draft
// @Tags drafts
// @Produce json
// @Success 201 {object} APIResponse{data=domain.Petition}
// @Failure 400 {object} APIResponse
// @Security BearerAuth
// @Router /drafts/petition/submit [post]
func (h *DraftHandler) Submit(c *gin.Context) {
	userID, ok := extractUserID(c)
	if !ok {
		return
	}

	petition, err := h.petitionService.SubmitDraft(c.Request.Context(), userID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, petition)
}
