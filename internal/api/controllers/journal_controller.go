package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"haven/internal/models/request_models"
	"haven/internal/models/response_models"
	"haven/internal/services"
	"haven/pkg/utils"
)

type JournalController struct {
	journalService services.JournalServiceInterface
}

func NewJournalController(journalService services.JournalServiceInterface) *JournalController {
	return &JournalController{
		journalService: journalService,
	}
}

// ListEntries godoc
// @Summary List journal entries
// @Description Fetch all journal entries for the authenticated user, newest first
// @Tags Journal
// @Produce json
// @Success 200 {array} response_models.JournalEntryResponse
// @Security BearerAuth
// @Router /journal/entries [get]
func (j *JournalController) ListEntries(c *gin.Context) {
	userId := c.GetString("user_id")

	entries, err := j.journalService.ListEntries(c.Request.Context(), userId)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c,
		response_models.ToJournalEntryResponses(entries, time.Now()),
		"Journal entries fetched successfully")
}

// GetEntry godoc
// @Summary Get a journal entry
// @Description Fetch one entry owned by the authenticated user
// @Tags Journal
// @Produce json
// @Param entryId path string true "Entry ID"
// @Success 200 {object} response_models.JournalEntryResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /journal/entries/{entryId} [get]
func (j *JournalController) GetEntry(c *gin.Context) {
	entryId := c.Param("entryId")
	if entryId == "" {
		utils.RespondError(c, http.StatusBadRequest, "Entry ID is required")
		return
	}

	userId := c.GetString("user_id")

	entry, err := j.journalService.GetEntry(c.Request.Context(), entryId, userId)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c,
		response_models.ToJournalEntryResponse(entry, time.Now()),
		"Journal entry fetched successfully")
}

// CreateEntry godoc
// @Summary Create a journal entry
// @Description Save a free-write or guided template entry
// @Tags Journal
// @Accept json
// @Produce json
// @Param request body request_models.CreateEntryRequest true "Entry payload"
// @Success 200 {object} response_models.JournalEntryResponse
// @Security BearerAuth
// @Router /journal/entries [post]
func (j *JournalController) CreateEntry(c *gin.Context) {
	var req request_models.CreateEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	userId := c.GetString("user_id")

	entry, err := j.journalService.CreateEntry(c.Request.Context(), userId, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c,
		response_models.ToJournalEntryResponse(entry, time.Now()),
		"Journal entry saved successfully")
}

// DeleteEntry godoc
// @Summary Delete a journal entry
// @Description Remove an entry owned by the authenticated user; the client confirms before calling
// @Tags Journal
// @Produce json
// @Param entryId path string true "Entry ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /journal/entries/{entryId} [delete]
func (j *JournalController) DeleteEntry(c *gin.Context) {
	entryId := c.Param("entryId")
	if entryId == "" {
		utils.RespondError(c, http.StatusBadRequest, "Entry ID is required")
		return
	}

	userId := c.GetString("user_id")

	if err := j.journalService.DeleteEntry(c.Request.Context(), entryId, userId); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Journal entry deleted successfully")
}
