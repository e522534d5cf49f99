package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"haven/internal/models/request_models"
	"haven/internal/models/response_models"
	"haven/internal/services"
	"haven/internal/templates"
	"haven/pkg/utils"
)

type PromptController struct {
	promptService services.PromptServiceInterface
}

func NewPromptController(promptService services.PromptServiceInterface) *PromptController {
	return &PromptController{
		promptService: promptService,
	}
}

// GenerateJournal godoc
// @Summary Start an AI-guided journal session
// @Description Generate journaling questions from a seed prompt and open a guided session
// @Tags Journal
// @Accept json
// @Produce json
// @Param request body request_models.GenerateJournalRequest true "Seed prompt"
// @Success 200 {object} response_models.GuidedSessionResponse
// @Security BearerAuth
// @Router /journal/generate [post]
func (p *PromptController) GenerateJournal(c *gin.Context) {
	var req request_models.GenerateJournalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Seed prompt is required")
		return
	}

	userId := c.GetString("user_id")

	session, err := p.promptService.StartSession(c.Request.Context(), userId, req.Seed)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, session, "Guided session started")
}

// AnswerQuestion godoc
// @Summary Answer the active question in a guided session
// @Description Record the answer for the current question and advance; empty answers are accepted
// @Tags Journal
// @Accept json
// @Produce json
// @Param sessionId path string true "Session ID"
// @Param request body request_models.AnswerQuestionRequest true "Answer payload"
// @Success 200 {object} response_models.GuidedSessionResponse
// @Security BearerAuth
// @Router /journal/sessions/{sessionId}/answer [post]
func (p *PromptController) AnswerQuestion(c *gin.Context) {
	sessionId := c.Param("sessionId")
	if sessionId == "" {
		utils.RespondError(c, http.StatusBadRequest, "Session ID is required")
		return
	}

	var req request_models.AnswerQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	userId := c.GetString("user_id")

	session, err := p.promptService.RecordAnswer(c.Request.Context(), userId, sessionId, req.Answer)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, session, "Answer recorded")
}

// FinishSession godoc
// @Summary Finish a guided session
// @Description Build and persist the journal entry from the session's questions and answers
// @Tags Journal
// @Produce json
// @Param sessionId path string true "Session ID"
// @Success 200 {object} response_models.JournalEntryResponse
// @Security BearerAuth
// @Router /journal/sessions/{sessionId}/finish [post]
func (p *PromptController) FinishSession(c *gin.Context) {
	sessionId := c.Param("sessionId")
	if sessionId == "" {
		utils.RespondError(c, http.StatusBadRequest, "Session ID is required")
		return
	}

	userId := c.GetString("user_id")

	entry, err := p.promptService.FinishSession(c.Request.Context(), userId, sessionId)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c,
		response_models.ToJournalEntryResponse(entry, time.Now()),
		"Journal entry saved successfully")
}

// ListTemplates godoc
// @Summary List journal templates
// @Tags Journal
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /journal/templates [get]
func (p *PromptController) ListTemplates(c *gin.Context) {
	utils.RespondSuccess(c, templates.Names(), "Templates fetched successfully")
}

// TemplatePrompts godoc
// @Summary Get the prompt list for a template
// @Tags Journal
// @Produce json
// @Param name query string true "Template display name"
// @Success 200 {object} utils.APIResponse
// @Router /journal/templates/prompts [get]
func (p *PromptController) TemplatePrompts(c *gin.Context) {
	name := c.Query("name")
	if name == "" {
		utils.RespondError(c, http.StatusBadRequest, "Template name is required")
		return
	}

	prompts, known := templates.Prompts(name)
	info, _ := templates.Resolve(name)

	utils.RespondSuccess(c, gin.H{
		"type":       info.Type,
		"template":   info.Template,
		"templateId": info.TemplateID,
		"prompts":    prompts,
		"known":      known,
	}, "Template prompts fetched successfully")
}
