package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"haven/internal/models/request_models"
	"haven/internal/services"
	"haven/pkg/utils"
)

type ActivityController struct {
	activityService services.ActivityServiceInterface
}

func NewActivityController(activityService services.ActivityServiceInterface) *ActivityController {
	return &ActivityController{
		activityService: activityService,
	}
}

// UpsertToday godoc
// @Summary Save today's activity metrics
// @Description Replace today's in-progress daily log for the authenticated user
// @Tags Activity
// @Accept json
// @Produce json
// @Param request body request_models.UpsertDailyLogRequest true "Daily metrics"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /activity/today [put]
func (a *ActivityController) UpsertToday(c *gin.Context) {
	var req request_models.UpsertDailyLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	userId := c.GetString("user_id")

	if _, err := a.activityService.UpsertToday(c.Request.Context(), userId, req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Daily activity saved successfully")
}

// Summary godoc
// @Summary Activity summary
// @Description Averages across all tracked days plus today's wellness score
// @Tags Activity
// @Produce json
// @Success 200 {object} response_models.ActivitySummaryResponse
// @Security BearerAuth
// @Router /activity/summary [get]
func (a *ActivityController) Summary(c *gin.Context) {
	userId := c.GetString("user_id")

	summary, err := a.activityService.Summary(c.Request.Context(), userId)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, summary, "Activity summary fetched successfully")
}
