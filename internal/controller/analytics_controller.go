package controller

import (
	"net/http"

	"github.com/edumobile/edu-api/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type AnalyticsController struct {
	analyticsService service.AnalyticsService
}

func NewAnalyticsController(analyticsService service.AnalyticsService) *AnalyticsController {
	return &AnalyticsController{analyticsService: analyticsService}
}

func (ctrl *AnalyticsController) RegisterRoutes(rg *gin.RouterGroup) {
	analytics := rg.Group("/analytics")
	{
		analytics.GET("/platform", ctrl.GetPlatformStats)
		analytics.GET("/courses/:id", ctrl.GetCourseAnalytics)
		analytics.GET("/users/:id", ctrl.GetUserLearningAnalytics)
	}
}

// GetPlatformStats godoc
// @Summary Platform-wide statistics
// @Description Aggregates user counts, activity and average progress for the requested period.
// @Tags Analytics
// @Produce json
// @Param period query string false "day, week, month or year" default(week)
// @Param details query bool false "Include popular courses and weekly signups"
// @Success 200 {object} dto.PlatformStatsResponse
// @Failure 400 {object} dto.ErrorResponse "Unknown period"
// @Router /analytics/platform [get]
func (ctrl *AnalyticsController) GetPlatformStats(c *gin.Context) {
	period := c.DefaultQuery("period", "week")
	includeDetails := c.Query("details") == "true"
	stats, err := ctrl.analyticsService.GetPlatformStats(period, includeDetails)
	if err != nil {
		log.Warn().Err(err).Str("period", period).Msg("Failed to compute platform stats")
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, stats)
}

func (ctrl *AnalyticsController) GetCourseAnalytics(c *gin.Context) {
	courseID, ok := uintParam(c, "id")
	if !ok {
		return
	}
	period := c.DefaultQuery("period", "week")
	analytics, err := ctrl.analyticsService.GetCourseAnalytics(courseID, period)
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, analytics)
}

// GetUserLearningAnalytics godoc
// @Summary Learning analytics for a single user
// @Tags Analytics
// @Produce json
// @Param id path int true "User ID"
// @Param period query string false "day, week, month or year" default(week)
// @Success 200 {object} dto.UserLearningAnalyticsResponse
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Router /analytics/users/{id} [get]
func (ctrl *AnalyticsController) GetUserLearningAnalytics(c *gin.Context) {
	userID, ok := uintParam(c, "id")
	if !ok {
		return
	}
	period := c.DefaultQuery("period", "week")
	analytics, err := ctrl.analyticsService.GetUserLearningAnalytics(userID, period)
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, analytics)
}
