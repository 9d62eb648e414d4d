package controller

import (
	"net/http"
	"strconv"

	"github.com/edumobile/edu-api/internal/dto"
	"github.com/edumobile/edu-api/internal/metrics"
	"github.com/edumobile/edu-api/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type ProgressController struct {
	progressService service.ProgressService
}

func NewProgressController(progressService service.ProgressService) *ProgressController {
	return &ProgressController{progressService: progressService}
}

func (ctrl *ProgressController) RegisterRoutes(rg *gin.RouterGroup) {
	progress := rg.Group("/progress")
	{
		progress.POST("/complete", ctrl.MarkCompleted)
		progress.POST("/users/:user_id/materials/:material_id/access", ctrl.TouchAccess)
		progress.GET("/users/:user_id/courses/:course_id", ctrl.GetCourseProgress)
		progress.GET("/users/:user_id/overall", ctrl.GetOverallProgress)
		progress.GET("/users/:user_id/recent", ctrl.GetRecentActivities)
	}
}

// MarkCompleted godoc
// @Summary Mark a material as completed for a user
// @Description Idempotent: repeating the call for the same user and material keeps a single record.
// @Tags Progress
// @Accept json
// @Produce json
// @Param progress body dto.MarkCompletedRequest true "Completion data"
// @Success 200 {object} model.Progress
// @Failure 404 {object} dto.ErrorResponse "User, course or material not found"
// @Router /progress/complete [post]
func (ctrl *ProgressController) MarkCompleted(c *gin.Context) {
	var req dto.MarkCompletedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}
	progress, err := ctrl.progressService.MarkMaterialAsCompleted(req.UserID, req.CourseID, req.MaterialID)
	if err != nil {
		log.Warn().Err(err).Uint("user_id", req.UserID).Uint("material_id", req.MaterialID).Msg("Failed to mark material as completed")
		respondError(c, err)
		return
	}
	metrics.MaterialsCompleted.Inc()
	respondSuccess(c, http.StatusOK, progress)
}

func (ctrl *ProgressController) TouchAccess(c *gin.Context) {
	userID, ok := uintParam(c, "user_id")
	if !ok {
		return
	}
	materialID, ok := uintParam(c, "material_id")
	if !ok {
		return
	}
	if err := ctrl.progressService.UpdateMaterialAccess(userID, materialID); err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, gin.H{"accessed": materialID})
}

// GetCourseProgress godoc
// @Summary Get a user's progress within one course
// @Tags Progress
// @Produce json
// @Param user_id path int true "User ID"
// @Param course_id path int true "Course ID"
// @Success 200 {object} repository.CourseProgress
// @Router /progress/users/{user_id}/courses/{course_id} [get]
func (ctrl *ProgressController) GetCourseProgress(c *gin.Context) {
	userID, ok := uintParam(c, "user_id")
	if !ok {
		return
	}
	courseID, ok := uintParam(c, "course_id")
	if !ok {
		return
	}
	progress, err := ctrl.progressService.GetCourseProgress(userID, courseID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, progress)
}

func (ctrl *ProgressController) GetOverallProgress(c *gin.Context) {
	userID, ok := uintParam(c, "user_id")
	if !ok {
		return
	}
	progress, err := ctrl.progressService.GetUserOverallProgress(userID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, progress)
}

func (ctrl *ProgressController) GetRecentActivities(c *gin.Context) {
	userID, ok := uintParam(c, "user_id")
	if !ok {
		return
	}
	limit := 10
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			respondBadRequest(c, "Invalid limit query parameter")
			return
		}
		limit = parsed
	}
	activities, err := ctrl.progressService.GetRecentActivities(userID, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, activities)
}
