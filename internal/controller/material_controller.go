package controller

import (
	"net/http"
	"strconv"

	"github.com/edumobile/edu-api/internal/dto"
	"github.com/edumobile/edu-api/internal/service"
	"github.com/gin-gonic/gin"
)

type MaterialController struct {
	materialService service.MaterialService
}

func NewMaterialController(materialService service.MaterialService) *MaterialController {
	return &MaterialController{materialService: materialService}
}

func (ctrl *MaterialController) RegisterRoutes(rg *gin.RouterGroup) {
	materials := rg.Group("/materials")
	{
		materials.POST("", ctrl.CreateMaterial)
		materials.GET("/:id", ctrl.GetMaterial)
		materials.PUT("/:id", ctrl.UpdateMaterial)
		materials.DELETE("/:id", ctrl.DeleteMaterial)
	}
	rg.GET("/courses/:id/materials", ctrl.GetMaterialsByCourse)
	rg.GET("/courses/:id/materials/next", ctrl.GetNextMaterial)
}

func (ctrl *MaterialController) CreateMaterial(c *gin.Context) {
	var req dto.CreateMaterialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}
	material, err := ctrl.materialService.CreateMaterial(req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusCreated, material)
}

func (ctrl *MaterialController) GetMaterial(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}
	material, err := ctrl.materialService.GetMaterialByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, material)
}

func (ctrl *MaterialController) GetMaterialsByCourse(c *gin.Context) {
	courseID, ok := uintParam(c, "id")
	if !ok {
		return
	}
	materials, err := ctrl.materialService.GetMaterialsByCourseID(courseID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, materials)
}

// GetNextMaterial godoc
// @Summary Get the next material in a course after the given order index
// @Description Returns null data at the end of the course.
// @Tags Materials
// @Produce json
// @Param id path int true "Course ID"
// @Param after query int true "Current order index"
// @Success 200 {object} model.Material
// @Router /courses/{id}/materials/next [get]
func (ctrl *MaterialController) GetNextMaterial(c *gin.Context) {
	courseID, ok := uintParam(c, "id")
	if !ok {
		return
	}
	after, err := strconv.Atoi(c.Query("after"))
	if err != nil {
		respondBadRequest(c, "Invalid after query parameter")
		return
	}
	material, err := ctrl.materialService.GetNextMaterial(courseID, after)
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, material)
}

func (ctrl *MaterialController) UpdateMaterial(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateMaterialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}
	material, err := ctrl.materialService.UpdateMaterial(id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, material)
}

func (ctrl *MaterialController) DeleteMaterial(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}
	if err := ctrl.materialService.DeleteMaterial(id); err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, gin.H{"deleted": id})
}
