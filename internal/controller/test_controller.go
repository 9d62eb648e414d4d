package controller

import (
	"net/http"

	"github.com/edumobile/edu-api/internal/dto"
	"github.com/edumobile/edu-api/internal/service"
	"github.com/gin-gonic/gin"
)

type TestController struct {
	testService service.TestService
}

func NewTestController(testService service.TestService) *TestController {
	return &TestController{testService: testService}
}

func (ctrl *TestController) RegisterRoutes(rg *gin.RouterGroup) {
	tests := rg.Group("/tests")
	{
		tests.POST("", ctrl.CreateTest)
		tests.GET("/:id", ctrl.GetTest)
		tests.GET("/:id/full", ctrl.GetTestWithQuestions)
		tests.PUT("/:id", ctrl.UpdateTest)
		tests.DELETE("/:id", ctrl.DeleteTest)
	}
	rg.GET("/courses/:id/tests", ctrl.GetTestsByCourse)
}

// CreateTest godoc
// @Summary Create a test for a course
// @Tags Tests
// @Accept json
// @Produce json
// @Param test body dto.CreateTestRequest true "Test data"
// @Success 201 {object} model.Test
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Router /tests [post]
func (ctrl *TestController) CreateTest(c *gin.Context) {
	var req dto.CreateTestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}
	test, err := ctrl.testService.CreateTest(req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusCreated, test)
}

func (ctrl *TestController) GetTest(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}
	test, err := ctrl.testService.GetTestByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, test)
}

// GetTestWithQuestions godoc
// @Summary Get a test with its questions and answer options
// @Tags Tests
// @Produce json
// @Param id path int true "Test ID"
// @Success 200 {object} model.Test
// @Router /tests/{id}/full [get]
func (ctrl *TestController) GetTestWithQuestions(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}
	test, err := ctrl.testService.GetTestWithQuestions(id)
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, test)
}

func (ctrl *TestController) GetTestsByCourse(c *gin.Context) {
	courseID, ok := uintParam(c, "id")
	if !ok {
		return
	}
	tests, err := ctrl.testService.GetTestsByCourseID(courseID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, tests)
}

func (ctrl *TestController) UpdateTest(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateTestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}
	test, err := ctrl.testService.UpdateTest(id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, test)
}

func (ctrl *TestController) DeleteTest(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}
	if err := ctrl.testService.DeleteTest(id); err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, gin.H{"deleted": id})
}
