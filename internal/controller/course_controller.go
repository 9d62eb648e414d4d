package controller

import (
	"net/http"
	"strconv"

	"github.com/edumobile/edu-api/internal/dto"
	"github.com/edumobile/edu-api/internal/service"
	"github.com/gin-gonic/gin"
)

type CourseController struct {
	courseService service.CourseService
}

func NewCourseController(courseService service.CourseService) *CourseController {
	return &CourseController{courseService: courseService}
}

func (ctrl *CourseController) RegisterRoutes(rg *gin.RouterGroup) {
	courses := rg.Group("/courses")
	{
		courses.POST("", ctrl.CreateCourse)
		courses.GET("", ctrl.GetAllCourses)
		courses.GET("/popular", ctrl.GetPopularCourses)
		courses.GET("/:id", ctrl.GetCourse)
		courses.GET("/:id/full", ctrl.GetCourseWithMaterials)
		courses.PUT("/:id", ctrl.UpdateCourse)
		courses.DELETE("/:id", ctrl.DeleteCourse)
	}
	rg.GET("/users/:id/courses", ctrl.GetUserEnrolledCourses)
}

// CreateCourse godoc
// @Summary Create a course
// @Tags Courses
// @Accept json
// @Produce json
// @Param course body dto.CreateCourseRequest true "Course data"
// @Success 201 {object} model.Course
// @Router /courses [post]
func (ctrl *CourseController) CreateCourse(c *gin.Context) {
	var req dto.CreateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}
	course, err := ctrl.courseService.CreateCourse(req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusCreated, course)
}

func (ctrl *CourseController) GetAllCourses(c *gin.Context) {
	courses, err := ctrl.courseService.GetAllCourses()
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, courses)
}

// GetPopularCourses godoc
// @Summary List courses ranked by enrollment
// @Tags Courses
// @Produce json
// @Param limit query int false "Maximum number of courses (default 5)"
// @Success 200 {array} repository.PopularCourse
// @Router /courses/popular [get]
func (ctrl *CourseController) GetPopularCourses(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "5"))
	courses, err := ctrl.courseService.GetPopularCourses(limit)
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, courses)
}

func (ctrl *CourseController) GetCourse(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}
	course, err := ctrl.courseService.GetCourseByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, course)
}

// GetCourseWithMaterials godoc
// @Summary Get a course together with its ordered materials
// @Tags Courses
// @Produce json
// @Param id path int true "Course ID"
// @Success 200 {object} model.Course
// @Failure 404 {object} dto.ErrorResponse
// @Router /courses/{id}/full [get]
func (ctrl *CourseController) GetCourseWithMaterials(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}
	course, err := ctrl.courseService.GetCourseWithMaterials(id)
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, course)
}

func (ctrl *CourseController) UpdateCourse(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}
	course, err := ctrl.courseService.UpdateCourse(id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, course)
}

// GetUserEnrolledCourses godoc
// @Summary List courses a user has activity in
// @Tags Courses
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {array} model.Course
// @Router /users/{id}/courses [get]
func (ctrl *CourseController) GetUserEnrolledCourses(c *gin.Context) {
	userID, ok := uintParam(c, "id")
	if !ok {
		return
	}
	courses, err := ctrl.courseService.GetUserEnrolledCourses(userID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, courses)
}

func (ctrl *CourseController) DeleteCourse(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}
	if err := ctrl.courseService.DeleteCourse(id); err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, gin.H{"deleted": id})
}
