package controller

import (
	"net/http"

	"github.com/edumobile/edu-api/internal/dto"
	"github.com/edumobile/edu-api/internal/service"
	"github.com/gin-gonic/gin"
)

type QuestionController struct {
	questionService service.QuestionService
}

func NewQuestionController(questionService service.QuestionService) *QuestionController {
	return &QuestionController{questionService: questionService}
}

func (ctrl *QuestionController) RegisterRoutes(rg *gin.RouterGroup) {
	questions := rg.Group("/questions")
	{
		questions.POST("", ctrl.CreateQuestion)
		questions.GET("/:id", ctrl.GetQuestion)
		questions.GET("/:id/full", ctrl.GetQuestionWithOptions)
		questions.PUT("/:id", ctrl.UpdateQuestion)
		questions.DELETE("/:id", ctrl.DeleteQuestion)
		questions.POST("/:id/options", ctrl.AddAnswerOption)
		questions.GET("/:id/options", ctrl.GetAnswerOptions)
	}
	options := rg.Group("/options")
	{
		options.PUT("/:id", ctrl.UpdateAnswerOption)
		options.DELETE("/:id", ctrl.DeleteAnswerOption)
	}
	rg.GET("/tests/:id/questions", ctrl.GetQuestionsByTest)
}

// CreateQuestion godoc
// @Summary Create a question, optionally with its answer options
// @Tags Questions
// @Accept json
// @Produce json
// @Param question body dto.CreateQuestionRequest true "Question data"
// @Success 201 {object} model.Question
// @Failure 404 {object} dto.ErrorResponse "Test not found"
// @Router /questions [post]
func (ctrl *QuestionController) CreateQuestion(c *gin.Context) {
	var req dto.CreateQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}
	question, err := ctrl.questionService.CreateQuestion(req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusCreated, question)
}

func (ctrl *QuestionController) GetQuestion(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}
	question, err := ctrl.questionService.GetQuestionByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, question)
}

func (ctrl *QuestionController) GetQuestionWithOptions(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}
	question, err := ctrl.questionService.GetQuestionWithOptions(id)
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, question)
}

func (ctrl *QuestionController) GetQuestionsByTest(c *gin.Context) {
	testID, ok := uintParam(c, "id")
	if !ok {
		return
	}
	questions, err := ctrl.questionService.GetQuestionsByTestID(testID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, questions)
}

func (ctrl *QuestionController) UpdateQuestion(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}
	question, err := ctrl.questionService.UpdateQuestion(id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, question)
}

// AddAnswerOption godoc
// @Summary Add an answer option to a question
// @Tags Questions
// @Accept json
// @Produce json
// @Param id path int true "Question ID"
// @Param option body dto.CreateAnswerOptionRequest true "Option data"
// @Success 201 {object} model.AnswerOption
// @Failure 404 {object} dto.ErrorResponse "Question not found"
// @Router /questions/{id}/options [post]
func (ctrl *QuestionController) AddAnswerOption(c *gin.Context) {
	questionID, ok := uintParam(c, "id")
	if !ok {
		return
	}
	var req dto.CreateAnswerOptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}
	option, err := ctrl.questionService.AddAnswerOption(questionID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusCreated, option)
}

func (ctrl *QuestionController) GetAnswerOptions(c *gin.Context) {
	questionID, ok := uintParam(c, "id")
	if !ok {
		return
	}
	options, err := ctrl.questionService.GetAnswerOptions(questionID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, options)
}

func (ctrl *QuestionController) UpdateAnswerOption(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateAnswerOptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}
	option, err := ctrl.questionService.UpdateAnswerOption(id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, option)
}

func (ctrl *QuestionController) DeleteAnswerOption(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}
	if err := ctrl.questionService.DeleteAnswerOption(id); err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, gin.H{"deleted": id})
}

func (ctrl *QuestionController) DeleteQuestion(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}
	if err := ctrl.questionService.DeleteQuestion(id); err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, gin.H{"deleted": id})
}
