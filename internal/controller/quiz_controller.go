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

type QuizController struct {
	quizService service.QuizService
}

func NewQuizController(quizService service.QuizService) *QuizController {
	return &QuizController{quizService: quizService}
}

func (ctrl *QuizController) RegisterRoutes(rg *gin.RouterGroup) {
	quiz := rg.Group("/quiz")
	{
		quiz.POST("/users/:user_id/tests/:test_id/start", ctrl.StartTest)
		quiz.POST("/answers", ctrl.SubmitAnswer)
		quiz.POST("/attempts/:attempt_id/finish", ctrl.FinishAttempt)
		quiz.GET("/users/:user_id/tests/:test_id/attempts", ctrl.GetUserAttempts)
		quiz.GET("/attempts/:attempt_id", ctrl.GetAttemptDetails)
	}
}

// StartTest godoc
// @Summary Start a quiz attempt
// @Description Returns the open attempt for the user and test, creating one if none exists. Calling again while an attempt is open returns the same attempt.
// @Tags Quiz
// @Produce json
// @Param user_id path int true "User ID"
// @Param test_id path int true "Test ID"
// @Success 200 {object} model.QuizAttempt
// @Failure 404 {object} dto.ErrorResponse "Test not found"
// @Router /quiz/users/{user_id}/tests/{test_id}/start [post]
func (ctrl *QuizController) StartTest(c *gin.Context) {
	userID, ok := uintParam(c, "user_id")
	if !ok {
		return
	}
	testID, ok := uintParam(c, "test_id")
	if !ok {
		return
	}

	attempt, err := ctrl.quizService.StartTest(userID, testID)
	if err != nil {
		log.Warn().Err(err).Uint("userID", userID).Uint("testID", testID).Msg("StartTest failed")
		respondError(c, err)
		return
	}
	metrics.AttemptsStarted.WithLabelValues(strconv.FormatUint(uint64(testID), 10)).Inc()
	respondSuccess(c, http.StatusOK, attempt)
}

// SubmitAnswer godoc
// @Summary Submit an answer within an open attempt
// @Description Records one answer row. Rejected once the attempt is finished.
// @Tags Quiz
// @Accept json
// @Produce json
// @Param answer body dto.SubmitAnswerRequest true "Answer payload"
// @Success 200 {object} model.UserAnswer
// @Failure 400 {object} dto.ErrorResponse "Attempt already finished"
// @Failure 404 {object} dto.ErrorResponse "Attempt not found"
// @Router /quiz/answers [post]
func (ctrl *QuizController) SubmitAnswer(c *gin.Context) {
	var req dto.SubmitAnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	answer, err := ctrl.quizService.SubmitAnswer(req.AttemptID, req.QuestionID, req.SelectedOptionID, req.AnswerText)
	if err != nil {
		log.Warn().Err(err).Uint("attemptID", req.AttemptID).Msg("SubmitAnswer failed")
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, answer)
}

// FinishAttempt godoc
// @Summary Finish an open attempt and compute its score
// @Tags Quiz
// @Produce json
// @Param attempt_id path int true "Attempt ID"
// @Success 200 {object} model.QuizAttempt
// @Failure 400 {object} dto.ErrorResponse "Attempt already finished"
// @Failure 404 {object} dto.ErrorResponse "Attempt not found"
// @Router /quiz/attempts/{attempt_id}/finish [post]
func (ctrl *QuizController) FinishAttempt(c *gin.Context) {
	attemptID, ok := uintParam(c, "attempt_id")
	if !ok {
		return
	}

	attempt, err := ctrl.quizService.FinishAttempt(attemptID)
	if err != nil {
		log.Warn().Err(err).Uint("attemptID", attemptID).Msg("FinishAttempt failed")
		respondError(c, err)
		return
	}
	metrics.AttemptsFinished.WithLabelValues(strconv.FormatUint(uint64(attempt.TestID), 10)).Inc()
	if attempt.Score != nil {
		metrics.AttemptScores.Observe(float64(*attempt.Score))
	}
	respondSuccess(c, http.StatusOK, attempt)
}

// GetUserAttempts godoc
// @Summary List a user's attempts for a test, newest first
// @Tags Quiz
// @Produce json
// @Param user_id path int true "User ID"
// @Param test_id path int true "Test ID"
// @Success 200 {array} model.QuizAttempt
// @Router /quiz/users/{user_id}/tests/{test_id}/attempts [get]
func (ctrl *QuizController) GetUserAttempts(c *gin.Context) {
	userID, ok := uintParam(c, "user_id")
	if !ok {
		return
	}
	testID, ok := uintParam(c, "test_id")
	if !ok {
		return
	}

	attempts, err := ctrl.quizService.GetUserAttempts(userID, testID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, attempts)
}

// GetAttemptDetails godoc
// @Summary Get an attempt with its answers and their correctness
// @Tags Quiz
// @Produce json
// @Param attempt_id path int true "Attempt ID"
// @Success 200 {object} dto.AttemptDetailResponse
// @Failure 404 {object} dto.ErrorResponse "Attempt not found"
// @Router /quiz/attempts/{attempt_id} [get]
func (ctrl *QuizController) GetAttemptDetails(c *gin.Context) {
	attemptID, ok := uintParam(c, "attempt_id")
	if !ok {
		return
	}

	details, err := ctrl.quizService.GetAttemptDetails(attemptID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, details)
}
