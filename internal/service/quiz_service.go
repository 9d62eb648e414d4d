package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/edumobile/edu-api/internal/apperrors"
	"github.com/edumobile/edu-api/internal/dto"
	"github.com/edumobile/edu-api/internal/model"
	"github.com/edumobile/edu-api/internal/repository"
	"github.com/rs/zerolog/log"
)

// QuizService drives the attempt lifecycle. Per (user, test) pair an attempt
// moves NoAttempt -> Open -> Finished; starting while an attempt is open
// returns that attempt unchanged, and a finished attempt is immutable.
type QuizService interface {
	StartTest(userID, testID uint) (*model.QuizAttempt, error)
	SubmitAnswer(attemptID, questionID uint, selectedOptionID *uint, answerText *string) (*model.UserAnswer, error)
	FinishAttempt(attemptID uint) (*model.QuizAttempt, error)
	GetUserAttempts(userID, testID uint) ([]model.QuizAttempt, error)
	GetAttemptDetails(attemptID uint) (*dto.AttemptDetailResponse, error)
}

type quizService struct {
	attemptRepo repository.QuizAttemptRepository
	answerRepo  repository.UserAnswerRepository
	testRepo    repository.TestRepository
	now         func() time.Time
}

func NewQuizService(
	attemptRepo repository.QuizAttemptRepository,
	answerRepo repository.UserAnswerRepository,
	testRepo repository.TestRepository,
) QuizService {
	return &quizService{
		attemptRepo: attemptRepo,
		answerRepo:  answerRepo,
		testRepo:    testRepo,
		now:         time.Now,
	}
}

// StartTest returns the open attempt for (userID, testID), creating one if
// none exists. Safe to retry: a duplicate call, concurrent or not, yields the
// same attempt row.
func (s *quizService) StartTest(userID, testID uint) (*model.QuizAttempt, error) {
	if _, err := s.testRepo.FindByID(testID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("test not found: %w", apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("looking up test %d: %w", testID, err)
	}

	active, err := s.attemptRepo.GetActiveAttempt(userID, testID)
	if err != nil {
		return nil, fmt.Errorf("looking up active attempt: %w", err)
	}
	if active != nil {
		log.Info().Uint("userID", userID).Uint("testID", testID).Uint("attemptID", active.ID).
			Msg("StartTest: returning existing open attempt")
		return active, nil
	}

	attempt := &model.QuizAttempt{
		UserID:    userID,
		TestID:    testID,
		StartedAt: s.now(),
	}
	err = s.attemptRepo.Create(attempt)
	if errors.Is(err, apperrors.ErrAlreadyExists) {
		// A concurrent StartTest won the insert; the partial unique index on
		// open attempts guarantees exactly one row, so return that one.
		active, err = s.attemptRepo.GetActiveAttempt(userID, testID)
		if err != nil {
			return nil, fmt.Errorf("resolving concurrent start: %w", err)
		}
		if active == nil {
			return nil, fmt.Errorf("resolving concurrent start: open attempt vanished")
		}
		return active, nil
	}
	if err != nil {
		return nil, fmt.Errorf("creating attempt: %w", err)
	}

	log.Info().Uint("userID", userID).Uint("testID", testID).Uint("attemptID", attempt.ID).
		Msg("StartTest: new attempt started")
	return attempt, nil
}

// SubmitAnswer records one answer row for an open attempt. Answers accumulate;
// re-answering a question adds a row rather than replacing the previous one,
// and every row counts at scoring time.
func (s *quizService) SubmitAnswer(attemptID, questionID uint, selectedOptionID *uint, answerText *string) (*model.UserAnswer, error) {
	attempt, err := s.attemptRepo.FindByID(attemptID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("attempt not found: %w", apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("looking up attempt %d: %w", attemptID, err)
	}
	if attempt.Finished() {
		return nil, fmt.Errorf("attempt already finished: %w", apperrors.ErrInvalidState)
	}

	answer := &model.UserAnswer{
		AttemptID:        attemptID,
		QuestionID:       questionID,
		SelectedOptionID: selectedOptionID,
		AnswerText:       answerText,
	}
	if err := s.answerRepo.Create(answer); err != nil {
		return nil, fmt.Errorf("saving answer: %w", err)
	}
	return answer, nil
}

// FinishAttempt computes the score over the answers present right now, then
// stamps finished_at and score exactly once. Finishing twice is rejected so a
// recorded score is never overwritten.
func (s *quizService) FinishAttempt(attemptID uint) (*model.QuizAttempt, error) {
	attempt, err := s.attemptRepo.FindByID(attemptID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("attempt not found: %w", apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("looking up attempt %d: %w", attemptID, err)
	}
	if attempt.Finished() {
		return nil, fmt.Errorf("attempt already finished: %w", apperrors.ErrInvalidState)
	}

	counts, err := s.answerRepo.GetAttemptScore(attemptID)
	if err != nil {
		return nil, fmt.Errorf("computing attempt score: %w", err)
	}
	score := ScorePercentage(counts.CorrectAnswers, counts.TotalAnswers)

	finished, err := s.attemptRepo.Finish(attemptID, score, s.now())
	if err != nil {
		return nil, fmt.Errorf("finishing attempt: %w", err)
	}

	log.Info().Uint("attemptID", attemptID).Int("score", score).
		Int64("total", counts.TotalAnswers).Int64("correct", counts.CorrectAnswers).
		Msg("FinishAttempt: attempt finished")
	return finished, nil
}

// GetUserAttempts lists every attempt, open and finished, newest first.
func (s *quizService) GetUserAttempts(userID, testID uint) ([]model.QuizAttempt, error) {
	attempts, err := s.attemptRepo.FindByUserAndTest(userID, testID)
	if err != nil {
		return nil, fmt.Errorf("listing attempts: %w", err)
	}
	return attempts, nil
}

// GetAttemptDetails returns the attempt with its answers annotated with the
// correctness of each selected option. Read-only.
func (s *quizService) GetAttemptDetails(attemptID uint) (*dto.AttemptDetailResponse, error) {
	attempt, err := s.attemptRepo.FindWithAnswers(attemptID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("attempt not found: %w", apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("loading attempt %d: %w", attemptID, err)
	}

	resp := &dto.AttemptDetailResponse{
		ID:         attempt.ID,
		UserID:     attempt.UserID,
		TestID:     attempt.TestID,
		StartedAt:  attempt.StartedAt,
		FinishedAt: attempt.FinishedAt,
		Score:      attempt.Score,
		Answers:    make([]dto.AttemptAnswerResponse, 0, len(attempt.Answers)),
	}
	for _, ans := range attempt.Answers {
		item := dto.AttemptAnswerResponse{
			ID:               ans.ID,
			QuestionID:       ans.QuestionID,
			SelectedOptionID: ans.SelectedOptionID,
			AnswerText:       ans.AnswerText,
		}
		if ans.SelectedOption != nil {
			item.SelectedOption = &ans.SelectedOption.OptionText
			item.IsCorrect = ans.SelectedOption.IsCorrect
		}
		resp.Answers = append(resp.Answers, item)
	}
	return resp, nil
}
