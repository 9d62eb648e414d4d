package service

import (
	"errors"
	"fmt"

	"github.com/edumobile/edu-api/internal/apperrors"
	"github.com/edumobile/edu-api/internal/dto"
	"github.com/edumobile/edu-api/internal/model"
	"github.com/edumobile/edu-api/internal/repository"
)

type QuestionService interface {
	CreateQuestion(req dto.CreateQuestionRequest) (*model.Question, error)
	GetQuestionByID(id uint) (*model.Question, error)
	GetQuestionsByTestID(testID uint) ([]model.Question, error)
	UpdateQuestion(id uint, req dto.UpdateQuestionRequest) (*model.Question, error)
	DeleteQuestion(id uint) error
	GetQuestionWithOptions(id uint) (*model.Question, error)

	AddAnswerOption(questionID uint, req dto.CreateAnswerOptionRequest) (*model.AnswerOption, error)
	GetAnswerOptions(questionID uint) ([]model.AnswerOption, error)
	UpdateAnswerOption(id uint, req dto.UpdateAnswerOptionRequest) (*model.AnswerOption, error)
	DeleteAnswerOption(id uint) error
}

type questionService struct {
	questionRepo repository.QuestionRepository
	optionRepo   repository.AnswerOptionRepository
	testRepo     repository.TestRepository
}

func NewQuestionService(
	questionRepo repository.QuestionRepository,
	optionRepo repository.AnswerOptionRepository,
	testRepo repository.TestRepository,
) QuestionService {
	return &questionService{questionRepo: questionRepo, optionRepo: optionRepo, testRepo: testRepo}
}

func (s *questionService) CreateQuestion(req dto.CreateQuestionRequest) (*model.Question, error) {
	if _, err := s.testRepo.FindByID(req.TestID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("test not found: %w", apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("looking up test %d: %w", req.TestID, err)
	}

	question := &model.Question{
		TestID:       req.TestID,
		QuestionText: req.QuestionText,
		QuestionType: req.QuestionType,
		OrderIndex:   req.OrderIndex,
	}
	for _, opt := range req.Options {
		question.Options = append(question.Options, model.AnswerOption{
			OptionText: opt.OptionText,
			IsCorrect:  opt.IsCorrect,
			OrderIndex: opt.OrderIndex,
		})
	}
	// gorm creates the associated options together with the question.
	if err := s.questionRepo.Create(question); err != nil {
		return nil, fmt.Errorf("creating question: %w", err)
	}
	return question, nil
}

func (s *questionService) GetQuestionByID(id uint) (*model.Question, error) {
	question, err := s.questionRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("question not found: %w", apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("looking up question %d: %w", id, err)
	}
	return question, nil
}

func (s *questionService) GetQuestionsByTestID(testID uint) ([]model.Question, error) {
	questions, err := s.questionRepo.FindByTestID(testID)
	if err != nil {
		return nil, fmt.Errorf("listing questions for test %d: %w", testID, err)
	}
	return questions, nil
}

func (s *questionService) UpdateQuestion(id uint, req dto.UpdateQuestionRequest) (*model.Question, error) {
	question, err := s.GetQuestionByID(id)
	if err != nil {
		return nil, err
	}
	if req.QuestionText != nil {
		question.QuestionText = *req.QuestionText
	}
	if req.QuestionType != nil {
		question.QuestionType = *req.QuestionType
	}
	if req.OrderIndex != nil {
		question.OrderIndex = *req.OrderIndex
	}
	if err := s.questionRepo.Update(question); err != nil {
		return nil, fmt.Errorf("updating question %d: %w", id, err)
	}
	return question, nil
}

func (s *questionService) DeleteQuestion(id uint) error {
	if err := s.questionRepo.Delete(id); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("question not found: %w", apperrors.ErrNotFound)
		}
		return fmt.Errorf("deleting question %d: %w", id, err)
	}
	return nil
}

func (s *questionService) GetQuestionWithOptions(id uint) (*model.Question, error) {
	question, err := s.questionRepo.FindWithOptions(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("question not found: %w", apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("loading question %d: %w", id, err)
	}
	return question, nil
}

func (s *questionService) AddAnswerOption(questionID uint, req dto.CreateAnswerOptionRequest) (*model.AnswerOption, error) {
	if _, err := s.GetQuestionByID(questionID); err != nil {
		return nil, err
	}
	option := &model.AnswerOption{
		QuestionID: questionID,
		OptionText: req.OptionText,
		IsCorrect:  req.IsCorrect,
		OrderIndex: req.OrderIndex,
	}
	if err := s.optionRepo.Create(option); err != nil {
		return nil, fmt.Errorf("creating answer option: %w", err)
	}
	return option, nil
}

func (s *questionService) GetAnswerOptions(questionID uint) ([]model.AnswerOption, error) {
	if _, err := s.GetQuestionByID(questionID); err != nil {
		return nil, err
	}
	options, err := s.optionRepo.FindByQuestionID(questionID)
	if err != nil {
		return nil, fmt.Errorf("listing options for question %d: %w", questionID, err)
	}
	return options, nil
}

func (s *questionService) UpdateAnswerOption(id uint, req dto.UpdateAnswerOptionRequest) (*model.AnswerOption, error) {
	option, err := s.optionRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("answer option not found: %w", apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("looking up answer option %d: %w", id, err)
	}
	if req.OptionText != nil {
		option.OptionText = *req.OptionText
	}
	if req.IsCorrect != nil {
		option.IsCorrect = *req.IsCorrect
	}
	if req.OrderIndex != nil {
		option.OrderIndex = *req.OrderIndex
	}
	if err := s.optionRepo.Update(option); err != nil {
		return nil, fmt.Errorf("updating answer option %d: %w", id, err)
	}
	return option, nil
}

func (s *questionService) DeleteAnswerOption(id uint) error {
	if err := s.optionRepo.Delete(id); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("answer option not found: %w", apperrors.ErrNotFound)
		}
		return fmt.Errorf("deleting answer option %d: %w", id, err)
	}
	return nil
}
