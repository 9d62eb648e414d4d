package service

import (
	"errors"
	"fmt"

	"github.com/edumobile/edu-api/internal/apperrors"
	"github.com/edumobile/edu-api/internal/dto"
	"github.com/edumobile/edu-api/internal/model"
	"github.com/edumobile/edu-api/internal/repository"
)

type TestService interface {
	CreateTest(req dto.CreateTestRequest) (*model.Test, error)
	GetTestByID(id uint) (*model.Test, error)
	GetTestsByCourseID(courseID uint) ([]model.Test, error)
	UpdateTest(id uint, req dto.UpdateTestRequest) (*model.Test, error)
	DeleteTest(id uint) error
	GetTestWithQuestions(id uint) (*model.Test, error)
}

type testService struct {
	testRepo   repository.TestRepository
	courseRepo repository.CourseRepository
}

func NewTestService(testRepo repository.TestRepository, courseRepo repository.CourseRepository) TestService {
	return &testService{testRepo: testRepo, courseRepo: courseRepo}
}

func (s *testService) CreateTest(req dto.CreateTestRequest) (*model.Test, error) {
	if _, err := s.courseRepo.FindByID(req.CourseID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("course not found: %w", apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("looking up course %d: %w", req.CourseID, err)
	}

	test := &model.Test{
		CourseID:         req.CourseID,
		Title:            req.Title,
		Description:      req.Description,
		MaxAttempts:      req.MaxAttempts,
		PassingScore:     req.PassingScore,
		TimeLimitMinutes: req.TimeLimitMinutes,
	}
	if err := s.testRepo.Create(test); err != nil {
		return nil, fmt.Errorf("creating test: %w", err)
	}
	return test, nil
}

func (s *testService) GetTestByID(id uint) (*model.Test, error) {
	test, err := s.testRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("test not found: %w", apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("looking up test %d: %w", id, err)
	}
	return test, nil
}

func (s *testService) GetTestsByCourseID(courseID uint) ([]model.Test, error) {
	tests, err := s.testRepo.FindByCourseID(courseID)
	if err != nil {
		return nil, fmt.Errorf("listing tests for course %d: %w", courseID, err)
	}
	return tests, nil
}

func (s *testService) UpdateTest(id uint, req dto.UpdateTestRequest) (*model.Test, error) {
	test, err := s.GetTestByID(id)
	if err != nil {
		return nil, err
	}
	if req.Title != nil {
		test.Title = *req.Title
	}
	if req.Description != nil {
		test.Description = *req.Description
	}
	if req.MaxAttempts != nil {
		test.MaxAttempts = *req.MaxAttempts
	}
	if req.PassingScore != nil {
		test.PassingScore = *req.PassingScore
	}
	if req.TimeLimitMinutes != nil {
		test.TimeLimitMinutes = *req.TimeLimitMinutes
	}
	if err := s.testRepo.Update(test); err != nil {
		return nil, fmt.Errorf("updating test %d: %w", id, err)
	}
	return test, nil
}

func (s *testService) DeleteTest(id uint) error {
	if err := s.testRepo.Delete(id); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("test not found: %w", apperrors.ErrNotFound)
		}
		return fmt.Errorf("deleting test %d: %w", id, err)
	}
	return nil
}

func (s *testService) GetTestWithQuestions(id uint) (*model.Test, error) {
	test, err := s.testRepo.FindWithQuestions(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("test not found: %w", apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("loading test %d: %w", id, err)
	}
	return test, nil
}
