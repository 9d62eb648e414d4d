package service

import (
	"errors"
	"fmt"

	"github.com/edumobile/edu-api/internal/apperrors"
	"github.com/edumobile/edu-api/internal/dto"
	"github.com/edumobile/edu-api/internal/model"
	"github.com/edumobile/edu-api/internal/repository"
)

type CourseService interface {
	CreateCourse(req dto.CreateCourseRequest) (*model.Course, error)
	GetCourseByID(id uint) (*model.Course, error)
	GetAllCourses() ([]model.Course, error)
	UpdateCourse(id uint, req dto.UpdateCourseRequest) (*model.Course, error)
	DeleteCourse(id uint) error
	GetCourseWithMaterials(id uint) (*model.Course, error)
	GetPopularCourses(limit int) ([]repository.PopularCourse, error)
	GetUserEnrolledCourses(userID uint) ([]model.Course, error)
}

type courseService struct {
	courseRepo repository.CourseRepository
}

func NewCourseService(courseRepo repository.CourseRepository) CourseService {
	return &courseService{courseRepo: courseRepo}
}

func (s *courseService) CreateCourse(req dto.CreateCourseRequest) (*model.Course, error) {
	course := &model.Course{Title: req.Title, Description: req.Description}
	if err := s.courseRepo.Create(course); err != nil {
		return nil, fmt.Errorf("creating course: %w", err)
	}
	return course, nil
}

func (s *courseService) GetCourseByID(id uint) (*model.Course, error) {
	course, err := s.courseRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("course not found: %w", apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("looking up course %d: %w", id, err)
	}
	return course, nil
}

func (s *courseService) GetAllCourses() ([]model.Course, error) {
	courses, err := s.courseRepo.FindAll()
	if err != nil {
		return nil, fmt.Errorf("listing courses: %w", err)
	}
	return courses, nil
}

func (s *courseService) UpdateCourse(id uint, req dto.UpdateCourseRequest) (*model.Course, error) {
	course, err := s.GetCourseByID(id)
	if err != nil {
		return nil, err
	}
	if req.Title != nil {
		course.Title = *req.Title
	}
	if req.Description != nil {
		course.Description = *req.Description
	}
	if err := s.courseRepo.Update(course); err != nil {
		return nil, fmt.Errorf("updating course %d: %w", id, err)
	}
	return course, nil
}

func (s *courseService) DeleteCourse(id uint) error {
	if err := s.courseRepo.Delete(id); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("course not found: %w", apperrors.ErrNotFound)
		}
		return fmt.Errorf("deleting course %d: %w", id, err)
	}
	return nil
}

func (s *courseService) GetCourseWithMaterials(id uint) (*model.Course, error) {
	course, err := s.courseRepo.FindWithMaterials(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("course not found: %w", apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("loading course %d: %w", id, err)
	}
	return course, nil
}

func (s *courseService) GetPopularCourses(limit int) ([]repository.PopularCourse, error) {
	if limit <= 0 {
		limit = 5
	}
	courses, err := s.courseRepo.GetPopularCourses(limit)
	if err != nil {
		return nil, fmt.Errorf("listing popular courses: %w", err)
	}
	return courses, nil
}

// GetUserEnrolledCourses lists courses the user has progress rows in.
func (s *courseService) GetUserEnrolledCourses(userID uint) ([]model.Course, error) {
	courses, err := s.courseRepo.GetUserEnrolledCourses(userID)
	if err != nil {
		return nil, fmt.Errorf("listing enrolled courses: %w", err)
	}
	return courses, nil
}
