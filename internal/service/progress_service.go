package service

import (
	"errors"
	"fmt"

	"github.com/edumobile/edu-api/internal/apperrors"
	"github.com/edumobile/edu-api/internal/model"
	"github.com/edumobile/edu-api/internal/repository"
)

type ProgressService interface {
	MarkMaterialAsCompleted(userID, courseID, materialID uint) (*model.Progress, error)
	UpdateMaterialAccess(userID, materialID uint) error
	GetCourseProgress(userID, courseID uint) (*repository.CourseProgress, error)
	GetUserOverallProgress(userID uint) (*repository.OverallProgress, error)
	GetRecentActivities(userID uint, limit int) ([]model.Progress, error)
}

type progressService struct {
	progressRepo repository.ProgressRepository
	materialRepo repository.MaterialRepository
}

func NewProgressService(progressRepo repository.ProgressRepository, materialRepo repository.MaterialRepository) ProgressService {
	return &progressService{progressRepo: progressRepo, materialRepo: materialRepo}
}

func (s *progressService) MarkMaterialAsCompleted(userID, courseID, materialID uint) (*model.Progress, error) {
	if _, err := s.materialRepo.FindByID(materialID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("material not found: %w", apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("looking up material %d: %w", materialID, err)
	}

	progress, err := s.progressRepo.MarkCompleted(userID, courseID, materialID)
	if err != nil {
		return nil, fmt.Errorf("marking material completed: %w", err)
	}
	return progress, nil
}

func (s *progressService) UpdateMaterialAccess(userID, materialID uint) error {
	if err := s.progressRepo.TouchAccess(userID, materialID); err != nil {
		return fmt.Errorf("updating material access: %w", err)
	}
	return nil
}

func (s *progressService) GetCourseProgress(userID, courseID uint) (*repository.CourseProgress, error) {
	progress, err := s.progressRepo.GetCourseProgress(userID, courseID)
	if err != nil {
		return nil, fmt.Errorf("computing course progress: %w", err)
	}
	return progress, nil
}

func (s *progressService) GetUserOverallProgress(userID uint) (*repository.OverallProgress, error) {
	progress, err := s.progressRepo.GetUserOverallProgress(userID)
	if err != nil {
		return nil, fmt.Errorf("computing overall progress: %w", err)
	}
	return progress, nil
}

func (s *progressService) GetRecentActivities(userID uint, limit int) ([]model.Progress, error) {
	if limit <= 0 {
		limit = 10
	}
	activities, err := s.progressRepo.GetRecentActivities(userID, limit)
	if err != nil {
		return nil, fmt.Errorf("listing recent activities: %w", err)
	}
	return activities, nil
}
