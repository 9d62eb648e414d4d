package service

import (
	"errors"
	"fmt"

	"github.com/edumobile/edu-api/internal/apperrors"
	"github.com/edumobile/edu-api/internal/dto"
	"github.com/edumobile/edu-api/internal/model"
	"github.com/edumobile/edu-api/internal/repository"
)

type MaterialService interface {
	CreateMaterial(req dto.CreateMaterialRequest) (*model.Material, error)
	GetMaterialByID(id uint) (*model.Material, error)
	GetMaterialsByCourseID(courseID uint) ([]model.Material, error)
	UpdateMaterial(id uint, req dto.UpdateMaterialRequest) (*model.Material, error)
	DeleteMaterial(id uint) error
	GetNextMaterial(courseID uint, currentOrderIndex int) (*model.Material, error)
}

type materialService struct {
	materialRepo repository.MaterialRepository
	courseRepo   repository.CourseRepository
}

func NewMaterialService(materialRepo repository.MaterialRepository, courseRepo repository.CourseRepository) MaterialService {
	return &materialService{materialRepo: materialRepo, courseRepo: courseRepo}
}

func (s *materialService) CreateMaterial(req dto.CreateMaterialRequest) (*model.Material, error) {
	if _, err := s.courseRepo.FindByID(req.CourseID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("course not found: %w", apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("looking up course %d: %w", req.CourseID, err)
	}

	material := &model.Material{
		CourseID:    req.CourseID,
		Title:       req.Title,
		ContentURL:  req.ContentURL,
		ContentType: req.ContentType,
		OrderIndex:  req.OrderIndex,
	}
	if err := s.materialRepo.Create(material); err != nil {
		return nil, fmt.Errorf("creating material: %w", err)
	}
	return material, nil
}

func (s *materialService) GetMaterialByID(id uint) (*model.Material, error) {
	material, err := s.materialRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("material not found: %w", apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("looking up material %d: %w", id, err)
	}
	return material, nil
}

func (s *materialService) GetMaterialsByCourseID(courseID uint) ([]model.Material, error) {
	materials, err := s.materialRepo.FindByCourseID(courseID)
	if err != nil {
		return nil, fmt.Errorf("listing materials for course %d: %w", courseID, err)
	}
	return materials, nil
}

func (s *materialService) UpdateMaterial(id uint, req dto.UpdateMaterialRequest) (*model.Material, error) {
	material, err := s.GetMaterialByID(id)
	if err != nil {
		return nil, err
	}
	if req.Title != nil {
		material.Title = *req.Title
	}
	if req.ContentURL != nil {
		material.ContentURL = *req.ContentURL
	}
	if req.ContentType != nil {
		material.ContentType = *req.ContentType
	}
	if req.OrderIndex != nil {
		material.OrderIndex = *req.OrderIndex
	}
	if err := s.materialRepo.Update(material); err != nil {
		return nil, fmt.Errorf("updating material %d: %w", id, err)
	}
	return material, nil
}

func (s *materialService) DeleteMaterial(id uint) error {
	if err := s.materialRepo.Delete(id); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("material not found: %w", apperrors.ErrNotFound)
		}
		return fmt.Errorf("deleting material %d: %w", id, err)
	}
	return nil
}

// GetNextMaterial returns nil at the end of the course.
func (s *materialService) GetNextMaterial(courseID uint, currentOrderIndex int) (*model.Material, error) {
	material, err := s.materialRepo.GetNextMaterial(courseID, currentOrderIndex)
	if err != nil {
		return nil, fmt.Errorf("looking up next material: %w", err)
	}
	return material, nil
}
