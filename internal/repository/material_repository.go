package repository

import (
	"errors"

	"github.com/edumobile/edu-api/internal/model"
	"gorm.io/gorm"
)

type MaterialRepository interface {
	Create(material *model.Material) error
	FindByID(id uint) (*model.Material, error)
	FindByCourseID(courseID uint) ([]model.Material, error)
	Update(material *model.Material) error
	Delete(id uint) error
	GetNextMaterial(courseID uint, currentOrderIndex int) (*model.Material, error)
}

type materialRepository struct {
	db *gorm.DB
}

func NewMaterialRepository(db *gorm.DB) MaterialRepository {
	return &materialRepository{db: db}
}

func (r *materialRepository) Create(material *model.Material) error {
	return r.db.Create(material).Error
}

func (r *materialRepository) FindByID(id uint) (*model.Material, error) {
	var material model.Material
	if err := r.db.First(&material, id).Error; err != nil {
		return nil, translateNotFound(err)
	}
	return &material, nil
}

func (r *materialRepository) FindByCourseID(courseID uint) ([]model.Material, error) {
	var materials []model.Material
	err := r.db.Where("course_id = ?", courseID).Order("order_index ASC").Find(&materials).Error
	if err != nil {
		return nil, err
	}
	return materials, nil
}

func (r *materialRepository) Update(material *model.Material) error {
	return r.db.Save(material).Error
}

func (r *materialRepository) Delete(id uint) error {
	res := r.db.Delete(&model.Material{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return translateNotFound(gorm.ErrRecordNotFound)
	}
	return nil
}

// GetNextMaterial returns (nil, nil) at the end of a course; running out of
// materials is navigation, not an error.
func (r *materialRepository) GetNextMaterial(courseID uint, currentOrderIndex int) (*model.Material, error) {
	var material model.Material
	err := r.db.
		Where("course_id = ? AND order_index > ?", courseID, currentOrderIndex).
		Order("order_index ASC").
		First(&material).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &material, nil
}
