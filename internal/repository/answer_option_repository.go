package repository

import (
	"github.com/edumobile/edu-api/internal/model"
	"gorm.io/gorm"
)

type AnswerOptionRepository interface {
	Create(option *model.AnswerOption) error
	FindByID(id uint) (*model.AnswerOption, error)
	FindByQuestionID(questionID uint) ([]model.AnswerOption, error)
	Update(option *model.AnswerOption) error
	Delete(id uint) error
}

type answerOptionRepository struct {
	db *gorm.DB
}

func NewAnswerOptionRepository(db *gorm.DB) AnswerOptionRepository {
	return &answerOptionRepository{db: db}
}

func (r *answerOptionRepository) Create(option *model.AnswerOption) error {
	return r.db.Create(option).Error
}

func (r *answerOptionRepository) FindByID(id uint) (*model.AnswerOption, error) {
	var option model.AnswerOption
	if err := r.db.First(&option, id).Error; err != nil {
		return nil, translateNotFound(err)
	}
	return &option, nil
}

func (r *answerOptionRepository) FindByQuestionID(questionID uint) ([]model.AnswerOption, error) {
	var options []model.AnswerOption
	err := r.db.Where("question_id = ?", questionID).Order("order_index ASC").Find(&options).Error
	if err != nil {
		return nil, err
	}
	return options, nil
}

func (r *answerOptionRepository) Update(option *model.AnswerOption) error {
	return r.db.Save(option).Error
}

func (r *answerOptionRepository) Delete(id uint) error {
	res := r.db.Delete(&model.AnswerOption{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return translateNotFound(gorm.ErrRecordNotFound)
	}
	return nil
}
