package repository

import (
	"github.com/edumobile/edu-api/internal/model"
	"gorm.io/gorm"
)

// AttemptScore carries the raw counts behind an attempt's score. The
// percentage itself is computed by the quiz service.
type AttemptScore struct {
	TotalAnswers   int64 `json:"total_answers" gorm:"column:total_answers"`
	CorrectAnswers int64 `json:"correct_answers" gorm:"column:correct_answers"`
}

type UserAnswerRepository interface {
	Create(answer *model.UserAnswer) error
	GetAttemptScore(attemptID uint) (*AttemptScore, error)
}

type userAnswerRepository struct {
	db *gorm.DB
}

func NewUserAnswerRepository(db *gorm.DB) UserAnswerRepository {
	return &userAnswerRepository{db: db}
}

func (r *userAnswerRepository) Create(answer *model.UserAnswer) error {
	return r.db.Create(answer).Error
}

// GetAttemptScore counts every submitted row; free-text answers join to no
// option and therefore count as not correct. Zero rows yield a zero struct.
func (r *userAnswerRepository) GetAttemptScore(attemptID uint) (*AttemptScore, error) {
	var score AttemptScore
	err := r.db.Model(&model.UserAnswer{}).
		Select(`COUNT(*) AS total_answers,
			COUNT(CASE WHEN ao.is_correct = true THEN 1 END) AS correct_answers`).
		Joins("LEFT JOIN answer_options ao ON ao.id = user_answers.selected_option_id").
		Where("user_answers.attempt_id = ?", attemptID).
		Scan(&score).Error
	if err != nil {
		return nil, err
	}
	return &score, nil
}
