package repository

import (
	"errors"
	"time"

	"github.com/edumobile/edu-api/internal/apperrors"
	"github.com/edumobile/edu-api/internal/model"
	"gorm.io/gorm"
)

type QuizAttemptRepository interface {
	Create(attempt *model.QuizAttempt) error
	FindByID(id uint) (*model.QuizAttempt, error)
	// GetActiveAttempt returns the single open attempt for the pair, or
	// (nil, nil) when none exists.
	GetActiveAttempt(userID, testID uint) (*model.QuizAttempt, error)
	Finish(id uint, score int, finishedAt time.Time) (*model.QuizAttempt, error)
	FindByUserAndTest(userID, testID uint) ([]model.QuizAttempt, error)
	FindWithAnswers(id uint) (*model.QuizAttempt, error)
}

type quizAttemptRepository struct {
	db *gorm.DB
}

func NewQuizAttemptRepository(db *gorm.DB) QuizAttemptRepository {
	return &quizAttemptRepository{db: db}
}

func (r *quizAttemptRepository) Create(attempt *model.QuizAttempt) error {
	// The partial unique index on (user_id, test_id) WHERE finished_at IS NULL
	// makes a concurrent duplicate insert surface as gorm.ErrDuplicatedKey.
	err := r.db.Create(attempt).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return apperrors.ErrAlreadyExists
	}
	return err
}

func (r *quizAttemptRepository) FindByID(id uint) (*model.QuizAttempt, error) {
	var attempt model.QuizAttempt
	if err := r.db.First(&attempt, id).Error; err != nil {
		return nil, translateNotFound(err)
	}
	return &attempt, nil
}

func (r *quizAttemptRepository) GetActiveAttempt(userID, testID uint) (*model.QuizAttempt, error) {
	var attempt model.QuizAttempt
	err := r.db.
		Where("user_id = ? AND test_id = ? AND finished_at IS NULL", userID, testID).
		First(&attempt).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &attempt, nil
}

func (r *quizAttemptRepository) Finish(id uint, score int, finishedAt time.Time) (*model.QuizAttempt, error) {
	res := r.db.Model(&model.QuizAttempt{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"finished_at": finishedAt, "score": score})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, translateNotFound(gorm.ErrRecordNotFound)
	}
	return r.FindByID(id)
}

func (r *quizAttemptRepository) FindByUserAndTest(userID, testID uint) ([]model.QuizAttempt, error) {
	var attempts []model.QuizAttempt
	err := r.db.
		Where("user_id = ? AND test_id = ?", userID, testID).
		Order("started_at DESC").
		Find(&attempts).Error
	if err != nil {
		return nil, err
	}
	return attempts, nil
}

func (r *quizAttemptRepository) FindWithAnswers(id uint) (*model.QuizAttempt, error) {
	var attempt model.QuizAttempt
	err := r.db.
		Preload("Answers", func(db *gorm.DB) *gorm.DB {
			return db.Order("user_answers.id ASC")
		}).
		Preload("Answers.SelectedOption").
		First(&attempt, id).Error
	if err != nil {
		return nil, translateNotFound(err)
	}
	return &attempt, nil
}
