package repository

import (
	"errors"

	"github.com/edumobile/edu-api/internal/apperrors"
	"github.com/edumobile/edu-api/internal/model"
	"gorm.io/gorm"
)

// UserStats is the aggregate projection behind the user statistics endpoint.
// Zero-valued on users with no activity; never an error on empty joins.
type UserStats struct {
	UserID                  uint    `json:"user_id" gorm:"column:user_id"`
	EnrolledCoursesCount    int64   `json:"enrolled_courses_count" gorm:"column:enrolled_courses_count"`
	CompletedMaterialsCount int64   `json:"completed_materials_count" gorm:"column:completed_materials_count"`
	QuizAttemptsCount       int64   `json:"quiz_attempts_count" gorm:"column:quiz_attempts_count"`
	AverageScore            float64 `json:"average_score" gorm:"column:average_score"`
}

type UserRepository interface {
	Create(user *model.User) error
	FindByID(id uint) (*model.User, error)
	FindByEmail(email string) (*model.User, error)
	FindAll() ([]model.User, error)
	Update(user *model.User) error
	Delete(id uint) error
	TouchLastAccess(id uint) error
	GetStats(id uint) (*UserStats, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(user *model.User) error {
	err := r.db.Create(user).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return apperrors.ErrAlreadyExists
	}
	return err
}

func (r *userRepository) FindByID(id uint) (*model.User, error) {
	var user model.User
	if err := r.db.First(&user, id).Error; err != nil {
		return nil, translateNotFound(err)
	}
	return &user, nil
}

// FindByEmail returns (nil, nil) when no user carries the email; a missing row
// is an expected outcome during registration, not a failure.
func (r *userRepository) FindByEmail(email string) (*model.User, error) {
	var user model.User
	err := r.db.Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindAll() ([]model.User, error) {
	var users []model.User
	if err := r.db.Order("created_at DESC").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *userRepository) Update(user *model.User) error {
	return r.db.Save(user).Error
}

func (r *userRepository) Delete(id uint) error {
	res := r.db.Delete(&model.User{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return translateNotFound(gorm.ErrRecordNotFound)
	}
	return nil
}

func (r *userRepository) TouchLastAccess(id uint) error {
	return r.db.Model(&model.User{}).Where("id = ?", id).Update("updated_at", gorm.Expr("NOW()")).Error
}

func (r *userRepository) GetStats(id uint) (*UserStats, error) {
	var stats UserStats
	err := r.db.Model(&model.User{}).
		Select(`users.id AS user_id,
			COUNT(DISTINCT up.course_id) AS enrolled_courses_count,
			COUNT(DISTINCT up.material_id) AS completed_materials_count,
			COUNT(DISTINCT uqa.id) AS quiz_attempts_count,
			COALESCE(AVG(uqa.score), 0) AS average_score`).
		Joins("LEFT JOIN user_progress up ON up.user_id = users.id AND up.completed = true").
		Joins("LEFT JOIN user_quiz_attempts uqa ON uqa.user_id = users.id").
		Where("users.id = ?", id).
		Group("users.id").
		Scan(&stats).Error
	if err != nil {
		return nil, err
	}
	if stats.UserID == 0 {
		stats.UserID = id
	}
	return &stats, nil
}
