package repository

import (
	"github.com/edumobile/edu-api/internal/model"
	"gorm.io/gorm"
)

// PopularCourse is a course annotated with how many users have progress rows in it.
type PopularCourse struct {
	model.Course
	EnrollmentCount int64 `json:"enrollment_count" gorm:"column:enrollment_count"`
}

type CourseRepository interface {
	Create(course *model.Course) error
	FindByID(id uint) (*model.Course, error)
	FindAll() ([]model.Course, error)
	Update(course *model.Course) error
	Delete(id uint) error
	FindWithMaterials(id uint) (*model.Course, error)
	GetPopularCourses(limit int) ([]PopularCourse, error)
	GetUserEnrolledCourses(userID uint) ([]model.Course, error)
}

type courseRepository struct {
	db *gorm.DB
}

func NewCourseRepository(db *gorm.DB) CourseRepository {
	return &courseRepository{db: db}
}

func (r *courseRepository) Create(course *model.Course) error {
	return r.db.Create(course).Error
}

func (r *courseRepository) FindByID(id uint) (*model.Course, error) {
	var course model.Course
	if err := r.db.First(&course, id).Error; err != nil {
		return nil, translateNotFound(err)
	}
	return &course, nil
}

func (r *courseRepository) FindAll() ([]model.Course, error) {
	var courses []model.Course
	if err := r.db.Order("created_at DESC").Find(&courses).Error; err != nil {
		return nil, err
	}
	return courses, nil
}

func (r *courseRepository) Update(course *model.Course) error {
	return r.db.Save(course).Error
}

func (r *courseRepository) Delete(id uint) error {
	res := r.db.Delete(&model.Course{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return translateNotFound(gorm.ErrRecordNotFound)
	}
	return nil
}

func (r *courseRepository) FindWithMaterials(id uint) (*model.Course, error) {
	var course model.Course
	err := r.db.Preload("Materials", func(db *gorm.DB) *gorm.DB {
		return db.Order("materials.order_index ASC")
	}).First(&course, id).Error
	if err != nil {
		return nil, translateNotFound(err)
	}
	return &course, nil
}

func (r *courseRepository) GetPopularCourses(limit int) ([]PopularCourse, error) {
	var results []PopularCourse
	err := r.db.Model(&model.Course{}).
		Select("courses.*, COUNT(DISTINCT up.user_id) AS enrollment_count").
		Joins("LEFT JOIN user_progress up ON up.course_id = courses.id").
		Group("courses.id").
		Order("enrollment_count DESC").
		Limit(limit).
		Scan(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}

func (r *courseRepository) GetUserEnrolledCourses(userID uint) ([]model.Course, error) {
	var courses []model.Course
	err := r.db.
		Joins("JOIN user_progress up ON up.course_id = courses.id").
		Where("up.user_id = ?", userID).
		Group("courses.id").
		Find(&courses).Error
	if err != nil {
		return nil, err
	}
	return courses, nil
}
