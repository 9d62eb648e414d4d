package repository

import (
	"github.com/edumobile/edu-api/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CourseProgress is the per-course completion aggregate. Zero-valued for
// courses without materials; the percentage denominator is floored at one.
type CourseProgress struct {
	TotalMaterials       int64 `json:"total_materials" gorm:"column:total_materials"`
	CompletedMaterials   int64 `json:"completed_materials" gorm:"column:completed_materials"`
	CompletionPercentage int64 `json:"completion_percentage" gorm:"column:completion_percentage"`
}

// OverallProgress aggregates a user's completion across every enrolled course.
type OverallProgress struct {
	EnrolledCoursesCount        int64 `json:"enrolled_courses_count" gorm:"column:enrolled_courses_count"`
	CompletedMaterialsCount     int64 `json:"completed_materials_count" gorm:"column:completed_materials_count"`
	TotalMaterialsCount         int64 `json:"total_materials_count" gorm:"column:total_materials_count"`
	OverallCompletionPercentage int64 `json:"overall_completion_percentage" gorm:"column:overall_completion_percentage"`
}

type ProgressRepository interface {
	MarkCompleted(userID, courseID, materialID uint) (*model.Progress, error)
	TouchAccess(userID, materialID uint) error
	GetCourseProgress(userID, courseID uint) (*CourseProgress, error)
	GetUserOverallProgress(userID uint) (*OverallProgress, error)
	GetRecentActivities(userID uint, limit int) ([]model.Progress, error)
}

type progressRepository struct {
	db *gorm.DB
}

func NewProgressRepository(db *gorm.DB) ProgressRepository {
	return &progressRepository{db: db}
}

// MarkCompleted upserts on the (user_id, material_id) unique constraint:
// completing an already-tracked material flips the flag and refreshes the
// access time instead of inserting a duplicate row.
func (r *progressRepository) MarkCompleted(userID, courseID, materialID uint) (*model.Progress, error) {
	progress := model.Progress{
		UserID:     userID,
		CourseID:   courseID,
		MaterialID: materialID,
		Completed:  true,
	}
	err := r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "material_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"completed":        true,
			"last_accessed_at": gorm.Expr("NOW()"),
		}),
	}).Create(&progress).Error
	if err != nil {
		return nil, err
	}

	var row model.Progress
	err = r.db.Where("user_id = ? AND material_id = ?", userID, materialID).First(&row).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *progressRepository) TouchAccess(userID, materialID uint) error {
	return r.db.Model(&model.Progress{}).
		Where("user_id = ? AND material_id = ?", userID, materialID).
		Update("last_accessed_at", gorm.Expr("NOW()")).Error
}

func (r *progressRepository) GetCourseProgress(userID, courseID uint) (*CourseProgress, error) {
	var progress CourseProgress
	err := r.db.Table("materials m").
		Select(`COUNT(*) AS total_materials,
			COUNT(CASE WHEN up.completed = true THEN 1 END) AS completed_materials,
			ROUND(COUNT(CASE WHEN up.completed = true THEN 1 END) * 100.0 / GREATEST(COUNT(*), 1)) AS completion_percentage`).
		Joins("LEFT JOIN user_progress up ON up.material_id = m.id AND up.user_id = ?", userID).
		Where("m.course_id = ?", courseID).
		Scan(&progress).Error
	if err != nil {
		return nil, err
	}
	return &progress, nil
}

func (r *progressRepository) GetUserOverallProgress(userID uint) (*OverallProgress, error) {
	var progress OverallProgress
	enrolledMaterials := `(SELECT COUNT(*) FROM materials m WHERE m.course_id IN
		(SELECT DISTINCT course_id FROM user_progress WHERE user_id = ?))`
	err := r.db.Table("user_progress up").
		Select(`COUNT(DISTINCT up.course_id) AS enrolled_courses_count,
			COUNT(CASE WHEN up.completed = true THEN 1 END) AS completed_materials_count,
			`+enrolledMaterials+` AS total_materials_count,
			ROUND(COUNT(CASE WHEN up.completed = true THEN 1 END) * 100.0 /
				GREATEST(`+enrolledMaterials+`, 1)) AS overall_completion_percentage`,
			userID, userID).
		Where("up.user_id = ?", userID).
		Scan(&progress).Error
	if err != nil {
		return nil, err
	}
	return &progress, nil
}

func (r *progressRepository) GetRecentActivities(userID uint, limit int) ([]model.Progress, error) {
	var activities []model.Progress
	err := r.db.Where("user_id = ?", userID).
		Order("last_accessed_at DESC").
		Limit(limit).
		Find(&activities).Error
	if err != nil {
		return nil, err
	}
	return activities, nil
}
