package model

import "time"

type Progress struct {
	ID             uint      `gorm:"primarykey" json:"id"`
	UserID         uint      `json:"user_id" gorm:"not null;index;uniqueIndex:idx_progress_user_material"`
	CourseID       uint      `json:"course_id" gorm:"not null;index"`
	MaterialID     uint      `json:"material_id" gorm:"not null;uniqueIndex:idx_progress_user_material"`
	Completed      bool      `json:"completed" gorm:"not null;default:false"`
	LastAccessedAt time.Time `json:"last_accessed_at" gorm:"not null;autoCreateTime"`
}

func (Progress) TableName() string { return "user_progress" }
