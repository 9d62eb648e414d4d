package model

type Test struct {
	ID               uint       `gorm:"primarykey" json:"id"`
	CourseID         uint       `json:"course_id" gorm:"not null;index"`
	Title            string     `json:"title" gorm:"type:text;not null"`
	Description      string     `json:"description,omitempty"`
	MaxAttempts      int        `json:"max_attempts" gorm:"default:3"`
	PassingScore     int        `json:"passing_score" gorm:"default:70"`
	TimeLimitMinutes int        `json:"time_limit_minutes" gorm:"default:15"`
	Questions        []Question `json:"questions,omitempty" gorm:"foreignKey:TestID;constraint:OnDelete:CASCADE"`
}
