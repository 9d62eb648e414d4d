package model

import "time"

type Course struct {
	ID          uint       `gorm:"primarykey" json:"id"`
	Title       string     `json:"title" gorm:"not null;uniqueIndex"`
	Description string     `json:"description,omitempty"`
	Materials   []Material `json:"materials,omitempty" gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE"`
	Tests       []Test     `json:"tests,omitempty" gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}
