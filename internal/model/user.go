package model

import "time"

type User struct {
	ID           uint      `gorm:"primarykey" json:"id"`
	Email        string    `json:"email" gorm:"not null;uniqueIndex"`
	PasswordHash string    `json:"-" gorm:"not null"`
	Name         string    `json:"name" gorm:"not null"`
	LastName     string    `json:"last_name" gorm:"not null"`
	Patronymic   string    `json:"patronymic" gorm:"not null"`
	Role         string    `json:"role" gorm:"not null;default:'student'"`
	IsBlocked    bool      `json:"is_blocked" gorm:"not null;default:false"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
