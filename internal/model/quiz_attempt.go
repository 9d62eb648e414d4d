package model

import "time"

// QuizAttempt is one user's run through one test. An attempt is open while
// FinishedAt is nil; Score is set exactly once, together with FinishedAt.
// At most one open attempt may exist per (user, test) pair, enforced by a
// partial unique index created in the migration step.
type QuizAttempt struct {
	ID         uint         `gorm:"primarykey" json:"id"`
	UserID     uint         `json:"user_id" gorm:"not null;index"`
	TestID     uint         `json:"test_id" gorm:"not null;index"`
	StartedAt  time.Time    `json:"started_at" gorm:"not null;autoCreateTime"`
	FinishedAt *time.Time   `json:"finished_at,omitempty"`
	Score      *int         `json:"score,omitempty"`
	Answers    []UserAnswer `json:"answers,omitempty" gorm:"foreignKey:AttemptID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

func (QuizAttempt) TableName() string { return "user_quiz_attempts" }

// Finished reports whether the attempt has been completed.
func (a *QuizAttempt) Finished() bool { return a.FinishedAt != nil }
