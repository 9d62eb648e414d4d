package model

// UserAnswer is one submitted answer within an attempt. SelectedOptionID is nil
// for free-text questions; those are kept in AnswerText and are never scored
// automatically. Repeated submissions for the same question accumulate as new
// rows and each row counts at scoring time.
type UserAnswer struct {
	ID               uint          `gorm:"primarykey" json:"id"`
	AttemptID        uint          `json:"attempt_id" gorm:"not null;index"`
	QuestionID       uint          `json:"question_id" gorm:"not null;index"`
	SelectedOptionID *uint         `json:"selected_option_id,omitempty"`
	SelectedOption   *AnswerOption `json:"selected_option,omitempty" gorm:"foreignKey:SelectedOptionID"`
	AnswerText       *string       `json:"answer_text,omitempty" gorm:"type:text"`
}
