package dto

import "time"

type ErrorResponse struct {
	Error string `json:"error"`
}

// UserResponse is the public projection of a user; the password hash never
// crosses the service boundary.
type UserResponse struct {
	ID         uint      `json:"id"`
	Email      string    `json:"email"`
	Name       string    `json:"name"`
	LastName   string    `json:"last_name"`
	Patronymic string    `json:"patronymic"`
	Role       string    `json:"role"`
	IsBlocked  bool      `json:"is_blocked"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type AuthResponse struct {
	User         UserResponse `json:"user"`
	Token        string       `json:"token"`
	RefreshToken string       `json:"refresh_token,omitempty"`
	ExpiresIn    string       `json:"expires_in"`
}

type TokenValidationResponse struct {
	Valid bool         `json:"valid"`
	User  UserResponse `json:"user"`
}

// AttemptAnswerResponse is one answer within an attempt review, annotated with
// the correctness resolved against the selected option.
type AttemptAnswerResponse struct {
	ID               uint    `json:"id"`
	QuestionID       uint    `json:"question_id"`
	SelectedOptionID *uint   `json:"selected_option_id,omitempty"`
	SelectedOption   *string `json:"selected_option,omitempty"`
	AnswerText       *string `json:"answer_text,omitempty"`
	IsCorrect        bool    `json:"is_correct"`
}

type AttemptDetailResponse struct {
	ID         uint                    `json:"id"`
	UserID     uint                    `json:"user_id"`
	TestID     uint                    `json:"test_id"`
	StartedAt  time.Time               `json:"started_at"`
	FinishedAt *time.Time              `json:"finished_at,omitempty"`
	Score      *int                    `json:"score,omitempty"`
	Answers    []AttemptAnswerResponse `json:"answers"`
}
