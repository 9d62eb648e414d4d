package dto

// Auth

type RegisterRequest struct {
	Email      string `json:"email" binding:"required,email"`
	Password   string `json:"password" binding:"required,min=6"`
	Name       string `json:"name" binding:"required,min=2,max=50"`
	LastName   string `json:"last_name" binding:"required,min=2,max=50"`
	Patronymic string `json:"patronymic" binding:"required,min=2,max=50"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type ValidateTokenRequest struct {
	Token string `json:"token" binding:"required"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// Users

type UpdateUserRequest struct {
	Name       *string `json:"name,omitempty" binding:"omitempty,min=2,max=50"`
	LastName   *string `json:"last_name,omitempty" binding:"omitempty,min=2,max=50"`
	Patronymic *string `json:"patronymic,omitempty" binding:"omitempty,min=2,max=50"`
	IsBlocked  *bool   `json:"is_blocked,omitempty"`
}

// Courses and materials

type CreateCourseRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
}

type UpdateCourseRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
}

type CreateMaterialRequest struct {
	CourseID    uint   `json:"course_id" binding:"required"`
	Title       string `json:"title" binding:"required"`
	ContentURL  string `json:"content_url" binding:"required,url"`
	ContentType string `json:"content_type" binding:"required"`
	OrderIndex  int    `json:"order_index"`
}

type UpdateMaterialRequest struct {
	Title       *string `json:"title,omitempty"`
	ContentURL  *string `json:"content_url,omitempty" binding:"omitempty,url"`
	ContentType *string `json:"content_type,omitempty"`
	OrderIndex  *int    `json:"order_index,omitempty"`
}

// Tests, questions, options

type CreateTestRequest struct {
	CourseID         uint   `json:"course_id" binding:"required"`
	Title            string `json:"title" binding:"required"`
	Description      string `json:"description"`
	MaxAttempts      int    `json:"max_attempts" binding:"omitempty,min=1"`
	PassingScore     int    `json:"passing_score" binding:"omitempty,min=0,max=100"`
	TimeLimitMinutes int    `json:"time_limit_minutes" binding:"omitempty,min=1"`
}

type UpdateTestRequest struct {
	Title            *string `json:"title,omitempty"`
	Description      *string `json:"description,omitempty"`
	MaxAttempts      *int    `json:"max_attempts,omitempty" binding:"omitempty,min=1"`
	PassingScore     *int    `json:"passing_score,omitempty" binding:"omitempty,min=0,max=100"`
	TimeLimitMinutes *int    `json:"time_limit_minutes,omitempty" binding:"omitempty,min=1"`
}

type CreateAnswerOptionRequest struct {
	OptionText string `json:"option_text" binding:"required"`
	IsCorrect  bool   `json:"is_correct"`
	OrderIndex int    `json:"order_index"`
}

type UpdateAnswerOptionRequest struct {
	OptionText *string `json:"option_text,omitempty"`
	IsCorrect  *bool   `json:"is_correct,omitempty"`
	OrderIndex *int    `json:"order_index,omitempty"`
}

type CreateQuestionRequest struct {
	TestID       uint                        `json:"test_id" binding:"required"`
	QuestionText string                      `json:"question_text" binding:"required"`
	QuestionType string                      `json:"question_type" binding:"required,oneof=single_choice multiple_choice text"`
	OrderIndex   int                         `json:"order_index"`
	Options      []CreateAnswerOptionRequest `json:"options" binding:"omitempty,dive"`
}

type UpdateQuestionRequest struct {
	QuestionText *string `json:"question_text,omitempty"`
	QuestionType *string `json:"question_type,omitempty" binding:"omitempty,oneof=single_choice multiple_choice text"`
	OrderIndex   *int    `json:"order_index,omitempty"`
}

// Quiz attempts

type SubmitAnswerRequest struct {
	AttemptID        uint    `json:"attempt_id" binding:"required"`
	QuestionID       uint    `json:"question_id" binding:"required"`
	SelectedOptionID *uint   `json:"selected_option_id,omitempty"`
	AnswerText       *string `json:"answer_text,omitempty"`
}

// Progress

type MarkCompletedRequest struct {
	UserID     uint `json:"user_id" binding:"required"`
	CourseID   uint `json:"course_id" binding:"required"`
	MaterialID uint `json:"material_id" binding:"required"`
}
