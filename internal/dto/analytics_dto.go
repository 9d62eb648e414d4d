package dto

import (
	"time"

	"github.com/edumobile/edu-api/internal/repository"
)

type PlatformStatsDetails struct {
	NewUsersThisWeek int                    `json:"new_users_this_week"`
	PopularCourses   []PopularCourseSummary `json:"popular_courses"`
}

type PopularCourseSummary struct {
	ID              uint   `json:"id"`
	Title           string `json:"title"`
	EnrollmentCount int64  `json:"enrollment_count"`
}

type PlatformStatsResponse struct {
	TotalUsers      int                   `json:"total_users"`
	TotalCourses    int                   `json:"total_courses"`
	AverageProgress int                   `json:"average_progress"`
	ActiveUsers     int                   `json:"active_users"`
	Period          string                `json:"period"`
	Details         *PlatformStatsDetails `json:"details,omitempty"`
}

type CourseSummary struct {
	ID          uint   `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

type CourseAnalyticsResponse struct {
	Course          CourseSummary `json:"course"`
	EnrolledUsers   int           `json:"enrolled_users"`
	CompletedUsers  int           `json:"completed_users"`
	AverageProgress int           `json:"average_progress"`
	CompletionRate  int           `json:"completion_rate"`
	Period          string        `json:"period"`
}

type UserQuizStats struct {
	AverageScore      float64 `json:"average_score"`
	QuizAttemptsCount int64   `json:"quiz_attempts_count"`
}

type ActivityResponse struct {
	CourseID       uint      `json:"course_id"`
	MaterialID     uint      `json:"material_id"`
	Completed      bool      `json:"completed"`
	LastAccessedAt time.Time `json:"last_accessed_at"`
}

type UserLearningAnalyticsResponse struct {
	User             UserResponse                `json:"user"`
	OverallProgress  *repository.OverallProgress `json:"overall_progress"`
	RecentActivities []ActivityResponse          `json:"recent_activities"`
	QuizStats        UserQuizStats               `json:"quiz_stats"`
	LearningStreak   int                         `json:"learning_streak"`
	Period           string                      `json:"period"`
}
