package service

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/edumobile/edu-api/internal/apperrors"
	"github.com/edumobile/edu-api/internal/dto"
	"github.com/edumobile/edu-api/internal/model"
	"github.com/edumobile/edu-api/internal/repository"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
)

// periodDurations maps the period filter onto a lookback window.
var periodDurations = map[string]time.Duration{
	"day":   24 * time.Hour,
	"week":  7 * 24 * time.Hour,
	"month": 30 * 24 * time.Hour,
	"year":  365 * 24 * time.Hour,
}

type AnalyticsService interface {
	GetPlatformStats(period string, includeDetails bool) (*dto.PlatformStatsResponse, error)
	GetCourseAnalytics(courseID uint, period string) (*dto.CourseAnalyticsResponse, error)
	GetUserLearningAnalytics(userID uint, period string) (*dto.UserLearningAnalyticsResponse, error)
}

type analyticsService struct {
	userRepo     repository.UserRepository
	courseRepo   repository.CourseRepository
	progressRepo repository.ProgressRepository
	now          func() time.Time
}

func NewAnalyticsService(
	userRepo repository.UserRepository,
	courseRepo repository.CourseRepository,
	progressRepo repository.ProgressRepository,
) AnalyticsService {
	return &analyticsService{
		userRepo:     userRepo,
		courseRepo:   courseRepo,
		progressRepo: progressRepo,
		now:          time.Now,
	}
}

func (s *analyticsService) GetPlatformStats(period string, includeDetails bool) (*dto.PlatformStatsResponse, error) {
	window, ok := periodDurations[period]
	if !ok {
		period = "week"
		window = periodDurations[period]
	}

	users, err := s.userRepo.FindAll()
	if err != nil {
		return nil, fmt.Errorf("listing users: %w", err)
	}
	courses, err := s.courseRepo.FindAll()
	if err != nil {
		return nil, fmt.Errorf("listing courses: %w", err)
	}

	var totalProgress, usersWithProgress int64
	for _, user := range users {
		progress, err := s.progressRepo.GetUserOverallProgress(user.ID)
		if err != nil {
			log.Warn().Err(err).Uint("userID", user.ID).Msg("GetPlatformStats: skipping user progress")
			continue
		}
		if progress.EnrolledCoursesCount > 0 {
			totalProgress += progress.OverallCompletionPercentage
			usersWithProgress++
		}
	}
	averageProgress := 0
	if usersWithProgress > 0 {
		averageProgress = int(math.Round(float64(totalProgress) / float64(usersWithProgress)))
	}

	cutoff := s.now().Add(-window)
	activeUsers := 0
	for _, user := range users {
		if user.UpdatedAt.After(cutoff) {
			activeUsers++
		}
	}

	resp := &dto.PlatformStatsResponse{
		TotalUsers:      len(users),
		TotalCourses:    len(courses),
		AverageProgress: averageProgress,
		ActiveUsers:     activeUsers,
		Period:          period,
	}

	if includeDetails {
		weekAgo := s.now().Add(-7 * 24 * time.Hour)
		newUsers := 0
		for _, user := range users {
			if user.CreatedAt.After(weekAgo) {
				newUsers++
			}
		}
		popular, err := s.courseRepo.GetPopularCourses(5)
		if err != nil {
			return nil, fmt.Errorf("listing popular courses: %w", err)
		}
		details := &dto.PlatformStatsDetails{NewUsersThisWeek: newUsers}
		for _, course := range popular {
			details.PopularCourses = append(details.PopularCourses, dto.PopularCourseSummary{
				ID:              course.ID,
				Title:           course.Title,
				EnrollmentCount: course.EnrollmentCount,
			})
		}
		resp.Details = details
	}
	return resp, nil
}

func (s *analyticsService) GetCourseAnalytics(courseID uint, period string) (*dto.CourseAnalyticsResponse, error) {
	if _, ok := periodDurations[period]; !ok {
		period = "week"
	}

	course, err := s.courseRepo.FindByID(courseID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("course not found: %w", apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("looking up course %d: %w", courseID, err)
	}

	users, err := s.userRepo.FindAll()
	if err != nil {
		return nil, fmt.Errorf("listing users: %w", err)
	}

	var enrolled, completed int
	var totalProgress int64
	for _, user := range users {
		progress, err := s.progressRepo.GetCourseProgress(user.ID, courseID)
		if err != nil {
			log.Warn().Err(err).Uint("userID", user.ID).Msg("GetCourseAnalytics: skipping user")
			continue
		}
		if progress.CompletedMaterials == 0 {
			continue
		}
		enrolled++
		totalProgress += progress.CompletionPercentage
		if progress.CompletionPercentage == 100 {
			completed++
		}
	}

	averageProgress := 0
	completionRate := 0
	if enrolled > 0 {
		averageProgress = int(math.Round(float64(totalProgress) / float64(enrolled)))
		completionRate = int(math.Round(float64(completed) * 100.0 / float64(enrolled)))
	}

	return &dto.CourseAnalyticsResponse{
		Course: dto.CourseSummary{
			ID:          course.ID,
			Title:       course.Title,
			Description: course.Description,
		},
		EnrolledUsers:   enrolled,
		CompletedUsers:  completed,
		AverageProgress: averageProgress,
		CompletionRate:  completionRate,
		Period:          period,
	}, nil
}

func (s *analyticsService) GetUserLearningAnalytics(userID uint, period string) (*dto.UserLearningAnalyticsResponse, error) {
	if _, ok := periodDurations[period]; !ok && period != "all" {
		period = "month"
	}

	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("user not found: %w", apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("looking up user %d: %w", userID, err)
	}

	overall, err := s.progressRepo.GetUserOverallProgress(userID)
	if err != nil {
		return nil, fmt.Errorf("computing overall progress: %w", err)
	}

	activities, err := s.progressRepo.GetRecentActivities(userID, 20)
	if err != nil {
		return nil, fmt.Errorf("listing recent activities: %w", err)
	}

	stats, err := s.userRepo.GetStats(userID)
	if err != nil {
		return nil, fmt.Errorf("computing user stats: %w", err)
	}

	resp := &dto.UserLearningAnalyticsResponse{
		OverallProgress: overall,
		QuizStats: dto.UserQuizStats{
			AverageScore:      stats.AverageScore,
			QuizAttemptsCount: stats.QuizAttemptsCount,
		},
		LearningStreak: s.learningStreak(activities),
		Period:         period,
	}
	if err := copier.Copy(&resp.User, user); err != nil {
		return nil, fmt.Errorf("preparing response: %w", err)
	}
	for _, act := range activities {
		if len(resp.RecentActivities) == 10 {
			break
		}
		resp.RecentActivities = append(resp.RecentActivities, dto.ActivityResponse{
			CourseID:       act.CourseID,
			MaterialID:     act.MaterialID,
			Completed:      act.Completed,
			LastAccessedAt: act.LastAccessedAt,
		})
	}
	return resp, nil
}

// learningStreak counts consecutive calendar days with activity ending today.
func (s *analyticsService) learningStreak(activities []model.Progress) int {
	if len(activities) == 0 {
		return 0
	}

	seen := make(map[string]bool)
	var days []string
	for _, act := range activities {
		day := act.LastAccessedAt.Format("2006-01-02")
		if !seen[day] {
			seen[day] = true
			days = append(days, day)
		}
	}
	sort.Sort(sort.Reverse(sort.StringSlice(days)))

	streak := 0
	for i, day := range days {
		expected := s.now().AddDate(0, 0, -i).Format("2006-01-02")
		if day != expected {
			break
		}
		streak++
	}
	return streak
}
