package service

import (
	"errors"
	"testing"
	"time"

	"github.com/edumobile/edu-api/internal/apperrors"
	"github.com/edumobile/edu-api/internal/model"
	"github.com/edumobile/edu-api/internal/repository"
)

type fakeCourseRepo struct {
	courses map[uint]*model.Course
	popular []repository.PopularCourse
}

func newFakeCourseRepo(ids ...uint) *fakeCourseRepo {
	r := &fakeCourseRepo{courses: make(map[uint]*model.Course)}
	for _, id := range ids {
		r.courses[id] = &model.Course{ID: id, Title: "course"}
	}
	return r
}

func (r *fakeCourseRepo) Create(course *model.Course) error { r.courses[course.ID] = course; return nil }

func (r *fakeCourseRepo) FindByID(id uint) (*model.Course, error) {
	c, ok := r.courses[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return c, nil
}

func (r *fakeCourseRepo) FindAll() ([]model.Course, error) {
	var out []model.Course
	for _, c := range r.courses {
		out = append(out, *c)
	}
	return out, nil
}

func (r *fakeCourseRepo) Update(course *model.Course) error                    { return nil }
func (r *fakeCourseRepo) Delete(id uint) error                                 { return nil }
func (r *fakeCourseRepo) FindWithMaterials(id uint) (*model.Course, error)     { return r.FindByID(id) }
func (r *fakeCourseRepo) GetPopularCourses(limit int) ([]repository.PopularCourse, error) {
	return r.popular, nil
}
func (r *fakeCourseRepo) GetUserEnrolledCourses(userID uint) ([]model.Course, error) {
	return nil, nil
}

func newAnalyticsServiceForTest(users *fakeUserRepo, courses *fakeCourseRepo, progress *fakeProgressRepo, now time.Time) *analyticsService {
	return &analyticsService{
		userRepo:     users,
		courseRepo:   courses,
		progressRepo: progress,
		now:          func() time.Time { return now },
	}
}

func TestGetUserLearningAnalyticsUnknownUser(t *testing.T) {
	svc := newAnalyticsServiceForTest(newFakeUserRepo(), newFakeCourseRepo(), newFakeProgressRepo(), time.Now())

	_, err := svc.GetUserLearningAnalytics(42, "week")
	if !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestLearningStreakConsecutiveDays(t *testing.T) {
	now := time.Date(2025, 3, 10, 15, 0, 0, 0, time.UTC)
	svc := newAnalyticsServiceForTest(newFakeUserRepo(), newFakeCourseRepo(), newFakeProgressRepo(), now)

	activities := []model.Progress{
		{LastAccessedAt: now},
		{LastAccessedAt: now.AddDate(0, 0, -1)},
		{LastAccessedAt: now.AddDate(0, 0, -2)},
		{LastAccessedAt: now.AddDate(0, 0, -5)}, // gap breaks the streak
	}
	if got := svc.learningStreak(activities); got != 3 {
		t.Errorf("expected streak of 3, got %d", got)
	}
}

func TestLearningStreakBrokenToday(t *testing.T) {
	now := time.Date(2025, 3, 10, 15, 0, 0, 0, time.UTC)
	svc := newAnalyticsServiceForTest(newFakeUserRepo(), newFakeCourseRepo(), newFakeProgressRepo(), now)

	// Last activity was yesterday: no current streak.
	activities := []model.Progress{
		{LastAccessedAt: now.AddDate(0, 0, -1)},
		{LastAccessedAt: now.AddDate(0, 0, -2)},
	}
	if got := svc.learningStreak(activities); got != 0 {
		t.Errorf("expected streak of 0, got %d", got)
	}
}

func TestLearningStreakNoActivity(t *testing.T) {
	svc := newAnalyticsServiceForTest(newFakeUserRepo(), newFakeCourseRepo(), newFakeProgressRepo(), time.Now())
	if got := svc.learningStreak(nil); got != 0 {
		t.Errorf("expected streak of 0, got %d", got)
	}
}

func TestGetPlatformStatsUnknownPeriodFallsBack(t *testing.T) {
	users := newFakeUserRepo()
	users.Create(&model.User{Email: "a@example.com"})
	svc := newAnalyticsServiceForTest(users, newFakeCourseRepo(1), newFakeProgressRepo(), time.Now())

	stats, err := svc.GetPlatformStats("fortnight", false)
	if err != nil {
		t.Fatalf("GetPlatformStats: %v", err)
	}
	if stats.Period != "week" {
		t.Errorf("expected fallback to week, got %q", stats.Period)
	}
	if stats.TotalUsers != 1 || stats.TotalCourses != 1 {
		t.Errorf("unexpected totals: %+v", stats)
	}
}

func TestGetCourseAnalyticsUnknownCourse(t *testing.T) {
	svc := newAnalyticsServiceForTest(newFakeUserRepo(), newFakeCourseRepo(), newFakeProgressRepo(), time.Now())

	_, err := svc.GetCourseAnalytics(42, "week")
	if !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestGetCourseAnalyticsAggregates(t *testing.T) {
	users := newFakeUserRepo()
	users.Create(&model.User{Email: "a@example.com"})
	users.Create(&model.User{Email: "b@example.com"})
	users.Create(&model.User{Email: "c@example.com"})

	progress := newFakeProgressRepo()
	// User 1 completed their only tracked material; user 2 completed one of
	// two; user 3 never touched the course.
	progress.MarkCompleted(1, 1, 10)
	progress.MarkCompleted(2, 1, 10)
	progress.rows[[2]uint{2, 11}] = &model.Progress{ID: 99, UserID: 2, CourseID: 1, MaterialID: 11, Completed: false}

	svc := newAnalyticsServiceForTest(users, newFakeCourseRepo(1), progress, time.Now())

	analytics, err := svc.GetCourseAnalytics(1, "month")
	if err != nil {
		t.Fatalf("GetCourseAnalytics: %v", err)
	}
	if analytics.EnrolledUsers != 2 {
		t.Errorf("expected 2 enrolled users, got %d", analytics.EnrolledUsers)
	}
	if analytics.CompletedUsers != 1 {
		t.Errorf("expected 1 completed user, got %d", analytics.CompletedUsers)
	}
	if analytics.CompletionRate != 50 {
		t.Errorf("expected 50%% completion rate, got %d", analytics.CompletionRate)
	}
}
