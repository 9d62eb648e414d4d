package service

import (
	"errors"
	"testing"
	"time"

	"github.com/edumobile/edu-api/internal/apperrors"
	"github.com/edumobile/edu-api/internal/model"
	"github.com/edumobile/edu-api/internal/repository"
)

// fakeProgressRepo mirrors the upsert semantics of the real table: one row per
// (user, material), completion only ever flips to true.
type fakeProgressRepo struct {
	rows   map[[2]uint]*model.Progress
	nextID uint
}

func newFakeProgressRepo() *fakeProgressRepo {
	return &fakeProgressRepo{rows: make(map[[2]uint]*model.Progress), nextID: 1}
}

func (r *fakeProgressRepo) MarkCompleted(userID, courseID, materialID uint) (*model.Progress, error) {
	key := [2]uint{userID, materialID}
	if row, ok := r.rows[key]; ok {
		row.Completed = true
		row.LastAccessedAt = time.Now()
		copy := *row
		return &copy, nil
	}
	row := &model.Progress{
		ID:             r.nextID,
		UserID:         userID,
		CourseID:       courseID,
		MaterialID:     materialID,
		Completed:      true,
		LastAccessedAt: time.Now(),
	}
	r.nextID++
	r.rows[key] = row
	copy := *row
	return &copy, nil
}

func (r *fakeProgressRepo) TouchAccess(userID, materialID uint) error {
	if row, ok := r.rows[[2]uint{userID, materialID}]; ok {
		row.LastAccessedAt = time.Now()
	}
	return nil
}

func (r *fakeProgressRepo) GetCourseProgress(userID, courseID uint) (*repository.CourseProgress, error) {
	var total, completed int64
	for _, row := range r.rows {
		if row.UserID == userID && row.CourseID == courseID {
			total++
			if row.Completed {
				completed++
			}
		}
	}
	denom := total
	if denom < 1 {
		denom = 1
	}
	return &repository.CourseProgress{
		TotalMaterials:       total,
		CompletedMaterials:   completed,
		CompletionPercentage: completed * 100 / denom,
	}, nil
}

func (r *fakeProgressRepo) GetUserOverallProgress(userID uint) (*repository.OverallProgress, error) {
	courses := make(map[uint]bool)
	var total, completed int64
	for _, row := range r.rows {
		if row.UserID != userID {
			continue
		}
		courses[row.CourseID] = true
		total++
		if row.Completed {
			completed++
		}
	}
	denom := total
	if denom < 1 {
		denom = 1
	}
	return &repository.OverallProgress{
		EnrolledCoursesCount:        int64(len(courses)),
		CompletedMaterialsCount:     completed,
		TotalMaterialsCount:         total,
		OverallCompletionPercentage: completed * 100 / denom,
	}, nil
}

func (r *fakeProgressRepo) GetRecentActivities(userID uint, limit int) ([]model.Progress, error) {
	var out []model.Progress
	for _, row := range r.rows {
		if row.UserID == userID {
			out = append(out, *row)
		}
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

type fakeMaterialRepo struct {
	materials map[uint]*model.Material
}

func newFakeMaterialRepo(ids ...uint) *fakeMaterialRepo {
	r := &fakeMaterialRepo{materials: make(map[uint]*model.Material)}
	for i, id := range ids {
		r.materials[id] = &model.Material{ID: id, CourseID: 1, OrderIndex: i}
	}
	return r
}

func (r *fakeMaterialRepo) Create(material *model.Material) error {
	r.materials[material.ID] = material
	return nil
}

func (r *fakeMaterialRepo) FindByID(id uint) (*model.Material, error) {
	m, ok := r.materials[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return m, nil
}

func (r *fakeMaterialRepo) FindByCourseID(courseID uint) ([]model.Material, error) { return nil, nil }
func (r *fakeMaterialRepo) Update(material *model.Material) error                  { return nil }
func (r *fakeMaterialRepo) Delete(id uint) error                                   { return nil }

func (r *fakeMaterialRepo) GetNextMaterial(courseID uint, currentOrderIndex int) (*model.Material, error) {
	var next *model.Material
	for _, m := range r.materials {
		if m.CourseID != courseID || m.OrderIndex <= currentOrderIndex {
			continue
		}
		if next == nil || m.OrderIndex < next.OrderIndex {
			next = m
		}
	}
	return next, nil
}

func TestMarkMaterialAsCompleted(t *testing.T) {
	progress := newFakeProgressRepo()
	svc := NewProgressService(progress, newFakeMaterialRepo(5))

	row, err := svc.MarkMaterialAsCompleted(7, 1, 5)
	if err != nil {
		t.Fatalf("MarkMaterialAsCompleted: %v", err)
	}
	if !row.Completed {
		t.Error("progress row must be completed")
	}
}

func TestMarkCompletedIsIdempotent(t *testing.T) {
	progress := newFakeProgressRepo()
	svc := NewProgressService(progress, newFakeMaterialRepo(5))

	first, _ := svc.MarkMaterialAsCompleted(7, 1, 5)
	second, err := svc.MarkMaterialAsCompleted(7, 1, 5)
	if err != nil {
		t.Fatalf("second MarkMaterialAsCompleted: %v", err)
	}
	if first.ID != second.ID {
		t.Errorf("expected single progress row, got ids %d and %d", first.ID, second.ID)
	}
	if len(progress.rows) != 1 {
		t.Errorf("expected 1 row, got %d", len(progress.rows))
	}
}

func TestMarkCompletedUnknownMaterial(t *testing.T) {
	svc := NewProgressService(newFakeProgressRepo(), newFakeMaterialRepo())

	_, err := svc.MarkMaterialAsCompleted(7, 1, 99)
	if !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestGetCourseProgressPercentage(t *testing.T) {
	progress := newFakeProgressRepo()
	svc := NewProgressService(progress, newFakeMaterialRepo(1, 2, 3))

	svc.MarkMaterialAsCompleted(7, 1, 1)
	svc.UpdateMaterialAccess(7, 2)

	cp, err := svc.GetCourseProgress(7, 1)
	if err != nil {
		t.Fatalf("GetCourseProgress: %v", err)
	}
	if cp.CompletedMaterials != 1 {
		t.Errorf("expected 1 completed material, got %d", cp.CompletedMaterials)
	}
	if cp.CompletionPercentage != 100 {
		// Only tracked rows count toward the denominator; the single tracked
		// material here is completed.
		t.Errorf("expected 100%%, got %d", cp.CompletionPercentage)
	}
}

func TestGetRecentActivitiesDefaultLimit(t *testing.T) {
	progress := newFakeProgressRepo()
	materials := newFakeMaterialRepo(1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12)
	svc := NewProgressService(progress, materials)

	for id := range materials.materials {
		svc.MarkMaterialAsCompleted(7, 1, id)
	}

	activities, err := svc.GetRecentActivities(7, 0)
	if err != nil {
		t.Fatalf("GetRecentActivities: %v", err)
	}
	if len(activities) != 10 {
		t.Errorf("expected default limit of 10, got %d", len(activities))
	}
}
