package service

import (
	"errors"
	"testing"

	"github.com/edumobile/edu-api/internal/apperrors"
	"github.com/edumobile/edu-api/internal/dto"
)

func TestCreateMaterialUnknownCourse(t *testing.T) {
	svc := NewMaterialService(newFakeMaterialRepo(), newFakeCourseRepo())

	_, err := svc.CreateMaterial(dto.CreateMaterialRequest{
		CourseID:    42,
		Title:       "Intro",
		ContentURL:  "https://cdn.example.com/intro.mp4",
		ContentType: "video",
	})
	if !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestGetNextMaterialWalksOrder(t *testing.T) {
	materials := newFakeMaterialRepo(1, 2, 3) // order indexes 0, 1, 2 in course 1
	svc := NewMaterialService(materials, newFakeCourseRepo(1))

	next, err := svc.GetNextMaterial(1, 0)
	if err != nil {
		t.Fatalf("GetNextMaterial: %v", err)
	}
	if next == nil || next.OrderIndex != 1 {
		t.Fatalf("expected material at order 1, got %+v", next)
	}
}

func TestGetNextMaterialEndOfCourse(t *testing.T) {
	materials := newFakeMaterialRepo(1, 2)
	svc := NewMaterialService(materials, newFakeCourseRepo(1))

	next, err := svc.GetNextMaterial(1, 1)
	if err != nil {
		t.Fatalf("GetNextMaterial: %v", err)
	}
	if next != nil {
		t.Fatalf("expected nil at end of course, got %+v", next)
	}
}

func TestUpdateMaterialPartial(t *testing.T) {
	materials := newFakeMaterialRepo(1)
	svc := NewMaterialService(materials, newFakeCourseRepo(1))

	title := "Renamed"
	updated, err := svc.UpdateMaterial(1, dto.UpdateMaterialRequest{Title: &title})
	if err != nil {
		t.Fatalf("UpdateMaterial: %v", err)
	}
	if updated.Title != "Renamed" {
		t.Errorf("expected title update, got %q", updated.Title)
	}
	if updated.CourseID != 1 {
		t.Errorf("untouched fields must survive, got course %d", updated.CourseID)
	}
}
