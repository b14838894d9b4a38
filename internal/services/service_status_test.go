package services

import (
	"context"
	"errors"
	"sync"
	"testing"

	"placement-backend/internal/models"
	"placement-backend/internal/store"
)

type memSlotRepo struct {
	mu    sync.Mutex
	slots map[string][]byte
}

func newMemSlotRepo() *memSlotRepo { return &memSlotRepo{slots: make(map[string][]byte)} }

func (r *memSlotRepo) LoadSlot(ctx context.Context, key string) ([]byte, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	raw, ok := r.slots[key]
	if !ok {
		return nil, store.ErrSlotNotFound
	}
	return raw, nil
}

func (r *memSlotRepo) SaveSlot(ctx context.Context, key string, raw []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.slots[key] = raw
	return nil
}

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	st := store.New(newMemSlotRepo())
	st.LoadAll(context.Background(), store.Defaults{})
	return st
}

func validRecord(id, studentID, name string) models.StudentStatusRecord {
	return models.StudentStatusRecord{
		ID: id, StudentID: studentID, Name: name,
		Status: models.ApplicationPending, Major: models.MajorIT,
		Type: models.TypeInternship,
	}
}

func TestStatusSaveBlocksDuplicateUnlessForced(t *testing.T) {
	ctx := context.Background()
	svc := &StatusService{Store: newTestStore(t)}

	if _, err := svc.Save(ctx, validRecord("", "64010123", "Somchai Jaidee"), false); err != nil {
		t.Fatalf("first save: %v", err)
	}

	// Same student id with cosmetic whitespace: blocked.
	_, err := svc.Save(ctx, validRecord("", "64 010 123", "Another Name"), false)
	var dup ErrDuplicateStudent
	if !errors.As(err, &dup) {
		t.Fatalf("expected ErrDuplicateStudent, got %v", err)
	}
	if dup.Match.Field != "studentId" {
		t.Fatalf("expected studentId match, got %q", dup.Match.Field)
	}

	// The force escape hatch bypasses the guard entirely.
	if _, err := svc.Save(ctx, validRecord("", "64 010 123", "Another Name"), true); err != nil {
		t.Fatalf("forced save: %v", err)
	}
	if got := svc.List(); len(got) != 2 {
		t.Fatalf("expected 2 records after forced save, got %d", len(got))
	}
}

func TestStatusSavePrependsNewAndReplacesExisting(t *testing.T) {
	ctx := context.Background()
	svc := &StatusService{Store: newTestStore(t)}

	first, err := svc.Save(ctx, validRecord("", "64010123", "Somchai Jaidee"), false)
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if _, err := svc.Save(ctx, validRecord("", "64010456", "Suda Meechai"), false); err != nil {
		t.Fatalf("save: %v", err)
	}

	got := svc.List()
	if len(got) != 2 || got[0].StudentID != "64010456" {
		t.Fatalf("newest record must be first: %+v", got)
	}

	// Editing keeps array position and does not collide with itself.
	edited := validRecord(first.ID, "64010123", "Somchai Jaidee")
	edited.Status = models.ApplicationAccepted
	saved, err := svc.Save(ctx, edited, false)
	if err != nil {
		t.Fatalf("edit save: %v", err)
	}
	if saved.LastUpdated == "" {
		t.Fatalf("LastUpdated must be set on save")
	}
	got = svc.List()
	if len(got) != 2 || got[1].ID != first.ID || got[1].Status != models.ApplicationAccepted {
		t.Fatalf("edit must replace in place: %+v", got)
	}
}

func TestStatusDelete(t *testing.T) {
	ctx := context.Background()
	svc := &StatusService{Store: newTestStore(t)}

	rec, _ := svc.Save(ctx, validRecord("", "64010123", "Somchai Jaidee"), false)
	if err := svc.Delete(ctx, rec.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if got := svc.List(); len(got) != 0 {
		t.Fatalf("expected empty collection, got %+v", got)
	}
	if err := svc.Delete(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestStatusSaveRejectsInvalidEnums(t *testing.T) {
	ctx := context.Background()
	svc := &StatusService{Store: newTestStore(t)}

	rec := validRecord("", "64010123", "Somchai Jaidee")
	rec.Status = "hired"
	if _, err := svc.Save(ctx, rec, false); err == nil {
		t.Fatalf("expected error for unknown application status")
	}

	rec = validRecord("", "64010123", "Somchai Jaidee")
	rec.Type = "parttime"
	if _, err := svc.Save(ctx, rec, false); err == nil {
		t.Fatalf("expected error for unknown internship type")
	}
}
