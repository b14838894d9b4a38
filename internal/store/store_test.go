package store

import (
	"context"
	"errors"
	"reflect"
	"sync"
	"testing"

	"placement-backend/internal/models"
)

type fakeSlotRepo struct {
	mu    sync.Mutex
	slots map[string][]byte
	fail  bool
}

func newFakeSlotRepo() *fakeSlotRepo {
	return &fakeSlotRepo{slots: make(map[string][]byte)}
}

func (r *fakeSlotRepo) LoadSlot(ctx context.Context, key string) ([]byte, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	raw, ok := r.slots[key]
	if !ok {
		return nil, ErrSlotNotFound
	}
	return raw, nil
}

func (r *fakeSlotRepo) SaveSlot(ctx context.Context, key string, raw []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.fail {
		return errors.New("disk on fire")
	}
	r.slots[key] = raw
	return nil
}

func TestReplaceThenLoadRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := newFakeSlotRepo()

	s := New(repo)
	s.LoadAll(ctx, Defaults{})

	want := []models.StudentStatusRecord{
		{ID: "1700000000000", StudentID: "64010123", Name: "Somchai Jaidee",
			Status: models.ApplicationPending, Major: models.MajorIT,
			Type: models.TypeInternship, Term: "1", AcademicYear: "2567",
			StartDate: "2024-06-01", EndDate: "2024-10-31", LastUpdated: "2024-05-20T09:00:00Z"},
		{ID: "1700000000001", StudentID: "64010456", Name: "Suda Meechai",
			Status: models.ApplicationAccepted, Major: models.MajorHalalFood,
			Type: models.TypeCoop, LastUpdated: "2024-05-21T09:00:00Z"},
	}
	s.ReplaceStatuses(ctx, want)

	// A fresh store over the same repository must see exactly what was
	// written, round-tripped through serialization.
	s2 := New(repo)
	s2.LoadAll(ctx, Defaults{})
	if got := s2.Statuses(); !reflect.DeepEqual(got, want) {
		t.Fatalf("round-trip mismatch:\n got %+v\nwant %+v", got, want)
	}
}

func TestLoadFallsBackOnMissingSlot(t *testing.T) {
	ctx := context.Background()
	repo := newFakeSlotRepo()

	fallback := Defaults{
		Sites:    []models.InternshipSite{{ID: "s1", Status: models.SiteStatusActive, Major: models.MajorGeneral}},
		Language: "th",
		Theme:    "light",
	}
	s := New(repo)
	s.LoadAll(ctx, fallback)

	if got := s.Sites(); !reflect.DeepEqual(got, fallback.Sites) {
		t.Fatalf("expected fallback sites, got %+v", got)
	}
	lang, theme := s.Preferences()
	if lang != "th" || theme != "light" {
		t.Fatalf("expected fallback preferences, got %q/%q", lang, theme)
	}
}

func TestLoadFallsBackOnCorruptSlot(t *testing.T) {
	ctx := context.Background()
	repo := newFakeSlotRepo()
	repo.slots[SlotForms] = []byte("{not json")

	fallback := Defaults{
		Forms: []models.DocumentForm{{ID: "f1", Category: models.FormCategoryApplication, URL: "https://example.com/f.pdf"}},
	}
	s := New(repo)
	s.LoadAll(ctx, fallback)

	if got := s.Forms(); !reflect.DeepEqual(got, fallback.Forms) {
		t.Fatalf("expected fallback forms on corrupt slot, got %+v", got)
	}
}

func TestSaveFailureKeepsInMemoryValue(t *testing.T) {
	ctx := context.Background()
	repo := newFakeSlotRepo()
	repo.fail = true

	s := New(repo)
	s.LoadAll(ctx, Defaults{})

	want := []models.ScheduleEvent{{ID: "e1", Status: models.ScheduleUpcoming, RawStart: "2025-01-10", RawEnd: "2025-01-12"}}
	s.ReplaceSchedules(ctx, want)

	// Write failed, but the session keeps operating on the new value.
	if got := s.Schedules(); !reflect.DeepEqual(got, want) {
		t.Fatalf("in-memory value lost after failed save: %+v", got)
	}
	if len(repo.slots) != 0 {
		t.Fatalf("nothing should have been persisted")
	}
}

func TestGettersReturnCopies(t *testing.T) {
	ctx := context.Background()
	s := New(newFakeSlotRepo())
	s.LoadAll(ctx, Defaults{})
	s.ReplaceSites(ctx, []models.InternshipSite{{ID: "s1", Status: models.SiteStatusActive}})

	got := s.Sites()
	got[0].Status = models.SiteStatusArchived
	if s.Sites()[0].Status != models.SiteStatusActive {
		t.Fatalf("getter leaked a mutable reference into the store")
	}
}
