package syncer

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"reflect"
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

func TestFetchAllPartialSnapshotLeavesOtherCollectionsUntouched(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	schedules := []models.ScheduleEvent{{ID: "e1", Status: models.ScheduleUpcoming}}
	st.ReplaceSchedules(ctx, schedules)
	st.ReplaceStatuses(ctx, []models.StudentStatusRecord{{ID: "r1", StudentID: "64010123", Name: "Somchai"}})

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"sites": []models.InternshipSite{{ID: "s9", Status: models.SiteStatusActive, Major: models.MajorIT}},
		})
	}))
	defer srv.Close()

	g := New(srv.URL, srv.Client(), st)
	if err := g.FetchAll(ctx); err != nil {
		t.Fatalf("FetchAll: %v", err)
	}

	if got := st.Sites(); len(got) != 1 || got[0].ID != "s9" {
		t.Fatalf("sites not replaced from snapshot: %+v", got)
	}
	if got := st.Schedules(); !reflect.DeepEqual(got, schedules) {
		t.Fatalf("schedules should be untouched, got %+v", got)
	}
	if got := st.Statuses(); len(got) != 1 || got[0].ID != "r1" {
		t.Fatalf("statuses should be untouched, got %+v", got)
	}
	if g.LastSync().IsZero() {
		t.Fatalf("successful fetch must record a last-sync timestamp")
	}
}

func TestFetchAllOverwritesLocalWholesale(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	st.ReplaceSites(ctx, []models.InternshipSite{{ID: "local-only"}})

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"sites": []models.InternshipSite{}})
	}))
	defer srv.Close()

	g := New(srv.URL, srv.Client(), st)
	if err := g.FetchAll(ctx); err != nil {
		t.Fatalf("FetchAll: %v", err)
	}
	// A present-but-empty key still replaces: the unpushed local site is
	// discarded. Read-repair is destructive by contract.
	if got := st.Sites(); len(got) != 0 {
		t.Fatalf("expected local sites discarded, got %+v", got)
	}
}

func TestFetchAllRejectsUnknownShape(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	st.ReplaceForms(ctx, []models.DocumentForm{{ID: "f1", URL: "https://example.com/a.pdf"}})

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"forms": [], "surprise": true}`))
	}))
	defer srv.Close()

	g := New(srv.URL, srv.Client(), st)
	if err := g.FetchAll(ctx); err == nil {
		t.Fatalf("expected decode error for unknown key")
	}
	// Strict decode failed before anything was applied.
	if got := st.Forms(); len(got) != 1 || got[0].ID != "f1" {
		t.Fatalf("failed fetch must not touch local state, got %+v", got)
	}
	if !g.LastSync().IsZero() {
		t.Fatalf("failed fetch must not bump last-sync")
	}
}

func TestPushSendsTypedEnvelope(t *testing.T) {
	ctx := context.Background()

	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("unexpected content type %q", ct)
		}
		_ = json.NewDecoder(r.Body).Decode(&got)
	}))
	defer srv.Close()

	g := New(srv.URL, srv.Client(), newTestStore(t))
	data := []models.ScheduleEvent{{ID: "e1", Status: models.SchedulePast}}
	if err := g.Push(ctx, PushSchedules, data); err != nil {
		t.Fatalf("Push: %v", err)
	}

	if got["type"] != "schedules" {
		t.Fatalf("envelope type = %v, want schedules", got["type"])
	}
	rows, ok := got["data"].([]any)
	if !ok || len(rows) != 1 {
		t.Fatalf("envelope data = %v", got["data"])
	}
	if g.LastSync().IsZero() {
		t.Fatalf("successful push must record a last-sync timestamp")
	}
}

func TestPushUploadEnvelope(t *testing.T) {
	ctx := context.Background()

	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&got)
	}))
	defer srv.Close()

	g := New(srv.URL, srv.Client(), newTestStore(t))
	if err := g.PushUpload(ctx, "handbook.pdf", "data:application/pdf;base64,JVBERi0="); err != nil {
		t.Fatalf("PushUpload: %v", err)
	}

	if got["type"] != "uploadForm" {
		t.Fatalf("envelope type = %v, want uploadForm", got["type"])
	}
	payload, _ := got["data"].(map[string]any)
	if payload["fileName"] != "handbook.pdf" {
		t.Fatalf("fileName = %v", payload["fileName"])
	}
	if payload["dataUrl"] != "data:application/pdf;base64,JVBERi0=" {
		t.Fatalf("dataUrl = %v", payload["dataUrl"])
	}
}

func TestPushFailureIsNoOp(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusInternalServerError)
	}))
	defer srv.Close()

	g := New(srv.URL, srv.Client(), st)
	err := g.Push(ctx, PushSites, []models.InternshipSite{{ID: "s1"}})
	if err == nil {
		t.Fatalf("expected error for 500 response")
	}
	if !g.LastSync().IsZero() {
		t.Fatalf("failed push must not bump last-sync")
	}
}
