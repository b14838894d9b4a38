package store

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"sync"

	"placement-backend/internal/models"
)

// Slot keys. Each collection (and each UI preference) lives in its own
// named slot holding one JSON document.
const (
	SlotSites     = "sites"
	SlotStatuses  = "studentStatuses"
	SlotSchedules = "schedules"
	SlotForms     = "forms"
	SlotLanguage  = "pref_language"
	SlotTheme     = "pref_theme"
)

// ErrSlotNotFound is returned by a SlotRepository when the named slot
// has never been written.
var ErrSlotNotFound = errors.New("slot not found")

// SlotRepository persists raw slot documents. The Mongo implementation
// lives in internal/repository; tests use an in-memory fake.
type SlotRepository interface {
	LoadSlot(ctx context.Context, key string) ([]byte, error)
	SaveSlot(ctx context.Context, key string, raw []byte) error
}

// Defaults are the bundled collections used when a slot is missing or
// unreadable (first run, or corrupt data).
type Defaults struct {
	Sites     []models.InternshipSite
	Statuses  []models.StudentStatusRecord
	Schedules []models.ScheduleEvent
	Forms     []models.DocumentForm
	Language  string
	Theme     string
}

// Store holds the four record collections plus the UI preference slots.
// It is the single owner of this state: every consumer reads through the
// getters (which copy) and every mutation goes through a Replace method,
// which overwrites the in-memory value and synchronously writes the
// slot. A failed slot write keeps the in-memory value and is only
// logged; the collection stays usable for the rest of the session.
type Store struct {
	mu   sync.RWMutex
	repo SlotRepository

	sites     []models.InternshipSite
	statuses  []models.StudentStatusRecord
	schedules []models.ScheduleEvent
	forms     []models.DocumentForm
	language  string
	theme     string
}

func New(repo SlotRepository) *Store {
	return &Store{repo: repo}
}

// LoadAll seeds every slot from the repository, falling back to the
// bundled defaults for any slot that is missing or fails to decode.
// It never returns an error: a broken slot degrades to its default.
func (s *Store) LoadAll(ctx context.Context, defaults Defaults) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sites = defaults.Sites
	s.statuses = defaults.Statuses
	s.schedules = defaults.Schedules
	s.forms = defaults.Forms
	s.language = defaults.Language
	s.theme = defaults.Theme

	s.loadSlot(ctx, SlotSites, &s.sites)
	s.loadSlot(ctx, SlotStatuses, &s.statuses)
	s.loadSlot(ctx, SlotSchedules, &s.schedules)
	s.loadSlot(ctx, SlotForms, &s.forms)
	s.loadSlot(ctx, SlotLanguage, &s.language)
	s.loadSlot(ctx, SlotTheme, &s.theme)
}

// loadSlot decodes one slot into out, leaving out untouched (the
// fallback already assigned by LoadAll) on any failure.
func (s *Store) loadSlot(ctx context.Context, key string, out any) {
	raw, err := s.repo.LoadSlot(ctx, key)
	if err != nil {
		if !errors.Is(err, ErrSlotNotFound) {
			log.Printf("store: load slot %q failed: %v (using fallback)", key, err)
		}
		return
	}
	if err := json.Unmarshal(raw, out); err != nil {
		log.Printf("store: slot %q is corrupt: %v (using fallback)", key, err)
	}
}

// saveSlot serializes and writes one slot. Failures are logged and
// swallowed: the in-memory value is kept regardless.
func (s *Store) saveSlot(ctx context.Context, key string, v any) {
	raw, err := json.Marshal(v)
	if err != nil {
		log.Printf("store: marshal slot %q failed: %v", key, err)
		return
	}
	if err := s.repo.SaveSlot(ctx, key, raw); err != nil {
		log.Printf("store: save slot %q failed: %v (in-memory only)", key, err)
	}
}

func (s *Store) Sites() []models.InternshipSite {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.InternshipSite, len(s.sites))
	copy(out, s.sites)
	return out
}

func (s *Store) Statuses() []models.StudentStatusRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.StudentStatusRecord, len(s.statuses))
	copy(out, s.statuses)
	return out
}

func (s *Store) Schedules() []models.ScheduleEvent {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.ScheduleEvent, len(s.schedules))
	copy(out, s.schedules)
	return out
}

func (s *Store) Forms() []models.DocumentForm {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.DocumentForm, len(s.forms))
	copy(out, s.forms)
	return out
}

// ReplaceSites overwrites the whole sites collection. There is no
// partial update: callers build the full new slice and hand it over.
func (s *Store) ReplaceSites(ctx context.Context, v []models.InternshipSite) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sites = make([]models.InternshipSite, len(v))
	copy(s.sites, v)
	s.saveSlot(ctx, SlotSites, s.sites)
}

func (s *Store) ReplaceStatuses(ctx context.Context, v []models.StudentStatusRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.statuses = make([]models.StudentStatusRecord, len(v))
	copy(s.statuses, v)
	s.saveSlot(ctx, SlotStatuses, s.statuses)
}

func (s *Store) ReplaceSchedules(ctx context.Context, v []models.ScheduleEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.schedules = make([]models.ScheduleEvent, len(v))
	copy(s.schedules, v)
	s.saveSlot(ctx, SlotSchedules, s.schedules)
}

func (s *Store) ReplaceForms(ctx context.Context, v []models.DocumentForm) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.forms = make([]models.DocumentForm, len(v))
	copy(s.forms, v)
	s.saveSlot(ctx, SlotForms, s.forms)
}

func (s *Store) Preferences() (language, theme string) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.language, s.theme
}

func (s *Store) SetPreferences(ctx context.Context, language, theme string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.language = language
	s.theme = theme
	s.saveSlot(ctx, SlotLanguage, s.language)
	s.saveSlot(ctx, SlotTheme, s.theme)
}
