package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"placement-backend/internal/models"
	"placement-backend/internal/store"
	"placement-backend/internal/syncer"
)

// ErrDuplicateStudent wraps the guard result so the controller can
// surface which field matched and offer the force escape hatch.
type ErrDuplicateStudent struct {
	Match DuplicateMatch
}

func (e ErrDuplicateStudent) Error() string {
	return fmt.Sprintf("duplicate student record: %s matches existing record %s", e.Match.Field, e.Match.Record.ID)
}

type StatusService struct {
	Store   *store.Store
	Gateway *syncer.Gateway
}

func (s *StatusService) List() []models.StudentStatusRecord {
	return s.Store.Statuses()
}

// Save creates or updates one record. New records are prepended,
// existing ones replaced in place. Unless force is set, the duplicate
// guard runs first and a match aborts the save with
// ErrDuplicateStudent; force bypasses the guard entirely.
// LastUpdated is bumped on every save.
func (s *StatusService) Save(ctx context.Context, rec models.StudentStatusRecord, force bool) (models.StudentStatusRecord, error) {
	if !models.ValidApplicationStatus(rec.Status) {
		return models.StudentStatusRecord{}, fmt.Errorf("invalid application status %q", rec.Status)
	}
	if !models.ValidInternshipType(rec.Type) {
		return models.StudentStatusRecord{}, fmt.Errorf("invalid internship type %q", rec.Type)
	}
	if !models.ValidMajor(rec.Major) {
		return models.StudentStatusRecord{}, fmt.Errorf("invalid major %q", rec.Major)
	}

	records := s.Store.Statuses()

	if !force {
		if match, found := FindDuplicateStudent(records, rec.StudentID, rec.Name, rec.ID); found {
			return models.StudentStatusRecord{}, ErrDuplicateStudent{Match: match}
		}
	}

	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	rec.LastUpdated = time.Now().UTC().Format(time.RFC3339)

	replaced := false
	for i, existing := range records {
		if existing.ID == rec.ID {
			records[i] = rec
			replaced = true
			break
		}
	}
	if !replaced {
		records = append([]models.StudentStatusRecord{rec}, records...)
	}

	s.Store.ReplaceStatuses(ctx, records)
	pushAsync(s.Gateway, syncer.PushStatuses, records)
	return rec, nil
}

func (s *StatusService) Delete(ctx context.Context, id string) error {
	records := s.Store.Statuses()
	kept := records[:0:0]
	for _, rec := range records {
		if rec.ID != id {
			kept = append(kept, rec)
		}
	}
	if len(kept) == len(records) {
		return ErrNotFound
	}
	if kept == nil {
		kept = []models.StudentStatusRecord{}
	}
	s.Store.ReplaceStatuses(ctx, kept)
	pushAsync(s.Gateway, syncer.PushStatuses, kept)
	return nil
}
