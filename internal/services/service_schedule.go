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

type ScheduleService struct {
	Store   *store.Store
	Gateway *syncer.Gateway
}

func (s *ScheduleService) List() []models.ScheduleEvent {
	return s.Store.Schedules()
}

// Create prepends the event. Status defaults from the raw end date at
// creation time and is never recomputed afterwards: an event created as
// "upcoming" stays upcoming in storage even after its dates pass.
func (s *ScheduleService) Create(ctx context.Context, ev models.ScheduleEvent) (models.ScheduleEvent, error) {
	if ev.RawStart == "" || ev.RawEnd == "" {
		return models.ScheduleEvent{}, fmt.Errorf("rawStart and rawEnd are required")
	}
	if ev.ID == "" {
		ev.ID = uuid.NewString()
	}
	if ev.CreatedAt == "" {
		ev.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	}
	if ev.Status == "" {
		today := time.Now().UTC().Format("2006-01-02")
		if ev.RawEnd < today {
			ev.Status = models.SchedulePast
		} else {
			ev.Status = models.ScheduleUpcoming
		}
	}
	if ev.Status != models.ScheduleUpcoming && ev.Status != models.SchedulePast {
		return models.ScheduleEvent{}, fmt.Errorf("invalid schedule status %q", ev.Status)
	}

	events := append([]models.ScheduleEvent{ev}, s.Store.Schedules()...)
	s.Store.ReplaceSchedules(ctx, events)
	pushAsync(s.Gateway, syncer.PushSchedules, events)
	return ev, nil
}

func (s *ScheduleService) Update(ctx context.Context, ev models.ScheduleEvent) (models.ScheduleEvent, error) {
	if ev.Status != models.ScheduleUpcoming && ev.Status != models.SchedulePast {
		return models.ScheduleEvent{}, fmt.Errorf("invalid schedule status %q", ev.Status)
	}

	events := s.Store.Schedules()
	found := false
	for i, existing := range events {
		if existing.ID == ev.ID {
			if ev.CreatedAt == "" {
				ev.CreatedAt = existing.CreatedAt
			}
			events[i] = ev
			found = true
			break
		}
	}
	if !found {
		return models.ScheduleEvent{}, ErrNotFound
	}

	s.Store.ReplaceSchedules(ctx, events)
	pushAsync(s.Gateway, syncer.PushSchedules, events)
	return ev, nil
}

func (s *ScheduleService) Delete(ctx context.Context, id string) error {
	events := s.Store.Schedules()
	kept := events[:0:0]
	for _, ev := range events {
		if ev.ID != id {
			kept = append(kept, ev)
		}
	}
	if len(kept) == len(events) {
		return ErrNotFound
	}
	if kept == nil {
		kept = []models.ScheduleEvent{}
	}
	s.Store.ReplaceSchedules(ctx, kept)
	pushAsync(s.Gateway, syncer.PushSchedules, kept)
	return nil
}
