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

// ErrNotFound is returned when a record id does not exist in its
// collection.
var ErrNotFound = fmt.Errorf("record not found")

type SiteService struct {
	Store   *store.Store
	Gateway *syncer.Gateway
}

func (s *SiteService) List() []models.InternshipSite {
	return s.Store.Sites()
}

// Create prepends the new site (newest first) and pushes the whole
// collection. The admin UI sends a millisecond-timestamp id; when it is
// absent the server fills one in.
func (s *SiteService) Create(ctx context.Context, site models.InternshipSite) (models.InternshipSite, error) {
	if !models.ValidSiteStatus(site.Status) {
		return models.InternshipSite{}, fmt.Errorf("invalid site status %q", site.Status)
	}
	if !models.ValidMajor(site.Major) {
		return models.InternshipSite{}, fmt.Errorf("invalid major %q", site.Major)
	}
	if site.ID == "" {
		site.ID = uuid.NewString()
	}
	if site.CreatedAt == "" {
		site.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	}

	sites := append([]models.InternshipSite{site}, s.Store.Sites()...)
	s.Store.ReplaceSites(ctx, sites)
	pushAsync(s.Gateway, syncer.PushSites, sites)
	return site, nil
}

// Update replaces the array entry matching the id; everything else is
// left in place.
func (s *SiteService) Update(ctx context.Context, site models.InternshipSite) (models.InternshipSite, error) {
	if !models.ValidSiteStatus(site.Status) {
		return models.InternshipSite{}, fmt.Errorf("invalid site status %q", site.Status)
	}
	if !models.ValidMajor(site.Major) {
		return models.InternshipSite{}, fmt.Errorf("invalid major %q", site.Major)
	}

	sites := s.Store.Sites()
	found := false
	for i, existing := range sites {
		if existing.ID == site.ID {
			if site.CreatedAt == "" {
				site.CreatedAt = existing.CreatedAt
			}
			sites[i] = site
			found = true
			break
		}
	}
	if !found {
		return models.InternshipSite{}, ErrNotFound
	}

	s.Store.ReplaceSites(ctx, sites)
	pushAsync(s.Gateway, syncer.PushSites, sites)
	return site, nil
}

// Delete filters the site out of the array.
func (s *SiteService) Delete(ctx context.Context, id string) error {
	sites := s.Store.Sites()
	kept := sites[:0:0]
	for _, site := range sites {
		if site.ID != id {
			kept = append(kept, site)
		}
	}
	if len(kept) == len(sites) {
		return ErrNotFound
	}
	if kept == nil {
		kept = []models.InternshipSite{}
	}
	s.Store.ReplaceSites(ctx, kept)
	pushAsync(s.Gateway, syncer.PushSites, kept)
	return nil
}
