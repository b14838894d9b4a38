package services

import (
	"context"
	"encoding/base64"
	"fmt"
	"log"

	"github.com/google/uuid"

	"placement-backend/internal/models"
	"placement-backend/internal/store"
	"placement-backend/internal/syncer"
)

type FormService struct {
	Store   *store.Store
	Gateway *syncer.Gateway
}

func (s *FormService) List() []models.DocumentForm {
	return s.Store.Forms()
}

// Create registers a form whose URL is an external link (or an already
// final data-URL).
func (s *FormService) Create(ctx context.Context, form models.DocumentForm) (models.DocumentForm, error) {
	if !models.ValidFormCategory(form.Category) {
		return models.DocumentForm{}, fmt.Errorf("invalid form category %q", form.Category)
	}
	if form.URL == "" {
		return models.DocumentForm{}, fmt.Errorf("url is required")
	}
	if form.ID == "" {
		form.ID = uuid.NewString()
	}

	forms := append([]models.DocumentForm{form}, s.Store.Forms()...)
	s.Store.ReplaceForms(ctx, forms)
	pushAsync(s.Gateway, syncer.PushForms, forms)
	return form, nil
}

// Upload registers an uploaded PDF. The stored URL is the
// "PENDING_UPLOAD:<filename>" sentinel; the file itself travels to the
// remote side as a base64 data-URL in a dedicated uploadForm push. The
// remote replaces the sentinel asynchronously and the final URL is only
// observed by a later FetchAll — until then the portal shows the
// processing placeholder.
func (s *FormService) Upload(ctx context.Context, title models.LocalizedText, category, filename string, content []byte) (models.DocumentForm, error) {
	if !models.ValidFormCategory(category) {
		return models.DocumentForm{}, fmt.Errorf("invalid form category %q", category)
	}
	if filename == "" || len(content) == 0 {
		return models.DocumentForm{}, fmt.Errorf("empty upload")
	}

	form := models.DocumentForm{
		ID:       uuid.NewString(),
		Title:    title,
		Category: category,
		URL:      models.PendingUploadPrefix + filename,
	}

	forms := append([]models.DocumentForm{form}, s.Store.Forms()...)
	s.Store.ReplaceForms(ctx, forms)

	dataURL := "data:application/pdf;base64," + base64.StdEncoding.EncodeToString(content)
	if s.Gateway != nil {
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), pushTimeout)
			defer cancel()
			if err := s.Gateway.PushUpload(ctx, filename, dataURL); err != nil {
				log.Printf("sync: uploadForm push for %q failed: %v", filename, err)
			}
		}()
	}
	return form, nil
}

func (s *FormService) Update(ctx context.Context, form models.DocumentForm) (models.DocumentForm, error) {
	if !models.ValidFormCategory(form.Category) {
		return models.DocumentForm{}, fmt.Errorf("invalid form category %q", form.Category)
	}

	forms := s.Store.Forms()
	found := false
	for i, existing := range forms {
		if existing.ID == form.ID {
			if form.URL == "" {
				form.URL = existing.URL
			}
			forms[i] = form
			found = true
			break
		}
	}
	if !found {
		return models.DocumentForm{}, ErrNotFound
	}

	s.Store.ReplaceForms(ctx, forms)
	pushAsync(s.Gateway, syncer.PushForms, forms)
	return form, nil
}

func (s *FormService) Delete(ctx context.Context, id string) error {
	forms := s.Store.Forms()
	kept := forms[:0:0]
	for _, form := range forms {
		if form.ID != id {
			kept = append(kept, form)
		}
	}
	if len(kept) == len(forms) {
		return ErrNotFound
	}
	if kept == nil {
		kept = []models.DocumentForm{}
	}
	s.Store.ReplaceForms(ctx, kept)
	pushAsync(s.Gateway, syncer.PushForms, kept)
	return nil
}
