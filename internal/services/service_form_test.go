package services

import (
	"context"
	"strings"
	"testing"

	"placement-backend/internal/models"
)

func TestFormUploadStoresSentinelURL(t *testing.T) {
	ctx := context.Background()
	svc := &FormService{Store: newTestStore(t)}

	form, err := svc.Upload(ctx,
		models.LocalizedText{Th: "คู่มือฝึกงาน", En: "Internship Handbook"},
		models.FormCategoryApplication, "handbook.pdf", []byte("%PDF-1.4 fake"))
	if err != nil {
		t.Fatalf("Upload: %v", err)
	}

	if form.URL != "PENDING_UPLOAD:handbook.pdf" {
		t.Fatalf("expected sentinel URL, got %q", form.URL)
	}
	if !form.PendingUpload() {
		t.Fatalf("PendingUpload() must report the sentinel")
	}

	got := svc.List()
	if len(got) != 1 || !strings.HasPrefix(got[0].URL, models.PendingUploadPrefix) {
		t.Fatalf("stored collection must carry the sentinel: %+v", got)
	}
}

func TestFormUploadRejectsEmpty(t *testing.T) {
	ctx := context.Background()
	svc := &FormService{Store: newTestStore(t)}

	if _, err := svc.Upload(ctx, models.LocalizedText{}, models.FormCategoryMonitoring, "", nil); err == nil {
		t.Fatalf("expected error for empty upload")
	}
	if _, err := svc.Upload(ctx, models.LocalizedText{}, "other", "a.pdf", []byte("x")); err == nil {
		t.Fatalf("expected error for unknown category")
	}
}

func TestFormCreateRequiresURL(t *testing.T) {
	ctx := context.Background()
	svc := &FormService{Store: newTestStore(t)}

	_, err := svc.Create(ctx, models.DocumentForm{Category: models.FormCategoryApplication})
	if err == nil {
		t.Fatalf("expected error for missing url")
	}

	form, err := svc.Create(ctx, models.DocumentForm{
		Category: models.FormCategoryApplication,
		URL:      "https://example.ac.th/forms/apply.pdf",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if form.ID == "" {
		t.Fatalf("server must assign an id when absent")
	}
}
