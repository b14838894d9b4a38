package controllers

import (
	"errors"
	"io"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"

	"placement-backend/dto"
	"placement-backend/internal/models"
	"placement-backend/internal/services"
)

// ListFormsHandler godoc
// @Summary List document forms
// @Tags forms
// @Produce json
// @Success 200 {array} models.DocumentForm
// @Router /forms [get]
func ListFormsHandler(svc *services.FormService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(svc.List())
	}
}

// CreateFormHandler godoc
// @Summary Register a document form by link
// @Tags forms
// @Accept json
// @Produce json
// @Param body body models.DocumentForm true "Form"
// @Success 201 {object} models.DocumentForm
// @Failure 400 {object} dto.ErrorResponse
// @Router /forms [post]
func CreateFormHandler(svc *services.FormService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body models.DocumentForm
		if err := c.BodyParser(&body); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid request body"})
		}
		form, err := svc.Create(c.Context(), body)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: err.Error()})
		}
		return c.Status(fiber.StatusCreated).JSON(form)
	}
}

// UploadFormHandler godoc
// @Summary Upload a document form as a PDF file
// @Description Only PDF files are accepted. The stored URL stays the
// @Description "PENDING_UPLOAD:<filename>" placeholder until the remote
// @Description side finishes processing the file.
// @Tags forms
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "PDF file"
// @Param title_th formData string false "Thai title"
// @Param title_en formData string false "English title"
// @Param title_ja formData string false "Japanese title"
// @Param title_zh formData string false "Chinese title"
// @Param category formData string true "Form category" Enums(application, monitoring)
// @Success 201 {object} models.DocumentForm
// @Failure 400 {object} dto.ErrorResponse
// @Router /forms/upload [post]
func UploadFormHandler(svc *services.FormService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var meta dto.FormUploadDTO
		if err := c.BodyParser(&meta); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid form fields"})
		}

		file, err := c.FormFile("file")
		if err != nil || file == nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "file is required"})
		}
		if !isPDF(file.Filename, file.Header.Get("Content-Type")) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "only PDF files are accepted"})
		}

		f, err := file.Open()
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "could not read file"})
		}
		defer f.Close()
		content, err := io.ReadAll(f)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "could not read file"})
		}

		title := models.LocalizedText{Th: meta.TitleTh, En: meta.TitleEn, Ja: meta.TitleJa, Zh: meta.TitleZh}
		form, err := svc.Upload(c.Context(), title, meta.Category, file.Filename, content)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: err.Error()})
		}
		return c.Status(fiber.StatusCreated).JSON(form)
	}
}

func isPDF(filename, contentType string) bool {
	if strings.EqualFold(filepath.Ext(filename), ".pdf") {
		return true
	}
	return contentType == "application/pdf"
}

// UpdateFormHandler godoc
// @Summary Update a document form
// @Tags forms
// @Accept json
// @Produce json
// @Param form_id path string true "Form ID"
// @Param body body models.DocumentForm true "Form"
// @Success 200 {object} models.DocumentForm
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /forms/{form_id} [put]
func UpdateFormHandler(svc *services.FormService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body models.DocumentForm
		if err := c.BodyParser(&body); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid request body"})
		}
		body.ID = c.Params("form_id")
		form, err := svc.Update(c.Context(), body)
		if err != nil {
			if errors.Is(err, services.ErrNotFound) {
				return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "form not found"})
			}
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: err.Error()})
		}
		return c.JSON(form)
	}
}

// DeleteFormHandler godoc
// @Summary Delete a document form
// @Tags forms
// @Produce json
// @Param form_id path string true "Form ID"
// @Success 204
// @Failure 404 {object} dto.ErrorResponse
// @Router /forms/{form_id} [delete]
func DeleteFormHandler(svc *services.FormService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := svc.Delete(c.Context(), c.Params("form_id")); err != nil {
			if errors.Is(err, services.ErrNotFound) {
				return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "form not found"})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error()})
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
