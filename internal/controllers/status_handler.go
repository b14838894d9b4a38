package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"placement-backend/dto"
	"placement-backend/internal/models"
	"placement-backend/internal/services"
)

// ListStatusesHandler godoc
// @Summary List student status records
// @Tags statuses
// @Produce json
// @Success 200 {array} models.StudentStatusRecord
// @Router /statuses [get]
func ListStatusesHandler(svc *services.StatusService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(svc.List())
	}
}

// SaveStatusHandler godoc
// @Summary Create or update a student status record
// @Description Runs the duplicate guard unless force=true. A duplicate
// @Description responds 409 with the matched field so the admin UI can
// @Description offer the override.
// @Tags statuses
// @Accept json
// @Produce json
// @Param force query bool false "Bypass the duplicate guard"
// @Param body body models.StudentStatusRecord true "Record"
// @Success 200 {object} models.StudentStatusRecord
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.DuplicateResponse
// @Router /statuses [post]
func SaveStatusHandler(svc *services.StatusService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body models.StudentStatusRecord
		if err := c.BodyParser(&body); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid request body"})
		}
		force := c.QueryBool("force", false)

		rec, err := svc.Save(c.Context(), body, force)
		if err != nil {
			var dup services.ErrDuplicateStudent
			if errors.As(err, &dup) {
				return c.Status(fiber.StatusConflict).JSON(dto.DuplicateResponse{
					Error:    dup.Error(),
					Field:    dup.Match.Field,
					RecordID: dup.Match.Record.ID,
				})
			}
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: err.Error()})
		}
		return c.JSON(rec)
	}
}

// DeleteStatusHandler godoc
// @Summary Delete a student status record
// @Tags statuses
// @Produce json
// @Param record_id path string true "Record ID"
// @Success 204
// @Failure 404 {object} dto.ErrorResponse
// @Router /statuses/{record_id} [delete]
func DeleteStatusHandler(svc *services.StatusService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := svc.Delete(c.Context(), c.Params("record_id")); err != nil {
			if errors.Is(err, services.ErrNotFound) {
				return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "record not found"})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error()})
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
