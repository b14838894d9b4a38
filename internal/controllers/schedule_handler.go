package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"placement-backend/dto"
	"placement-backend/internal/models"
	"placement-backend/internal/services"
)

// ListSchedulesHandler godoc
// @Summary List schedule events
// @Tags schedules
// @Produce json
// @Success 200 {array} models.ScheduleEvent
// @Router /schedules [get]
func ListSchedulesHandler(svc *services.ScheduleService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(svc.List())
	}
}

// CreateScheduleHandler godoc
// @Summary Create a schedule event
// @Tags schedules
// @Accept json
// @Produce json
// @Param body body models.ScheduleEvent true "Event"
// @Success 201 {object} models.ScheduleEvent
// @Failure 400 {object} dto.ErrorResponse
// @Router /schedules [post]
func CreateScheduleHandler(svc *services.ScheduleService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body models.ScheduleEvent
		if err := c.BodyParser(&body); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid request body"})
		}
		ev, err := svc.Create(c.Context(), body)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: err.Error()})
		}
		return c.Status(fiber.StatusCreated).JSON(ev)
	}
}

// UpdateScheduleHandler godoc
// @Summary Update a schedule event
// @Tags schedules
// @Accept json
// @Produce json
// @Param event_id path string true "Event ID"
// @Param body body models.ScheduleEvent true "Event"
// @Success 200 {object} models.ScheduleEvent
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /schedules/{event_id} [put]
func UpdateScheduleHandler(svc *services.ScheduleService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body models.ScheduleEvent
		if err := c.BodyParser(&body); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid request body"})
		}
		body.ID = c.Params("event_id")
		ev, err := svc.Update(c.Context(), body)
		if err != nil {
			if errors.Is(err, services.ErrNotFound) {
				return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "event not found"})
			}
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: err.Error()})
		}
		return c.JSON(ev)
	}
}

// DeleteScheduleHandler godoc
// @Summary Delete a schedule event
// @Tags schedules
// @Produce json
// @Param event_id path string true "Event ID"
// @Success 204
// @Failure 404 {object} dto.ErrorResponse
// @Router /schedules/{event_id} [delete]
func DeleteScheduleHandler(svc *services.ScheduleService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := svc.Delete(c.Context(), c.Params("event_id")); err != nil {
			if errors.Is(err, services.ErrNotFound) {
				return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "event not found"})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error()})
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
