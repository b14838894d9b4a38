package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"placement-backend/dto"
	"placement-backend/internal/models"
	"placement-backend/internal/services"
)

// ListSitesHandler godoc
// @Summary List internship sites
// @Tags sites
// @Produce json
// @Success 200 {array} models.InternshipSite
// @Router /sites [get]
func ListSitesHandler(svc *services.SiteService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(svc.List())
	}
}

// CreateSiteHandler godoc
// @Summary Create an internship site
// @Tags sites
// @Accept json
// @Produce json
// @Param body body models.InternshipSite true "Site"
// @Success 201 {object} models.InternshipSite
// @Failure 400 {object} dto.ErrorResponse
// @Router /sites [post]
func CreateSiteHandler(svc *services.SiteService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body models.InternshipSite
		if err := c.BodyParser(&body); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid request body"})
		}
		site, err := svc.Create(c.Context(), body)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: err.Error()})
		}
		return c.Status(fiber.StatusCreated).JSON(site)
	}
}

// UpdateSiteHandler godoc
// @Summary Update an internship site
// @Tags sites
// @Accept json
// @Produce json
// @Param site_id path string true "Site ID"
// @Param body body models.InternshipSite true "Site"
// @Success 200 {object} models.InternshipSite
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /sites/{site_id} [put]
func UpdateSiteHandler(svc *services.SiteService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body models.InternshipSite
		if err := c.BodyParser(&body); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid request body"})
		}
		body.ID = c.Params("site_id")
		site, err := svc.Update(c.Context(), body)
		if err != nil {
			if errors.Is(err, services.ErrNotFound) {
				return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "site not found"})
			}
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: err.Error()})
		}
		return c.JSON(site)
	}
}

// DeleteSiteHandler godoc
// @Summary Delete an internship site
// @Tags sites
// @Produce json
// @Param site_id path string true "Site ID"
// @Success 204
// @Failure 404 {object} dto.ErrorResponse
// @Router /sites/{site_id} [delete]
func DeleteSiteHandler(svc *services.SiteService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := svc.Delete(c.Context(), c.Params("site_id")); err != nil {
			if errors.Is(err, services.ErrNotFound) {
				return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "site not found"})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error()})
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
