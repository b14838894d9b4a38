package controllers

import (
	"github.com/gofiber/fiber/v2"

	"placement-backend/dto"
	"placement-backend/internal/store"
)

// GetPreferencesHandler godoc
// @Summary Get UI preferences
// @Tags preferences
// @Produce json
// @Success 200 {object} dto.PreferencesDTO
// @Router /preferences [get]
func GetPreferencesHandler(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		language, theme := st.Preferences()
		return c.JSON(dto.PreferencesDTO{Language: language, Theme: theme})
	}
}

// SetPreferencesHandler godoc
// @Summary Set UI preferences
// @Tags preferences
// @Accept json
// @Produce json
// @Param body body dto.PreferencesDTO true "Preferences"
// @Success 200 {object} dto.PreferencesDTO
// @Failure 400 {object} dto.ErrorResponse
// @Router /preferences [put]
func SetPreferencesHandler(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body dto.PreferencesDTO
		if err := c.BodyParser(&body); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid request body"})
		}
		st.SetPreferences(c.Context(), body.Language, body.Theme)
		return c.JSON(body)
	}
}
