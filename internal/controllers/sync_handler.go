package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"placement-backend/dto"
	"placement-backend/internal/syncer"
)

// RefreshHandler godoc
// @Summary Pull the remote snapshot now
// @Description Wholesale-overwrites every collection present in the
// @Description remote response. Local changes not yet pushed are lost —
// @Description read-repair is destructive by contract.
// @Tags sync
// @Produce json
// @Success 200 {object} dto.SyncStatusDTO
// @Failure 502 {object} dto.ErrorResponse
// @Router /sync/refresh [post]
func RefreshHandler(gw *syncer.Gateway) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := gw.FetchAll(c.Context()); err != nil {
			return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Error: err.Error()})
		}
		return c.JSON(syncStatus(gw))
	}
}

// SyncStatusHandler godoc
// @Summary Last successful sync time
// @Tags sync
// @Produce json
// @Success 200 {object} dto.SyncStatusDTO
// @Router /sync/status [get]
func SyncStatusHandler(gw *syncer.Gateway) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(syncStatus(gw))
	}
}

func syncStatus(gw *syncer.Gateway) dto.SyncStatusDTO {
	last := gw.LastSync()
	if last.IsZero() {
		return dto.SyncStatusDTO{}
	}
	return dto.SyncStatusDTO{LastSync: last.Format(time.RFC3339)}
}
