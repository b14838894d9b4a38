package controllers

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"placement-backend/dto"
	"placement-backend/internal/services"
)

// ExportReportHandler godoc
// @Summary Export the student status report
// @Description Filters by major and then by either an inclusive ISO
// @Description date range (start/end) or exact term + academic year.
// @Description A filter matching zero records blocks the export.
// @Tags report
// @Produce application/octet-stream
// @Param major query string true "Major" Enums(halal_food, it, logistics, general)
// @Param start query string false "Range start (yyyy-mm-dd)"
// @Param end query string false "Range end (yyyy-mm-dd)"
// @Param term query string false "Term (used with year)"
// @Param year query string false "Academic year, e.g. 2567"
// @Param format query string false "csv (default) or xlsx"
// @Success 200 {file} file
// @Failure 400 {object} dto.ErrorResponse
// @Router /report/export [get]
func ExportReportHandler(svc *services.StatusService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		filter := services.ReportFilter{
			Major: c.Query("major"),
			Start: c.Query("start"),
			End:   c.Query("end"),
			Term:  c.Query("term"),
			Year:  c.Query("year"),
		}
		if filter.Major == "" {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "major is required"})
		}

		records := svc.List()

		var (
			payload     []byte
			err         error
			filename    string
			contentType string
		)
		switch c.Query("format", "csv") {
		case "xlsx":
			payload, err = services.BuildReportXLSX(records, filter)
			filename = services.ReportFilename("xlsx")
			contentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
		case "csv":
			payload, err = services.BuildReportCSV(records, filter)
			filename = services.ReportFilename("csv")
			contentType = "text/csv; charset=utf-8"
		default:
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "unknown format"})
		}
		if err != nil {
			if errors.Is(err, services.ErrNoMatchingRows) {
				return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "no records match the selected filter"})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error()})
		}

		c.Set(fiber.HeaderContentType, contentType)
		c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
		return c.Send(payload)
	}
}
