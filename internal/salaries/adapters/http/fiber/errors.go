package fiber

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"salary-viz-service/internal/salaries/core/crossfilter"
	"salary-viz-service/internal/salaries/core/usecase"
)

func writeError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, usecase.ErrInvalidDimension),
		errors.Is(err, crossfilter.ErrInvalidDimension):
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_filter",
			Message: err.Error(),
		})
	case errors.Is(err, usecase.ErrUnknownChart):
		return c.Status(http.StatusNotFound).JSON(ErrorResponse{
			Error:   "unknown_chart",
			Message: err.Error(),
		})
	case errors.Is(err, usecase.ErrDatasetNotLoaded):
		return c.Status(http.StatusServiceUnavailable).JSON(ErrorResponse{
			Error:   "dataset_not_loaded",
			Message: err.Error(),
		})
	case errors.Is(err, usecase.ErrLoadFailure):
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Error:   "load_failed",
			Message: err.Error(),
		})
	default:
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Error: "internal_server_error",
		})
	}
}
