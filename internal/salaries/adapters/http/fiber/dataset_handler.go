package fiber

import (
	"context"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"salary-viz-service/internal/salaries/core/usecase"
)

type DatasetUseCase interface {
	Reload(ctx context.Context) (usecase.DatasetInfo, error)
	Info(ctx context.Context) (usecase.DatasetInfo, error)
}

type DatasetHandler struct {
	uc DatasetUseCase
}

func NewDatasetHandler(uc DatasetUseCase) *DatasetHandler {
	return &DatasetHandler{uc: uc}
}

// GetDataset godoc
// @Summary Describe the loaded dataset
// @Description Returns the dataset id, source, record counts and category vocabulary
// @Tags Dataset
// @Produce json
// @Success 200 {object} DatasetResponse
// @Failure 503 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /dataset [get]
func (h *DatasetHandler) GetDataset(c *fiber.Ctx) error {
	info, err := h.uc.Info(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(toDatasetResponse(info))
}

// ReloadDataset godoc
// @Summary Reload the dataset
// @Description Reloads from the configured source and refreshes every chart. The previous dataset stays on failure.
// @Tags Dataset
// @Produce json
// @Success 200 {object} DatasetResponse
// @Failure 500 {object} ErrorResponse
// @Router /dataset/reload [post]
func (h *DatasetHandler) ReloadDataset(c *fiber.Ctx) error {
	info, err := h.uc.Reload(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(toDatasetResponse(info))
}
