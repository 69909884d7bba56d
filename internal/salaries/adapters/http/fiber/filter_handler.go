package fiber

import (
	"context"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"salary-viz-service/internal/salaries/core/domain"
	"salary-viz-service/internal/salaries/core/usecase"
)

type SetFilterUseCase interface {
	Execute(ctx context.Context, in usecase.SetFilterInput) (domain.FilterSelection, error)
	Current() domain.FilterSelection
}

type HighlightUseCase interface {
	Execute(ctx context.Context, key string) error
}

type FilterHandler struct {
	filterUC    SetFilterUseCase
	highlightUC HighlightUseCase
}

func NewFilterHandler(filterUC SetFilterUseCase, highlightUC HighlightUseCase) *FilterHandler {
	return &FilterHandler{filterUC: filterUC, highlightUC: highlightUC}
}

// GetFilter godoc
// @Summary Current filter selection
// @Tags Filter
// @Produce json
// @Success 200 {object} FilterResponse
// @Router /filter [get]
func (h *FilterHandler) GetFilter(c *fiber.Ctx) error {
	return c.Status(http.StatusOK).JSON(toFilterResponse(h.filterUC.Current()))
}

// SetFilter godoc
// @Summary Replace the filter selection
// @Description Sets the selected categories of one dimension. Unknown values are dropped; an empty list shows everything.
// @Tags Filter
// @Accept json
// @Produce json
// @Param request body FilterRequest true "Filter selection"
// @Success 200 {object} FilterResponse
// @Failure 400 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /filter [put]
func (h *FilterHandler) SetFilter(c *fiber.Ctx) error {
	var req FilterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error: "invalid_json",
		})
	}

	sel, err := h.filterUC.Execute(c.UserContext(), usecase.SetFilterInput{
		Dimension: req.Dimension,
		Values:    req.Values,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(toFilterResponse(sel))
}

// Highlight godoc
// @Summary Highlight one category
// @Description Emphasizes a category on the linked charts without filtering. An empty key clears it.
// @Tags Filter
// @Accept json
// @Produce json
// @Param request body HighlightRequest true "Highlight key"
// @Success 200 {object} HighlightResponse
// @Failure 400 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /highlight [post]
func (h *FilterHandler) Highlight(c *fiber.Ctx) error {
	var req HighlightRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error: "invalid_json",
		})
	}

	key := domain.NormalizeCategory(req.Key)
	if err := h.highlightUC.Execute(c.UserContext(), key); err != nil {
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(HighlightResponse{Key: key})
}
