package fiber

import (
	"context"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"salary-viz-service/internal/salaries/core/views"
)

type GetChartUseCase interface {
	Execute(ctx context.Context, name string) (views.Output, error)
	Names() []string
}

type ChartHandler struct {
	uc GetChartUseCase
}

func NewChartHandler(uc GetChartUseCase) *ChartHandler {
	return &ChartHandler{uc: uc}
}

// ListCharts godoc
// @Summary List chart names
// @Tags Charts
// @Produce json
// @Success 200 {object} ChartListResponse
// @Router /charts [get]
func (h *ChartHandler) ListCharts(c *fiber.Ctx) error {
	return c.Status(http.StatusOK).JSON(ChartListResponse{Charts: h.uc.Names()})
}

// GetChart godoc
// @Summary Chart data
// @Description Returns the aggregated data behind one chart under the current filter
// @Tags Charts
// @Produce json
// @Param name path string true "bar | choropleth | scatter | parallel"
// @Success 200 {object} ChartResponse
// @Failure 404 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /charts/{name} [get]
func (h *ChartHandler) GetChart(c *fiber.Ctx) error {
	out, err := h.uc.Execute(c.UserContext(), c.Params("name"))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(toChartResponse(out))
}

// GetChartSVG godoc
// @Summary Rendered chart
// @Description Returns the chart rendered as SVG under the current filter
// @Tags Charts
// @Produce image/svg+xml
// @Param name path string true "bar | choropleth | scatter | parallel"
// @Success 200 {string} string "SVG document"
// @Failure 404 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /charts/{name}/svg [get]
func (h *ChartHandler) GetChartSVG(c *fiber.Ctx) error {
	out, err := h.uc.Execute(c.UserContext(), c.Params("name"))
	if err != nil {
		return writeError(c, err)
	}
	if !out.Rendered {
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Error:   "chart_not_rendered",
			Message: "the last render of " + out.Name + " failed",
		})
	}

	c.Set(fiber.HeaderContentType, "image/svg+xml")
	return c.Status(http.StatusOK).Send(out.Image)
}
