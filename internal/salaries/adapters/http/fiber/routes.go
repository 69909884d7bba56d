package fiber

import "github.com/gofiber/fiber/v2"

type Handlers struct {
	Dataset *DatasetHandler
	Filter  *FilterHandler
	Chart   *ChartHandler
}

func RegisterRoutes(app fiber.Router, h Handlers) {
	app.Get("/dataset", h.Dataset.GetDataset)
	app.Post("/dataset/reload", h.Dataset.ReloadDataset)

	app.Get("/filter", h.Filter.GetFilter)
	app.Put("/filter", h.Filter.SetFilter)
	app.Post("/highlight", h.Filter.Highlight)

	app.Get("/charts", h.Chart.ListCharts)
	app.Get("/charts/:name", h.Chart.GetChart)
	app.Get("/charts/:name/svg", h.Chart.GetChartSVG)
}
