package fiber

import (
	"time"

	"salary-viz-service/internal/salaries/core/domain"
	"salary-viz-service/internal/salaries/core/usecase"
	"salary-viz-service/internal/salaries/core/views"
)

type ErrorResponse struct {
	Error   string `json:"error" example:"invalid_filter"`
	Message string `json:"message,omitempty" example:"invalid filter dimension"`
}

type DatasetResponse struct {
	ID         string              `json:"id" example:"5b0e8b0c-2f5e-4a52-9d0b-0d6c3f1f7a11"`
	Source     string              `json:"source" example:"csv:salaries.csv"`
	LoadedAt   time.Time           `json:"loaded_at"`
	Records    int                 `json:"records" example:"3755"`
	Excluded   int                 `json:"excluded" example:"12"`
	Categories map[string][]string `json:"categories"`
}

type FilterRequest struct {
	Dimension string   `json:"dimension" example:"experience_level"`
	Values    []string `json:"values" example:"EN,SE"`
}

type FilterResponse struct {
	Dimension string   `json:"dimension" example:"experience_level"`
	Values    []string `json:"values"`
}

type HighlightRequest struct {
	Key string `json:"key" example:"SE"`
}

type HighlightResponse struct {
	Key string `json:"key" example:"SE"`
}

type ChartListResponse struct {
	Charts []string `json:"charts"`
}

type ChartResponse struct {
	Name      string         `json:"name" example:"bar"`
	Container string         `json:"container" example:"#bar"`
	DatasetID string         `json:"dataset_id"`
	Selection FilterResponse `json:"selection"`
	Data      any            `json:"data"`
}

type BucketResponse struct {
	Key   string  `json:"key" example:"SE"`
	Label string  `json:"label" example:"Senior-Level"`
	Value float64 `json:"value" example:"153051.07"`
	Count int     `json:"count" example:"2516"`
}

type BarDataResponse struct {
	Title     string           `json:"title"`
	Reduction string           `json:"reduction" example:"mean"`
	YMax      float64          `json:"y_max"`
	Highlight string           `json:"highlight,omitempty"`
	Buckets   []BucketResponse `json:"buckets"`
}

type RegionResponse struct {
	ID      string  `json:"id" example:"USA"`
	Name    string  `json:"name" example:"United States"`
	Value   float64 `json:"value"`
	HasData bool    `json:"has_data"`
}

type ChoroplethDataResponse struct {
	Title     string           `json:"title"`
	MaxValue  float64          `json:"max_value"`
	Regions   []RegionResponse `json:"regions"`
	Unmatched []string         `json:"unmatched,omitempty"`
}

type ScatterPointResponse struct {
	Country             string  `json:"country" example:"US"`
	AverageSalary       float64 `json:"average_salary"`
	AverageCostOfLiving float64 `json:"average_cost_of_living"`
	Count               int     `json:"count"`
}

type ScatterDataResponse struct {
	Title  string                 `json:"title"`
	XMax   float64                `json:"x_max"`
	YMax   float64                `json:"y_max"`
	Points []ScatterPointResponse `json:"points"`
}

type AxisResponse struct {
	Field string  `json:"field" example:"salary"`
	Min   float64 `json:"min"`
	Max   float64 `json:"max"`
}

type LineResponse struct {
	Key    string    `json:"key" example:"EN"`
	Values []float64 `json:"values"`
}

type ParallelDataResponse struct {
	Title     string         `json:"title"`
	Highlight string         `json:"highlight,omitempty"`
	Axes      []AxisResponse `json:"axes"`
	Lines     []LineResponse `json:"lines"`
}

func toDatasetResponse(info usecase.DatasetInfo) DatasetResponse {
	cats := make(map[string][]string, len(info.Categories))
	for d, vs := range info.Categories {
		cats[string(d)] = vs
	}
	return DatasetResponse{
		ID:         info.ID,
		Source:     info.Source,
		LoadedAt:   info.LoadedAt,
		Records:    info.Records,
		Excluded:   info.Excluded,
		Categories: cats,
	}
}

func toFilterResponse(sel domain.FilterSelection) FilterResponse {
	values := sel.Values
	if values == nil {
		values = []string{}
	}
	return FilterResponse{Dimension: string(sel.Dimension), Values: values}
}

func toChartResponse(out views.Output) ChartResponse {
	return ChartResponse{
		Name:      out.Name,
		Container: out.Container,
		DatasetID: out.DatasetID,
		Selection: toFilterResponse(out.Selection),
		Data:      toChartData(out.Data),
	}
}

func toChartData(data any) any {
	switch d := data.(type) {
	case domain.BarChart:
		resp := BarDataResponse{
			Title:     d.Title,
			Reduction: string(d.Reduction),
			YMax:      d.YMax,
			Highlight: d.Highlight,
			Buckets:   make([]BucketResponse, 0, len(d.Buckets)),
		}
		for _, b := range d.Buckets {
			resp.Buckets = append(resp.Buckets, BucketResponse{
				Key:   b.Key,
				Label: domain.ExperienceLabel(b.Key),
				Value: b.Value,
				Count: b.Count,
			})
		}
		return resp

	case domain.ChoroplethMap:
		resp := ChoroplethDataResponse{
			Title:     d.Title,
			MaxValue:  d.MaxValue,
			Regions:   make([]RegionResponse, 0, len(d.Regions)),
			Unmatched: d.Unmatched,
		}
		for _, r := range d.Regions {
			resp.Regions = append(resp.Regions, RegionResponse{ID: r.ID, Name: r.Name, Value: r.Value, HasData: r.Data})
		}
		return resp

	case domain.ScatterPlot:
		resp := ScatterDataResponse{
			Title:  d.Title,
			XMax:   d.XMax,
			YMax:   d.YMax,
			Points: make([]ScatterPointResponse, 0, len(d.Points)),
		}
		for _, p := range d.Points {
			resp.Points = append(resp.Points, ScatterPointResponse{
				Country:             p.Country,
				AverageSalary:       p.AverageSalary,
				AverageCostOfLiving: p.AverageCostOfLiving,
				Count:               p.Count,
			})
		}
		return resp

	case domain.ParallelPlot:
		resp := ParallelDataResponse{
			Title:     d.Title,
			Highlight: d.Highlight,
			Axes:      make([]AxisResponse, 0, len(d.Axes)),
			Lines:     make([]LineResponse, 0, len(d.Lines)),
		}
		for _, a := range d.Axes {
			resp.Axes = append(resp.Axes, AxisResponse{Field: string(a.Field), Min: a.Min, Max: a.Max})
		}
		for _, l := range d.Lines {
			resp.Lines = append(resp.Lines, LineResponse{Key: l.Key, Values: l.Values})
		}
		return resp
	}
	return nil
}
