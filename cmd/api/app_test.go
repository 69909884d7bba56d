package main

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"salary-viz-service/internal/config"
	"salary-viz-service/internal/logging"
	"salary-viz-service/internal/salaries/core/usecase"
	"salary-viz-service/internal/salaries/core/views"
)

const salariesCSV = `work_year,experience_level,employment_type,job_title,salary_in_usd,company_location,alpha-3,NumbeoCoL2023,company_size,remote_ratio
2023,SE,FT,Data Scientist,150000,US,USA,70.2,M,100
2023,SE,FT,ML Engineer,130000,US,USA,70.2,L,0
2022,EN,FT,Data Analyst,50000,DE,DEU,65.1,S,50
2021,MI,CT,Data Engineer,80000,DE,DEU,65.1,M,100
2023,EX,FT,Director,,US,USA,70.2,L,0
`

const worldGeoJSON = `{"type":"FeatureCollection","features":[
 {"type":"Feature","id":"USA","properties":{"name":"United States"},
  "geometry":{"type":"Polygon","coordinates":[[[-120,30],[-70,30],[-70,48],[-120,48],[-120,30]]]}},
 {"type":"Feature","id":"DEU","properties":{"name":"Germany"},
  "geometry":{"type":"Polygon","coordinates":[[[6,47],[15,47],[15,55],[6,55],[6,47]]]}},
 {"type":"Feature","id":"FRA","properties":{"name":"France"},
  "geometry":{"type":"Polygon","coordinates":[[[0,43],[7,43],[7,50],[0,50],[0,43]]]}}
]}`

func testConfig(t *testing.T, csv string) (*config.Config, string) {
	t.Helper()
	dir := t.TempDir()

	dataPath := filepath.Join(dir, "salaries.csv")
	geoPath := filepath.Join(dir, "world.geojson")
	if err := os.WriteFile(dataPath, []byte(csv), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := os.WriteFile(geoPath, []byte(worldGeoJSON), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg := config.Default()
	cfg.Data.Path = dataPath
	cfg.Geo.Location = geoPath
	cfg.Log.Level = "disabled"

	cfgPath := filepath.Join(dir, "config.yaml")
	yaml := "data:\n  path: " + dataPath + "\ngeo:\n  location: " + geoPath + "\nlog:\n  level: disabled\n"
	if err := os.WriteFile(cfgPath, []byte(yaml), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	return cfg, cfgPath
}

// ------------------------------------------------------------
// BOOTSTRAP
// ------------------------------------------------------------

func TestBootstrap(t *testing.T) {
	cfg, _ := testConfig(t, salariesCSV)

	a, err := bootstrap(context.Background(), cfg, logging.Nop())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer a.Close()

	info, err := a.datasetUC.Info(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if info.Records != 4 || info.Excluded != 1 {
		t.Fatalf("expected 4 records and 1 excluded, got %+v", info)
	}

	for _, name := range a.chartUC.Names() {
		out, err := a.chartUC.Execute(context.Background(), name)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", name, err)
		}
		if !out.Rendered || !strings.Contains(string(out.Image), "<svg") {
			t.Fatalf("%s: expected rendered svg", name)
		}
	}
}

func TestBootstrap_LoadFailureKeepsApp(t *testing.T) {
	cfg, _ := testConfig(t, salariesCSV)
	cfg.Data.Path = filepath.Join(t.TempDir(), "missing.csv")

	a, err := bootstrap(context.Background(), cfg, logging.Nop())
	if !errors.Is(err, usecase.ErrLoadFailure) {
		t.Fatalf("expected ErrLoadFailure, got %v", err)
	}
	if a == nil {
		t.Fatalf("expected app to be returned")
	}
	defer a.Close()

	if _, err := a.chartUC.Execute(context.Background(), views.NameBar); !errors.Is(err, usecase.ErrDatasetNotLoaded) {
		t.Fatalf("expected ErrDatasetNotLoaded, got %v", err)
	}
}

func TestBootstrap_BoundaryFailureAborts(t *testing.T) {
	tests := []struct {
		name  string
		setup func(t *testing.T, cfg *config.Config)
	}{
		{"missing_file", func(t *testing.T, cfg *config.Config) {
			cfg.Geo.Location = filepath.Join(t.TempDir(), "missing.geojson")
		}},
		{"not_a_collection", func(t *testing.T, cfg *config.Config) {
			path := filepath.Join(t.TempDir(), "bad.geojson")
			if err := os.WriteFile(path, []byte(`{"type":"Feature"}`), 0o600); err != nil {
				t.Fatalf("write: %v", err)
			}
			cfg.Geo.Location = path
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, _ := testConfig(t, salariesCSV)
			tt.setup(t, cfg)

			a, err := bootstrap(context.Background(), cfg, logging.Nop())
			if !errors.Is(err, usecase.ErrLoadFailure) {
				t.Fatalf("expected ErrLoadFailure, got %v", err)
			}
			if a != nil {
				a.Close()
				t.Fatalf("expected no app when boundaries fail to load")
			}
		})
	}
}

func TestLoaderOptions(t *testing.T) {
	d := config.DataConfig{
		Source:   config.SourceCSV,
		Columns:  map[string]string{"salary": "salary"},
		Required: []string{"salary", "cost_of_living"},
	}
	opts := loaderOptions(d)
	if opts.Columns[usecase.ColumnSalary] != "salary" || len(opts.Required) != 2 {
		t.Fatalf("unexpected options: %+v", opts)
	}

	d.Source = config.SourcePostgres
	if opts := loaderOptions(d); opts.Columns != nil {
		t.Fatalf("postgres source must use default columns, got %v", opts.Columns)
	}
}

// ------------------------------------------------------------
// HTTP (end to end)
// ------------------------------------------------------------

func TestHTTP_FilterRefreshesCharts(t *testing.T) {
	cfg, _ := testConfig(t, salariesCSV)
	a, err := bootstrap(context.Background(), cfg, logging.Nop())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer a.Close()
	app := newHTTPApp(a)

	req := httptest.NewRequest(http.MethodPut, "/filter", strings.NewReader(`{"values":["SE"]}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test error: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.StatusCode)
	}

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/charts/bar", nil))
	if err != nil {
		t.Fatalf("app.Test error: %v", err)
	}
	var body struct {
		Data struct {
			Buckets []struct {
				Key   string  `json:"key"`
				Value float64 `json:"value"`
				Count int     `json:"count"`
			} `json:"buckets"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(body.Data.Buckets) != 1 || body.Data.Buckets[0].Key != "SE" || body.Data.Buckets[0].Value != 140000 {
		t.Fatalf("unexpected buckets: %+v", body.Data.Buckets)
	}

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/charts/choropleth", nil))
	if err != nil {
		t.Fatalf("app.Test error: %v", err)
	}
	var mapBody struct {
		Data struct {
			Regions []struct {
				ID      string `json:"id"`
				HasData bool   `json:"has_data"`
			} `json:"regions"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&mapBody); err != nil {
		t.Fatalf("decode: %v", err)
	}
	for _, r := range mapBody.Data.Regions {
		if want := r.ID == "USA"; r.HasData != want {
			t.Fatalf("region %s: expected has_data=%v under SE filter", r.ID, want)
		}
	}
}

// ------------------------------------------------------------
// CLI
// ------------------------------------------------------------

func TestRenderCommand(t *testing.T) {
	_, cfgPath := testConfig(t, salariesCSV)
	out := filepath.Join(t.TempDir(), "charts")

	cmd := newRootCmd()
	cmd.SetArgs([]string{"render", "--config", cfgPath, "--out", out, "--filter", "SE,EN"})
	cmd.SetErr(&strings.Builder{})
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, name := range []string{"bar", "choropleth", "scatter", "parallel"} {
		data, err := os.ReadFile(filepath.Join(out, name+".svg"))
		if err != nil {
			t.Fatalf("expected %s.svg: %v", name, err)
		}
		if !strings.Contains(string(data), "<svg") {
			t.Fatalf("%s.svg is not an svg document", name)
		}
	}
}

func TestRenderCommand_InvalidDimension(t *testing.T) {
	_, cfgPath := testConfig(t, salariesCSV)

	cmd := newRootCmd()
	cmd.SetArgs([]string{"render", "--config", cfgPath, "--out", t.TempDir(), "--dimension", "salary"})
	cmd.SetErr(&strings.Builder{})
	cmd.SetOut(&strings.Builder{})
	if err := cmd.ExecuteContext(context.Background()); !errors.Is(err, usecase.ErrInvalidDimension) {
		t.Fatalf("expected ErrInvalidDimension, got %v", err)
	}
}

func TestImportCommand_RequiresDSN(t *testing.T) {
	t.Setenv("POSTGRES_DSN", "")
	_, cfgPath := testConfig(t, salariesCSV)

	cmd := newRootCmd()
	cmd.SetArgs([]string{"import", "--config", cfgPath})
	cmd.SetErr(&strings.Builder{})
	cmd.SetOut(&strings.Builder{})
	if err := cmd.ExecuteContext(context.Background()); err == nil || !strings.Contains(err.Error(), "dsn") {
		t.Fatalf("expected dsn error, got %v", err)
	}
}

func TestSplitList(t *testing.T) {
	got := splitList(" EN, ,SE,")
	if len(got) != 2 || got[0] != "EN" || got[1] != "SE" {
		t.Fatalf("unexpected list: %v", got)
	}
}
