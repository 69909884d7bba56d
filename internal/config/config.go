package config

import (
	"os"
	"slices"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	SourceCSV      = "csv"
	SourcePostgres = "postgres"
)

// DefaultGeoURL is a world FeatureCollection keyed by ISO alpha-3 feature ids.
const DefaultGeoURL = "https://raw.githubusercontent.com/holtzy/D3-graph-gallery/master/DATA/world.geojson"

type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Data     DataConfig     `yaml:"data"`
	Geo      GeoConfig      `yaml:"geo"`
	Postgres PostgresConfig `yaml:"postgres"`
	Charts   ChartsConfig   `yaml:"charts"`
	Log      LogConfig      `yaml:"log"`
}

type ServerConfig struct {
	Addr            string        `yaml:"addr"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

type DataConfig struct {
	Source    string            `yaml:"source"` // csv | postgres
	Path      string            `yaml:"path"`
	Delimiter string            `yaml:"delimiter"`
	Columns   map[string]string `yaml:"columns"`  // logical column -> header name
	Required  []string          `yaml:"required"` // logical columns a row must carry
	WorkYears []int64           `yaml:"work_years"`
}

type GeoConfig struct {
	Location string        `yaml:"location"` // file path or URL
	Timeout  time.Duration `yaml:"timeout"`
}

type PostgresConfig struct {
	DSN             string        `yaml:"dsn"` // Prefer POSTGRES_DSN env var
	MaxOpenConns    int           `yaml:"max_open_conns"`
	MaxIdleConns    int           `yaml:"max_idle_conns"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime"`
}

type ChartsConfig struct {
	BarReduction   string   `yaml:"bar_reduction"` // mean | sum
	ParallelFields []string `yaml:"parallel_fields"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // text | json
}

func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:            ":8080",
			ShutdownTimeout: 5 * time.Second,
		},
		Data: DataConfig{
			Source:    SourceCSV,
			Path:      "data/salaries.csv",
			Delimiter: ",",
		},
		Geo: GeoConfig{
			Location: DefaultGeoURL,
			Timeout:  10 * time.Second,
		},
		Postgres: PostgresConfig{
			MaxOpenConns:    20,
			MaxIdleConns:    10,
			ConnMaxLifetime: 30 * time.Minute,
		},
		Charts: ChartsConfig{
			BarReduction:   "mean",
			ParallelFields: []string{"work_year", "salary", "remote_ratio", "cost_of_living"},
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load reads path over the defaults, applies env overrides and validates. An empty path
// skips the file.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read config %s", path)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, errors.Wrapf(err, "failed to parse config %s", path)
		}
	}

	cfg.applyEnv(os.LookupEnv)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) {
	if v, ok := lookup("POSTGRES_DSN"); ok && v != "" {
		c.Postgres.DSN = v
	}
	if v, ok := lookup("SALARYVIZ_DATA_PATH"); ok && v != "" {
		c.Data.Path = v
	}
	if v, ok := lookup("SALARYVIZ_SOURCE"); ok && v != "" {
		c.Data.Source = v
	}
	if v, ok := lookup("SALARYVIZ_GEO"); ok && v != "" {
		c.Geo.Location = v
	}
	if v, ok := lookup("SALARYVIZ_ADDR"); ok && v != "" {
		c.Server.Addr = v
	}
	if v, ok := lookup("SALARYVIZ_LOG_LEVEL"); ok && v != "" {
		c.Log.Level = v
	}
}

var logLevels = []string{"trace", "debug", "info", "warn", "error", "fatal", "disabled"}

func (c *Config) Validate() error {
	switch c.Data.Source {
	case SourceCSV:
		if c.Data.Path == "" {
			return errors.New("data.path is required for the csv source")
		}
	case SourcePostgres:
		if c.Postgres.DSN == "" {
			return errors.New("postgres.dsn (or POSTGRES_DSN) is required for the postgres source")
		}
	default:
		return errors.Errorf("unknown data.source %q", c.Data.Source)
	}

	if utf8.RuneCountInString(c.Data.Delimiter) != 1 {
		return errors.Errorf("data.delimiter must be a single character, got %q", c.Data.Delimiter)
	}
	if c.Server.Addr == "" {
		return errors.New("server.addr is required")
	}
	if c.Charts.BarReduction != "mean" && c.Charts.BarReduction != "sum" {
		return errors.Errorf("charts.bar_reduction must be mean or sum, got %q", c.Charts.BarReduction)
	}
	if !slices.Contains(logLevels, strings.ToLower(c.Log.Level)) {
		return errors.Errorf("unknown log.level %q", c.Log.Level)
	}
	if c.Log.Format != "text" && c.Log.Format != "json" {
		return errors.Errorf("log.format must be text or json, got %q", c.Log.Format)
	}
	return nil
}

// Comma returns the CSV delimiter rune.
func (d DataConfig) Comma() rune {
	r, _ := utf8.DecodeRuneInString(d.Delimiter)
	return r
}
