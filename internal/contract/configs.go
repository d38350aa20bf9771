package contract

import (
	"fmt"
	"maps"
	"runtime"
	"strings"

	"github.com/crawlscore/crawlscore/schema"
)

// Default values for configuration.
const (
	DefaultPrecision = 1
	MaxPrecision     = 2
	DefaultMaxRows   = 1_000_000
	DefaultRankLimit = 25
)

// DefaultWorkers is the default number of concurrent workers for batch runs.
var DefaultWorkers = runtime.GOMAXPROCS(0)

// DateTimeFormat is the default date time representation.
const DateTimeFormat = "2006-01-02 15:04:05"

// WeightsRawInput holds category weight overrides from the YAML config file.
// Pointers distinguish "not set" from an explicit zero.
type WeightsRawInput struct {
	Content   *float64 `mapstructure:"content"`
	Technical *float64 `mapstructure:"technical"`
	UX        *float64 `mapstructure:"ux"`
}

// ThresholdsRawInput holds alert threshold overrides from the YAML config file.
type ThresholdsRawInput struct {
	Default      *int `mapstructure:"default"`
	Indexability *int `mapstructure:"indexability"`
}

// ConfigRawInput holds the raw, unvalidated configuration from all sources
// (file, env, flags). Viper unmarshals into this struct; validation then
// populates the final Config.
type ConfigRawInput struct {
	Output           string              `mapstructure:"output"`
	OutputFile       string              `mapstructure:"output-file"`
	Workers          int                 `mapstructure:"workers"`
	Precision        int                 `mapstructure:"precision"`
	Detail           bool                `mapstructure:"detail"`
	Ranked           bool                `mapstructure:"ranked"`
	Limit            int                 `mapstructure:"limit"`
	Color            string              `mapstructure:"color"`
	MaxRows          int                 `mapstructure:"max-rows"`
	NoWeaknesses     bool                `mapstructure:"no-weaknesses"`
	HistoryBackend   string              `mapstructure:"history-backend"`
	HistoryDBConnect string              `mapstructure:"history-db-connect"`
	Weights          *WeightsRawInput    `mapstructure:"weights"`
	Thresholds       *ThresholdsRawInput `mapstructure:"thresholds"`
}

// Config holds the validated runtime configuration. It is read-only after
// ProcessAndValidate and is the only state shared between batch workers.
type Config struct {
	Weights          map[schema.Category]float64 // Category weights, validated non-negative
	Alerts           map[string]int              // Per-metric alert thresholds
	Workers          int
	Output           schema.OutputMode
	OutputFile       string
	Precision        int
	Detail           bool
	Ranked           bool
	Limit            int
	Color            bool
	MaxRows          int
	ShowWeaknesses   bool
	HistoryBackend   schema.DatabaseBackend
	HistoryDBConnect string
}

// Clone returns a deep copy of the config so callers can override fields
// without mutating the shared read-only instance.
func (c *Config) Clone() *Config {
	clone := *c
	clone.Weights = maps.Clone(c.Weights)
	clone.Alerts = maps.Clone(c.Alerts)
	return &clone
}

// DefaultWeights returns the default category weight profile. Content and
// Technical dominate; UX refines.
func DefaultWeights() map[schema.Category]float64 {
	return map[schema.Category]float64{
		schema.ContentCategory:   0.4,
		schema.TechnicalCategory: 0.4,
		schema.UXCategory:        0.2,
	}
}

// ProcessAndValidate performs all parsing and validation on the raw inputs
// and populates the final Config. Invalid weights and thresholds are
// rejected here, before any scoring begins.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	if err := validateSimpleInputs(cfg, input); err != nil {
		return err
	}
	if err := processWeights(cfg, input); err != nil {
		return err
	}
	if err := processAlertThresholds(cfg, input); err != nil {
		return err
	}
	if err := validateBackendConfig(cfg, input); err != nil {
		return err
	}
	return nil
}

// validateSimpleInputs handles the scalar knobs.
func validateSimpleInputs(cfg *Config, input *ConfigRawInput) error {
	cfg.Output = schema.OutputMode(strings.ToLower(input.Output))
	if cfg.Output == "" {
		cfg.Output = schema.TextOut
	}
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output mode '%s'. must be text, csv, json, parquet", input.Output)
	}
	cfg.OutputFile = input.OutputFile

	cfg.Workers = input.Workers
	if cfg.Workers < 1 {
		cfg.Workers = DefaultWorkers
	}

	cfg.Precision = input.Precision
	if cfg.Precision < 0 {
		cfg.Precision = 0
	}
	if cfg.Precision > MaxPrecision {
		cfg.Precision = MaxPrecision
	}

	cfg.Limit = input.Limit
	if cfg.Limit < 1 {
		cfg.Limit = DefaultRankLimit
	}

	cfg.MaxRows = input.MaxRows
	if cfg.MaxRows < 1 {
		cfg.MaxRows = DefaultMaxRows
	}

	cfg.Detail = input.Detail
	cfg.Ranked = input.Ranked
	cfg.ShowWeaknesses = !input.NoWeaknesses

	switch strings.ToLower(input.Color) {
	case "", "yes", "true", "1":
		cfg.Color = true
	case "no", "false", "0":
		cfg.Color = false
	default:
		return fmt.Errorf("invalid color setting '%s'. must be yes/no/true/false/1/0", input.Color)
	}
	return nil
}

// processWeights merges weight overrides onto the defaults and validates
// them. A negative weight is rejected outright; an all-zero profile would
// make every overall score 0 and is rejected as well.
func processWeights(cfg *Config, input *ConfigRawInput) error {
	weights := DefaultWeights()
	if input.Weights != nil {
		overrides := map[schema.Category]*float64{
			schema.ContentCategory:   input.Weights.Content,
			schema.TechnicalCategory: input.Weights.Technical,
			schema.UXCategory:        input.Weights.UX,
		}
		for cat, v := range overrides {
			if v == nil {
				continue
			}
			if *v < 0 {
				return fmt.Errorf("invalid weight %.2f for category '%s': weights must be non-negative", *v, cat)
			}
			weights[cat] = *v
		}
	}

	var total float64
	for _, w := range weights {
		total += w
	}
	if total <= 0 {
		return fmt.Errorf("category weights sum to zero; at least one category must carry weight")
	}

	cfg.Weights = weights
	return nil
}

// processAlertThresholds builds the per-metric alert threshold map from the
// catalog defaults plus any overrides.
func processAlertThresholds(cfg *Config, input *ConfigRawInput) error {
	alerts := make(map[string]int)
	if input.Thresholds == nil {
		cfg.Alerts = alerts
		return nil
	}
	if d := input.Thresholds.Default; d != nil {
		if *d < 0 || *d > 100 {
			return fmt.Errorf("invalid default alert threshold %d: must be within [0,100]", *d)
		}
		for _, id := range allMetricIDs {
			alerts[id] = *d
		}
	}
	if ix := input.Thresholds.Indexability; ix != nil {
		if *ix < 0 || *ix > 100 {
			return fmt.Errorf("invalid indexability alert threshold %d: must be within [0,100]", *ix)
		}
		alerts["indexability"] = *ix
	}
	cfg.Alerts = alerts
	return nil
}

// allMetricIDs mirrors the core catalog ids. Kept here so threshold
// overrides do not create an import cycle with core.
var allMetricIDs = []string{
	"meta_title", "meta_description", "h1_tags", "internal_linking", "content_quality",
	"response_time", "status_codes", "indexability", "canonical_tags",
	"mobile_friendly", "largest_contentful_paint", "cumulative_layout_shift", "first_input_delay",
}

// validateBackendConfig validates the history backend selection.
func validateBackendConfig(cfg *Config, input *ConfigRawInput) error {
	backend := schema.DatabaseBackend(strings.ToLower(input.HistoryBackend))
	if backend == "" {
		backend = schema.NoneBackend
	}
	if _, ok := schema.ValidDatabaseBackends[backend]; !ok {
		return fmt.Errorf("invalid history backend '%s'. must be sqlite, mysql, postgresql, none", input.HistoryBackend)
	}
	cfg.HistoryBackend = backend
	cfg.HistoryDBConnect = input.HistoryDBConnect
	return ValidateDatabaseConnectionString(backend, input.HistoryDBConnect)
}

// ValidateDatabaseConnectionString validates the format of database
// connection strings for MySQL and PostgreSQL backends.
func ValidateDatabaseConnectionString(backend schema.DatabaseBackend, connStr string) error {
	switch backend {
	case schema.SQLiteBackend, schema.NoneBackend:
		return nil
	case schema.MySQLBackend:
		if connStr == "" {
			return fmt.Errorf("history-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "@tcp(") {
			return fmt.Errorf("MySQL connection string must contain '@tcp(' for host:port specification")
		}
		if !strings.Contains(connStr, "/") {
			return fmt.Errorf("MySQL connection string must contain '/' followed by database name")
		}
	case schema.PostgreSQLBackend:
		if connStr == "" {
			return fmt.Errorf("history-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "host=") && !strings.HasPrefix(connStr, "postgres://") {
			return fmt.Errorf("PostgreSQL connection string must contain 'host=' or use the postgres:// URL form")
		}
	}
	return nil
}
