package contract

import (
	"fmt"
	"maps"
	"runtime"
	"strconv"
	"strings"
	"time"

	"trendscope/schema"
)

// Default values for configuration.
const (
	DefaultResultLimit = 25
	MaxResultLimit     = 1000
	DefaultPrecision   = 1
)

// DefaultWorkers is the default number of concurrent workers to use.
var DefaultWorkers = runtime.GOMAXPROCS(0)

// DateTimeFormat is the default date time representation.
var DateTimeFormat = time.RFC3339

// ProfileConfig holds profiling settings.
type ProfileConfig struct {
	Enabled bool
	Prefix  string
}

// ScorerWeightsRaw holds the custom weights for a single scorer.
// Use float64 pointers so absent fields fall back to defaults.
type ScorerWeightsRaw struct {
	Level        *float64 `mapstructure:"level"`
	Growth       *float64 `mapstructure:"growth"`
	Momentum     *float64 `mapstructure:"momentum"`
	Consistency  *float64 `mapstructure:"consistency"`
	Acceleration *float64 `mapstructure:"acceleration"`
	EarlyStage   *float64 `mapstructure:"early_stage"`
	Rising       *float64 `mapstructure:"rising"`
	Headroom     *float64 `mapstructure:"headroom"`
}

// WeightsRawInput holds all custom scorer definitions from the YAML config file.
type WeightsRawInput struct {
	Trend     *ScorerWeightsRaw `mapstructure:"trend"`
	Potential *ScorerWeightsRaw `mapstructure:"potential"`
}

// TuningRawInput holds engine tuning overrides from the YAML config file.
type TuningRawInput struct {
	MatrixThreshold  *float64 `mapstructure:"matrix-threshold"`
	PeakThreshold    *float64 `mapstructure:"peak-threshold"`
	MinAmplitude     *float64 `mapstructure:"min-amplitude"`
	RisingSaturation *float64 `mapstructure:"rising-saturation"`
}

// GateRawInput holds check-gate threshold definitions from the YAML config file.
type GateRawInput struct {
	Trend     *float64 `mapstructure:"trend"`
	Potential *float64 `mapstructure:"potential"`
	Combined  *float64 `mapstructure:"combined"`
}

// Check-gate keys accepted by --gate-override and the config file.
const (
	GateTrend     = "trend"
	GatePotential = "potential"
	GateCombined  = "combined"
)

// Config holds the runtime configuration for a scoring run.
// This struct remains the "final, validated" config.
type Config struct {
	InputPath   string
	ResultLimit int
	Workers     int
	Keywords    []string // optional keyword filter, empty means all
	Detail      bool
	Explain     bool
	Precision   int
	Output      schema.OutputMode
	OutputFile  string
	Width       int // Terminal width override (0 = auto-detect)

	CacheBackend   schema.DatabaseBackend
	CacheDBConnect string // Please use env var as this is plaintext

	HistoryBackend   schema.DatabaseBackend
	HistoryDBConnect string // Please use env var as this is plaintext

	// Params is the validated engine configuration: defaults merged with
	// weight and tuning overrides.
	Params schema.EngineParams

	// CustomWeights is a mapping of [ScorerKind][BreakdownKey] = Weight,
	// holding only the user-provided overrides for display purposes.
	CustomWeights map[schema.ScorerKind]map[schema.BreakdownKey]float64

	// GateThresholds maps trend/potential/combined to the minimum score a
	// keyword must reach before the check command fails the build.
	GateThresholds map[string]float64

	UseColors bool // Enable colored labels in table output
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	// This is set manually from positional args, so no tag
	InputPathStr string

	// --- Fields from rootCmd.PersistentFlags() ---
	OutputFile       string `mapstructure:"output-file"`
	Limit            int    `mapstructure:"limit"`
	Workers          int    `mapstructure:"workers"`
	Keywords         string `mapstructure:"keywords"`
	Precision        int    `mapstructure:"precision"`
	Output           string `mapstructure:"output"`
	Detail           bool   `mapstructure:"detail"`
	Width            int    `mapstructure:"width"`
	CacheBackend     string `mapstructure:"cache-backend"`
	CacheDBConnect   string `mapstructure:"cache-db-connect"`
	HistoryBackend   string `mapstructure:"history-backend"`
	HistoryDBConnect string `mapstructure:"history-db-connect"`
	Color            string `mapstructure:"color"`

	// --- Fields from scoreCmd.Flags() ---
	Explain bool `mapstructure:"explain"`

	// --- Fields from checkCmd.Flags() ---
	GateStr string `mapstructure:"gate-override"`

	// --- Custom weights from config file ---
	Weights WeightsRawInput `mapstructure:"weights"`

	// --- Engine tuning from config file ---
	Tuning TuningRawInput `mapstructure:"tuning"`

	// --- Check gate thresholds from config file ---
	Gate GateRawInput `mapstructure:"gate"`
}

// Clone returns a deep copy of the Config struct.
func (c *Config) Clone() *Config {
	clone := *c
	if c.Keywords != nil {
		clone.Keywords = make([]string, len(c.Keywords))
		copy(clone.Keywords, c.Keywords)
	}
	if c.CustomWeights != nil {
		clone.CustomWeights = make(map[schema.ScorerKind]map[schema.BreakdownKey]float64)
		for kind, kindMap := range c.CustomWeights {
			clone.CustomWeights[kind] = make(map[schema.BreakdownKey]float64)
			maps.Copy(clone.CustomWeights[kind], kindMap)
		}
	}
	if c.GateThresholds != nil {
		clone.GateThresholds = make(map[string]float64)
		maps.Copy(clone.GateThresholds, c.GateThresholds)
	}
	clone.Params.TrendWeights = make(map[schema.BreakdownKey]float64)
	maps.Copy(clone.Params.TrendWeights, c.Params.TrendWeights)
	clone.Params.PotentialWeights = make(map[schema.BreakdownKey]float64)
	maps.Copy(clone.Params.PotentialWeights, c.Params.PotentialWeights)
	return &clone
}

// ProcessAndValidate performs all complex parsing and validation on the raw inputs
// and updates the final Config struct.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	// All validation functions read from 'input' and populate 'cfg'.
	if err := validateSimpleInputs(cfg, input); err != nil {
		return err
	}
	if err := processCustomWeights(cfg, input); err != nil {
		return err
	}
	if err := processTuning(cfg, input); err != nil {
		return err
	}
	if err := processGateThresholds(cfg, input); err != nil {
		return err
	}
	return nil
}

// ValidateDatabaseConnectionString validates the format of database connection strings
// for MySQL and PostgreSQL backends.
func ValidateDatabaseConnectionString(backend schema.DatabaseBackend, connStr string) error {
	switch backend {
	case schema.SQLiteBackend, schema.NoneBackend:
		return nil
	case schema.MySQLBackend:
		if connStr == "" {
			return fmt.Errorf("cache-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "@tcp(") {
			return fmt.Errorf("MySQL connection string must contain '@tcp(' for host:port specification")
		}
		if !strings.Contains(connStr, "/") {
			return fmt.Errorf("MySQL connection string must contain '/' followed by database name")
		}
	case schema.PostgreSQLBackend:
		if connStr == "" {
			return fmt.Errorf("cache-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "host=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'host=' parameter")
		}
		if !strings.Contains(connStr, "dbname=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'dbname=' parameter")
		}
	}
	return nil
}

// validateBackendConfigs validates cache and history backend configurations.
func validateBackendConfigs(cfg *Config, input *ConfigRawInput) error {
	// --- Cache Backend Validation ---
	cfg.CacheBackend = schema.DatabaseBackend(strings.ToLower(input.CacheBackend))
	if _, ok := schema.ValidCacheBackends[cfg.CacheBackend]; !ok {
		return fmt.Errorf("invalid cache backend '%s'. must be sqlite, mysql, postgresql, none", input.CacheBackend)
	}
	cfg.CacheDBConnect = input.CacheDBConnect
	if err := ValidateDatabaseConnectionString(cfg.CacheBackend, cfg.CacheDBConnect); err != nil {
		return err
	}

	// --- History Backend Validation ---
	cfg.HistoryBackend = schema.DatabaseBackend(strings.ToLower(input.HistoryBackend))
	if cfg.HistoryBackend != "" {
		if _, ok := schema.ValidCacheBackends[cfg.HistoryBackend]; !ok {
			return fmt.Errorf("invalid history backend '%s'. must be sqlite, mysql, postgresql, none", input.HistoryBackend)
		}
		cfg.HistoryDBConnect = input.HistoryDBConnect
		if err := ValidateDatabaseConnectionString(cfg.HistoryBackend, cfg.HistoryDBConnect); err != nil {
			return err
		}

		// Validate that cache and history use different databases
		if cfg.CacheBackend == cfg.HistoryBackend && cfg.CacheBackend == schema.SQLiteBackend {
			cacheDBPath := cfg.CacheDBConnect
			if cacheDBPath == "" {
				cacheDBPath = GetCacheDBFilePath()
			}
			historyDBPath := cfg.HistoryDBConnect
			if historyDBPath == "" {
				historyDBPath = GetHistoryDBFilePath()
			}
			if cacheDBPath == historyDBPath {
				return fmt.Errorf("cache and history storage must use different SQLite database files. Both resolve to %q", cacheDBPath)
			}
		}
	}

	return nil
}

// validateSimpleInputs processes and validates all non-weight related fields.
func validateSimpleInputs(cfg *Config, input *ConfigRawInput) error {
	// --- 0. Transfer simple non-validated fields from input -> cfg ---
	cfg.InputPath = input.InputPathStr
	cfg.OutputFile = input.OutputFile
	cfg.Detail = input.Detail
	cfg.Explain = input.Explain
	cfg.Width = input.Width

	// Parse color flag
	colors, err := ParseBoolString(input.Color)
	if err != nil {
		return fmt.Errorf("invalid --color value: %w", err)
	}
	cfg.UseColors = colors

	// --- 1. ResultLimit Validation ---
	if input.Limit <= 0 || input.Limit > MaxResultLimit {
		return fmt.Errorf("limit must be greater than 0 and cannot exceed %d (received %d)", MaxResultLimit, input.Limit)
	}
	cfg.ResultLimit = input.Limit

	// --- 2. Workers Validation ---
	if input.Workers <= 0 {
		return fmt.Errorf("workers must be greater than 0 (received %d)", input.Workers)
	}
	cfg.Workers = input.Workers

	// --- 3. Keyword Filter Processing ---
	cfg.Keywords = nil
	if input.Keywords != "" {
		for part := range strings.SplitSeq(input.Keywords, ",") {
			trimmed := strings.TrimSpace(part)
			if trimmed != "" {
				cfg.Keywords = append(cfg.Keywords, trimmed)
			}
		}
	}

	// --- 4. Precision and Output Validation ---
	if input.Precision < 1 || input.Precision > 2 {
		return fmt.Errorf("precision must be 1 or 2 (received %d)", input.Precision)
	}
	cfg.Precision = input.Precision

	cfg.Output = schema.OutputMode(strings.ToLower(input.Output))
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output format '%s'. must be text, csv, json, parquet", cfg.Output)
	}

	// --- 5. Backend Validation ---
	if err := validateBackendConfigs(cfg, input); err != nil {
		return err
	}

	return nil
}

// ProcessWeightsRawInput converts WeightsRawInput into the final weights map.
// If validateSum is true, it validates that weights for each scorer sum to 1.0.
func ProcessWeightsRawInput(weights WeightsRawInput, validateSum bool) (map[schema.ScorerKind]map[schema.BreakdownKey]float64, error) {
	result := make(map[schema.ScorerKind]map[schema.BreakdownKey]float64)

	kindWeights := map[schema.ScorerKind]*ScorerWeightsRaw{
		schema.TrendScorer:     weights.Trend,
		schema.PotentialScorer: weights.Potential,
	}

	// Process each scorer's raw weights and validate sums if required.
	// Skip scorers that are nil (not provided)
	for _, kind := range schema.AllScorerKinds {
		rawKind := kindWeights[kind]
		if rawKind == nil {
			continue
		}

		kindMap := make(map[schema.BreakdownKey]float64)
		sum := 0.0

		if rawKind.Level != nil {
			kindMap[schema.BreakdownLevel] = *rawKind.Level
			sum += *rawKind.Level
		}
		if rawKind.Growth != nil {
			kindMap[schema.BreakdownGrowth] = *rawKind.Growth
			sum += *rawKind.Growth
		}
		if rawKind.Momentum != nil {
			kindMap[schema.BreakdownMomentum] = *rawKind.Momentum
			sum += *rawKind.Momentum
		}
		if rawKind.Consistency != nil {
			kindMap[schema.BreakdownConsistency] = *rawKind.Consistency
			sum += *rawKind.Consistency
		}
		if rawKind.Acceleration != nil {
			kindMap[schema.BreakdownAcceleration] = *rawKind.Acceleration
			sum += *rawKind.Acceleration
		}
		if rawKind.EarlyStage != nil {
			kindMap[schema.BreakdownEarlyStage] = *rawKind.EarlyStage
			sum += *rawKind.EarlyStage
		}
		if rawKind.Rising != nil {
			kindMap[schema.BreakdownRising] = *rawKind.Rising
			sum += *rawKind.Rising
		}
		if rawKind.Headroom != nil {
			kindMap[schema.BreakdownHeadroom] = *rawKind.Headroom
			sum += *rawKind.Headroom
		}

		// Only add to result if we have at least one weight
		if len(kindMap) > 0 {
			if validateSum && (sum < 0.999 || sum > 1.001) {
				return nil, fmt.Errorf("custom weights for scorer %s must sum to 1.0, got %.3f", kind, sum)
			}
			result[kind] = kindMap
		}
	}

	return result, nil
}

// processCustomWeights converts the raw input into the final cfg.CustomWeights map
// and validates that the provided weights for any scorer sum up to 1.0.
// Also merges the final weights into cfg.Params.
func processCustomWeights(cfg *Config, input *ConfigRawInput) error {
	weights, err := ProcessWeightsRawInput(input.Weights, true)
	if err != nil {
		return err
	}
	cfg.CustomWeights = weights

	cfg.Params = schema.DefaultEngineParams()
	if custom, ok := weights[schema.TrendScorer]; ok {
		maps.Copy(cfg.Params.TrendWeights, custom)
	}
	if custom, ok := weights[schema.PotentialScorer]; ok {
		maps.Copy(cfg.Params.PotentialWeights, custom)
	}

	return nil
}

// processTuning applies engine tuning overrides onto cfg.Params.
func processTuning(cfg *Config, input *ConfigRawInput) error {
	if input.Tuning.MatrixThreshold != nil {
		v := *input.Tuning.MatrixThreshold
		if v < 0 || v > 100 {
			return fmt.Errorf("matrix-threshold must be between 0 and 100 (received %.2f)", v)
		}
		cfg.Params.MatrixThreshold = v
	}
	if input.Tuning.PeakThreshold != nil {
		v := *input.Tuning.PeakThreshold
		if v <= 1 {
			return fmt.Errorf("peak-threshold must be greater than 1 (received %.2f)", v)
		}
		cfg.Params.PeakThreshold = v
	}
	if input.Tuning.MinAmplitude != nil {
		v := *input.Tuning.MinAmplitude
		if v <= 1 {
			return fmt.Errorf("min-amplitude must be greater than 1 (received %.2f)", v)
		}
		cfg.Params.MinAmplitude = v
	}
	if input.Tuning.RisingSaturation != nil {
		v := *input.Tuning.RisingSaturation
		if v <= 0 {
			return fmt.Errorf("rising-saturation must be greater than 0 (received %.2f)", v)
		}
		cfg.Params.RisingSaturation = v
	}
	return nil
}

// processGateThresholds converts the raw gate input into the final cfg.GateThresholds map.
// If no thresholds are provided, the combined score is gated at the Low tier cutoff.
// Command-line --gate-override flag takes precedence over config file settings.
func processGateThresholds(cfg *Config, input *ConfigRawInput) error {
	thresholds := map[string]float64{
		GateTrend:     0.0,
		GatePotential: 0.0,
		GateCombined:  schema.LowTierCutoff,
	}

	// Override with config file values if provided
	if input.Gate.Trend != nil {
		thresholds[GateTrend] = *input.Gate.Trend
	}
	if input.Gate.Potential != nil {
		thresholds[GatePotential] = *input.Gate.Potential
	}
	if input.Gate.Combined != nil {
		thresholds[GateCombined] = *input.Gate.Combined
	}

	// Override with command-line flag if provided (takes precedence)
	if input.GateStr != "" {
		parsed, err := parseGateString(input.GateStr)
		if err != nil {
			return fmt.Errorf("invalid --gate-override format: %w", err)
		}
		maps.Copy(thresholds, parsed)
	}

	// Validate thresholds
	for key, threshold := range thresholds {
		if threshold < 0.0 || threshold > 100.0 {
			return fmt.Errorf("gate threshold for %s must be between 0.0 and 100.0 (received %.2f)", key, threshold)
		}
	}

	cfg.GateThresholds = thresholds
	return nil
}

// ProcessProfilingConfig handles the profiling flag and sets up profiling configuration.
func ProcessProfilingConfig(profile *ProfileConfig, profilePrefix string) error {
	if profilePrefix != "" {
		profile.Enabled = true
		profile.Prefix = profilePrefix
	}
	return nil
}

// parseGateString parses a string like "trend:40,potential:60,combined:55"
// into a map of gate key to float64.
func parseGateString(s string) (map[string]float64, error) {
	thresholds := make(map[string]float64)

	if s == "" {
		return thresholds, nil
	}

	for part := range strings.SplitSeq(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		keyValue := strings.Split(part, ":")
		if len(keyValue) != 2 {
			return nil, fmt.Errorf("invalid gate format '%s', expected 'key:value'", part)
		}

		key := strings.ToLower(strings.TrimSpace(keyValue[0]))
		valueStr := strings.TrimSpace(keyValue[1])

		switch key {
		case GateTrend, GatePotential, GateCombined:
		default:
			return nil, fmt.Errorf("invalid gate key '%s', must be trend, potential, or combined", key)
		}

		value, err := strconv.ParseFloat(valueStr, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid gate value '%s' for %s: %w", valueStr, key, err)
		}

		thresholds[key] = value
	}

	return thresholds, nil
}
