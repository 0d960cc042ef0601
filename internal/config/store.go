// Package config assembles the feed server settings from defaults, an
// optional YAML file and environment variables, in that order of precedence.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	pkgconfig "feedstore/internal/pkg/config"
)

// Environment variable names.
const (
	EnvConfigFile       = "CONFIG_FILE"
	EnvStorageFile      = "RSS_STORAGE_FILE"
	EnvHistoryDays      = "HISTORY_DAYS"
	EnvMaxEntries       = "MAX_ENTRIES_PER_FEED"
	EnvGeneralFeedTitle = "GENERAL_FEED_TITLE"
	EnvPort             = "PORT"
	EnvSearchRateLimit  = "SEARCH_RATE_LIMIT"
	EnvShutdownTimeout  = "SHUTDOWN_TIMEOUT"
	EnvMaxBodyBytes     = "MAX_BODY_BYTES"
	EnvTraceSampleRatio = "TRACE_SAMPLE_RATIO"
	EnvCSPReportOnly    = "CSP_REPORT_ONLY"
)

const (
	maxHistoryDays  = 36500
	maxEntriesLimit = 100000
	maxRateLimit    = 100000
	maxBodyLimit    = 64 << 20
	minShutdown     = time.Second
	maxShutdown     = 5 * time.Minute
)

// StoreConfig holds the settings of the feed server.
type StoreConfig struct {
	// StorageFile is the JSON file holding the feed collection.
	// Default: "feeds.json"
	StorageFile string `yaml:"storage_file"`

	// HistoryDays is the retention window in days. 0 disables age pruning.
	// Default: 30
	HistoryDays int `yaml:"history_days"`

	// MaxEntriesPerFeed caps entries per feed. 0 disables the cap.
	// Default: 100
	MaxEntriesPerFeed int `yaml:"max_entries_per_feed"`

	// GeneralFeedTitle is the channel title of the combined feed.
	// Default: "All Feeds"
	GeneralFeedTitle string `yaml:"general_feed_title"`

	// Port is the HTTP listen port. Default: 5000
	Port int `yaml:"port"`

	// SearchRateLimit is the per-client search budget in requests per minute.
	// 0 disables limiting. Default: 100
	SearchRateLimit int `yaml:"search_rate_limit"`

	// ShutdownTimeout bounds graceful shutdown. Default: 5s
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`

	// MaxBodyBytes caps request bodies. 0 disables the cap. Default: 1MiB
	MaxBodyBytes int64 `yaml:"max_body_bytes"`

	// TraceSampleRatio is the share of root spans sampled. Default: 1
	TraceSampleRatio float64 `yaml:"trace_sample_ratio"`

	// CSPReportOnly sends Content-Security-Policy-Report-Only instead of
	// enforcing the policy. Default: false
	CSPReportOnly bool `yaml:"csp_report_only"`
}

// Fallback records an environment value that was rejected in favour of the
// file or default value.
type Fallback struct {
	Field   string
	Message string
}

// DefaultStoreConfig returns the built-in defaults.
func DefaultStoreConfig() StoreConfig {
	return StoreConfig{
		StorageFile:       "feeds.json",
		HistoryDays:       30,
		MaxEntriesPerFeed: 100,
		GeneralFeedTitle:  "All Feeds",
		Port:              5000,
		SearchRateLimit:   100,
		ShutdownTimeout:   5 * time.Second,
		MaxBodyBytes:      1 << 20,
		TraceSampleRatio:  1,
	}
}

// Addr returns the listen address for Port.
func (c *StoreConfig) Addr() string {
	return ":" + strconv.Itoa(c.Port)
}

// Validate reports every field outside its allowed range.
func (c *StoreConfig) Validate() error {
	var errs []error
	check := func(field string, err error) {
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", field, err))
		}
	}

	check("storage_file", pkgconfig.ValidateFilePath(c.StorageFile))
	check("history_days", validateHistoryDays(c.HistoryDays))
	check("max_entries_per_feed", validateMaxEntries(c.MaxEntriesPerFeed))
	check("general_feed_title", pkgconfig.ValidateNonBlank(c.GeneralFeedTitle))
	check("port", validatePort(c.Port))
	check("search_rate_limit", validateRateLimit(c.SearchRateLimit))
	check("shutdown_timeout", validateShutdown(c.ShutdownTimeout))
	check("max_body_bytes", validateBodyBytes(c.MaxBodyBytes))
	check("trace_sample_ratio", pkgconfig.ValidateRatio(c.TraceSampleRatio))

	return errors.Join(errs...)
}

// LoadStoreConfig starts from the defaults, applies the YAML file named by
// CONFIG_FILE when set, then applies environment variables. A bad file is an
// error; a bad environment value falls back and is reported in the result.
func LoadStoreConfig() (*StoreConfig, []Fallback, error) {
	cfg := DefaultStoreConfig()

	if path := os.Getenv(EnvConfigFile); path != "" {
		fileCfg, err := LoadStoreConfigFile(path)
		if err != nil {
			return nil, nil, err
		}
		cfg = *fileCfg
	}

	fallbacks := applyEnv(&cfg)
	return &cfg, fallbacks, nil
}

// LoadStoreConfigFile reads a YAML file over the defaults and validates the
// result. Unknown keys are rejected.
// The path is expected to come from the operator (flag or environment).
func LoadStoreConfigFile(path string) (*StoreConfig, error) {
	// #nosec G304 -- path is operator supplied
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultStoreConfig()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}

func applyEnv(cfg *StoreConfig) []Fallback {
	var fallbacks []Fallback
	note := func(field string, warnings []string) {
		for _, w := range warnings {
			fallbacks = append(fallbacks, Fallback{Field: field, Message: w})
		}
	}

	storage := pkgconfig.LoadEnvWithFallback(EnvStorageFile, cfg.StorageFile, pkgconfig.ValidateFilePath)
	cfg.StorageFile = storage.Value
	note("storage_file", storage.Warnings)

	days := pkgconfig.LoadEnvInt(EnvHistoryDays, cfg.HistoryDays, validateHistoryDays)
	cfg.HistoryDays = days.Value
	note("history_days", days.Warnings)

	entries := pkgconfig.LoadEnvInt(EnvMaxEntries, cfg.MaxEntriesPerFeed, validateMaxEntries)
	cfg.MaxEntriesPerFeed = entries.Value
	note("max_entries_per_feed", entries.Warnings)

	title := pkgconfig.LoadEnvWithFallback(EnvGeneralFeedTitle, cfg.GeneralFeedTitle, pkgconfig.ValidateNonBlank)
	cfg.GeneralFeedTitle = title.Value
	note("general_feed_title", title.Warnings)

	port := pkgconfig.LoadEnvInt(EnvPort, cfg.Port, validatePort)
	cfg.Port = port.Value
	note("port", port.Warnings)

	rate := pkgconfig.LoadEnvInt(EnvSearchRateLimit, cfg.SearchRateLimit, validateRateLimit)
	cfg.SearchRateLimit = rate.Value
	note("search_rate_limit", rate.Warnings)

	shutdown := pkgconfig.LoadEnvDuration(EnvShutdownTimeout, cfg.ShutdownTimeout, validateShutdown)
	cfg.ShutdownTimeout = shutdown.Value
	note("shutdown_timeout", shutdown.Warnings)

	body := pkgconfig.LoadEnvInt64(EnvMaxBodyBytes, cfg.MaxBodyBytes, validateBodyBytes)
	cfg.MaxBodyBytes = body.Value
	note("max_body_bytes", body.Warnings)

	ratio := pkgconfig.LoadEnvFloat(EnvTraceSampleRatio, cfg.TraceSampleRatio, pkgconfig.ValidateRatio)
	cfg.TraceSampleRatio = ratio.Value
	note("trace_sample_ratio", ratio.Warnings)

	reportOnly := pkgconfig.LoadEnvBool(EnvCSPReportOnly, cfg.CSPReportOnly)
	cfg.CSPReportOnly = reportOnly.Value
	note("csp_report_only", reportOnly.Warnings)

	return fallbacks
}

func validateHistoryDays(v int) error { return pkgconfig.ValidateIntRange(v, 0, maxHistoryDays) }
func validateMaxEntries(v int) error { return pkgconfig.ValidateIntRange(v, 0, maxEntriesLimit) }
func validatePort(v int) error { return pkgconfig.ValidateIntRange(v, 1, 65535) }
func validateRateLimit(v int) error { return pkgconfig.ValidateIntRange(v, 0, maxRateLimit) }

func validateShutdown(d time.Duration) error {
	return pkgconfig.ValidateDuration(d, minShutdown, maxShutdown)
}

func validateBodyBytes(v int64) error {
	if v < 0 || v > maxBodyLimit {
		return fmt.Errorf("value %d must be between 0 and %d", v, maxBodyLimit)
	}
	return nil
}
