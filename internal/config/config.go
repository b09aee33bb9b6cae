package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	NewsAPIKey   string
	GeminiAPIKey string // reserved for the insight-generation workflow, unused by the scoring core
	ReportsDir   string
	DataDir      string
	ReadmePath   string
	InsightsPath string
	LogLevel     string
	Port         int
	DevMode      bool
	NewsLookback int // days
}

// PLISectors maps a sector to the NSE symbols tracked for it.
// Load-once process-wide constant, no runtime mutation.
var PLISectors = map[string][]string{
	"electronics":   {"DIXON.NS", "AMBER.NS", "SYRMA.NS"},
	"semiconductor": {"SAHASRA.NS", "MOSCHIP.NS"},
	"logistics":     {"TCIEXP.NS", "BLUEDART.NS"},
	"components":    {"PGEL.NS", "BUTTERFLY.NS"},
}

// SectorFor returns the PLI sector a symbol is tracked under, or "" when
// the symbol is not part of the sector map.
func SectorFor(symbol string) string {
	for sector, symbols := range PLISectors {
		for _, s := range symbols {
			if s == symbol {
				return sector
			}
		}
	}
	return ""
}

// Risk thresholds
const (
	DebtEquityThreshold = 0.25   // industry average
	PEHighThreshold     = 150.0  // overvalued threshold
	VolumeLowThreshold  = 100000 // low volume threshold
)

// Buy/sell parameters for the live trigger strategy
const (
	BuyTriggerPct = 1.02 // 2% above 52-week low
	StopLossPct   = 0.95 // 5% below 52-week low
)

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	cfg := &Config{
		NewsAPIKey:   getEnv("NEWS_API_KEY", ""),
		GeminiAPIKey: getEnv("GEMINI_API_KEY", ""),
		ReportsDir:   getEnv("REPORTS_DIR", "./reports"),
		DataDir:      getEnv("DATA_DIR", "./data"),
		ReadmePath:   getEnv("README_PATH", "./README.md"),
		InsightsPath: getEnv("INSIGHTS_PATH", "./config/expert_insights.toml"),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		Port:         getEnvAsInt("GO_PORT", 8001),
		DevMode:      getEnvAsBool("DEV_MODE", false),
		NewsLookback: getEnvAsInt("NEWS_LOOKBACK_DAYS", 7),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks if required configuration is present
func (c *Config) Validate() error {
	if c.ReportsDir == "" {
		return fmt.Errorf("REPORTS_DIR is required")
	}
	if c.DataDir == "" {
		return fmt.Errorf("DATA_DIR is required")
	}

	// Note: NEWS_API_KEY optional, the headline fetcher falls back to a
	// pre-baked record when it is missing.

	return nil
}

// EnsureDirs creates the reports and data directories if they are missing.
func (c *Config) EnsureDirs() error {
	for _, dir := range []string{c.ReportsDir, c.DataDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create %s: %w", dir, err)
		}
	}
	return nil
}

// Helper functions
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}
