package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/Jusctsch5/PSOQuestOptimizer-sub000/internal/itemvalue"
	"github.com/Jusctsch5/PSOQuestOptimizer-sub000/internal/optimizer"
	"github.com/Jusctsch5/PSOQuestOptimizer-sub000/internal/pricing"
)

// Config holds the application configuration
type Config struct {
	Port        int
	LogLevel    string
	LogFormat   string
	LogDir      string // empty logs to stdout only
	Environment string
	ServiceName string
	Version     string

	APIKey         string // empty disables API key checks
	TrustedProxies []string
	RateLimit      int

	DataDir        string
	PriceGuideDir  string
	DropTablePath  string
	QuestsPath     string
	QuestTimesPath string

	PriceStrategy      pricing.Strategy
	MissingPriceIsZero bool
	ItemCacheSize      int
	ItemCacheTTL       time.Duration
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	dataDir := getEnv(EnvDataDir, DefaultDataDir)
	cfg := &Config{
		LogLevel:    getEnv(EnvLogLevel, DefaultLogLevel),
		LogFormat:   getEnv(EnvLogFormat, DefaultLogFormat),
		LogDir:      getEnv(EnvLogDir, ""),
		Environment: getEnv(EnvEnvironment, DefaultEnvironment),
		ServiceName: getEnv(EnvServiceName, DefaultServiceName),
		Version:     getEnv(EnvVersion, DefaultVersion),

		APIKey:         getEnv(EnvAPIKey, ""),
		TrustedProxies: getEnvAsList(EnvTrustedProxies),
		RateLimit:      getEnvAsInt(EnvRateLimit, DefaultRateLimitRequests),

		DataDir:        dataDir,
		PriceGuideDir:  getEnv(EnvPriceGuideDir, filepath.Join(dataDir, DataPathPriceGuide)),
		DropTablePath:  getEnv(EnvDropTablePath, filepath.Join(dataDir, DataPathDropTable)),
		QuestsPath:     getEnv(EnvQuestsPath, filepath.Join(dataDir, DataPathQuests)),
		QuestTimesPath: getEnv(EnvQuestTimesPath, filepath.Join(dataDir, DataPathQuestTimes)),

		MissingPriceIsZero: getEnvAsBool(EnvMissingPriceIsZero, DefaultMissingPriceIsZero),
		ItemCacheSize:      getEnvAsInt(EnvItemCacheSize, DefaultItemCacheSize),
		ItemCacheTTL:       getEnvAsDuration(EnvItemCacheTTL, DefaultItemCacheTTL),
	}

	port, err := strconv.Atoi(getEnv(EnvPort, strconv.Itoa(DefaultPort)))
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	strategy, err := pricing.ParseStrategy(getEnv(EnvPriceStrategy, DefaultPriceStrategy))
	if err != nil {
		return nil, fmt.Errorf("invalid PRICE_STRATEGY value: %w", err)
	}
	cfg.PriceStrategy = strategy

	return cfg, nil
}

// OptimizerConfig returns the data paths and valuation settings for optimizer.Load
func (c *Config) OptimizerConfig() optimizer.Config {
	return optimizer.Config{
		PriceGuideDir:  c.PriceGuideDir,
		DropTablePath:  c.DropTablePath,
		QuestsPath:     c.QuestsPath,
		QuestTimesPath: c.QuestTimesPath,
		Pricing: pricing.Options{
			Strategy:           c.PriceStrategy,
			MissingPriceIsZero: c.MissingPriceIsZero,
		},
		Cache: itemvalue.CacheConfig{
			Size: c.ItemCacheSize,
			TTL:  c.ItemCacheTTL,
		},
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt retrieves an environment variable as int or returns a default value
func getEnvAsInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsBool retrieves an environment variable as bool or returns a default value
func getEnvAsBool(key string, defaultValue bool) bool {
	value, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsDuration retrieves an environment variable as duration or returns a default value
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsList splits a comma separated variable, dropping empty entries
func getEnvAsList(key string) []string {
	var out []string
	for _, part := range strings.Split(os.Getenv(key), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
