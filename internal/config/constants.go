package config

import "time"

// =============================================================================
// Data File Layout
// =============================================================================

const (
	// DefaultDataDir holds every data file unless a path is overridden
	DefaultDataDir = "data"

	DataPathPriceGuide = "price_guide"
	DataPathDropTable  = "drop_tables/drop_tables_ultimate.json"
	DataPathQuests     = "quests/quests.json"
	DataPathQuestTimes = "quests/quest_times.yaml"
)

// =============================================================================
// Defaults
// =============================================================================

const (
	DefaultPort        = 8080
	DefaultLogLevel    = "info"
	DefaultLogFormat   = "text"
	DefaultEnvironment = "dev"
	DefaultServiceName = "pso-quest-optimizer"
	DefaultVersion     = "dev"

	DefaultPriceStrategy      = "minimum"
	DefaultMissingPriceIsZero = true

	DefaultItemCacheSize = 4096
	DefaultItemCacheTTL  = 10 * time.Minute

	// DefaultRateLimitRequests is the per-IP request budget per five minutes
	DefaultRateLimitRequests = 1000
)

// =============================================================================
// Environment Variable Names
// =============================================================================

const (
	EnvPort           = "PORT"
	EnvLogLevel       = "LOG_LEVEL"
	EnvLogFormat      = "LOG_FORMAT"
	EnvLogDir         = "LOG_DIR"
	EnvEnvironment    = "ENVIRONMENT"
	EnvServiceName    = "SERVICE_NAME"
	EnvVersion        = "VERSION"
	EnvAPIKey         = "API_KEY"
	EnvTrustedProxies = "TRUSTED_PROXIES"
	EnvRateLimit      = "RATE_LIMIT_REQUESTS"

	EnvDataDir        = "DATA_DIR"
	EnvPriceGuideDir  = "PRICE_GUIDE_DIR"
	EnvDropTablePath  = "DROP_TABLE_PATH"
	EnvQuestsPath     = "QUESTS_PATH"
	EnvQuestTimesPath = "QUEST_TIMES_PATH"

	EnvPriceStrategy      = "PRICE_STRATEGY"
	EnvMissingPriceIsZero = "MISSING_PRICE_IS_ZERO"
	EnvItemCacheSize      = "ITEM_CACHE_SIZE"
	EnvItemCacheTTL       = "ITEM_CACHE_TTL"

	EnvSchemaVersion = "ENV_SCHEMA_VERSION"
)
