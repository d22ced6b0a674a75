package config

import (
	"fmt"
	"os"
	"strings"
)

// ExpectedEnvSchemaVersion is the schema version that the application expects
const ExpectedEnvSchemaVersion = "1.0"

// RequiredEnvVars lists all environment variables that must be set
var RequiredEnvVars = []string{
	EnvSchemaVersion,
	EnvDataDir,
}

// ExampleAPIKey is the placeholder shipped in .env.example
const ExampleAPIKey = "generate_with_openssl_rand_hex_32"

// ValidateEnv checks that all required environment variables are set
// and that the schema version matches expectations
func ValidateEnv() error {
	// Check schema version first
	schemaVersion := os.Getenv(EnvSchemaVersion)
	if schemaVersion == "" {
		return fmt.Errorf("ENV_SCHEMA_VERSION is not set - please update your .env file to include this field (expected: %s)", ExpectedEnvSchemaVersion)
	}

	if schemaVersion != ExpectedEnvSchemaVersion {
		return fmt.Errorf("ENV_SCHEMA_VERSION mismatch: expected %s, got %s - your .env file may be outdated", ExpectedEnvSchemaVersion, schemaVersion)
	}

	// Check all required variables
	var missing []string
	for _, envVar := range RequiredEnvVars {
		if os.Getenv(envVar) == "" {
			missing = append(missing, envVar)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}

	return nil
}

// ValidateEnvWithWarnings checks environment variables and returns warnings
// for non-critical issues (like using default values)
func ValidateEnvWithWarnings() ([]string, error) {
	// First do the critical validation
	if err := ValidateEnv(); err != nil {
		return nil, err
	}

	var warnings []string

	apiKey := os.Getenv(EnvAPIKey)
	if apiKey == ExampleAPIKey {
		warnings = append(warnings, "API_KEY appears to be using the example value - generate a secure key with: openssl rand -hex 32")
	}

	if apiKey == "" && isProduction(os.Getenv(EnvEnvironment)) {
		warnings = append(warnings, "API_KEY is not set - the API is open to every client")
	}

	if os.Getenv(EnvPriceGuideDir) == "" {
		if _, err := os.Stat(os.Getenv(EnvDataDir)); err != nil {
			warnings = append(warnings, fmt.Sprintf("DATA_DIR %q is not readable: %v", os.Getenv(EnvDataDir), err))
		}
	}

	return warnings, nil
}

func isProduction(env string) bool {
	return env == "prod" || env == "production"
}
