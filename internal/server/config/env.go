package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config fields from environment variables, loading a local
// .env file first if one exists. Unset variables leave the current value
// untouched.
//
// Recognized variables:
//
//	TASKKEEPER_ADDRESS       HTTP bind address
//	TASKKEEPER_DATABASE_DSN  PostgreSQL DSN
//	TASKKEEPER_SECRET_KEY    JWT HMAC secret
//	TASKKEEPER_TOKEN_TTL     access token validity (Go duration, e.g. "15m")
//	TASKKEEPER_BCRYPT_COST   bcrypt work factor
func parseEnv(config *Config) {
	// missing .env is not an error, env vars may still be set
	_ = godotenv.Load()

	if v, ok := os.LookupEnv("TASKKEEPER_ADDRESS"); ok {
		config.EndpointAddrHTTP = v
	}
	if v, ok := os.LookupEnv("TASKKEEPER_DATABASE_DSN"); ok {
		config.DatabaseDSN = v
	}
	if v, ok := os.LookupEnv("TASKKEEPER_SECRET_KEY"); ok {
		config.SecretKey = v
	}
	if v, ok := os.LookupEnv("TASKKEEPER_TOKEN_TTL"); ok {
		if d, err := time.ParseDuration(v); err == nil {
			config.AccessTokenValidityDuration = d
		}
	}
	if v, ok := os.LookupEnv("TASKKEEPER_BCRYPT_COST"); ok {
		if n, err := strconv.Atoi(v); err == nil {
			config.BCryptCost = n
		}
	}
}
