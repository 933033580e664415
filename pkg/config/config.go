package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL       string
	Port              string
	IsProduction      bool
	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string

	// Risk oracle settings. An empty URL disables the oracle entirely and
	// every verdict comes from the local fallback rule.
	RiskOracleURL     string
	RiskOracleAPIKey  string
	RiskOracleTimeout time.Duration

	// Rate limiting, e.g. "100-M" for 100 requests per minute per IP.
	RateLimit string

	// DefaultBranchCode is used when a report request omits the branch.
	DefaultBranchCode string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("JWT_EXPIRY_DURATION", "8h")
	viper.SetDefault("JWT_ISSUER", "sarafcore-backend")
	viper.SetDefault("RISK_ORACLE_URL", "")
	viper.SetDefault("RISK_ORACLE_API_KEY", "")
	viper.SetDefault("RISK_ORACLE_TIMEOUT", "8s")
	viper.SetDefault("RATE_LIMIT", "300-M")
	viper.SetDefault("DEFAULT_BRANCH_CODE", "MAIN")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "a-very-secret-key-should-be-longer-and-random" && cfg.IsProduction {
		log.Println("Warning: JWT_SECRET is the insecure default in production.")
	}

	jwtExpiryStr := viper.GetString("JWT_EXPIRY_DURATION")
	jwtExpiry, err := time.ParseDuration(jwtExpiryStr)
	if err != nil {
		jwtExpiry = 8 * time.Hour
		log.Printf("Warning: Invalid value for JWT_EXPIRY_DURATION ('%s'). Defaulting to %s.\n", jwtExpiryStr, jwtExpiry)
	}
	cfg.JWTExpiryDuration = jwtExpiry
	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")

	cfg.RiskOracleURL = viper.GetString("RISK_ORACLE_URL")
	cfg.RiskOracleAPIKey = viper.GetString("RISK_ORACLE_API_KEY")

	oracleTimeoutStr := viper.GetString("RISK_ORACLE_TIMEOUT")
	oracleTimeout, err := time.ParseDuration(oracleTimeoutStr)
	if err != nil {
		oracleTimeout = 8 * time.Second
		log.Printf("Warning: Invalid value for RISK_ORACLE_TIMEOUT ('%s'). Defaulting to %s.\n", oracleTimeoutStr, oracleTimeout)
	}
	cfg.RiskOracleTimeout = oracleTimeout

	cfg.RateLimit = viper.GetString("RATE_LIMIT")
	cfg.DefaultBranchCode = viper.GetString("DEFAULT_BRANCH_CODE")

	return cfg, nil
}
