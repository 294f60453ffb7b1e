package config

import (
	"log"
	"strings"

	"github.com/spf13/viper"

	"github.com/workme/backend/internal/pkg/models"
)

// InitConfig loads configuration from the environment, optionally seeded
// from an env-format file in local development.
func InitConfig(configPath string) *models.Config {
	v := viper.New()
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if configPath != "" && v.GetString("APP_ENV") != "production" {
		v.SetConfigFile(configPath)
		v.SetConfigType("env")
		if err := v.ReadInConfig(); err != nil {
			log.Println("error loading config from file", err)
		}
	}

	return loadConfig(v)
}

func loadConfig(v *viper.Viper) *models.Config {
	configs := &models.Config{}

	// App config
	configs.App.Name = getString(v, "APP_NAME", "workme")
	configs.App.Environment = getString(v, "APP_ENV", "local")
	v.SetDefault("APP_DEBUG", true)
	configs.App.Debug = v.GetBool("APP_DEBUG")
	configs.App.Version = getString(v, "APP_VERSION", "")

	// Server config
	configs.Server.Host = getString(v, "SERVER_HOST", "")
	configs.Server.Port = getInt(v, "SERVER_PORT", 8080)
	configs.Server.ReadTimeout = getInt(v, "SERVER_READ_TIMEOUT", 30)
	configs.Server.WriteTimeout = getInt(v, "SERVER_WRITE_TIMEOUT", 30)
	configs.Server.ShutdownTimeout = getInt(v, "SERVER_SHUTDOWN_TIMEOUT", 10)

	// Database config
	configs.Database.Host = getString(v, "DB_HOST", "localhost")
	configs.Database.Port = getInt(v, "DB_PORT", 5432)
	configs.Database.Username = getString(v, "DB_USERNAME", "")
	configs.Database.Password = getString(v, "DB_PASSWORD", "")
	configs.Database.Database = getString(v, "DB_DATABASE", "workme")
	configs.Database.SSLMode = getString(v, "DB_SSL_MODE", "disable")
	configs.Database.MaxConns = getInt(v, "DB_MAX_CONNS", 10)
	configs.Database.IdleConns = getInt(v, "DB_IDLE_CONNS", 2)

	// Redis config
	configs.Redis.Host = getString(v, "REDIS_HOST", "localhost")
	configs.Redis.Port = getInt(v, "REDIS_PORT", 6379)
	configs.Redis.Password = getString(v, "REDIS_PASSWORD", "")
	configs.Redis.DB = getInt(v, "REDIS_DB", 0)
	configs.Redis.PoolSize = getInt(v, "REDIS_POOL_SIZE", 10)

	// NATS config
	configs.NATS.URL = getString(v, "NATS_URL", "nats://localhost:4222")

	// JWT config
	configs.JWT.Secret = getString(v, "JWT_SECRET", "")
	configs.JWT.Expiration = getInt(v, "JWT_EXPIRATION", 30)
	configs.JWT.Issuer = getString(v, "JWT_ISSUER", "workme")

	// New Relic config
	configs.NewRelic.Enabled = v.GetBool("NEW_RELIC_ENABLED")
	configs.NewRelic.LicenseKey = getString(v, "NEW_RELIC_LICENSE_KEY", "")
	configs.NewRelic.AppName = getString(v, "NEW_RELIC_APP_NAME", configs.App.Name)
	configs.NewRelic.ForwardLogs = v.GetBool("NEW_RELIC_FORWARD_LOGS")

	// Logger config
	configs.Logger.Level = getString(v, "LOG_LEVEL", "info")
	configs.Logger.FilePath = getString(v, "LOG_FILE_PATH", "")

	// Pricing config
	configs.Pricing.Currency = getString(v, "PRICING_CURRENCY", "BRL")
	configs.Pricing.PlatformFeeRate = getFloat(v, "PRICING_PLATFORM_FEE_RATE", 0.05)
	configs.Pricing.CashbackRate = getFloat(v, "PRICING_CASHBACK_RATE", 0.02)
	configs.Pricing.PlatformAccountID = getString(v, "PRICING_PLATFORM_ACCOUNT_ID", "")

	// Collaborator services
	configs.Services.RankerURL = getString(v, "RANKER_URL", "http://localhost:9991")
	configs.Services.PaymentProcessorURL = getString(v, "PAYMENT_PROCESSOR_URL", "http://localhost:9992")
	configs.Services.PayoutProviderURL = getString(v, "PAYOUT_PROVIDER_URL", "http://localhost:9993")

	// Match config
	configs.Match.GeohashPrecision = uint(getInt(v, "MATCH_GEOHASH_PRECISION", 5))
	configs.Match.AvailabilityTTLMins = getInt(v, "MATCH_AVAILABILITY_TTL_MINS", 120)
	configs.Match.MaxCandidates = getInt(v, "MATCH_MAX_CANDIDATES", 20)

	return configs
}

func getString(v *viper.Viper, key, fallback string) string {
	v.SetDefault(key, fallback)
	return v.GetString(key)
}

func getInt(v *viper.Viper, key string, fallback int) int {
	v.SetDefault(key, fallback)
	return v.GetInt(key)
}

func getFloat(v *viper.Viper, key string, fallback float64) float64 {
	v.SetDefault(key, fallback)
	return v.GetFloat64(key)
}
