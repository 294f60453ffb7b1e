package models

// Config represents application configuration
type Config struct {
	App      AppConfig
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	NATS     NATSConfig
	JWT      JWTConfig
	NewRelic NewRelicConfig
	Logger   LoggerConfig
	Pricing  PricingConfig
	Services ServicesConfig
	Match    MatchConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	Database  string
	SSLMode   string
	MaxConns  int
	IdleConns int
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NATSConfig contains NATS connection configuration
type NATSConfig struct {
	URL string
}

// JWTConfig contains JWT authentication configuration
type JWTConfig struct {
	Secret     string
	Expiration int // in minutes
	Issuer     string
}

// NewRelicConfig contains New Relic APM configuration
type NewRelicConfig struct {
	Enabled     bool
	LicenseKey  string
	AppName     string
	ForwardLogs bool
}

// LoggerConfig contains application logger configuration
type LoggerConfig struct {
	Level    string
	FilePath string
}

// PricingConfig contains the settlement split applied when a booking is released
type PricingConfig struct {
	Currency          string  `json:"currency"`
	PlatformFeeRate   float64 `json:"platform_fee_rate"`   // fraction of booking amount retained by the platform
	CashbackRate      float64 `json:"cashback_rate"`       // fraction of booking amount returned as cashback
	PlatformAccountID string  `json:"platform_account_id"` // ledger account credited with platform fees
}

// ServicesConfig contains URLs for external collaborators
type ServicesConfig struct {
	RankerURL           string // AI professional-ranking collaborator
	PaymentProcessorURL string // card/PIX payment-intent rail
	PayoutProviderURL   string // withdrawal payout rail
}

// MatchConfig contains match service specific configuration
type MatchConfig struct {
	GeohashPrecision    uint `json:"geohash_precision"`     // cell size used for availability buckets
	AvailabilityTTLMins int  `json:"availability_ttl_mins"` // minutes before an availability entry expires
	MaxCandidates       int  `json:"max_candidates"`        // cap on candidates sent to the ranker
}
