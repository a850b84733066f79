package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	// Server
	Port string `mapstructure:"PORT"`
	Env  string `mapstructure:"ENV"`

	// Redis (optional; in-memory cache is used when empty)
	RedisURL string `mapstructure:"REDIS_URL"`

	// CORS
	CorsOrigins []string `mapstructure:"CORS_ORIGINS"`

	// External APIs
	OddsAPIKey   string `mapstructure:"ODDS_API_KEY"`
	APISportsKey string `mapstructure:"API_SPORTS_KEY"`
	NewsAPIKey   string `mapstructure:"NEWS_API_KEY"`

	// Remote fetch behavior
	ExternalAPITimeout      time.Duration `mapstructure:"EXTERNAL_API_TIMEOUT"`
	RetryAttempts           int           `mapstructure:"RETRY_ATTEMPTS"`
	RetryBackoff            time.Duration `mapstructure:"RETRY_BACKOFF"`
	CircuitBreakerThreshold int           `mapstructure:"CIRCUIT_BREAKER_THRESHOLD"`

	// Per-source rate limiting
	SourceRateLimit  int           `mapstructure:"SOURCE_RATE_LIMIT"`
	SourceRateWindow time.Duration `mapstructure:"SOURCE_RATE_WINDOW"`

	// Cache TTLs per data kind
	GamesTTL    time.Duration `mapstructure:"GAMES_TTL"`
	RankingsTTL time.Duration `mapstructure:"RANKINGS_TTL"`
	InjuriesTTL time.Duration `mapstructure:"INJURIES_TTL"`
	OddsTTL     time.Duration `mapstructure:"ODDS_TTL"`
	NewsTTL     time.Duration `mapstructure:"NEWS_TTL"`

	// Feature toggles
	DisableExternalOdds bool `mapstructure:"DISABLE_EXTERNAL_ODDS"`
	EnableRefresher     bool `mapstructure:"ENABLE_REFRESHER"`

	// Background refresh
	RefreshInterval time.Duration `mapstructure:"REFRESH_INTERVAL"`

	// Synthetic data
	GeneratorSeed int64 `mapstructure:"GENERATOR_SEED"`

	// CORS proxy endpoint
	ProxyAllowedHosts []string `mapstructure:"PROXY_ALLOWED_HOSTS"`
	ProxyRateLimit    float64  `mapstructure:"PROXY_RATE_LIMIT"`
	ProxyBurst        int      `mapstructure:"PROXY_BURST"`
}

func LoadConfig() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AddConfigPath("..")

	// Set defaults
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("REDIS_URL", "")
	viper.SetDefault("CORS_ORIGINS", "http://localhost:5173,http://localhost:3000")
	viper.SetDefault("ODDS_API_KEY", "")
	viper.SetDefault("API_SPORTS_KEY", "")
	viper.SetDefault("NEWS_API_KEY", "")
	viper.SetDefault("EXTERNAL_API_TIMEOUT", "10s")
	viper.SetDefault("RETRY_ATTEMPTS", 3)
	viper.SetDefault("RETRY_BACKOFF", "2s")
	viper.SetDefault("CIRCUIT_BREAKER_THRESHOLD", 5)
	viper.SetDefault("SOURCE_RATE_LIMIT", 30)
	viper.SetDefault("SOURCE_RATE_WINDOW", "1m")
	viper.SetDefault("GAMES_TTL", "1m")
	viper.SetDefault("RANKINGS_TTL", "1h")
	viper.SetDefault("INJURIES_TTL", "15m")
	viper.SetDefault("ODDS_TTL", "5m")
	viper.SetDefault("NEWS_TTL", "10m")
	viper.SetDefault("DISABLE_EXTERNAL_ODDS", false)
	viper.SetDefault("ENABLE_REFRESHER", true)
	viper.SetDefault("REFRESH_INTERVAL", "1m")
	viper.SetDefault("GENERATOR_SEED", 0)
	viper.SetDefault("PROXY_ALLOWED_HOSTS", "site.api.espn.com,ncaa-api.henrygd.me,api.the-odds-api.com,v1.american-football.api-sports.io,newsapi.org")
	viper.SetDefault("PROXY_RATE_LIMIT", 5.0)
	viper.SetDefault("PROXY_BURST", 10)

	// Read from environment
	viper.AutomaticEnv()

	// Read config file if exists
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	// Parse comma-separated list values
	if corsStr := viper.GetString("CORS_ORIGINS"); corsStr != "" {
		config.CorsOrigins = strings.Split(corsStr, ",")
	}
	if hostsStr := viper.GetString("PROXY_ALLOWED_HOSTS"); hostsStr != "" {
		config.ProxyAllowedHosts = strings.Split(hostsStr, ",")
	}

	return &config, nil
}

func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}
