package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all configuration for the application
type Config struct {
	Discord   DiscordConfig
	Redis     RedisConfig
	Providers ProvidersConfig
	Cards     CardsConfig
	Health    HealthConfig
	Telemetry TelemetryConfig
	RateLimit RateLimitConfig
	EmojiFile string
}

// DiscordConfig holds Discord-specific configuration
type DiscordConfig struct {
	Token   string
	AppID   string
	GuildID string // Optional: for guild-specific commands
	OwnerID string // Optional: user allowed to run /reload
}

// RedisConfig holds Redis-specific configuration. An empty URL means in-memory storage.
type RedisConfig struct {
	URL string
}

// ProvidersConfig holds upstream API configuration
type ProvidersConfig struct {
	WarframeStatURL string
	MarketURL       string
	HTTPTimeout     time.Duration
	ItemCacheTTL    time.Duration
}

// CardsConfig controls interactive card sessions
type CardsConfig struct {
	// IdleTimeout is how long a card stays interactive after its last use
	IdleTimeout time.Duration
	// Instance names this replica in the shared snapshot store. Replicas
	// sharing one Redis must each set a distinct, stable name.
	Instance string
}

// HealthConfig holds the health endpoint listen address. Empty disables it.
type HealthConfig struct {
	Addr string
}

// TelemetryConfig holds OpenTelemetry exporter configuration. Empty disables export.
type TelemetryConfig struct {
	OTLPEndpoint string
	ServiceName  string
}

// RateLimitConfig caps lookups per user
type RateLimitConfig struct {
	PerMinute int
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Discord: DiscordConfig{
			Token:   os.Getenv("DISCORD_TOKEN"),
			AppID:   os.Getenv("DISCORD_APP_ID"),
			GuildID: os.Getenv("DISCORD_GUILD_ID"),
			OwnerID: os.Getenv("DISCORD_OWNER_ID"),
		},
		Redis: RedisConfig{
			URL: os.Getenv("REDIS_URL"),
		},
		Providers: ProvidersConfig{
			WarframeStatURL: getEnvOrDefault("WARFRAMESTAT_API_URL", "https://api.warframestat.us"),
			MarketURL:       getEnvOrDefault("MARKET_API_URL", "https://api.warframe.market/v1"),
			HTTPTimeout:     getEnvAsDurationOrDefault("PROVIDER_HTTP_TIMEOUT", 10*time.Second),
			ItemCacheTTL:    getEnvAsDurationOrDefault("ITEM_CACHE_TTL", time.Hour),
		},
		Cards: CardsConfig{
			IdleTimeout: getEnvAsDurationOrDefault("CARD_TIMEOUT", 3*time.Minute),
			Instance:    os.Getenv("CARD_INSTANCE"),
		},
		Health: HealthConfig{
			Addr: os.Getenv("HEALTH_ADDR"),
		},
		Telemetry: TelemetryConfig{
			OTLPEndpoint: os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"),
			ServiceName:  getEnvOrDefault("OTEL_SERVICE_NAME", "cephalon-seraph"),
		},
		RateLimit: RateLimitConfig{
			PerMinute: getEnvAsIntOrDefault("RATE_LIMIT_PER_MINUTE", 20),
		},
		EmojiFile: os.Getenv("EMOJI_FILE"),
	}

	// Validate required fields
	if cfg.Discord.Token == "" {
		return nil, fmt.Errorf("DISCORD_TOKEN is required")
	}
	if cfg.Discord.AppID == "" {
		return nil, fmt.Errorf("DISCORD_APP_ID is required")
	}
	if cfg.Cards.IdleTimeout <= 0 {
		return nil, fmt.Errorf("CARD_TIMEOUT must be positive")
	}

	return cfg, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
