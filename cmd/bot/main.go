package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/0niSec/cephalon-seraph/internal/card"
	"github.com/0niSec/cephalon-seraph/internal/clients/market"
	"github.com/0niSec/cephalon-seraph/internal/clients/warframestat"
	"github.com/0niSec/cephalon-seraph/internal/config"
	"github.com/0niSec/cephalon-seraph/internal/discord"
	"github.com/0niSec/cephalon-seraph/internal/discord/core"
	"github.com/0niSec/cephalon-seraph/internal/discord/middleware"
	"github.com/0niSec/cephalon-seraph/internal/discord/routers"
	"github.com/0niSec/cephalon-seraph/internal/emoji"
	"github.com/0niSec/cephalon-seraph/internal/health"
	"github.com/0niSec/cephalon-seraph/internal/navigation"
	"github.com/0niSec/cephalon-seraph/internal/repositories/cardsessions"
	"github.com/0niSec/cephalon-seraph/internal/repositories/itemcache"
	"github.com/0niSec/cephalon-seraph/internal/services"
	"github.com/0niSec/cephalon-seraph/internal/telemetry"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	} else {
		log.Println("Loaded .env file")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	log.Printf("Application ID: %s", cfg.Discord.AppID)
	if cfg.Discord.GuildID != "" {
		log.Printf("Guild ID: %s", cfg.Discord.GuildID)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	defer stop()

	shutdownTracing, err := telemetry.Setup(ctx, telemetry.Config{
		ServiceName:  cfg.Telemetry.ServiceName,
		OTLPEndpoint: cfg.Telemetry.OTLPEndpoint,
	})
	if err != nil {
		log.Fatalf("Failed to set up tracing: %v", err)
	}

	dg, err := discordgo.New("Bot " + cfg.Discord.Token)
	if err != nil {
		log.Fatalf("Failed to create Discord session: %v", err)
	}

	httpClient := &http.Client{Timeout: cfg.Providers.HTTPTimeout}
	itemsClient, err := warframestat.New(&warframestat.Config{
		BaseURL:    cfg.Providers.WarframeStatURL,
		HTTPClient: httpClient,
	})
	if err != nil {
		log.Fatalf("Failed to create WarframeStat client: %v", err)
	}
	marketClient, err := market.New(&market.Config{
		BaseURL:    cfg.Providers.MarketURL,
		HTTPClient: httpClient,
	})
	if err != nil {
		log.Fatalf("Failed to create market client: %v", err)
	}

	providerConfig := &services.ProviderConfig{
		ItemsClient:  itemsClient,
		MarketClient: marketClient,
	}
	snapshots := cardsessions.NewInMemoryRepository()
	var rateLimitStore middleware.RateLimitStore

	// Keep Redis client for cleanup
	redisClient := connectRedis(ctx, cfg.Redis.URL)
	if redisClient != nil {
		providerConfig.ItemCache = itemcache.NewRedis(redisClient, cfg.Providers.ItemCacheTTL)
		snapshots = cardsessions.NewRedis(redisClient)
		rateLimitStore = middleware.NewRedisRateLimitStore(redisClient)
		log.Println("Using Redis for persistence")
	}

	provider := services.NewProvider(providerConfig)

	emojiStore, err := emoji.NewStore(cfg.EmojiFile)
	if err != nil {
		log.Fatalf("Failed to load emoji table: %v", err)
	}
	if err := emojiStore.Watch(ctx); err != nil {
		log.Printf("Emoji hot reload disabled: %v", err)
	}

	cards := navigation.NewManager(&navigation.ManagerConfig{
		Renderer:    card.NewRenderer(emojiStore),
		Prices:      provider.ItemService,
		Messenger:   discord.NewMessenger(dg),
		Snapshots:   snapshots,
		IdleTimeout: cfg.Cards.IdleTimeout,
		Instance:    cfg.Cards.Instance,
	})

	pipeline := core.NewPipeline()
	pipeline.Use(
		middleware.LoggingMiddleware(),
		middleware.ErrorMiddleware(),
		middleware.RecoveryMiddleware(),
	)

	if _, err := routers.NewSearchRouter(pipeline, &routers.SearchRouterConfig{
		Provider:           provider,
		Cards:              cards,
		RateLimitPerMinute: cfg.RateLimit.PerMinute,
		RateLimitStore:     rateLimitStore,
	}); err != nil {
		log.Fatalf("Failed to create search router: %v", err)
	}
	routers.NewHelpRouter(pipeline)
	routers.NewReloadRouter(pipeline, emojiStore, cfg.Discord.OwnerID)

	dg.AddHandler(pipeline.HandleInteraction)
	gateway := discord.NewReadyTracker(dg)

	if err := dg.Open(); err != nil {
		log.Printf("Failed to open Discord connection: %v", err)
		return
	}
	defer func() {
		if clientErr := dg.Close(); clientErr != nil {
			log.Printf("Failed to close Discord connection: %v", clientErr)
		}
	}()

	// Use empty string for global commands, or set a specific guild ID for testing
	if err := routers.RegisterCommands(dg, cfg.Discord.AppID, cfg.Discord.GuildID); err != nil {
		log.Printf("Failed to register commands: %v", err)
		return
	}
	if cfg.Discord.GuildID == "" {
		log.Println("Registered global commands (may take up to 1 hour to propagate)")
	}

	// Cards left interactive by a previous run can no longer be answered
	if n, err := cards.DisableOrphans(ctx); err != nil {
		log.Printf("Failed to disable orphaned cards: %v", err)
	} else if n > 0 {
		log.Printf("Disabled %d orphaned cards", n)
	}

	var healthServer *health.Server
	if cfg.Health.Addr != "" {
		healthServer = health.NewServer(cfg.Health.Addr, cards, gateway.Ready)
		healthServer.Start()
	}

	fmt.Println("Bot is now running. Press CTRL-C to exit.")
	<-ctx.Done()
	fmt.Println("Shutting down...")

	cards.Close()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if healthServer != nil {
		if err := healthServer.Shutdown(shutdownCtx); err != nil {
			log.Printf("Error stopping health server: %v", err)
		}
	}
	if err := shutdownTracing(shutdownCtx); err != nil {
		log.Printf("Error flushing traces: %v", err)
	}

	// Clean up Redis connection if we have one
	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Printf("Error closing Redis connection: %v", err)
		} else {
			log.Println("Closed Redis connection")
		}
	}
}

// connectRedis returns nil when no URL is set or Redis cannot be reached,
// in which case the bot falls back to in-memory storage
func connectRedis(ctx context.Context, redisURL string) *redis.Client {
	if redisURL == "" {
		log.Println("No REDIS_URL found, using in-memory repositories")
		return nil
	}

	log.Printf("Connecting to Redis at: %s", redisURL)
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Printf("Failed to parse Redis URL: %v", err)
		log.Println("Falling back to in-memory repositories")
		return nil
	}

	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		log.Printf("Failed to connect to Redis: %v", err)
		log.Println("Falling back to in-memory repositories")
		_ = client.Close()
		return nil
	}

	log.Println("Successfully connected to Redis")
	return client
}
