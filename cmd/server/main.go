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

	"github.com/Polsaker/dongerdong/internal/api"
	"github.com/Polsaker/dongerdong/internal/config"
	"github.com/Polsaker/dongerdong/internal/extcmd"
	"github.com/Polsaker/dongerdong/internal/game"
	"github.com/Polsaker/dongerdong/internal/repository"
	"github.com/Polsaker/dongerdong/internal/room"
	"github.com/Polsaker/dongerdong/internal/service"
	"github.com/Polsaker/dongerdong/internal/websocket"
	"github.com/Polsaker/dongerdong/pkg/database"
	"github.com/Polsaker/dongerdong/pkg/distributed"
	"github.com/Polsaker/dongerdong/pkg/logger"
	"github.com/Polsaker/dongerdong/pkg/ratelimit"
	"github.com/redis/go-redis/v9"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.Env, cfg.LogLevel)
	defer logger.Sync()

	logger.Info("Starting dongerdong",
		"port", cfg.Port,
		"env", cfg.Env,
		"room", cfg.RoomID,
	)

	// Storage
	var store repository.RatingStore
	if cfg.DatabaseURL != "" {
		db, err := database.Connect(cfg.DatabaseURL)
		if err != nil {
			logger.Fatal("Failed to connect to database", "error", err)
		}
		defer db.Close()

		if err := database.Migrate(db); err != nil {
			logger.Fatal("Failed to migrate database", "error", err)
		}
		store = repository.NewPostgresRatingStore(db)
		logger.Info("Database connection established")
	} else {
		store = repository.NewMemoryRatingStore()
		logger.Warn("DATABASE_URL not set, ratings are kept in memory")
	}

	hub := websocket.NewHub(logger.Named("websocket"), cfg.CORSAllowedOrigins...)
	go hub.Run()
	defer hub.Stop()

	// Redis shares the bot cooldown, announcements and rate limits between instances
	var (
		cooldown  game.BotCooldown = game.NewMemoryCooldown(cfg.BotCooldown)
		announcer game.Announcer   = room.Fanout{hub, room.NewLogAnnouncer(logger.Named("room"))}
		limiter   ratelimit.Limiter
	)
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			logger.Fatal("Invalid REDIS_URL", "error", err)
		}
		client := redis.NewClient(opts)
		defer client.Close()

		pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		err = client.Ping(pingCtx).Err()
		cancel()
		if err != nil {
			logger.Fatal("Failed to connect to redis", "error", err)
		}

		relay := distributed.NewAnnouncementRelay(client, logger.Named("relay"))
		if err := relay.Start(context.Background(), hub.Deliver); err != nil {
			logger.Fatal("Failed to start announcement relay", "error", err)
		}
		defer relay.Stop()

		cooldown = distributed.NewRedisCooldown(client, cfg.BotID, cfg.BotCooldown, logger.Named("cooldown"))
		announcer = room.Fanout{relay, room.NewLogAnnouncer(logger.Named("room"))}
		limiter = ratelimit.NewRedisRateLimiter(client, "dongerdong:ratelimit:",
			int(cfg.CommandRateCapacity), commandWindow(cfg))
		logger.Info("Redis connection established")
	} else {
		memLimiter := ratelimit.NewRateLimiter(cfg.CommandRateCapacity, cfg.CommandRateRefill)
		defer memLimiter.Stop()
		limiter = memLimiter
	}

	roller, err := game.NewSeededRoller()
	if err != nil {
		logger.Fatal("Failed to seed dice", "error", err)
	}

	eloService := service.NewELOService()
	statsService := service.NewStatsService(store)
	directory := room.NewDirectory(room.Member{ID: cfg.BotID, DisplayName: cfg.BotName})
	extensions := extcmd.NewRegistry(cfg.ExtendedCommands, extcmd.Builtins()...)
	moderator := room.NewLogModerator(logger.Named("moderation"))

	var rooms []string
	if cfg.RoomID != "" {
		rooms = append(rooms, cfg.RoomID)
	}

	lobby := game.NewLobby(func(roomID string) *game.Engine {
		return game.NewEngine(game.Options{
			RoomID:           roomID,
			BotID:            cfg.BotID,
			BotName:          cfg.BotName,
			GuardModifier:    cfg.GuardModifier,
			PokeAfter:        cfg.PokeAfter,
			IdleForfeitAfter: cfg.IdleForfeitAfter,
			ChallengeTTL:     cfg.ChallengeTTL,
			Admins:           cfg.Admins,
			StatsURL:         cfg.StatsURL,
		}, game.Dependencies{
			Store:      store,
			ELO:        eloService,
			Stats:      statsService,
			Announcer:  announcer,
			Membership: directory.Roster(roomID),
			Moderator:  moderator,
			Cooldown:   cooldown,
			Roller:     roller,
			Extensions: extensions,
			Logger:     logger.Named("game"),
		})
	}, rooms...)

	watchdog := game.NewWatchdog(lobby, cfg.WatchdogInterval, logger.Named("watchdog"))
	if err := watchdog.Start(); err != nil {
		logger.Fatal("Failed to start watchdog", "error", err)
	}
	defer watchdog.Stop()

	router := api.SetupRouter(cfg, api.Dependencies{
		Lobby:     lobby,
		Directory: directory,
		Hub:       hub,
		Stats:     statsService,
		Limiter:   limiter,
		Logger:    logger.Named("api"),
	})

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("Server listening", "address", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", "error", err)
	}

	logger.Info("Server exited")
}

// commandWindow turns the per-second refill into the window the redis
// bucket refills over.
func commandWindow(cfg *config.Config) time.Duration {
	seconds := cfg.CommandRateCapacity / cfg.CommandRateRefill
	if seconds < 1 {
		seconds = 1
	}
	return time.Duration(seconds) * time.Second
}
