package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// Server
	Port     string
	Env      string
	LogLevel string

	// Database, empty keeps ratings in memory
	DatabaseURL string

	// Redis, empty keeps the bot cooldown in memory
	RedisURL string

	CORSAllowedOrigins []string

	// Game
	RoomID           string // empty accepts every room
	BotID            string
	BotName          string
	GuardModifier    float64
	WatchdogInterval time.Duration
	PokeAfter        time.Duration
	IdleForfeitAfter time.Duration
	ChallengeTTL     time.Duration
	BotCooldown      time.Duration
	Admins           []string
	ExtendedCommands []string
	StatsURL         string

	// Inbound command rate limiting, per actor
	CommandRateCapacity int64
	CommandRateRefill   int64
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port:                getEnv("PORT", "8080"),
		Env:                 getEnv("ENV", "development"),
		LogLevel:            getEnv("LOG_LEVEL", "info"),
		DatabaseURL:         getEnv("DATABASE_URL", ""),
		RedisURL:            getEnv("REDIS_URL", ""),
		CORSAllowedOrigins:  splitList(getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:3000")),
		RoomID:              getEnv("GAME_ROOM_ID", ""),
		BotID:               getEnv("GAME_BOT_ID", "@dongerdong:localhost"),
		BotName:             getEnv("GAME_BOT_NAME", "dongerdong"),
		GuardModifier:       parseFloat(getEnv("GAME_GUARD_MODIFIER", "1"), 1),
		WatchdogInterval:    parseDuration(getEnv("GAME_WATCHDOG_INTERVAL", "5s"), 5*time.Second),
		PokeAfter:           parseDuration(getEnv("GAME_POKE_AFTER", "35s"), 35*time.Second),
		IdleForfeitAfter:    parseDuration(getEnv("GAME_IDLE_FORFEIT_AFTER", "50s"), 50*time.Second),
		ChallengeTTL:        parseDuration(getEnv("GAME_CHALLENGE_TTL", "300s"), 300*time.Second),
		BotCooldown:         parseDuration(getEnv("GAME_BOT_COOLDOWN", "30s"), 30*time.Second),
		Admins:              splitList(getEnv("GAME_ADMINS", "")),
		ExtendedCommands:    splitList(getEnv("EXTENDED_COMMANDS", "raise,lower")),
		StatsURL:            getEnv("STATS_URL", ""),
		CommandRateCapacity: parseInt(getEnv("COMMAND_RATE_CAPACITY", "5"), 5),
		CommandRateRefill:   parseInt(getEnv("COMMAND_RATE_REFILL", "1"), 1),
	}

	// defense is never allowed to amplify damage
	if cfg.GuardModifier < 1 {
		cfg.GuardModifier = 1
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func parseDuration(s string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		return fallback
	}
	return d
}

func parseFloat(s string, fallback float64) float64 {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fallback
	}
	return f
}

func parseInt(s string, fallback int64) int64 {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
