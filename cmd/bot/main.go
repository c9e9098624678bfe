package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/KirkDiggler/mafiabot/internal/common/clock"
	"github.com/KirkDiggler/mafiabot/internal/config"
	"github.com/KirkDiggler/mafiabot/internal/dice"
	"github.com/KirkDiggler/mafiabot/internal/handlers/discord"
	"github.com/KirkDiggler/mafiabot/internal/repositories/entitlement"
	"github.com/KirkDiggler/mafiabot/internal/repositories/game"
	"github.com/KirkDiggler/mafiabot/internal/repositories/player"
	gameService "github.com/KirkDiggler/mafiabot/internal/services/game"
	"github.com/KirkDiggler/mafiabot/internal/services/messaging"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg, err := config.Load(".env")
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	setupLogging(cfg)

	// Initialize Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	// Test Redis connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Fatal().Err(err).Str("addr", cfg.RedisAddr).Msg("failed to connect to redis")
	}

	// Initialize repositories
	gameRepo, err := game.NewRedis(&game.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create game repository")
	}

	playerRepo, err := player.NewRedis(&player.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create player repository")
	}

	entitlementRepo, err := entitlement.NewRedis(&entitlement.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create entitlement repository")
	}

	roller := dice.New(&dice.Config{})

	presenter, err := messaging.NewService(&messaging.ServiceConfig{
		Roller: roller,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create presenter")
	}

	// The notifier and the bot share one Discord session
	session, err := discord.NewSession(cfg.DiscordToken)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create Discord session")
	}

	notifier, err := discord.NewNotifier(session)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create notifier")
	}

	// Initialize game service
	gameCfg := cfg.GameConfig()
	gameCfg.GameRepo = gameRepo
	gameCfg.PlayerRepo = playerRepo
	gameCfg.EntitlementRepo = entitlementRepo
	gameCfg.Notifier = notifier
	gameCfg.Presenter = presenter
	gameCfg.Roller = roller
	gameCfg.Scheduler = clock.NewScheduler()

	gameSvc, err := gameService.New(gameCfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create game service")
	}

	bot, err := discord.New(&discord.Config{
		ApplicationID: cfg.ApplicationID,
		GuildID:       cfg.GuildID,
		Session:       session,
		GameService:   gameSvc,
		Presenter:     presenter,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create Discord bot")
	}

	if err := bot.Start(); err != nil {
		log.Fatal().Err(err).Msg("failed to start Discord bot")
	}

	// Games interrupted by a restart resume at the next day
	restored, err := gameSvc.Registry().RestoreActive(context.Background())
	if err != nil {
		log.Error().Err(err).Msg("failed to restore active games")
	} else {
		log.Info().Int("games", restored).Msg("restored active games")
	}

	// Wait for interrupt signal to gracefully shutdown
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	if err := bot.Stop(); err != nil {
		log.Error().Err(err).Msg("error stopping bot")
	}

	if err := redisClient.Close(); err != nil {
		log.Error().Err(err).Msg("error closing redis client")
	}

	log.Info().Msg("bot has been shut down")
}

func setupLogging(cfg *config.Config) {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Warn().Str("level", cfg.LogLevel).Msg("unknown log level, using info")
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	if cfg.LogPretty {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	}
}
