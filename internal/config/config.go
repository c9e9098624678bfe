package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/KirkDiggler/mafiabot/internal/services/game"
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds process configuration read from the environment
type Config struct {
	// Discord
	DiscordToken  string `env:"DISCORD_TOKEN,required"`
	ApplicationID string `env:"APPLICATION_ID"`
	GuildID       string `env:"GUILD_ID"`

	// Redis
	RedisAddr     string `env:"REDIS_ADDR"     envDefault:"localhost:6379"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB"       envDefault:"0"`

	// Logging
	LogLevel  string `env:"LOG_LEVEL"  envDefault:"info"`
	LogPretty bool   `env:"LOG_PRETTY" envDefault:"false"`

	// Roster
	MinPlayers int `env:"MIN_PLAYERS" envDefault:"5"`
	MaxPlayers int `env:"MAX_PLAYERS" envDefault:"10"`
	MaxBots    int `env:"MAX_BOTS"    envDefault:"6"`

	// Phase timers
	NightDuration        time.Duration `env:"NIGHT_DURATION"        envDefault:"60s"`
	DayDuration          time.Duration `env:"DAY_DURATION"          envDefault:"60s"`
	VoteDuration         time.Duration `env:"VOTE_DURATION"         envDefault:"30s"`
	NominationDuration   time.Duration `env:"NOMINATION_DURATION"   envDefault:"10s"`
	ConfirmationDuration time.Duration `env:"CONFIRMATION_DURATION" envDefault:"10s"`
	CountdownStep        time.Duration `env:"COUNTDOWN_STEP"        envDefault:"5s"`

	// Roles
	ExtraMafiaThreshold int  `env:"EXTRA_MAFIA_THRESHOLD" envDefault:"8"`
	EnableMayor         bool `env:"ENABLE_MAYOR"          envDefault:"true"`
	EnablePetrushka     bool `env:"ENABLE_PETRUSHKA"      envDefault:"true"`
	EnableDeputy        bool `env:"ENABLE_DEPUTY"         envDefault:"false"`
	EnableConsigliere   bool `env:"ENABLE_CONSIGLIERE"    envDefault:"false"`

	// Potato variant
	EnablePotato    bool    `env:"ENABLE_POTATO"     envDefault:"false"`
	PotatoChance    float64 `env:"POTATO_CHANCE"     envDefault:"0.25"`
	PotatoHitChance float64 `env:"POTATO_HIT_CHANCE" envDefault:"0.5"`

	// Rope break
	RopeBreakBase         float64 `env:"ROPE_BREAK_BASE"        envDefault:"0.1"`
	RopeBreakPenalty      float64 `env:"ROPE_BREAK_PENALTY"     envDefault:"0.2"`
	RopeBreakMin          float64 `env:"ROPE_BREAK_MIN"         envDefault:"0.05"`
	ExecutionerMultiplier float64 `env:"EXECUTIONER_MULTIPLIER" envDefault:"2"`

	// Scripted participants
	BotVoteYesChance    float64 `env:"BOT_VOTE_YES_CHANCE"    envDefault:"0.5"`
	BotConfirmYesChance float64 `env:"BOT_CONFIRM_YES_CHANCE" envDefault:"0.7"`

	// Scoring
	ScoringEnabled bool `env:"SCORING_ENABLED" envDefault:"true"`
	PointsWin      int  `env:"POINTS_WIN"      envDefault:"50"`
	PointsLose     int  `env:"POINTS_LOSE"     envDefault:"10"`

	EarlyFinish bool `env:"EARLY_FINISH" envDefault:"true"`
}

// Load reads .env files, if present, and then the environment. Variables
// already set in the environment win over file values.
func Load(files ...string) (*Config, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load env file: %w", err)
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	return &cfg, nil
}

// GameConfig maps the game tunables onto a game service config. Dependencies
// are left for the caller to fill in.
func (c *Config) GameConfig() *game.Config {
	return &game.Config{
		MinPlayers:            c.MinPlayers,
		MaxPlayers:            c.MaxPlayers,
		MaxBots:               c.MaxBots,
		NightDuration:         c.NightDuration,
		DayDuration:           c.DayDuration,
		VoteDuration:          c.VoteDuration,
		NominationDuration:    c.NominationDuration,
		ConfirmationDuration:  c.ConfirmationDuration,
		CountdownStep:         c.CountdownStep,
		ExtraMafiaThreshold:   c.ExtraMafiaThreshold,
		EnableDeputy:          c.EnableDeputy,
		EnableConsigliere:     c.EnableConsigliere,
		EnableMayor:           c.EnableMayor,
		EnablePetrushka:       c.EnablePetrushka,
		EnablePotato:          c.EnablePotato,
		PotatoChance:          c.PotatoChance,
		PotatoHitChance:       c.PotatoHitChance,
		RopeBreakBase:         c.RopeBreakBase,
		RopeBreakPenalty:      c.RopeBreakPenalty,
		RopeBreakMin:          c.RopeBreakMin,
		ExecutionerMultiplier: c.ExecutionerMultiplier,
		BotVoteYesChance:      c.BotVoteYesChance,
		BotConfirmYesChance:   c.BotConfirmYesChance,
		ScoringEnabled:        c.ScoringEnabled,
		PointsWin:             c.PointsWin,
		PointsLose:            c.PointsLose,
		EarlyFinish:           c.EarlyFinish,
	}
}
