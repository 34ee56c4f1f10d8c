package config

import (
	"fmt"
	"log"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

func init() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, falling back to system environment variables")
	}
}

// Config holds everything the bot reads from the environment. It is built once
// at startup and passed by reference; no component reads os.Getenv on its own.
type Config struct {
	DiscordToken      string `env:"DISCORD_TOKEN,required,notEmpty"`
	LogChannelID      string `env:"LOG_CHANNEL_ID"`
	RequiredRoleName  string `env:"REQUIRED_ROLE_NAME" envDefault:"Discord Moderator"`
	DashboardPassword string `env:"DASHBOARD_PASSWORD"`
	Port              int    `env:"PORT" envDefault:"8080"`

	// GuildID is only used by cmd/register to scope slash command registration.
	GuildID string `env:"GUILD_ID"`
}

func New() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}
	if cfg.LogChannelID == "" {
		log.Println("[WARN] LOG_CHANNEL_ID is not set, audit logging is disabled")
	}
	return cfg, nil
}
