package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"vidgate/internal/domain"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	BotToken           string
	AdminIDs           []int64
	SourceChannelID    int64
	TargetChannels     []int64
	Channels           []domain.Channel
	PremiumUsers       []int64
	DailyDownloadLimit int
	Messages           Messages
	Database           DatabaseConfig
}

// Messages holds the user-facing message templates
type Messages struct {
	Welcome       string
	Success       string
	NotJoined     string
	LimitReached  string // takes the daily limit
	VideoNotFound string
	Post          string // takes the video title
	Help          string
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
}

const (
	defaultWelcome = "🎉 Welcome to our Bot!\n\n" +
		"To use this bot, you need to join our channels first.\n\n" +
		"Please join all the channels below and click \"✅ Joined\" to verify."

	defaultSuccess = "✅ Congratulations!\n\n" +
		"You have joined all required channels.\n" +
		"Now you can use all features of this bot."

	defaultNotJoined = "❌ Verification Failed!\n\n" +
		"You haven't joined all the required channels yet.\n" +
		"Please join all channels and try again."

	defaultLimitReached = "⏳ Daily Limit Reached!\n\n" +
		"You have downloaded the maximum of %d videos today.\n" +
		"Please try again tomorrow."

	defaultVideoNotFound = "❌ Video Not Found!\n\n" +
		"This video is missing or has been removed."

	defaultPost = "🎬 %s\n\n📥 Tap below to get the video!"

	defaultHelp = "📚 Bot Help\n\n" +
		"This bot delivers videos from our channels.\n\n" +
		"How to use:\n" +
		"1. Join all required channels\n" +
		"2. Tap a video button in our public channels\n" +
		"3. Get the video right here!\n\n" +
		"Commands:\n" +
		"/start — start the bot and verify membership\n" +
		"/help — show this help\n" +
		"/stats — your download stats\n" +
		"/profile — your profile"
)

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (ignore error if not exists)
	_ = godotenv.Load()

	channels, err := ParseChannels(os.Getenv("CHANNELS"))
	if err != nil {
		return nil, fmt.Errorf("CHANNELS: %w", err)
	}

	adminIDs, err := parseIDList(os.Getenv("ADMIN_IDS"))
	if err != nil {
		return nil, fmt.Errorf("ADMIN_IDS: %w", err)
	}

	targetChannels, err := parseIDList(os.Getenv("TARGET_CHANNELS"))
	if err != nil {
		return nil, fmt.Errorf("TARGET_CHANNELS: %w", err)
	}

	premiumUsers, err := parseIDList(os.Getenv("PREMIUM_USERS"))
	if err != nil {
		return nil, fmt.Errorf("PREMIUM_USERS: %w", err)
	}

	sourceChannelID, err := parseOptionalID(os.Getenv("SOURCE_CHANNEL_ID"))
	if err != nil {
		return nil, fmt.Errorf("SOURCE_CHANNEL_ID: %w", err)
	}

	dailyLimit, err := getEnvInt("DAILY_DOWNLOAD_LIMIT", 300)
	if err != nil {
		return nil, fmt.Errorf("DAILY_DOWNLOAD_LIMIT: %w", err)
	}

	cfg := &Config{
		BotToken:           os.Getenv("BOT_TOKEN"),
		AdminIDs:           adminIDs,
		SourceChannelID:    sourceChannelID,
		TargetChannels:     targetChannels,
		Channels:           channels,
		PremiumUsers:       premiumUsers,
		DailyDownloadLimit: dailyLimit,
		Messages: Messages{
			Welcome:       getEnv("MSG_WELCOME", defaultWelcome),
			Success:       getEnv("MSG_SUCCESS", defaultSuccess),
			NotJoined:     getEnv("MSG_NOT_JOINED", defaultNotJoined),
			LimitReached:  getEnv("MSG_LIMIT_REACHED", defaultLimitReached),
			VideoNotFound: getEnv("MSG_VIDEO_NOT_FOUND", defaultVideoNotFound),
			Post:          getEnv("MSG_POST_TEMPLATE", defaultPost),
			Help:          getEnv("MSG_HELP", defaultHelp),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			Name:     getEnv("DB_NAME", "vidgate"),
			User:     getEnv("DB_USER", "vidgate"),
			Password: os.Getenv("DB_PASSWORD"),
		},
	}

	// Validate required fields
	if cfg.BotToken == "" {
		return nil, fmt.Errorf("BOT_TOKEN is required")
	}
	if cfg.Database.Password == "" {
		return nil, fmt.Errorf("DB_PASSWORD is required")
	}

	return cfg, nil
}

// DSN returns PostgreSQL connection string
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.Name,
	)
}

// ParseChannels parses the CHANNELS variable. Each comma-separated entry is
// "ident", "ident|link" or "ident|name|link"; ident is a public username or
// a numeric chat id. A missing name defaults to the ident, a missing link
// to the public t.me URL. Channel order is preserved; idents must be unique.
func ParseChannels(raw string) ([]domain.Channel, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	entries := strings.Split(raw, ",")
	channels := make([]domain.Channel, 0, len(entries))
	seen := make(map[string]bool, len(entries))

	for _, entry := range entries {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}

		parts := strings.Split(entry, "|")
		ch := domain.Channel{Ident: strings.TrimSpace(parts[0])}
		if ch.Ident == "" {
			return nil, fmt.Errorf("invalid channel entry %q", entry)
		}

		switch len(parts) {
		case 1:
			ch.Name = strings.TrimPrefix(ch.Ident, "@")
			ch.Link = "https://t.me/" + strings.TrimPrefix(ch.Ident, "@")
		case 2:
			ch.Name = strings.TrimPrefix(ch.Ident, "@")
			ch.Link = strings.TrimSpace(parts[1])
		case 3:
			ch.Name = strings.TrimSpace(parts[1])
			ch.Link = strings.TrimSpace(parts[2])
		default:
			return nil, fmt.Errorf("invalid channel entry %q", entry)
		}

		if seen[ch.Ident] {
			return nil, fmt.Errorf("duplicate channel %q", ch.Ident)
		}
		seen[ch.Ident] = true
		channels = append(channels, ch)
	}

	return channels, nil
}

func parseIDList(raw string) ([]int64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	parts := strings.Split(raw, ",")
	ids := make([]int64, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid id %q", part)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func parseOptionalID(raw string) (int64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}
	return strconv.ParseInt(raw, 10, 64)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	return strconv.Atoi(value)
}
