package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	BaharURL      string
	BaharUsername string
	BaharPassword string
	ESSOURL       string
	TokenFile     string

	PreferencesFile  string
	MaxOffersPerDay  int
	MinProjectBudget int64
	MaxProjectBudget int64
	AutoSubmitOffers bool
	BrowserHeadless  bool

	TelegramToken    string
	TelegramChat     string
	TelegramThreadID *int

	HTTPPort string
	CronSpec string
}

func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		DBHost:           envOrDefault("DB_HOST", "localhost"),
		DBPort:           envOrDefault("DB_PORT", "5432"),
		DBUser:           envOrDefault("DB_USERNAME", "postgres"),
		DBPassword:       envOrDefault("DB_PASSWORD", "postgres"),
		DBName:           envOrDefault("DB_DATABASE", "bahar"),
		DBSSLMode:        envOrDefault("DB_SSLMODE", "disable"),
		BaharURL:         envOrDefault("BAHAR_URL", "https://bahr.sa"),
		BaharUsername:    os.Getenv("BAHAR_USERNAME"),
		BaharPassword:    os.Getenv("BAHAR_PASSWORD"),
		ESSOURL:          envOrDefault("ESSO_URL", "https://esso-api.910ths.sa/api/user/login"),
		TokenFile:        envOrDefault("TOKEN_FILE", "bahar_token.json"),
		PreferencesFile:  envOrDefault("PREFERENCES_FILE", "preferences.txt"),
		TelegramToken:    os.Getenv("TELEGRAM_BOT_TOKEN"),
		TelegramChat:     os.Getenv("TELEGRAM_CHAT_ID"),
		TelegramThreadID: nil,
		HTTPPort:         envOrDefault("HTTP_PORT", "3000"),
		CronSpec:         envOrDefault("BID_CRON", "0 */2 * * *"),
	}

	maxOffers, err := envOrInt("MAX_OFFERS_PER_DAY", 10)
	if err != nil {
		return cfg, err
	}
	cfg.MaxOffersPerDay = maxOffers

	minBudget, err := envOrInt("MIN_PROJECT_BUDGET", 100)
	if err != nil {
		return cfg, err
	}
	cfg.MinProjectBudget = int64(minBudget)

	maxBudget, err := envOrInt("MAX_PROJECT_BUDGET", 5000)
	if err != nil {
		return cfg, err
	}
	cfg.MaxProjectBudget = int64(maxBudget)

	cfg.AutoSubmitOffers = envOrBool("AUTO_SUBMIT_OFFERS", false)
	cfg.BrowserHeadless = envOrBool("BROWSER_HEADLESS", true)

	threadID, err := envOrIntPtr("TELEGRAM_CHAT_THREAD_ID")
	if err != nil {
		return cfg, err
	}
	cfg.TelegramThreadID = threadID

	if cfg.BaharUsername == "" || cfg.BaharPassword == "" {
		return cfg, errors.New("missing BAHAR_USERNAME or BAHAR_PASSWORD")
	}

	if cfg.DBHost == "" || cfg.DBUser == "" || cfg.DBName == "" {
		return cfg, errors.New("missing database configuration")
	}

	return cfg, nil
}

func (c Config) PostgresDSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s", c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName, c.DBSSLMode)
}

func (c Config) TelegramEnabled() bool {
	return c.TelegramToken != "" && c.TelegramChat != ""
}

func envOrDefault(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func envOrInt(key string, fallback int) (int, error) {
	val := os.Getenv(key)
	if val == "" {
		return fallback, nil
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return parsed, nil
}

func envOrBool(key string, fallback bool) bool {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(val)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrIntPtr(key string) (*int, error) {
	val := os.Getenv(key)
	if val == "" {
		return nil, nil
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %w", key, err)
	}
	return &parsed, nil
}
