package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	SMTP     SMTPConfig
	Keys     APIKeys
	Ai       AIConfig
	Search   SearchConfig
	Watcher  WatcherConfig
}

type AppConfig struct {
	Port               string
	BaseURL            string
	ClientURL          string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	NatsURL            string
	RedisURL           string
}

type DatabaseConfig struct {
	Connection string
}

type SMTPConfig struct {
	Host       string
	Port       int
	Email      string
	Password   string
	SenderName string
}

type APIKeys struct {
	Anthropic    string
	GoogleGemini string
	Datalab      string
	NCBI         string // optional, raises the E-utilities rate ceiling
	SECUserAgent string // SEC requires a contactable User-Agent
}

type AIConfig struct {
	StrategyProvider string // "claude" or "gemini"
	StrategyModel    string // e.g. "claude-3-5-sonnet-20241022"
}

type SearchConfig struct {
	TrialPageSize   int // per-strategy, capped at 50 by the registry client
	PaperMaxResults int // per-strategy, capped at 30 by the pubmed client
	NewsMaxResults  int
	FilingsMax      int
	CacheTTL        time.Duration
	NewswireFeedURL string // RSS search endpoint, %s is the escaped query
}

type WatcherConfig struct {
	Interval time.Duration
	Enabled  bool
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			BaseURL:            getEnv("APP_BASE_URL", "http://localhost:3000"),
			ClientURL:          getEnv("CLIENT_URL", "http://localhost:5173"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			NatsURL:            getEnv("NATS_URL", "nats://localhost:4222"),
			RedisURL:           getEnv("REDIS_URL", "redis://localhost:6379"),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		SMTP: SMTPConfig{
			Host:       getEnv("SMTP_HOST", ""),
			Port:       getEnvAsInt("SMTP_PORT", 587),
			Email:      getEnv("SMTP_EMAIL", ""),
			Password:   getEnv("SMTP_PASSWORD", ""),
			SenderName: getEnv("SMTP_SENDER_NAME", "ABC Research"),
		},
		Keys: APIKeys{
			Anthropic:    getEnv("ANTHROPIC_API_KEY", ""),
			GoogleGemini: getEnv("GOOGLE_GEMINI_API_KEY", ""),
			Datalab:      getEnv("DATALAB_API_KEY", ""),
			NCBI:         getEnv("NCBI_API_KEY", ""),
			SECUserAgent: getEnv("SEC_USER_AGENT", "abcresearch admin@abcresearch.dev"),
		},
		Ai: AIConfig{
			StrategyProvider: getEnv("STRATEGY_PROVIDER", "claude"),
			StrategyModel:    getEnv("STRATEGY_MODEL", "claude-3-5-sonnet-20241022"),
		},
		Search: SearchConfig{
			TrialPageSize:   getEnvAsInt("SEARCH_TRIAL_PAGE_SIZE", 50),
			PaperMaxResults: getEnvAsInt("SEARCH_PAPER_MAX_RESULTS", 30),
			NewsMaxResults:  getEnvAsInt("SEARCH_NEWS_MAX_RESULTS", 10),
			FilingsMax:      getEnvAsInt("SEARCH_FILINGS_MAX", 10),
			CacheTTL:        getEnvAsDuration("SEARCH_CACHE_TTL", 15*time.Minute),
			NewswireFeedURL: getEnv("NEWSWIRE_FEED_URL", "https://www.globenewswire.com/en/search/rss?query=%s"),
		},
		Watcher: WatcherConfig{
			Interval: getEnvAsDuration("WATCHER_INTERVAL", 30*time.Minute),
			Enabled:  getEnv("WATCHER_ENABLED", "true") == "true",
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}

func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	strValue := getEnv(key, "")
	if value, err := time.ParseDuration(strValue); err == nil {
		return value
	}
	return fallback
}
