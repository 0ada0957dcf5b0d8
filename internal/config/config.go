package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds mentorcast configuration
type Config struct {
	AppEnv   string // APP_ENV
	LogLevel string // LOG_LEVEL
	HTTPPort string // HTTP_PORT

	DatabaseURL string // DATABASE_URL

	Redis struct {
		Addr     string
		Password string
		DB       int
	}

	// TimeZone is the IANA zone session dates and times are written in
	TimeZone           string
	DefaultCountryCode string

	MeetingDuration     time.Duration
	SwapMeetingDuration time.Duration

	// CallTimeout bounds each best-effort external call
	CallTimeout time.Duration
	LockTTL     time.Duration

	StudentSendDelay time.Duration
	MentorSendDelay  time.Duration
	AdminSendDelay   time.Duration

	SMTP struct {
		Host     string
		Port     int
		Username string
		Password string
		From     string
	}

	WhatsApp struct {
		APIURL string
		Token  string
	}

	Graph struct {
		TenantID     string
		ClientID     string
		ClientSecret string
		Organizer    string
	}

	Discord struct {
		Token     string
		ChannelID string
	}

	AnnounceCron       string
	AnnounceWindowDays int

	DirectoryCacheTTL time.Duration
}

// Load reads configuration from the environment, loading .env when present
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		AppEnv:             getEnv("APP_ENV", "development"),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		HTTPPort:           getEnv("HTTP_PORT", "8080"),
		DatabaseURL:        getEnv("DATABASE_URL", ""),
		TimeZone:           getEnv("TIMEZONE", "Asia/Kolkata"),
		DefaultCountryCode: getEnv("DEFAULT_COUNTRY_CODE", "91"),
		AnnounceCron:       getEnv("ANNOUNCE_CRON", "*/15 * * * *"),
	}

	var err error
	if cfg.Redis.DB, err = getEnvInt("REDIS_DB", 0); err != nil {
		return nil, err
	}
	cfg.Redis.Addr = getEnv("REDIS_ADDR", "")
	cfg.Redis.Password = getEnv("REDIS_PASSWORD", "")

	durations := []struct {
		key string
		def time.Duration
		dst *time.Duration
	}{
		{"MEETING_DURATION", 90 * time.Minute, &cfg.MeetingDuration},
		{"SWAP_MEETING_DURATION", 60 * time.Minute, &cfg.SwapMeetingDuration},
		{"CALL_TIMEOUT", 5 * time.Second, &cfg.CallTimeout},
		{"LOCK_TTL", 30 * time.Second, &cfg.LockTTL},
		{"STUDENT_SEND_DELAY", 300 * time.Millisecond, &cfg.StudentSendDelay},
		{"MENTOR_SEND_DELAY", 500 * time.Millisecond, &cfg.MentorSendDelay},
		{"ADMIN_SEND_DELAY", time.Second, &cfg.AdminSendDelay},
		{"DIRECTORY_CACHE_TTL", 10 * time.Minute, &cfg.DirectoryCacheTTL},
	}
	for _, d := range durations {
		if *d.dst, err = getEnvDuration(d.key, d.def); err != nil {
			return nil, err
		}
	}

	cfg.SMTP.Host = getEnv("SMTP_HOST", "")
	if cfg.SMTP.Port, err = getEnvInt("SMTP_PORT", 587); err != nil {
		return nil, err
	}
	cfg.SMTP.Username = getEnv("SMTP_USERNAME", "")
	cfg.SMTP.Password = getEnv("SMTP_PASSWORD", "")
	cfg.SMTP.From = firstEnv("SMTP_FROM", "SMTP_USERNAME", "")

	cfg.WhatsApp.APIURL = getEnv("WHATSAPP_API_URL", "")
	cfg.WhatsApp.Token = getEnv("WHATSAPP_TOKEN", "")

	cfg.Graph.TenantID = getEnv("GRAPH_TENANT_ID", "")
	cfg.Graph.ClientID = getEnv("GRAPH_CLIENT_ID", "")
	cfg.Graph.ClientSecret = getEnv("GRAPH_CLIENT_SECRET", "")
	cfg.Graph.Organizer = getEnv("GRAPH_ORGANIZER", "")

	cfg.Discord.Token = getEnv("DISCORD_TOKEN", "")
	cfg.Discord.ChannelID = getEnv("DISCORD_CHANNEL_ID", "")

	if cfg.AnnounceWindowDays, err = getEnvInt("ANNOUNCE_WINDOW_DAYS", 2); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks required fields
func (c *Config) Validate() error {
	if c.DatabaseURL == "" {
		return errors.New("config: DATABASE_URL is required")
	}
	if _, err := time.LoadLocation(c.TimeZone); err != nil {
		return fmt.Errorf("config: invalid TIMEZONE %q: %w", c.TimeZone, err)
	}
	if c.MeetingDuration <= 0 || c.SwapMeetingDuration <= 0 {
		return errors.New("config: meeting durations must be positive")
	}
	if c.CallTimeout <= 0 {
		return errors.New("config: CALL_TIMEOUT must be positive")
	}
	if c.AnnounceWindowDays < 0 {
		return errors.New("config: ANNOUNCE_WINDOW_DAYS cannot be negative")
	}
	return nil
}

// Location returns the configured time zone, UTC when it cannot be loaded
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// MeetingEnabled reports whether Graph credentials are configured
func (c *Config) MeetingEnabled() bool {
	return c.Graph.TenantID != "" && c.Graph.ClientID != "" && c.Graph.ClientSecret != "" && c.Graph.Organizer != ""
}

// Addr returns the HTTP listen address
func (c *Config) Addr() string {
	return ":" + c.HTTPPort
}

func firstEnv(keysAndDef ...string) string {
	if len(keysAndDef) == 0 {
		return ""
	}
	def := keysAndDef[len(keysAndDef)-1]
	for _, k := range keysAndDef[:len(keysAndDef)-1] {
		if v := os.Getenv(k); v != "" {
			return v
		}
	}
	return def
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("config: %s must be an integer: %w", key, err)
	}
	return i, nil
}

func getEnvDuration(key string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("config: %s must be a duration: %w", key, err)
	}
	return d, nil
}
