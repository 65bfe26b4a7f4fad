package config

import (
	"time"

	"retrofolio/internal/support"
)

// Config collects every externally supplied setting in one place. It is
// built once in app.Run and handed to each component at construction, so
// nothing below the app layer reads the environment on its own.
type Config struct {
	BackendPort   int
	ServeFrontend bool

	// AdminPassword is the shared secret for the admin panel. Empty means
	// the admin surface is unconfigured, which is a server configuration
	// error, not an authentication failure.
	AdminPassword string

	Database DatabaseConfig

	Moderation ModerationConfig

	Mail MailConfig

	// RedisURL points at the visitor-stats counter. Optional; an empty or
	// unreachable value disables stats rather than the whole site.
	RedisURL string

	// BlogDir is the directory scanned for markdown documents with YAML
	// front-matter.
	BlogDir string

	// GeoDBPath is an optional GeoLite2 country database used to enrich
	// the admin entry list.
	GeoDBPath string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string

	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

type ModerationConfig struct {
	// APIKey for the Gemini classifier. Empty disables moderation
	// explicitly; an enabled moderator that errors always fails closed.
	APIKey  string
	Model   string
	Timeout time.Duration
}

type MailConfig struct {
	// APIKey for the Resend mail provider.
	APIKey string
	From   string
	To     string
}

func Load() Config {
	return Config{
		BackendPort:   support.GetEnvInt("BACKEND_PORT", 8082),
		ServeFrontend: support.GetEnv("SERVE_FRONTEND", "true") != "false",
		AdminPassword: support.GetEnv("ADMIN_PASSWORD", ""),
		Database: DatabaseConfig{
			Host:     support.GetEnv("DB_HOST", "localhost"),
			Port:     support.GetEnv("DB_PORT", "5432"),
			Name:     support.GetEnv("DB_NAME", "retrofolio"),
			User:     support.GetEnv("DB_USERNAME", "admin"),
			Password: support.GetEnv("DB_PASSWORD", "admin"),

			MaxOpenConns:    support.GetEnvInt("DB_MAX_OPEN_CONNS", 32),
			MaxIdleConns:    support.GetEnvInt("DB_MAX_IDLE_CONNS", 32),
			ConnMaxLifetime: time.Duration(support.GetEnvInt("DB_CONN_MAX_LIFETIME", 300)) * time.Second,
			ConnMaxIdleTime: time.Duration(support.GetEnvInt("DB_CONN_MAX_IDLE_TIME", 60)) * time.Second,
		},
		Moderation: ModerationConfig{
			APIKey:  support.GetEnv("GEMINI_API_KEY", ""),
			Model:   support.GetEnv("MODERATION_MODEL", "gemini-2.0-flash"),
			Timeout: time.Duration(support.GetEnvInt("MODERATION_TIMEOUT_SECONDS", 15)) * time.Second,
		},
		Mail: MailConfig{
			APIKey: support.GetEnv("RESEND_API_KEY", ""),
			From:   support.GetEnv("CONTACT_FROM", "Portfolio Contact <onboarding@resend.dev>"),
			To:     support.GetEnv("CONTACT_TO", ""),
		},
		RedisURL:  support.GetEnv("REDIS_URL", ""),
		BlogDir:   support.GetEnv("BLOG_DIR", "content/posts"),
		GeoDBPath: support.GetEnv("GEOLITE_COUNTRY_DB", ""),
	}
}
