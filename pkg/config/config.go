package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv         string
	HTTPAddr       string
	MigrationsPath string

	// DatabaseURL takes precedence over the discrete DB fields when set.
	// Useful for hosted Postgres where the provider hands out a single DSN.
	DatabaseURL string

	DB DBConfig

	// JWTSecret signs admin session tokens. Required.
	JWTSecret string

	Admin AdminConfig

	// AllowedOrigins is a comma-separated allowlist of origins allowed to
	// call the API from a browser. Example:
	//   https://booking.yourshop.com,http://localhost:5173
	AllowedOrigins []string
}

type DBConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	SSLMode  string
}

type AdminConfig struct {
	Username string

	// Password is the plain-text admin password for local/dev setups.
	// When PasswordHash is set it wins and Password is ignored.
	Password string

	// PasswordHash is a bcrypt hash of the admin password. Prefer this in
	// production so the plain password never lives in the environment.
	PasswordHash string
}

func Load() Config {
	// Convenience for local dev: load variables from .env if present.
	// In production, rely on real environment variables.
	_ = godotenv.Load()

	appEnv := env("APP_ENV", "dev")

	// Cloud platforms set PORT. Prefer it when HTTP_ADDR isn't explicitly set.
	httpAddr := os.Getenv("HTTP_ADDR")
	if httpAddr == "" {
		if port := os.Getenv("PORT"); port != "" {
			httpAddr = ":" + port
		} else {
			httpAddr = ":8080"
		}
	}

	// Production talks to the store over TLS unless told otherwise.
	defaultSSLMode := "disable"
	if appEnv == "production" {
		defaultSSLMode = "require"
	}

	return Config{
		AppEnv:         appEnv,
		HTTPAddr:       httpAddr,
		MigrationsPath: os.Getenv("MIGRATIONS_PATH"),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		DB: DBConfig{
			Host:     env("DB_HOST", "localhost"),
			Port:     env("DB_PORT", "5432"),
			Name:     env("DB_NAME", "detailbook"),
			User:     env("DB_USER", "detailbook"),
			Password: env("DB_PASSWORD", "detailbook"),
			SSLMode:  env("DB_SSLMODE", defaultSSLMode),
		},
		JWTSecret: os.Getenv("JWT_SECRET"),
		Admin: AdminConfig{
			Username:     os.Getenv("ADMIN_USERNAME"),
			Password:     os.Getenv("ADMIN_PASSWORD"),
			PasswordHash: os.Getenv("ADMIN_PASSWORD_HASH"),
		},
		AllowedOrigins: envList("ALLOWED_ORIGINS", "http://localhost:5173,http://localhost:4173"),
	}
}

func env(key, fallback string) string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	return v
}

func envList(key, fallbackCSV string) []string {
	v := os.Getenv(key)
	if v == "" {
		v = fallbackCSV
	}
	var out []string
	for _, part := range strings.Split(v, ",") {
		if s := strings.TrimSpace(part); s != "" {
			out = append(out, s)
		}
	}
	return out
}
