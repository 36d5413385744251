package config

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// ErrMissingSecret is returned by Load when a required secret is absent.
var ErrMissingSecret = errors.New("missing required secret")

// Config holds application level configuration loaded from environment variables.
type Config struct {
	Env         string
	LogLevel    string
	ServerPort  string
	SwaggerHost string
	ProjectName string
	Domain      string

	AllowedOrigins []string
	LoginRateLimit float64

	DBDriver    string
	DatabaseURL string
	DBLogSQL    bool
	ResetDB     bool

	RedisAddr string
	RedisDB   int
	RedisPass string

	AccessTokenSecret       string
	RefreshTokenSecret      string
	PepperSecret            string
	AccessTokenMaxAge       time.Duration
	RefreshTokenMaxAge      time.Duration
	VerificationTokenMaxAge time.Duration
	CookieSecure            bool
	CookieSameSite          http.SameSite

	MailHost   string
	MailPort   int
	MailUser   string
	MailPass   string
	MailSender string
}

// Load reads .env when present and builds Config from the environment.
// Missing token secrets or pepper are reported as an error.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return FromEnv()
}

// FromEnv builds Config from the current environment without touching .env.
func FromEnv() (*Config, error) {
	cfg := &Config{
		Env:         getEnv("ENV", "production"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		ServerPort:  getEnv("SERVER_PORT", "8080"),
		SwaggerHost: os.Getenv("SWAGGER_HOST"),
		ProjectName: getEnv("PROJECT_NAME", "Modular CV"),
		Domain:      getEnv("DOMAIN", "http://localhost:8080"),

		AllowedOrigins: getEnvList("ALLOWED_ORIGINS", []string{"*"}),
		LoginRateLimit: getEnvFloat("LOGIN_RATE_LIMIT", 5),

		DBDriver:    getEnv("DB_DRIVER", "mysql"),
		DatabaseURL: getEnv("DATABASE_URL", "user:password@tcp(localhost:3306)/modular_cv?charset=utf8mb4&parseTime=True&loc=UTC"),
		DBLogSQL:    getEnvBool("DB_LOG_SQL", false),
		ResetDB:     getEnvBool("RESET_DB", false),

		RedisAddr: os.Getenv("REDIS_ADDR"),
		RedisDB:   getEnvInt("REDIS_DB", 0),
		RedisPass: os.Getenv("REDIS_PASSWORD"),

		AccessTokenSecret:  os.Getenv("ACCESS_TOKEN_SECRET"),
		RefreshTokenSecret: os.Getenv("REFRESH_TOKEN_SECRET"),
		PepperSecret:       os.Getenv("PEPPER_SECRET"),
		CookieSecure:       getEnvBool("COOKIE_SECURE", true),
		CookieSameSite:     parseSameSite(getEnv("COOKIE_SAMESITE", "strict")),

		MailHost:   os.Getenv("MAIL_HOST"),
		MailPort:   getEnvInt("MAIL_PORT", 587),
		MailUser:   os.Getenv("MAIL_USER"),
		MailPass:   os.Getenv("MAIL_PASS"),
		MailSender: getEnv("MAIL_SENDER", "no-reply@localhost"),
	}

	var missing []string
	for key, val := range map[string]string{
		"ACCESS_TOKEN_SECRET":  cfg.AccessTokenSecret,
		"REFRESH_TOKEN_SECRET": cfg.RefreshTokenSecret,
		"PEPPER_SECRET":        cfg.PepperSecret,
	} {
		if val == "" {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return nil, fmt.Errorf("%w: %s", ErrMissingSecret, strings.Join(missing, ", "))
	}

	var err error
	if cfg.AccessTokenMaxAge, err = getEnvDuration("ACCESS_TOKEN_MAX_AGE", 15*time.Minute); err != nil {
		return nil, err
	}
	if cfg.RefreshTokenMaxAge, err = getEnvDuration("REFRESH_TOKEN_MAX_AGE", 7*24*time.Hour); err != nil {
		return nil, err
	}
	if cfg.VerificationTokenMaxAge, err = getEnvDuration("VERIFICATION_TOKEN_MAX_AGE", 24*time.Hour); err != nil {
		return nil, err
	}

	return cfg, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return def
}

func getEnvFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			return parsed
		}
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.ParseBool(v); err == nil {
			return parsed
		}
	}
	return def
}

func getEnvList(key string, def []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// getEnvDuration accepts Go duration strings ("15m") or integer milliseconds.
func getEnvDuration(key string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	if ms, err := strconv.ParseInt(v, 10, 64); err == nil {
		return time.Duration(ms) * time.Millisecond, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}
	return d, nil
}

func parseSameSite(v string) http.SameSite {
	switch strings.ToLower(v) {
	case "lax":
		return http.SameSiteLaxMode
	case "none":
		return http.SameSiteNoneMode
	}
	return http.SameSiteStrictMode
}
