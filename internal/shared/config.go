package shared

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type Config struct {
	AppEnv      string
	HTTPAddr    string
	MetricsAddr string
	MongoURI    string
	MongoDB     string
	RedisAddr   string
	RedisDB     int
	RedisPass   string
	GeminiBase  string
	GeminiKey   string
	GeminiModel string
	BookingBase string
	BookingHost string
	BookingKey  string
	JWTSecret   string
	SMTPHost    string
	SMTPPort    string
	SMTPUser    string
	SMTPPass    string
	MailFrom    string
	CacheTTL    time.Duration
}

func Load() Config {
	// A local .env is honored when present; real deployments set the
	// environment directly.
	_ = godotenv.Load()

	atoi := func(k string, def int) int {
		if v := os.Getenv(k); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				return n
			}
		}
		return def
	}
	c := Config{
		AppEnv:      env("APP_ENV", "prod"),
		HTTPAddr:    env("HTTP_ADDR", ":8080"),
		MetricsAddr: env("METRICS_ADDR", ""),
		MongoURI:    env("MONGODB_URI", "mongodb://localhost:27017"),
		MongoDB:     env("MONGODB_DATABASE", "tripmate"),
		RedisAddr:   env("REDIS_ADDR", "localhost:6379"),
		RedisPass:   env("REDIS_PASSWORD", ""),
		RedisDB:     atoi("REDIS_DB", 0),
		GeminiBase:  env("GEMINI_BASE_URL", "https://generativelanguage.googleapis.com/v1beta"),
		GeminiKey:   env("GEMINI_API_KEY", ""),
		GeminiModel: env("GEMINI_MODEL", "gemini-1.5-flash"),
		BookingBase: env("BOOKING_BASE_URL", "https://booking-com15.p.rapidapi.com/api/v1"),
		BookingHost: env("BOOKING_API_HOST", "booking-com15.p.rapidapi.com"),
		BookingKey:  env("RAPIDAPI_KEY", ""),
		JWTSecret:   env("JWT_SECRET", ""),
		SMTPHost:    env("SMTP_HOST", "smtp.gmail.com"),
		SMTPPort:    env("SMTP_PORT", "587"),
		SMTPUser:    env("SMTP_USER", ""),
		SMTPPass:    env("SMTP_PASSWORD", ""),
		MailFrom:    env("MAIL_FROM", ""),
		CacheTTL:    time.Duration(atoi("CACHE_TTL_SECONDS", 900)) * time.Second,
	}
	if c.GeminiKey == "" {
		log.Warn().Msg("GEMINI_API_KEY is empty")
	}
	if c.BookingKey == "" {
		log.Warn().Msg("RAPIDAPI_KEY is empty")
	}
	if c.JWTSecret == "" {
		log.Warn().Msg("JWT_SECRET is empty")
	}
	return c
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
