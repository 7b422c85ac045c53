package configs

import (
	"os"
	"strconv"
	"sync"
	"time"

	"echotap.link/configs/configsdatabase"
	"echotap.link/configs/configslog"

	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

// AppConfig holds process-wide settings read from the environment.
type AppConfig struct {
	Name        string
	Host        string
	Port        string
	BodyLimitMB int

	ImageMaxWidth  int
	ImageMaxHeight int
	ImageMaxSizeKB int
	ImageQuality   float64

	SessionCookieSecure bool
	SessionExpiration   time.Duration
}

var (
	appConfig     *AppConfig
	appConfigOnce sync.Once
)

// LoadEnv loads .env if present. Missing file is not an error; real env wins.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		configslog.SLog.Debug(".env file not found, using process environment")
	}
}

// LoadAppConfig reads AppConfig from the environment, applying defaults.
func LoadAppConfig() *AppConfig {
	return &AppConfig{
		Name:                GetEnv("APP_NAME", "EchoTap"),
		Host:                GetEnv("APP_HOST", "0.0.0.0"),
		Port:                GetEnv("APP_PORT", "3000"),
		BodyLimitMB:         getEnvInt("BODY_LIMIT_MB", 12),
		ImageMaxWidth:       getEnvInt("IMAGE_MAX_WIDTH", 800),
		ImageMaxHeight:      getEnvInt("IMAGE_MAX_HEIGHT", 800),
		ImageMaxSizeKB:      getEnvInt("IMAGE_MAX_SIZE_KB", 800),
		ImageQuality:        getEnvFloat("IMAGE_QUALITY", 0.8),
		SessionCookieSecure: os.Getenv("SESSION_COOKIE_SECURE") == "true",
		SessionExpiration:   time.Duration(getEnvInt("SESSION_EXPIRATION_HOURS", 24)) * time.Hour,
	}
}

// GetAppConfig returns the cached config, loading it on first use.
func GetAppConfig() *AppConfig {
	appConfigOnce.Do(func() {
		appConfig = LoadAppConfig()
	})
	return appConfig
}

// GetDB is a shortcut used by repositories and services.
func GetDB() *gorm.DB {
	return configsdatabase.GetDB()
}

// SetupSession creates the session store backing flash messages.
func SetupSession() *session.Store {
	cfg := GetAppConfig()
	return session.New(session.Config{
		Expiration:     cfg.SessionExpiration,
		KeyLookup:      "cookie:echotap_session",
		CookieSecure:   cfg.SessionCookieSecure,
		CookieHTTPOnly: true,
		CookieSameSite: "Lax",
	})
}

// GetEnv returns the value of key or fallback when unset.
func GetEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}

func getEnvFloat(key string, fallback float64) float64 {
	v, err := strconv.ParseFloat(os.Getenv(key), 64)
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}
