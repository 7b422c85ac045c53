package configsdatabase

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"echotap.link/configs/configslog"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var db *gorm.DB

// Config holds connection settings.
type Config struct {
	DSN          string
	MaxOpenConns int
	MaxIdleConns int
	MaxLifetime  time.Duration
	LogLevel     logger.LogLevel
}

// ConfigFromEnv builds the connection settings. DATABASE_URL wins over the
// individual DB_* variables.
func ConfigFromEnv() Config {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s TimeZone=%s",
			getEnv("DB_HOST", "localhost"),
			getEnv("DB_PORT", "5432"),
			getEnv("DB_USER", "postgres"),
			getEnv("DB_PASSWORD", "postgres"),
			getEnv("DB_NAME", "echotap"),
			getEnv("DB_SSLMODE", "disable"),
			getEnv("DB_TIMEZONE", "UTC"),
		)
	}
	maxOpen, err := strconv.Atoi(os.Getenv("DB_MAX_OPEN_CONNS"))
	if err != nil || maxOpen <= 0 {
		maxOpen = 10
	}
	level := logger.Warn
	if os.Getenv("DB_LOG_SQL") == "1" {
		level = logger.Info
	}
	return Config{
		DSN:          dsn,
		MaxOpenConns: maxOpen,
		MaxIdleConns: maxOpen / 2,
		MaxLifetime:  30 * time.Minute,
		LogLevel:     level,
	}
}

// Open opens a gorm connection with the given settings and applies pool limits.
func Open(cfg Config) (*gorm.DB, error) {
	conn, err := gorm.Open(postgres.Open(cfg.DSN), &gorm.Config{
		Logger: logger.Default.LogMode(cfg.LogLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	sqlDB, err := conn.DB()
	if err != nil {
		return nil, fmt.Errorf("db handle: %w", err)
	}
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.MaxLifetime)
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping db: %w", err)
	}
	return conn, nil
}

// InitDB opens the global connection and exits the process on failure.
func InitDB() {
	conn, err := Open(ConfigFromEnv())
	if err != nil {
		configslog.Log.Fatal("Failed to connect to database", zap.Error(err))
	}
	db = conn
	configslog.SLog.Info("Database connection established")
}

// GetDB returns the global connection. InitDB must run first.
func GetDB() *gorm.DB {
	return db
}

// CloseDB closes the global connection if one is open.
func CloseDB() {
	if db == nil {
		return
	}
	sqlDB, err := db.DB()
	if err != nil {
		configslog.Log.Warn("Failed to get DB handle", zap.Error(err))
		return
	}
	if err := sqlDB.Close(); err != nil {
		configslog.Log.Warn("Failed to close database connection", zap.Error(err))
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
