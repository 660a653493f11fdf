package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"restaurant/internal/adapters/out/postgres"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/jobs"

	"github.com/joho/godotenv"
)

const defaultSQLiteDSN = "file:restaurant.db?_foreign_keys=on"

type Config struct {
	HTTPPort string

	DBDriver    string
	DatabaseURL string
	DBHost      string
	DBPort      string
	DBUser      string
	DBPassword  string
	DBName      string
	DBSslMode   string

	StaticDir         string
	OrderStatusPolicy string

	KafkaHost              string
	KafkaOrderChangedTopic string

	BacklogSchedule string
	LogLevel        string
}

// LoadDotEnv adds the variables of path to the environment. Variables
// already set win, and a missing file is not an error.
func LoadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// ConfigFromEnv reads the configuration through getenv, applying defaults.
// HTTP_PORT falls back to PORT, the variable hosting platforms set.
func ConfigFromEnv(getenv func(string) string) Config {
	get := func(key, fallback string) string {
		if v := getenv(key); v != "" {
			return v
		}
		return fallback
	}

	return Config{
		HTTPPort:               get("HTTP_PORT", get("PORT", "8080")),
		DBDriver:               get("DB_DRIVER", string(postgres.DriverPostgres)),
		DatabaseURL:            getenv("DATABASE_URL"),
		DBHost:                 get("DB_HOST", "localhost"),
		DBPort:                 get("DB_PORT", "5432"),
		DBUser:                 getenv("DB_USER"),
		DBPassword:             getenv("DB_PASSWORD"),
		DBName:                 getenv("DB_NAME"),
		DBSslMode:              get("DB_SSLMODE", "disable"),
		StaticDir:              get("STATIC_DIR", "public"),
		OrderStatusPolicy:      get("ORDER_STATUS_POLICY", string(order.Permissive)),
		KafkaHost:              getenv("KAFKA_HOST"),
		KafkaOrderChangedTopic: get("KAFKA_ORDER_CHANGED_TOPIC", "orders.changed"),
		BacklogSchedule:        get("BACKLOG_SCHEDULE", jobs.DefaultBacklogSchedule),
		LogLevel:               get("LOG_LEVEL", "info"),
	}
}

// LoadConfig loads envFile, then reads the process environment.
func LoadConfig(envFile string) (Config, error) {
	if err := LoadDotEnv(envFile); err != nil {
		return Config{}, err
	}

	cfg := ConfigFromEnv(os.Getenv)
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports every malformed setting at once.
func (c Config) Validate() error {
	_, driverErr := postgres.ParseDriver(c.DBDriver)
	_, policyErr := order.ParseTransitionPolicy(c.OrderStatusPolicy)
	_, levelErr := c.SlogLevel()

	var dbErr error
	if driverErr == nil && c.DatabaseURL == "" && c.Driver() == postgres.DriverPostgres && c.DBName == "" {
		dbErr = errors.New("DATABASE_URL or DB_NAME must be set")
	}

	return errors.Join(driverErr, policyErr, levelErr, dbErr)
}

// Driver returns the configured database driver, postgres when unset.
func (c Config) Driver() postgres.Driver {
	driver, err := postgres.ParseDriver(c.DBDriver)
	if err != nil {
		return postgres.DriverPostgres
	}
	return driver
}

// DSN returns DATABASE_URL when set, otherwise a DSN assembled from the
// DB_* settings for postgres or a local file for sqlite. DATABASE_URL is
// used verbatim: hosted databases requiring TLS need sslmode=require in it.
func (c Config) DSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}

	if c.Driver() == postgres.DriverSQLite {
		return defaultSQLiteDSN
	}

	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

func (c Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid LOG_LEVEL %q: %w", c.LogLevel, err)
	}
	return level, nil
}

// NewLogger builds the JSON process logger writing to stdout.
func (c Config) NewLogger() *slog.Logger {
	level, _ := c.SlogLevel()
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
}
