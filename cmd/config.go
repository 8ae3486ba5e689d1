package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"restaurant/internal/adapters/out/mongofeed"
	"restaurant/internal/jobs"
	"restaurant/internal/pkg/errs"

	"github.com/joho/godotenv"
)

const (
	StorageBackendPostgres = "postgres"
	StorageBackendMemory   = "memory"

	DefaultEventsExchange = "restaurant.events"
)

type Config struct {
	AppEnv         string
	HTTPPort       string
	StorageBackend string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	DigitalMenuMongoURI     string
	DigitalMenuDatabase     string
	DigitalMenuCollection   string
	DigitalMenuSyncInterval time.Duration

	RabbitMQURL    string
	EventsExchange string

	SeedFile string
}

// LoadConfig reads the environment, after loading envFile when it exists.
func LoadConfig(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	interval := jobs.DefaultSyncInterval
	if raw := os.Getenv("DIGITAL_MENU_SYNC_INTERVAL"); raw != "" {
		parsed, err := time.ParseDuration(raw)
		if err != nil {
			return Config{}, errs.NewValueIsInvalidErrorWithCause("DIGITAL_MENU_SYNC_INTERVAL", err)
		}
		interval = parsed
	}

	config := Config{
		AppEnv:                  getEnv("APP_ENV", "production"),
		HTTPPort:                getEnv("HTTP_PORT", "8080"),
		StorageBackend:          getEnv("STORAGE_BACKEND", StorageBackendPostgres),
		DBHost:                  getEnv("DB_HOST", "localhost"),
		DBPort:                  getEnv("DB_PORT", "5432"),
		DBUser:                  os.Getenv("DB_USER"),
		DBPassword:              os.Getenv("DB_PASSWORD"),
		DBName:                  os.Getenv("DB_NAME"),
		DBSslMode:               getEnv("DB_SSLMODE", "disable"),
		DigitalMenuMongoURI:     os.Getenv("DIGITAL_MENU_MONGODB_URI"),
		DigitalMenuDatabase:     os.Getenv("DIGITAL_MENU_DATABASE"),
		DigitalMenuCollection:   getEnv("DIGITAL_MENU_COLLECTION", mongofeed.DefaultCollection),
		DigitalMenuSyncInterval: interval,
		RabbitMQURL:             os.Getenv("RABBITMQ_URL"),
		EventsExchange:          getEnv("EVENTS_EXCHANGE", DefaultEventsExchange),
		SeedFile:                os.Getenv("SEED_FILE"),
	}
	return config, config.Validate()
}

func (c Config) Validate() error {
	switch c.StorageBackend {
	case StorageBackendMemory:
	case StorageBackendPostgres:
		if c.DBName == "" {
			return errs.NewValueIsRequiredError("DB_NAME")
		}
	default:
		return errs.NewValueIsInvalidError("STORAGE_BACKEND")
	}
	if c.DigitalMenuSyncInterval < time.Second {
		return errs.NewValueIsOutOfRangeError("DIGITAL_MENU_SYNC_INTERVAL", c.DigitalMenuSyncInterval, time.Second, nil)
	}
	return nil
}

// PostgresDSN builds the keyword/value connection string for gorm's postgres driver.
func (c Config) PostgresDSN() string {
	return fmt.Sprintf("host=%v port=%v user=%v password=%v dbname=%v sslmode=%v",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
