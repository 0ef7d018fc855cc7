package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

// Config хранит все конфигурационные параметры приложения.
type Config struct {
	ServerPort     string        `env:"PORT" envDefault:"3000"`
	DatabaseURL    string        `env:"DATABASE_URL" envDefault:"/tmp/test.db"`
	AutoMigrate    bool          `env:"AUTO_MIGRATE" envDefault:"true"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"30s"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`

	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`

	// Пустой RABBITMQ_URL отключает публикацию событий избранного
	RabbitMQ struct {
		RabbitMQURL       string `env:"RABBITMQ_URL"`
		RabbitMQQueueName string `env:"RABBITMQ_QUEUE_NAME" envDefault:"favorite_events"`
	}

	// Настройки MinIO / S3 для снимков данных
	Minio struct {
		Endpoint        string `env:"MINIO_ENDPOINT"`
		AccessKeyID     string `env:"MINIO_ACCESS_KEY_ID"`
		SecretAccessKey string `env:"MINIO_SECRET_ACCESS_KEY"`
		UseSSL          bool   `env:"MINIO_USE_SSL"`
		BucketName      string `env:"MINIO_BUCKET_NAME" envDefault:"starwars"`
		Region          string `env:"MINIO_REGION" envDefault:"us-east-1"`
		SnapshotKey     string `env:"SNAPSHOT_KEY" envDefault:"snapshots/starwars.json"`
	}

	Seed struct {
		Source        string `env:"SEED_SOURCE" envDefault:"file"`
		File          string `env:"SEED_FILE" envDefault:"seed.json"`
		ExportTarget  string `env:"EXPORT_TARGET" envDefault:"file"`
		ExportFile    string `env:"EXPORT_FILE" envDefault:"snapshot.json"`
		SwapiBaseURL  string `env:"SWAPI_BASE_URL" envDefault:"https://swapi.dev/api"`
		SwapiMaxPages int    `env:"SWAPI_MAX_PAGES" envDefault:"1"`
	}
}

// LoadConfig загружает конфигурацию из переменных окружения.
// В режиме разработки пытается загрузить .env файл.
func LoadConfig() (*Config, error) {
	if _, err := os.Stat(".env"); !os.IsNotExist(err) {
		if err := godotenv.Load(); err != nil {
			return nil, fmt.Errorf("load .env file: %w", err)
		}
	}

	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse config from environment: %w", err)
	}

	origins := cfg.CORSAllowedOrigins[:0]
	for _, o := range cfg.CORSAllowedOrigins {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	cfg.CORSAllowedOrigins = origins

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	if c.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL must not be empty")
	}
	if c.ServerPort == "" {
		return fmt.Errorf("PORT must not be empty")
	}
	switch c.Seed.Source {
	case "file", "s3", "swapi":
	default:
		return fmt.Errorf("unknown SEED_SOURCE %q (use file, s3 or swapi)", c.Seed.Source)
	}
	switch c.Seed.ExportTarget {
	case "file", "s3":
	default:
		return fmt.Errorf("unknown EXPORT_TARGET %q (use file or s3)", c.Seed.ExportTarget)
	}
	return nil
}

// EventsEnabled сообщает, настроена ли публикация событий в RabbitMQ.
func (c *Config) EventsEnabled() bool {
	return c.RabbitMQ.RabbitMQURL != ""
}

// SnapshotStorageEnabled сообщает, заданы ли параметры MinIO / S3.
func (c *Config) SnapshotStorageEnabled() bool {
	return c.Minio.Endpoint != "" && c.Minio.AccessKeyID != "" && c.Minio.SecretAccessKey != ""
}
