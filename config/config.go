package config

import (
	"errors"
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type Config struct {
	Env              string           `yaml:"env" env:"ENV" env-default:"development"`
	DbConfig         DbConfig         `yaml:"db"`
	HttpServerConfig HttpServerConfig `yaml:"http_server"`
	CacheConfig      CacheConfig      `yaml:"cache"`
	JWTConfig        JWTConfig        `yaml:"jwt"`
	StorageConfig    StorageConfig    `yaml:"storage"`
	S3Config         S3Config         `yaml:"s3"`
	SentryConfig     SentryConfig     `yaml:"sentry"`
	JanitorConfig    JanitorConfig    `yaml:"janitor"`
}

type DbConfig struct {
	Driver   string `yaml:"driver" env:"DB_DRIVER" env-default:"sqlite"` // postgres | sqlite
	Username string `yaml:"username" env:"DB_USER"`
	Host     string `yaml:"host" env:"DB_HOST"`
	Port     string `yaml:"port" env:"DB_PORT" env-default:"5432"`
	DbName   string `yaml:"dbname" env:"DB_NAME"`
	SSLMode  string `yaml:"ssl_mode" env:"DB_SSL_MODE" env-default:"disable"`
	Path     string `yaml:"path" env:"DB_PATH" env-default:"league.db"`
}

type TLSConfig struct {
	Enabled  bool   `yaml:"enabled" env-default:"false"`
	CertFile string `yaml:"cert_file"`
	KeyFile  string `yaml:"key_file"`
}

type HttpServerConfig struct {
	Address        string        `yaml:"address" env:"HTTP_ADDRESS" env-default:":4000"`
	BaseURL        string        `yaml:"base_url" env:"BASE_URL" env-default:"http://localhost:4000"`
	Timeout        time.Duration `yaml:"timeout" env-default:"10s"`
	IdleTimeout    time.Duration `yaml:"idle_timeout" env-default:"60s"`
	AllowedOrigins []string      `yaml:"allowed_origins" env:"ALLOWED_ORIGINS" env-default:"http://localhost:3000,http://127.0.0.1:3000,http://192.168.88.218:3000"`
	TLS            TLSConfig     `yaml:"tls"`
}

// CacheConfig: пустой address отключает кэш.
type CacheConfig struct {
	Address      string        `yaml:"address" env:"REDIS_ADDRESS"`
	Db           int           `yaml:"db"`
	ListCacheTtl time.Duration `yaml:"list_cache_ttl" env-default:"5m"`
}

type JWTConfig struct {
	AccessExpire time.Duration `yaml:"access_expire" env-default:"24h"`
}

type StorageConfig struct {
	Driver             string `yaml:"driver" env:"STORAGE_DRIVER" env-default:"disk"` // disk | s3
	UploadDir          string `yaml:"upload_dir" env:"UPLOAD_DIR" env-default:"uploads"`
	MaxImageSizeBytes  int64  `yaml:"max_image_size_bytes" env-default:"5242880"`
	MaxImageSide       uint   `yaml:"max_image_side" env-default:"1024"`
	MaxImportSizeBytes int64  `yaml:"max_import_size_bytes" env-default:"10485760"`
}

type S3Config struct {
	Endpoint string `yaml:"endpoint" env:"S3_ENDPOINT"`
	Region   string `yaml:"region" env:"S3_REGION"`
	Bucket   string `yaml:"bucket" env:"S3_BUCKET"`
}

type SentryConfig struct {
	Environment      string  `yaml:"environment"`
	TracesSampleRate float64 `yaml:"traces_sample_rate" env-default:"0"`
}

type JanitorConfig struct {
	Schedule    string        `yaml:"schedule" env-default:"0 3 * * *"`
	GracePeriod time.Duration `yaml:"grace_period" env-default:"24h"`
}

func MustLoad() *Config {
	// .env не обязателен, переменные окружения могут прийти из контейнера
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("failed to load .env: %v", err)
	}

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/dev.yaml"
	}

	var cfg Config
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		log.Printf("config file %s does not exist, reading environment only", configPath)
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			log.Fatalf("error reading config from environment: %v", err)
		}
		return &cfg
	}

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("error reading config file: %s. Error: %v", configPath, err)
	}

	return &cfg
}
