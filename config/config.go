package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Catalog source kinds.
const (
	CatalogEmbedded = "embedded"
	CatalogPostgres = "postgres"
	CatalogS3       = "s3"
)

// Config holds application configuration loaded from an optional YAML file and the environment.
type Config struct {
	Server        ServerConfig        `yaml:"server"`
	Catalog       CatalogConfig       `yaml:"catalog"`
	Database      DatabaseConfig      `yaml:"database"`
	Redis         RedisConfig         `yaml:"redis"`
	Kafka         KafkaConfig         `yaml:"kafka"`
	AWS           AWSConfig           `yaml:"aws"`
	Email         EmailConfig         `yaml:"email"`
	Notifications NotificationsConfig `yaml:"notifications"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port               string `yaml:"port"`
	ReadTimeout        int    `yaml:"read_timeout_sec"`
	WriteTimeout       int    `yaml:"write_timeout_sec"`
	CORSAllowedOrigins string `yaml:"cors_allowed_origins"` // comma-separated, or "*" for all
}

// CatalogConfig selects where sessions, speakers and tickets are loaded from.
type CatalogConfig struct {
	Source         string `yaml:"source"` // embedded, postgres or s3
	ReloadInterval int    `yaml:"reload_interval_sec"`
}

// ReloadEvery returns the periodic reload interval; zero disables it.
func (c CatalogConfig) ReloadEvery() time.Duration {
	return time.Duration(c.ReloadInterval) * time.Second
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	URL      string `yaml:"url"` // if set, used as-is
	Host     string `yaml:"host"`
	Port     string `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	DBName   string `yaml:"name"`
	SSLMode  string `yaml:"sslmode"`
	MaxConns int    `yaml:"max_conns"`
	Migrate  bool   `yaml:"migrate"`
}

// RedisConfig holds Redis connection settings.
type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

// KafkaConfig holds the submission event stream settings.
type KafkaConfig struct {
	Brokers []string `yaml:"brokers"`
	Topic   string   `yaml:"topic"`
}

// AWSConfig holds AWS credentials and the catalog bucket.
type AWSConfig struct {
	Region          string `yaml:"region"`
	AccessKeyID     string `yaml:"access_key_id"`
	SecretAccessKey string `yaml:"secret_access_key"`
	Endpoint        string `yaml:"endpoint"`
	CatalogBucket   string `yaml:"catalog_bucket"`
	CatalogPrefix   string `yaml:"catalog_prefix"`
}

// EmailConfig for SMTP delivery of confirmation emails. Empty SMTPHost logs instead of sending.
type EmailConfig struct {
	FromAddress string `yaml:"from_address"`
	FromName    string `yaml:"from_name"`
	SMTPHost    string `yaml:"smtp_host"`
	SMTPPort    int    `yaml:"smtp_port"`
	SMTPUser    string `yaml:"smtp_user"`
	SMTPPass    string `yaml:"smtp_pass"`
}

// NotificationsConfig toggles where accepted submissions are announced.
type NotificationsConfig struct {
	Queue bool `yaml:"queue"` // Redis confirmation queue consumed by cmd/worker
	Kafka bool `yaml:"kafka"`
}

// DSN returns the PostgreSQL connection string.
// If DatabaseConfig.URL is set (e.g. DATABASE_URL env), it is used as-is; otherwise built from components.
func (c DatabaseConfig) DSN() string {
	if c.URL != "" {
		return c.URL
	}
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode,
	)
}

// Defaults returns the configuration used when nothing is set.
func Defaults() *Config {
	return &Config{
		Server: ServerConfig{
			Port:               "8080",
			ReadTimeout:        30,
			WriteTimeout:       30,
			CORSAllowedOrigins: "http://localhost:3000,http://localhost:5173",
		},
		Catalog: CatalogConfig{Source: CatalogEmbedded},
		Database: DatabaseConfig{
			Host:     "localhost",
			Port:     "5432",
			User:     "postgres",
			Password: "postgres",
			DBName:   "techsummit",
			SSLMode:  "disable",
			MaxConns: 10,
			Migrate:  true,
		},
		Redis: RedisConfig{Addr: "localhost:6379"},
		Kafka: KafkaConfig{Topic: "submissions.confirmed"},
		AWS:   AWSConfig{Region: "us-east-1"},
		Email: EmailConfig{
			FromAddress: "noreply@techsummit.dev",
			FromName:    "TechSummit",
			SMTPPort:    587,
		},
	}
}

// Load reads configuration: defaults, then the YAML file named by CONFIG_FILE (if any),
// then environment variables (with optional .env file).
func Load() (*Config, error) {
	_ = godotenv.Load()      // .env
	_ = godotenv.Load("env") // env (no leading dot)

	cfg := Defaults()
	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := loadFile(path, cfg); err != nil {
			return nil, err
		}
	}
	applyEnv(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	return nil
}

func applyEnv(cfg *Config) {
	cfg.Server.Port = getEnv("PORT", cfg.Server.Port)
	cfg.Server.ReadTimeout = getEnvInt("READ_TIMEOUT_SEC", cfg.Server.ReadTimeout)
	cfg.Server.WriteTimeout = getEnvInt("WRITE_TIMEOUT_SEC", cfg.Server.WriteTimeout)
	cfg.Server.CORSAllowedOrigins = getEnv("CORS_ALLOWED_ORIGINS", cfg.Server.CORSAllowedOrigins)

	cfg.Catalog.Source = strings.ToLower(getEnv("CATALOG_SOURCE", cfg.Catalog.Source))
	cfg.Catalog.ReloadInterval = getEnvInt("CATALOG_RELOAD_INTERVAL_SEC", cfg.Catalog.ReloadInterval)

	cfg.Database.URL = getEnv("DATABASE_URL", cfg.Database.URL)
	cfg.Database.Host = getEnv("DB_HOST", cfg.Database.Host)
	cfg.Database.Port = getEnv("DB_PORT", cfg.Database.Port)
	cfg.Database.User = getEnv("DB_USER", cfg.Database.User)
	cfg.Database.Password = getEnv("DB_PASSWORD", cfg.Database.Password)
	cfg.Database.DBName = getEnv("DB_NAME", cfg.Database.DBName)
	cfg.Database.SSLMode = getEnv("DB_SSLMODE", cfg.Database.SSLMode)
	cfg.Database.MaxConns = getEnvInt("DB_MAX_CONNS", cfg.Database.MaxConns)
	cfg.Database.Migrate = getEnvBool("DB_MIGRATE", cfg.Database.Migrate)

	cfg.Redis.Addr = getEnv("REDIS_ADDR", cfg.Redis.Addr)
	cfg.Redis.Password = getEnv("REDIS_PASSWORD", cfg.Redis.Password)
	cfg.Redis.DB = getEnvInt("REDIS_DB", cfg.Redis.DB)

	if brokers := splitTrim(os.Getenv("KAFKA_BROKERS"), ","); len(brokers) > 0 {
		cfg.Kafka.Brokers = brokers
	}
	cfg.Kafka.Topic = getEnv("KAFKA_TOPIC", cfg.Kafka.Topic)

	cfg.AWS.Region = getEnv("AWS_REGION", cfg.AWS.Region)
	cfg.AWS.AccessKeyID = getEnv("AWS_ACCESS_KEY_ID", cfg.AWS.AccessKeyID)
	cfg.AWS.SecretAccessKey = getEnv("AWS_SECRET_ACCESS_KEY", cfg.AWS.SecretAccessKey)
	cfg.AWS.Endpoint = getEnv("AWS_S3_ENDPOINT", cfg.AWS.Endpoint)
	cfg.AWS.CatalogBucket = getEnv("AWS_S3_CATALOG_BUCKET", cfg.AWS.CatalogBucket)
	cfg.AWS.CatalogPrefix = getEnv("AWS_S3_CATALOG_PREFIX", cfg.AWS.CatalogPrefix)

	cfg.Email.FromAddress = getEnv("EMAIL_FROM_ADDRESS", cfg.Email.FromAddress)
	cfg.Email.FromName = getEnv("EMAIL_FROM_NAME", cfg.Email.FromName)
	cfg.Email.SMTPHost = getEnv("SMTP_HOST", cfg.Email.SMTPHost)
	cfg.Email.SMTPPort = getEnvInt("SMTP_PORT", cfg.Email.SMTPPort)
	cfg.Email.SMTPUser = getEnv("SMTP_USER", cfg.Email.SMTPUser)
	cfg.Email.SMTPPass = getEnv("SMTP_PASS", cfg.Email.SMTPPass)

	cfg.Notifications.Queue = getEnvBool("NOTIFY_QUEUE", cfg.Notifications.Queue)
	cfg.Notifications.Kafka = getEnvBool("NOTIFY_KAFKA", cfg.Notifications.Kafka)
}

// Validate checks settings that would otherwise fail late at startup.
func (c *Config) Validate() error {
	switch c.Catalog.Source {
	case CatalogEmbedded, CatalogPostgres:
	case CatalogS3:
		if c.AWS.CatalogBucket == "" {
			return fmt.Errorf("catalog source s3 requires AWS_S3_CATALOG_BUCKET")
		}
	default:
		return fmt.Errorf("unknown catalog source %q", c.Catalog.Source)
	}
	if c.Notifications.Kafka && len(c.Kafka.Brokers) == 0 {
		return fmt.Errorf("kafka notifications require KAFKA_BROKERS")
	}
	if c.Catalog.ReloadInterval < 0 {
		return fmt.Errorf("catalog reload interval must not be negative")
	}
	return nil
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func splitTrim(s, sep string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, v := range strings.Split(s, sep) {
		if t := strings.TrimSpace(v); t != "" {
			out = append(out, t)
		}
	}
	return out
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
