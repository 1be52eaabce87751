package config

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	log "github.com/sirupsen/logrus"
)

// Config holds every setting the services read from the environment.
type Config struct {
	CanteenAddr   string `env:"CANTEEN_ADDR" envDefault:":8081"`
	AnalyticsAddr string `env:"ANALYTICS_ADDR" envDefault:":8083"`
	GatewayAddr   string `env:"GATEWAY_ADDR" envDefault:":8080"`

	CanteenSvcURL   string `env:"CANTEEN_SVC_URL" envDefault:"http://localhost:8081"`
	AnalyticsSvcURL string `env:"ANALYTICS_SVC_URL" envDefault:"http://localhost:8083"`
	PublicBaseURL   string `env:"PUBLIC_BASE_URL" envDefault:"http://localhost:8080"`

	DBHost     string `env:"DB_HOST" envDefault:"localhost"`
	DBPort     string `env:"DB_PORT" envDefault:"5432"`
	DBName     string `env:"DB_NAME" envDefault:"canteen"`
	DBUser     string `env:"DB_USER" envDefault:"postgres"`
	DBPassword string `env:"DB_PASSWORD"`

	RedisHost string `env:"REDIS_HOST" envDefault:"localhost"`
	RedisPort string `env:"REDIS_PORT" envDefault:"6379"`

	KafkaBroker   string `env:"KAFKA_BROKER" envDefault:"localhost:9092"`
	OrdersTopic   string `env:"ORDERS_TOPIC" envDefault:"orders"`
	ConsumerGroup string `env:"CONSUMER_GROUP" envDefault:"agg-svc-consumer"`
	// AggregateTTL bounds how long daily sales keys live in Redis.
	AggregateTTL time.Duration `env:"AGGREGATE_TTL" envDefault:"2160h"`

	AuthProvider            string        `env:"AUTH_PROVIDER" envDefault:"local"`
	FirebaseProjectID       string        `env:"FIREBASE_PROJECT_ID"`
	FirebaseCredentialsPath string        `env:"FIREBASE_CREDENTIALS_PATH"`
	SessionTTL              time.Duration `env:"SESSION_TTL" envDefault:"168h"`
	CartTTL                 time.Duration `env:"CART_TTL" envDefault:"72h"`
	// StaffEmails are registered as staff on sign-up.
	StaffEmails []string `env:"STAFF_EMAILS" envSeparator:","`

	StorageDriver        string `env:"STORAGE_DRIVER" envDefault:"local"`
	LocalUploadDir       string `env:"LOCAL_UPLOAD_DIR" envDefault:"./uploads"`
	LocalUploadURLPrefix string `env:"LOCAL_UPLOAD_URL_PREFIX" envDefault:"/uploads"`
	S3Region             string `env:"S3_REGION"`
	S3Bucket             string `env:"S3_BUCKET"`
	S3Prefix             string `env:"S3_PREFIX" envDefault:"menu"`
	S3PublicBaseURL      string `env:"S3_PUBLIC_BASE_URL"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`
	LogFile   string `env:"LOG_FILE"`
}

// Load reads an optional .env file (ENV_FILE, default ".env") and parses the
// environment into a Config.
func Load() (*Config, error) {
	envFile := os.Getenv("ENV_FILE")
	if envFile == "" {
		envFile = ".env"
	}
	if _, err := os.Stat(envFile); err == nil {
		if err := godotenv.Load(envFile); err != nil {
			return nil, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// MustLoad is Load for main packages.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		log.Fatal("Failed to load configuration: ", err)
	}
	return cfg
}

func (c *Config) PostgresDSN() string {
	return "host=" + c.DBHost + " port=" + c.DBPort + " user=" + c.DBUser +
		" password=" + c.DBPassword + " dbname=" + c.DBName + " sslmode=disable"
}

func (c *Config) RedisAddr() string {
	return c.RedisHost + ":" + c.RedisPort
}

func MustInitPostgres(cfg *Config) *sql.DB {
	db, err := sql.Open("postgres", cfg.PostgresDSN())
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}

	if err = db.Ping(); err != nil {
		log.Fatal("Failed to ping database: ", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(time.Hour)

	return db
}

func MustInitRedis(cfg *Config) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr(),
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Fatal("Failed to connect to Redis: ", err)
	}

	return client
}

func NewKafkaReader(cfg *Config) *kafka.Reader {
	return kafka.NewReader(kafka.ReaderConfig{
		Brokers: []string{cfg.KafkaBroker},
		Topic:   cfg.OrdersTopic,
		GroupID: cfg.ConsumerGroup,
	})
}

func NewKafkaWriter(cfg *Config) *kafka.Writer {
	return &kafka.Writer{
		Addr:     kafka.TCP(cfg.KafkaBroker),
		Topic:    cfg.OrdersTopic,
		Balancer: &kafka.LeastBytes{},
	}
}
