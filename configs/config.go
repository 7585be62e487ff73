package configs

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

var (
	SERVER_PORT                   string
	WORKER_POOL                   string
	DB_URI                        string
	DB_NAME                       string
	DB_MAXPOOLSIZE                uint64
	DB_MINPOOLSIZE                uint64
	DB_MAXIDLETIME_INMINUTES      int
	KAFKA_SERVER                  string
	KAFKA_SECURITY_PROTOCOL       string
	KAFKA_SASL_MECHANISM          string
	KAFKA_SASL_USERNAME           string
	KAFKA_SASL_PASSWORD           string
	KAFKA_SESSION_TIMEOUT_MS      int
	KAFKA_CLIENT_ID               string
	KAFKA_LEDGER_TOPIC            string
	KAFKA_RETRY_DURATION          int
	REDIS_ADDR                    string
	REDIS_PASSWORD                string
	REDIS_DB                      int
	REDIS_ENABLE_TLS              bool
	REDIS_CONNECT_TIMEOUT_SECONDS int
	REDIS_CERT_CONTENT            string
	PROJECT_ID                    string
	PUBSUB_NOTIFICATION_TOPIC     string
	PUBSUB_RECONCILIATION_TOPIC   string
	LOAN_CREATE_TTL_IN_HOURS      int
	PAYMENT_LOCK_TTL_SECONDS      int
	PAYMENT_LOCK_RETRIES          int
	PAYMENT_LOCK_BACKOFF_MS       int
	SMALL_LOAN_INTEREST_RATE      float64
	BIG_LOAN_INTEREST_RATE        float64
	RISK_MEDIUM_MAX_DAYS          int
	RISK_HIGH_MAX_DAYS            int
	TIMEOUT_IN_SECONDS            int
	SERVICE_NAME                  string
	OTEL_URL                      string
	LOG_LEVEL                     string
)

type RedisConfig struct {
	Addr           string        `yaml:"addr"`
	Password       string        `yaml:"password"`
	DB             int           `yaml:"db"`
	EnableTLS      bool          `yaml:"enable_tls"`
	ConnectTimeout time.Duration `yaml:"connect_timeout_seconds"`
	CertContent    string        `yaml:"cert_content"`
}

// PubSubConfig represents the Pub/Sub configuration
type PubSubConfig struct {
	ProjectID           string `yaml:"project_id"`
	NotificationTopic   string `yaml:"notification_topic"`
	ReconciliationTopic string `yaml:"reconciliation_topic"`
}

// LoadEnv loads the environment variables from a .env file
func LoadEnv() error {
	err := godotenv.Load("./../.env")
	if err != nil {
		log.Printf("Error loading .env file: %v", err)
	}

	LoadEnvValues()

	return nil
}

func LoadEnvValues() {
	SERVER_PORT = GetEnv("SERVER_PORT", "8080")
	WORKER_POOL = GetEnv("WORKER_POOL", "5")
	DB_URI = GetEnv("DB_URI", "mongodb://localhost:27017/?retryWrites=true&w=majority")
	DB_NAME = GetEnv("DB_NAME", "LendyEngine")
	DB_MAXPOOLSIZE_Str := GetEnv("DB_MAXPOOLSIZE", "100")
	DB_MINPOOLSIZE_Str := GetEnv("DB_MINPOOLSIZE", "10")
	DB_MAXIDLETIME_INMINUTES_Str := GetEnv("DB_MAXIDLETIME_INMINUTES", "5")
	DB_MAXPOOLSIZE, _ = strconv.ParseUint(DB_MAXPOOLSIZE_Str, 10, 64)
	DB_MINPOOLSIZE, _ = strconv.ParseUint(DB_MINPOOLSIZE_Str, 10, 64)
	DB_MAXIDLETIME_INMINUTES, _ = strconv.Atoi(DB_MAXIDLETIME_INMINUTES_Str)

	KAFKA_SERVER = GetEnv("KAFKA_SERVER", "")
	KAFKA_SECURITY_PROTOCOL = GetEnv("KAFKA_SECURITY_PROTOCOL", "")
	KAFKA_SASL_MECHANISM = GetEnv("KAFKA_SASL_MECHANISM", "")
	KAFKA_SASL_USERNAME = GetEnv("KAFKA_SASL_USERNAME", "")
	KAFKA_SASL_PASSWORD = GetEnv("KAFKA_SASL_PASSWORD", "")
	KAFKA_SESSION_TIMEOUT_MS, _ = strconv.Atoi(GetEnv("KAFKA_SESSION_TIMEOUT_MS", ""))
	KAFKA_CLIENT_ID = GetEnv("KAFKA_CLIENT_ID", "")
	KAFKA_LEDGER_TOPIC = GetEnv("KAFKA_LEDGER_TOPIC", "")
	KAFKA_RETRY_DURATION_Str := GetEnv("KAFKA_RETRY_DURATION", "12")
	KAFKA_RETRY_DURATION, _ = strconv.Atoi(KAFKA_RETRY_DURATION_Str)

	REDIS_ADDR = GetEnv("REDIS_ADDR", "localhost:6379")
	REDIS_PASSWORD = GetEnv("REDIS_PASSWORD", "")
	REDIS_DB_Str := GetEnv("REDIS_DB", "0")
	REDIS_DB, _ = strconv.Atoi(REDIS_DB_Str)
	REDIS_ENABLE_TLS, _ = strconv.ParseBool(GetEnv("REDIS_ENABLE_TLS", "false"))
	REDIS_CONNECT_TIMEOUT_SECONDS_Str := GetEnv("REDIS_CONNECT_TIMEOUT_SECONDS", "5")
	REDIS_CONNECT_TIMEOUT_SECONDS, _ = strconv.Atoi(REDIS_CONNECT_TIMEOUT_SECONDS_Str)
	REDIS_CERT_CONTENT = GetEnv("REDIS_CERT_CONTENT", "")

	PROJECT_ID = GetEnv("PROJECT_ID", "")
	PUBSUB_NOTIFICATION_TOPIC = GetEnv("PUBSUB_NOTIFICATION_TOPIC", "lendy-notification-topic")
	PUBSUB_RECONCILIATION_TOPIC = GetEnv("PUBSUB_RECONCILIATION_TOPIC", "lendy-reconciliation-topic")

	LOAN_CREATE_TTL_IN_HOURS_Str := GetEnv("LOAN_CREATE_TTL_IN_HOURS", "24")
	LOAN_CREATE_TTL_IN_HOURS, _ = strconv.Atoi(LOAN_CREATE_TTL_IN_HOURS_Str)
	PAYMENT_LOCK_TTL_SECONDS, _ = strconv.Atoi(GetEnv("PAYMENT_LOCK_TTL_SECONDS", "30"))
	PAYMENT_LOCK_RETRIES, _ = strconv.Atoi(GetEnv("PAYMENT_LOCK_RETRIES", "10"))
	PAYMENT_LOCK_BACKOFF_MS, _ = strconv.Atoi(GetEnv("PAYMENT_LOCK_BACKOFF_MS", "200"))

	SMALL_LOAN_INTEREST_RATE, _ = strconv.ParseFloat(GetEnv("SMALL_LOAN_INTEREST_RATE", "0.10"), 64)
	BIG_LOAN_INTEREST_RATE, _ = strconv.ParseFloat(GetEnv("BIG_LOAN_INTEREST_RATE", "0.15"), 64)

	RISK_MEDIUM_MAX_DAYS, _ = strconv.Atoi(GetEnv("RISK_MEDIUM_MAX_DAYS", "30"))
	RISK_HIGH_MAX_DAYS, _ = strconv.Atoi(GetEnv("RISK_HIGH_MAX_DAYS", "90"))

	TIMEOUT_IN_SECONDS_str := GetEnv("TIMEOUT_IN_SECONDS", "20")
	TIMEOUT_IN_SECONDS, _ = strconv.Atoi(TIMEOUT_IN_SECONDS_str)

	SERVICE_NAME = GetEnv("SERVICE_NAME", "lendyloanengine")
	OTEL_URL = GetEnv("OTEL_URL", "")
	LOG_LEVEL = GetEnv("LOG_LEVEL", "INFO")
}

// GetRedisConfig returns a RedisConfig struct populated from environment variables
func GetRedisConfig() RedisConfig {
	return RedisConfig{
		Addr:           REDIS_ADDR,
		Password:       REDIS_PASSWORD,
		DB:             REDIS_DB,
		EnableTLS:      REDIS_ENABLE_TLS,
		ConnectTimeout: time.Duration(REDIS_CONNECT_TIMEOUT_SECONDS) * time.Second,
		CertContent:    REDIS_CERT_CONTENT,
	}
}

// GetPubSubConfig returns a PubSubConfig struct populated from environment variables
func GetPubSubConfig() PubSubConfig {
	return PubSubConfig{
		ProjectID:           PROJECT_ID,
		NotificationTopic:   PUBSUB_NOTIFICATION_TOPIC,
		ReconciliationTopic: PUBSUB_RECONCILIATION_TOPIC,
	}
}

// GetEnv fetches the value of an environment variable or returns a default value
func GetEnv(key, defaultValue string) string {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	return value
}
