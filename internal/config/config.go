package config

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port             string
	PostgresAddress  string
	PostgresPort     string
	PostgresDB       string
	PostgresUsername string
	PostgresPassword string

	BankAccountServiceURL  string
	NotificationServiceURL string
	KafkaBrokers           []string
	KafkaTopic             string
	RemoteCallTimeout      time.Duration
}

func ProcessEnvironmentVariables() (*Config, error) {
	// Optional .env for local runs; real deployments set the environment.
	_ = godotenv.Load()

	// In all cases the default behavior should be for the docker compose setup
	env := Config{
		Port:                   "8085",
		PostgresAddress:        "localhost",
		PostgresPort:           "5433",
		PostgresDB:             "postgres",
		PostgresUsername:       "postgres",
		PostgresPassword:       "testpassword",
		BankAccountServiceURL:  "http://localhost:8084",
		NotificationServiceURL: "http://localhost:8086",
		KafkaBrokers:           nil,
		KafkaTopic:             "transaction_completed",
		RemoteCallTimeout:      5 * time.Second,
	}

	if v := os.Getenv("PORT"); v != "" {
		env.Port = v
	}

	if v := os.Getenv("POSTGRES_ADDRESS"); v != "" {
		env.PostgresAddress = v
	}

	if v := os.Getenv("POSTGRES_PORT"); v != "" {
		env.PostgresPort = v
	}

	if v := os.Getenv("POSTGRES_DB"); v != "" {
		env.PostgresDB = v
	}

	if v := os.Getenv("POSTGRES_USERNAME"); v != "" {
		env.PostgresUsername = v
	}

	if v := os.Getenv("POSTGRES_PASSWORD"); v != "" {
		env.PostgresPassword = v
	}

	if v := os.Getenv("BANKACCOUNT_SERVICE_URL"); v != "" {
		env.BankAccountServiceURL = v
	}

	if v := os.Getenv("NOTIFICATION_SERVICE_URL"); v != "" {
		env.NotificationServiceURL = v
	}

	if v := os.Getenv("KAFKA_BROKERS"); v != "" {
		env.KafkaBrokers = strings.Split(v, ",")
	}

	if v := os.Getenv("KAFKA_TOPIC"); v != "" {
		env.KafkaTopic = v
	}

	if v := os.Getenv("REMOTE_CALL_TIMEOUT"); v != "" {
		timeout, err := time.ParseDuration(v)
		if err != nil {
			return nil, err
		}
		env.RemoteCallTimeout = timeout
	}

	return &env, nil
}
