package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Goals    GoalsConfig
	Cards    CardsConfig
	Logger   LoggerConfig
}

type LoggerConfig struct {
	Level string
}

type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// GoalsConfig holds the budgeting-rule fractions applied to monthly income
// when computing goal targets. Fractions are expressed as 0..1 values.
type GoalsConfig struct {
	Needs    float64
	Wants    float64
	Savings  float64
	Invested float64
}

// CardsConfig carries the allow-list of payment mode values that count as
// credit cards in the spend/repay rollup.
type CardsConfig struct {
	Names []string
}

// DefaultCardNames are the recognized credit card channels when CREDIT_CARDS
// is not set.
var DefaultCardNames = []string{
	"Coral GPay CC",
	"MMT Mastercard",
	"Coral Paytm CC",
}

func Load() (*Config, error) {
	// Try to load .env file from current directory or project root
	envFiles := []string{".env", "../.env", "../../.env"}
	for _, envFile := range envFiles {
		if err := godotenv.Load(envFile); err == nil {
			break
		}
	}
	// No .env file is fine; plain environment variables work for Docker/K8s.

	readTimeout, _ := strconv.Atoi(getEnv("SERVER_READ_TIMEOUT", "30"))
	writeTimeout, _ := strconv.Atoi(getEnv("SERVER_WRITE_TIMEOUT", "30"))

	return &Config{
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "8080"),
			ReadTimeout:  time.Duration(readTimeout) * time.Second,
			WriteTimeout: time.Duration(writeTimeout) * time.Second,
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			DBName:   getEnv("DB_NAME", "fintrack"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Goals: GoalsConfig{
			Needs:    getEnvFloat("GOAL_NEEDS_FRACTION", 0.40),
			Wants:    getEnvFloat("GOAL_WANTS_FRACTION", 0.20),
			Savings:  getEnvFloat("GOAL_SAVINGS_FRACTION", 0.10),
			Invested: getEnvFloat("GOAL_INVESTED_FRACTION", 0.30),
		},
		Cards: CardsConfig{
			Names: getEnvList("CREDIT_CARDS", DefaultCardNames),
		},
		Logger: LoggerConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return defaultValue
	}
	return f
}

func getEnvList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	var names []string
	for _, part := range strings.Split(value, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			names = append(names, trimmed)
		}
	}
	if len(names) == 0 {
		return defaultValue
	}
	return names
}
