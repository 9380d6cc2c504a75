package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	pgconf "github.com/Ashuj56/krishiconnect-SIH-sub001/pkg/postgres"
)

// KafkaConfig holds broker connection parameters.
type KafkaConfig struct {
	Brokers       []string
	ConsumerGroup string
}

// AuthConfig holds JWT signing parameters.
type AuthConfig struct {
	Secret string
	Issuer string
}

// GeminiConfig holds the crop diagnosis model parameters.
type GeminiConfig struct {
	APIKey string
	Model  string
}

// WeatherConfig holds the forecast provider parameters.
type WeatherConfig struct {
	BaseURL    string
	GeocodeURL string
}

// Config is the full configuration of a Krishi Connect daemon.
type Config struct {
	ServiceName string
	HTTPPort    int
	GRPCPort    int
	LogLevel    string
	LogFormat   string

	DB      pgconf.Config
	Kafka   KafkaConfig
	Auth    AuthConfig
	Gemini  GeminiConfig
	Weather WeatherConfig
}

// Load reads configuration from the environment. Callers load a .env file
// first when one exists; Load itself only reads the process environment.
func Load(serviceName string) Config {
	return Config{
		ServiceName: serviceName,
		HTTPPort:    getEnvInt("HTTP_PORT", 8080),
		GRPCPort:    getEnvInt("GRPC_PORT", 9090),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		LogFormat:   getEnv("LOG_FORMAT", "json"),
		DB: pgconf.Config{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnvInt("DB_PORT", 5432),
			User:     getEnv("DB_USER", "krishi"),
			Password: getEnv("DB_PASSWORD", ""),
			Database: getEnv("DB_NAME", "krishiconnect"),
			SSLMode:  getEnv("DB_SSLMODE", "require"),
		},
		Kafka: KafkaConfig{
			Brokers:       strings.Split(getEnv("KAFKA_BROKERS", "localhost:9092"), ","),
			ConsumerGroup: getEnv("KAFKA_CONSUMER_GROUP", serviceName),
		},
		Auth: AuthConfig{
			Secret: getEnv("JWT_SECRET", ""),
			Issuer: getEnv("JWT_ISSUER", "krishiconnect"),
		},
		Gemini: GeminiConfig{
			APIKey: getEnv("GEMINI_API_KEY", ""),
			Model:  getEnv("GEMINI_MODEL", "gemini-2.0-flash"),
		},
		Weather: WeatherConfig{
			BaseURL:    getEnv("WEATHER_BASE_URL", "https://api.open-meteo.com/v1/forecast"),
			GeocodeURL: getEnv("WEATHER_GEOCODE_URL", "https://geocoding-api.open-meteo.com/v1/search"),
		},
	}
}

// Validate panics on configuration that cannot work in any environment.
func (c Config) Validate() {
	if c.DB.Password == "" {
		panic("DB_PASSWORD environment variable is required")
	}
	if c.Auth.Secret == "" {
		panic("JWT_SECRET environment variable is required")
	}
}

// HTTPAddr returns the listen address of the REST server.
func (c Config) HTTPAddr() string {
	return fmt.Sprintf(":%d", c.HTTPPort)
}

// GRPCAddr returns the listen address of the gRPC server.
func (c Config) GRPCAddr() string {
	return fmt.Sprintf(":%d", c.GRPCPort)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}
