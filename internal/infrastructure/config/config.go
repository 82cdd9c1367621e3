package config

import (
	"fmt"
	"os"
)

// Config holds all configuration for the phishguard service.
type Config struct {
	HTTPPort     string
	KafkaBroker  string
	KafkaTopic   string
	OTLPEndpoint string
	Environment  string
	LogLevel     string
	LogFormat    string
}

// Load reads configuration from environment variables with sensible defaults.
// An empty KAFKA_BROKER disables Kafka publishing.
func Load() *Config {
	return &Config{
		HTTPPort:     getEnv("HTTP_PORT", "5000"),
		KafkaBroker:  getEnv("KAFKA_BROKER", ""),
		KafkaTopic:   getEnv("KAFKA_TOPIC", "phishguard.reports"),
		OTLPEndpoint: getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4317"),
		Environment:  getEnv("ENVIRONMENT", "development"),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		LogFormat:    getEnv("LOG_FORMAT", "json"),
	}
}

// HTTPAddress returns the full HTTP listen address.
func (c *Config) HTTPAddress() string {
	return fmt.Sprintf(":%s", c.HTTPPort)
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
