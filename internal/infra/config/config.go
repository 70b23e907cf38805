package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

const (
	StoreModeMongo  = "mongo"
	StoreModeMemory = "memory"
)

// Config aggregates application configuration loaded from environment variables.
type Config struct {
	Env               string
	HTTPAddr          string
	StoreMode         string
	MongoURI          string
	MongoDB           string
	KafkaBrokers      []string
	KafkaTopicPrefix  string
	AdminEmail        string
	AdminPasswordHash string
	SessionTTL        time.Duration
	CatalogFixtures   string
}

// Load parses configuration from the current environment.
func Load() (Config, error) {
	cfg := Config{
		Env:               getEnv("APP_ENV", "dev"),
		HTTPAddr:          getEnv("HTTP_ADDR", ":8080"),
		StoreMode:         strings.ToLower(getEnv("STORE_MODE", StoreModeMongo)),
		MongoURI:          os.Getenv("MONGO_URI"),
		MongoDB:           getEnv("MONGO_DB", "venuedesk"),
		KafkaTopicPrefix:  getEnv("KAFKA_TOPIC_PREFIX", ""),
		AdminEmail:        strings.ToLower(getEnv("ADMIN_EMAIL", "admin@venuedesk.local")),
		AdminPasswordHash: os.Getenv("ADMIN_PASSWORD_HASH"),
		CatalogFixtures:   os.Getenv("CATALOG_FIXTURES"),
	}

	brokers := getEnv("KAFKA_BROKERS", "")
	if brokers != "" {
		for _, b := range strings.Split(brokers, ",") {
			if b = strings.TrimSpace(b); b != "" {
				cfg.KafkaBrokers = append(cfg.KafkaBrokers, b)
			}
		}
	}

	ttl, err := parseDurationEnv("SESSION_TTL", 12*time.Hour)
	if err != nil {
		return Config{}, err
	}
	cfg.SessionTTL = ttl

	switch cfg.StoreMode {
	case StoreModeMongo, StoreModeMemory:
	default:
		return Config{}, fmt.Errorf("invalid STORE_MODE %q, want %s or %s", cfg.StoreMode, StoreModeMongo, StoreModeMemory)
	}
	if cfg.StoreMode == StoreModeMongo && cfg.MongoURI == "" {
		return Config{}, fmt.Errorf("MONGO_URI is required when STORE_MODE=%s", StoreModeMongo)
	}
	if cfg.AdminPasswordHash == "" {
		return Config{}, fmt.Errorf("ADMIN_PASSWORD_HASH is required")
	}
	return cfg, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func parseDurationEnv(key string, def time.Duration) (time.Duration, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return def, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s duration: %w", key, err)
	}
	return d, nil
}
