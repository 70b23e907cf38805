package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setBaseline(t *testing.T) {
	t.Helper()
	t.Setenv("ADMIN_PASSWORD_HASH", "$2a$10$fakehash")
	t.Setenv("STORE_MODE", "memory")
	t.Setenv("MONGO_URI", "")
	t.Setenv("KAFKA_BROKERS", "")
	t.Setenv("SESSION_TTL", "")
	t.Setenv("APP_ENV", "")
	t.Setenv("HTTP_ADDR", "")
	t.Setenv("ADMIN_EMAIL", "")
}

func TestLoadDefaults(t *testing.T) {
	setBaseline(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "dev", cfg.Env)
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, StoreModeMemory, cfg.StoreMode)
	assert.Equal(t, "venuedesk", cfg.MongoDB)
	assert.Equal(t, "admin@venuedesk.local", cfg.AdminEmail)
	assert.Equal(t, 12*time.Hour, cfg.SessionTTL)
	assert.Empty(t, cfg.KafkaBrokers)
}

func TestLoadOverrides(t *testing.T) {
	setBaseline(t)
	t.Setenv("APP_ENV", "prod")
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("STORE_MODE", "MONGO")
	t.Setenv("MONGO_URI", "mongodb://localhost:27017")
	t.Setenv("MONGO_DB", "bookings")
	t.Setenv("KAFKA_BROKERS", "broker-1:9092, broker-2:9092 ,")
	t.Setenv("KAFKA_TOPIC_PREFIX", "staging.")
	t.Setenv("ADMIN_EMAIL", "Facilities@School.EDU")
	t.Setenv("SESSION_TTL", "30m")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, StoreModeMongo, cfg.StoreMode, "store mode is case-insensitive")
	assert.Equal(t, "bookings", cfg.MongoDB)
	assert.Equal(t, []string{"broker-1:9092", "broker-2:9092"}, cfg.KafkaBrokers)
	assert.Equal(t, "staging.", cfg.KafkaTopicPrefix)
	assert.Equal(t, "facilities@school.edu", cfg.AdminEmail, "admin email is lowercased")
	assert.Equal(t, 30*time.Minute, cfg.SessionTTL)
}

func TestLoadRejections(t *testing.T) {
	tests := []struct {
		name    string
		set     func(t *testing.T)
		wantMsg string
	}{
		{
			name:    "missing_admin_hash",
			set:     func(t *testing.T) { t.Setenv("ADMIN_PASSWORD_HASH", "") },
			wantMsg: "ADMIN_PASSWORD_HASH",
		},
		{
			name:    "unknown_store_mode",
			set:     func(t *testing.T) { t.Setenv("STORE_MODE", "redis") },
			wantMsg: "STORE_MODE",
		},
		{
			name:    "mongo_without_uri",
			set:     func(t *testing.T) { t.Setenv("STORE_MODE", "mongo") },
			wantMsg: "MONGO_URI",
		},
		{
			name:    "bad_session_ttl",
			set:     func(t *testing.T) { t.Setenv("SESSION_TTL", "soon") },
			wantMsg: "SESSION_TTL",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			setBaseline(t)
			tc.set(t)
			_, err := Load()
			require.Error(t, err)
			assert.ErrorContains(t, err, tc.wantMsg)
		})
	}
}
