package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromViperDefaults(t *testing.T) {
	t.Setenv("DB", "mongodb://localhost:27017")
	t.Setenv("PORT", "")
	t.Setenv("MONGO_URI", "")
	t.Setenv("NATS_URL", "")
	t.Setenv("ENABLE_BOOTSTRAP", "")
	t.Setenv("DB_TIMEOUT", "")

	cfg, err := FromViper(newViper())
	require.NoError(t, err)
	assert.Equal(t, "mongodb://localhost:27017", cfg.DBURI)
	assert.Equal(t, DefaultPort, cfg.Port)
	assert.Equal(t, ":7000", cfg.Addr())
	assert.Equal(t, DefaultDBTimeout, cfg.DBTimeout)
	assert.False(t, cfg.EnableBootstrap)
	assert.Empty(t, cfg.NATSURL)
}

func TestFromViperOverrides(t *testing.T) {
	t.Setenv("DB", "mongodb://db:27017")
	t.Setenv("PORT", "8081")
	t.Setenv("NATS_URL", "nats://nats:4222")
	t.Setenv("ENABLE_BOOTSTRAP", "true")
	t.Setenv("DB_TIMEOUT", "2s")

	cfg, err := FromViper(newViper())
	require.NoError(t, err)
	assert.Equal(t, 8081, cfg.Port)
	assert.Equal(t, "nats://nats:4222", cfg.NATSURL)
	assert.True(t, cfg.EnableBootstrap)
	assert.Equal(t, 2*time.Second, cfg.DBTimeout)
}

func TestFromViperMongoURIFallback(t *testing.T) {
	t.Setenv("DB", "")
	t.Setenv("MONGO_URI", "mongodb://legacy:27017")

	cfg, err := FromViper(newViper())
	require.NoError(t, err)
	assert.Equal(t, "mongodb://legacy:27017", cfg.DBURI)
}

func TestFromViperMissingDB(t *testing.T) {
	t.Setenv("DB", "")
	t.Setenv("MONGO_URI", "")

	_, err := FromViper(newViper())
	assert.ErrorIs(t, err, ErrMissingDB)
}

func TestFromViperInvalidPort(t *testing.T) {
	t.Setenv("DB", "mongodb://localhost:27017")
	t.Setenv("PORT", "70000")

	_, err := FromViper(newViper())
	assert.Error(t, err)
}
