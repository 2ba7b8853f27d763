package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetenvDefault(t *testing.T) {
	assert.Equal(t, "fallback", getenv("CONFIG_TEST_UNSET_KEY", "fallback"))
}

func TestGetenvSet(t *testing.T) {
	t.Setenv("CONFIG_TEST_KEY", "value")
	assert.Equal(t, "value", getenv("CONFIG_TEST_KEY", "fallback"))
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("HTTP_ADDR", "")
	t.Setenv("POSTGRES_DSN", "")
	cfg := Load()
	assert.Equal(t, ":3000", cfg.HTTPAddr)
	assert.NotEmpty(t, cfg.PostgresDSN)
}
