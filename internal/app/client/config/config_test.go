package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "localhost:3000", cfg.ServerAddress)
	assert.False(t, cfg.EnableTLS)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
	assert.Equal(t, "http://localhost:3000", cfg.BaseURL())
}

func TestLoad_OverridesEnv(t *testing.T) {
	t.Setenv("SERVER_ADDRESS", "clip.example.com")
	t.Setenv("ENABLE_TLS", "true")
	t.Setenv("ADMIN_TOKEN", "from-env")

	v := viper.New()
	v.Set("ADMIN_TOKEN", "from-flag")

	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, "https://clip.example.com", cfg.BaseURL())
	assert.Equal(t, "from-flag", cfg.AdminToken)
}

func TestLoad_Invalid(t *testing.T) {
	t.Setenv("SERVER_ADDRESS", "")
	v := viper.New()
	v.Set("SERVER_ADDRESS", "")

	_, err := Load(v)
	assert.Error(t, err)
}
