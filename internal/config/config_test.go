package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("FUNCTIONS_MOCK", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "orders", cfg.Tables.Orders)
	assert.Equal(t, "cakto_webhook_logs", cfg.Tables.CaktoWebhookLogs)
	assert.Equal(t, "hotmart_webhook_logs", cfg.Tables.HotmartWebhookLogs)
	assert.Equal(t, 3, cfg.LyricsMaxAttempts)
	assert.Equal(t, "approve", cfg.UnknownStatusPolicy)
	assert.Equal(t, 30*time.Second, cfg.Functions.Timeout)
	assert.Equal(t, 5*time.Minute, cfg.DispatchGuardTTL)
	assert.True(t, cfg.Functions.Mock)
	assert.False(t, cfg.RedisEnabled())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("CAKTO_WEBHOOK_SECRET", " cakto-secret ")
	t.Setenv("FUNCTIONS_BASE_URL", "https://fn.example.com/functions/v1/")
	t.Setenv("FUNCTIONS_TIMEOUT", "5s")
	t.Setenv("LYRICS_MAX_ATTEMPTS", "5")
	t.Setenv("WEBHOOK_UNKNOWN_STATUS_POLICY", "IGNORE")
	t.Setenv("REDIS_ADDR", "localhost:6379")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "cakto-secret", cfg.CaktoWebhookSecret)
	assert.Equal(t, "https://fn.example.com/functions/v1", cfg.Functions.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.Functions.Timeout)
	assert.Equal(t, 5, cfg.LyricsMaxAttempts)
	assert.Equal(t, "ignore", cfg.UnknownStatusPolicy)
	assert.True(t, cfg.RedisEnabled())
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"missing functions url", map[string]string{"FUNCTIONS_MOCK": "false"}},
		{"bad policy", map[string]string{"FUNCTIONS_MOCK": "true", "WEBHOOK_UNKNOWN_STATUS_POLICY": "maybe"}},
		{"zero attempts", map[string]string{"FUNCTIONS_MOCK": "true", "LYRICS_MAX_ATTEMPTS": "0"}},
		{"bad port", map[string]string{"FUNCTIONS_MOCK": "true", "PORT": "70000"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("FUNCTIONS_BASE_URL", "")
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load()
			assert.Error(t, err)
		})
	}
}
