package cmd

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"pizzabot/internal/adapters/out/llm"
	"pizzabot/internal/core/domain/model/order"
	"pizzabot/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	for _, key := range []string{"HTTP_PORT", "DB_DRIVER", "PIZZA_DB_PATH", "LLM_API_KEY", "GEMINI_API_KEY", "LLM_MODEL", "GEMINI_MODEL", "REDIS_ADDR", "DRAFT_TTL", "ADMIN_TRANSITIONS", "LLM_MAX_STEPS"} {
		t.Setenv(key, "")
	}

	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, "sqlite", cfg.DBDriver)
	assert.Equal(t, "pizza.db", cfg.DBPath)
	assert.Empty(t, cfg.LLMAPIKey)
	assert.Equal(t, llm.DefaultModel, cfg.LLMModel)
	assert.Equal(t, 8, cfg.LLMMaxSteps)
	assert.Empty(t, cfg.RedisAddr)
	assert.Equal(t, 24*time.Hour, cfg.SessionTTL)
	assert.Equal(t, 6*time.Hour, cfg.DraftTTL)
	assert.Equal(t, "forward", cfg.AdminTransitions)
	assert.Equal(t, "0 */15 * * * *", cfg.SweepSchedule)
}

func TestLoadConfigEnvironment(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("DB_DSN", "postgres://pizza@localhost/pizza")
	t.Setenv("LLM_API_KEY", "")
	t.Setenv("GEMINI_API_KEY", "gemini-key")
	t.Setenv("GEMINI_MODEL", "gemini-2.0-flash")
	t.Setenv("LLM_MAX_STEPS", "3")
	t.Setenv("DRAFT_TTL", "30m")
	t.Setenv("ADMIN_TRANSITIONS", "permissive")

	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.HTTPPort)
	assert.Equal(t, "postgres", cfg.Store().Driver)
	assert.Equal(t, "postgres://pizza@localhost/pizza", cfg.Store().DSN)
	assert.Equal(t, "gemini-key", cfg.LLMAPIKey)
	assert.Equal(t, "gemini-2.0-flash", cfg.LLMModel)
	assert.Equal(t, 3, cfg.LLMMaxSteps)
	assert.Equal(t, 30*time.Minute, cfg.DraftTTL)

	policy, err := order.ParseTransitionPolicy(cfg.AdminTransitions)
	require.NoError(t, err)
	assert.Equal(t, order.Permissive, policy)
}

func TestLoadConfigPrimaryKeyWins(t *testing.T) {
	t.Setenv("LLM_API_KEY", "primary")
	t.Setenv("GEMINI_API_KEY", "fallback")

	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, "primary", cfg.LLMAPIKey)
}

func TestLoadConfigFile(t *testing.T) {
	t.Setenv("HTTP_PORT", "")
	t.Setenv("PIZZA_MENU_PATH", "")

	path := filepath.Join(t.TempDir(), "pizzabot.yaml")
	require.NoError(t, os.WriteFile(path, []byte("http_port: \"7070\"\npizza_menu_path: /etc/pizzabot/menu.yaml\n"), 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "7070", cfg.HTTPPort)
	assert.Equal(t, "/etc/pizzabot/menu.yaml", cfg.MenuPath)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestLoadConfigInvalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
		want  error
	}{
		{"driver", "DB_DRIVER", "oracle", errs.ErrValueIsInvalid},
		{"policy", "ADMIN_TRANSITIONS", "backwards", errs.ErrValueIsInvalid},
		{"steps", "LLM_MAX_STEPS", "0", errs.ErrValueIsOutOfRange},
		{"draft ttl", "DRAFT_TTL", "-1h", errs.ErrValueIsOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := LoadConfig("")
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestNewLogger(t *testing.T) {
	_, err := NewLogger(os.Stderr, "debug", "json")
	require.NoError(t, err)
	_, err = NewLogger(os.Stderr, "info", "console")
	require.NoError(t, err)

	_, err = NewLogger(os.Stderr, "loud", "json")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	_, err = NewLogger(os.Stderr, "info", "xml")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
