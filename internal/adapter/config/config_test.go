package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nyukimin/kiosk_multiLLM/internal/domain/routing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfig_Success(t *testing.T) {
	path := writeConfig(t, `
openai:
  nano_model: "gpt-5-nano"
  mini_model: "gpt-5-mini"
  standard_model: "gpt-5"
  timeout_seconds: 20

ollama:
  base_url: "http://127.0.0.1:11434"
  model: "exaone3.5:7.8b"

routing:
  category_confidence_threshold: 0.75

batch:
  max_concurrent: 5

log:
  level: "debug"
  format: "text"
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "gpt-5-nano", cfg.OpenAI.NanoModel)
	assert.Equal(t, 20, cfg.OpenAI.TimeoutSec)
	assert.Equal(t, "http://127.0.0.1:11434", cfg.Ollama.BaseURL)
	assert.Equal(t, 0.75, cfg.Routing.CategoryConfidenceThreshold)
	assert.Equal(t, 5, cfg.Batch.MaxConcurrent)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
}

func TestLoadConfig_AppliesDefaults(t *testing.T) {
	path := writeConfig(t, `
ollama:
  base_url: "http://localhost:11434"
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "gpt-5-nano", cfg.OpenAI.NanoModel)
	assert.Equal(t, "gpt-5-mini", cfg.OpenAI.MiniModel)
	assert.Equal(t, "gpt-5", cfg.OpenAI.StandardModel)
	assert.Equal(t, 0.8, cfg.Routing.CategoryConfidenceThreshold)
	assert.Equal(t, 1.5, cfg.Routing.TierMediumThreshold)
	assert.Equal(t, 3.5, cfg.Routing.TierHighThreshold)
	assert.Equal(t, 10, cfg.Batch.MaxConcurrent)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, PolicyLocalPreferred, cfg.Routing.SensitivityPolicy["high"])
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-test-key")
	t.Setenv("KIOSK_OLLAMA_MODEL", "llama3:8b")

	path := writeConfig(t, `
openai:
  api_key: "from-file"

ollama:
  model: "from-file"
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	// 環境変数はファイルの値より優先される
	assert.Equal(t, "sk-test-key", cfg.OpenAI.APIKey)
	assert.Equal(t, "llama3:8b", cfg.Ollama.Model)
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	_, err := LoadConfig("/nonexistent/config.yaml")
	assert.Error(t, err)
}

func TestLoadConfig_InvalidYAML(t *testing.T) {
	path := writeConfig(t, "!!not: [valid: yaml")

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{
			name:    "デフォルトは妥当",
			mutate:  func(c *Config) {},
			wantErr: false,
		},
		{
			name:    "閾値が範囲外",
			mutate:  func(c *Config) { c.Routing.CategoryConfidenceThreshold = 1.5 },
			wantErr: true,
		},
		{
			name:    "ティア閾値が逆転",
			mutate:  func(c *Config) { c.Routing.TierHighThreshold = 1.0 },
			wantErr: true,
		},
		{
			name:    "不正な機微度ラベル",
			mutate:  func(c *Config) { c.Routing.SensitivityPolicy["critical"] = PolicyCloud },
			wantErr: true,
		},
		{
			name:    "不正なポリシー値",
			mutate:  func(c *Config) { c.Routing.SensitivityPolicy["low"] = "edge" },
			wantErr: true,
		},
		{
			name:    "同時実行数ゼロ",
			mutate:  func(c *Config) { c.Batch.MaxConcurrent = 0 },
			wantErr: true,
		},
		{
			name:    "OllamaのURLなし",
			mutate:  func(c *Config) { c.Ollama.BaseURL = "" },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestConfig_ModelForTier(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "gpt-5-nano", cfg.ModelForTier(routing.TierLow))
	assert.Equal(t, "gpt-5-mini", cfg.ModelForTier(routing.TierMedium))
	assert.Equal(t, "gpt-5", cfg.ModelForTier(routing.TierHigh))
}

func TestConfig_PolicyFor(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, PolicyCloud, cfg.PolicyFor(routing.SensitivityLow))
	assert.Equal(t, PolicyCloud, cfg.PolicyFor(routing.SensitivityMedium))
	assert.Equal(t, PolicyLocalPreferred, cfg.PolicyFor(routing.SensitivityHigh))

	// 未設定の機微度はクラウド扱い
	assert.Equal(t, PolicyCloud, cfg.PolicyFor(routing.SensitivityUnset))
}
