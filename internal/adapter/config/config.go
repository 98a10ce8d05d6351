package config

import (
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/Nyukimin/kiosk_multiLLM/internal/domain/routing"
)

// Config はアプリケーション全体の設定
type Config struct {
	OpenAI  OpenAIConfig  `yaml:"openai"`
	Ollama  OllamaConfig  `yaml:"ollama"`
	Routing RoutingConfig `yaml:"routing"`
	Batch   BatchConfig   `yaml:"batch"`
	Log     LogConfig     `yaml:"log"`
}

// OpenAIConfig はOpenAI API設定
// ティアごとに使用するモデルを切り替える
type OpenAIConfig struct {
	APIKey        string `yaml:"api_key" env:"OPENAI_API_KEY"` // 環境変数から読み込み推奨
	NanoModel     string `yaml:"nano_model"`                   // lowティア用
	MiniModel     string `yaml:"mini_model"`                   // mediumティア用
	StandardModel string `yaml:"standard_model"`               // highティア用
	TimeoutSec    int    `yaml:"timeout_seconds" env:"KIOSK_OPENAI_TIMEOUT_SECONDS"`
}

// OllamaConfig はローカルOllama設定
type OllamaConfig struct {
	BaseURL         string `yaml:"base_url" env:"KIOSK_OLLAMA_BASE_URL"`
	Model           string `yaml:"model" env:"KIOSK_OLLAMA_MODEL"`
	ProbeTimeoutSec int    `yaml:"probe_timeout_seconds"`  // 死活監視の内部タイムアウト
	AvailabilityTTL int    `yaml:"availability_ttl_seconds"` // 可用性キャッシュの有効期間
}

// RoutingConfig はルーティング判定の設定
// 閾値や重みはビジネスロジック定数ではなく設定として外出しする
type RoutingConfig struct {
	CategoryConfidenceThreshold float64           `yaml:"category_confidence_threshold"` // ヒューリスティック即決の閾値
	TierWeights                 TierWeights       `yaml:"tier_weights"`
	TierMediumThreshold         float64           `yaml:"tier_medium_threshold"`
	TierHighThreshold           float64           `yaml:"tier_high_threshold"`
	SensitivityPolicy           map[string]string `yaml:"sensitivity_policy"` // 機微度→ポリシー（cloud | local_preferred）
}

// TierWeights は複雑度シグナルの重み
type TierWeights struct {
	Length        float64 `yaml:"length"`
	Conjunction   float64 `yaml:"conjunction"`
	Quantity      float64 `yaml:"quantity"`
	Customization float64 `yaml:"customization"`
	Negation      float64 `yaml:"negation"`
}

// BatchConfig はバッチ処理の設定
type BatchConfig struct {
	MaxConcurrent      int `yaml:"max_concurrent" env:"KIOSK_BATCH_MAX_CONCURRENT"`
	DefaultDeadlineSec int `yaml:"default_deadline_seconds"` // 0はデフォルトデッドラインなし
}

// LogConfig はログ設定
type LogConfig struct {
	Level  string `yaml:"level" env:"KIOSK_LOG_LEVEL"`
	Format string `yaml:"format"`
}

// ポリシー値の定数定義
const (
	PolicyCloud          = "cloud"
	PolicyLocalPreferred = "local_preferred"
)

// LoadConfig は設定ファイルを読み込む
func LoadConfig(path string) (*Config, error) {
	// ファイル読み込み
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// YAMLパース
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	// デフォルト値設定
	cfg.setDefaults()

	// 環境変数から上書き（APIキーはファイルに平文保存しない）
	if err := cfg.loadFromEnv(); err != nil {
		return nil, fmt.Errorf("failed to load env overrides: %w", err)
	}

	// バリデーション
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// DefaultConfig はデフォルト設定を返す（テスト・デモ用）
func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.setDefaults()
	return cfg
}

// setDefaults はデフォルト値を設定
func (c *Config) setDefaults() {
	if c.OpenAI.NanoModel == "" {
		c.OpenAI.NanoModel = "gpt-5-nano"
	}
	if c.OpenAI.MiniModel == "" {
		c.OpenAI.MiniModel = "gpt-5-mini"
	}
	if c.OpenAI.StandardModel == "" {
		c.OpenAI.StandardModel = "gpt-5"
	}
	if c.OpenAI.TimeoutSec == 0 {
		c.OpenAI.TimeoutSec = 30
	}

	if c.Ollama.BaseURL == "" {
		c.Ollama.BaseURL = "http://localhost:11434"
	}
	if c.Ollama.Model == "" {
		c.Ollama.Model = "exaone3.5:7.8b"
	}
	if c.Ollama.ProbeTimeoutSec == 0 {
		c.Ollama.ProbeTimeoutSec = 5
	}
	if c.Ollama.AvailabilityTTL == 0 {
		c.Ollama.AvailabilityTTL = 300
	}

	if c.Routing.CategoryConfidenceThreshold == 0 {
		c.Routing.CategoryConfidenceThreshold = 0.8
	}
	if c.Routing.TierWeights == (TierWeights{}) {
		c.Routing.TierWeights = TierWeights{
			Length:        0.01,
			Conjunction:   1.0,
			Quantity:      0.5,
			Customization: 1.5,
			Negation:      1.5,
		}
	}
	if c.Routing.TierMediumThreshold == 0 {
		c.Routing.TierMediumThreshold = 1.5
	}
	if c.Routing.TierHighThreshold == 0 {
		c.Routing.TierHighThreshold = 3.5
	}
	if c.Routing.SensitivityPolicy == nil {
		c.Routing.SensitivityPolicy = map[string]string{
			routing.SensitivityLow.String():    PolicyCloud,
			routing.SensitivityMedium.String(): PolicyCloud,
			routing.SensitivityHigh.String():   PolicyLocalPreferred,
		}
	}

	if c.Batch.MaxConcurrent == 0 {
		c.Batch.MaxConcurrent = 10
	}

	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "json"
	}
}

// loadFromEnv は環境変数から設定を上書き
func (c *Config) loadFromEnv() error {
	if err := env.Parse(&c.OpenAI); err != nil {
		return err
	}
	if err := env.Parse(&c.Ollama); err != nil {
		return err
	}
	if err := env.Parse(&c.Batch); err != nil {
		return err
	}
	return env.Parse(&c.Log)
}

// Validate は設定の妥当性を検証
func (c *Config) Validate() error {
	if c.Routing.CategoryConfidenceThreshold < 0 || c.Routing.CategoryConfidenceThreshold > 1 {
		return fmt.Errorf("invalid category_confidence_threshold: %f (must be 0-1)", c.Routing.CategoryConfidenceThreshold)
	}

	// ティア閾値は単調でなければならない
	if c.Routing.TierHighThreshold <= c.Routing.TierMediumThreshold {
		return fmt.Errorf("tier_high_threshold (%f) must be greater than tier_medium_threshold (%f)",
			c.Routing.TierHighThreshold, c.Routing.TierMediumThreshold)
	}

	for sens, policy := range c.Routing.SensitivityPolicy {
		if _, ok := routing.ParseSensitivity(sens); !ok {
			return fmt.Errorf("invalid sensitivity in policy table: %q", sens)
		}
		if policy != PolicyCloud && policy != PolicyLocalPreferred {
			return fmt.Errorf("invalid policy for sensitivity %q: %q", sens, policy)
		}
	}

	if c.Batch.MaxConcurrent < 1 {
		return fmt.Errorf("batch max_concurrent must be at least 1, got %d", c.Batch.MaxConcurrent)
	}

	if c.Ollama.BaseURL == "" {
		return fmt.Errorf("ollama base_url is required")
	}

	return nil
}

// OpenAITimeout はOpenAIリクエストのタイムアウトを返す
func (c *Config) OpenAITimeout() time.Duration {
	return time.Duration(c.OpenAI.TimeoutSec) * time.Second
}

// ProbeTimeout は死活監視のタイムアウトを返す
func (c *Config) ProbeTimeout() time.Duration {
	return time.Duration(c.Ollama.ProbeTimeoutSec) * time.Second
}

// AvailabilityTTL は可用性キャッシュの有効期間を返す
func (c *Config) AvailabilityTTLDuration() time.Duration {
	return time.Duration(c.Ollama.AvailabilityTTL) * time.Second
}

// DefaultBatchDeadline はバッチのデフォルトデッドラインを返す（0はなし）
func (c *Config) DefaultBatchDeadline() time.Duration {
	return time.Duration(c.Batch.DefaultDeadlineSec) * time.Second
}

// ModelForTier はティアに対応するクラウドモデル名を返す
func (c *Config) ModelForTier(tier routing.ModelTier) string {
	switch tier {
	case routing.TierLow:
		return c.OpenAI.NanoModel
	case routing.TierHigh:
		return c.OpenAI.StandardModel
	default:
		return c.OpenAI.MiniModel
	}
}

// PolicyFor は機微度に対応するポリシーを返す
// 未設定の機微度はcloud扱い
func (c *Config) PolicyFor(sensitivity routing.Sensitivity) string {
	if policy, ok := c.Routing.SensitivityPolicy[sensitivity.String()]; ok {
		return policy
	}
	return PolicyCloud
}
