package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/Nyukimin/kiosk_multiLLM/internal/adapter/config"
	"github.com/Nyukimin/kiosk_multiLLM/internal/application/backend"
	"github.com/Nyukimin/kiosk_multiLLM/internal/application/orchestrator"
	"github.com/Nyukimin/kiosk_multiLLM/internal/application/recommend"
	"github.com/Nyukimin/kiosk_multiLLM/internal/application/router"
	"github.com/Nyukimin/kiosk_multiLLM/internal/domain/llm"
	"github.com/Nyukimin/kiosk_multiLLM/internal/domain/order"
	"github.com/Nyukimin/kiosk_multiLLM/internal/domain/routing"
	infracatalog "github.com/Nyukimin/kiosk_multiLLM/internal/infrastructure/catalog"
	"github.com/Nyukimin/kiosk_multiLLM/internal/infrastructure/extract"
	infrallm "github.com/Nyukimin/kiosk_multiLLM/internal/infrastructure/llm/ollama"
	infraopenai "github.com/Nyukimin/kiosk_multiLLM/internal/infrastructure/llm/openai"
	infrarouting "github.com/Nyukimin/kiosk_multiLLM/internal/infrastructure/routing"
)

func main() {
	// .envがあれば環境変数として読み込む（なくてもよい）
	_ = godotenv.Load()

	// 設定読み込み
	cfg, err := loadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := buildLogger(cfg)

	if cfg.OpenAI.APIKey == "" {
		log.Fatal("OPENAI_API_KEY is required")
	}

	// 依存関係構築
	orch := buildOrchestrator(cfg, logger)

	// 引数の注文テキストをバッチ処理（未指定時はサンプル注文）
	texts := os.Args[1:]
	if len(texts) == 0 {
		texts = []string{
			"아메리카노 2잔이랑 케이크 1개 주세요",
			"아이스 바닐라라떼 그란데 사이즈로 부탁해요",
			"샌드위치하고 오렌지주스 주세요",
		}
	}

	reqs := make([]order.Request, 0, len(texts))
	for _, text := range texts {
		reqs = append(reqs, order.NewRequest(text))
	}

	batch := orch.ProcessBatch(context.Background(), reqs)

	for i, result := range batch.Results() {
		printResult(i, reqs[i], result)
	}

	fmt.Printf("\n%d/%d orders succeeded\n", batch.SuccessCount(), batch.Len())
}

// loadConfig は設定ファイルを読み込む（無ければデフォルト設定）
func loadConfig() (*config.Config, error) {
	path := os.Getenv("KIOSK_CONFIG")
	if path == "" {
		path = "config/config.yaml"
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		cfg := config.DefaultConfig()
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
		return cfg, nil
	}

	return config.LoadConfig(path)
}

// buildLogger はログ設定からslogロガーを構築
func buildLogger(cfg *config.Config) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.Log.Level)); err != nil {
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if cfg.Log.Format == "text" {
		handler = slog.NewTextHandler(os.Stderr, opts)
	} else {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	}

	return slog.New(handler)
}

// buildOrchestrator は依存関係を構築
func buildOrchestrator(cfg *config.Config, logger *slog.Logger) *orchestrator.OrderOrchestrator {
	// 1. カタログ
	cat := infracatalog.NewMemoryCatalog()

	// 2. LLMプロバイダー（ティアごとのクラウド + ローカル）
	cloud := map[routing.ModelTier]llm.Provider{
		routing.TierLow:    infraopenai.NewOpenAIProvider(cfg.OpenAI.APIKey, cfg.OpenAI.NanoModel, cfg.OpenAITimeout()),
		routing.TierMedium: infraopenai.NewOpenAIProvider(cfg.OpenAI.APIKey, cfg.OpenAI.MiniModel, cfg.OpenAITimeout()),
		routing.TierHigh:   infraopenai.NewOpenAIProvider(cfg.OpenAI.APIKey, cfg.OpenAI.StandardModel, cfg.OpenAITimeout()),
	}
	local := infrallm.NewOllamaProvider(cfg.Ollama.BaseURL, cfg.Ollama.Model)
	probe := infrallm.NewProbe(cfg.Ollama.BaseURL, cfg.ProbeTimeout(), cfg.AvailabilityTTLDuration())

	backendSvc := backend.NewService(cloud, local, logger)

	// 3. ルーター群
	classifierProvider := cloud[routing.TierLow] // 分類は軽量モデルで十分
	categoryRouter := router.NewCategoryRouter(
		infrarouting.NewKeywordMatcher(),
		infrarouting.NewLLMClassifier(classifierProvider),
		cfg.Routing.CategoryConfidenceThreshold,
		logger,
	)

	modelRouter := router.NewModelRouter(router.TierThresholds{
		LengthWeight:        cfg.Routing.TierWeights.Length,
		ConjunctionWeight:   cfg.Routing.TierWeights.Conjunction,
		QuantityWeight:      cfg.Routing.TierWeights.Quantity,
		CustomizationWeight: cfg.Routing.TierWeights.Customization,
		NegationWeight:      cfg.Routing.TierWeights.Negation,
		MediumThreshold:     cfg.Routing.TierMediumThreshold,
		HighThreshold:       cfg.Routing.TierHighThreshold,
	})

	policy := make(map[routing.Sensitivity]router.EndpointPolicy, len(cfg.Routing.SensitivityPolicy))
	for sens, pol := range cfg.Routing.SensitivityPolicy {
		if parsed, ok := routing.ParseSensitivity(sens); ok {
			policy[parsed] = router.EndpointPolicy(pol)
		}
	}
	servingRouter := router.NewServingRouter(probe, policy, logger)

	// 4. オーケストレータ
	return orchestrator.NewOrderOrchestrator(
		categoryRouter,
		modelRouter,
		servingRouter,
		backendSvc,
		cat,
		extract.NewFallbackExtractor(cat),
		recommend.NewRecommender(backendSvc),
		orchestrator.Options{
			MaxConcurrent:   cfg.Batch.MaxConcurrent,
			DefaultDeadline: cfg.DefaultBatchDeadline(),
		},
		logger,
	)
}

// printResult は1件の処理結果を表示
func printResult(i int, req order.Request, result order.Result) {
	fmt.Printf("\n[%d] %s\n", i+1, req.Text())

	payload, ok := result.Payload()
	if !ok {
		err := result.Err()
		fmt.Printf("    FAILED (%s): %v\n", err.Kind, err)
		return
	}

	for _, item := range payload.Items {
		line := fmt.Sprintf("    %s x%d", item.MenuName, item.Quantity)
		if item.Size != "" {
			line += fmt.Sprintf(" (%s)", item.Size)
		}
		if item.Temperature != "" {
			line += fmt.Sprintf(" [%s]", item.Temperature)
		}
		fmt.Printf("%s = %d원\n", line, item.Subtotal())
	}
	fmt.Printf("    total: %d원 (category=%s tier=%s endpoint=%s",
		payload.TotalAmount(),
		payload.Category.Category,
		payload.Tier.Tier,
		payload.Serving.Endpoint)
	if result.FallbackApplied() {
		fmt.Print(" via-fallback")
	}
	fmt.Println(")")

	if payload.Suggestion != "" {
		fmt.Printf("    추천: %s\n", payload.Suggestion)
	}
}
