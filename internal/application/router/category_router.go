package router

import (
	"context"
	"log/slog"
	"strings"

	"github.com/Nyukimin/kiosk_multiLLM/internal/domain/routing"
)

// Matcher はキーワードプレフィルタの抽象化
type Matcher interface {
	Match(text string) (routing.KeywordMatch, bool)
}

// Classifier は生成モデル分類器の抽象化
type Classifier interface {
	Classify(ctx context.Context, text string) (routing.CategoryDecision, error)
}

// CategoryRouter は注文テキストをカテゴリへルーティングする
// 決定論的プレフィルタを先に適用し、曖昧な場合のみ生成バックエンドへ委譲する
type CategoryRouter struct {
	matcher             Matcher
	classifier          Classifier
	confidenceThreshold float64 // ヒューリスティック即決の閾値
	logger              *slog.Logger
}

// NewCategoryRouter は新しいCategoryRouterを作成
func NewCategoryRouter(matcher Matcher, classifier Classifier, confidenceThreshold float64, logger *slog.Logger) *CategoryRouter {
	if logger == nil {
		logger = slog.Default()
	}
	return &CategoryRouter{
		matcher:             matcher,
		classifier:          classifier,
		confidenceThreshold: confidenceThreshold,
		logger:              logger,
	}
}

// Classify はテキストをカテゴリ分類する
// 整形式の入力に対してはエラーを返さない。空テキストはunknown/0/heuristic、
// バックエンド障害はunknown/0/fallbackを返し、下流のフォールバック抽出に委ねる
func (r *CategoryRouter) Classify(ctx context.Context, text string) routing.CategoryDecision {
	if strings.TrimSpace(text) == "" {
		return routing.UnknownDecision(routing.SourceHeuristic, "empty input")
	}

	// キーワードベースの高速分類
	if match, ok := r.matcher.Match(text); ok {
		// 同点の場合は推測せず生成モデルに委ねる
		if !match.Tied && match.Confidence > r.confidenceThreshold {
			r.logger.Debug("fast keyword-based classification",
				"category", match.Category.String(),
				"confidence", match.Confidence)
			return routing.NewCategoryDecision(
				match.Category, match.Confidence, routing.SourceHeuristic, "keyword match")
		}
	}

	// 生成モデルによる分類
	decision, err := r.classifier.Classify(ctx, text)
	if err != nil {
		r.logger.Warn("llm classification failed, falling back",
			"error", err)
		return routing.UnknownDecision(routing.SourceFallback, "classifier unavailable")
	}

	r.logger.Debug("llm-based classification",
		"category", decision.Category.String(),
		"confidence", decision.Confidence)

	return decision
}
