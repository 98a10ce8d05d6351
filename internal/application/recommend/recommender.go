package recommend

import (
	"context"
	"fmt"
	"strings"

	"github.com/Nyukimin/kiosk_multiLLM/internal/domain/llm"
	"github.com/Nyukimin/kiosk_multiLLM/internal/domain/order"
	"github.com/Nyukimin/kiosk_multiLLM/internal/domain/routing"
)

// Backend は生成バックエンドの抽象化
type Backend interface {
	Generate(ctx context.Context, tier routing.ModelTier, endpoint routing.Endpoint, req llm.GenerateRequest) (llm.GenerateResponse, error)
}

// Recommender は確定した注文に対する追加メニューのおすすめを生成する
// おすすめはlowティアのクラウドモデルで十分であり、失敗しても注文は成立する
type Recommender struct {
	backend Backend
}

// NewRecommender は新しいRecommenderを作成
func NewRecommender(backend Backend) *Recommender {
	return &Recommender{backend: backend}
}

// Suggest は注文項目に合うおすすめメッセージを生成
func (r *Recommender) Suggest(ctx context.Context, items []order.Item) (string, error) {
	if len(items) == 0 {
		return "", fmt.Errorf("no items to recommend for")
	}

	parts := make([]string, 0, len(items))
	for _, item := range items {
		parts = append(parts, fmt.Sprintf("%s %d개", item.MenuName, item.Quantity))
	}

	prompt := fmt.Sprintf(`고객이 다음 항목을 주문했습니다:
%s

이 주문에 어울리는 추가 메뉴를 1-2개 추천해주세요.
추천 이유와 함께 간단하고 친절하게 설명하세요.
한국어로 답변하세요.`, strings.Join(parts, ", "))

	resp, err := r.backend.Generate(ctx, routing.TierLow, routing.EndpointCloud, llm.GenerateRequest{
		Messages: []llm.Message{
			{Role: "user", Content: prompt},
		},
		MaxTokens:   200,
		Temperature: 0.7,
	})
	if err != nil {
		return "", fmt.Errorf("recommendation generation failed: %w", err)
	}

	return strings.TrimSpace(resp.Content), nil
}
