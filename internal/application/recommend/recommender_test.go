package recommend

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/Nyukimin/kiosk_multiLLM/internal/domain/llm"
	"github.com/Nyukimin/kiosk_multiLLM/internal/domain/order"
	"github.com/Nyukimin/kiosk_multiLLM/internal/domain/routing"
)

// mockBackend は呼び出しを記録するテスト用バックエンド
type mockBackend struct {
	response string
	err      error
	lastTier routing.ModelTier
	lastReq  llm.GenerateRequest
}

func (m *mockBackend) Generate(ctx context.Context, tier routing.ModelTier, endpoint routing.Endpoint, req llm.GenerateRequest) (llm.GenerateResponse, error) {
	m.lastTier = tier
	m.lastReq = req
	if m.err != nil {
		return llm.GenerateResponse{}, m.err
	}
	return llm.GenerateResponse{Content: m.response}, nil
}

func TestRecommender_Suggest(t *testing.T) {
	backend := &mockBackend{response: "  아메리카노에는 치즈케이크가 잘 어울려요!  "}
	recommender := NewRecommender(backend)

	suggestion, err := recommender.Suggest(context.Background(), []order.Item{
		{MenuName: "아메리카노", Quantity: 2},
	})

	if err != nil {
		t.Fatalf("Suggest failed: %v", err)
	}
	if suggestion != "아메리카노에는 치즈케이크가 잘 어울려요!" {
		t.Errorf("Suggestion should be trimmed, got %q", suggestion)
	}

	// おすすめは常にlowティアで生成する
	if backend.lastTier != routing.TierLow {
		t.Errorf("Recommendations should use low tier, got %s", backend.lastTier)
	}

	// プロンプトに注文項目が含まれる
	prompt := backend.lastReq.Messages[0].Content
	if !strings.Contains(prompt, "아메리카노 2개") {
		t.Errorf("Prompt should list ordered items, got:\n%s", prompt)
	}
}

func TestRecommender_EmptyItems(t *testing.T) {
	recommender := NewRecommender(&mockBackend{})

	if _, err := recommender.Suggest(context.Background(), nil); err == nil {
		t.Error("Empty item list should error")
	}
}

func TestRecommender_BackendError(t *testing.T) {
	backend := &mockBackend{err: fmt.Errorf("backend down")}
	recommender := NewRecommender(backend)

	_, err := recommender.Suggest(context.Background(), []order.Item{{MenuName: "쿠키", Quantity: 1}})

	if err == nil {
		t.Error("Backend failure should propagate as error")
	}
}
