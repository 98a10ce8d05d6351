package routing

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Nyukimin/kiosk_multiLLM/internal/domain/llm"
	"github.com/Nyukimin/kiosk_multiLLM/internal/domain/routing"
)

// LLMClassifier は生成モデルベースのカテゴリ分類器
type LLMClassifier struct {
	provider llm.Provider
}

// NewLLMClassifier は新しいLLMClassifierを作成
func NewLLMClassifier(provider llm.Provider) *LLMClassifier {
	return &LLMClassifier{provider: provider}
}

// classificationResponse は分類応答のスキーマ
// 境界で明示的に検証し、フィールドの実行時探索はしない
type classificationResponse struct {
	Category   string  `json:"category"`
	Confidence float64 `json:"confidence"`
}

// Classify はテキストをカテゴリ分類
// バックエンド障害、またはスキーマ外・列挙外の応答はエラーを返す
func (c *LLMClassifier) Classify(ctx context.Context, text string) (routing.CategoryDecision, error) {
	req := llm.GenerateRequest{
		SystemPrompt: classificationSystemPrompt,
		Messages: []llm.Message{
			{Role: "user", Content: fmt.Sprintf("주문 내용: %s", text)},
		},
		MaxTokens:   100,
		Temperature: 0.0, // 分類は低温度で安定させる
	}

	resp, err := c.provider.Generate(ctx, req)
	if err != nil {
		return routing.CategoryDecision{}, fmt.Errorf("llm classification failed: %w", err)
	}

	decision, err := c.parseResponse(resp.Content)
	if err != nil {
		return routing.CategoryDecision{}, llm.NewBackendError(
			llm.BackendMalformedResponse, c.provider.Name(), err)
	}

	return decision, nil
}

// parseResponse は応答をCategoryDecisionにパース
func (c *LLMClassifier) parseResponse(content string) (routing.CategoryDecision, error) {
	cleaned := llm.StripCodeFences(content)
	if cleaned == "" {
		return routing.CategoryDecision{}, fmt.Errorf("empty classification response")
	}

	var parsed classificationResponse
	if err := json.Unmarshal([]byte(cleaned), &parsed); err != nil {
		// JSONでない場合は単語応答として救済を試みる
		if category, ok := routing.ParseCategory(cleaned); ok {
			return routing.NewCategoryDecision(
				category, 0.9, routing.SourceModel, "llm single-word classification"), nil
		}
		return routing.CategoryDecision{}, fmt.Errorf("unparseable classification response: %w", err)
	}

	category, ok := routing.ParseCategory(parsed.Category)
	if !ok {
		return routing.CategoryDecision{}, fmt.Errorf("category %q not in enumeration", parsed.Category)
	}

	confidence := parsed.Confidence
	if confidence <= 0 || confidence > 1 {
		confidence = 0.9
	}

	return routing.NewCategoryDecision(
		category, confidence, routing.SourceModel, "llm classification"), nil
}

// classificationSystemPrompt は分類用システムプロンプト
const classificationSystemPrompt = `당신은 카페 주문 분류기입니다. 주문 내용을 분석하여 가장 적절한 메뉴 카테고리를 선택하세요.

카테고리: beverage(음료), dessert(디저트), meal(식사)

JSON만 출력하세요:
{"category": "beverage", "confidence": 0.95}`
