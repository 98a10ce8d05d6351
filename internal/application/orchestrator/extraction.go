package orchestrator

import (
	"encoding/json"
	"fmt"

	"github.com/Nyukimin/kiosk_multiLLM/internal/domain/catalog"
	"github.com/Nyukimin/kiosk_multiLLM/internal/domain/llm"
	"github.com/Nyukimin/kiosk_multiLLM/internal/domain/order"
)

// extractionResponse は抽出応答のスキーマ
// 境界で明示的に検証し、フィールドの実行時探索はしない
type extractionResponse struct {
	Items []extractedItem `json:"items"`
}

// extractedItem は抽出された1項目
type extractedItem struct {
	Menu        string   `json:"menu"`
	Quantity    int      `json:"quantity"`
	Size        string   `json:"size"`
	Temperature string   `json:"temperature"`
	Options     []string `json:"options"`
}

// parseExtractionResponse はバックエンド応答を注文項目列にパース
// スキーマに合わない応答はエラーを返し、呼び出し側がフォールバックへ切り替える
func parseExtractionResponse(content string) ([]order.Item, error) {
	cleaned := llm.StripCodeFences(content)
	if cleaned == "" {
		return nil, fmt.Errorf("empty extraction response")
	}

	var parsed extractionResponse
	if err := json.Unmarshal([]byte(cleaned), &parsed); err != nil {
		return nil, fmt.Errorf("unparseable extraction response: %w", err)
	}

	if len(parsed.Items) == 0 {
		return nil, fmt.Errorf("extraction response has no items")
	}

	items := make([]order.Item, 0, len(parsed.Items))
	for _, e := range parsed.Items {
		if e.Menu == "" {
			continue
		}

		quantity := e.Quantity
		if quantity < 1 {
			quantity = 1
		}

		items = append(items, order.Item{
			MenuName:    e.Menu,
			Quantity:    quantity,
			Size:        catalog.ParseSize(e.Size),
			Temperature: catalog.ParseTemperature(e.Temperature),
			Options:     e.Options,
		})
	}

	if len(items) == 0 {
		return nil, fmt.Errorf("extraction response has no usable items")
	}

	return items, nil
}
