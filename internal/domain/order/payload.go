package order

import (
	"github.com/Nyukimin/kiosk_multiLLM/internal/domain/catalog"
	"github.com/Nyukimin/kiosk_multiLLM/internal/domain/routing"
)

// Item は注文された1メニュー項目を表す
type Item struct {
	MenuName    string                    // カタログ上のメニュー名
	Quantity    int                       // 数量（1以上）
	Size        catalog.SizeOption        // サイズ（空の場合は指定なし）
	Temperature catalog.TemperatureOption // 温度（空の場合は指定なし）
	Options     []string                  // 追加オプション
	UnitPrice   int                       // 単価（サイズ込み）
}

// Subtotal は項目の小計を返す
func (i Item) Subtotal() int {
	return i.UnitPrice * i.Quantity
}

// Payload は注文処理の成功結果を表す
type Payload struct {
	OrderID    OrderID                  // 注文ID
	Items      []Item                   // 確定した注文項目
	Category   routing.CategoryDecision // カテゴリ分類結果
	Tier       routing.TierDecision     // モデルティア選択結果
	Serving    routing.ServingDecision  // サービング選択結果
	Suggestion string                   // おすすめメッセージ（空の場合あり）
}

// TotalAmount は注文合計金額を返す
func (p Payload) TotalAmount() int {
	total := 0
	for _, item := range p.Items {
		total += item.Subtotal()
	}
	return total
}

// ItemCount は注文項目の総数量を返す
func (p Payload) ItemCount() int {
	count := 0
	for _, item := range p.Items {
		count += item.Quantity
	}
	return count
}
