package catalog

import "github.com/Nyukimin/kiosk_multiLLM/internal/domain/routing"

// SizeOption はサイズオプションを表す型
type SizeOption string

// サイズオプションの定数定義
const (
	SizeTall   SizeOption = "Tall"
	SizeGrande SizeOption = "Grande"
	SizeVenti  SizeOption = "Venti"
)

// TemperatureOption は温度オプションを表す型
type TemperatureOption string

// 温度オプションの定数定義
const (
	TemperatureHot TemperatureOption = "Hot"
	TemperatureIce TemperatureOption = "Ice"
)

// Item はカタログ上のメニューアイテムを表す値オブジェクト
type Item struct {
	Name         string              // メニュー名（例: 아메리카노）
	Category     routing.Category    // 所属カテゴリ
	BasePrice    int                 // 基本価格（ウォン）
	Description  string              // 説明
	Available    bool                // 提供可能か
	Sizes        []SizeOption        // 選択可能サイズ
	Temperatures []TemperatureOption // 選択可能温度
	Keywords     []string            // マッチング用キーワード（韓国語・英語）
}

// PriceFor はサイズに応じた価格を返す
func (i Item) PriceFor(size SizeOption) int {
	price := i.BasePrice
	switch size {
	case SizeGrande:
		price += 500
	case SizeVenti:
		price += 1000
	}
	return price
}

// HasSize はサイズが選択可能かを判定
func (i Item) HasSize(size SizeOption) bool {
	for _, s := range i.Sizes {
		if s == size {
			return true
		}
	}
	return false
}

// HasTemperature は温度が選択可能かを判定
func (i Item) HasTemperature(temp TemperatureOption) bool {
	for _, t := range i.Temperatures {
		if t == temp {
			return true
		}
	}
	return false
}

// Catalog はメニューカタログへの読み取り専用アクセスを抽象化
// 実装はバッチ処理中に変更されない前提で、並行参照に対して安全であること
type Catalog interface {
	// Lookup はメニュー名またはキーワードからアイテムを検索
	Lookup(term string) (Item, bool)
	// Categories は全カテゴリラベルを返す
	Categories() []routing.Category
	// ItemsByCategory はカテゴリに属する提供可能アイテムを返す
	ItemsByCategory(category routing.Category) []Item
}
