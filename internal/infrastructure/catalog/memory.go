package catalog

import (
	"strings"

	"github.com/Nyukimin/kiosk_multiLLM/internal/domain/catalog"
	"github.com/Nyukimin/kiosk_multiLLM/internal/domain/routing"
)

// MemoryCatalog はインメモリのメニューカタログ実装
// 構築後は読み取り専用で、並行参照に対して安全
type MemoryCatalog struct {
	items   []catalog.Item
	byName  map[string]int
	byAlias map[string]int
}

// NewMemoryCatalog はデフォルトメニューを持つMemoryCatalogを作成
func NewMemoryCatalog() *MemoryCatalog {
	return NewMemoryCatalogWithItems(defaultMenu())
}

// NewMemoryCatalogWithItems は指定アイテムでMemoryCatalogを作成
func NewMemoryCatalogWithItems(items []catalog.Item) *MemoryCatalog {
	c := &MemoryCatalog{
		items:   items,
		byName:  make(map[string]int, len(items)),
		byAlias: make(map[string]int),
	}

	for i, item := range items {
		c.byName[normalizeTerm(item.Name)] = i
		for _, kw := range item.Keywords {
			// 先勝ち: 同じ別名が複数アイテムに付いた場合は先のアイテムを優先
			key := normalizeTerm(kw)
			if _, exists := c.byAlias[key]; !exists {
				c.byAlias[key] = i
			}
		}
	}

	return c
}

// Lookup はメニュー名またはキーワードからアイテムを検索
func (c *MemoryCatalog) Lookup(term string) (catalog.Item, bool) {
	key := normalizeTerm(term)
	if key == "" {
		return catalog.Item{}, false
	}

	if i, ok := c.byName[key]; ok {
		return c.items[i], true
	}
	if i, ok := c.byAlias[key]; ok {
		return c.items[i], true
	}

	return catalog.Item{}, false
}

// Categories は全カテゴリラベルを返す
func (c *MemoryCatalog) Categories() []routing.Category {
	return []routing.Category{
		routing.CategoryBeverage,
		routing.CategoryDessert,
		routing.CategoryMeal,
	}
}

// ItemsByCategory はカテゴリに属する提供可能アイテムを返す
func (c *MemoryCatalog) ItemsByCategory(category routing.Category) []catalog.Item {
	var result []catalog.Item
	for _, item := range c.items {
		if item.Category == category && item.Available {
			result = append(result, item)
		}
	}
	return result
}

// normalizeTerm は検索語を比較用に正規化
func normalizeTerm(term string) string {
	return strings.ToLower(strings.TrimSpace(term))
}

// allSizes は標準3サイズ
var allSizes = []catalog.SizeOption{catalog.SizeTall, catalog.SizeGrande, catalog.SizeVenti}

// hotIce は温冷両対応
var hotIce = []catalog.TemperatureOption{catalog.TemperatureHot, catalog.TemperatureIce}

// iceOnly は冷たい飲み物専用
var iceOnly = []catalog.TemperatureOption{catalog.TemperatureIce}

// defaultMenu はデフォルトのカフェメニューを返す
func defaultMenu() []catalog.Item {
	return []catalog.Item{
		// 음료
		{
			Name: "아메리카노", Category: routing.CategoryBeverage, BasePrice: 4500,
			Description: "진한 에스프레소에 물을 더한 클래식 커피", Available: true,
			Sizes: allSizes, Temperatures: hotIce,
			Keywords: []string{"americano", "아메"},
		},
		{
			Name: "카페라떼", Category: routing.CategoryBeverage, BasePrice: 5000,
			Description: "부드러운 우유와 에스프레소의 조화", Available: true,
			Sizes: allSizes, Temperatures: hotIce,
			Keywords: []string{"latte", "라떼", "라테"},
		},
		{
			Name: "카푸치노", Category: routing.CategoryBeverage, BasePrice: 5000,
			Description: "풍성한 우유 거품이 특징인 이탈리안 커피", Available: true,
			Sizes: allSizes, Temperatures: hotIce,
			Keywords: []string{"cappuccino"},
		},
		{
			Name: "바닐라라떼", Category: routing.CategoryBeverage, BasePrice: 5500,
			Description: "달콤한 바닐라 시럽이 들어간 라떼", Available: true,
			Sizes: allSizes, Temperatures: hotIce,
			Keywords: []string{"vanilla latte", "바닐라"},
		},
		{
			Name: "카라멜마끼아또", Category: routing.CategoryBeverage, BasePrice: 5800,
			Description: "달콤한 카라멜과 에스프레소의 만남", Available: true,
			Sizes: allSizes, Temperatures: hotIce,
			Keywords: []string{"caramel macchiato", "카라멜", "마끼아또"},
		},
		{
			Name: "아이스티", Category: routing.CategoryBeverage, BasePrice: 4000,
			Description: "상큼한 레몬 아이스티", Available: true,
			Sizes: allSizes, Temperatures: iceOnly,
			Keywords: []string{"ice tea", "iced tea"},
		},
		{
			Name: "오렌지주스", Category: routing.CategoryBeverage, BasePrice: 5500,
			Description: "신선한 오렌지로 만든 착즙 주스", Available: true,
			Sizes: []catalog.SizeOption{catalog.SizeTall, catalog.SizeGrande}, Temperatures: iceOnly,
			Keywords: []string{"orange juice", "주스", "오렌지"},
		},
		{
			Name: "그린티라떼", Category: routing.CategoryBeverage, BasePrice: 5500,
			Description: "고소한 녹차와 우유의 조화", Available: true,
			Sizes: allSizes, Temperatures: hotIce,
			Keywords: []string{"green tea latte", "녹차라떼", "그린티"},
		},

		// 디저트
		{
			Name: "케이크", Category: routing.CategoryDessert, BasePrice: 6000,
			Description: "촉촉한 초콜릿 케이크", Available: true,
			Keywords: []string{"cake", "초코케이크"},
		},
		{
			Name: "치즈케이크", Category: routing.CategoryDessert, BasePrice: 6500,
			Description: "부드러운 뉴욕 스타일 치즈케이크", Available: true,
			Keywords: []string{"cheesecake", "치즈"},
		},
		{
			Name: "마카롱", Category: routing.CategoryDessert, BasePrice: 3000,
			Description: "프랑스 전통 마카롱 (5개입)", Available: true,
			Keywords: []string{"macaron"},
		},
		{
			Name: "쿠키", Category: routing.CategoryDessert, BasePrice: 2500,
			Description: "바삭한 초콜릿칩 쿠키", Available: true,
			Keywords: []string{"cookie"},
		},
		{
			Name: "와플", Category: routing.CategoryDessert, BasePrice: 7000,
			Description: "벨기에 스타일 와플", Available: true,
			Keywords: []string{"waffle"},
		},
		{
			Name: "타르트", Category: routing.CategoryDessert, BasePrice: 6500,
			Description: "신선한 과일 타르트", Available: true,
			Keywords: []string{"tart"},
		},
		{
			Name: "브라우니", Category: routing.CategoryDessert, BasePrice: 4500,
			Description: "진한 초콜릿 브라우니", Available: true,
			Keywords: []string{"brownie"},
		},
		{
			Name: "스콘", Category: routing.CategoryDessert, BasePrice: 3500,
			Description: "영국식 스콘 (잼&크림 포함)", Available: true,
			Keywords: []string{"scone"},
		},

		// 식사
		{
			Name: "샌드위치", Category: routing.CategoryMeal, BasePrice: 8000,
			Description: "신선한 야채와 햄이 들어간 클럽 샌드위치", Available: true,
			Keywords: []string{"sandwich"},
		},
		{
			Name: "베이글", Category: routing.CategoryMeal, BasePrice: 7000,
			Description: "크림치즈를 곁들인 베이글", Available: true,
			Keywords: []string{"bagel"},
		},
		{
			Name: "샐러드", Category: routing.CategoryMeal, BasePrice: 9000,
			Description: "신선한 채소와 닭가슴살 샐러드", Available: true,
			Keywords: []string{"salad"},
		},
		{
			Name: "파스타", Category: routing.CategoryMeal, BasePrice: 12000,
			Description: "토마토 소스 파스타", Available: true,
			Keywords: []string{"pasta"},
		},
		{
			Name: "리조또", Category: routing.CategoryMeal, BasePrice: 13000,
			Description: "크리미한 버섯 리조또", Available: true,
			Keywords: []string{"risotto"},
		},
		{
			Name: "피자", Category: routing.CategoryMeal, BasePrice: 15000,
			Description: "마르게리타 피자 (1판)", Available: true,
			Keywords: []string{"pizza"},
		},
		{
			Name: "크로와상", Category: routing.CategoryMeal, BasePrice: 4000,
			Description: "버터 크로와상", Available: true,
			Keywords: []string{"croissant"},
		},
		{
			Name: "프렌치토스트", Category: routing.CategoryMeal, BasePrice: 8500,
			Description: "시나몬 프렌치토스트", Available: true,
			Keywords: []string{"french toast", "토스트"},
		},
	}
}
