package extract

import (
	"sort"
	"strings"
	"unicode"

	"github.com/Nyukimin/kiosk_multiLLM/internal/domain/catalog"
	"github.com/Nyukimin/kiosk_multiLLM/internal/domain/order"
)

// FallbackExtractor は決定論的なキーワードベースの注文抽出器
// 生成バックエンドの分類・抽出が失敗したときの回復経路として、
// ネットワーク呼び出しなしでカタログ照合のみで動作する
// 構造的には常に成功し、認識できない入力には空列を返す
type FallbackExtractor struct {
	catalog catalog.Catalog
}

// NewFallbackExtractor は新しいFallbackExtractorを作成
func NewFallbackExtractor(cat catalog.Catalog) *FallbackExtractor {
	return &FallbackExtractor{catalog: cat}
}

// Extract はテキストからカタログ項目を抽出
func (e *FallbackExtractor) Extract(text string) []order.Item {
	lower := strings.ToLower(text)
	if strings.TrimSpace(lower) == "" {
		return nil
	}

	size := detectSize(lower)
	temperature := detectTemperature(lower)

	type match struct {
		item catalog.Item
		pos  int
		term string
	}

	var matches []match
	seen := make(map[string]bool)

	// 全カテゴリのカタログ項目を名前・キーワードで照合
	for _, category := range e.catalog.Categories() {
		for _, item := range e.catalog.ItemsByCategory(category) {
			terms := append([]string{item.Name}, item.Keywords...)
			for _, term := range terms {
				termLower := strings.ToLower(term)
				pos := strings.Index(lower, termLower)
				if pos < 0 {
					continue
				}
				if seen[item.Name] {
					break
				}
				seen[item.Name] = true
				matches = append(matches, match{item: item, pos: pos, term: termLower})
				break
			}
		}
	}

	if len(matches) == 0 {
		return nil
	}

	// 出現順に並べる
	sort.Slice(matches, func(i, j int) bool {
		return matches[i].pos < matches[j].pos
	})

	items := make([]order.Item, 0, len(matches))
	for _, m := range matches {
		quantity := extractQuantityAfter(lower, m.pos+len(m.term))

		oi := order.Item{
			MenuName:  m.item.Name,
			Quantity:  quantity,
			UnitPrice: m.item.BasePrice,
		}
		if size != "" && m.item.HasSize(size) {
			oi.Size = size
			oi.UnitPrice = m.item.PriceFor(size)
		}
		if temperature != "" && m.item.HasTemperature(temperature) {
			oi.Temperature = temperature
		}

		items = append(items, oi)
	}

	return items
}

// extractQuantityAfter は照合位置の直後から数量を抽出
// 見つからない場合は1を返す
func extractQuantityAfter(text string, from int) int {
	if from >= len(text) {
		return 1
	}

	// 直後の短い窓だけを見る（他アイテムの数量を拾わないため）
	window := []rune(text[from:])
	if len(window) > 8 {
		window = window[:8]
	}

	// アラビア数字
	digits := ""
	for _, r := range window {
		if unicode.IsDigit(r) {
			digits += string(r)
			continue
		}
		if digits != "" {
			break
		}
	}
	if digits != "" {
		n := 0
		for _, r := range digits {
			n = n*10 + int(r-'0')
		}
		if n >= 1 && n <= 99 {
			return n
		}
		return 1
	}

	// 韓国語の数詞: 窓内で最初に現れた数量表現を採用する
	windowStr := string(window)
	bestPos := -1
	bestValue := 0
	for _, kn := range koreanNumerals {
		pos := 0
		for {
			rel := strings.Index(windowStr[pos:], kn.word)
			if rel < 0 {
				break
			}
			pos += rel
			if numeralIsQuantity(windowStr, pos, kn.word) {
				if bestPos < 0 || pos < bestPos {
					bestPos = pos
					bestValue = kn.value
				}
				break
			}
			pos += len(kn.word)
		}
	}
	if bestPos >= 0 {
		return bestValue
	}

	return 1
}

// numeralIsQuantity は数詞が数量表現として使われているかを判定する
// 語頭に立ち、かつ助数詞が後続するか単独の語であるものだけを数量とみなす
// （"주세요"の세のような語中の偶然一致を弾くため）
func numeralIsQuantity(s string, pos int, word string) bool {
	before := []rune(s[:pos])
	if len(before) > 0 && !isWordBoundary(before[len(before)-1]) {
		return false
	}

	after := s[pos+len(word):]
	if after == "" {
		return true
	}
	trimmed := strings.TrimLeft(after, " \t")
	for _, counter := range quantityCounters {
		if strings.HasPrefix(trimmed, counter) {
			return true
		}
	}
	r := []rune(after)
	return isWordBoundary(r[0])
}

func isWordBoundary(r rune) bool {
	return unicode.IsSpace(r) || unicode.IsPunct(r)
}

// quantityCounters は数量の数詞に後続する助数詞
var quantityCounters = []string{"잔", "개", "조각", "인분", "병", "컵"}

// koreanNumerals は数量表現として現れる韓国語数詞
var koreanNumerals = []struct {
	word  string
	value int
}{
	{"한", 1},
	{"두", 2},
	{"세", 3},
	{"네", 4},
	{"다섯", 5},
	{"여섯", 6},
	{"일곱", 7},
	{"여덟", 8},
	{"아홉", 9},
	{"열", 10},
}

// detectSize はテキストからサイズ指定を検出
func detectSize(lower string) catalog.SizeOption {
	switch {
	case strings.Contains(lower, "벤티") || strings.Contains(lower, "venti"):
		return catalog.SizeVenti
	case strings.Contains(lower, "그란데") || strings.Contains(lower, "grande"):
		return catalog.SizeGrande
	case strings.Contains(lower, "톨") || strings.Contains(lower, "tall"):
		return catalog.SizeTall
	}
	return ""
}

// detectTemperature はテキストから温度指定を検出
func detectTemperature(lower string) catalog.TemperatureOption {
	switch {
	case strings.Contains(lower, "아이스") || strings.Contains(lower, "ice") || strings.Contains(lower, "차가"):
		return catalog.TemperatureIce
	case strings.Contains(lower, "핫") || strings.Contains(lower, "hot") || strings.Contains(lower, "뜨거"):
		return catalog.TemperatureHot
	}
	return ""
}
