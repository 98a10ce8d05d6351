package routing

import (
	"strings"

	"github.com/Nyukimin/kiosk_multiLLM/internal/domain/routing"
)

// KeywordMatcher はキーワードベースのカテゴリ分類辞書
// 生成バックエンドを呼ぶ前の決定論的プレフィルタとして使う
type KeywordMatcher struct {
	keywords map[routing.Category][]string
}

// NewKeywordMatcher はデフォルト辞書を持つKeywordMatcherを作成
func NewKeywordMatcher() *KeywordMatcher {
	return &KeywordMatcher{
		keywords: map[routing.Category][]string{
			routing.CategoryBeverage: {
				"음료", "커피", "라떼", "아메리카노", "주스", "티", "차",
				"마시", "drink", "coffee", "음료수", "시원한", "따뜻한",
			},
			routing.CategoryDessert: {
				"디저트", "케이크", "빵", "쿠키", "마카롱", "와플", "달콤한",
				"dessert", "sweet", "간식", "후식", "타르트", "스콘",
			},
			routing.CategoryMeal: {
				"식사", "끼니", "샌드위치", "파스타", "샐러드", "피자",
				"meal", "food", "먹을", "배고", "점심", "저녁", "아침",
			},
		},
	}
}

// NewKeywordMatcherWithKeywords は辞書を指定してKeywordMatcherを作成
func NewKeywordMatcherWithKeywords(keywords map[routing.Category][]string) *KeywordMatcher {
	return &KeywordMatcher{keywords: keywords}
}

// Match はテキストをカテゴリ辞書と照合
// 一致キーワードがない場合はfalseを返す
func (m *KeywordMatcher) Match(text string) (routing.KeywordMatch, bool) {
	lower := strings.ToLower(text)

	scores := make(map[routing.Category]int, len(m.keywords))
	total := 0

	for category, keywords := range m.keywords {
		score := 0
		for _, keyword := range keywords {
			if strings.Contains(lower, strings.ToLower(keyword)) {
				score++
			}
		}
		scores[category] = score
		total += score
	}

	if total == 0 {
		return routing.KeywordMatch{}, false
	}

	// 最高スコアのカテゴリと同点の有無を判定
	best := routing.CategoryUnknown
	bestScore := 0
	tied := false
	for _, category := range []routing.Category{
		routing.CategoryBeverage, routing.CategoryDessert, routing.CategoryMeal,
	} {
		score := scores[category]
		if score > bestScore {
			best = category
			bestScore = score
			tied = false
		} else if score == bestScore && score > 0 {
			tied = true
		}
	}

	return routing.KeywordMatch{
		Category:   best,
		Confidence: float64(bestScore) / float64(total),
		Tied:       tied,
	}, true
}
