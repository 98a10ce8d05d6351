package router

import (
	"strings"
	"unicode"

	"github.com/Nyukimin/kiosk_multiLLM/internal/domain/routing"
)

// TierThresholds はティア選択の閾値と重み
// ビジネスロジック定数ではなく設定として注入する
type TierThresholds struct {
	LengthWeight        float64
	ConjunctionWeight   float64
	QuantityWeight      float64
	CustomizationWeight float64
	NegationWeight      float64
	MediumThreshold     float64
	HighThreshold       float64
}

// ModelRouter は複雑度シグナルからモデルティアを選択する
// 純粋関数であり、ネットワーク呼び出しは一切行わない
type ModelRouter struct {
	thresholds TierThresholds
}

// NewModelRouter は新しいModelRouterを作成
func NewModelRouter(thresholds TierThresholds) *ModelRouter {
	return &ModelRouter{thresholds: thresholds}
}

// SelectTier はテキストの複雑度からティアを決定
// 重み付きシグナル合計が同じなら常に同じティアを返し、
// 合計が大きいほど低いティアにはならない（単調性）
func (r *ModelRouter) SelectTier(text string) routing.TierDecision {
	signals := AnalyzeComplexity(text)
	score := r.score(signals)

	tier := routing.TierLow
	switch {
	case score >= r.thresholds.HighThreshold:
		tier = routing.TierHigh
	case score >= r.thresholds.MediumThreshold:
		tier = routing.TierMedium
	}

	return routing.NewTierDecision(tier, score, signals)
}

// score はシグナルの重み付き合計を計算
func (r *ModelRouter) score(s routing.ComplexitySignals) float64 {
	score := r.thresholds.LengthWeight * float64(s.LengthEstimate)
	score += r.thresholds.ConjunctionWeight * float64(s.ConjunctionCount)
	score += r.thresholds.QuantityWeight * float64(s.QuantityCount)
	if s.HasCustomization {
		score += r.thresholds.CustomizationWeight
	}
	if s.HasNegation {
		score += r.thresholds.NegationWeight
	}
	return score
}

// AnalyzeComplexity はテキストから複雑度シグナルを抽出
func AnalyzeComplexity(text string) routing.ComplexitySignals {
	lower := strings.ToLower(text)

	return routing.ComplexitySignals{
		LengthEstimate:   len([]rune(text)),
		ConjunctionCount: countOccurrences(lower, conjunctionTerms),
		QuantityCount:    countQuantities(lower),
		HasCustomization: containsAny(lower, customizationTerms),
		HasNegation:      containsAny(lower, negationTerms),
	}
}

// conjunctionTerms は複数項目を示す接続表現
var conjunctionTerms = []string{
	"이랑", "하고", "그리고", "함께", "같이", " and ", ",",
}

// customizationTerms はカスタマイズ・比較を示す表現
var customizationTerms = []string{
	"추가", "변경", "대신", "커스텀", "샷", "시럽", "휘핑",
	"덜 ", "더 ", "연하게", "진하게", "보다", "비교", "차이",
	"extra", "custom", "compare",
}

// negationTerms は否定を示す表現
var negationTerms = []string{
	"말고", "빼고", "빼주", "없이", "제외", "않", "안 ",
	"no ", "not ", "without",
}

// countOccurrences は各語の出現数を合計
func countOccurrences(text string, terms []string) int {
	count := 0
	for _, term := range terms {
		count += strings.Count(text, term)
	}
	return count
}

// countQuantities は数量表現の個数を数える
func countQuantities(text string) int {
	count := 0

	// アラビア数字のグループ
	inDigits := false
	for _, r := range text {
		if unicode.IsDigit(r) {
			if !inDigits {
				count++
				inDigits = true
			}
			continue
		}
		inDigits = false
	}

	// 韓国語の数量表現（数詞 + 助数詞）
	for _, counter := range []string{"잔", "개", "조각", "인분"} {
		count += strings.Count(text, counter)
	}

	return count
}

// containsAny はいずれかの語を含むかを判定
func containsAny(text string, terms []string) bool {
	for _, term := range terms {
		if strings.Contains(text, term) {
			return true
		}
	}
	return false
}
