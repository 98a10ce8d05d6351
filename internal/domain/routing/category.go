package routing

import "strings"

// Category はメニューカテゴリを表す型
type Category string

// カテゴリの定数定義（閉じた列挙）
const (
	CategoryBeverage Category = "beverage" // 음료
	CategoryDessert  Category = "dessert"  // 디저트
	CategoryMeal     Category = "meal"     // 식사
	CategoryUnknown  Category = "unknown"  // 判定不能
)

// String はCategoryの文字列表現を返す
func (c Category) String() string {
	return string(c)
}

// IsValid は既知のカテゴリかを判定
func (c Category) IsValid() bool {
	switch c {
	case CategoryBeverage, CategoryDessert, CategoryMeal, CategoryUnknown:
		return true
	}
	return false
}

// DecisionSource は分類結果の出所を表す型
type DecisionSource string

// 分類ソースの定数定義
const (
	SourceHeuristic DecisionSource = "heuristic" // キーワード辞書による高速分類
	SourceModel     DecisionSource = "model"     // 生成モデルによる分類
	SourceFallback  DecisionSource = "fallback"  // バックエンド失敗時のフォールバック
)

// CategoryDecision はカテゴリ分類の結果を表す
type CategoryDecision struct {
	Category   Category       // 決定されたカテゴリ
	Confidence float64        // 確信度（0.0 - 1.0）
	Source     DecisionSource // 分類の出所
	Reason     string         // 決定理由
}

// NewCategoryDecision は新しいCategoryDecisionを作成
// 確信度は[0,1]にクランプし、未知のカテゴリはunknownに正規化する
func NewCategoryDecision(category Category, confidence float64, source DecisionSource, reason string) CategoryDecision {
	if !category.IsValid() {
		category = CategoryUnknown
	}
	if confidence < 0.0 {
		confidence = 0.0
	}
	if confidence > 1.0 {
		confidence = 1.0
	}
	return CategoryDecision{
		Category:   category,
		Confidence: confidence,
		Source:     source,
		Reason:     reason,
	}
}

// UnknownDecision は判定不能を表すCategoryDecisionを作成
func UnknownDecision(source DecisionSource, reason string) CategoryDecision {
	return NewCategoryDecision(CategoryUnknown, 0.0, source, reason)
}

// ParseCategory は文字列をCategoryにパース
// 韓国語・英語の両表記を受け付ける。未知の表記はunknownとfalseを返す
func ParseCategory(s string) (Category, bool) {
	switch normalizeCategoryLabel(s) {
	case "beverage", "음료", "drink":
		return CategoryBeverage, true
	case "dessert", "디저트":
		return CategoryDessert, true
	case "meal", "식사", "food":
		return CategoryMeal, true
	}
	return CategoryUnknown, false
}

// normalizeCategoryLabel はカテゴリ表記を比較用に正規化
func normalizeCategoryLabel(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// KeywordMatch はキーワードプレフィルタの照合結果
type KeywordMatch struct {
	Category   Category // 最高スコアのカテゴリ
	Confidence float64  // 最高スコア / 総スコア
	Tied       bool     // 最高スコアが複数カテゴリで並んだ場合true
}
