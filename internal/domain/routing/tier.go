package routing

// ModelTier はモデル能力ティアを表す型（low < medium < high の順序付き列挙）
type ModelTier string

// ティアの定数定義
const (
	TierLow    ModelTier = "low"
	TierMedium ModelTier = "medium"
	TierHigh   ModelTier = "high"
)

// String はModelTierの文字列表現を返す
func (t ModelTier) String() string {
	return string(t)
}

// Rank はティアの順序値を返す（単調性の比較に使用）
func (t ModelTier) Rank() int {
	switch t {
	case TierLow:
		return 0
	case TierMedium:
		return 1
	case TierHigh:
		return 2
	}
	return -1
}

// ComplexitySignals は複雑度スコアリングの入力シグナル
type ComplexitySignals struct {
	LengthEstimate   int  // 入力長の概算（トークン相当）
	ConjunctionCount int  // 接続詞・複数項目の出現数
	QuantityCount    int  // 数量表現の出現数
	HasCustomization bool // カスタマイズ・比較表現の有無
	HasNegation      bool // 否定表現の有無
}

// TierDecision はモデルティア選択の結果を表す
type TierDecision struct {
	Tier    ModelTier         // 決定されたティア
	Score   float64           // 重み付きシグナル合計
	Signals ComplexitySignals // スコアを生んだシグナル
}

// NewTierDecision は新しいTierDecisionを作成
func NewTierDecision(tier ModelTier, score float64, signals ComplexitySignals) TierDecision {
	return TierDecision{
		Tier:    tier,
		Score:   score,
		Signals: signals,
	}
}
