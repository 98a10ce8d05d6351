package routing

import "strings"

// Endpoint は実行エンドポイントを表す型
type Endpoint string

// エンドポイントの定数定義
const (
	EndpointCloud Endpoint = "cloud"
	EndpointLocal Endpoint = "local"
)

// String はEndpointの文字列表現を返す
func (e Endpoint) String() string {
	return string(e)
}

// Sensitivity はリクエスト内容の機微度を表す型
type Sensitivity string

// 機微度の定数定義
const (
	SensitivityLow    Sensitivity = "low"
	SensitivityMedium Sensitivity = "medium"
	SensitivityHigh   Sensitivity = "high"
	SensitivityUnset  Sensitivity = "" // 呼び出し側がヒントを指定しない場合
)

// String はSensitivityの文字列表現を返す
func (s Sensitivity) String() string {
	return string(s)
}

// IsValid は既知の機微度かを判定（未指定は含まない）
func (s Sensitivity) IsValid() bool {
	switch s {
	case SensitivityLow, SensitivityMedium, SensitivityHigh:
		return true
	}
	return false
}

// ParseSensitivity は文字列をSensitivityにパース
func ParseSensitivity(s string) (Sensitivity, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "low":
		return SensitivityLow, true
	case "medium":
		return SensitivityMedium, true
	case "high":
		return SensitivityHigh, true
	}
	return SensitivityUnset, false
}

// ServingDecision はサービングエンドポイント選択の結果を表す
type ServingDecision struct {
	Endpoint       Endpoint    // 決定されたエンドポイント
	Sensitivity    Sensitivity // 評価された機微度
	LocalAvailable bool        // 決定時点のローカル可用性
	Degraded       bool        // 高機微度でローカル不可によりクラウドへ降格した場合true
	Reason         string      // 決定理由
}

// NewServingDecision は新しいServingDecisionを作成
func NewServingDecision(endpoint Endpoint, sensitivity Sensitivity, localAvailable, degraded bool, reason string) ServingDecision {
	return ServingDecision{
		Endpoint:       endpoint,
		Sensitivity:    sensitivity,
		LocalAvailable: localAvailable,
		Degraded:       degraded,
		Reason:         reason,
	}
}
