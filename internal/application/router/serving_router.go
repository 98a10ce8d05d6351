package router

import (
	"context"
	"log/slog"
	"strings"

	"github.com/Nyukimin/kiosk_multiLLM/internal/domain/llm"
	"github.com/Nyukimin/kiosk_multiLLM/internal/domain/routing"
)

// EndpointPolicy は機微度ごとのエンドポイント方針
type EndpointPolicy string

// ポリシーの定数定義
const (
	PolicyCloud          EndpointPolicy = "cloud"           // 常にクラウド
	PolicyLocalPreferred EndpointPolicy = "local_preferred" // ローカル優先、不可ならクラウドへ降格
)

// ServingRouter は機微度とローカル可用性からエンドポイントを選択する
type ServingRouter struct {
	probe  llm.LivenessProbe
	policy map[routing.Sensitivity]EndpointPolicy
	logger *slog.Logger
}

// NewServingRouter は新しいServingRouterを作成
func NewServingRouter(probe llm.LivenessProbe, policy map[routing.Sensitivity]EndpointPolicy, logger *slog.Logger) *ServingRouter {
	if logger == nil {
		logger = slog.Default()
	}
	if policy == nil {
		policy = DefaultPolicy()
	}
	return &ServingRouter{
		probe:  probe,
		policy: policy,
		logger: logger,
	}
}

// DefaultPolicy は既定のポリシーテーブルを返す
// 低・中機微度は常にクラウド（クラウドの方が高性能）、高機微度はローカル優先
func DefaultPolicy() map[routing.Sensitivity]EndpointPolicy {
	return map[routing.Sensitivity]EndpointPolicy{
		routing.SensitivityLow:    PolicyCloud,
		routing.SensitivityMedium: PolicyCloud,
		routing.SensitivityHigh:   PolicyLocalPreferred,
	}
}

// SelectEndpoint はエンドポイントを選択する
// ヒント未指定の場合はテキストから機微度を検出する（該当なしはlow）
// 高機微度でローカル不可の場合は必ずクラウドへ降格し、エラーにはしない
func (r *ServingRouter) SelectEndpoint(ctx context.Context, text string, hint routing.Sensitivity) routing.ServingDecision {
	sensitivity := hint
	if !sensitivity.IsValid() {
		sensitivity = DetectSensitivity(text)
	}

	policy, ok := r.policy[sensitivity]
	if !ok {
		policy = PolicyCloud
	}

	if policy != PolicyLocalPreferred {
		return routing.NewServingDecision(
			routing.EndpointCloud, sensitivity, false, false,
			"non-sensitive traffic always routes to cloud")
	}

	// ローカル優先: 決定時点の可用性を確認
	available := r.probe.Available(ctx)
	if available {
		return routing.NewServingDecision(
			routing.EndpointLocal, sensitivity, true, false,
			"high sensitivity, local endpoint available")
	}

	r.logger.Warn("high sensitivity but local endpoint unavailable, degrading to cloud",
		"sensitivity", sensitivity.String())

	return routing.NewServingDecision(
		routing.EndpointCloud, sensitivity, false, true,
		"high sensitivity but local unavailable, degraded to cloud")
}

// sensitiveKeywords は個人情報関連のキーワード
var sensitiveKeywords = []string{
	"전화번호", "주소", "이메일", "카드", "계좌",
	"주민등록", "비밀번호", "개인정보",
	"phone", "address", "email", "card", "password",
	"personal", "private", "confidential",
}

// DetectSensitivity はテキストから機微度を検出
// 機微キーワードが2つ以上でhigh、1つでmedium、なしでlow
func DetectSensitivity(text string) routing.Sensitivity {
	lower := strings.ToLower(text)

	count := 0
	for _, keyword := range sensitiveKeywords {
		if strings.Contains(lower, keyword) {
			count++
		}
	}

	switch {
	case count >= 2:
		return routing.SensitivityHigh
	case count == 1:
		return routing.SensitivityMedium
	}
	return routing.SensitivityLow
}
