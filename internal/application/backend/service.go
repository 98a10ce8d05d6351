package backend

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Nyukimin/kiosk_multiLLM/internal/domain/llm"
	"github.com/Nyukimin/kiosk_multiLLM/internal/domain/routing"
)

// Service は生成バックエンドへの統合窓口
// エンドポイント決定とティア決定に応じてプロバイダーを振り分ける
type Service struct {
	cloud  map[routing.ModelTier]llm.Provider // ティアごとのクラウドプロバイダー
	local  llm.Provider                       // ローカルプロバイダー（無効時はnil）
	logger *slog.Logger
}

// NewService は新しいServiceを作成
func NewService(cloud map[routing.ModelTier]llm.Provider, local llm.Provider, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		cloud:  cloud,
		local:  local,
		logger: logger,
	}
}

// Generate は選択されたティア・エンドポイントで生成を実行
func (s *Service) Generate(ctx context.Context, tier routing.ModelTier, endpoint routing.Endpoint, req llm.GenerateRequest) (llm.GenerateResponse, error) {
	provider, err := s.providerFor(tier, endpoint)
	if err != nil {
		return llm.GenerateResponse{}, err
	}

	s.logger.Debug("dispatching generation",
		"provider", provider.Name(),
		"tier", tier.String(),
		"endpoint", endpoint.String())

	return provider.Generate(ctx, req)
}

// providerFor はティア・エンドポイントに対応するプロバイダーを返す
func (s *Service) providerFor(tier routing.ModelTier, endpoint routing.Endpoint) (llm.Provider, error) {
	if endpoint == routing.EndpointLocal {
		if s.local != nil {
			return s.local, nil
		}
		// ローカルが構成されていない場合はクラウドへ委譲
		s.logger.Warn("local endpoint requested but not configured, using cloud")
	}

	if provider, ok := s.cloud[tier]; ok {
		return provider, nil
	}

	return nil, llm.NewBackendError(llm.BackendUnreachable, "dispatch",
		fmt.Errorf("no provider configured for tier %s", tier))
}
