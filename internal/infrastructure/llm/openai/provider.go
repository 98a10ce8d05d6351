package openai

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"

	"github.com/Nyukimin/kiosk_multiLLM/internal/domain/llm"
)

// OpenAIProvider はOpenAI APIプロバイダーの実装（クラウドエンドポイント）
type OpenAIProvider struct {
	client openai.Client
	model  string
}

// NewOpenAIProvider は新しいOpenAIProviderを作成
func NewOpenAIProvider(apiKey, model string, timeout time.Duration) *OpenAIProvider {
	opts := []option.RequestOption{
		option.WithAPIKey(apiKey),
	}
	if timeout > 0 {
		opts = append(opts, option.WithRequestTimeout(timeout))
	}

	return &OpenAIProvider{
		client: openai.NewClient(opts...),
		model:  model,
	}
}

// NewOpenAIProviderWithBaseURL はベースURLを指定してOpenAIProviderを作成（テスト用）
func NewOpenAIProviderWithBaseURL(apiKey, model, baseURL string) *OpenAIProvider {
	return &OpenAIProvider{
		client: openai.NewClient(
			option.WithAPIKey(apiKey),
			option.WithBaseURL(baseURL),
		),
		model: model,
	}
}

// Generate はLLM生成を実行
func (p *OpenAIProvider) Generate(ctx context.Context, req llm.GenerateRequest) (llm.GenerateResponse, error) {
	params := openai.ChatCompletionNewParams{
		Model:    openai.ChatModel(p.model),
		Messages: p.convertMessages(req),
	}

	if req.MaxTokens > 0 {
		params.MaxCompletionTokens = openai.Int(int64(req.MaxTokens))
	}
	if req.Temperature > 0 {
		params.Temperature = openai.Float(req.Temperature)
	}

	completion, err := p.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return llm.GenerateResponse{}, p.classifyError(err)
	}

	if len(completion.Choices) == 0 {
		return llm.GenerateResponse{}, llm.NewBackendError(
			llm.BackendMalformedResponse, p.Name(), fmt.Errorf("no choices in response"))
	}

	choice := completion.Choices[0]

	return llm.GenerateResponse{
		Content:      choice.Message.Content,
		TokensUsed:   int(completion.Usage.TotalTokens),
		FinishReason: string(choice.FinishReason),
	}, nil
}

// Name はプロバイダー名を返す
func (p *OpenAIProvider) Name() string {
	return fmt.Sprintf("openai-%s", p.model)
}

// convertMessages はドメインメッセージをSDKの形式に変換
func (p *OpenAIProvider) convertMessages(req llm.GenerateRequest) []openai.ChatCompletionMessageParamUnion {
	messages := make([]openai.ChatCompletionMessageParamUnion, 0, len(req.Messages)+1)

	if req.SystemPrompt != "" {
		messages = append(messages, openai.SystemMessage(req.SystemPrompt))
	}

	for _, msg := range req.Messages {
		switch msg.Role {
		case "assistant":
			messages = append(messages, openai.AssistantMessage(msg.Content))
		case "system":
			messages = append(messages, openai.SystemMessage(msg.Content))
		default:
			messages = append(messages, openai.UserMessage(msg.Content))
		}
	}

	return messages
}

// classifyError はSDKのエラーをBackendErrorに分類
func (p *OpenAIProvider) classifyError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return llm.NewBackendError(llm.BackendTimeout, p.Name(), err)
	}

	var apiErr *openai.Error
	if errors.As(err, &apiErr) {
		switch apiErr.StatusCode {
		case http.StatusTooManyRequests:
			return llm.NewBackendError(llm.BackendRateLimited, p.Name(), err)
		case http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
			return llm.NewBackendError(llm.BackendUnreachable, p.Name(), err)
		default:
			return llm.NewBackendError(llm.BackendMalformedResponse, p.Name(), err)
		}
	}

	return llm.NewBackendError(llm.BackendUnreachable, p.Name(), err)
}
