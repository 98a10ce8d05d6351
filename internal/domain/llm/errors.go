package llm

import (
	"errors"
	"fmt"
)

// BackendErrorKind はバックエンド障害の種別を表す型
type BackendErrorKind string

// バックエンド障害種別の定数定義
// コアは4種別すべてを「このコールではバックエンド利用不可」として一様に扱う
const (
	BackendTimeout           BackendErrorKind = "timeout"
	BackendRateLimited       BackendErrorKind = "rate_limited"
	BackendUnreachable       BackendErrorKind = "unreachable"
	BackendMalformedResponse BackendErrorKind = "malformed_response"
)

// BackendError はLLMバックエンド呼び出しの失敗を表す
type BackendError struct {
	Kind     BackendErrorKind // 障害種別
	Provider string           // 発生したプロバイダー名
	Err      error            // 元のエラー
}

// Error はエラーメッセージを返す
func (e *BackendError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("llm backend %s: %s: %v", e.Provider, e.Kind, e.Err)
	}
	return fmt.Sprintf("llm backend %s: %s", e.Provider, e.Kind)
}

// Unwrap は元のエラーを返す
func (e *BackendError) Unwrap() error {
	return e.Err
}

// NewBackendError は新しいBackendErrorを作成
func NewBackendError(kind BackendErrorKind, provider string, err error) *BackendError {
	return &BackendError{Kind: kind, Provider: provider, Err: err}
}

// IsBackendError はエラーがBackendErrorかを判定
func IsBackendError(err error) bool {
	var be *BackendError
	return errors.As(err, &be)
}

// BackendKindOf はエラーからバックエンド障害種別を取得
func BackendKindOf(err error) (BackendErrorKind, bool) {
	var be *BackendError
	if errors.As(err, &be) {
		return be.Kind, true
	}
	return "", false
}
