package order

import (
	"errors"
	"fmt"
)

// ErrorKind は注文処理エラーの分類を表す型
type ErrorKind string

// エラー分類の定数定義
const (
	KindValidation  ErrorKind = "validation"   // 不正なリクエスト
	KindBackend     ErrorKind = "backend"      // バックエンド障害（フォールバック不成立）
	KindExtraction  ErrorKind = "extraction"   // 応答は得られたが有効な項目が0件
	KindTimeout     ErrorKind = "timeout"      // バッチ/項目のデッドライン超過
	KindCatalogMiss ErrorKind = "catalog_miss" // 抽出語がカタログで解決不能
)

// Error は注文処理の失敗を表す
// 呼び出し側のリトライや手動対応に必要な分類と元テキストを保持する
type Error struct {
	Kind ErrorKind // エラー分類
	Text string    // 元の注文テキスト
	Err  error     // 元のエラー
}

// Error はエラーメッセージを返す
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("order %s: %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("order %s", e.Kind)
}

// Unwrap は元のエラーを返す
func (e *Error) Unwrap() error {
	return e.Err
}

// NewError は新しいErrorを作成
func NewError(kind ErrorKind, text string, err error) *Error {
	return &Error{Kind: kind, Text: text, Err: err}
}

// KindOf はエラーから分類を取得
func KindOf(err error) (ErrorKind, bool) {
	var oe *Error
	if errors.As(err, &oe) {
		return oe.Kind, true
	}
	return "", false
}
