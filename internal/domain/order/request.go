package order

import (
	"time"

	"github.com/Nyukimin/kiosk_multiLLM/internal/domain/routing"
)

// Request は1件の注文リクエストを表す値オブジェクト
// 作成後は変更されず、作成したオーケストレーション呼び出しが排他的に所有する
type Request struct {
	id              OrderID
	text            string
	locale          string
	sensitivityHint routing.Sensitivity // 未指定の場合はSensitivityUnset
	timeout         time.Duration       // 0の場合は呼び出し側タイムアウトなし
}

// NewRequest は新しいRequestを作成
func NewRequest(text string) Request {
	return Request{
		id:   NewOrderID(),
		text: text,
	}
}

// ID は注文IDを返す
func (r Request) ID() OrderID {
	return r.id
}

// Text は注文テキストを返す
func (r Request) Text() string {
	return r.text
}

// Locale はロケールを返す
func (r Request) Locale() string {
	return r.locale
}

// SensitivityHint は機微度ヒントを返す
func (r Request) SensitivityHint() routing.Sensitivity {
	return r.sensitivityHint
}

// Timeout は呼び出し側指定のタイムアウトを返す
func (r Request) Timeout() time.Duration {
	return r.timeout
}

// WithLocale はロケールを設定した新しいRequestを返す
func (r Request) WithLocale(locale string) Request {
	r.locale = locale
	return r
}

// WithSensitivityHint は機微度ヒントを設定した新しいRequestを返す
func (r Request) WithSensitivityHint(hint routing.Sensitivity) Request {
	r.sensitivityHint = hint
	return r
}

// WithTimeout はタイムアウトを設定した新しいRequestを返す
func (r Request) WithTimeout(timeout time.Duration) Request {
	r.timeout = timeout
	return r
}
