package order

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// OrderID は注文の一意識別子を表す値オブジェクト
type OrderID struct {
	value string
}

// NewOrderID は新しいOrderIDを生成
func NewOrderID() OrderID {
	// フォーマット: YYYYMMDD-HHMMSS-{UUID先頭8文字}
	now := time.Now()
	datePrefix := now.Format("20060102-150405")
	uuidStr := uuid.New().String()[:8]

	return OrderID{
		value: fmt.Sprintf("%s-%s", datePrefix, uuidStr),
	}
}

// OrderIDFromString は文字列からOrderIDを復元
func OrderIDFromString(s string) OrderID {
	return OrderID{value: s}
}

// String はOrderIDの文字列表現を返す
func (o OrderID) String() string {
	return o.value
}

// Equals は2つのOrderIDが等しいかを判定
func (o OrderID) Equals(other OrderID) bool {
	return o.value == other.value
}

// IsZero はOrderIDがゼロ値かを判定
func (o OrderID) IsZero() bool {
	return o.value == ""
}
