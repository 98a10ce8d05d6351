package order

import (
	"fmt"
	"strings"
	"unicode"
)

// 注文テキストの制約
const (
	maxOrderTextLen = 500
	maxItemQuantity = 99
)

// ValidateText は注文テキストを検証し、正規化済みテキストを返す
// 空テキストは不正ではなく、下流の分類・フォールバック抽出に委ねる
// 失敗時はKindValidationのErrorを返す
func ValidateText(text string) (string, *Error) {
	if len([]rune(text)) > maxOrderTextLen {
		return "", NewError(KindValidation, text, fmt.Errorf("order text too long (max %d chars)", maxOrderTextLen))
	}

	for _, r := range text {
		if unicode.IsControl(r) && !unicode.IsSpace(r) {
			return "", NewError(KindValidation, text, fmt.Errorf("order text contains control characters"))
		}
	}

	return NormalizeWhitespace(text), nil
}

// ValidateQuantity は数量を検証
func ValidateQuantity(quantity int) error {
	if quantity < 1 {
		return fmt.Errorf("quantity must be at least 1, got %d", quantity)
	}
	if quantity > maxItemQuantity {
		return fmt.Errorf("quantity exceeds maximum %d, got %d", maxItemQuantity, quantity)
	}
	return nil
}

// NormalizeWhitespace は連続する空白を単一スペースに正規化
func NormalizeWhitespace(text string) string {
	var b strings.Builder
	b.Grow(len(text))

	lastWasSpace := false
	for _, r := range text {
		if unicode.IsSpace(r) {
			if !lastWasSpace {
				b.WriteRune(' ')
			}
			lastWasSpace = true
			continue
		}
		b.WriteRune(r)
		lastWasSpace = false
	}

	return strings.TrimSpace(b.String())
}
