package order

import (
	"strings"
	"testing"
)

func TestValidateText_Normal(t *testing.T) {
	text, err := ValidateText("아메리카노 2잔 주세요")

	if err != nil {
		t.Fatalf("ValidateText failed: %v", err)
	}

	if text != "아메리카노 2잔 주세요" {
		t.Errorf("Text should be unchanged, got %q", text)
	}
}

func TestValidateText_EmptyPassesThrough(t *testing.T) {
	// 空入力は検証エラーにせず、下流の分類・フォールバックに委ねる
	text, err := ValidateText("")

	if err != nil {
		t.Fatalf("Empty text should not be a validation error, got %v", err)
	}

	if text != "" {
		t.Errorf("Expected empty text, got %q", text)
	}
}

func TestValidateText_TooLong(t *testing.T) {
	long := strings.Repeat("아", 501)

	_, err := ValidateText(long)

	if err == nil {
		t.Fatal("Text over 500 chars should fail validation")
	}

	if err.Kind != KindValidation {
		t.Errorf("Expected KindValidation, got %s", err.Kind)
	}
}

func TestValidateText_ExactLimit(t *testing.T) {
	// 500文字ちょうどは許容される
	limit := strings.Repeat("아", 500)

	if _, err := ValidateText(limit); err != nil {
		t.Errorf("Text of exactly 500 chars should pass, got %v", err)
	}
}

func TestValidateText_ControlCharacters(t *testing.T) {
	_, err := ValidateText("아메리카노\x00주세요")

	if err == nil {
		t.Fatal("Control characters should fail validation")
	}

	if err.Kind != KindValidation {
		t.Errorf("Expected KindValidation, got %s", err.Kind)
	}
}

func TestValidateText_NormalizesWhitespace(t *testing.T) {
	text, err := ValidateText("  아메리카노   2잔\t주세요  ")

	if err != nil {
		t.Fatalf("ValidateText failed: %v", err)
	}

	if text != "아메리카노 2잔 주세요" {
		t.Errorf("Whitespace should be normalized, got %q", text)
	}
}

func TestValidateQuantity(t *testing.T) {
	tests := []struct {
		name     string
		quantity int
		wantErr  bool
	}{
		{name: "最小値", quantity: 1, wantErr: false},
		{name: "通常値", quantity: 5, wantErr: false},
		{name: "最大値", quantity: 99, wantErr: false},
		{name: "ゼロ", quantity: 0, wantErr: true},
		{name: "負数", quantity: -1, wantErr: true},
		{name: "最大値超過", quantity: 100, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateQuantity(tt.quantity)

			if tt.wantErr && err == nil {
				t.Errorf("ValidateQuantity(%d) should fail", tt.quantity)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("ValidateQuantity(%d) failed: %v", tt.quantity, err)
			}
		})
	}
}
