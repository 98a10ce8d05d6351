package order

import (
	"testing"
	"time"

	"github.com/Nyukimin/kiosk_multiLLM/internal/domain/routing"
)

func TestNewRequest(t *testing.T) {
	req := NewRequest("아메리카노 주세요")

	if req.ID().IsZero() {
		t.Error("Request should have an OrderID")
	}
	if req.Text() != "아메리카노 주세요" {
		t.Errorf("Unexpected text: %q", req.Text())
	}
	if req.SensitivityHint() != routing.SensitivityUnset {
		t.Error("Sensitivity hint should be unset by default")
	}
	if req.Timeout() != 0 {
		t.Error("Timeout should be zero by default")
	}
}

func TestRequest_WithSetters(t *testing.T) {
	base := NewRequest("케이크 하나")

	modified := base.
		WithLocale("ko-KR").
		WithSensitivityHint(routing.SensitivityHigh).
		WithTimeout(5 * time.Second)

	if modified.Locale() != "ko-KR" {
		t.Errorf("Unexpected locale: %q", modified.Locale())
	}
	if modified.SensitivityHint() != routing.SensitivityHigh {
		t.Errorf("Unexpected hint: %s", modified.SensitivityHint())
	}
	if modified.Timeout() != 5*time.Second {
		t.Errorf("Unexpected timeout: %v", modified.Timeout())
	}

	// 元のRequestは変更されない
	if base.Locale() != "" || base.Timeout() != 0 {
		t.Error("WithX setters should not mutate the original")
	}

	// IDは引き継がれる
	if !modified.ID().Equals(base.ID()) {
		t.Error("WithX setters should preserve the OrderID")
	}
}
