package order

import (
	"regexp"
	"testing"
)

func TestNewOrderID(t *testing.T) {
	id := NewOrderID()

	if id.IsZero() {
		t.Fatal("NewOrderID should not return zero value")
	}

	// フォーマット: YYYYMMDD-HHMMSS-{UUID先頭8文字}
	pattern := regexp.MustCompile(`^\d{8}-\d{6}-[0-9a-f]{8}$`)
	if !pattern.MatchString(id.String()) {
		t.Errorf("OrderID format mismatch: %s", id.String())
	}
}

func TestNewOrderID_Unique(t *testing.T) {
	seen := make(map[string]bool)

	for i := 0; i < 100; i++ {
		id := NewOrderID()
		if seen[id.String()] {
			t.Fatalf("Duplicate OrderID generated: %s", id.String())
		}
		seen[id.String()] = true
	}
}

func TestOrderID_Equals(t *testing.T) {
	a := OrderIDFromString("20260831-120000-abcd1234")
	b := OrderIDFromString("20260831-120000-abcd1234")
	c := NewOrderID()

	if !a.Equals(b) {
		t.Error("Same value OrderIDs should be equal")
	}

	if a.Equals(c) {
		t.Error("Different OrderIDs should not be equal")
	}
}

func TestOrderID_IsZero(t *testing.T) {
	var zero OrderID

	if !zero.IsZero() {
		t.Error("Zero value should be zero")
	}

	if OrderIDFromString("x").IsZero() {
		t.Error("Non-empty OrderID should not be zero")
	}
}
