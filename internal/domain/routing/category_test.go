package routing

import "testing"

func TestParseCategory(t *testing.T) {
	tests := []struct {
		input    string
		expected Category
		ok       bool
	}{
		{input: "beverage", expected: CategoryBeverage, ok: true},
		{input: "BEVERAGE", expected: CategoryBeverage, ok: true},
		{input: "음료", expected: CategoryBeverage, ok: true},
		{input: "drink", expected: CategoryBeverage, ok: true},
		{input: "dessert", expected: CategoryDessert, ok: true},
		{input: "디저트", expected: CategoryDessert, ok: true},
		{input: "meal", expected: CategoryMeal, ok: true},
		{input: "식사", expected: CategoryMeal, ok: true},
		{input: " meal ", expected: CategoryMeal, ok: true},
		{input: "pizza", expected: CategoryUnknown, ok: false},
		{input: "", expected: CategoryUnknown, ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			category, ok := ParseCategory(tt.input)

			if ok != tt.ok {
				t.Errorf("ParseCategory(%q) ok = %v, want %v", tt.input, ok, tt.ok)
			}
			if category != tt.expected {
				t.Errorf("ParseCategory(%q) = %s, want %s", tt.input, category, tt.expected)
			}
		})
	}
}

func TestNewCategoryDecision_ClampsConfidence(t *testing.T) {
	over := NewCategoryDecision(CategoryBeverage, 1.5, SourceModel, "test")
	if over.Confidence != 1.0 {
		t.Errorf("Confidence should be clamped to 1.0, got %f", over.Confidence)
	}

	under := NewCategoryDecision(CategoryBeverage, -0.5, SourceModel, "test")
	if under.Confidence != 0.0 {
		t.Errorf("Confidence should be clamped to 0.0, got %f", under.Confidence)
	}
}

func TestNewCategoryDecision_NormalizesInvalidCategory(t *testing.T) {
	decision := NewCategoryDecision(Category("snack"), 0.9, SourceModel, "test")

	if decision.Category != CategoryUnknown {
		t.Errorf("Invalid category should normalize to unknown, got %s", decision.Category)
	}
}

func TestUnknownDecision(t *testing.T) {
	decision := UnknownDecision(SourceFallback, "classifier unavailable")

	if decision.Category != CategoryUnknown {
		t.Errorf("Expected unknown category, got %s", decision.Category)
	}
	if decision.Confidence != 0.0 {
		t.Errorf("Expected zero confidence, got %f", decision.Confidence)
	}
	if decision.Source != SourceFallback {
		t.Errorf("Expected fallback source, got %s", decision.Source)
	}
}
