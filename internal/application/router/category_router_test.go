package router

import (
	"context"
	"fmt"
	"testing"

	"github.com/Nyukimin/kiosk_multiLLM/internal/domain/routing"
)

// mockMatcher は固定結果を返すMatcher
type mockMatcher struct {
	match routing.KeywordMatch
	ok    bool
}

func (m *mockMatcher) Match(text string) (routing.KeywordMatch, bool) {
	return m.match, m.ok
}

// mockClassifier は固定結果を返すClassifier
type mockClassifier struct {
	decision routing.CategoryDecision
	err      error
	calls    int
}

func (m *mockClassifier) Classify(ctx context.Context, text string) (routing.CategoryDecision, error) {
	m.calls++
	if m.err != nil {
		return routing.CategoryDecision{}, m.err
	}
	return m.decision, nil
}

func TestCategoryRouter_HeuristicFastPath(t *testing.T) {
	matcher := &mockMatcher{
		match: routing.KeywordMatch{Category: routing.CategoryBeverage, Confidence: 0.9},
		ok:    true,
	}
	classifier := &mockClassifier{}

	router := NewCategoryRouter(matcher, classifier, 0.8, nil)

	decision := router.Classify(context.Background(), "아메리카노 주세요")

	if decision.Category != routing.CategoryBeverage {
		t.Errorf("Expected beverage, got %s", decision.Category)
	}
	if decision.Source != routing.SourceHeuristic {
		t.Errorf("Expected heuristic source, got %s", decision.Source)
	}
	if classifier.calls != 0 {
		t.Error("High-confidence keyword match should skip the classifier")
	}
}

func TestCategoryRouter_LowConfidenceGoesToClassifier(t *testing.T) {
	matcher := &mockMatcher{
		match: routing.KeywordMatch{Category: routing.CategoryBeverage, Confidence: 0.5},
		ok:    true,
	}
	classifier := &mockClassifier{
		decision: routing.NewCategoryDecision(routing.CategoryDessert, 0.85, routing.SourceModel, "llm"),
	}

	router := NewCategoryRouter(matcher, classifier, 0.8, nil)

	decision := router.Classify(context.Background(), "달달한 거 하나")

	if decision.Source != routing.SourceModel {
		t.Errorf("Low-confidence match should defer to classifier, got %s", decision.Source)
	}
	if decision.Category != routing.CategoryDessert {
		t.Errorf("Expected dessert, got %s", decision.Category)
	}
	if classifier.calls != 1 {
		t.Errorf("Classifier should be called once, got %d", classifier.calls)
	}
}

func TestCategoryRouter_ThresholdIsExclusive(t *testing.T) {
	// 確信度がちょうど閾値の場合は即決しない
	matcher := &mockMatcher{
		match: routing.KeywordMatch{Category: routing.CategoryMeal, Confidence: 0.8},
		ok:    true,
	}
	classifier := &mockClassifier{
		decision: routing.NewCategoryDecision(routing.CategoryMeal, 0.9, routing.SourceModel, "llm"),
	}

	router := NewCategoryRouter(matcher, classifier, 0.8, nil)

	decision := router.Classify(context.Background(), "식사 되나요")

	if decision.Source != routing.SourceModel {
		t.Errorf("Confidence equal to threshold should defer to classifier, got %s", decision.Source)
	}
}

func TestCategoryRouter_TieGoesToClassifier(t *testing.T) {
	// 同点の場合は確信度が高くても推測しない
	matcher := &mockMatcher{
		match: routing.KeywordMatch{Category: routing.CategoryBeverage, Confidence: 0.9, Tied: true},
		ok:    true,
	}
	classifier := &mockClassifier{
		decision: routing.NewCategoryDecision(routing.CategoryDessert, 0.85, routing.SourceModel, "llm"),
	}

	router := NewCategoryRouter(matcher, classifier, 0.8, nil)

	decision := router.Classify(context.Background(), "커피랑 케이크")

	if classifier.calls != 1 {
		t.Error("Tied keyword scores should defer to classifier")
	}
	if decision.Category != routing.CategoryDessert {
		t.Errorf("Expected classifier decision, got %s", decision.Category)
	}
}

func TestCategoryRouter_EmptyInput(t *testing.T) {
	matcher := &mockMatcher{}
	classifier := &mockClassifier{}

	router := NewCategoryRouter(matcher, classifier, 0.8, nil)

	decision := router.Classify(context.Background(), "   ")

	if decision.Category != routing.CategoryUnknown {
		t.Errorf("Empty input should be unknown, got %s", decision.Category)
	}
	if decision.Confidence != 0.0 {
		t.Errorf("Empty input should have zero confidence, got %f", decision.Confidence)
	}
	if decision.Source != routing.SourceHeuristic {
		t.Errorf("Empty input should be heuristic, got %s", decision.Source)
	}
	if classifier.calls != 0 {
		t.Error("Empty input should not reach the classifier")
	}
}

func TestCategoryRouter_ClassifierFailureNeverErrors(t *testing.T) {
	matcher := &mockMatcher{}
	classifier := &mockClassifier{err: fmt.Errorf("backend down")}

	router := NewCategoryRouter(matcher, classifier, 0.8, nil)

	decision := router.Classify(context.Background(), "뭔가 애매한 주문")

	if decision.Category != routing.CategoryUnknown {
		t.Errorf("Classifier failure should yield unknown, got %s", decision.Category)
	}
	if decision.Source != routing.SourceFallback {
		t.Errorf("Classifier failure should be marked fallback, got %s", decision.Source)
	}
	if decision.Confidence != 0.0 {
		t.Errorf("Classifier failure should have zero confidence, got %f", decision.Confidence)
	}
}
