package routing

import "testing"

func TestParseSensitivity(t *testing.T) {
	tests := []struct {
		input    string
		expected Sensitivity
		ok       bool
	}{
		{input: "low", expected: SensitivityLow, ok: true},
		{input: "MEDIUM", expected: SensitivityMedium, ok: true},
		{input: " high ", expected: SensitivityHigh, ok: true},
		{input: "", expected: SensitivityUnset, ok: false},
		{input: "critical", expected: SensitivityUnset, ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			sensitivity, ok := ParseSensitivity(tt.input)

			if ok != tt.ok {
				t.Errorf("ParseSensitivity(%q) ok = %v, want %v", tt.input, ok, tt.ok)
			}
			if sensitivity != tt.expected {
				t.Errorf("ParseSensitivity(%q) = %q, want %q", tt.input, sensitivity, tt.expected)
			}
		})
	}
}

func TestSensitivity_IsValid(t *testing.T) {
	if SensitivityUnset.IsValid() {
		t.Error("Unset sensitivity should not be valid")
	}
	if !SensitivityHigh.IsValid() {
		t.Error("High sensitivity should be valid")
	}
}

func TestNewServingDecision(t *testing.T) {
	decision := NewServingDecision(EndpointCloud, SensitivityHigh, false, true, "degraded")

	if decision.Endpoint != EndpointCloud {
		t.Errorf("Expected cloud endpoint, got %s", decision.Endpoint)
	}
	if !decision.Degraded {
		t.Error("Degraded flag should be set")
	}
	if decision.LocalAvailable {
		t.Error("LocalAvailable should be false")
	}
}
