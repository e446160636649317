package coverage

import (
	"fmt"
	"math"
)

// Thresholds are the minimum scores the catalog must reach and the
// maximum validation-error count it may carry before CI fails.
type Thresholds struct {
	MinOverall   float64 `json:"minOverall"`
	MinSafety    float64 `json:"minSafety"`
	MinIntegrity float64 `json:"minIntegrity"`
	MaxErrors    int     `json:"maxErrors"`
}

// DefaultThresholds returns the gate levels CI runs with.
func DefaultThresholds() Thresholds {
	return Thresholds{
		MinOverall:   60,
		MinSafety:    80,
		MinIntegrity: 95,
		MaxErrors:    10,
	}
}

// GateResult reports pass/fail plus one reason per violated gate. The
// embedding CI step decides the consequence; this never exits or panics.
type GateResult struct {
	Passed  bool     `json:"passed"`
	Reasons []string `json:"reasons,omitempty"`
}

// CheckGates compares metrics against thresholds. Each violated gate
// contributes one itemized reason.
func CheckGates(m Metrics, th Thresholds) GateResult {
	var reasons []string

	if m.Overall < th.MinOverall {
		reasons = append(reasons, fmt.Sprintf(
			"Overall score %.1f below minimum %.1f", m.Overall, th.MinOverall))
	}
	if m.SafetyCoverage < th.MinSafety {
		reasons = append(reasons, fmt.Sprintf(
			"Safety coverage %.1f below minimum %.1f", m.SafetyCoverage, th.MinSafety))
	}
	if m.OntologyIntegrity < th.MinIntegrity {
		reasons = append(reasons, fmt.Sprintf(
			"Ontology integrity %.1f below minimum %.1f", m.OntologyIntegrity, th.MinIntegrity))
	}
	if m.ValidationErrors > th.MaxErrors {
		reasons = append(reasons, fmt.Sprintf(
			"Validation errors %d exceed maximum %d", m.ValidationErrors, th.MaxErrors))
	}

	return GateResult{Passed: len(reasons) == 0, Reasons: reasons}
}

// RatchetThresholds raises thresholds to the levels the catalog currently
// achieves. Minimums only move up and the error budget only tightens, so
// persisting the result can never loosen the gate.
func RatchetThresholds(th Thresholds, m Metrics) Thresholds {
	if s := math.Floor(m.Overall); s > th.MinOverall {
		th.MinOverall = s
	}
	if s := math.Floor(m.SafetyCoverage); s > th.MinSafety {
		th.MinSafety = s
	}
	if s := math.Floor(m.OntologyIntegrity); s > th.MinIntegrity {
		th.MinIntegrity = s
	}
	if m.ValidationErrors < th.MaxErrors {
		th.MaxErrors = m.ValidationErrors
	}
	return th
}
