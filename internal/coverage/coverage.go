// Package coverage measures how completely the registered operation
// catalog is documented and classified, and gates CI on the result. It
// reads the registry it is given and never mutates entities beyond the
// one-time catalog bootstrap.
package coverage

import (
	"sync"

	"github.com/petersancho/semreg/internal/legacy"
	"github.com/petersancho/semreg/internal/ontology"
)

// Dimension weights for the overall score. Integrity weighs heaviest:
// a catalog full of dangling references is worse than one short on
// examples.
const (
	weightOperation = 1.0
	weightSchema    = 0.8
	weightExample   = 0.5
	weightSafety    = 1.0
	weightAgent     = 0.3
	weightIntegrity = 1.5
	weightPurity    = 0.5

	weightSum = weightOperation + weightSchema + weightExample +
		weightSafety + weightAgent + weightIntegrity + weightPurity
)

// Metrics is one coverage measurement over the registered catalog.
type Metrics struct {
	// Raw tallies
	TotalOperations  int `json:"totalOperations"`
	WithSchema       int `json:"withSchema"`
	WithExamples     int `json:"withExamples"`
	WithSafety       int `json:"withSafety"`
	WithAgentMeta    int `json:"withAgentMeta"`
	PureOps          int `json:"pureOps"`
	DeterministicOps int `json:"deterministicOps"`
	ValidationErrors int `json:"validationErrors"`

	// Dimension scores, each 0-100
	OperationCoverage float64 `json:"operationCoverage"`
	SchemaCoverage    float64 `json:"schemaCoverage"`
	ExampleCoverage   float64 `json:"exampleCoverage"`
	SafetyCoverage    float64 `json:"safetyCoverage"`
	AgentReadiness    float64 `json:"agentReadiness"`
	OntologyIntegrity float64 `json:"ontologyIntegrity"`
	PurityCoverage    float64 `json:"purityCoverage"`

	// Overall is the weighted average of the dimension scores.
	Overall float64 `json:"overall"`

	ByDomain map[string]DomainStats       `json:"byDomain"`
	BySafety map[ontology.SafetyClass]int `json:"bySafety"`
}

// DomainStats tracks documentation sub-counts for one operation domain.
type DomainStats struct {
	Operations    int `json:"operations"`
	WithSchema    int `json:"withSchema"`
	WithExamples  int `json:"withExamples"`
	Pure          int `json:"pure"`
	Deterministic int `json:"deterministic"`
}

// Analyzer bootstraps legacy catalog sources into a registry once and
// measures documentation coverage on demand.
type Analyzer struct {
	registry *ontology.Registry
	modules  []legacy.Module
	once     sync.Once
}

// NewAnalyzer wires an analyzer to the registry it measures and the
// module sources it bootstraps on first use.
func NewAnalyzer(registry *ontology.Registry, modules []legacy.Module) *Analyzer {
	return &Analyzer{registry: registry, modules: modules}
}

// Bootstrap registers every module source exactly once per analyzer.
// Operations whose ids are already registered are skipped; overlapping
// sources are legal and the first registration wins.
func (a *Analyzer) Bootstrap() {
	a.once.Do(func() {
		for _, mod := range a.modules {
			for _, op := range legacy.MigrateModule(mod) {
				_ = a.registry.RegisterOperation(op)
			}
		}
	})
}

// Analyze bootstraps if needed, then tallies every registered operation
// and computes the seven dimension scores and their weighted overall.
func (a *Analyzer) Analyze() Metrics {
	a.Bootstrap()

	ops := a.registry.Operations()
	m := Metrics{
		TotalOperations: len(ops),
		ByDomain:        make(map[string]DomainStats),
		BySafety:        make(map[ontology.SafetyClass]int),
	}

	for _, op := range ops {
		hasSchema := len(op.Inputs) > 0 || len(op.Outputs) > 0
		hasExamples := len(op.Examples) > 0
		hasSafety := op.Safety != ""
		hasAgentMeta := len(op.Synonyms) > 0 || op.CanonicalPrompt != ""

		if hasSchema {
			m.WithSchema++
		}
		if hasExamples {
			m.WithExamples++
		}
		if hasSafety {
			m.WithSafety++
			m.BySafety[op.Safety]++
		}
		if hasAgentMeta {
			m.WithAgentMeta++
		}
		if op.Pure {
			m.PureOps++
		}
		if op.Deterministic {
			m.DeterministicOps++
		}

		domain := m.ByDomain[op.Domain]
		domain.Operations++
		if hasSchema {
			domain.WithSchema++
		}
		if hasExamples {
			domain.WithExamples++
		}
		if op.Pure {
			domain.Pure++
		}
		if op.Deterministic {
			domain.Deterministic++
		}
		m.ByDomain[op.Domain] = domain
	}

	m.ValidationErrors = len(a.registry.Validate())

	// Registered implies covered, so the operation dimension is constant.
	m.OperationCoverage = 100
	m.SchemaCoverage = percent(m.WithSchema, m.TotalOperations)
	m.ExampleCoverage = percent(m.WithExamples, m.TotalOperations)
	m.SafetyCoverage = percent(m.WithSafety, m.TotalOperations)
	m.AgentReadiness = percent(m.WithAgentMeta, m.TotalOperations)
	m.OntologyIntegrity = integrityScore(m.ValidationErrors)
	m.PurityCoverage = percent(m.PureOps, m.TotalOperations)

	m.Overall = (m.OperationCoverage*weightOperation +
		m.SchemaCoverage*weightSchema +
		m.ExampleCoverage*weightExample +
		m.SafetyCoverage*weightSafety +
		m.AgentReadiness*weightAgent +
		m.OntologyIntegrity*weightIntegrity +
		m.PurityCoverage*weightPurity) / weightSum

	return m
}

// percent scales part/whole to 0-100. An empty catalog is vacuously
// covered.
func percent(part, whole int) float64 {
	if whole == 0 {
		return 100
	}
	return float64(part) / float64(whole) * 100
}

// integrityScore deducts five points per validation error, floored at
// zero.
func integrityScore(errorCount int) float64 {
	score := 100 - 5*float64(errorCount)
	if score < 0 {
		return 0
	}
	return score
}
