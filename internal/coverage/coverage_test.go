package coverage

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/petersancho/semreg/internal/catalog"
	"github.com/petersancho/semreg/internal/legacy"
	"github.com/petersancho/semreg/internal/ontology"
	"github.com/petersancho/semreg/internal/seed"
)

// annotatedModule builds one legacy module of fully documented operations:
// schema, synonyms, purity flags, and optionally one worked example each.
func annotatedModule(domain string, count int, withExamples bool) legacy.Module {
	items := make([]any, count)
	for i := range items {
		ext := legacy.Extension{
			Inputs:   []ontology.ArgSchema{{Name: "a"}, {Name: "b"}},
			Synonyms: []string{"alias"},
		}
		if withExamples {
			ext.Examples = []ontology.Example{{
				Description: "worked example",
				Inputs:      map[string]any{"a": 1, "b": 2},
				Outputs:     map[string]any{"result": 3},
			}}
		}
		items[i] = legacy.DefineOpV2(legacy.Meta{
			ID:            fmt.Sprintf("%s.op%d", domain, i),
			Domain:        domain,
			Name:          fmt.Sprintf("Operation %d", i),
			Category:      "test",
			Pure:          true,
			Deterministic: true,
			Stable:        true,
		}, ext, nil)
	}
	return legacy.Module{Name: domain, Items: items}
}

func TestAnalyzer_BootstrapRunsOnce(t *testing.T) {
	reg := ontology.New()
	analyzer := NewAnalyzer(reg, []legacy.Module{annotatedModule("math", 3, true)})

	first := analyzer.Analyze()
	second := analyzer.Analyze()

	require.Equal(t, 3, first.TotalOperations)
	require.Equal(t, first.TotalOperations, second.TotalOperations)
}

func TestAnalyzer_BootstrapKeepsExistingRegistration(t *testing.T) {
	reg := ontology.New()
	require.NoError(t, reg.RegisterOperation(ontology.Operation{
		Entity: ontology.Entity{ID: "math.op0", Name: "Hand tuned", Stability: ontology.StabilityStable},
		Domain: "math",
		Safety: ontology.SafetySafe,
	}))

	analyzer := NewAnalyzer(reg, []legacy.Module{annotatedModule("math", 2, true)})
	m := analyzer.Analyze()

	require.Equal(t, 2, m.TotalOperations)
	got, ok := reg.Operation("math.op0")
	require.True(t, ok)
	require.Equal(t, "Hand tuned", got.Name, "first registration wins on id collision")
}

func TestAnalyze_FullyDocumentedCatalog(t *testing.T) {
	analyzer := NewAnalyzer(ontology.New(), []legacy.Module{
		annotatedModule("math", 4, true),
		annotatedModule("vector", 3, true),
	})

	m := analyzer.Analyze()

	require.Equal(t, 7, m.TotalOperations)
	require.Equal(t, 100.0, m.OperationCoverage)
	require.Equal(t, 100.0, m.SchemaCoverage)
	require.Equal(t, 100.0, m.ExampleCoverage)
	require.Equal(t, 100.0, m.SafetyCoverage)
	require.Equal(t, 100.0, m.AgentReadiness)
	require.Equal(t, 100.0, m.OntologyIntegrity)
	require.Equal(t, 100.0, m.PurityCoverage)
	require.InDelta(t, 100.0, m.Overall, 1e-9)
}

func TestAnalyze_MissingExamplesDropsOnlyThatDimension(t *testing.T) {
	analyzer := NewAnalyzer(ontology.New(), []legacy.Module{annotatedModule("math", 4, false)})

	m := analyzer.Analyze()

	require.Zero(t, m.ExampleCoverage)
	require.Equal(t, 100.0, m.SchemaCoverage)
	require.Equal(t, 100.0, m.SafetyCoverage)
	require.Equal(t, 100.0, m.AgentReadiness)
	require.Equal(t, 100.0, m.PurityCoverage)
}

func TestAnalyze_DomainBuckets(t *testing.T) {
	analyzer := NewAnalyzer(ontology.New(), []legacy.Module{
		annotatedModule("math", 4, true),
		annotatedModule("vector", 2, false),
	})

	m := analyzer.Analyze()

	require.Len(t, m.ByDomain, 2)

	math := m.ByDomain["math"]
	require.Equal(t, 4, math.Operations)
	require.Equal(t, 4, math.WithSchema)
	require.Equal(t, 4, math.WithExamples)
	require.Equal(t, 4, math.Pure)
	require.Equal(t, 4, math.Deterministic)

	vector := m.ByDomain["vector"]
	require.Equal(t, 2, vector.Operations)
	require.Zero(t, vector.WithExamples)
}

func TestAnalyze_SafetyBuckets(t *testing.T) {
	mixed := legacy.Module{Name: "mixed", Items: []any{
		legacy.Meta{ID: "fs.save", Domain: "fs", Name: "Save", Category: "io",
			SideEffects: []ontology.SideEffect{ontology.EffectFilesystem}, Stable: true},
		legacy.Meta{ID: "net.fetch", Domain: "net", Name: "Fetch", Category: "io",
			SideEffects: []ontology.SideEffect{ontology.EffectNetwork}, Stable: true},
		legacy.Meta{ID: "state.set", Domain: "state", Name: "Set", Category: "state",
			SideEffects: []ontology.SideEffect{ontology.EffectState}, Stable: true},
		legacy.Meta{ID: "math.add", Domain: "math", Name: "Add", Category: "arithmetic",
			Pure: true, Deterministic: true, Stable: true},
		legacy.Meta{ID: "math.random", Domain: "math", Name: "Random", Category: "arithmetic",
			Pure: true, Stable: true},
	}}
	analyzer := NewAnalyzer(ontology.New(), []legacy.Module{mixed})

	m := analyzer.Analyze()

	require.Equal(t, 1, m.BySafety[ontology.SafetyDestructive])
	require.Equal(t, 1, m.BySafety[ontology.SafetyExternal])
	require.Equal(t, 1, m.BySafety[ontology.SafetyStateful])
	require.Equal(t, 1, m.BySafety[ontology.SafetySafe])
	require.Equal(t, 1, m.BySafety[ontology.SafetyIdempotent])
	require.Equal(t, 100.0, m.SafetyCoverage)
}

func TestAnalyze_IntegrityPenalty(t *testing.T) {
	reg := ontology.New()
	require.NoError(t, reg.RegisterOperation(ontology.Operation{
		Entity:    ontology.Entity{ID: "math.chain", Name: "Chain", Stability: ontology.StabilityStable},
		Domain:    "math",
		Safety:    ontology.SafetySafe,
		DependsOn: []string{"ghost.op"},
	}))

	m := NewAnalyzer(reg, nil).Analyze()

	require.Equal(t, 1, m.ValidationErrors)
	require.Equal(t, 95.0, m.OntologyIntegrity)
}

func TestAnalyze_IntegrityFloorsAtZero(t *testing.T) {
	reg := ontology.New()
	deps := make([]string, 21)
	for i := range deps {
		deps[i] = fmt.Sprintf("ghost.op%d", i)
	}
	require.NoError(t, reg.RegisterOperation(ontology.Operation{
		Entity:    ontology.Entity{ID: "math.chain", Name: "Chain", Stability: ontology.StabilityStable},
		Domain:    "math",
		Safety:    ontology.SafetySafe,
		DependsOn: deps,
	}))

	m := NewAnalyzer(reg, nil).Analyze()

	require.Equal(t, 21, m.ValidationErrors)
	require.Zero(t, m.OntologyIntegrity)
}

func TestAnalyze_EmptyRegistry(t *testing.T) {
	m := NewAnalyzer(ontology.New(), nil).Analyze()

	require.Zero(t, m.TotalOperations)
	require.Equal(t, 100.0, m.OperationCoverage)
	require.Equal(t, 100.0, m.SchemaCoverage)
	require.Equal(t, 100.0, m.ExampleCoverage)
	require.Equal(t, 100.0, m.SafetyCoverage)
	require.Equal(t, 100.0, m.OntologyIntegrity)
	require.InDelta(t, 100.0, m.Overall, 1e-9)
}

func TestAnalyze_ShippedCatalogPassesDefaultGates(t *testing.T) {
	reg := ontology.New()
	require.NoError(t, seed.Load(reg))

	m := NewAnalyzer(reg, catalog.Modules()).Analyze()

	require.Equal(t, 54, m.TotalOperations)
	require.Zero(t, m.ValidationErrors)
	require.Equal(t, 100.0, m.SafetyCoverage)
	require.Equal(t, 100.0, m.OntologyIntegrity)

	gates := CheckGates(m, DefaultThresholds())
	require.True(t, gates.Passed, "shipped catalog must pass default gates: %v", gates.Reasons)
}

func TestAnalyze_OverallBoundedByDimensions(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		reg := ontology.New()
		count := rapid.IntRange(1, 20).Draw(rt, "count")
		for i := 0; i < count; i++ {
			op := ontology.Operation{
				Entity: ontology.Entity{
					ID:        fmt.Sprintf("gen.op%d", i),
					Name:      fmt.Sprintf("Generated %d", i),
					Stability: ontology.StabilityStable,
				},
				Domain:        "gen",
				Category:      "test",
				Pure:          rapid.Bool().Draw(rt, "pure"),
				Deterministic: rapid.Bool().Draw(rt, "deterministic"),
			}
			if rapid.Bool().Draw(rt, "safety") {
				op.Safety = ontology.SafetySafe
			}
			if rapid.Bool().Draw(rt, "schema") {
				op.Inputs = []ontology.ArgSchema{{Name: "a"}}
			}
			if rapid.Bool().Draw(rt, "examples") {
				op.Examples = []ontology.Example{{Description: "generated"}}
			}
			if rapid.Bool().Draw(rt, "synonyms") {
				op.Synonyms = []string{"alias"}
			}
			require.NoError(rt, reg.RegisterOperation(op))
		}

		m := NewAnalyzer(reg, nil).Analyze()

		dims := []float64{
			m.OperationCoverage, m.SchemaCoverage, m.ExampleCoverage,
			m.SafetyCoverage, m.AgentReadiness, m.OntologyIntegrity, m.PurityCoverage,
		}
		lo, hi := dims[0], dims[0]
		for _, d := range dims {
			require.GreaterOrEqual(rt, d, 0.0)
			require.LessOrEqual(rt, d, 100.0)
			if d < lo {
				lo = d
			}
			if d > hi {
				hi = d
			}
		}
		require.GreaterOrEqual(rt, m.Overall, lo-1e-9)
		require.LessOrEqual(rt, m.Overall, hi+1e-9)
	})
}
