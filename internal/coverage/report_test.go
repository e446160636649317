package coverage

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/petersancho/semreg/internal/ontology"
)

func reportMetrics() Metrics {
	return Metrics{
		TotalOperations:   12,
		ValidationErrors:  2,
		OperationCoverage: 100,
		SchemaCoverage:    75,
		ExampleCoverage:   50,
		SafetyCoverage:    100,
		AgentReadiness:    25,
		OntologyIntegrity: 90,
		PurityCoverage:    66.7,
		Overall:           81.4,
		ByDomain: map[string]DomainStats{
			"vector": {Operations: 6, WithSchema: 6, WithExamples: 3, Pure: 6, Deterministic: 6},
			"math":   {Operations: 6, WithSchema: 3, WithExamples: 3, Pure: 2, Deterministic: 2},
		},
		BySafety: map[ontology.SafetyClass]int{
			ontology.SafetySafe:     10,
			ontology.SafetyExternal: 2,
		},
	}
}

func TestFormatReport_Header(t *testing.T) {
	out := FormatReport(reportMetrics())

	require.True(t, strings.HasPrefix(out, "Semantic registry coverage\n"))
	require.Contains(t, out, "Operations: 12    Validation errors: 2")
	require.Contains(t, out, "Overall score: 81.4/100")
}

func TestFormatReport_DimensionLines(t *testing.T) {
	out := FormatReport(reportMetrics())

	require.Contains(t, out, "operation")
	require.Contains(t, out, "integrity")
	require.Contains(t, out, "100.0  [####################]")
	require.Contains(t, out, " 50.0  [##########..........]")
	require.Contains(t, out, " 25.0  [#####...............]")
}

func TestFormatReport_DomainsSorted(t *testing.T) {
	out := FormatReport(reportMetrics())

	require.Contains(t, out, "By domain")
	mathAt := strings.Index(out, "math")
	vectorAt := strings.Index(out, "vector")
	require.Greater(t, mathAt, 0)
	require.Greater(t, vectorAt, mathAt, "domain rows sort alphabetically")
}

func TestFormatReport_SafetyClasses(t *testing.T) {
	out := FormatReport(reportMetrics())

	require.Contains(t, out, "By safety class")
	require.Contains(t, out, "safe")
	require.Contains(t, out, "external")
}

func TestFormatReport_OmitsEmptyTables(t *testing.T) {
	out := FormatReport(Metrics{OperationCoverage: 100, Overall: 100})

	require.NotContains(t, out, "By domain")
	require.NotContains(t, out, "By safety class")
}

func TestFormatReport_Deterministic(t *testing.T) {
	m := reportMetrics()

	first := FormatReport(m)
	for i := 0; i < 20; i++ {
		require.Equal(t, first, FormatReport(m))
	}
}

func TestBar_Widths(t *testing.T) {
	require.Equal(t, "[....................]", bar(0))
	require.Equal(t, "[##########..........]", bar(50))
	require.Equal(t, "[####################]", bar(100))
	require.Equal(t, "[####################]", bar(140))
	require.Equal(t, "[....................]", bar(-5))
}
