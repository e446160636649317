package coverage

import (
	"fmt"
	"sort"
	"strings"

	"github.com/petersancho/semreg/internal/ontology"
)

// barWidth is the character width of a full progress bar.
const barWidth = 20

// FormatReport renders metrics as deterministic plain text with progress
// bars and per-domain/per-safety tables. It performs no I/O; the caller
// decides where the report goes.
func FormatReport(m Metrics) string {
	var b strings.Builder

	b.WriteString("Semantic registry coverage\n")
	b.WriteString("==========================\n\n")
	fmt.Fprintf(&b, "Operations: %d    Validation errors: %d\n\n",
		m.TotalOperations, m.ValidationErrors)

	b.WriteString("Dimensions\n")
	writeDimension(&b, "operation", m.OperationCoverage)
	writeDimension(&b, "schema", m.SchemaCoverage)
	writeDimension(&b, "examples", m.ExampleCoverage)
	writeDimension(&b, "safety", m.SafetyCoverage)
	writeDimension(&b, "agent", m.AgentReadiness)
	writeDimension(&b, "integrity", m.OntologyIntegrity)
	writeDimension(&b, "purity", m.PurityCoverage)
	fmt.Fprintf(&b, "\nOverall score: %.1f/100\n", m.Overall)

	if len(m.ByDomain) > 0 {
		b.WriteString("\nBy domain\n")
		fmt.Fprintf(&b, "  %-12s %4s %7s %9s %5s %4s\n",
			"domain", "ops", "schema", "examples", "pure", "det")
		for _, domain := range sortedDomains(m.ByDomain) {
			d := m.ByDomain[domain]
			fmt.Fprintf(&b, "  %-12s %4d %7d %9d %5d %4d\n",
				domain, d.Operations, d.WithSchema, d.WithExamples, d.Pure, d.Deterministic)
		}
	}

	if len(m.BySafety) > 0 {
		b.WriteString("\nBy safety class\n")
		for _, class := range sortedClasses(m.BySafety) {
			fmt.Fprintf(&b, "  %-12s %4d\n", class, m.BySafety[class])
		}
	}

	return b.String()
}

// writeDimension renders one score line with its progress bar.
func writeDimension(b *strings.Builder, name string, score float64) {
	fmt.Fprintf(b, "  %-10s %5.1f  %s\n", name, score, bar(score))
}

// bar renders a 0-100 score as a fixed-width ASCII progress bar.
func bar(score float64) string {
	filled := int(score / 100 * barWidth)
	if filled > barWidth {
		filled = barWidth
	}
	if filled < 0 {
		filled = 0
	}
	return "[" + strings.Repeat("#", filled) + strings.Repeat(".", barWidth-filled) + "]"
}

func sortedDomains(byDomain map[string]DomainStats) []string {
	domains := make([]string, 0, len(byDomain))
	for domain := range byDomain {
		domains = append(domains, domain)
	}
	sort.Strings(domains)
	return domains
}

func sortedClasses(bySafety map[ontology.SafetyClass]int) []ontology.SafetyClass {
	classes := make([]ontology.SafetyClass, 0, len(bySafety))
	for class := range bySafety {
		classes = append(classes, class)
	}
	sort.Slice(classes, func(i, j int) bool { return classes[i] < classes[j] })
	return classes
}
