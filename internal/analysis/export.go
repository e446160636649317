package analysis

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/petersancho/semreg/internal/provenance"
)

// ToJSONLines renders each trace entry as one JSON object per line, the
// shape external trace tooling ingests.
func ToJSONLines(session provenance.SessionTrace) (string, error) {
	var b strings.Builder
	encoder := json.NewEncoder(&b)
	for _, entry := range session.Entries {
		if err := encoder.Encode(entry); err != nil {
			return "", fmt.Errorf("encode entry %s: %w", entry.ID, err)
		}
	}
	return b.String(), nil
}

// ToDependencyDOT renders the session as a Graphviz digraph: one node
// per trace entry, failed entries drawn in red, and one edge per
// recorded parent trace id. Sessions that never record parents yield a
// graph with no edges.
func ToDependencyDOT(session provenance.SessionTrace) string {
	var b strings.Builder
	b.WriteString("digraph provenance {\n")
	b.WriteString("  rankdir=TB;\n")
	b.WriteString("  node [shape=box, fontsize=10];\n\n")

	for _, entry := range session.Entries {
		attrs := fmt.Sprintf("label=%s", dotQuote(entry.OpID))
		if entry.Failed() {
			attrs += ", color=red, fontcolor=red"
		}
		fmt.Fprintf(&b, "  %s [%s];\n", dotQuote(entry.ID), attrs)
	}

	b.WriteString("\n")
	for _, entry := range session.Entries {
		for _, parent := range entry.Parents {
			fmt.Fprintf(&b, "  %s -> %s;\n", dotQuote(parent), dotQuote(entry.ID))
		}
	}

	b.WriteString("}\n")
	return b.String()
}

func dotQuote(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	return `"` + s + `"`
}
