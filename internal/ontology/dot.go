package ontology

import (
	"fmt"
	"sort"
	"strings"
)

// kindShapes picks a Graphviz node shape per kind.
var kindShapes = map[Kind]string{
	KindDataType:  "ellipse",
	KindUnit:      "plaintext",
	KindOperation: "box",
	KindNode:      "component",
	KindCommand:   "cds",
	KindGoal:      "diamond",
	KindSolver:    "hexagon",
}

// DOT renders the registry as a Graphviz digraph: one cluster per entity
// kind, one edge per relation, and dashed usesOp edges from every node and
// command to each entry in its semanticOps list. A semanticOps target that
// is not a registered operation is drawn as a red dashed placeholder, so
// the graph shows the same dangling references Validate reports.
func (r *Registry) DOT() string {
	var b strings.Builder
	b.WriteString("digraph ontology {\n")
	b.WriteString("  rankdir=LR;\n")
	b.WriteString("  node [fontname=\"Helvetica\"];\n")

	for _, kind := range Kinds() {
		ids := r.idsOfKind(kind)
		if len(ids) == 0 {
			continue
		}
		fmt.Fprintf(&b, "\n  subgraph cluster_%s {\n", kind)
		fmt.Fprintf(&b, "    label=%s;\n", dotQuote(string(kind)))
		for _, id := range ids {
			fmt.Fprintf(&b, "    %s [shape=%s];\n", dotQuote(id), kindShapes[kind])
		}
		b.WriteString("  }\n")
	}

	if len(r.relations) > 0 {
		b.WriteString("\n")
		for _, rel := range r.relations {
			fmt.Fprintf(&b, "  %s -> %s [label=%s];\n",
				dotQuote(rel.From), dotQuote(rel.To), dotQuote(string(rel.Type)))
		}
	}

	r.writeUsesOpEdges(&b)

	b.WriteString("}\n")
	return b.String()
}

// writeUsesOpEdges emits the implicit node/command -> operation edges.
// Targets that resolve point at the operation's node; dangling targets get
// a placeholder node declared once, keyed "missing:<id>" so it can never
// collide with a real entity.
func (r *Registry) writeUsesOpEdges(b *strings.Builder) {
	missing := make(map[string]bool)
	var edges []string

	collect := func(fromID string, ops []string) {
		for _, opID := range ops {
			target := dotQuote(opID)
			if _, ok := r.operations[opID]; !ok {
				missing[opID] = true
				target = dotQuote("missing:" + opID)
			}
			edges = append(edges, fmt.Sprintf("  %s -> %s [style=dashed, label=\"usesOp\"];\n",
				dotQuote(fromID), target))
		}
	}
	for _, id := range sortedKeys(r.nodes) {
		collect(id, r.nodes[id].SemanticOps)
	}
	for _, id := range sortedKeys(r.commands) {
		collect(id, r.commands[id].SemanticOps)
	}

	if len(missing) > 0 {
		b.WriteString("\n")
		ids := make([]string, 0, len(missing))
		for id := range missing {
			ids = append(ids, id)
		}
		sort.Strings(ids)
		for _, id := range ids {
			fmt.Fprintf(b, "  %s [label=%s, color=red, style=dashed];\n",
				dotQuote("missing:"+id), dotQuote(id+" (missing)"))
		}
	}
	if len(edges) > 0 {
		b.WriteString("\n")
		for _, e := range edges {
			b.WriteString(e)
		}
	}
}

func (r *Registry) idsOfKind(kind Kind) []string {
	switch kind {
	case KindDataType:
		return sortedKeys(r.dataTypes)
	case KindUnit:
		return sortedKeys(r.units)
	case KindOperation:
		return sortedKeys(r.operations)
	case KindNode:
		return sortedKeys(r.nodes)
	case KindCommand:
		return sortedKeys(r.commands)
	case KindGoal:
		return sortedKeys(r.goals)
	case KindSolver:
		return sortedKeys(r.solvers)
	}
	return nil
}

func dotQuote(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	return `"` + s + `"`
}
