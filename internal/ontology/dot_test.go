package ontology

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRegistry_DOT(t *testing.T) {
	r := seedRegistry(t)

	dot := r.DOT()

	require.True(t, strings.HasPrefix(dot, "digraph ontology {"))
	require.Contains(t, dot, "subgraph cluster_operation")
	require.Contains(t, dot, "subgraph cluster_datatype")
	require.Contains(t, dot, `"vector.length" -> "math.add" [label="uses"];`)
	require.Contains(t, dot, `"node.add" -> "math.add" [style=dashed, label="usesOp"];`)
	require.Contains(t, dot, `"cmd.add" -> "math.add" [style=dashed, label="usesOp"];`)
}

func TestRegistry_DOT_DanglingUsesOpGetsPlaceholder(t *testing.T) {
	r := New()
	require.NoError(t, r.RegisterNode(Node{
		Entity:      Entity{ID: "node.ghost", Name: "Ghost"},
		SemanticOps: []string{"math.ghost"},
	}))

	dot := r.DOT()

	// The dangling target renders as a distinct missing node, matching
	// what Validate reports.
	require.Contains(t, dot, `"missing:math.ghost" [label="math.ghost (missing)", color=red, style=dashed];`)
	require.Contains(t, dot, `"node.ghost" -> "missing:math.ghost" [style=dashed, label="usesOp"];`)
	require.Len(t, r.Validate(), 1)
}

func TestRegistry_DOT_Deterministic(t *testing.T) {
	r := seedRegistry(t)

	require.Equal(t, r.DOT(), r.DOT())
}
