package ontology

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestRegistry_DocumentRoundTrip_StatsMatch(t *testing.T) {
	r := seedRegistry(t)

	doc := r.Document()
	rebuilt, err := FromDocument(doc)

	require.NoError(t, err)
	require.Equal(t, r.Stats(), rebuilt.Stats())
	require.True(t, rebuilt.IsValid())
}

func TestRegistry_JSONRoundTrip(t *testing.T) {
	r := seedRegistry(t)

	data, err := json.Marshal(r)
	require.NoError(t, err)

	rebuilt := New()
	require.NoError(t, json.Unmarshal(data, rebuilt))

	require.Equal(t, r.Stats(), rebuilt.Stats())
	op, ok := rebuilt.Operation("vector.length")
	require.True(t, ok)
	require.Equal(t, []string{"math.add"}, op.DependsOn)
	require.Equal(t, "unit.meter", op.Inputs[0].Unit)
}

func TestFromDocument_ForwardReferencesAllowed(t *testing.T) {
	// The node references an operation the document does not contain.
	// Replay must not fail; Validate reports the dangling reference.
	doc := Document{
		Nodes: []Node{{
			Entity:      Entity{ID: "node.orphan", Name: "Orphan"},
			SemanticOps: []string{"math.ghost"},
		}},
	}

	r, err := FromDocument(doc)

	require.NoError(t, err)
	require.Len(t, r.Validate(), 1)
}

func TestFromDocument_DuplicateID(t *testing.T) {
	doc := Document{
		Operations: []Operation{
			testOp("math.add", "math"),
			testOp("math.add", "math"),
		},
	}

	_, err := FromDocument(doc)

	require.Error(t, err)
	require.ErrorIs(t, err, ErrDuplicate)
}

func TestRegistry_DocumentRoundTrip_Property(t *testing.T) {
	domains := []string{"math", "vector", "logic", "data", "string"}
	classes := []SafetyClass{
		SafetySafe, SafetyIdempotent, SafetyStateful, SafetyDestructive, SafetyExternal,
	}

	rapid.Check(t, func(rt *rapid.T) {
		r := New()
		numOps := rapid.IntRange(1, 30).Draw(rt, "numOps")
		seen := make(map[string]bool)
		for i := 0; i < numOps; i++ {
			id := rapid.StringMatching(`[a-z]{1,6}\.[a-z]{1,8}`).Draw(rt, "id")
			if seen[id] {
				continue
			}
			seen[id] = true

			op := testOp(id, domains[rapid.IntRange(0, len(domains)-1).Draw(rt, "domain")])
			op.Pure = rapid.Bool().Draw(rt, "pure")
			op.Deterministic = rapid.Bool().Draw(rt, "deterministic")
			op.Safety = classes[rapid.IntRange(0, len(classes)-1).Draw(rt, "safety")]
			require.NoError(t, r.RegisterOperation(op))
		}

		rebuilt, err := FromDocument(r.Document())
		require.NoError(t, err)
		require.Equal(t, r.Stats(), rebuilt.Stats())
	})
}
