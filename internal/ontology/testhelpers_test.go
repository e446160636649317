package ontology

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func numberType(id string) DataType {
	return DataType{
		Entity: Entity{ID: id, Name: id, Stability: StabilityStable},
		Base:   BaseNumber,
		Shape:  ShapeScalar,
	}
}

func testOp(id, domain string) Operation {
	return Operation{
		Entity:        Entity{ID: id, Name: id, Stability: StabilityStable},
		Domain:        domain,
		Pure:          true,
		Deterministic: true,
		Safety:        SafetySafe,
	}
}

// seedRegistry builds a small coherent catalog: every cross-reference in
// it resolves, so Validate returns nothing.
func seedRegistry(t *testing.T) *Registry {
	t.Helper()
	r := New()

	require.NoError(t, r.RegisterDataType(numberType("core.number")))
	require.NoError(t, r.RegisterDataType(DataType{
		Entity: Entity{ID: "core.vector3", Name: "Vector3"},
		Base:   BaseArray,
		Shape:  ShapeVector,
	}))
	require.NoError(t, r.RegisterUnit(Unit{
		Entity:    Entity{ID: "unit.meter", Name: "Meter"},
		Symbol:    "m",
		Dimension: "length",
		ToSI:      1,
	}))

	add := testOp("math.add", "math")
	add.Tags = []string{"arithmetic"}
	add.Synonyms = []string{"Plus", "sum"}
	add.Inputs = []ArgSchema{
		{Name: "a", Type: "core.number"},
		{Name: "b", Type: "core.number"},
	}
	add.Outputs = []ArgSchema{{Name: "sum", Type: "core.number"}}
	add.Examples = []Example{{Inputs: map[string]any{"a": 1, "b": 2}, Outputs: map[string]any{"sum": 3}}}
	require.NoError(t, r.RegisterOperation(add))

	length := testOp("vector.length", "vector")
	length.Inputs = []ArgSchema{{Name: "v", Type: "core.vector3", Unit: "unit.meter"}}
	length.Outputs = []ArgSchema{{Name: "length", Type: "core.number", Unit: "unit.meter"}}
	length.DependsOn = []string{"math.add"}
	require.NoError(t, r.RegisterOperation(length))

	require.NoError(t, r.RegisterNode(Node{
		Entity:      Entity{ID: "node.add", Name: "Add"},
		Category:    "math",
		SemanticOps: []string{"math.add"},
	}))
	require.NoError(t, r.RegisterCommand(Command{
		Entity:      Entity{ID: "cmd.add", Name: "Add"},
		Category:    "math",
		SemanticOps: []string{"math.add"},
		Shortcut:    "A",
	}))
	require.NoError(t, r.RegisterSolver(Solver{
		Entity: Entity{ID: "solver.particle", Name: "Particle"},
		Type:   "physics",
		Goals:  []string{"goal.anchor"},
	}))
	require.NoError(t, r.RegisterGoal(Goal{
		Entity:   Entity{ID: "goal.anchor", Name: "Anchor"},
		Solver:   "solver.particle",
		Category: GoalAnchor,
		Arity:    1,
	}))

	r.AddRelation(Relation{Type: RelationUses, From: "vector.length", To: "math.add"})
	return r
}
