package ontology

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRegistry_Validate_CleanCatalog(t *testing.T) {
	r := seedRegistry(t)

	errs := r.Validate()

	require.Empty(t, errs)
	require.True(t, r.IsValid())
}

func TestRegistry_Validate_InputTypeMissing(t *testing.T) {
	r := New()
	op := testOp("math.add", "math")
	op.Inputs = []ArgSchema{{Name: "a", Type: "core.missing"}}
	require.NoError(t, r.RegisterOperation(op))

	errs := r.Validate()

	require.Len(t, errs, 1)
	require.Equal(t, CodeMissingReference, errs[0].Code)
	require.Equal(t, KindOperation, errs[0].Kind)
	require.Equal(t, "inputs.a.type", errs[0].Field)
	require.Equal(t, "core.missing", errs[0].Ref)
}

func TestRegistry_Validate_UnitMissing(t *testing.T) {
	r := New()
	require.NoError(t, r.RegisterDataType(numberType("core.number")))
	op := testOp("vector.length", "vector")
	op.Outputs = []ArgSchema{{Name: "length", Type: "core.number", Unit: "unit.missing"}}
	require.NoError(t, r.RegisterOperation(op))

	errs := r.Validate()

	require.Len(t, errs, 1)
	require.Equal(t, "outputs.length.unit", errs[0].Field)
	require.Equal(t, "unit.missing", errs[0].Ref)
}

func TestRegistry_Validate_DependencyMissing(t *testing.T) {
	r := New()
	op := testOp("math.mul", "math")
	op.DependsOn = []string{"math.add"}
	require.NoError(t, r.RegisterOperation(op))

	errs := r.Validate()

	require.Len(t, errs, 1)
	require.Equal(t, "dependsOn", errs[0].Field)
	require.Equal(t, "math.add", errs[0].Ref)
}

func TestRegistry_Validate_NodeSemanticOpMissing(t *testing.T) {
	r := New()
	require.NoError(t, r.RegisterNode(Node{
		Entity:      Entity{ID: "node.add", Name: "Add"},
		SemanticOps: []string{"math.add"},
	}))

	errs := r.Validate()

	require.Len(t, errs, 1)
	require.Equal(t, KindNode, errs[0].Kind)
	require.Equal(t, "semanticOps", errs[0].Field)
}

func TestRegistry_Validate_CommandSemanticOpMissing(t *testing.T) {
	r := New()
	require.NoError(t, r.RegisterCommand(Command{
		Entity:      Entity{ID: "cmd.add", Name: "Add"},
		SemanticOps: []string{"math.add"},
	}))

	errs := r.Validate()

	require.Len(t, errs, 1)
	require.Equal(t, KindCommand, errs[0].Kind)
}

func TestRegistry_Validate_GoalSolverMissing(t *testing.T) {
	r := New()
	require.NoError(t, r.RegisterGoal(Goal{
		Entity: Entity{ID: "goal.anchor", Name: "Anchor"},
		Solver: "solver.particle",
	}))

	errs := r.Validate()

	require.Len(t, errs, 1)
	require.Equal(t, KindGoal, errs[0].Kind)
	require.Equal(t, "solver", errs[0].Field)
}

func TestRegistry_Validate_SolverGoalMissing(t *testing.T) {
	r := New()
	require.NoError(t, r.RegisterSolver(Solver{
		Entity: Entity{ID: "solver.particle", Name: "Particle"},
		Goals:  []string{"goal.anchor"},
	}))

	errs := r.Validate()

	require.Len(t, errs, 1)
	require.Equal(t, KindSolver, errs[0].Kind)
	require.Equal(t, "goals", errs[0].Field)
}

func TestRegistry_Validate_RelationEndpoints(t *testing.T) {
	r := New()
	require.NoError(t, r.RegisterOperation(testOp("math.add", "math")))

	// One endpoint resolves, the other does not.
	r.AddRelation(Relation{Type: RelationUses, From: "math.add", To: "ghost"})

	errs := r.Validate()

	require.Len(t, errs, 1)
	require.Equal(t, CodeOntologyError, errs[0].Code)
	require.Equal(t, KindRelation, errs[0].Kind)
	require.Equal(t, "to", errs[0].Field)
	require.Equal(t, "ghost", errs[0].Ref)
}

func TestRegistry_Validate_BothEndpointsDangling(t *testing.T) {
	r := New()

	r.AddRelation(Relation{Type: RelationExtends, From: "a", To: "b"})

	errs := r.Validate()

	require.Len(t, errs, 2)
	require.Equal(t, "from", errs[0].Field)
	require.Equal(t, "to", errs[1].Field)
}

func TestRegistry_Validate_OneErrorPerReference(t *testing.T) {
	r := New()
	op := testOp("math.add", "math")
	op.Inputs = []ArgSchema{
		{Name: "a", Type: "core.missing"},
		{Name: "b", Type: "core.missing"},
	}
	require.NoError(t, r.RegisterOperation(op))

	errs := r.Validate()

	// Each dangling reference reports individually, even to the same id.
	require.Len(t, errs, 2)
}

func TestRegistry_Validate_ResolvesAfterLateRegistration(t *testing.T) {
	r := New()
	op := testOp("math.add", "math")
	op.Inputs = []ArgSchema{{Name: "a", Type: "core.number"}}
	require.NoError(t, r.RegisterOperation(op))
	require.False(t, r.IsValid())

	// Transient inconsistency is fine until checked again.
	require.NoError(t, r.RegisterDataType(numberType("core.number")))

	require.True(t, r.IsValid())
}
