package ontology

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	r := New()
	require.NotNil(t, r)
	require.Empty(t, r.Operations())
	require.Empty(t, r.Relations())
}

func TestRegistry_RegisterOperation(t *testing.T) {
	r := New()

	err := r.RegisterOperation(testOp("math.add", "math"))

	require.NoError(t, err)
	op, ok := r.Operation("math.add")
	require.True(t, ok)
	require.Equal(t, "math.add", op.ID)
}

func TestRegistry_RegisterOperation_Duplicate(t *testing.T) {
	r := New()

	first := testOp("math.add", "math")
	first.Name = "Add"
	require.NoError(t, r.RegisterOperation(first))

	second := testOp("math.add", "math")
	second.Name = "Overwrite"
	err := r.RegisterOperation(second)

	require.ErrorIs(t, err, ErrDuplicate)
	var dup *DuplicateEntityError
	require.ErrorAs(t, err, &dup)
	require.Equal(t, KindOperation, dup.Kind)
	require.Equal(t, KindOperation, dup.ExistingKind)

	// First registration is untouched.
	op, ok := r.Operation("math.add")
	require.True(t, ok)
	require.Equal(t, "Add", op.Name)
}

func TestRegistry_Register_CrossKindCollision(t *testing.T) {
	r := New()

	require.NoError(t, r.RegisterOperation(testOp("shared.id", "math")))

	err := r.RegisterGoal(Goal{Entity: Entity{ID: "shared.id", Name: "Goal"}})

	require.ErrorIs(t, err, ErrDuplicate)
	var dup *DuplicateEntityError
	require.ErrorAs(t, err, &dup)
	require.Equal(t, KindGoal, dup.Kind)
	require.Equal(t, KindOperation, dup.ExistingKind)
}

func TestRegistry_Register_EmptyID(t *testing.T) {
	r := New()

	err := r.RegisterDataType(DataType{Base: BaseNumber})

	require.ErrorIs(t, err, ErrEmptyID)
	require.Empty(t, r.DataTypes())
}

func TestRegistry_Lookup(t *testing.T) {
	r := seedRegistry(t)

	got, kind, ok := r.Lookup("goal.anchor")

	require.True(t, ok)
	require.Equal(t, KindGoal, kind)
	goal, isGoal := got.(Goal)
	require.True(t, isGoal)
	require.Equal(t, "solver.particle", goal.Solver)
}

func TestRegistry_Lookup_Unknown(t *testing.T) {
	r := seedRegistry(t)

	_, _, ok := r.Lookup("nope")

	require.False(t, ok)
}

func TestRegistry_Listings_SortedByID(t *testing.T) {
	r := New()
	require.NoError(t, r.RegisterOperation(testOp("c", "math")))
	require.NoError(t, r.RegisterOperation(testOp("a", "math")))
	require.NoError(t, r.RegisterOperation(testOp("b", "math")))

	ops := r.Operations()

	require.Len(t, ops, 3)
	require.Equal(t, "a", ops[0].ID)
	require.Equal(t, "b", ops[1].ID)
	require.Equal(t, "c", ops[2].ID)
}

func TestRegistry_AddRelation_AppendOnly(t *testing.T) {
	r := New()
	rel := Relation{Type: RelationUses, From: "x", To: "y"}

	// Endpoints are unchecked at insertion and duplicates are kept.
	r.AddRelation(rel)
	r.AddRelation(rel)

	require.Len(t, r.Relations(), 2)
}

func TestRegistry_Stats(t *testing.T) {
	r := seedRegistry(t)

	s := r.Stats()

	require.Equal(t, 9, s.Entities)
	require.Equal(t, 2, s.ByKind[KindDataType])
	require.Equal(t, 2, s.ByKind[KindOperation])
	require.Equal(t, 1, s.ByKind[KindGoal])
	require.Equal(t, 1, s.ByDomain["math"])
	require.Equal(t, 1, s.ByDomain["vector"])
	require.Equal(t, 2, s.BySafety[SafetySafe])
	require.Equal(t, 2, s.Pure)
	require.Equal(t, 2, s.Deterministic)
	require.Equal(t, 1, s.Relations)
}
