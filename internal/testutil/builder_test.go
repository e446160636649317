package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/petersancho/semreg/internal/ontology"
)

func TestBuilder_WithOperation(t *testing.T) {
	reg := NewBuilder(t).WithOperation("math.add").Build()

	op, ok := reg.Operation("math.add")
	require.True(t, ok)
	require.Equal(t, "math.add", op.Name) // default name is the id
	require.Equal(t, "math", op.Domain)
	require.True(t, op.Pure)
	require.True(t, op.Deterministic)
	require.Equal(t, ontology.SafetySafe, op.Safety)
	require.Equal(t, ontology.StabilityStable, op.Stability)
}

func TestBuilder_WithOperation_AllOptions(t *testing.T) {
	reg := NewBuilder(t).
		WithOperation("geometry.rotate",
			Name("Rotate"),
			Description("Rotates a shape."),
			Domain("transform"),
			Category("spatial"),
			Tags("geometry", "core"),
			Synonyms("turn", "spin"),
			CanonicalPrompt("Rotate the shape by an angle."),
			Inputs(ontology.ArgSchema{Name: "angle", Type: "type.number"}),
			Outputs(ontology.ArgSchema{Name: "rotated"}),
			Examples(ontology.Example{Description: "quarter turn"}),
			Safety(ontology.SafetyIdempotent),
			Pure(true),
			Deterministic(false),
			SideEffects(ontology.EffectUI),
			DependsOn("math.sin"),
			Stability(ontology.StabilityExperimental),
		).
		Build()

	op, ok := reg.Operation("geometry.rotate")
	require.True(t, ok)
	require.Equal(t, "Rotate", op.Name)
	require.Equal(t, "Rotates a shape.", op.Description)
	require.Equal(t, "transform", op.Domain)
	require.Equal(t, "spatial", op.Category)
	require.Equal(t, []string{"geometry", "core"}, op.Tags)
	require.Equal(t, []string{"turn", "spin"}, op.Synonyms)
	require.Equal(t, "Rotate the shape by an angle.", op.CanonicalPrompt)
	require.Len(t, op.Inputs, 1)
	require.Len(t, op.Outputs, 1)
	require.Len(t, op.Examples, 1)
	require.Equal(t, ontology.SafetyIdempotent, op.Safety)
	require.False(t, op.Deterministic)
	require.Equal(t, []ontology.SideEffect{ontology.EffectUI}, op.SideEffects)
	require.Equal(t, []string{"math.sin"}, op.DependsOn)
	require.Equal(t, ontology.StabilityExperimental, op.Stability)
}

func TestBuilder_DomainDefaultsEmptyWithoutPrefix(t *testing.T) {
	reg := NewBuilder(t).WithOperation("standalone").Build()

	op, ok := reg.Operation("standalone")
	require.True(t, ok)
	require.Empty(t, op.Domain)
}

func TestBuilder_RegistersAllKinds(t *testing.T) {
	reg := NewBuilder(t).
		WithDataType("type.number", ontology.BaseNumber).
		WithUnit("unit.meter", "m", "length").
		WithOperation("math.add").
		WithNode("node.calc", "math.add").
		WithCommand("cmd.calc", "math.add").
		WithGoal("goal.min", "solver.opt").
		WithSolver("solver.opt", "goal.min").
		WithRelation(ontology.RelationUses, "node.calc", "math.add").
		Build()

	stats := reg.Stats()
	require.Equal(t, 7, stats.Entities)
	require.Equal(t, 1, stats.Relations)
	for _, kind := range ontology.Kinds() {
		require.Equal(t, 1, stats.ByKind[kind], "kind %s", kind)
	}
}

func TestBuilder_RelationsKeepInsertionOrder(t *testing.T) {
	reg := NewBuilder(t).
		WithOperation("math.add").
		WithOperation("math.sub").
		WithRelation(ontology.RelationUses, "math.sub", "math.add").
		WithRelation(ontology.RelationSupersedes, "math.add", "math.sub").
		Build()

	rels := reg.Relations()
	require.Len(t, rels, 2)
	require.Equal(t, ontology.RelationUses, rels[0].Type)
	require.Equal(t, ontology.RelationSupersedes, rels[1].Type)
}
