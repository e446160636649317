package testutil

import "github.com/petersancho/semreg/internal/ontology"

// WithComputeFixture adds a small cross-domain dataset: three data
// types, one unit, six operations spanning four safety classes, one
// node, one command, a goal/solver pair and two relations. Every
// cross-reference resolves, so Validate on the built registry is clean.
func (b *Builder) WithComputeFixture() *Builder {
	return b.
		WithDataType("type.number", ontology.BaseNumber).
		WithDataType("type.string", ontology.BaseString).
		WithDataType("type.vector", ontology.BaseArray).
		WithUnit("unit.meter", "m", "length").
		WithOperation("math.add",
			Name("Add"), Description("Adds two numbers."),
			Tags("arithmetic", "core"), Synonyms("sum", "plus"),
			CanonicalPrompt("Add two numbers."),
			Inputs(
				ontology.ArgSchema{Name: "a", Type: "type.number"},
				ontology.ArgSchema{Name: "b", Type: "type.number"},
			),
			Outputs(ontology.ArgSchema{Name: "sum", Type: "type.number"}),
			Examples(ontology.Example{
				Inputs:  map[string]any{"a": 2, "b": 3},
				Outputs: map[string]any{"sum": 5},
			})).
		WithOperation("math.random",
			Name("Random"), Tags("arithmetic"), Synonyms("rand"),
			Deterministic(false), Safety(ontology.SafetyIdempotent)).
		WithOperation("vector.scale",
			Name("Scale"), Tags("geometry"), Synonyms("multiply"),
			Inputs(
				ontology.ArgSchema{Name: "v", Type: "type.vector"},
				ontology.ArgSchema{Name: "factor", Type: "type.number"},
			),
			Outputs(ontology.ArgSchema{Name: "scaled", Type: "type.vector"})).
		WithOperation("strings.upper",
			Name("Uppercase"), Tags("text"), Synonyms("uppercase", "capitalize"),
			Inputs(ontology.ArgSchema{Name: "s", Type: "type.string"}),
			Outputs(ontology.ArgSchema{Name: "upper", Type: "type.string"})).
		WithOperation("data.delete",
			Name("Delete"), Tags("persistence"), Synonyms("remove"),
			Pure(false), SideEffects(ontology.EffectStorage),
			Safety(ontology.SafetyDestructive)).
		WithOperation("workflow.run",
			Name("Run"), Tags("automation"),
			Pure(false), Deterministic(false), SideEffects(ontology.EffectState),
			Safety(ontology.SafetyStateful)).
		WithNode("node.calculator", "math.add").
		WithCommand("cmd.transform", "strings.upper").
		WithGoal("goal.balance", "solver.linear").
		WithSolver("solver.linear", "goal.balance").
		WithRelation(ontology.RelationUses, "node.calculator", "math.add").
		WithRelation(ontology.RelationSolvedBy, "goal.balance", "solver.linear")
}
