package legacy

import "github.com/petersancho/semreg/internal/ontology"

// destructiveEffects are the side-effect kinds that permanently mutate
// stored state.
var destructiveEffects = map[ontology.SideEffect]bool{
	ontology.EffectFilesystem: true,
	ontology.EffectStorage:    true,
}

// externalEffects are the side-effect kinds that leave the process.
var externalEffects = map[ontology.SideEffect]bool{
	ontology.EffectNetwork: true,
	ontology.EffectIO:      true,
}

// InferSafety derives the safety class from a legacy declaration, in
// strict precedence: any destructive side effect wins, then any external
// one, then any remaining side effect means stateful. With no declared
// effects, pure and deterministic is safe, pure alone is idempotent, and
// everything else defaults to stateful.
func InferSafety(m Meta) ontology.SafetyClass {
	for _, e := range m.SideEffects {
		if destructiveEffects[e] {
			return ontology.SafetyDestructive
		}
	}
	for _, e := range m.SideEffects {
		if externalEffects[e] {
			return ontology.SafetyExternal
		}
	}
	if len(m.SideEffects) > 0 {
		return ontology.SafetyStateful
	}
	if m.Pure && m.Deterministic {
		return ontology.SafetySafe
	}
	if m.Pure {
		return ontology.SafetyIdempotent
	}
	return ontology.SafetyStateful
}

// MetaToOperation lifts a legacy record into the registry's Operation
// shape. Shared fields copy structurally, safety is inferred, and inputs
// and outputs stay empty because the legacy format carries no schema.
func MetaToOperation(m Meta) ontology.Operation {
	return ontology.Operation{
		Entity: ontology.Entity{
			ID:        m.ID,
			Name:      m.Name,
			Since:     m.Since,
			Stability: stabilityFor(m.Stable),
		},
		Domain:        m.Domain,
		Category:      m.Category,
		Tags:          m.Tags,
		Complexity:    m.Complexity,
		Cost:          m.Cost,
		Pure:          m.Pure,
		Deterministic: m.Deterministic,
		SideEffects:   m.SideEffects,
		Safety:        InferSafety(m),
		DependsOn:     m.Dependencies,
	}
}

// OperationToMeta projects an operation back onto the legacy shape,
// dropping the fields the legacy format cannot express: inputs, outputs,
// examples, synonyms, canonical prompt and invariants.
func OperationToMeta(op ontology.Operation) Meta {
	return Meta{
		ID:            op.ID,
		Domain:        op.Domain,
		Name:          op.Name,
		Category:      op.Category,
		Tags:          op.Tags,
		Complexity:    op.Complexity,
		Cost:          op.Cost,
		Pure:          op.Pure,
		Deterministic: op.Deterministic,
		SideEffects:   op.SideEffects,
		Dependencies:  op.DependsOn,
		Since:         op.Since,
		Stable:        stableFor(op.Stability),
	}
}

func stabilityFor(stable bool) ontology.Stability {
	if stable {
		return ontology.StabilityStable
	}
	return ontology.StabilityExperimental
}

// stableFor re-derives the legacy boolean: anything that is neither
// experimental nor deprecated counts as stable.
func stableFor(s ontology.Stability) bool {
	return s != ontology.StabilityExperimental && s != ontology.StabilityDeprecated
}
