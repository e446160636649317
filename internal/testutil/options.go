package testutil

import (
	"strings"

	"github.com/petersancho/semreg/internal/ontology"
)

// defaultOperation returns an operation with sensible defaults: pure,
// deterministic and safe, with the domain taken from the id prefix.
func defaultOperation(id string) ontology.Operation {
	return ontology.Operation{
		Entity:        ontology.Entity{ID: id, Name: id, Stability: ontology.StabilityStable},
		Domain:        domainOf(id),
		Pure:          true,
		Deterministic: true,
		Safety:        ontology.SafetySafe,
	}
}

func domainOf(id string) string {
	if i := strings.Index(id, "."); i > 0 {
		return id[:i]
	}
	return ""
}

// OperationOption configures an operation during builder setup.
type OperationOption func(*ontology.Operation)

// Name sets the operation name.
func Name(name string) OperationOption {
	return func(o *ontology.Operation) { o.Name = name }
}

// Description sets the operation description.
func Description(desc string) OperationOption {
	return func(o *ontology.Operation) { o.Description = desc }
}

// Domain overrides the domain derived from the id prefix.
func Domain(domain string) OperationOption {
	return func(o *ontology.Operation) { o.Domain = domain }
}

// Category sets the operation category.
func Category(category string) OperationOption {
	return func(o *ontology.Operation) { o.Category = category }
}

// Tags adds tags to the operation.
func Tags(tags ...string) OperationOption {
	return func(o *ontology.Operation) { o.Tags = append(o.Tags, tags...) }
}

// Synonyms adds discovery synonyms to the operation.
func Synonyms(synonyms ...string) OperationOption {
	return func(o *ontology.Operation) { o.Synonyms = append(o.Synonyms, synonyms...) }
}

// CanonicalPrompt sets the agent-facing prompt.
func CanonicalPrompt(prompt string) OperationOption {
	return func(o *ontology.Operation) { o.CanonicalPrompt = prompt }
}

// Inputs sets the input argument schemas.
func Inputs(inputs ...ontology.ArgSchema) OperationOption {
	return func(o *ontology.Operation) { o.Inputs = inputs }
}

// Outputs sets the output argument schemas.
func Outputs(outputs ...ontology.ArgSchema) OperationOption {
	return func(o *ontology.Operation) { o.Outputs = outputs }
}

// Examples adds worked examples to the operation.
func Examples(examples ...ontology.Example) OperationOption {
	return func(o *ontology.Operation) { o.Examples = append(o.Examples, examples...) }
}

// Safety sets the safety class.
func Safety(class ontology.SafetyClass) OperationOption {
	return func(o *ontology.Operation) { o.Safety = class }
}

// Pure sets the purity flag.
func Pure(pure bool) OperationOption {
	return func(o *ontology.Operation) { o.Pure = pure }
}

// Deterministic sets the determinism flag.
func Deterministic(det bool) OperationOption {
	return func(o *ontology.Operation) { o.Deterministic = det }
}

// SideEffects declares the operation's side effects.
func SideEffects(effects ...ontology.SideEffect) OperationOption {
	return func(o *ontology.Operation) { o.SideEffects = append(o.SideEffects, effects...) }
}

// DependsOn adds dependency ids.
func DependsOn(ids ...string) OperationOption {
	return func(o *ontology.Operation) { o.DependsOn = append(o.DependsOn, ids...) }
}

// Stability sets the lifecycle stage.
func Stability(s ontology.Stability) OperationOption {
	return func(o *ontology.Operation) { o.Stability = s }
}
