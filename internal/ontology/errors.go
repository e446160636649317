package ontology

import (
	"errors"
	"fmt"
)

// Registry errors
var (
	ErrDuplicate = errors.New("duplicate entity id")
	ErrEmptyID   = errors.New("entity id cannot be empty")
	ErrNotFound  = errors.New("entity not found")
)

// DuplicateEntityError reports a registration whose id is already taken.
// Ids are unique across every kind, so ExistingKind names the store that
// holds the prior claim, which is not necessarily the kind being added.
type DuplicateEntityError struct {
	Kind         Kind
	ID           string
	ExistingKind Kind
}

func (e *DuplicateEntityError) Error() string {
	if e.Kind != e.ExistingKind {
		return fmt.Sprintf("duplicate entity id: cannot register %s %q, id already held by a %s", e.Kind, e.ID, e.ExistingKind)
	}
	return fmt.Sprintf("duplicate entity id: %s %q already registered", e.Kind, e.ID)
}

// Is matches errors.Is(err, ErrDuplicate).
func (e *DuplicateEntityError) Is(target error) bool {
	return target == ErrDuplicate
}

// ValidationCode classifies an integrity failure found by Validate.
type ValidationCode string

const (
	// CodeMissingReference marks a typed cross-reference that does not
	// resolve to a registered entity of the expected kind.
	CodeMissingReference ValidationCode = "MissingReference"

	// CodeOntologyError marks a relation endpoint that does not resolve
	// to any registered entity at all.
	CodeOntologyError ValidationCode = "OntologyError"
)

// ValidationError is one dangling cross-reference. Validate returns them
// in a batch and never panics mid-sweep.
type ValidationError struct {
	Code    ValidationCode `json:"code"`
	Kind    Kind           `json:"kind"`
	ID      string         `json:"id"`
	Field   string         `json:"field"`
	Ref     string         `json:"ref"`
	Message string         `json:"message"`
}

func (e ValidationError) Error() string {
	return e.Message
}

func missingRef(kind Kind, id, field, ref string) ValidationError {
	return ValidationError{
		Code:    CodeMissingReference,
		Kind:    kind,
		ID:      id,
		Field:   field,
		Ref:     ref,
		Message: fmt.Sprintf("%s %q: field %s references unknown id %q", kind, id, field, ref),
	}
}

func endpointErr(rel Relation, field, ref string) ValidationError {
	return ValidationError{
		Code:    CodeOntologyError,
		Kind:    KindRelation,
		ID:      fmt.Sprintf("%s:%s->%s", rel.Type, rel.From, rel.To),
		Field:   field,
		Ref:     ref,
		Message: fmt.Sprintf("relation %s %s->%s: %s endpoint %q does not resolve", rel.Type, rel.From, rel.To, field, ref),
	}
}
