package ontology

import (
	"sort"
	"strings"
)

// AgentCatalog is a function-call style view of every operation, built for
// agent consumption: a parameter schema per capability plus reverse
// indexes for discovery by tag or synonym.
type AgentCatalog struct {
	Capabilities []Capability        `json:"capabilities"`
	TagIndex     map[string][]string `json:"tagIndex"`
	SynonymIndex map[string][]string `json:"synonymIndex"`
}

// Capability is one operation rendered as a callable signature.
type Capability struct {
	OpID            string               `json:"opId"`
	Name            string               `json:"name"`
	Description     string               `json:"description,omitempty"`
	Domain          string               `json:"domain"`
	Parameters      map[string]ParamSpec `json:"parameters"`
	Required        []string             `json:"required"`
	Examples        []Example            `json:"examples,omitempty"`
	Safety          SafetyClass          `json:"safety,omitempty"`
	SafetyNote      string               `json:"safetyNote,omitempty"`
	CanonicalPrompt string               `json:"canonicalPrompt,omitempty"`
	Related         []string             `json:"related,omitempty"`
}

// ParamSpec is the external schema for one parameter.
type ParamSpec struct {
	Type        string `json:"type"`
	Description string `json:"description,omitempty"`
	Default     any    `json:"default,omitempty"`
	Unit        string `json:"unit,omitempty"`
}

// safetyNotes maps each class to the caution an agent should apply before
// invoking an operation of that class.
var safetyNotes = map[SafetyClass]string{
	SafetySafe:        "Pure and deterministic. Safe to invoke autonomously.",
	SafetyIdempotent:  "Pure but not deterministic. Repeat invocations are harmless.",
	SafetyStateful:    "Mutates in-process state. Invoke only inside an owned scope.",
	SafetyExternal:    "Touches the network or file I/O. Requires an allowed environment.",
	SafetyDestructive: "Permanently mutates stored state. Require confirmation first.",
}

// AgentCatalog derives the capability catalog from every registered
// operation. Capabilities are sorted by operation id and index lists are
// sorted, so output is deterministic.
func (r *Registry) AgentCatalog() *AgentCatalog {
	cat := &AgentCatalog{
		Capabilities: make([]Capability, 0, len(r.operations)),
		TagIndex:     make(map[string][]string),
		SynonymIndex: make(map[string][]string),
	}

	for _, op := range r.Operations() {
		c := Capability{
			OpID:            op.ID,
			Name:            op.Name,
			Description:     op.Description,
			Domain:          op.Domain,
			Parameters:      make(map[string]ParamSpec, len(op.Inputs)),
			Required:        make([]string, 0, len(op.Inputs)),
			Examples:        op.Examples,
			Safety:          op.Safety,
			SafetyNote:      safetyNotes[op.Safety],
			CanonicalPrompt: op.CanonicalPrompt,
			Related:         r.relatedIDs(op),
		}
		for _, in := range op.Inputs {
			c.Parameters[in.Name] = ParamSpec{
				Type:        r.schemaType(in.Type),
				Description: in.Description,
				Default:     in.Default,
				Unit:        in.Unit,
			}
			if !in.Optional {
				c.Required = append(c.Required, in.Name)
			}
		}
		cat.Capabilities = append(cat.Capabilities, c)

		for _, tag := range op.Tags {
			cat.TagIndex[tag] = append(cat.TagIndex[tag], op.ID)
		}
		for _, syn := range op.Synonyms {
			key := strings.ToLower(syn)
			cat.SynonymIndex[key] = append(cat.SynonymIndex[key], op.ID)
		}
	}

	for _, ids := range cat.TagIndex {
		sort.Strings(ids)
	}
	for _, ids := range cat.SynonymIndex {
		sort.Strings(ids)
	}
	return cat
}

// schemaType resolves a data type reference to the external schema label
// via the type's base representation. Every base tag is enumerated; an
// unregistered reference or an unknown tag degrades to "any".
func (r *Registry) schemaType(typeID string) string {
	dt, ok := r.dataTypes[typeID]
	if !ok {
		return "any"
	}
	switch dt.Base {
	case BaseNumber:
		return "number"
	case BaseString:
		return "string"
	case BaseBoolean:
		return "boolean"
	case BaseArray:
		return "array"
	case BaseObject:
		return "object"
	case BaseFunction:
		return "function"
	case BaseAny:
		return "any"
	default:
		return "any"
	}
}

// relatedIDs collects the ids an agent might explore next: declared
// dependencies plus the far end of every "uses" relation the operation
// participates in. The list is deduplicated and sorted.
func (r *Registry) relatedIDs(op Operation) []string {
	seen := make(map[string]bool)
	for _, dep := range op.DependsOn {
		seen[dep] = true
	}
	for _, rel := range r.RelationsInvolving(op.ID) {
		if rel.Type != RelationUses {
			continue
		}
		if rel.From == op.ID {
			seen[rel.To] = true
		} else {
			seen[rel.From] = true
		}
	}
	if len(seen) == 0 {
		return nil
	}
	out := make([]string, 0, len(seen))
	for id := range seen {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}
