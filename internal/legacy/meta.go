// Package legacy bridges the flat pre-registry operation metadata format
// to the registry's Operation shape and back, inferring a safety class
// along the way, and bulk-ingests the heterogeneous per-domain catalogs.
package legacy

import "github.com/petersancho/semreg/internal/ontology"

// Meta is the flat operation metadata shape the legacy catalogs declare.
// It carries no input/output schemas; those exist only in the registry's
// richer Operation shape.
type Meta struct {
	ID            string                `json:"id"`
	Domain        string                `json:"domain"`
	Name          string                `json:"name"`
	Category      string                `json:"category,omitempty"`
	Tags          []string              `json:"tags,omitempty"`
	Complexity    string                `json:"complexity,omitempty"`
	Cost          float64               `json:"cost,omitempty"`
	Pure          bool                  `json:"pure"`
	Deterministic bool                  `json:"deterministic"`
	SideEffects   []ontology.SideEffect `json:"sideEffects,omitempty"`
	Dependencies  []string              `json:"dependencies,omitempty"`
	Since         string                `json:"since,omitempty"`
	Stable        bool                  `json:"stable"`
}
