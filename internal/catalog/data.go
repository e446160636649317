package catalog

import (
	"github.com/petersancho/semreg/internal/legacy"
	"github.com/petersancho/semreg/internal/ontology"
)

func dataModule() legacy.Module {
	return legacy.Module{
		Name: "data",
		Items: []any{
			// Catalog format version marker, kept from the original table.
			// Migration classifies it unrecognized and drops it.
			"2.1.0",
			legacy.Meta{
				ID: "data.get", Domain: "data", Name: "Get",
				Category: "access", Tags: []string{"core", "record"},
				Complexity: "O(1)", Cost: 1,
				Pure: true, Deterministic: true,
				Since: "0.1.0", Stable: true,
			},
			legacy.Meta{
				ID: "data.set", Domain: "data", Name: "Set",
				Category: "access", Tags: []string{"core", "record"},
				Complexity: "O(1)", Cost: 1,
				Pure: false, Deterministic: true,
				SideEffects: []ontology.SideEffect{ontology.EffectState},
				Since:       "0.1.0", Stable: true,
			},
			legacy.Meta{
				ID: "data.merge", Domain: "data", Name: "Merge",
				Category: "transform", Tags: []string{"record"},
				Complexity: "O(n)", Cost: 2,
				Pure: true, Deterministic: true,
				Since: "0.2.0", Stable: true,
			},
			legacy.Meta{
				ID: "data.filter", Domain: "data", Name: "Filter",
				Category: "transform", Tags: []string{"core", "list"},
				Complexity: "O(n)", Cost: 2,
				Pure: true, Deterministic: true,
				Since: "0.1.0", Stable: true,
			},
			legacy.Meta{
				ID: "data.sort", Domain: "data", Name: "Sort",
				Category: "transform", Tags: []string{"core", "list"},
				Complexity: "O(n log n)", Cost: 3,
				Pure: true, Deterministic: true,
				Since: "0.1.0", Stable: true,
			},
			legacy.Meta{
				ID: "data.groupBy", Domain: "data", Name: "GroupBy",
				Category: "transform", Tags: []string{"list"},
				Complexity: "O(n)", Cost: 2,
				Pure: true, Deterministic: true,
				Dependencies: []string{"data.get"},
				Since:        "0.3.0", Stable: false,
			},
		},
	}
}
