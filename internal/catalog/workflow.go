package catalog

import (
	"github.com/petersancho/semreg/internal/legacy"
	"github.com/petersancho/semreg/internal/ontology"
)

func workflowModule() legacy.Module {
	return legacy.Module{
		Name: "workflow",
		Items: []any{
			legacy.Meta{
				ID: "workflow.run", Domain: "workflow", Name: "Run",
				Category: "execute", Tags: []string{"workflow"},
				Complexity: "O(nodes)", Cost: 10,
				Pure: false, Deterministic: false,
				SideEffects: []ontology.SideEffect{ontology.EffectState},
				Since:       "0.3.0", Stable: true,
			},
			legacy.Meta{
				ID: "workflow.validate", Domain: "workflow", Name: "Validate",
				Category: "check", Tags: []string{"workflow"},
				Complexity: "O(nodes)", Cost: 3,
				Pure: true, Deterministic: true,
				Since: "0.3.0", Stable: true,
			},
			legacy.Meta{
				ID: "workflow.export", Domain: "workflow", Name: "Export",
				Category: "io", Tags: []string{"workflow", "io"},
				Complexity: "O(nodes)", Cost: 4,
				Pure: false, Deterministic: true,
				SideEffects: []ontology.SideEffect{ontology.EffectIO},
				Since:       "0.3.0", Stable: true,
			},
			legacy.Meta{
				ID: "workflow.fetch", Domain: "workflow", Name: "Fetch",
				Category: "io", Tags: []string{"workflow", "io"},
				Complexity: "O(1)", Cost: 8,
				Pure: false, Deterministic: false,
				SideEffects: []ontology.SideEffect{ontology.EffectNetwork},
				Since:       "0.4.0", Stable: false,
			},
		},
	}
}
