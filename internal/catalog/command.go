package catalog

import (
	"github.com/petersancho/semreg/internal/legacy"
	"github.com/petersancho/semreg/internal/ontology"
)

func commandModule() legacy.Module {
	return legacy.Module{
		Name: "command",
		Items: []any{
			legacy.Meta{
				ID: "command.undo", Domain: "command", Name: "Undo",
				Category: "history", Tags: []string{"command", "history"},
				Complexity: "O(1)", Cost: 1,
				Pure: false, Deterministic: true,
				SideEffects: []ontology.SideEffect{ontology.EffectState},
				Since:       "0.1.0", Stable: true,
			},
			legacy.Meta{
				ID: "command.redo", Domain: "command", Name: "Redo",
				Category: "history", Tags: []string{"command", "history"},
				Complexity: "O(1)", Cost: 1,
				Pure: false, Deterministic: true,
				SideEffects: []ontology.SideEffect{ontology.EffectState},
				Since:       "0.1.0", Stable: true,
			},
			legacy.Meta{
				ID: "command.save", Domain: "command", Name: "Save",
				Category: "persist", Tags: []string{"command", "document"},
				Complexity: "O(n)", Cost: 5,
				Pure: false, Deterministic: true,
				SideEffects: []ontology.SideEffect{ontology.EffectFilesystem},
				Since:       "0.1.0", Stable: true,
			},
			legacy.Meta{
				ID: "command.export", Domain: "command", Name: "Export",
				Category: "persist", Tags: []string{"command", "document"},
				Complexity: "O(n)", Cost: 6,
				Pure: false, Deterministic: true,
				SideEffects: []ontology.SideEffect{ontology.EffectIO},
				Since:       "0.2.0", Stable: true,
			},
			legacy.Meta{
				ID: "command.copy", Domain: "command", Name: "Copy",
				Category: "edit", Tags: []string{"command", "edit"},
				Complexity: "O(n)", Cost: 1,
				Pure: false, Deterministic: true,
				SideEffects: []ontology.SideEffect{ontology.EffectClipboard},
				Since:       "0.1.0", Stable: true,
			},
		},
	}
}
