package catalog

import (
	"github.com/petersancho/semreg/internal/legacy"
	"github.com/petersancho/semreg/internal/ontology"
)

func solverModule() legacy.Module {
	return legacy.Module{
		Name: "solver",
		Items: []any{
			legacy.Meta{
				ID: "solver.solve", Domain: "solver", Name: "Solve",
				Category: "simulate", Tags: []string{"solver"},
				Complexity: "O(n*iterations)", Cost: 20,
				Pure: false, Deterministic: true,
				SideEffects: []ontology.SideEffect{ontology.EffectState},
				Since:       "0.2.0", Stable: true,
			},
			legacy.Meta{
				ID: "solver.step", Domain: "solver", Name: "Step",
				Category: "simulate", Tags: []string{"solver"},
				Complexity: "O(n)", Cost: 5,
				Pure: false, Deterministic: true,
				SideEffects: []ontology.SideEffect{ontology.EffectState},
				Since:       "0.2.0", Stable: true,
			},
			legacy.Meta{
				ID: "solver.reset", Domain: "solver", Name: "Reset",
				Category: "simulate", Tags: []string{"solver"},
				Complexity: "O(n)", Cost: 2,
				Pure: false, Deterministic: true,
				SideEffects: []ontology.SideEffect{ontology.EffectState},
				Since:       "0.2.0", Stable: true,
			},
			legacy.Meta{
				ID: "solver.energy", Domain: "solver", Name: "Energy",
				Category: "measure", Tags: []string{"solver"},
				Complexity: "O(n)", Cost: 2,
				Pure: true, Deterministic: true,
				Since: "0.3.0", Stable: false,
			},
		},
	}
}
