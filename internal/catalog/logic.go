package catalog

import "github.com/petersancho/semreg/internal/legacy"

func logicModule() legacy.Module {
	return legacy.Module{
		Name: "logic",
		Items: []any{
			legacy.Meta{
				ID: "logic.and", Domain: "logic", Name: "And",
				Category: "boolean", Tags: []string{"core", "boolean"},
				Complexity: "O(1)", Cost: 1,
				Pure: true, Deterministic: true,
				Since: "0.1.0", Stable: true,
			},
			legacy.Meta{
				ID: "logic.or", Domain: "logic", Name: "Or",
				Category: "boolean", Tags: []string{"core", "boolean"},
				Complexity: "O(1)", Cost: 1,
				Pure: true, Deterministic: true,
				Since: "0.1.0", Stable: true,
			},
			legacy.Meta{
				ID: "logic.not", Domain: "logic", Name: "Not",
				Category: "boolean", Tags: []string{"core", "boolean"},
				Complexity: "O(1)", Cost: 1,
				Pure: true, Deterministic: true,
				Since: "0.1.0", Stable: true,
			},
			legacy.Meta{
				ID: "logic.xor", Domain: "logic", Name: "Xor",
				Category: "boolean", Tags: []string{"boolean"},
				Complexity: "O(1)", Cost: 1,
				Pure: true, Deterministic: true,
				Since: "0.2.0", Stable: true,
			},
			legacy.Meta{
				ID: "logic.select", Domain: "logic", Name: "Select",
				Category: "control", Tags: []string{"core", "control"},
				Complexity: "O(1)", Cost: 1,
				Pure: true, Deterministic: true,
				Since: "0.1.0", Stable: true,
			},
		},
	}
}
