package catalog

import "github.com/petersancho/semreg/internal/legacy"

// mathModule is an old-style table: bare records, no schemas. The math
// engine lives in the host application.
func mathModule() legacy.Module {
	return legacy.Module{
		Name: "math",
		Items: []any{
			legacy.Meta{
				ID: "math.add", Domain: "math", Name: "Add",
				Category: "arithmetic", Tags: []string{"core", "arithmetic"},
				Complexity: "O(1)", Cost: 1,
				Pure: true, Deterministic: true,
				Since: "0.1.0", Stable: true,
			},
			legacy.Meta{
				ID: "math.subtract", Domain: "math", Name: "Subtract",
				Category: "arithmetic", Tags: []string{"core", "arithmetic"},
				Complexity: "O(1)", Cost: 1,
				Pure: true, Deterministic: true,
				Since: "0.1.0", Stable: true,
			},
			legacy.Meta{
				ID: "math.multiply", Domain: "math", Name: "Multiply",
				Category: "arithmetic", Tags: []string{"core", "arithmetic"},
				Complexity: "O(1)", Cost: 1,
				Pure: true, Deterministic: true,
				Since: "0.1.0", Stable: true,
			},
			legacy.Meta{
				ID: "math.divide", Domain: "math", Name: "Divide",
				Category: "arithmetic", Tags: []string{"core", "arithmetic"},
				Complexity: "O(1)", Cost: 1,
				Pure: true, Deterministic: true,
				Since: "0.1.0", Stable: true,
			},
			legacy.Meta{
				ID: "math.min", Domain: "math", Name: "Min",
				Category: "comparison", Tags: []string{"core"},
				Complexity: "O(n)", Cost: 1,
				Pure: true, Deterministic: true,
				Since: "0.1.0", Stable: true,
			},
			legacy.Meta{
				ID: "math.max", Domain: "math", Name: "Max",
				Category: "comparison", Tags: []string{"core"},
				Complexity: "O(n)", Cost: 1,
				Pure: true, Deterministic: true,
				Since: "0.1.0", Stable: true,
			},
			legacy.Meta{
				ID: "math.clamp", Domain: "math", Name: "Clamp",
				Category: "comparison", Tags: []string{"core"},
				Complexity: "O(1)", Cost: 1,
				Pure: true, Deterministic: true,
				Dependencies: []string{"math.min", "math.max"},
				Since:        "0.2.0", Stable: true,
			},
			legacy.Meta{
				// Pure in the legacy sense (no declared effects) but not
				// reproducible, so the bridge classifies it idempotent.
				ID: "math.random", Domain: "math", Name: "Random",
				Category: "generator", Tags: []string{"core", "random"},
				Complexity: "O(1)", Cost: 1,
				Pure: true, Deterministic: false,
				Since: "0.1.0", Stable: true,
			},
		},
	}
}
