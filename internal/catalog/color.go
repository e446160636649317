package catalog

import "github.com/petersancho/semreg/internal/legacy"

func colorModule() legacy.Module {
	return legacy.Module{
		Name: "color",
		Items: []any{
			legacy.Meta{
				ID: "color.mix", Domain: "color", Name: "Mix",
				Category: "blend", Tags: []string{"color"},
				Complexity: "O(1)", Cost: 1,
				Pure: true, Deterministic: true,
				Since: "0.2.0", Stable: true,
			},
			legacy.Meta{
				ID: "color.toHex", Domain: "color", Name: "ToHex",
				Category: "convert", Tags: []string{"color", "text"},
				Complexity: "O(1)", Cost: 1,
				Pure: true, Deterministic: true,
				Since: "0.2.0", Stable: true,
			},
			legacy.Meta{
				ID: "color.fromHSL", Domain: "color", Name: "FromHSL",
				Category: "convert", Tags: []string{"color"},
				Complexity: "O(1)", Cost: 1,
				Pure: true, Deterministic: true,
				Since: "0.2.0", Stable: true,
			},
			legacy.Meta{
				ID: "color.contrast", Domain: "color", Name: "Contrast",
				Category: "measure", Tags: []string{"color", "accessibility"},
				Complexity: "O(1)", Cost: 1,
				Pure: true, Deterministic: true,
				Since: "0.3.0", Stable: false,
			},
		},
	}
}
