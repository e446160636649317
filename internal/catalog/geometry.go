package catalog

import (
	"github.com/petersancho/semreg/internal/legacy"
	"github.com/petersancho/semreg/internal/ontology"
)

// geometryModule describes kernel operations the host executes. Entries
// are v2-annotated for the schemas but none of the engines link here.
func geometryModule() legacy.Module {
	return legacy.Module{
		Name: "geometry",
		Items: []any{
			legacy.DefineOpV2(
				legacy.Meta{
					ID: "geometry.extrude", Domain: "geometry", Name: "Extrude",
					Category: "construct", Tags: []string{"geometry", "mesh"},
					Complexity: "O(n)", Cost: 5,
					Pure: true, Deterministic: true,
					Dependencies: []string{"vector.scale"},
					Since:        "0.2.0", Stable: true,
				},
				legacy.Extension{
					Inputs: []ontology.ArgSchema{
						{Name: "profile", Type: "core.curve"},
						{Name: "direction", Type: "core.vector3"},
						{Name: "distance", Type: "core.number", Unit: "unit.millimeter"},
					},
					Outputs:         []ontology.ArgSchema{{Name: "solid", Type: "core.mesh"}},
					Synonyms:        []string{"pull", "sweep straight"},
					CanonicalPrompt: "extrude a profile curve along a direction",
				},
				nil,
			),
			legacy.DefineOpV2(
				legacy.Meta{
					ID: "geometry.loft", Domain: "geometry", Name: "Loft",
					Category: "construct", Tags: []string{"geometry", "mesh"},
					Complexity: "O(n^2)", Cost: 8,
					Pure: true, Deterministic: true,
					Since: "0.3.0", Stable: false,
				},
				legacy.Extension{
					Inputs:  []ontology.ArgSchema{{Name: "sections", Type: "core.list"}},
					Outputs: []ontology.ArgSchema{{Name: "surface", Type: "core.mesh"}},
				},
				nil,
			),
			legacy.DefineOpV2(
				legacy.Meta{
					ID: "geometry.boolean", Domain: "geometry", Name: "Boolean",
					Category: "construct", Tags: []string{"geometry", "mesh"},
					Complexity: "O(n log n)", Cost: 10,
					Pure: true, Deterministic: true,
					Since: "0.3.0", Stable: false,
				},
				legacy.Extension{
					Inputs: []ontology.ArgSchema{
						{Name: "a", Type: "core.mesh"},
						{Name: "b", Type: "core.mesh"},
						{Name: "mode", Type: "core.string", Default: "union",
							Constraints: map[string]any{"enum": []string{"union", "difference", "intersection"}}},
					},
					Outputs:         []ontology.ArgSchema{{Name: "result", Type: "core.mesh"}},
					CanonicalPrompt: "combine two meshes with a boolean operation",
				},
				nil,
			),
			legacy.DefineOpV2(
				legacy.Meta{
					ID: "geometry.measure", Domain: "geometry", Name: "Measure",
					Category: "measure", Tags: []string{"geometry"},
					Complexity: "O(n)", Cost: 3,
					Pure: true, Deterministic: true,
					Dependencies: []string{"vector.length"},
					Since:        "0.2.0", Stable: true,
				},
				legacy.Extension{
					Inputs:  []ontology.ArgSchema{{Name: "shape", Type: "core.geometry"}},
					Outputs: []ontology.ArgSchema{{Name: "area", Type: "core.number", Unit: "unit.meter"}},
					Examples: []ontology.Example{{
						Description: "unit cube face",
						Inputs:      map[string]any{"shape": "mesh:cube"},
						Outputs:     map[string]any{"area": 6.0},
					}},
				},
				nil,
			),
			legacy.DefineOpV2(
				legacy.Meta{
					ID: "geometry.tessellate", Domain: "geometry", Name: "Tessellate",
					Category: "convert", Tags: []string{"geometry", "mesh"},
					Complexity: "O(n)", Cost: 6,
					Pure: true, Deterministic: true,
					Since: "0.2.0", Stable: true,
				},
				legacy.Extension{
					Inputs: []ontology.ArgSchema{
						{Name: "shape", Type: "core.geometry"},
						{Name: "tolerance", Type: "core.number", Default: 0.01, Optional: true, Unit: "unit.millimeter"},
					},
					Outputs: []ontology.ArgSchema{{Name: "mesh", Type: "core.mesh"}},
				},
				nil,
			),
			legacy.DefineOpV2(
				legacy.Meta{
					ID: "geometry.offset", Domain: "geometry", Name: "Offset",
					Category: "construct", Tags: []string{"geometry", "curve"},
					Complexity: "O(n)", Cost: 4,
					Pure: true, Deterministic: true,
					Since: "0.3.0", Stable: false,
				},
				legacy.Extension{
					Inputs: []ontology.ArgSchema{
						{Name: "curve", Type: "core.curve"},
						{Name: "distance", Type: "core.number", Unit: "unit.millimeter"},
					},
					Outputs: []ontology.ArgSchema{{Name: "offset", Type: "core.curve"}},
				},
				nil,
			),
		},
	}
}
