package catalog

import (
	"fmt"
	"math"

	"github.com/petersancho/semreg/internal/legacy"
	"github.com/petersancho/semreg/internal/ontology"
)

// vectorModule is a v2-enriched table: annotated callables with schemas,
// examples and agent metadata. The implementations here are the real
// ones; vectors travel as []float64.
func vectorModule() legacy.Module {
	return legacy.Module{
		Name: "vector",
		Items: []any{
			legacy.DefineOpV2(
				legacy.Meta{
					ID: "vector.length", Domain: "vector", Name: "Length",
					Category: "measure", Tags: []string{"core", "vector"},
					Complexity: "O(1)", Cost: 1,
					Pure: true, Deterministic: true,
					Since: "0.1.0", Stable: true,
				},
				legacy.Extension{
					Inputs:          []ontology.ArgSchema{{Name: "v", Type: "core.vector3", Description: "Vector to measure"}},
					Outputs:         []ontology.ArgSchema{{Name: "length", Type: "core.number"}},
					Synonyms:        []string{"magnitude", "norm"},
					CanonicalPrompt: "measure the length of a vector",
					Examples: []ontology.Example{{
						Inputs:  map[string]any{"v": []float64{3, 4, 0}},
						Outputs: map[string]any{"length": 5.0},
					}},
					Invariants: []string{"length(v) >= 0"},
				},
				func(args ...any) (any, error) {
					v, err := vecArg(args, 0)
					if err != nil {
						return nil, err
					}
					var sum float64
					for _, c := range v {
						sum += c * c
					}
					return math.Sqrt(sum), nil
				},
			),
			legacy.DefineOpV2(
				legacy.Meta{
					ID: "vector.dot", Domain: "vector", Name: "Dot",
					Category: "measure", Tags: []string{"core", "vector"},
					Complexity: "O(1)", Cost: 1,
					Pure: true, Deterministic: true,
					Since: "0.1.0", Stable: true,
				},
				legacy.Extension{
					Inputs: []ontology.ArgSchema{
						{Name: "a", Type: "core.vector3"},
						{Name: "b", Type: "core.vector3"},
					},
					Outputs:         []ontology.ArgSchema{{Name: "dot", Type: "core.number"}},
					Synonyms:        []string{"inner product", "scalar product"},
					CanonicalPrompt: "compute the dot product of two vectors",
					Examples: []ontology.Example{{
						Inputs:  map[string]any{"a": []float64{1, 0, 0}, "b": []float64{0, 1, 0}},
						Outputs: map[string]any{"dot": 0.0},
					}},
					Invariants: []string{"dot(a,b) == dot(b,a)"},
				},
				func(args ...any) (any, error) {
					a, err := vecArg(args, 0)
					if err != nil {
						return nil, err
					}
					b, err := vecArg(args, 1)
					if err != nil {
						return nil, err
					}
					if len(a) != len(b) {
						return nil, fmt.Errorf("dimension mismatch: %d vs %d", len(a), len(b))
					}
					var sum float64
					for i := range a {
						sum += a[i] * b[i]
					}
					return sum, nil
				},
			),
			legacy.DefineOpV2(
				legacy.Meta{
					ID: "vector.cross", Domain: "vector", Name: "Cross",
					Category: "construct", Tags: []string{"core", "vector"},
					Complexity: "O(1)", Cost: 1,
					Pure: true, Deterministic: true,
					Since: "0.1.0", Stable: true,
				},
				legacy.Extension{
					Inputs: []ontology.ArgSchema{
						{Name: "a", Type: "core.vector3"},
						{Name: "b", Type: "core.vector3"},
					},
					Outputs:         []ontology.ArgSchema{{Name: "cross", Type: "core.vector3"}},
					Synonyms:        []string{"cross product"},
					CanonicalPrompt: "compute the cross product of two 3d vectors",
				},
				func(args ...any) (any, error) {
					a, err := vec3Arg(args, 0)
					if err != nil {
						return nil, err
					}
					b, err := vec3Arg(args, 1)
					if err != nil {
						return nil, err
					}
					return []float64{
						a[1]*b[2] - a[2]*b[1],
						a[2]*b[0] - a[0]*b[2],
						a[0]*b[1] - a[1]*b[0],
					}, nil
				},
			),
			legacy.DefineOpV2(
				legacy.Meta{
					ID: "vector.add", Domain: "vector", Name: "Add",
					Category: "construct", Tags: []string{"core", "vector"},
					Complexity: "O(1)", Cost: 1,
					Pure: true, Deterministic: true,
					Since: "0.1.0", Stable: true,
				},
				legacy.Extension{
					Inputs: []ontology.ArgSchema{
						{Name: "a", Type: "core.vector3"},
						{Name: "b", Type: "core.vector3"},
					},
					Outputs:  []ontology.ArgSchema{{Name: "sum", Type: "core.vector3"}},
					Synonyms: []string{"translate"},
				},
				func(args ...any) (any, error) {
					a, err := vecArg(args, 0)
					if err != nil {
						return nil, err
					}
					b, err := vecArg(args, 1)
					if err != nil {
						return nil, err
					}
					if len(a) != len(b) {
						return nil, fmt.Errorf("dimension mismatch: %d vs %d", len(a), len(b))
					}
					out := make([]float64, len(a))
					for i := range a {
						out[i] = a[i] + b[i]
					}
					return out, nil
				},
			),
			legacy.DefineOpV2(
				legacy.Meta{
					ID: "vector.scale", Domain: "vector", Name: "Scale",
					Category: "construct", Tags: []string{"core", "vector"},
					Complexity: "O(1)", Cost: 1,
					Pure: true, Deterministic: true,
					Since: "0.1.0", Stable: true,
				},
				legacy.Extension{
					Inputs: []ontology.ArgSchema{
						{Name: "v", Type: "core.vector3"},
						{Name: "factor", Type: "core.number"},
					},
					Outputs: []ontology.ArgSchema{{Name: "scaled", Type: "core.vector3"}},
				},
				func(args ...any) (any, error) {
					v, err := vecArg(args, 0)
					if err != nil {
						return nil, err
					}
					if len(args) < 2 {
						return nil, fmt.Errorf("missing argument 1")
					}
					f, ok := args[1].(float64)
					if !ok {
						return nil, fmt.Errorf("argument 1: expected float64, got %T", args[1])
					}
					out := make([]float64, len(v))
					for i := range v {
						out[i] = v[i] * f
					}
					return out, nil
				},
			),
			legacy.DefineOpV2(
				legacy.Meta{
					ID: "vector.normalize", Domain: "vector", Name: "Normalize",
					Category: "construct", Tags: []string{"core", "vector"},
					Complexity: "O(1)", Cost: 1,
					Pure: true, Deterministic: true,
					Dependencies: []string{"vector.length", "vector.scale"},
					Since:        "0.2.0", Stable: true,
				},
				legacy.Extension{
					Inputs:     []ontology.ArgSchema{{Name: "v", Type: "core.vector3"}},
					Outputs:    []ontology.ArgSchema{{Name: "unit", Type: "core.vector3"}},
					Synonyms:   []string{"unit vector"},
					Invariants: []string{"length(normalize(v)) == 1 for v != 0"},
				},
				func(args ...any) (any, error) {
					v, err := vecArg(args, 0)
					if err != nil {
						return nil, err
					}
					var sum float64
					for _, c := range v {
						sum += c * c
					}
					n := math.Sqrt(sum)
					if n == 0 {
						return nil, fmt.Errorf("cannot normalize the zero vector")
					}
					out := make([]float64, len(v))
					for i := range v {
						out[i] = v[i] / n
					}
					return out, nil
				},
			),
		},
	}
}

func vecArg(args []any, i int) ([]float64, error) {
	if i >= len(args) {
		return nil, fmt.Errorf("missing argument %d", i)
	}
	v, ok := args[i].([]float64)
	if !ok {
		return nil, fmt.Errorf("argument %d: expected []float64, got %T", i, args[i])
	}
	return v, nil
}

func vec3Arg(args []any, i int) ([]float64, error) {
	v, err := vecArg(args, i)
	if err != nil {
		return nil, err
	}
	if len(v) != 3 {
		return nil, fmt.Errorf("argument %d: expected 3 components, got %d", i, len(v))
	}
	return v, nil
}
