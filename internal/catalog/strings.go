package catalog

import (
	"fmt"
	"strings"

	"github.com/petersancho/semreg/internal/legacy"
	"github.com/petersancho/semreg/internal/ontology"
)

// stringModule is v2-enriched like vectorModule; the implementations are
// thin wrappers over the standard library.
func stringModule() legacy.Module {
	return legacy.Module{
		Name: "string",
		Items: []any{
			legacy.DefineOpV2(
				legacy.Meta{
					ID: "string.concat", Domain: "string", Name: "Concat",
					Category: "construct", Tags: []string{"core", "text"},
					Complexity: "O(n)", Cost: 1,
					Pure: true, Deterministic: true,
					Since: "0.1.0", Stable: true,
				},
				legacy.Extension{
					Inputs: []ontology.ArgSchema{
						{Name: "a", Type: "core.string"},
						{Name: "b", Type: "core.string"},
					},
					Outputs:         []ontology.ArgSchema{{Name: "joined", Type: "core.string"}},
					Synonyms:        []string{"join", "append"},
					CanonicalPrompt: "join two strings together",
					Examples: []ontology.Example{{
						Inputs:  map[string]any{"a": "semantic ", "b": "registry"},
						Outputs: map[string]any{"joined": "semantic registry"},
					}},
				},
				func(args ...any) (any, error) {
					a, err := strArg(args, 0)
					if err != nil {
						return nil, err
					}
					b, err := strArg(args, 1)
					if err != nil {
						return nil, err
					}
					return a + b, nil
				},
			),
			legacy.DefineOpV2(
				legacy.Meta{
					ID: "string.upper", Domain: "string", Name: "Upper",
					Category: "transform", Tags: []string{"text"},
					Complexity: "O(n)", Cost: 1,
					Pure: true, Deterministic: true,
					Since: "0.1.0", Stable: true,
				},
				legacy.Extension{
					Inputs:   []ontology.ArgSchema{{Name: "s", Type: "core.string"}},
					Outputs:  []ontology.ArgSchema{{Name: "upper", Type: "core.string"}},
					Synonyms: []string{"uppercase", "capitalize all"},
				},
				func(args ...any) (any, error) {
					s, err := strArg(args, 0)
					if err != nil {
						return nil, err
					}
					return strings.ToUpper(s), nil
				},
			),
			legacy.DefineOpV2(
				legacy.Meta{
					ID: "string.lower", Domain: "string", Name: "Lower",
					Category: "transform", Tags: []string{"text"},
					Complexity: "O(n)", Cost: 1,
					Pure: true, Deterministic: true,
					Since: "0.1.0", Stable: true,
				},
				legacy.Extension{
					Inputs:   []ontology.ArgSchema{{Name: "s", Type: "core.string"}},
					Outputs:  []ontology.ArgSchema{{Name: "lower", Type: "core.string"}},
					Synonyms: []string{"lowercase"},
				},
				func(args ...any) (any, error) {
					s, err := strArg(args, 0)
					if err != nil {
						return nil, err
					}
					return strings.ToLower(s), nil
				},
			),
			legacy.DefineOpV2(
				legacy.Meta{
					ID: "string.trim", Domain: "string", Name: "Trim",
					Category: "transform", Tags: []string{"text"},
					Complexity: "O(n)", Cost: 1,
					Pure: true, Deterministic: true,
					Since: "0.2.0", Stable: true,
				},
				legacy.Extension{
					Inputs:  []ontology.ArgSchema{{Name: "s", Type: "core.string"}},
					Outputs: []ontology.ArgSchema{{Name: "trimmed", Type: "core.string"}},
				},
				func(args ...any) (any, error) {
					s, err := strArg(args, 0)
					if err != nil {
						return nil, err
					}
					return strings.TrimSpace(s), nil
				},
			),
			legacy.DefineOpV2(
				legacy.Meta{
					ID: "string.split", Domain: "string", Name: "Split",
					Category: "transform", Tags: []string{"text", "list"},
					Complexity: "O(n)", Cost: 1,
					Pure: true, Deterministic: true,
					Since: "0.2.0", Stable: true,
				},
				legacy.Extension{
					Inputs: []ontology.ArgSchema{
						{Name: "s", Type: "core.string"},
						{Name: "sep", Type: "core.string", Default: " ", Optional: true},
					},
					Outputs:         []ontology.ArgSchema{{Name: "parts", Type: "core.list"}},
					CanonicalPrompt: "split a string on a separator",
				},
				func(args ...any) (any, error) {
					s, err := strArg(args, 0)
					if err != nil {
						return nil, err
					}
					sep := " "
					if len(args) > 1 {
						if sep, err = strArg(args, 1); err != nil {
							return nil, err
						}
					}
					return strings.Split(s, sep), nil
				},
			),
			legacy.DefineOpV2(
				legacy.Meta{
					ID: "string.template", Domain: "string", Name: "Template",
					Category: "construct", Tags: []string{"text"},
					Complexity: "O(n)", Cost: 2,
					Pure: true, Deterministic: true,
					Dependencies: []string{"string.concat"},
					Since:        "0.3.0", Stable: false,
				},
				legacy.Extension{
					Inputs: []ontology.ArgSchema{
						{Name: "pattern", Type: "core.string"},
						{Name: "values", Type: "core.record"},
					},
					Outputs: []ontology.ArgSchema{{Name: "rendered", Type: "core.string"}},
				},
				nil, // engine-side; described but not linked here
			),
		},
	}
}

func strArg(args []any, i int) (string, error) {
	if i >= len(args) {
		return "", fmt.Errorf("missing argument %d", i)
	}
	s, ok := args[i].(string)
	if !ok {
		return "", fmt.Errorf("argument %d: expected string, got %T", i, args[i])
	}
	return s, nil
}
