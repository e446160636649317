package legacy

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/petersancho/semreg/internal/ontology"
)

func TestClassify(t *testing.T) {
	record := Meta{ID: "math.add"}
	annotated := DefineOpV2(Meta{ID: "math.mul"}, Extension{}, nil)

	require.Equal(t, ItemLegacyRecord, Classify(record).Kind)
	require.Equal(t, ItemLegacyRecord, Classify(&record).Kind)
	require.Equal(t, ItemAnnotatedOp, Classify(annotated).Kind)

	unrec := Classify("not an operation")
	require.Equal(t, ItemUnrecognized, unrec.Kind)
	require.Equal(t, "not an operation", unrec.Raw)
}

func TestMigrateModule_MixedShapes(t *testing.T) {
	mod := Module{
		Name: "math",
		Items: []any{
			Meta{ID: "math.add", Domain: "math", Name: "Add", Pure: true, Deterministic: true},
			DefineOpV2(
				Meta{ID: "math.mul", Domain: "math", Name: "Multiply", Pure: true, Deterministic: true},
				Extension{Synonyms: []string{"times"}},
				func(args ...any) (any, error) { return nil, nil },
			),
			42,
			nil,
		},
	}

	ops := MigrateModule(mod)

	require.Len(t, ops, 2)
	require.Equal(t, "math.add", ops[0].ID)
	require.Equal(t, "math.mul", ops[1].ID)
	require.Equal(t, []string{"times"}, ops[1].Synonyms)
}

func TestRegisterModule(t *testing.T) {
	reg := ontology.New()
	mod := Module{
		Name: "math",
		Items: []any{
			Meta{ID: "math.add", Domain: "math", Name: "Add", Pure: true, Deterministic: true},
			Meta{ID: "math.sub", Domain: "math", Name: "Subtract", Pure: true, Deterministic: true},
		},
	}

	n, err := RegisterModule(mod, reg)

	require.NoError(t, err)
	require.Equal(t, 2, n)
	require.Len(t, reg.Operations(), 2)
}

func TestRegisterModule_DuplicatePropagates(t *testing.T) {
	reg := ontology.New()
	require.NoError(t, reg.RegisterOperation(ontology.Operation{
		Entity: ontology.Entity{ID: "math.add", Name: "Add"},
		Domain: "math",
	}))

	mod := Module{
		Name: "math",
		Items: []any{
			Meta{ID: "math.sub", Domain: "math", Name: "Subtract"},
			Meta{ID: "math.add", Domain: "math", Name: "Add"},
			Meta{ID: "math.mul", Domain: "math", Name: "Multiply"},
		},
	}

	n, err := RegisterModule(mod, reg)

	// math.sub landed before the duplicate stopped the ingest.
	require.ErrorIs(t, err, ontology.ErrDuplicate)
	require.Equal(t, 1, n)
	_, ok := reg.Operation("math.mul")
	require.False(t, ok)
}
