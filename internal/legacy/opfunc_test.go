package legacy

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/petersancho/semreg/internal/ontology"
)

func TestDefineOpV2_Call(t *testing.T) {
	f := DefineOpV2(
		Meta{ID: "math.add", Domain: "math", Name: "Add", Pure: true, Deterministic: true},
		Extension{},
		func(args ...any) (any, error) {
			return args[0].(int) + args[1].(int), nil
		},
	)

	got, err := f.Call(2, 3)

	require.NoError(t, err)
	require.Equal(t, 5, got)
}

func TestOpFunc_Call_NotLinked(t *testing.T) {
	f := DefineOpV2(Meta{ID: "geometry.extrude", Domain: "geometry", Name: "Extrude"}, Extension{}, nil)

	_, err := f.Call(1.0)

	require.ErrorIs(t, err, ErrNotLinked)
}

func TestOpFunc_Operation_MergesExtension(t *testing.T) {
	ext := Extension{
		Inputs: []ontology.ArgSchema{
			{Name: "a", Type: "core.number"},
			{Name: "b", Type: "core.number"},
		},
		Outputs:         []ontology.ArgSchema{{Name: "sum", Type: "core.number"}},
		Synonyms:        []string{"plus"},
		CanonicalPrompt: "add two numbers",
		Invariants:      []string{"commutative"},
	}
	f := DefineOpV2(
		Meta{ID: "math.add", Domain: "math", Name: "Add", Pure: true, Deterministic: true, Stable: true},
		ext,
		nil,
	)

	op := f.Operation()

	require.Equal(t, "math.add", op.ID)
	require.Equal(t, ontology.SafetySafe, op.Safety)
	require.Len(t, op.Inputs, 2)
	require.Equal(t, []string{"plus"}, op.Synonyms)
	require.Equal(t, "add two numbers", op.CanonicalPrompt)
	require.Equal(t, []string{"commutative"}, op.Invariants)
}

func TestOpFunc_Operation_Cached(t *testing.T) {
	f := DefineOpV2(Meta{ID: "math.add", Domain: "math", Name: "Add"}, Extension{}, nil)

	first := f.Operation()
	second := f.Operation()

	require.Equal(t, first, second)
}
