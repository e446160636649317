package catalog

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/petersancho/semreg/internal/legacy"
	"github.com/petersancho/semreg/internal/ontology"
	"github.com/petersancho/semreg/internal/seed"
)

func TestModules_FixedOrder(t *testing.T) {
	names := ModuleNames()

	require.Equal(t, []string{
		"math", "vector", "logic", "data", "string",
		"color", "geometry", "solver", "workflow", "command",
	}, names)
}

func TestModules_AllRegisterCleanly(t *testing.T) {
	reg := ontology.New()
	require.NoError(t, seed.Load(reg))

	total := 0
	for _, mod := range Modules() {
		n, err := legacy.RegisterModule(mod, reg)
		require.NoError(t, err, "module %s", mod.Name)
		require.Positive(t, n)
		total += n
	}

	require.Equal(t, total, len(reg.Operations()))
}

func TestModules_CatalogIsSelfConsistent(t *testing.T) {
	reg := ontology.New()
	require.NoError(t, seed.Load(reg))
	for _, mod := range Modules() {
		_, err := legacy.RegisterModule(mod, reg)
		require.NoError(t, err)
	}

	// Every dependency, type and unit reference in the tables resolves
	// against the seed vocabulary and the other tables.
	require.Empty(t, reg.Validate())
}

func TestModules_SafetyDistribution(t *testing.T) {
	reg := ontology.New()
	require.NoError(t, seed.Load(reg))
	for _, mod := range Modules() {
		_, err := legacy.RegisterModule(mod, reg)
		require.NoError(t, err)
	}

	stats := reg.Stats()

	// command.save declares a filesystem effect.
	require.Positive(t, stats.BySafety[ontology.SafetyDestructive])
	// workflow.fetch declares network, command/workflow export declare io.
	require.Positive(t, stats.BySafety[ontology.SafetyExternal])
	// math.random is pure but not deterministic.
	require.Positive(t, stats.BySafety[ontology.SafetyIdempotent])
	require.Positive(t, stats.BySafety[ontology.SafetyStateful])
	require.Positive(t, stats.BySafety[ontology.SafetySafe])
}

func TestModules_DataModuleDropsVersionMarker(t *testing.T) {
	var data legacy.Module
	for _, mod := range Modules() {
		if mod.Name == "data" {
			data = mod
		}
	}
	require.NotEmpty(t, data.Name)

	ops := legacy.MigrateModule(data)

	// One export is the format version marker, not an operation.
	require.Len(t, ops, len(data.Items)-1)
}

func TestVectorModule_Callables(t *testing.T) {
	var vector legacy.Module
	for _, mod := range Modules() {
		if mod.Name == "vector" {
			vector = mod
		}
	}

	byID := make(map[string]*legacy.OpFunc)
	for _, item := range vector.Items {
		it := legacy.Classify(item)
		require.Equal(t, legacy.ItemAnnotatedOp, it.Kind)
		byID[it.Op.Meta.ID] = it.Op
	}

	length, err := byID["vector.length"].Call([]float64{3, 4, 0})
	require.NoError(t, err)
	require.Equal(t, 5.0, length)

	dot, err := byID["vector.dot"].Call([]float64{1, 2, 3}, []float64{4, 5, 6})
	require.NoError(t, err)
	require.Equal(t, 32.0, dot)

	cross, err := byID["vector.cross"].Call([]float64{1, 0, 0}, []float64{0, 1, 0})
	require.NoError(t, err)
	require.Equal(t, []float64{0, 0, 1}, cross)

	_, err = byID["vector.normalize"].Call([]float64{0, 0, 0})
	require.Error(t, err)
}

func TestStringModule_UnlinkedTemplate(t *testing.T) {
	var strs legacy.Module
	for _, mod := range Modules() {
		if mod.Name == "string" {
			strs = mod
		}
	}

	for _, item := range strs.Items {
		it := legacy.Classify(item)
		require.Equal(t, legacy.ItemAnnotatedOp, it.Kind)
		if it.Op.Meta.ID == "string.template" {
			_, err := it.Op.Call("hello {x}", map[string]any{"x": 1})
			require.ErrorIs(t, err, legacy.ErrNotLinked)
		}
	}
}
