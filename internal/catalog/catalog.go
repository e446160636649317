// Package catalog holds the per-domain legacy operation tables. Each
// module is an independent definition set in one of the two historical
// export shapes: bare metadata records, or annotated callables built with
// legacy.DefineOpV2. The registry core treats these as opaque inputs to
// the migration bridge and never executes them itself.
package catalog

import "github.com/petersancho/semreg/internal/legacy"

// Modules returns the fixed list of legacy operation modules, in the
// order the coverage analyzer bulk-registers them.
func Modules() []legacy.Module {
	return []legacy.Module{
		mathModule(),
		vectorModule(),
		logicModule(),
		dataModule(),
		stringModule(),
		colorModule(),
		geometryModule(),
		solverModule(),
		workflowModule(),
		commandModule(),
	}
}

// ModuleNames lists the module names in registration order.
func ModuleNames() []string {
	mods := Modules()
	names := make([]string, len(mods))
	for i, m := range mods {
		names[i] = m.Name
	}
	return names
}
