package legacy

import (
	"errors"
	"sync"

	"github.com/petersancho/semreg/internal/ontology"
)

// ErrNotLinked reports a call to an annotated operation whose engine is
// not linked into this process. Catalog entries may describe operations
// that only the host application can execute.
var ErrNotLinked = errors.New("operation has no linked implementation")

// Func is the call signature shared by every legacy operation.
type Func func(args ...any) (any, error)

// Extension carries the v2-only fields a legacy record cannot express.
// Attaching one to a definition enriches the derived Operation without
// rewriting the definition's call sites.
type Extension struct {
	Inputs          []ontology.ArgSchema
	Outputs         []ontology.ArgSchema
	Synonyms        []string
	CanonicalPrompt string
	Examples        []ontology.Example
	Invariants      []string
}

// OpFunc is a callable annotated with legacy metadata and an optional v2
// extension.
type OpFunc struct {
	Meta Meta
	Ext  Extension
	Fn   Func

	once sync.Once
	op   ontology.Operation
}

// DefineOpV2 attaches metadata and a v2 extension to a callable.
func DefineOpV2(meta Meta, ext Extension, fn Func) *OpFunc {
	return &OpFunc{Meta: meta, Ext: ext, Fn: fn}
}

// Call invokes the wrapped function.
func (f *OpFunc) Call(args ...any) (any, error) {
	if f.Fn == nil {
		return nil, ErrNotLinked
	}
	return f.Fn(args...)
}

// Operation merges the converted legacy metadata with the extension.
// The merge is computed once, on first use, and cached.
func (f *OpFunc) Operation() ontology.Operation {
	f.once.Do(func() {
		op := MetaToOperation(f.Meta)
		op.Inputs = f.Ext.Inputs
		op.Outputs = f.Ext.Outputs
		op.Synonyms = f.Ext.Synonyms
		op.CanonicalPrompt = f.Ext.CanonicalPrompt
		op.Examples = f.Ext.Examples
		op.Invariants = f.Ext.Invariants
		f.op = op
	})
	return f.op
}
