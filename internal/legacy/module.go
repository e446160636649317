package legacy

import (
	"fmt"

	"github.com/petersancho/semreg/internal/ontology"
)

// Module is one legacy operation catalog: a name plus its exported items.
// Exports are heterogeneous across the old catalogs. Some export bare Meta
// records, newer ones export *OpFunc callables, and a few export values
// this bridge does not understand.
type Module struct {
	Name  string
	Items []any
}

// ItemKind tags the migration path of one classified export.
type ItemKind int

const (
	// ItemLegacyRecord is a bare Meta value or pointer.
	ItemLegacyRecord ItemKind = iota
	// ItemAnnotatedOp is a *OpFunc carrying metadata and an extension.
	ItemAnnotatedOp
	// ItemUnrecognized is anything else; migration drops it.
	ItemUnrecognized
)

// Item is the classification of one module export. Exactly one of Record
// and Op is meaningful, selected by Kind; Raw keeps the original value for
// unrecognized exports.
type Item struct {
	Kind   ItemKind
	Record Meta
	Op     *OpFunc
	Raw    any
}

// Classify sorts one exported item into its migration path.
func Classify(item any) Item {
	switch v := item.(type) {
	case Meta:
		return Item{Kind: ItemLegacyRecord, Record: v}
	case *Meta:
		return Item{Kind: ItemLegacyRecord, Record: *v}
	case *OpFunc:
		return Item{Kind: ItemAnnotatedOp, Op: v}
	default:
		return Item{Kind: ItemUnrecognized, Raw: item}
	}
}

// MigrateModule converts every recognized export of mod to an Operation,
// in export order. Unrecognized exports are dropped.
func MigrateModule(mod Module) []ontology.Operation {
	var ops []ontology.Operation
	for _, raw := range mod.Items {
		switch it := Classify(raw); it.Kind {
		case ItemLegacyRecord:
			ops = append(ops, MetaToOperation(it.Record))
		case ItemAnnotatedOp:
			ops = append(ops, it.Op.Operation())
		case ItemUnrecognized:
		}
	}
	return ops
}

// RegisterModule migrates mod and registers every resulting operation,
// returning the number registered. Duplicate ids are not skipped here;
// the first registration failure propagates.
func RegisterModule(mod Module, reg *ontology.Registry) (int, error) {
	count := 0
	for _, op := range MigrateModule(mod) {
		if err := reg.RegisterOperation(op); err != nil {
			return count, fmt.Errorf("register module %s: %w", mod.Name, err)
		}
		count++
	}
	return count, nil
}
