package ontology

// Stats aggregates catalog counts for reporting.
type Stats struct {
	Entities      int                 `json:"entities"`
	Relations     int                 `json:"relations"`
	ByKind        map[Kind]int        `json:"byKind"`
	ByDomain      map[string]int      `json:"byDomain"`
	BySafety      map[SafetyClass]int `json:"bySafety"`
	Pure          int                 `json:"pure"`
	Deterministic int                 `json:"deterministic"`
}

// Stats counts entities by kind, operations by domain and by safety
// class, and pure/deterministic totals. One pass over the operation store.
func (r *Registry) Stats() Stats {
	s := Stats{
		ByKind:   make(map[Kind]int),
		ByDomain: make(map[string]int),
		BySafety: make(map[SafetyClass]int),
	}
	s.ByKind[KindDataType] = len(r.dataTypes)
	s.ByKind[KindUnit] = len(r.units)
	s.ByKind[KindOperation] = len(r.operations)
	s.ByKind[KindNode] = len(r.nodes)
	s.ByKind[KindCommand] = len(r.commands)
	s.ByKind[KindGoal] = len(r.goals)
	s.ByKind[KindSolver] = len(r.solvers)
	for _, n := range s.ByKind {
		s.Entities += n
	}
	s.Relations = len(r.relations)

	for _, op := range r.operations {
		if op.Domain != "" {
			s.ByDomain[op.Domain]++
		}
		if op.Safety != "" {
			s.BySafety[op.Safety]++
		}
		if op.Pure {
			s.Pure++
		}
		if op.Deterministic {
			s.Deterministic++
		}
	}
	return s
}
