package ontology

// Validate sweeps every cross-reference in the registry and returns one
// error per dangling reference. It never stops early: the registry
// tolerates transient inconsistency during multi-step bootstrap, so
// integrity is only checked on demand.
//
// Checked references: operation input/output types and units, operation
// dependencies, node and command semanticOps, goal to solver, solver to
// goal, and both endpoints of every relation.
func (r *Registry) Validate() []ValidationError {
	var errs []ValidationError

	for _, id := range sortedKeys(r.operations) {
		op := r.operations[id]
		errs = append(errs, r.checkArgs(KindOperation, id, "inputs", op.Inputs)...)
		errs = append(errs, r.checkArgs(KindOperation, id, "outputs", op.Outputs)...)
		for _, dep := range op.DependsOn {
			if _, ok := r.operations[dep]; !ok {
				errs = append(errs, missingRef(KindOperation, id, "dependsOn", dep))
			}
		}
	}

	for _, id := range sortedKeys(r.nodes) {
		for _, opID := range r.nodes[id].SemanticOps {
			if _, ok := r.operations[opID]; !ok {
				errs = append(errs, missingRef(KindNode, id, "semanticOps", opID))
			}
		}
	}

	for _, id := range sortedKeys(r.commands) {
		for _, opID := range r.commands[id].SemanticOps {
			if _, ok := r.operations[opID]; !ok {
				errs = append(errs, missingRef(KindCommand, id, "semanticOps", opID))
			}
		}
	}

	for _, id := range sortedKeys(r.goals) {
		g := r.goals[id]
		if g.Solver != "" {
			if _, ok := r.solvers[g.Solver]; !ok {
				errs = append(errs, missingRef(KindGoal, id, "solver", g.Solver))
			}
		}
	}

	for _, id := range sortedKeys(r.solvers) {
		for _, goalID := range r.solvers[id].Goals {
			if _, ok := r.goals[goalID]; !ok {
				errs = append(errs, missingRef(KindSolver, id, "goals", goalID))
			}
		}
	}

	for _, rel := range r.relations {
		if !r.Has(rel.From) {
			errs = append(errs, endpointErr(rel, "from", rel.From))
		}
		if !r.Has(rel.To) {
			errs = append(errs, endpointErr(rel, "to", rel.To))
		}
	}

	return errs
}

// IsValid reports whether a full sweep finds no dangling references.
func (r *Registry) IsValid() bool {
	return len(r.Validate()) == 0
}

// checkArgs verifies the type and unit references of one argument list.
// An empty Type or Unit means "unreferenced" and is not an error.
func (r *Registry) checkArgs(kind Kind, id, field string, args []ArgSchema) []ValidationError {
	var errs []ValidationError
	for _, a := range args {
		if a.Type != "" {
			if _, ok := r.dataTypes[a.Type]; !ok {
				errs = append(errs, missingRef(kind, id, field+"."+a.Name+".type", a.Type))
			}
		}
		if a.Unit != "" {
			if _, ok := r.units[a.Unit]; !ok {
				errs = append(errs, missingRef(kind, id, field+"."+a.Name+".unit", a.Unit))
			}
		}
	}
	return errs
}
