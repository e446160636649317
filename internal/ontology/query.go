package ontology

// OperationsByDomain lists operations in the given domain, sorted by id.
func (r *Registry) OperationsByDomain(domain string) []Operation {
	var out []Operation
	for _, op := range r.Operations() {
		if op.Domain == domain {
			out = append(out, op)
		}
	}
	return out
}

// OperationsByTag lists operations carrying the given tag, sorted by id.
func (r *Registry) OperationsByTag(tag string) []Operation {
	var out []Operation
	for _, op := range r.Operations() {
		for _, t := range op.Tags {
			if t == tag {
				out = append(out, op)
				break
			}
		}
	}
	return out
}

// OperationsBySafety lists operations with the given safety class, sorted
// by id.
func (r *Registry) OperationsBySafety(class SafetyClass) []Operation {
	var out []Operation
	for _, op := range r.Operations() {
		if op.Safety == class {
			out = append(out, op)
		}
	}
	return out
}

// PureOperations lists operations declared pure, sorted by id.
func (r *Registry) PureOperations() []Operation {
	var out []Operation
	for _, op := range r.Operations() {
		if op.Pure {
			out = append(out, op)
		}
	}
	return out
}

// RelationsByType lists relations of the given type in insertion order.
func (r *Registry) RelationsByType(t RelationType) []Relation {
	var out []Relation
	for _, rel := range r.relations {
		if rel.Type == t {
			out = append(out, rel)
		}
	}
	return out
}

// RelationsInvolving lists relations where id is either endpoint, in
// insertion order.
func (r *Registry) RelationsInvolving(id string) []Relation {
	var out []Relation
	for _, rel := range r.relations {
		if rel.From == id || rel.To == id {
			out = append(out, rel)
		}
	}
	return out
}

// OpsForNode resolves the node's semanticOps list to operations. Ids that
// do not resolve are dropped; Validate is the place that reports them.
func (r *Registry) OpsForNode(id string) []Operation {
	n, ok := r.nodes[id]
	if !ok {
		return nil
	}
	return r.resolveOps(n.SemanticOps)
}

// OpsForCommand resolves the command's semanticOps list to operations.
// Ids that do not resolve are dropped; Validate is the place that reports
// them.
func (r *Registry) OpsForCommand(id string) []Operation {
	c, ok := r.commands[id]
	if !ok {
		return nil
	}
	return r.resolveOps(c.SemanticOps)
}

func (r *Registry) resolveOps(ids []string) []Operation {
	var out []Operation
	for _, opID := range ids {
		if op, ok := r.operations[opID]; ok {
			out = append(out, op)
		}
	}
	return out
}
