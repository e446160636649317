// Package ontology implements the semantic operation registry: a typed
// in-memory catalog of operations, data types, units, nodes, commands,
// goals and solvers, with on-demand referential integrity checking and
// JSON, DOT and agent-catalog exports.
package ontology

import "sort"

// Registry holds every registered entity, keyed by id within each kind,
// plus a flat append-only relation log.
//
// Ids are unique across all kinds: registering a goal under an id already
// held by an operation fails. Stores are plain maps with no locking; the
// intended lifecycle is single-writer population at startup followed by
// read-heavy querying. Entities are immutable once registered and there
// is no delete.
type Registry struct {
	dataTypes  map[string]DataType
	units      map[string]Unit
	operations map[string]Operation
	nodes      map[string]Node
	commands   map[string]Command
	goals      map[string]Goal
	solvers    map[string]Solver
	relations  []Relation

	// kinds indexes every claimed id to the kind that holds it.
	kinds map[string]Kind
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{
		dataTypes:  make(map[string]DataType),
		units:      make(map[string]Unit),
		operations: make(map[string]Operation),
		nodes:      make(map[string]Node),
		commands:   make(map[string]Command),
		goals:      make(map[string]Goal),
		solvers:    make(map[string]Solver),
		kinds:      make(map[string]Kind),
	}
}

// claim reserves id for kind, failing if any kind already holds it.
func (r *Registry) claim(kind Kind, id string) error {
	if id == "" {
		return ErrEmptyID
	}
	if existing, ok := r.kinds[id]; ok {
		return &DuplicateEntityError{Kind: kind, ID: id, ExistingKind: existing}
	}
	r.kinds[id] = kind
	return nil
}

// RegisterDataType adds a data type. It fails with a DuplicateEntityError
// when the id is already registered and never overwrites.
func (r *Registry) RegisterDataType(dt DataType) error {
	if err := r.claim(KindDataType, dt.ID); err != nil {
		return err
	}
	r.dataTypes[dt.ID] = dt
	return nil
}

// RegisterUnit adds a unit.
func (r *Registry) RegisterUnit(u Unit) error {
	if err := r.claim(KindUnit, u.ID); err != nil {
		return err
	}
	r.units[u.ID] = u
	return nil
}

// RegisterOperation adds an operation.
func (r *Registry) RegisterOperation(op Operation) error {
	if err := r.claim(KindOperation, op.ID); err != nil {
		return err
	}
	r.operations[op.ID] = op
	return nil
}

// RegisterNode adds a node.
func (r *Registry) RegisterNode(n Node) error {
	if err := r.claim(KindNode, n.ID); err != nil {
		return err
	}
	r.nodes[n.ID] = n
	return nil
}

// RegisterCommand adds a command.
func (r *Registry) RegisterCommand(c Command) error {
	if err := r.claim(KindCommand, c.ID); err != nil {
		return err
	}
	r.commands[c.ID] = c
	return nil
}

// RegisterGoal adds a goal.
func (r *Registry) RegisterGoal(g Goal) error {
	if err := r.claim(KindGoal, g.ID); err != nil {
		return err
	}
	r.goals[g.ID] = g
	return nil
}

// RegisterSolver adds a solver.
func (r *Registry) RegisterSolver(s Solver) error {
	if err := r.claim(KindSolver, s.ID); err != nil {
		return err
	}
	r.solvers[s.ID] = s
	return nil
}

// AddRelation appends rel to the relation log. Endpoints are not checked
// until Validate and the log is never deduplicated.
func (r *Registry) AddRelation(rel Relation) {
	r.relations = append(r.relations, rel)
}

// DataType returns the data type registered under id.
func (r *Registry) DataType(id string) (DataType, bool) {
	dt, ok := r.dataTypes[id]
	return dt, ok
}

// Unit returns the unit registered under id.
func (r *Registry) Unit(id string) (Unit, bool) {
	u, ok := r.units[id]
	return u, ok
}

// Operation returns the operation registered under id.
func (r *Registry) Operation(id string) (Operation, bool) {
	op, ok := r.operations[id]
	return op, ok
}

// Node returns the node registered under id.
func (r *Registry) Node(id string) (Node, bool) {
	n, ok := r.nodes[id]
	return n, ok
}

// Command returns the command registered under id.
func (r *Registry) Command(id string) (Command, bool) {
	c, ok := r.commands[id]
	return c, ok
}

// Goal returns the goal registered under id.
func (r *Registry) Goal(id string) (Goal, bool) {
	g, ok := r.goals[id]
	return g, ok
}

// Solver returns the solver registered under id.
func (r *Registry) Solver(id string) (Solver, bool) {
	s, ok := r.solvers[id]
	return s, ok
}

// Lookup resolves id across every kind and reports which kind holds it.
// The returned value is one of the seven entity structs.
func (r *Registry) Lookup(id string) (any, Kind, bool) {
	kind, ok := r.kinds[id]
	if !ok {
		return nil, "", false
	}
	switch kind {
	case KindDataType:
		return r.dataTypes[id], kind, true
	case KindUnit:
		return r.units[id], kind, true
	case KindOperation:
		return r.operations[id], kind, true
	case KindNode:
		return r.nodes[id], kind, true
	case KindCommand:
		return r.commands[id], kind, true
	case KindGoal:
		return r.goals[id], kind, true
	case KindSolver:
		return r.solvers[id], kind, true
	}
	return nil, "", false
}

// Has reports whether any kind holds id.
func (r *Registry) Has(id string) bool {
	_, ok := r.kinds[id]
	return ok
}

// DataTypes lists all data types sorted by id.
func (r *Registry) DataTypes() []DataType {
	out := make([]DataType, 0, len(r.dataTypes))
	for _, id := range sortedKeys(r.dataTypes) {
		out = append(out, r.dataTypes[id])
	}
	return out
}

// Units lists all units sorted by id.
func (r *Registry) Units() []Unit {
	out := make([]Unit, 0, len(r.units))
	for _, id := range sortedKeys(r.units) {
		out = append(out, r.units[id])
	}
	return out
}

// Operations lists all operations sorted by id.
func (r *Registry) Operations() []Operation {
	out := make([]Operation, 0, len(r.operations))
	for _, id := range sortedKeys(r.operations) {
		out = append(out, r.operations[id])
	}
	return out
}

// Nodes lists all nodes sorted by id.
func (r *Registry) Nodes() []Node {
	out := make([]Node, 0, len(r.nodes))
	for _, id := range sortedKeys(r.nodes) {
		out = append(out, r.nodes[id])
	}
	return out
}

// Commands lists all commands sorted by id.
func (r *Registry) Commands() []Command {
	out := make([]Command, 0, len(r.commands))
	for _, id := range sortedKeys(r.commands) {
		out = append(out, r.commands[id])
	}
	return out
}

// Goals lists all goals sorted by id.
func (r *Registry) Goals() []Goal {
	out := make([]Goal, 0, len(r.goals))
	for _, id := range sortedKeys(r.goals) {
		out = append(out, r.goals[id])
	}
	return out
}

// Solvers lists all solvers sorted by id.
func (r *Registry) Solvers() []Solver {
	out := make([]Solver, 0, len(r.solvers))
	for _, id := range sortedKeys(r.solvers) {
		out = append(out, r.solvers[id])
	}
	return out
}

// Relations returns a copy of the relation log in insertion order.
func (r *Registry) Relations() []Relation {
	return append([]Relation(nil), r.relations...)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
