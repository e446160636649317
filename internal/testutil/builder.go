// Package testutil builds populated registries for tests.
package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/petersancho/semreg/internal/ontology"
)

// Builder accumulates entities and relations and registers them into a
// fresh registry in replay order.
type Builder struct {
	t         *testing.T
	dataTypes []ontology.DataType
	units     []ontology.Unit
	ops       []ontology.Operation
	nodes     []ontology.Node
	commands  []ontology.Command
	goals     []ontology.Goal
	solvers   []ontology.Solver
	relations []ontology.Relation
}

// NewBuilder creates a builder for the given test.
func NewBuilder(t *testing.T) *Builder {
	t.Helper()
	return &Builder{t: t}
}

// WithOperation adds an operation with optional configuration.
func (b *Builder) WithOperation(id string, opts ...OperationOption) *Builder {
	op := defaultOperation(id)
	for _, opt := range opts {
		opt(&op)
	}
	b.ops = append(b.ops, op)
	return b
}

// WithDataType adds a data type with the given base representation.
func (b *Builder) WithDataType(id string, base ontology.BaseType) *Builder {
	b.dataTypes = append(b.dataTypes, ontology.DataType{
		Entity: ontology.Entity{ID: id, Name: id},
		Base:   base,
	})
	return b
}

// WithUnit adds a measurement unit.
func (b *Builder) WithUnit(id, symbol, dimension string) *Builder {
	b.units = append(b.units, ontology.Unit{
		Entity:    ontology.Entity{ID: id, Name: id},
		Symbol:    symbol,
		Dimension: dimension,
		ToSI:      1,
	})
	return b
}

// WithNode adds a node realizing the given operations.
func (b *Builder) WithNode(id string, semanticOps ...string) *Builder {
	b.nodes = append(b.nodes, ontology.Node{
		Entity:      ontology.Entity{ID: id, Name: id},
		SemanticOps: semanticOps,
	})
	return b
}

// WithCommand adds a command realizing the given operations.
func (b *Builder) WithCommand(id string, semanticOps ...string) *Builder {
	b.commands = append(b.commands, ontology.Command{
		Entity:      ontology.Entity{ID: id, Name: id},
		SemanticOps: semanticOps,
	})
	return b
}

// WithGoal adds a goal owned by the given solver.
func (b *Builder) WithGoal(id, solver string) *Builder {
	b.goals = append(b.goals, ontology.Goal{
		Entity: ontology.Entity{ID: id, Name: id},
		Solver: solver,
	})
	return b
}

// WithSolver adds a solver hosting the given goals.
func (b *Builder) WithSolver(id string, goals ...string) *Builder {
	b.solvers = append(b.solvers, ontology.Solver{
		Entity: ontology.Entity{ID: id, Name: id},
		Goals:  goals,
	})
	return b
}

// WithRelation appends a typed edge to the relation log.
func (b *Builder) WithRelation(typ ontology.RelationType, from, to string) *Builder {
	b.relations = append(b.relations, ontology.Relation{Type: typ, From: from, To: to})
	return b
}

// Build registers everything in replay order and fails the test on the
// first registration error.
func (b *Builder) Build() *ontology.Registry {
	b.t.Helper()
	reg := ontology.New()
	for _, dt := range b.dataTypes {
		require.NoError(b.t, reg.RegisterDataType(dt))
	}
	for _, u := range b.units {
		require.NoError(b.t, reg.RegisterUnit(u))
	}
	for _, op := range b.ops {
		require.NoError(b.t, reg.RegisterOperation(op))
	}
	for _, n := range b.nodes {
		require.NoError(b.t, reg.RegisterNode(n))
	}
	for _, c := range b.commands {
		require.NoError(b.t, reg.RegisterCommand(c))
	}
	for _, g := range b.goals {
		require.NoError(b.t, reg.RegisterGoal(g))
	}
	for _, s := range b.solvers {
		require.NoError(b.t, reg.RegisterSolver(s))
	}
	for _, rel := range b.relations {
		reg.AddRelation(rel)
	}
	return reg
}
