package ontology

import (
	"encoding/json"
	"fmt"
)

// Document is the full JSON-serializable export of a registry. Entity
// lists are sorted by id so exports are deterministic; relations keep
// insertion order.
type Document struct {
	DataTypes  []DataType  `json:"dataTypes"`
	Units      []Unit      `json:"units"`
	Operations []Operation `json:"operations"`
	Nodes      []Node      `json:"nodes"`
	Commands   []Command   `json:"commands"`
	Goals      []Goal      `json:"goals"`
	Solvers    []Solver    `json:"solvers"`
	Relations  []Relation  `json:"relations"`
}

// Document exports every entity and relation.
func (r *Registry) Document() Document {
	return Document{
		DataTypes:  r.DataTypes(),
		Units:      r.Units(),
		Operations: r.Operations(),
		Nodes:      r.Nodes(),
		Commands:   r.Commands(),
		Goals:      r.Goals(),
		Solvers:    r.Solvers(),
		Relations:  r.Relations(),
	}
}

// FromDocument rebuilds a registry from an exported document. Registration
// replays in a fixed kind order (data types, units, operations, nodes,
// commands, goals, solvers, then relations). Registration is reference
// blind, so forward references inside the document are legal here and only
// surface later through Validate.
func FromDocument(doc Document) (*Registry, error) {
	r := New()
	for _, dt := range doc.DataTypes {
		if err := r.RegisterDataType(dt); err != nil {
			return nil, fmt.Errorf("replay datatype %q: %w", dt.ID, err)
		}
	}
	for _, u := range doc.Units {
		if err := r.RegisterUnit(u); err != nil {
			return nil, fmt.Errorf("replay unit %q: %w", u.ID, err)
		}
	}
	for _, op := range doc.Operations {
		if err := r.RegisterOperation(op); err != nil {
			return nil, fmt.Errorf("replay operation %q: %w", op.ID, err)
		}
	}
	for _, n := range doc.Nodes {
		if err := r.RegisterNode(n); err != nil {
			return nil, fmt.Errorf("replay node %q: %w", n.ID, err)
		}
	}
	for _, c := range doc.Commands {
		if err := r.RegisterCommand(c); err != nil {
			return nil, fmt.Errorf("replay command %q: %w", c.ID, err)
		}
	}
	for _, g := range doc.Goals {
		if err := r.RegisterGoal(g); err != nil {
			return nil, fmt.Errorf("replay goal %q: %w", g.ID, err)
		}
	}
	for _, s := range doc.Solvers {
		if err := r.RegisterSolver(s); err != nil {
			return nil, fmt.Errorf("replay solver %q: %w", s.ID, err)
		}
	}
	for _, rel := range doc.Relations {
		r.AddRelation(rel)
	}
	return r, nil
}

// MarshalJSON encodes the registry as its Document.
func (r *Registry) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.Document())
}

// UnmarshalJSON rebuilds the registry from an encoded Document, replacing
// any existing contents.
func (r *Registry) UnmarshalJSON(data []byte) error {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}
	rebuilt, err := FromDocument(doc)
	if err != nil {
		return err
	}
	*r = *rebuilt
	return nil
}
