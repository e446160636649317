package ontology

// ArgSchema describes one input, output or parameter of an operation.
// Type references a registered data type id; Unit references a unit id.
type ArgSchema struct {
	Name        string         `json:"name"`
	Type        string         `json:"type,omitempty"`
	Default     any            `json:"default,omitempty"`
	Unit        string         `json:"unit,omitempty"`
	Optional    bool           `json:"optional,omitempty"`
	Constraints map[string]any `json:"constraints,omitempty"`
	Description string         `json:"description,omitempty"`
}

// PortSchema describes one wire port of a node.
type PortSchema struct {
	Name        string `json:"name"`
	Type        string `json:"type,omitempty"`
	Direction   string `json:"direction"`
	Description string `json:"description,omitempty"`
}

// Example is one worked invocation of an operation.
type Example struct {
	Description string         `json:"description,omitempty"`
	Inputs      map[string]any `json:"inputs,omitempty"`
	Outputs     map[string]any `json:"outputs,omitempty"`
}

// DataType is a named type in the catalog's type hierarchy.
type DataType struct {
	Entity
	Parent    string         `json:"parent,omitempty"`
	Base      BaseType       `json:"base"`
	Schema    map[string]any `json:"schema,omitempty"`
	Dimension string         `json:"dimension,omitempty"`
	Shape     Shape          `json:"shape,omitempty"`
}

// Unit is a measurement unit with a conversion to an SI base unit.
type Unit struct {
	Entity
	Symbol    string  `json:"symbol"`
	Dimension string  `json:"dimension"`
	ToSI      float64 `json:"toSI"`
	SIUnit    string  `json:"siUnit,omitempty"`
}

// Operation describes a computational capability independent of its
// implementation. Input and output types reference data type ids; Safety
// is usually derived from the purity and side-effect declarations by the
// legacy bridge.
type Operation struct {
	Entity
	Domain          string       `json:"domain"`
	Category        string       `json:"category,omitempty"`
	Tags            []string     `json:"tags,omitempty"`
	Inputs          []ArgSchema  `json:"inputs,omitempty"`
	Outputs         []ArgSchema  `json:"outputs,omitempty"`
	Invariants      []string     `json:"invariants,omitempty"`
	Examples        []Example    `json:"examples,omitempty"`
	Complexity      string       `json:"complexity,omitempty"`
	Cost            float64      `json:"cost,omitempty"`
	Pure            bool         `json:"pure"`
	Deterministic   bool         `json:"deterministic"`
	SideEffects     []SideEffect `json:"sideEffects,omitempty"`
	Safety          SafetyClass  `json:"safety,omitempty"`
	Synonyms        []string     `json:"synonyms,omitempty"`
	CanonicalPrompt string       `json:"canonicalPrompt,omitempty"`
	DependsOn       []string     `json:"dependsOn,omitempty"`
}

// Node is a graph-editor node that realizes one or more operations.
type Node struct {
	Entity
	Category    string       `json:"category,omitempty"`
	SemanticOps []string     `json:"semanticOps,omitempty"`
	Ports       []PortSchema `json:"ports,omitempty"`
	Params      []ArgSchema  `json:"params,omitempty"`
}

// Command is a user-invocable action that realizes one or more operations.
type Command struct {
	Entity
	Category    string      `json:"category,omitempty"`
	SemanticOps []string    `json:"semanticOps,omitempty"`
	Shortcut    string      `json:"shortcut,omitempty"`
	Modal       bool        `json:"modal,omitempty"`
	Safety      SafetyClass `json:"safety,omitempty"`
	Params      []ArgSchema `json:"params,omitempty"`
}

// Goal is a declarative target owned by a solver.
type Goal struct {
	Entity
	Solver    string       `json:"solver"`
	Category  GoalCategory `json:"category,omitempty"`
	Arity     int          `json:"arity,omitempty"`
	Conserves []string     `json:"conserves,omitempty"`
	Params    []ArgSchema  `json:"params,omitempty"`
}

// Solver hosts goals and optionally a simulator.
type Solver struct {
	Entity
	Type         string   `json:"type,omitempty"`
	Goals        []string `json:"goals,omitempty"`
	HasSimulator bool     `json:"hasSimulator,omitempty"`
}

// Relation is a typed directed edge between two entity ids. Relations are
// appended to a flat log, never deduplicated, and their endpoints are not
// checked until Validate.
type Relation struct {
	Type     RelationType   `json:"type"`
	From     string         `json:"from"`
	To       string         `json:"to"`
	Metadata map[string]any `json:"metadata,omitempty"`
}
