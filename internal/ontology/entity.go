package ontology

// Kind identifies which store an entity lives in.
type Kind string

// Entity kinds, in document replay order.
const (
	KindDataType  Kind = "datatype"
	KindUnit      Kind = "unit"
	KindOperation Kind = "operation"
	KindNode      Kind = "node"
	KindCommand   Kind = "command"
	KindGoal      Kind = "goal"
	KindSolver    Kind = "solver"
)

// KindRelation labels relation endpoints in validation errors. Relations
// are edges, not entities, and have no store of their own.
const KindRelation Kind = "relation"

// Kinds returns the seven entity kinds in replay order.
func Kinds() []Kind {
	return []Kind{KindDataType, KindUnit, KindOperation, KindNode, KindCommand, KindGoal, KindSolver}
}

// Stability marks where an entity sits in its lifecycle.
type Stability string

const (
	StabilityExperimental Stability = "experimental"
	StabilityStable       Stability = "stable"
	StabilityDeprecated   Stability = "deprecated"
)

// BaseType tags a data type's underlying representation.
type BaseType string

const (
	BaseNumber   BaseType = "number"
	BaseString   BaseType = "string"
	BaseBoolean  BaseType = "boolean"
	BaseArray    BaseType = "array"
	BaseObject   BaseType = "object"
	BaseFunction BaseType = "function"
	BaseAny      BaseType = "any"
)

// Shape describes the collection structure of a data type.
type Shape string

const (
	ShapeScalar Shape = "scalar"
	ShapeVector Shape = "vector"
	ShapeList   Shape = "list"
	ShapeTree   Shape = "tree"
	ShapeGrid   Shape = "grid"
	ShapeField  Shape = "field"
)

// SafetyClass is a coarse risk label gating autonomous invocation of an
// operation. Classes are ordered from least to most consequential: safe,
// idempotent, stateful, external, destructive.
type SafetyClass string

const (
	SafetySafe        SafetyClass = "safe"
	SafetyIdempotent  SafetyClass = "idempotent"
	SafetyStateful    SafetyClass = "stateful"
	SafetyDestructive SafetyClass = "destructive"
	SafetyExternal    SafetyClass = "external"
)

// SideEffect names an effect an operation declares.
type SideEffect string

const (
	EffectFilesystem SideEffect = "filesystem"
	EffectStorage    SideEffect = "storage"
	EffectNetwork    SideEffect = "network"
	EffectIO         SideEffect = "io"
	EffectState      SideEffect = "state"
	EffectUI         SideEffect = "ui"
	EffectClipboard  SideEffect = "clipboard"
)

// RelationType names the edge vocabulary. Arbitrary types are accepted;
// these are the ones the seed vocabulary and catalogs use.
type RelationType string

const (
	RelationExtends    RelationType = "extends"
	RelationUses       RelationType = "uses"
	RelationProduces   RelationType = "produces"
	RelationConsumes   RelationType = "consumes"
	RelationMeasuredIn RelationType = "measuredIn"
	RelationSolvedBy   RelationType = "solvedBy"
	RelationSupersedes RelationType = "supersedes"
)

// GoalCategory classifies what a goal asks of its solver.
type GoalCategory string

const (
	GoalConstraint   GoalCategory = "constraint"
	GoalLoad         GoalCategory = "load"
	GoalAnchor       GoalCategory = "anchor"
	GoalMaterial     GoalCategory = "material"
	GoalOptimization GoalCategory = "optimization"
)

// Entity is the base record every registrable kind embeds.
type Entity struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description,omitempty"`
	Version      string    `json:"version,omitempty"`
	Stability    Stability `json:"stability,omitempty"`
	Since        string    `json:"since,omitempty"`
	SupersededBy string    `json:"supersededBy,omitempty"`
}
