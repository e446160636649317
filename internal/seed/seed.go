// Package seed registers the fixed core vocabulary of data types, units,
// goals and solvers into a registry. The vocabulary ships embedded as
// vocabulary.yaml; everything else in the catalog arrives later through
// the legacy bridge.
package seed

import (
	"fmt"
	"io/fs"

	"gopkg.in/yaml.v3"

	"github.com/petersancho/semreg/internal/ontology"
)

// VocabularyFile is the root structure for vocabulary.yaml.
type VocabularyFile struct {
	DataTypes []DataTypeDef `yaml:"dataTypes"`
	Units     []UnitDef     `yaml:"units"`
	Goals     []GoalDef     `yaml:"goals"`
	Solvers   []SolverDef   `yaml:"solvers"`
	Relations []RelationDef `yaml:"relations"`
}

// DataTypeDef defines a single data type in YAML.
type DataTypeDef struct {
	ID          string         `yaml:"id"`
	Name        string         `yaml:"name"`
	Description string         `yaml:"description"`
	Parent      string         `yaml:"parent"`
	Base        string         `yaml:"base"`
	Dimension   string         `yaml:"dimension"`
	Shape       string         `yaml:"shape"`
	Schema      map[string]any `yaml:"schema"`
}

// UnitDef defines a single unit in YAML.
type UnitDef struct {
	ID        string  `yaml:"id"`
	Name      string  `yaml:"name"`
	Symbol    string  `yaml:"symbol"`
	Dimension string  `yaml:"dimension"`
	ToSI      float64 `yaml:"toSI"`
	SIUnit    string  `yaml:"siUnit"`
}

// GoalDef defines a single solver goal in YAML.
type GoalDef struct {
	ID          string   `yaml:"id"`
	Name        string   `yaml:"name"`
	Description string   `yaml:"description"`
	Solver      string   `yaml:"solver"`
	Category    string   `yaml:"category"`
	Arity       int      `yaml:"arity"`
	Conserves   []string `yaml:"conserves"`
}

// SolverDef defines a single solver in YAML.
type SolverDef struct {
	ID           string   `yaml:"id"`
	Name         string   `yaml:"name"`
	Description  string   `yaml:"description"`
	Type         string   `yaml:"type"`
	Goals        []string `yaml:"goals"`
	HasSimulator bool     `yaml:"hasSimulator"`
}

// RelationDef defines a single relation edge in YAML.
type RelationDef struct {
	Type string `yaml:"type"`
	From string `yaml:"from"`
	To   string `yaml:"to"`
}

// Load registers the embedded vocabulary into reg.
func Load(reg *ontology.Registry) error {
	return LoadFrom(vocabulary, "vocabulary.yaml", reg)
}

// LoadFrom reads one vocabulary file from fsys and registers its contents
// in fixed kind order: data types, units, goals, solvers, then relations.
// Registration is reference blind; run Validate afterwards to confirm the
// vocabulary is self-consistent.
func LoadFrom(fsys fs.FS, path string, reg *ontology.Registry) error {
	content, err := fs.ReadFile(fsys, path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	var file VocabularyFile
	if err := yaml.Unmarshal(content, &file); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}

	for _, def := range file.DataTypes {
		dt, err := buildDataType(def)
		if err != nil {
			return fmt.Errorf("datatype %s: %w", def.ID, err)
		}
		if err := reg.RegisterDataType(dt); err != nil {
			return fmt.Errorf("datatype %s: %w", def.ID, err)
		}
	}
	for _, def := range file.Units {
		if err := reg.RegisterUnit(buildUnit(def)); err != nil {
			return fmt.Errorf("unit %s: %w", def.ID, err)
		}
	}
	for _, def := range file.Goals {
		g, err := buildGoal(def)
		if err != nil {
			return fmt.Errorf("goal %s: %w", def.ID, err)
		}
		if err := reg.RegisterGoal(g); err != nil {
			return fmt.Errorf("goal %s: %w", def.ID, err)
		}
	}
	for _, def := range file.Solvers {
		if err := reg.RegisterSolver(buildSolver(def)); err != nil {
			return fmt.Errorf("solver %s: %w", def.ID, err)
		}
	}
	for _, def := range file.Relations {
		reg.AddRelation(ontology.Relation{
			Type: ontology.RelationType(def.Type),
			From: def.From,
			To:   def.To,
		})
	}
	return nil
}

var baseTypes = map[string]ontology.BaseType{
	"number":   ontology.BaseNumber,
	"string":   ontology.BaseString,
	"boolean":  ontology.BaseBoolean,
	"array":    ontology.BaseArray,
	"object":   ontology.BaseObject,
	"function": ontology.BaseFunction,
	"any":      ontology.BaseAny,
}

var shapes = map[string]ontology.Shape{
	"scalar": ontology.ShapeScalar,
	"vector": ontology.ShapeVector,
	"list":   ontology.ShapeList,
	"tree":   ontology.ShapeTree,
	"grid":   ontology.ShapeGrid,
	"field":  ontology.ShapeField,
}

var goalCategories = map[string]ontology.GoalCategory{
	"constraint":   ontology.GoalConstraint,
	"load":         ontology.GoalLoad,
	"anchor":       ontology.GoalAnchor,
	"material":     ontology.GoalMaterial,
	"optimization": ontology.GoalOptimization,
}

func buildDataType(def DataTypeDef) (ontology.DataType, error) {
	base, ok := baseTypes[def.Base]
	if !ok {
		return ontology.DataType{}, fmt.Errorf("unknown base type %q", def.Base)
	}
	var shape ontology.Shape
	if def.Shape != "" {
		shape, ok = shapes[def.Shape]
		if !ok {
			return ontology.DataType{}, fmt.Errorf("unknown shape %q", def.Shape)
		}
	}
	return ontology.DataType{
		Entity: ontology.Entity{
			ID:          def.ID,
			Name:        def.Name,
			Description: def.Description,
			Stability:   ontology.StabilityStable,
		},
		Parent:    def.Parent,
		Base:      base,
		Schema:    def.Schema,
		Dimension: def.Dimension,
		Shape:     shape,
	}, nil
}

func buildUnit(def UnitDef) ontology.Unit {
	return ontology.Unit{
		Entity: ontology.Entity{
			ID:        def.ID,
			Name:      def.Name,
			Stability: ontology.StabilityStable,
		},
		Symbol:    def.Symbol,
		Dimension: def.Dimension,
		ToSI:      def.ToSI,
		SIUnit:    def.SIUnit,
	}
}

func buildGoal(def GoalDef) (ontology.Goal, error) {
	category, ok := goalCategories[def.Category]
	if !ok {
		return ontology.Goal{}, fmt.Errorf("unknown goal category %q", def.Category)
	}
	return ontology.Goal{
		Entity: ontology.Entity{
			ID:          def.ID,
			Name:        def.Name,
			Description: def.Description,
			Stability:   ontology.StabilityStable,
		},
		Solver:    def.Solver,
		Category:  category,
		Arity:     def.Arity,
		Conserves: def.Conserves,
	}, nil
}

func buildSolver(def SolverDef) ontology.Solver {
	return ontology.Solver{
		Entity: ontology.Entity{
			ID:          def.ID,
			Name:        def.Name,
			Description: def.Description,
			Stability:   ontology.StabilityStable,
		},
		Type:         def.Type,
		Goals:        def.Goals,
		HasSimulator: def.HasSimulator,
	}
}
