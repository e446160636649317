// Package presentation converts registry results into output DTOs and
// renders them for the CLI. Map-backed domain shapes are flattened into
// deterministically ordered rows here so text and JSON output never
// depend on map iteration order.
package presentation

import (
	"sort"

	"github.com/petersancho/semreg/internal/ontology"
)

// CountRow is one labeled count in a stats table.
type CountRow struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// StatsDTO is the presentation shape of registry stats.
type StatsDTO struct {
	Entities      int        `json:"entities"`
	Relations     int        `json:"relations"`
	Kinds         []CountRow `json:"kinds"`
	Domains       []CountRow `json:"domains,omitempty"`
	Safety        []CountRow `json:"safety,omitempty"`
	Pure          int        `json:"pure"`
	Deterministic int        `json:"deterministic"`
}

// FromStats flattens registry stats into rows. Kinds keep replay order;
// domains and safety classes sort alphabetically.
func FromStats(s ontology.Stats) StatsDTO {
	dto := StatsDTO{
		Entities:      s.Entities,
		Relations:     s.Relations,
		Pure:          s.Pure,
		Deterministic: s.Deterministic,
	}
	for _, kind := range ontology.Kinds() {
		dto.Kinds = append(dto.Kinds, CountRow{Label: string(kind), Count: s.ByKind[kind]})
	}
	dto.Domains = sortedRows(s.ByDomain)
	dto.Safety = sortedRows(s.BySafety)
	return dto
}

func sortedRows[K ~string](counts map[K]int) []CountRow {
	if len(counts) == 0 {
		return nil
	}
	rows := make([]CountRow, 0, len(counts))
	for label, count := range counts {
		rows = append(rows, CountRow{Label: string(label), Count: count})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Label < rows[j].Label })
	return rows
}

// ValidationIssueDTO is one dangling reference in presentation form.
type ValidationIssueDTO struct {
	Code    string `json:"code"`
	Kind    string `json:"kind"`
	ID      string `json:"id"`
	Field   string `json:"field"`
	Ref     string `json:"ref"`
	Message string `json:"message"`
}

// ValidationDTO summarizes a validation sweep.
type ValidationDTO struct {
	Valid  bool                 `json:"valid"`
	Errors int                  `json:"errors"`
	Issues []ValidationIssueDTO `json:"issues,omitempty"`
}

// FromValidationErrors converts a sweep result, preserving sweep order.
func FromValidationErrors(errs []ontology.ValidationError) ValidationDTO {
	dto := ValidationDTO{
		Valid:  len(errs) == 0,
		Errors: len(errs),
	}
	for _, e := range errs {
		dto.Issues = append(dto.Issues, ValidationIssueDTO{
			Code:    string(e.Code),
			Kind:    string(e.Kind),
			ID:      e.ID,
			Field:   e.Field,
			Ref:     e.Ref,
			Message: e.Message,
		})
	}
	return dto
}
