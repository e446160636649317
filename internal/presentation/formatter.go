package presentation

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// Formatter renders DTOs to a writer.
type Formatter struct {
	writer io.Writer
}

// NewFormatter creates a new formatter.
func NewFormatter(writer io.Writer) *Formatter {
	return &Formatter{
		writer: writer,
	}
}

// FormatJSON writes any value as indented JSON.
func (f *Formatter) FormatJSON(v any) error {
	encoder := json.NewEncoder(f.writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

// FormatStats renders the stats tables as plain text.
func (f *Formatter) FormatStats(dto StatsDTO) error {
	var b strings.Builder

	b.WriteString("Registry stats\n")
	b.WriteString("==============\n\n")
	fmt.Fprintf(&b, "Entities: %d    Relations: %d\n", dto.Entities, dto.Relations)

	b.WriteString("\nBy kind\n")
	writeRows(&b, dto.Kinds)

	if len(dto.Domains) > 0 {
		b.WriteString("\nBy domain\n")
		writeRows(&b, dto.Domains)
	}

	if len(dto.Safety) > 0 {
		b.WriteString("\nBy safety class\n")
		writeRows(&b, dto.Safety)
	}

	fmt.Fprintf(&b, "\nPure: %d    Deterministic: %d\n", dto.Pure, dto.Deterministic)

	_, err := io.WriteString(f.writer, b.String())
	return err
}

// FormatValidation renders a sweep result, one line per issue.
func (f *Formatter) FormatValidation(dto ValidationDTO) error {
	if dto.Valid {
		_, err := io.WriteString(f.writer, "Validation: clean\n")
		return err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Validation: %d dangling references\n\n", dto.Errors)
	for _, issue := range dto.Issues {
		fmt.Fprintf(&b, "  [%s] %s\n", issue.Code, issue.Message)
	}

	_, err := io.WriteString(f.writer, b.String())
	return err
}

func writeRows(b *strings.Builder, rows []CountRow) {
	for _, row := range rows {
		fmt.Fprintf(b, "  %-12s %4d\n", row.Label, row.Count)
	}
}
