// Package importer loads session definitions from a JSON file, so a
// center's timetable can be seeded in one step instead of one "session
// add" per row.
package importer

import (
	"encoding/json"
	"fmt"
	"os"
)

// ImportSchema is the top-level JSON structure for session import.
type ImportSchema struct {
	Sessions []SessionImport `json:"sessions"`
}

// SessionImport defines one session in the import file. Weekly entries
// use weekday/time/from/until; one-off entries use at.
type SessionImport struct {
	Kind        string  `json:"kind"`
	Subject     string  `json:"subject"`
	Teacher     string  `json:"teacher"`
	TeacherID   string  `json:"teacher_id,omitempty"`
	Grade       string  `json:"grade,omitempty"`
	Weekday     string  `json:"weekday,omitempty"`
	Time        string  `json:"time,omitempty"`
	From        string  `json:"from,omitempty"`
	Until       *string `json:"until,omitempty"`
	At          string  `json:"at,omitempty"`
	DurationMin int     `json:"duration_min,omitempty"`
}

// LoadFile reads and parses an import file.
func LoadFile(path string) (*ImportSchema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading import file: %w", err)
	}
	var schema ImportSchema
	if err := json.Unmarshal(data, &schema); err != nil {
		return nil, fmt.Errorf("parsing import file: %w", err)
	}
	return &schema, nil
}
