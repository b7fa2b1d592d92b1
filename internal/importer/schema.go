package importer

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// WorkspaceFile is the top-level structure of a workspace import. Records
// point at each other through file-local refs, which Convert replaces with
// generated IDs. JSON input parses too, since it is a subset of YAML.
type WorkspaceFile struct {
	Locations  []LocationImport `yaml:"locations" json:"locations"`
	Categories []CategoryImport `yaml:"categories,omitempty" json:"categories,omitempty"`
	Events     []EventImport    `yaml:"events" json:"events"`
	Tasks      []TaskImport     `yaml:"tasks,omitempty" json:"tasks,omitempty"`
}

type LocationImport struct {
	Ref  string `yaml:"ref" json:"ref"`
	Name string `yaml:"name" json:"name"`
}

type CategoryImport struct {
	Ref  string `yaml:"ref" json:"ref"`
	Name string `yaml:"name" json:"name"`
}

// EventImport carries an event with its phases and daily capacities.
type EventImport struct {
	Ref         string           `yaml:"ref" json:"ref"`
	Name        string           `yaml:"name" json:"name"`
	LocationRef string           `yaml:"location_ref" json:"location_ref"`
	StartDate   string           `yaml:"start_date" json:"start_date"`
	EndDate     string           `yaml:"end_date" json:"end_date"`
	Status      string           `yaml:"status,omitempty" json:"status,omitempty"`
	Phases      []PhaseImport    `yaml:"phases,omitempty" json:"phases,omitempty"`
	Capacities  []CapacityImport `yaml:"capacities,omitempty" json:"capacities,omitempty"`
}

// PhaseImport timestamps are RFC 3339.
type PhaseImport struct {
	Name  string `yaml:"name" json:"name"`
	Start string `yaml:"start" json:"start"`
	End   string `yaml:"end" json:"end"`
}

type CapacityImport struct {
	Date  string  `yaml:"date" json:"date"`
	Hours float64 `yaml:"hours" json:"hours"`
}

type TaskImport struct {
	Ref           string             `yaml:"ref" json:"ref"`
	EventRef      string             `yaml:"event_ref" json:"event_ref"`
	CategoryRef   string             `yaml:"category_ref,omitempty" json:"category_ref,omitempty"`
	Title         string             `yaml:"title" json:"title"`
	EstimateHours float64            `yaml:"estimate_hours" json:"estimate_hours"`
	Deadline      string             `yaml:"deadline,omitempty" json:"deadline,omitempty"`
	Allocations   []AllocationImport `yaml:"allocations,omitempty" json:"allocations,omitempty"`
}

type AllocationImport struct {
	Date  string  `yaml:"date" json:"date"`
	Hours float64 `yaml:"hours" json:"hours"`
}

// LoadWorkspace reads and parses a workspace file.
func LoadWorkspace(path string) (*WorkspaceFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading import file: %w", err)
	}
	return ParseWorkspace(data)
}

// ParseWorkspace decodes YAML or JSON workspace content. Unknown keys are
// rejected so typos surface instead of silently dropping data.
func ParseWorkspace(data []byte) (*WorkspaceFile, error) {
	var ws WorkspaceFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&ws); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("parsing import file: file is empty")
		}
		return nil, fmt.Errorf("parsing import file: %w", err)
	}
	return &ws, nil
}
