package model

import (
	"strings"

	"github.com/m-mizutani/goerr/v2"
)

// FieldKey identifies a user record field a ticket label can map to
type FieldKey string

const (
	FieldFirstName  FieldKey = "first_name"
	FieldLastName   FieldKey = "last_name"
	FieldTitle      FieldKey = "title"
	FieldManager    FieldKey = "manager"
	FieldDivision   FieldKey = "division"
	FieldPhone      FieldKey = "phone"
	FieldDepartment FieldKey = "department"
	FieldOffice     FieldKey = "office"
	FieldGroups     FieldKey = "groups"
	FieldNotes      FieldKey = "notes"
)

// fieldKeys lists all recognized keys for config validation
var fieldKeys = []FieldKey{
	FieldFirstName, FieldLastName, FieldTitle, FieldManager, FieldDivision,
	FieldPhone, FieldDepartment, FieldOffice, FieldGroups, FieldNotes,
}

// TicketTemplate describes the structural contract of one ticket source:
// the header marker that introduces field names, the label substrings that
// map headers onto record fields, and the org default groups appended to
// every parsed record. The vocabulary is configuration, replaceable per
// ticket-source integration; the header/continuation structure is fixed.
type TicketTemplate struct {
	HeaderMarker  string                `yaml:"header_marker"`
	Labels        map[FieldKey][]string `yaml:"labels"`
	DefaultGroups []string              `yaml:"default_groups"`
}

// DefaultTicketTemplate returns the built-in vocabulary used when no
// template file is supplied
func DefaultTicketTemplate() *TicketTemplate {
	return &TicketTemplate{
		HeaderMarker: "###",
		Labels: map[FieldKey][]string{
			FieldFirstName:  {"first name"},
			FieldLastName:   {"last name"},
			FieldTitle:      {"title"},
			FieldManager:    {"manager"},
			FieldDivision:   {"division"},
			FieldPhone:      {"phone", "mobile"},
			FieldDepartment: {"department"},
			FieldOffice:     {"office"},
			FieldGroups:     {"group", "distribution list"},
			FieldNotes:      {"additional", "notes"},
		},
	}
}

// Validate validates the template configuration
func (t *TicketTemplate) Validate() error {
	if t.HeaderMarker == "" {
		return goerr.New("header marker is required")
	}
	if len(t.Labels) == 0 {
		return goerr.New("at least one field label is required")
	}

	known := make(map[FieldKey]bool, len(fieldKeys))
	for _, k := range fieldKeys {
		known[k] = true
	}
	for key, labels := range t.Labels {
		if !known[key] {
			return goerr.New("unknown field key", goerr.V("key", string(key)))
		}
		if len(labels) == 0 {
			return goerr.New("field key has no labels", goerr.V("key", string(key)))
		}
		for _, label := range labels {
			if strings.TrimSpace(label) == "" {
				return goerr.New("empty field label", goerr.V("key", string(key)))
			}
		}
	}

	return nil
}

// LabelsFor returns the label substrings for a field key
func (t *TicketTemplate) LabelsFor(key FieldKey) []string {
	return t.Labels[key]
}
