package model

import (
	"log/slog"

	"github.com/go-playground/validator/v10"
	"github.com/m-mizutani/goerr/v2"
)

// RawField is a single (field name, raw value) pair produced by the ticket
// parser. Values of list-valued fields carry the parser's list separator
// between entries. RawFields are consumed once by the record builder.
type RawField struct {
	Name  string
	Value string
}

// UserRecord is the structured output of a parsed ticket. Every string
// field defaults to empty, never nil, so downstream string operations are
// always well-defined. RequestedGroups preserves encounter order.
type UserRecord struct {
	FirstName       string `validate:"required"`
	LastName        string `validate:"required"`
	ManagerName     string
	Title           string
	Division        string
	Office          string
	Department      string
	PersonalPhone   string
	AdditionalNotes string
	RequestedGroups []string
}

var recordValidator = validator.New()

// Validate checks that the record carries the fields provisioning cannot
// proceed without
func (r *UserRecord) Validate() error {
	if err := recordValidator.Struct(r); err != nil {
		return goerr.Wrap(err, "incomplete user record",
			goerr.V("firstName", r.FirstName),
			goerr.V("lastName", r.LastName))
	}
	return nil
}

// DisplayName returns the display name used for the directory identity
func (r *UserRecord) DisplayName() string {
	return r.FirstName + " " + r.LastName
}

// AppendGroup appends a group to RequestedGroups unless it is already
// present. Used by org policy to add default groups after parsing.
func (r *UserRecord) AppendGroup(name string) {
	for _, g := range r.RequestedGroups {
		if g == name {
			return
		}
	}
	r.RequestedGroups = append(r.RequestedGroups, name)
}

// LogValue returns structured log value without free-text notes
func (r UserRecord) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("firstName", r.FirstName),
		slog.String("lastName", r.LastName),
		slog.String("title", r.Title),
		slog.String("department", r.Department),
		slog.String("office", r.Office),
		slog.Int("requestedGroups", len(r.RequestedGroups)),
	)
}
