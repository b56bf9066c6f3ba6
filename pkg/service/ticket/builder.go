package ticket

import (
	"strings"

	"github.com/astra-hd/onboard/pkg/domain/model"
	"github.com/astra-hd/onboard/pkg/utils/textnorm"
	"github.com/m-mizutani/goerr/v2"
)

// fieldRule maps a header matcher onto an extraction function. Rules are
// evaluated in order per parsed field; the first match wins. Keeping the
// mapping as an explicit table makes each extraction independently
// testable.
type fieldRule struct {
	key   model.FieldKey
	match func(header string) bool
	apply func(rec *model.UserRecord, value string)
}

// RecordBuilder maps parsed ticket fields onto a structured user record
// using the template's label vocabulary
type RecordBuilder struct {
	template *model.TicketTemplate
	rules    []fieldRule
}

// NewRecordBuilder creates a builder for the given ticket template
func NewRecordBuilder(tmpl *model.TicketTemplate) *RecordBuilder {
	b := &RecordBuilder{template: tmpl}
	b.rules = []fieldRule{
		{
			key:   model.FieldFirstName,
			match: b.matcher(model.FieldFirstName),
			apply: func(rec *model.UserRecord, v string) {
				setIfEmpty(&rec.FirstName, textnorm.CollapseCompoundName(v))
			},
		},
		{
			key:   model.FieldLastName,
			match: b.matcher(model.FieldLastName),
			apply: func(rec *model.UserRecord, v string) {
				setIfEmpty(&rec.LastName, textnorm.CollapseCompoundName(v))
			},
		},
		{
			key:   model.FieldManager,
			match: b.matcher(model.FieldManager),
			apply: func(rec *model.UserRecord, v string) {
				setIfEmpty(&rec.ManagerName, trimManagerEmail(v))
			},
		},
		{
			key:   model.FieldTitle,
			match: b.matcher(model.FieldTitle),
			apply: func(rec *model.UserRecord, v string) {
				setIfEmpty(&rec.Title, v)
			},
		},
		{
			key:   model.FieldDivision,
			match: b.matcher(model.FieldDivision),
			apply: func(rec *model.UserRecord, v string) {
				setIfEmpty(&rec.Division, v)
			},
		},
		{
			key:   model.FieldPhone,
			match: b.matcher(model.FieldPhone),
			apply: func(rec *model.UserRecord, v string) {
				setIfEmpty(&rec.PersonalPhone, v)
			},
		},
		{
			key:   model.FieldDepartment,
			match: b.matcher(model.FieldDepartment),
			apply: func(rec *model.UserRecord, v string) {
				setIfEmpty(&rec.Department, extractWriteIn(v))
			},
		},
		{
			key:   model.FieldOffice,
			match: b.matcher(model.FieldOffice),
			apply: func(rec *model.UserRecord, v string) {
				setIfEmpty(&rec.Office, extractWriteIn(v))
			},
		},
		{
			key:   model.FieldGroups,
			match: b.matcher(model.FieldGroups),
			apply: func(rec *model.UserRecord, v string) {
				for _, g := range splitGroupList(v) {
					rec.AppendGroup(g)
				}
			},
		},
		{
			key:   model.FieldNotes,
			match: b.matcher(model.FieldNotes),
			apply: func(rec *model.UserRecord, v string) {
				setIfEmpty(&rec.AdditionalNotes, v)
			},
		},
	}
	return b
}

// Build dispatches every parsed field through the rule table and returns
// the validated record with org default groups appended. Unrecognized
// field headers are ignored, so template additions on the ticket side do
// not break parsing.
func (b *RecordBuilder) Build(fields []model.RawField) (*model.UserRecord, error) {
	if len(fields) == 0 {
		return nil, goerr.New("no parsed fields to build a record from")
	}

	rec := &model.UserRecord{}
	for _, f := range fields {
		for _, rule := range b.rules {
			if rule.match(f.Name) {
				rule.apply(rec, f.Value)
				break
			}
		}
	}

	for _, g := range b.template.DefaultGroups {
		rec.AppendGroup(g)
	}

	if err := rec.Validate(); err != nil {
		return nil, err
	}

	return rec, nil
}

// matcher returns a case-insensitive substring matcher over the
// template's labels for a field key
func (b *RecordBuilder) matcher(key model.FieldKey) func(string) bool {
	labels := b.template.LabelsFor(key)
	return func(header string) bool {
		h := strings.ToLower(header)
		for _, label := range labels {
			if strings.Contains(h, strings.ToLower(label)) {
				return true
			}
		}
		return false
	}
}

// setIfEmpty writes the trimmed value only when the target field is still
// unset. A field populated by an earlier exact match is never overwritten
// by a later, looser one.
func setIfEmpty(dst *string, value string) {
	if *dst != "" {
		return
	}
	*dst = strings.TrimSpace(value)
}

// trimManagerEmail keeps the display name portion of values like
// "Jane Doe <jane@example.com>"
func trimManagerEmail(v string) string {
	if i := strings.Index(v, "<"); i >= 0 {
		v = v[:i]
	}
	return strings.TrimSpace(v)
}

// extractWriteIn handles controlled-choice fields with a write-in
// fallback: when the originating system appends "> free text", the text
// after the marker replaces the plain value.
func extractWriteIn(v string) string {
	if i := strings.Index(v, ">"); i >= 0 {
		return strings.TrimSpace(v[i+1:])
	}
	return strings.TrimSpace(v)
}

// groupPunctuation cannot appear in a group name
var groupPunctuation = strings.NewReplacer(".", "", ";", "", ":", "")

// splitGroupList splits a group field value on commas and the parser's
// list separator, trims each token, and drops empties. ListSeparator
// contains a semicolon pair, so it is normalized to a comma before
// punctuation stripping.
func splitGroupList(v string) []string {
	v = strings.ReplaceAll(v, ListSeparator, ",")
	v = groupPunctuation.Replace(v)

	var groups []string
	for _, token := range strings.Split(v, ",") {
		token = strings.TrimSpace(token)
		if token != "" {
			groups = append(groups, token)
		}
	}
	return groups
}
