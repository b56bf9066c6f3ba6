package ticket

import (
	"strings"

	"github.com/astra-hd/onboard/pkg/domain/model"
	"github.com/m-mizutani/goerr/v2"
)

// ListSeparator joins continuation lines of a multi-line field value.
// It cannot appear in a field value and keeps physically separate lines
// (e.g. one group name per line) from merging into one unparsable token.
const ListSeparator = ";;"

// Parser splits a raw ticket body into (field name, value) pairs.
// The header marker introduces a field name on its own line; every
// following non-header line is a continuation of that field's value.
type Parser struct {
	marker string
}

// NewParser creates a parser for the given header marker
func NewParser(marker string) *Parser {
	return &Parser{marker: marker}
}

// Parse returns one fully-resolved RawField per header line, in original
// order. A header with no continuation lines yields an empty value.
// Lines are trimmed before classification; blank lines are skipped.
func (p *Parser) Parse(body string) ([]model.RawField, error) {
	if strings.TrimSpace(body) == "" {
		return nil, goerr.New("ticket body is empty")
	}

	var fields []model.RawField
	current := -1

	for _, line := range strings.Split(body, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, p.marker) {
			name := strings.TrimSpace(strings.TrimPrefix(line, p.marker))
			fields = append(fields, model.RawField{Name: name})
			current++
			continue
		}

		// Continuation line before any header belongs to no field
		if current < 0 {
			continue
		}

		if fields[current].Value == "" {
			fields[current].Value = line
		} else {
			fields[current].Value += ListSeparator + line
		}
	}

	if len(fields) == 0 {
		return nil, goerr.New("no field headers found in ticket body",
			goerr.V("marker", p.marker))
	}

	return fields, nil
}
