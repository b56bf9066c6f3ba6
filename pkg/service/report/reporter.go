package report

import (
	"fmt"
	"io"

	"github.com/astra-hd/onboard/pkg/domain/model"
	"github.com/m-mizutani/goerr/v2"
)

// Reporter renders the completion report of a provisioning run
type Reporter interface {
	Render(result *model.ProvisioningResult) error
}

// TextReporter writes a plain-text completion report. No colorization;
// the output is meant to be pasted back into the ticket.
type TextReporter struct {
	w io.Writer
}

// NewTextReporter creates a TextReporter writing to w
func NewTextReporter(w io.Writer) *TextReporter {
	return &TextReporter{w: w}
}

// Render implements Reporter
func (r *TextReporter) Render(result *model.ProvisioningResult) error {
	if result == nil {
		return goerr.New("no provisioning result to report")
	}

	p := func(format string, args ...any) {
		fmt.Fprintf(r.w, format+"\n", args...)
	}

	p("Provisioning run %s", result.RunID)
	p("")
	p("Identity")
	p("  Display name:   %s", result.DisplayName)
	p("  Principal name: %s", result.UserPrincipalName)
	p("  Directory ID:   %s", result.DirectoryID)
	if result.OfficeLocation != "" {
		p("  Office:         %s", result.OfficeLocation)
	}
	if result.AssignedAuthPhone != "" {
		p("  Auth phone:     %s", result.AssignedAuthPhone)
	}

	if len(result.StepOutcomes) > 0 {
		p("")
		p("Steps")
		for _, s := range result.StepOutcomes {
			p("  %s %-8s %s", mark(s.Succeeded), s.Step, s.Reason)
		}
	}

	if len(result.GroupOutcomes) > 0 {
		p("")
		p("Groups")
		for _, g := range result.GroupOutcomes {
			p("  %s %s %s", mark(g.Succeeded), g.GroupName, g.Reason)
		}
	}

	if len(result.LicenseOutcomes) > 0 {
		p("")
		p("Licenses")
		for _, l := range result.LicenseOutcomes {
			p("  %s %s %s", mark(l.Succeeded), l.SkuLabel, l.Reason)
		}
	}

	return nil
}

func mark(ok bool) string {
	if ok {
		return "[ok]"
	}
	return "[failed]"
}
