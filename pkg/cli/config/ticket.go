package config

import (
	"os"

	"github.com/astra-hd/onboard/pkg/domain/model"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"
)

// Ticket holds ticket-source configuration
type Ticket struct {
	TemplatePath string
}

// Flags returns CLI flags for Ticket configuration
func (t *Ticket) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "ticket-template",
			Usage:       "Ticket template YAML (header marker, field labels, default groups)",
			Category:    "Ticket",
			Sources:     cli.EnvVars("ONBOARD_TICKET_TEMPLATE"),
			Destination: &t.TemplatePath,
		},
	}
}

// Configure loads the ticket template, falling back to the built-in
// vocabulary when no file is given
func (t *Ticket) Configure() (*model.TicketTemplate, error) {
	if t.TemplatePath == "" {
		return model.DefaultTicketTemplate(), nil
	}

	data, err := os.ReadFile(t.TemplatePath)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read ticket template",
			goerr.V("path", t.TemplatePath))
	}

	tmpl := model.DefaultTicketTemplate()
	if err := yaml.Unmarshal(data, tmpl); err != nil {
		return nil, goerr.Wrap(err, "failed to parse ticket template",
			goerr.V("path", t.TemplatePath))
	}
	if err := tmpl.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid ticket template",
			goerr.V("path", t.TemplatePath))
	}

	return tmpl, nil
}
