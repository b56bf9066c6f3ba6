package cli

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"github.com/astra-hd/onboard/pkg/cli/config"
	"github.com/astra-hd/onboard/pkg/domain/interfaces"
	"github.com/astra-hd/onboard/pkg/domain/model"
	"github.com/astra-hd/onboard/pkg/service/report"
	"github.com/astra-hd/onboard/pkg/service/ticket"
	"github.com/astra-hd/onboard/pkg/usecase"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

func cmdProvision() *cli.Command {
	var (
		graphCfg     config.Graph
		ticketCfg    config.Ticket
		provisionCfg config.Provision
	)

	flags := joinFlags(
		graphCfg.Flags(),
		ticketCfg.Flags(),
		provisionCfg.Flags(),
	)

	return &cli.Command{
		Name:      "provision",
		Usage:     "Create a directory user from a ticket file and attach phone, manager, groups, and license",
		ArgsUsage: "<ticket file>",
		Flags:     flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			if err := provisionCfg.Validate(); err != nil {
				return err
			}

			rec, err := buildRecord(c, &ticketCfg)
			if err != nil {
				return err
			}

			logger.Info("parsed ticket",
				slog.Any("record", *rec),
				slog.Any("graph", graphCfg),
				slog.Any("provision", provisionCfg),
			)

			client, err := graphCfg.Configure()
			if err != nil {
				return err
			}
			policy, err := provisionCfg.ConfigurePolicy()
			if err != nil {
				return err
			}

			var confirm interfaces.Confirmer = newPromptConfirmer(os.Stdin, os.Stderr)
			if provisionCfg.AssumeYes {
				confirm = autoConfirmer{}
			}

			uc := usecase.NewProvision(client, confirm, policy, graphCfg.Domain,
				usecase.WithInitialPassword(provisionCfg.InitialPassword),
				usecase.WithUsageLocation(provisionCfg.UsageLocation),
				usecase.WithDelayPolicy(provisionCfg.DelayPolicy()),
			)

			result, err := uc.Run(ctx, rec)
			if err != nil {
				if errors.Is(err, model.ErrRunAborted) {
					logger.Info("run aborted by operator, nothing created")
					return nil
				}
				return err
			}

			return report.NewTextReporter(os.Stdout).Render(result)
		},
	}
}

// buildRecord reads the ticket file and turns it into a validated record
func buildRecord(c *cli.Command, ticketCfg *config.Ticket) (*model.UserRecord, error) {
	path := c.Args().First()
	if path == "" {
		return nil, goerr.New("ticket file argument is required")
	}

	body, err := os.ReadFile(path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read ticket file", goerr.V("path", path))
	}

	tmpl, err := ticketCfg.Configure()
	if err != nil {
		return nil, err
	}

	fields, err := ticket.NewParser(tmpl.HeaderMarker).Parse(string(body))
	if err != nil {
		return nil, err
	}

	return ticket.NewRecordBuilder(tmpl).Build(fields)
}
