package cli

import (
	"context"
	"os"

	"github.com/astra-hd/onboard/pkg/cli/config"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"
)

func cmdInspect() *cli.Command {
	var ticketCfg config.Ticket

	return &cli.Command{
		Name:      "inspect",
		Usage:     "Parse a ticket file and print the structured record without touching the directory",
		ArgsUsage: "<ticket file>",
		Flags:     ticketCfg.Flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			rec, err := buildRecord(c, &ticketCfg)
			if err != nil {
				return err
			}

			out, err := yaml.Marshal(rec)
			if err != nil {
				return goerr.Wrap(err, "failed to render record")
			}
			if _, err := os.Stdout.Write(out); err != nil {
				return goerr.Wrap(err, "failed to write record")
			}
			return nil
		},
	}
}
