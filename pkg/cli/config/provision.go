package config

import (
	"log/slog"
	"os"
	"time"

	"github.com/astra-hd/onboard/pkg/domain/model"
	"github.com/astra-hd/onboard/pkg/usecase"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"
)

// Provision holds provisioning run configuration
type Provision struct {
	InitialPassword string
	UsageLocation   string
	PropagationWait time.Duration
	PacingWait      time.Duration
	PolicyPath      string
	Skus            []string
	AssumeYes       bool
}

// Flags returns CLI flags for Provision configuration
func (p *Provision) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "initial-password",
			Usage:       "Initial password for created users (change forced at first sign-in)",
			Category:    "Provisioning",
			Sources:     cli.EnvVars("ONBOARD_INITIAL_PASSWORD"),
			Destination: &p.InitialPassword,
		},
		&cli.StringFlag{
			Name:        "usage-location",
			Usage:       "ISO country code stamped on created users",
			Category:    "Provisioning",
			Value:       "US",
			Sources:     cli.EnvVars("ONBOARD_USAGE_LOCATION"),
			Destination: &p.UsageLocation,
		},
		&cli.DurationFlag{
			Name:        "propagation-wait",
			Usage:       "Wait after user creation before the phone attachment",
			Category:    "Provisioning",
			Value:       20 * time.Second,
			Sources:     cli.EnvVars("ONBOARD_PROPAGATION_WAIT"),
			Destination: &p.PropagationWait,
		},
		&cli.DurationFlag{
			Name:        "pacing-wait",
			Usage:       "Wait between attachment steps",
			Category:    "Provisioning",
			Value:       2 * time.Second,
			Sources:     cli.EnvVars("ONBOARD_PACING_WAIT"),
			Destination: &p.PacingWait,
		},
		&cli.StringFlag{
			Name:        "license-policy",
			Usage:       "License policy YAML path",
			Category:    "Provisioning",
			Sources:     cli.EnvVars("ONBOARD_LICENSE_POLICY"),
			Destination: &p.PolicyPath,
		},
		&cli.StringSliceFlag{
			Name:        "sku",
			Usage:       "Required license SKU part number (repeatable, overrides the policy file)",
			Category:    "Provisioning",
			Sources:     cli.EnvVars("ONBOARD_SKUS"),
			Destination: &p.Skus,
		},
		&cli.BoolFlag{
			Name:        "yes",
			Aliases:     []string{"y"},
			Usage:       "Proceed with the alternate principal name on collision without prompting",
			Category:    "Provisioning",
			Sources:     cli.EnvVars("ONBOARD_ASSUME_YES"),
			Destination: &p.AssumeYes,
		},
	}
}

// Validate validates the provisioning configuration
func (p *Provision) Validate() error {
	if p.InitialPassword == "" {
		return goerr.New("initial password is required (ONBOARD_INITIAL_PASSWORD)")
	}
	return nil
}

// DelayPolicy returns the configured delay policy
func (p *Provision) DelayPolicy() usecase.DelayPolicy {
	return usecase.DelayPolicy{
		Propagation: p.PropagationWait,
		Pacing:      p.PacingWait,
	}
}

// ConfigurePolicy builds the license policy: command-line SKUs win over
// the policy file; with neither, no SKU is ever required and the license
// step reports the policy mismatch.
func (p *Provision) ConfigurePolicy() (model.LicensePolicy, error) {
	if len(p.Skus) > 0 {
		return model.StaticLicensePolicy(p.Skus), nil
	}
	if p.PolicyPath == "" {
		return model.StaticLicensePolicy(nil), nil
	}

	data, err := os.ReadFile(p.PolicyPath)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read license policy",
			goerr.V("path", p.PolicyPath))
	}

	var policy model.LicensePolicyConfig
	if err := yaml.Unmarshal(data, &policy); err != nil {
		return nil, goerr.Wrap(err, "failed to parse license policy",
			goerr.V("path", p.PolicyPath))
	}
	if err := policy.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid license policy",
			goerr.V("path", p.PolicyPath))
	}

	return &policy, nil
}

// LogValue returns structured log value without the password itself
func (p Provision) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Bool("has_initial_password", p.InitialPassword != ""),
		slog.String("usageLocation", p.UsageLocation),
		slog.Duration("propagationWait", p.PropagationWait),
		slog.Duration("pacingWait", p.PacingWait),
		slog.String("policyPath", p.PolicyPath),
		slog.Bool("assumeYes", p.AssumeYes),
	)
}
