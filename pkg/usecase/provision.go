package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/astra-hd/onboard/pkg/domain/interfaces"
	"github.com/astra-hd/onboard/pkg/domain/model"
	"github.com/astra-hd/onboard/pkg/domain/types"
	"github.com/astra-hd/onboard/pkg/utils/apperr"
	"github.com/astra-hd/onboard/pkg/utils/textnorm"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
)

// DelayPolicy separates the backend-propagation wait, which affects
// correctness of the first write after creation, from cosmetic pacing
// between the remaining steps. Both are zero in tests.
type DelayPolicy struct {
	// Propagation is waited once before the phone attachment, the most
	// latency-sensitive write after user creation.
	Propagation time.Duration
	// Pacing is waited between the other attachment steps.
	Pacing time.Duration
}

// ProvisionConfig holds configuration for the Provision use case
type ProvisionConfig struct {
	domain          string
	initialPassword string
	usageLocation   string
	delays          DelayPolicy
	sleep           func(ctx context.Context, d time.Duration)
}

// ProvisionOption is a functional option for configuring Provision
type ProvisionOption func(*ProvisionConfig)

// WithInitialPassword sets the fixed initial password of created users
func WithInitialPassword(password string) ProvisionOption {
	return func(c *ProvisionConfig) {
		c.initialPassword = password
	}
}

// WithUsageLocation sets the ISO country code stamped on created users
func WithUsageLocation(loc string) ProvisionOption {
	return func(c *ProvisionConfig) {
		c.usageLocation = loc
	}
}

// WithDelayPolicy sets the propagation and pacing waits
func WithDelayPolicy(delays DelayPolicy) ProvisionOption {
	return func(c *ProvisionConfig) {
		c.delays = delays
	}
}

// Provision is the top-level orchestrator of one provisioning run:
// uniqueness check, creation, then the phone, manager, group, and license
// attachments, strictly in sequence. Attachment failures are recorded,
// never fatal; only duplicate resolution and creation can end the run
// early.
type Provision struct {
	client  interfaces.DirectoryClient
	confirm interfaces.Confirmer
	groups  *GroupResolver
	license *LicenseAllocator
	config  *ProvisionConfig
}

// NewProvision creates a Provision use case
func NewProvision(client interfaces.DirectoryClient, confirm interfaces.Confirmer, policy model.LicensePolicy, domain string, opts ...ProvisionOption) *Provision {
	config := &ProvisionConfig{
		domain:          domain,
		initialPassword: "Onb0ard!ChangeMe",
		delays: DelayPolicy{
			Propagation: 20 * time.Second,
			Pacing:      2 * time.Second,
		},
		sleep: sleepContext,
	}
	for _, opt := range opts {
		opt(config)
	}

	return &Provision{
		client:  client,
		confirm: confirm,
		groups:  NewGroupResolver(client),
		license: NewLicenseAllocator(client, policy),
		config:  config,
	}
}

// Run executes the provisioning state machine for one parsed record.
// On operator decline it returns model.ErrRunAborted with nothing
// created; on an alternate-name collision it returns
// model.ErrUnresolvable. Any other error means creation itself failed.
func (u *Provision) Run(ctx context.Context, rec *model.UserRecord) (*model.ProvisioningResult, error) {
	logger := ctxlog.From(ctx)

	if err := rec.Validate(); err != nil {
		return nil, err
	}

	upn, err := u.resolveUPN(ctx, rec)
	if err != nil {
		return nil, err
	}

	result := model.NewProvisioningResult()
	logger.Info("creating directory user",
		"runID", result.RunID.String(), "upn", upn.String())

	created, err := u.client.CreateUser(ctx, model.CreateUserRequest{
		AccountEnabled:    true,
		GivenName:         rec.FirstName,
		Surname:           rec.LastName,
		DisplayName:       rec.DisplayName(),
		MailNickname:      localPart(upn),
		UserPrincipalName: upn,
		OfficeLocation:    rec.Office,
		Department:        rec.Department,
		JobTitle:          rec.Title,
		UsageLocation:     u.config.usageLocation,
		InitialPassword:   u.config.initialPassword,
	})
	if err != nil {
		return nil, goerr.Wrap(err, "user creation failed", goerr.V("upn", upn.String()))
	}

	result.DirectoryID = created.ID
	result.DisplayName = created.DisplayName
	result.UserPrincipalName = created.UserPrincipalName
	result.OfficeLocation = created.OfficeLocation

	// The directory is read-after-write inconsistent for a window after
	// creation; the phone write is the first dependent call and must wait
	// it out.
	u.config.sleep(ctx, u.config.delays.Propagation)
	u.attachPhone(ctx, result, rec)

	u.config.sleep(ctx, u.config.delays.Pacing)
	u.attachManager(ctx, result, rec)

	u.config.sleep(ctx, u.config.delays.Pacing)
	u.groups.Attach(ctx, result, created.ID, rec.RequestedGroups)

	u.config.sleep(ctx, u.config.delays.Pacing)
	u.license.Attach(ctx, result, created.ID, rec)

	logger.Info("provisioning run complete", "result", *result)
	return result, nil
}

// resolveUPN derives the principal name and runs the uniqueness search.
// A collision is surfaced to the operator; on approval one alternate name
// is tried. A second collision is fatal: the suffix is never bumped again.
func (u *Provision) resolveUPN(ctx context.Context, rec *model.UserRecord) (types.UPN, error) {
	local := textnorm.StripDiacritics(rec.FirstName) + "." + textnorm.StripDiacritics(rec.LastName)
	upn := types.UPN(local + "@" + u.config.domain)

	matches, err := u.client.FindUsersByUPN(ctx, upn)
	if err != nil {
		return "", goerr.Wrap(err, "uniqueness search failed", goerr.V("upn", upn.String()))
	}
	if len(matches) == 0 {
		return upn, nil
	}

	prompt := fmt.Sprintf("%s already exists (%s). Create with an alternate principal name?",
		upn, matches[0].DisplayName)
	ok, err := u.confirm.Confirm(ctx, prompt)
	if err != nil {
		return "", goerr.Wrap(err, "operator confirmation failed")
	}
	if !ok {
		return "", goerr.Wrap(model.ErrRunAborted, "duplicate identity declined",
			goerr.V("upn", upn.String()))
	}

	alt := types.UPN(local + altSuffix + "@" + u.config.domain)
	matches, err = u.client.FindUsersByUPN(ctx, alt)
	if err != nil {
		return "", goerr.Wrap(err, "uniqueness search failed", goerr.V("upn", alt.String()))
	}
	if len(matches) > 0 {
		return "", goerr.Wrap(model.ErrUnresolvable, "principal name collision",
			goerr.V("upn", upn.String()), goerr.V("alternate", alt.String()))
	}

	return alt, nil
}

// altSuffix is appended to the local part on a principal name collision.
// Exactly one alternate is tried; a second collision escalates to the
// operator instead of guessing further names.
const altSuffix = "2"

func (u *Provision) attachPhone(ctx context.Context, result *model.ProvisioningResult, rec *model.UserRecord) {
	if rec.PersonalPhone == "" {
		result.RecordStep(types.StepPhone, false, "no phone number in ticket")
		return
	}

	phone, err := u.client.AddPhoneMethod(ctx, result.DirectoryID, rec.PersonalPhone)
	if err != nil {
		apperr.Handle(ctx, goerr.Wrap(err, "phone attachment failed"))
		result.RecordStep(types.StepPhone, false, "phone method registration failed")
		return
	}

	result.AssignedAuthPhone = phone
	result.RecordStep(types.StepPhone, true, "")
}

func (u *Provision) attachManager(ctx context.Context, result *model.ProvisioningResult, rec *model.UserRecord) {
	if rec.ManagerName == "" {
		result.RecordStep(types.StepManager, false, "no manager in ticket")
		return
	}

	managers, err := u.client.FindUsersByDisplayName(ctx, rec.ManagerName)
	if err != nil {
		apperr.Handle(ctx, goerr.Wrap(err, "manager lookup failed",
			goerr.V("manager", rec.ManagerName)))
		result.RecordStep(types.StepManager, false, "manager lookup failed")
		return
	}
	if len(managers) == 0 {
		result.RecordStep(types.StepManager, false, "manager not found: "+rec.ManagerName)
		return
	}

	if err := u.client.SetManager(ctx, result.DirectoryID, managers[0].ID); err != nil {
		apperr.Handle(ctx, goerr.Wrap(err, "manager assignment failed"))
		result.RecordStep(types.StepManager, false, "manager assignment failed")
		return
	}

	result.RecordStep(types.StepManager, true, managers[0].DisplayName)
}

// sleepContext waits for d or until the context is done, whichever comes
// first. Zero and negative durations return immediately.
func sleepContext(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}

func localPart(upn types.UPN) string {
	s := upn.String()
	if i := strings.Index(s, "@"); i >= 0 {
		return s[:i]
	}
	return s
}
