package model

import (
	"log/slog"

	"github.com/astra-hd/onboard/pkg/domain/types"
)

// GroupOutcome records the result of one group membership attempt
type GroupOutcome struct {
	GroupName string
	Succeeded bool
	Reason    string
}

// LicenseOutcome records the result of one SKU allocation attempt
type LicenseOutcome struct {
	SkuLabel  string
	Succeeded bool
	Reason    string
}

// StepOutcome records the result of a single attachment step (phone,
// manager, license policy match)
type StepOutcome struct {
	Step      types.StepName
	Succeeded bool
	Reason    string
}

// ProvisioningResult is the aggregate outcome of one provisioning run.
// It is owned exclusively by the orchestrator while the run is in flight
// and is read-only once handed to the reporter. Empty string fields mean
// the corresponding attribute was never set.
type ProvisioningResult struct {
	RunID             types.RunID
	DirectoryID       types.DirectoryID
	DisplayName       string
	UserPrincipalName types.UPN
	OfficeLocation    string
	AssignedAuthPhone string

	StepOutcomes    []StepOutcome
	GroupOutcomes   []GroupOutcome
	LicenseOutcomes []LicenseOutcome
}

// NewProvisioningResult creates an empty result for a new run
func NewProvisioningResult() *ProvisioningResult {
	return &ProvisioningResult{
		RunID: types.NewRunID(),
	}
}

// RecordStep appends an attachment step outcome
func (r *ProvisioningResult) RecordStep(step types.StepName, succeeded bool, reason string) {
	r.StepOutcomes = append(r.StepOutcomes, StepOutcome{
		Step:      step,
		Succeeded: succeeded,
		Reason:    reason,
	})
}

// RecordGroup appends a group membership outcome
func (r *ProvisioningResult) RecordGroup(name string, succeeded bool, reason string) {
	r.GroupOutcomes = append(r.GroupOutcomes, GroupOutcome{
		GroupName: name,
		Succeeded: succeeded,
		Reason:    reason,
	})
}

// RecordLicense appends a license allocation outcome
func (r *ProvisioningResult) RecordLicense(skuLabel string, succeeded bool, reason string) {
	r.LicenseOutcomes = append(r.LicenseOutcomes, LicenseOutcome{
		SkuLabel:  skuLabel,
		Succeeded: succeeded,
		Reason:    reason,
	})
}

// LogValue returns structured log value
func (r ProvisioningResult) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("runID", r.RunID.String()),
		slog.String("directoryID", r.DirectoryID.String()),
		slog.String("upn", r.UserPrincipalName.String()),
		slog.Int("groupOutcomes", len(r.GroupOutcomes)),
		slog.Int("licenseOutcomes", len(r.LicenseOutcomes)),
	)
}
