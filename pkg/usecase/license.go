package usecase

import (
	"context"

	"github.com/astra-hd/onboard/pkg/domain/interfaces"
	"github.com/astra-hd/onboard/pkg/domain/model"
	"github.com/astra-hd/onboard/pkg/domain/types"
	"github.com/astra-hd/onboard/pkg/utils/apperr"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
)

// LicenseAllocator decides which license SKUs a user needs, checks tenant
// seat availability, and issues the assignment. Seat counts are read at
// call time, so the decision is never cached across runs.
type LicenseAllocator struct {
	client interfaces.DirectoryClient
	policy model.LicensePolicy
}

// NewLicenseAllocator creates a LicenseAllocator
func NewLicenseAllocator(client interfaces.DirectoryClient, policy model.LicensePolicy) *LicenseAllocator {
	return &LicenseAllocator{client: client, policy: policy}
}

// Attach allocates licenses for the user and records one outcome per
// required SKU. An empty required set is reported as its own condition,
// not a silent no-op.
func (u *LicenseAllocator) Attach(ctx context.Context, result *model.ProvisioningResult, userID types.DirectoryID, rec *model.UserRecord) {
	logger := ctxlog.From(ctx)

	decision, err := u.Decide(ctx, rec)
	if err != nil {
		apperr.Handle(ctx, err)
		result.RecordStep(types.StepLicense, false, "seat lookup failed")
		return
	}

	if len(decision.RequiredSkus) == 0 {
		apperr.Handle(ctx, goerr.Wrap(model.ErrNoLicensePolicy,
			"license step skipped", goerr.V("department", rec.Department)))
		result.RecordStep(types.StepLicense, false, "no license policy matched")
		return
	}

	skuIDs := decision.AllocatableSkuIDs()
	assigned := len(skuIDs) > 0
	if assigned {
		if err := u.client.AssignLicense(ctx, userID, skuIDs); err != nil {
			apperr.Handle(ctx, goerr.Wrap(err, "license assignment failed"))
			assigned = false
		}
	}

	// One outcome per required SKU; the single assignment call covers
	// every allocatable SKU at once.
	for _, part := range decision.RequiredSkus {
		sku, ok := decision.Availability[part]
		switch {
		case !ok:
			result.RecordLicense(part, false, "SKU not present in tenant")
		case !sku.Available():
			result.RecordLicense(part, false, "no seats available")
		case !assigned:
			result.RecordLicense(part, false, "assignment call failed")
		default:
			result.RecordLicense(part, true, "")
		}
	}

	if assigned {
		logger.Info("assigned licenses", "skus", len(skuIDs))
	}
}

// Decide computes the allocation plan: the policy-required SKU set and
// the current tenant-wide seat counts for it
func (u *LicenseAllocator) Decide(ctx context.Context, rec *model.UserRecord) (*model.LicenseDecision, error) {
	required := u.policy.RequiredSkus(rec)
	decision := &model.LicenseDecision{
		RequiredSkus: required,
		Availability: map[string]model.SubscribedSku{},
	}
	if len(required) == 0 {
		return decision, nil
	}

	skus, err := u.client.ListSubscribedSkus(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list subscribed SKUs")
	}

	want := make(map[string]bool, len(required))
	for _, part := range required {
		want[part] = true
	}
	for _, sku := range skus {
		if want[sku.SkuPartNumber] {
			decision.Availability[sku.SkuPartNumber] = sku
		}
	}

	return decision, nil
}
