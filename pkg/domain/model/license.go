package model

import (
	"github.com/astra-hd/onboard/pkg/domain/types"
)

// SubscribedSku is a tenant license SKU with its seat counters
type SubscribedSku struct {
	SkuID         types.SkuID
	SkuPartNumber string
	ConsumedUnits int
	PrepaidUnits  int
}

// Available reports whether the SKU has an unconsumed seat
func (s SubscribedSku) Available() bool {
	return s.ConsumedUnits < s.PrepaidUnits
}

// LicenseDecision is the transient allocation plan for one run. Seat
// counts are read at call time, so the decision is computed fresh per run.
type LicenseDecision struct {
	RequiredSkus []string
	Availability map[string]SubscribedSku
}

// AllocatableSkuIDs returns the SKU IDs of required SKUs that still have
// seats, in required-set order
func (d LicenseDecision) AllocatableSkuIDs() []types.SkuID {
	var ids []types.SkuID
	for _, part := range d.RequiredSkus {
		sku, ok := d.Availability[part]
		if ok && sku.Available() {
			ids = append(ids, sku.SkuID)
		}
	}
	return ids
}
