package types

import (
	"github.com/google/uuid"
)

// DirectoryID represents an object identifier assigned by the directory backend
type DirectoryID string

// String returns the string representation
func (id DirectoryID) String() string {
	return string(id)
}

// UPN represents a user principal name (localpart@domain)
type UPN string

// String returns the string representation
func (u UPN) String() string {
	return string(u)
}

// SkuID represents a license SKU identifier (GUID) in the tenant
type SkuID string

// String returns the string representation
func (id SkuID) String() string {
	return string(id)
}

// RunID represents a single provisioning run identifier
type RunID string

// String returns the string representation
func (id RunID) String() string {
	return string(id)
}

// NewRunID creates a new RunID
func NewRunID() RunID {
	return RunID(uuid.New().String())
}

// GroupKind classifies a directory group by its membership semantics
type GroupKind int

const (
	GroupKindUnknown GroupKind = iota
	GroupKindUnified
	GroupKindSecurity
	GroupKindMailEnabledSecurity
	GroupKindDistributionList
)

// String returns the human-readable group kind
func (k GroupKind) String() string {
	switch k {
	case GroupKindUnified:
		return "unified"
	case GroupKindSecurity:
		return "security"
	case GroupKindMailEnabledSecurity:
		return "mail-enabled security"
	case GroupKindDistributionList:
		return "distribution list"
	default:
		return "unknown"
	}
}

// Addable reports whether members can be added to this kind of group
// through the directory membership endpoint. Distribution lists and
// mail-enabled security groups are managed through Exchange and cannot
// be written here.
func (k GroupKind) Addable() bool {
	return k == GroupKindUnified || k == GroupKindSecurity
}

// StepName identifies one attachment step of a provisioning run
type StepName string

const (
	StepPhone   StepName = "phone"
	StepManager StepName = "manager"
	StepGroups  StepName = "groups"
	StepLicense StepName = "license"
)

// String returns the string representation
func (s StepName) String() string {
	return string(s)
}
