package model

import (
	"github.com/astra-hd/onboard/pkg/domain/types"
)

// DirectoryGroup is a group entity as returned by the directory backend
type DirectoryGroup struct {
	ID              types.DirectoryID
	DisplayName     string
	GroupTypes      []string
	MailEnabled     bool
	SecurityEnabled bool
}

// GroupClassification is the transient result of one group lookup.
// It is computed per lookup and never persisted.
type GroupClassification struct {
	Exists      bool
	Kind        types.GroupKind
	DirectoryID types.DirectoryID
}

// Addable reports whether a membership add may be issued for this group
func (c GroupClassification) Addable() bool {
	return c.Exists && c.Kind.Addable()
}

// ClassifyGroup derives the group kind from the directory attributes.
// A non-empty groupTypes marks a unified (M365) group regardless of the
// mail/security flags; otherwise the two flags distinguish plain security
// groups, distribution lists, and mail-enabled security groups.
func ClassifyGroup(g DirectoryGroup) GroupClassification {
	kind := types.GroupKindUnknown
	switch {
	case len(g.GroupTypes) > 0:
		kind = types.GroupKindUnified
	case !g.MailEnabled:
		kind = types.GroupKindSecurity
	case g.SecurityEnabled:
		kind = types.GroupKindMailEnabledSecurity
	default:
		kind = types.GroupKindDistributionList
	}

	return GroupClassification{
		Exists:      true,
		Kind:        kind,
		DirectoryID: g.ID,
	}
}
