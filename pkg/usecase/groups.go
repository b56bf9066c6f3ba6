package usecase

import (
	"context"
	"strings"

	"github.com/astra-hd/onboard/pkg/domain/interfaces"
	"github.com/astra-hd/onboard/pkg/domain/model"
	"github.com/astra-hd/onboard/pkg/domain/types"
	"github.com/astra-hd/onboard/pkg/utils/apperr"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
)

// GroupResolver classifies requested group names and attaches the user to
// every addable group. One outcome is recorded per requested name; a
// failed name never halts the remaining ones.
type GroupResolver struct {
	client interfaces.DirectoryClient
}

// NewGroupResolver creates a GroupResolver
func NewGroupResolver(client interfaces.DirectoryClient) *GroupResolver {
	return &GroupResolver{client: client}
}

// Attach resolves each requested group and issues a membership add for
// the addable ones, recording every outcome into result
func (u *GroupResolver) Attach(ctx context.Context, result *model.ProvisioningResult, userID types.DirectoryID, requested []string) {
	logger := ctxlog.From(ctx)

	for _, name := range requested {
		cls, err := u.Classify(ctx, name)
		if err != nil {
			apperr.Handle(ctx, err)
			result.RecordGroup(name, false, "lookup failed")
			continue
		}

		if !cls.Exists {
			result.RecordGroup(name, false, "not found")
			continue
		}
		if !cls.Kind.Addable() {
			result.RecordGroup(name, false, "cannot add members to a "+cls.Kind.String()+" group")
			continue
		}

		if err := u.client.AddGroupMember(ctx, cls.DirectoryID, userID); err != nil {
			apperr.Handle(ctx, goerr.Wrap(err, "failed to add group member",
				goerr.V("group", name)))
			result.RecordGroup(name, false, "membership add failed")
			continue
		}

		logger.Info("added group membership",
			"group", name, "kind", cls.Kind.String())
		result.RecordGroup(name, true, "")
	}
}

// Classify resolves one requested name to a GroupClassification. Names
// containing '@' are looked up by mail attribute; anything else by exact
// display name, addable only when the match is unambiguous.
func (u *GroupResolver) Classify(ctx context.Context, name string) (model.GroupClassification, error) {
	if strings.Contains(name, "@") {
		groups, err := u.client.FindGroupsByMail(ctx, name)
		if err != nil {
			return model.GroupClassification{}, goerr.Wrap(err, "group mail lookup failed",
				goerr.V("name", name))
		}
		if len(groups) == 0 {
			return model.GroupClassification{}, nil
		}
		return model.ClassifyGroup(groups[0]), nil
	}

	groups, err := u.client.FindGroupsByDisplayName(ctx, name)
	if err != nil {
		return model.GroupClassification{}, goerr.Wrap(err, "group name lookup failed",
			goerr.V("name", name))
	}
	if len(groups) != 1 {
		return model.GroupClassification{}, nil
	}
	return model.ClassifyGroup(groups[0]), nil
}
