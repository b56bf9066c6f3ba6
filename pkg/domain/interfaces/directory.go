package interfaces

//go:generate moq -out mocks/mocks.go -pkg mocks . DirectoryClient Confirmer

import (
	"context"

	"github.com/astra-hd/onboard/pkg/domain/model"
	"github.com/astra-hd/onboard/pkg/domain/types"
)

// DirectoryClient defines the directory-service REST operations the
// provisioning run depends on. Every call is blocking; it either returns
// a result or an error. Zero matches from the Find operations are an
// empty slice, not an error.
type DirectoryClient interface {
	// FindUsersByUPN looks up identities by exact principal name
	FindUsersByUPN(ctx context.Context, upn types.UPN) ([]model.DirectoryUser, error)

	// FindUsersByDisplayName looks up identities by exact display name
	FindUsersByDisplayName(ctx context.Context, name string) ([]model.DirectoryUser, error)

	// CreateUser creates a directory identity and returns it
	CreateUser(ctx context.Context, req model.CreateUserRequest) (*model.DirectoryUser, error)

	// AddPhoneMethod registers a mobile phone authentication method and
	// returns the registered number
	AddPhoneMethod(ctx context.Context, userID types.DirectoryID, phoneNumber string) (string, error)

	// SetManager assigns the manager reference of a user
	SetManager(ctx context.Context, userID, managerID types.DirectoryID) error

	// FindGroupsByMail looks up groups by exact mail address
	FindGroupsByMail(ctx context.Context, addr string) ([]model.DirectoryGroup, error)

	// FindGroupsByDisplayName looks up groups by exact display name
	FindGroupsByDisplayName(ctx context.Context, name string) ([]model.DirectoryGroup, error)

	// AddGroupMember adds a user to a group. Adding an existing member is
	// indistinguishable from success.
	AddGroupMember(ctx context.Context, groupID, userID types.DirectoryID) error

	// ListSubscribedSkus returns all tenant SKUs with seat counters
	ListSubscribedSkus(ctx context.Context) ([]model.SubscribedSku, error)

	// AssignLicense assigns the given SKUs to a user
	AssignLicense(ctx context.Context, userID types.DirectoryID, skuIDs []types.SkuID) error
}

// Confirmer is the operator decision point for principal name collisions
type Confirmer interface {
	// Confirm asks the operator whether to proceed; false aborts the run
	Confirm(ctx context.Context, prompt string) (bool, error)
}
