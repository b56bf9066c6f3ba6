package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/astra-hd/onboard/pkg/domain/interfaces/mocks"
	"github.com/astra-hd/onboard/pkg/domain/model"
	"github.com/astra-hd/onboard/pkg/domain/types"
	"github.com/astra-hd/onboard/pkg/service/ticket"
	"github.com/astra-hd/onboard/pkg/usecase"
	"github.com/m-mizutani/gt"
)

func johnDoe() *model.UserRecord {
	return &model.UserRecord{
		FirstName:     "John",
		LastName:      "Doe",
		ManagerName:   "Jane Doe",
		Title:         "Engineer",
		Office:        "Berlin",
		Department:    "Tooling",
		PersonalPhone: "+1 555 0100",
	}
}

// fullMock answers every directory call a complete happy-path run makes
func fullMock() *mocks.DirectoryClientMock {
	return &mocks.DirectoryClientMock{
		FindUsersByUPNFunc: func(ctx context.Context, upn types.UPN) ([]model.DirectoryUser, error) {
			return nil, nil
		},
		FindUsersByDisplayNameFunc: func(ctx context.Context, name string) ([]model.DirectoryUser, error) {
			return []model.DirectoryUser{{ID: "u-mgr", DisplayName: name}}, nil
		},
		CreateUserFunc: func(ctx context.Context, req model.CreateUserRequest) (*model.DirectoryUser, error) {
			return &model.DirectoryUser{
				ID:                "u-new",
				DisplayName:       req.DisplayName,
				UserPrincipalName: req.UserPrincipalName,
				OfficeLocation:    req.OfficeLocation,
			}, nil
		},
		AddPhoneMethodFunc: func(ctx context.Context, userID types.DirectoryID, phoneNumber string) (string, error) {
			return phoneNumber, nil
		},
		SetManagerFunc: func(ctx context.Context, userID, managerID types.DirectoryID) error {
			return nil
		},
		FindGroupsByDisplayNameFunc: func(ctx context.Context, name string) ([]model.DirectoryGroup, error) {
			return []model.DirectoryGroup{{ID: "g-1", SecurityEnabled: true}}, nil
		},
		AddGroupMemberFunc: func(ctx context.Context, groupID, userID types.DirectoryID) error {
			return nil
		},
		ListSubscribedSkusFunc: func(ctx context.Context) ([]model.SubscribedSku, error) {
			return []model.SubscribedSku{
				{SkuID: "sku-e3", SkuPartNumber: "SPE_E3", ConsumedUnits: 5, PrepaidUnits: 6},
			}, nil
		},
		AssignLicenseFunc: func(ctx context.Context, userID types.DirectoryID, skuIDs []types.SkuID) error {
			return nil
		},
	}
}

func newProvision(client *mocks.DirectoryClientMock, confirm *mocks.ConfirmerMock, policy model.LicensePolicy) *usecase.Provision {
	return usecase.NewProvision(client, confirm, policy, "corp.example",
		usecase.WithInitialPassword("Xk3!test"),
		usecase.WithUsageLocation("DE"),
		usecase.WithDelayPolicy(usecase.DelayPolicy{}),
	)
}

func TestProvisionHappyPath(t *testing.T) {
	ctx := context.Background()
	mock := fullMock()

	rec := johnDoe()
	rec.RequestedGroups = []string{"Engineering Team"}

	uc := newProvision(mock, &mocks.ConfirmerMock{}, model.StaticLicensePolicy{"SPE_E3"})
	result, err := uc.Run(ctx, rec)
	gt.NoError(t, err).Required()

	gt.Equal(t, result.DirectoryID, types.DirectoryID("u-new"))
	gt.Equal(t, result.DisplayName, "John Doe")
	gt.Equal(t, result.UserPrincipalName, types.UPN("John.Doe@corp.example"))
	gt.Equal(t, result.AssignedAuthPhone, "+1 555 0100")

	created := mock.CreateUserCalls()
	gt.A(t, created).Length(1)
	gt.Equal(t, created[0].Req.MailNickname, "John.Doe")
	gt.Equal(t, created[0].Req.UsageLocation, "DE")
	gt.True(t, created[0].Req.AccountEnabled)

	gt.A(t, result.StepOutcomes).Length(2)
	gt.True(t, result.StepOutcomes[0].Succeeded) // phone
	gt.True(t, result.StepOutcomes[1].Succeeded) // manager
	gt.A(t, result.GroupOutcomes).Length(1)
	gt.A(t, result.LicenseOutcomes).Length(1)
}

func TestProvisionDiacriticsAndCompoundNames(t *testing.T) {
	ctx := context.Background()
	mock := fullMock()

	rec := &model.UserRecord{FirstName: "José", LastName: "Ohara"}
	uc := newProvision(mock, &mocks.ConfirmerMock{}, model.StaticLicensePolicy(nil))
	result, err := uc.Run(ctx, rec)
	gt.NoError(t, err).Required()

	// Display name keeps the accent; the principal name drops it
	gt.Equal(t, result.UserPrincipalName, types.UPN("Jose.Ohara@corp.example"))
	gt.Equal(t, result.DisplayName, "José Ohara")
}

func TestProvisionDuplicateDeclined(t *testing.T) {
	ctx := context.Background()

	mock := &mocks.DirectoryClientMock{
		FindUsersByUPNFunc: func(ctx context.Context, upn types.UPN) ([]model.DirectoryUser, error) {
			return []model.DirectoryUser{{ID: "u-old", DisplayName: "John Doe"}}, nil
		},
	}
	confirm := &mocks.ConfirmerMock{
		ConfirmFunc: func(ctx context.Context, prompt string) (bool, error) {
			return false, nil
		},
	}

	uc := newProvision(mock, confirm, model.StaticLicensePolicy(nil))
	result, err := uc.Run(ctx, johnDoe())

	gt.Error(t, err)
	gt.True(t, errors.Is(err, model.ErrRunAborted))
	gt.V(t, result).Nil()
	gt.Equal(t, len(mock.CreateUserCalls()), 0)
}

func TestProvisionAlternateNameCollision(t *testing.T) {
	ctx := context.Background()

	mock := &mocks.DirectoryClientMock{
		FindUsersByUPNFunc: func(ctx context.Context, upn types.UPN) ([]model.DirectoryUser, error) {
			// Both the derived and the alternate name are taken
			return []model.DirectoryUser{{ID: "u-old"}}, nil
		},
	}
	confirm := &mocks.ConfirmerMock{
		ConfirmFunc: func(ctx context.Context, prompt string) (bool, error) {
			return true, nil
		},
	}

	uc := newProvision(mock, confirm, model.StaticLicensePolicy(nil))
	result, err := uc.Run(ctx, johnDoe())

	gt.Error(t, err)
	gt.True(t, errors.Is(err, model.ErrUnresolvable))
	gt.V(t, result).Nil()

	// Single-bump strategy: exactly two searches, never a third
	searches := mock.FindUsersByUPNCalls()
	gt.A(t, searches).Length(2)
	gt.Equal(t, searches[0].Upn, types.UPN("John.Doe@corp.example"))
	gt.Equal(t, searches[1].Upn, types.UPN("John.Doe2@corp.example"))
	gt.Equal(t, len(mock.CreateUserCalls()), 0)
}

func TestProvisionAlternateNameAccepted(t *testing.T) {
	ctx := context.Background()

	mock := fullMock()
	mock.FindUsersByUPNFunc = func(ctx context.Context, upn types.UPN) ([]model.DirectoryUser, error) {
		if upn == "John.Doe@corp.example" {
			return []model.DirectoryUser{{ID: "u-old"}}, nil
		}
		return nil, nil
	}
	confirm := &mocks.ConfirmerMock{
		ConfirmFunc: func(ctx context.Context, prompt string) (bool, error) {
			return true, nil
		},
	}

	uc := newProvision(mock, confirm, model.StaticLicensePolicy(nil))
	result, err := uc.Run(ctx, johnDoe())
	gt.NoError(t, err).Required()

	gt.Equal(t, result.UserPrincipalName, types.UPN("John.Doe2@corp.example"))
}

func TestProvisionCreateFailureIsFatal(t *testing.T) {
	ctx := context.Background()

	mock := fullMock()
	mock.CreateUserFunc = func(ctx context.Context, req model.CreateUserRequest) (*model.DirectoryUser, error) {
		return nil, errors.New("boom")
	}

	uc := newProvision(mock, &mocks.ConfirmerMock{}, model.StaticLicensePolicy(nil))
	result, err := uc.Run(ctx, johnDoe())

	gt.Error(t, err)
	gt.V(t, result).Nil()
	// No attachment is attempted without a created identity
	gt.Equal(t, len(mock.AddPhoneMethodCalls()), 0)
	gt.Equal(t, len(mock.SetManagerCalls()), 0)
}

func TestProvisionAttachmentFailuresDoNotHalt(t *testing.T) {
	ctx := context.Background()

	mock := fullMock()
	mock.AddPhoneMethodFunc = func(ctx context.Context, userID types.DirectoryID, phoneNumber string) (string, error) {
		return "", errors.New("phone backend down")
	}
	mock.FindUsersByDisplayNameFunc = func(ctx context.Context, name string) ([]model.DirectoryUser, error) {
		return nil, nil // manager not found
	}

	rec := johnDoe()
	rec.RequestedGroups = []string{"Engineering Team"}

	uc := newProvision(mock, &mocks.ConfirmerMock{}, model.StaticLicensePolicy{"SPE_E3"})
	result, err := uc.Run(ctx, rec)
	gt.NoError(t, err).Required()

	gt.A(t, result.StepOutcomes).Length(2)
	gt.False(t, result.StepOutcomes[0].Succeeded)
	gt.Equal(t, result.AssignedAuthPhone, "")
	gt.False(t, result.StepOutcomes[1].Succeeded)
	gt.S(t, result.StepOutcomes[1].Reason).Contains("not found")

	// Later steps still ran
	gt.A(t, result.GroupOutcomes).Length(1)
	gt.True(t, result.GroupOutcomes[0].Succeeded)
	gt.A(t, result.LicenseOutcomes).Length(1)
	gt.True(t, result.LicenseOutcomes[0].Succeeded)
}

func TestProvisionSkipsEmptyPhoneAndManager(t *testing.T) {
	ctx := context.Background()
	mock := fullMock()

	rec := &model.UserRecord{FirstName: "John", LastName: "Doe"}
	uc := newProvision(mock, &mocks.ConfirmerMock{}, model.StaticLicensePolicy(nil))
	result, err := uc.Run(ctx, rec)
	gt.NoError(t, err).Required()

	gt.Equal(t, len(mock.AddPhoneMethodCalls()), 0)
	gt.Equal(t, len(mock.SetManagerCalls()), 0)
	gt.A(t, result.StepOutcomes).Length(3)
	gt.False(t, result.StepOutcomes[0].Succeeded)
	gt.False(t, result.StepOutcomes[1].Succeeded)
}

// TestProvisionEndToEnd drives the full pipeline from raw ticket text
func TestProvisionEndToEnd(t *testing.T) {
	ctx := context.Background()

	body := `### First Name
John
### Last Name
Doe
### Manager
Jane Doe <jane@x.com>
### Groups
Engineering Team, CNC Group
`
	tmpl := model.DefaultTicketTemplate()
	fields, err := ticket.NewParser(tmpl.HeaderMarker).Parse(body)
	gt.NoError(t, err).Required()
	rec, err := ticket.NewRecordBuilder(tmpl).Build(fields)
	gt.NoError(t, err).Required()

	gt.Equal(t, rec.ManagerName, "Jane Doe")
	gt.Equal(t, rec.RequestedGroups, []string{"Engineering Team", "CNC Group"})

	mock := fullMock()
	uc := newProvision(mock, &mocks.ConfirmerMock{}, model.StaticLicensePolicy(nil))
	result, err := uc.Run(ctx, rec)
	gt.NoError(t, err).Required()

	gt.Equal(t, result.UserPrincipalName, types.UPN("John.Doe@corp.example"))

	managerLookups := mock.FindUsersByDisplayNameCalls()
	gt.A(t, managerLookups).Length(1)
	gt.Equal(t, managerLookups[0].Name, "Jane Doe")
	gt.A(t, result.GroupOutcomes).Length(2)
}
