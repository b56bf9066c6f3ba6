package usecase_test

import (
	"context"
	"testing"

	"github.com/astra-hd/onboard/pkg/domain/interfaces/mocks"
	"github.com/astra-hd/onboard/pkg/domain/model"
	"github.com/astra-hd/onboard/pkg/domain/types"
	"github.com/astra-hd/onboard/pkg/usecase"
	"github.com/m-mizutani/gt"
)

func unifiedGroup(id string) model.DirectoryGroup {
	return model.DirectoryGroup{
		ID:          types.DirectoryID(id),
		GroupTypes:  []string{"Unified"},
		MailEnabled: true,
	}
}

func TestGroupResolverAttach(t *testing.T) {
	ctx := context.Background()

	t.Run("display name and mail lookups", func(t *testing.T) {
		mock := &mocks.DirectoryClientMock{
			FindGroupsByDisplayNameFunc: func(ctx context.Context, name string) ([]model.DirectoryGroup, error) {
				gt.Equal(t, name, "Engineering Team")
				return []model.DirectoryGroup{
					{ID: "g-sec", SecurityEnabled: true},
				}, nil
			},
			FindGroupsByMailFunc: func(ctx context.Context, addr string) ([]model.DirectoryGroup, error) {
				gt.Equal(t, addr, "makers@corp.example")
				return []model.DirectoryGroup{unifiedGroup("g-uni")}, nil
			},
			AddGroupMemberFunc: func(ctx context.Context, groupID, userID types.DirectoryID) error {
				gt.Equal(t, userID, types.DirectoryID("u-1"))
				return nil
			},
		}

		result := model.NewProvisioningResult()
		usecase.NewGroupResolver(mock).Attach(ctx, result, "u-1",
			[]string{"Engineering Team", "makers@corp.example"})

		gt.A(t, result.GroupOutcomes).Length(2)
		gt.Equal(t, result.GroupOutcomes[0].GroupName, "Engineering Team")
		gt.True(t, result.GroupOutcomes[0].Succeeded)
		gt.True(t, result.GroupOutcomes[1].Succeeded)
		gt.Equal(t, len(mock.AddGroupMemberCalls()), 2)
	})

	t.Run("distribution list is recorded, not added", func(t *testing.T) {
		mock := &mocks.DirectoryClientMock{
			FindGroupsByMailFunc: func(ctx context.Context, addr string) ([]model.DirectoryGroup, error) {
				return []model.DirectoryGroup{
					{ID: "g-dl", MailEnabled: true},
				}, nil
			},
		}

		result := model.NewProvisioningResult()
		usecase.NewGroupResolver(mock).Attach(ctx, result, "u-1", []string{"news@corp.example"})

		gt.A(t, result.GroupOutcomes).Length(1)
		gt.False(t, result.GroupOutcomes[0].Succeeded)
		gt.S(t, result.GroupOutcomes[0].Reason).Contains("distribution list")
		gt.Equal(t, len(mock.AddGroupMemberCalls()), 0)
	})

	t.Run("ambiguous display name is not found", func(t *testing.T) {
		mock := &mocks.DirectoryClientMock{
			FindGroupsByDisplayNameFunc: func(ctx context.Context, name string) ([]model.DirectoryGroup, error) {
				return []model.DirectoryGroup{
					{ID: "g-1", SecurityEnabled: true},
					{ID: "g-2", SecurityEnabled: true},
				}, nil
			},
		}

		result := model.NewProvisioningResult()
		usecase.NewGroupResolver(mock).Attach(ctx, result, "u-1", []string{"Staff"})

		gt.A(t, result.GroupOutcomes).Length(1)
		gt.False(t, result.GroupOutcomes[0].Succeeded)
		gt.Equal(t, result.GroupOutcomes[0].Reason, "not found")
	})

	t.Run("one failed group never halts the rest", func(t *testing.T) {
		mock := &mocks.DirectoryClientMock{
			FindGroupsByDisplayNameFunc: func(ctx context.Context, name string) ([]model.DirectoryGroup, error) {
				if name == "Ghost Group" {
					return nil, nil
				}
				return []model.DirectoryGroup{{ID: "g-ok", SecurityEnabled: true}}, nil
			},
			AddGroupMemberFunc: func(ctx context.Context, groupID, userID types.DirectoryID) error {
				return nil
			},
		}

		result := model.NewProvisioningResult()
		usecase.NewGroupResolver(mock).Attach(ctx, result, "u-1",
			[]string{"Ghost Group", "Engineering Team"})

		gt.A(t, result.GroupOutcomes).Length(2)
		gt.False(t, result.GroupOutcomes[0].Succeeded)
		gt.True(t, result.GroupOutcomes[1].Succeeded)
	})
}

func TestGroupResolverClassify(t *testing.T) {
	ctx := context.Background()

	t.Run("mail path takes first match", func(t *testing.T) {
		mock := &mocks.DirectoryClientMock{
			FindGroupsByMailFunc: func(ctx context.Context, addr string) ([]model.DirectoryGroup, error) {
				return []model.DirectoryGroup{unifiedGroup("g-uni")}, nil
			},
		}

		cls, err := usecase.NewGroupResolver(mock).Classify(ctx, "makers@corp.example")
		gt.NoError(t, err)
		gt.True(t, cls.Exists)
		gt.Equal(t, cls.Kind, types.GroupKindUnified)
	})

	t.Run("zero matches means not found", func(t *testing.T) {
		mock := &mocks.DirectoryClientMock{
			FindGroupsByMailFunc: func(ctx context.Context, addr string) ([]model.DirectoryGroup, error) {
				return nil, nil
			},
		}

		cls, err := usecase.NewGroupResolver(mock).Classify(ctx, "nobody@corp.example")
		gt.NoError(t, err)
		gt.False(t, cls.Exists)
	})
}
