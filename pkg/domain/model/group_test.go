package model_test

import (
	"testing"

	"github.com/astra-hd/onboard/pkg/domain/model"
	"github.com/astra-hd/onboard/pkg/domain/types"
	"github.com/m-mizutani/gt"
)

func TestClassifyGroup(t *testing.T) {
	cases := []struct {
		name       string
		groupTypes []string
		mail       bool
		security   bool
		expected   types.GroupKind
		addable    bool
	}{
		{"unified", []string{"Unified"}, true, false, types.GroupKindUnified, true},
		{"unified ignores flags", []string{"Unified"}, true, true, types.GroupKindUnified, true},
		{"plain security", nil, false, true, types.GroupKindSecurity, true},
		{"distribution list", nil, true, false, types.GroupKindDistributionList, false},
		{"mail-enabled security", nil, true, true, types.GroupKindMailEnabledSecurity, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cls := model.ClassifyGroup(model.DirectoryGroup{
				ID:              "g-1",
				GroupTypes:      tc.groupTypes,
				MailEnabled:     tc.mail,
				SecurityEnabled: tc.security,
			})

			gt.True(t, cls.Exists)
			gt.Equal(t, cls.Kind, tc.expected)
			gt.Equal(t, cls.Addable(), tc.addable)
			gt.Equal(t, cls.DirectoryID, types.DirectoryID("g-1"))
		})
	}

	t.Run("zero value is not addable", func(t *testing.T) {
		var cls model.GroupClassification
		gt.False(t, cls.Exists)
		gt.False(t, cls.Addable())
		gt.Equal(t, cls.Kind, types.GroupKindUnknown)
	})
}
