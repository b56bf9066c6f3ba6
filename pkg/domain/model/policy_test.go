package model_test

import (
	"testing"

	"github.com/astra-hd/onboard/pkg/domain/model"
	"github.com/m-mizutani/gt"
)

func TestLicensePolicyConfigValidate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		c := &model.LicensePolicyConfig{
			Rules:   []model.PolicyRule{{Department: "Engineering", Skus: []string{"SPE_E3"}}},
			Default: []string{"SPB"},
		}
		gt.NoError(t, c.Validate())
	})

	t.Run("rule without department", func(t *testing.T) {
		c := &model.LicensePolicyConfig{
			Rules: []model.PolicyRule{{Department: "  ", Skus: []string{"SPE_E3"}}},
		}
		gt.Error(t, c.Validate())
	})

	t.Run("rule without skus", func(t *testing.T) {
		c := &model.LicensePolicyConfig{
			Rules: []model.PolicyRule{{Department: "Engineering"}},
		}
		gt.Error(t, c.Validate())
	})

	t.Run("empty config is valid", func(t *testing.T) {
		gt.NoError(t, (&model.LicensePolicyConfig{}).Validate())
	})
}
