package model

import (
	"strings"

	"github.com/m-mizutani/goerr/v2"
)

// LicensePolicy decides which license SKUs a user requires. The
// org-specific eligibility rules live outside the provisioning core; this
// interface is their boundary.
type LicensePolicy interface {
	RequiredSkus(rec *UserRecord) []string
}

// PolicyRule maps a department substring onto a SKU set
type PolicyRule struct {
	Department string   `yaml:"department"`
	Skus       []string `yaml:"skus"`
}

// LicensePolicyConfig is the config-backed LicensePolicy: the first rule
// whose department substring matches the record wins; otherwise the
// default SKU set applies. An empty result means no policy matched.
type LicensePolicyConfig struct {
	Rules   []PolicyRule `yaml:"rules"`
	Default []string     `yaml:"default"`
}

// Validate validates the policy configuration
func (c *LicensePolicyConfig) Validate() error {
	for i, rule := range c.Rules {
		if strings.TrimSpace(rule.Department) == "" {
			return goerr.New("policy rule has no department matcher",
				goerr.V("index", i))
		}
		if len(rule.Skus) == 0 {
			return goerr.New("policy rule has no SKUs",
				goerr.V("index", i),
				goerr.V("department", rule.Department))
		}
	}
	return nil
}

// RequiredSkus implements LicensePolicy
func (c *LicensePolicyConfig) RequiredSkus(rec *UserRecord) []string {
	dept := strings.ToLower(rec.Department)
	for _, rule := range c.Rules {
		if dept != "" && strings.Contains(dept, strings.ToLower(rule.Department)) {
			return rule.Skus
		}
	}
	return c.Default
}

// StaticLicensePolicy is a fixed SKU set, used when SKUs are given on the
// command line instead of a policy file
type StaticLicensePolicy []string

// RequiredSkus implements LicensePolicy
func (p StaticLicensePolicy) RequiredSkus(*UserRecord) []string {
	return p
}
