package model

import "github.com/m-mizutani/goerr/v2"

// Sentinel errors for provisioning control flow
var (
	// ErrRunAborted is returned when the operator declines to proceed
	// after a principal name collision. Nothing has been created.
	ErrRunAborted = goerr.New("provisioning run aborted by operator")

	// ErrUnresolvable is returned when the alternate principal name is
	// also taken. The run stops without a third attempt.
	ErrUnresolvable = goerr.New("alternate principal name is also taken")

	// ErrGroupNotFound indicates a requested group could not be resolved
	// in the directory.
	ErrGroupNotFound = goerr.New("group not found")

	// ErrNoLicensePolicy indicates no license SKU matched the org policy
	// for the user. Reported as its own condition, not a silent no-op.
	ErrNoLicensePolicy = goerr.New("no license policy matched")
)
