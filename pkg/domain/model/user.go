package model

import (
	"github.com/astra-hd/onboard/pkg/domain/types"
)

// DirectoryUser is a user identity as returned by the directory backend
type DirectoryUser struct {
	ID                types.DirectoryID
	DisplayName       string
	UserPrincipalName types.UPN
	OfficeLocation    string
}

// CreateUserRequest carries the attributes of a new directory identity.
// The initial password is fixed per run and must be changed at next
// sign-in.
type CreateUserRequest struct {
	AccountEnabled    bool
	GivenName         string
	Surname           string
	DisplayName       string
	MailNickname      string
	UserPrincipalName types.UPN
	OfficeLocation    string
	Department        string
	JobTitle          string
	UsageLocation     string
	InitialPassword   string
}
