package graph

// Wire types mirroring the Microsoft Graph v1.0 REST shapes this client
// consumes. Only the attributes the provisioning run reads are mapped.

type listResponse[T any] struct {
	Value []T `json:"value"`
}

type userResource struct {
	ID                string `json:"id"`
	DisplayName       string `json:"displayName"`
	UserPrincipalName string `json:"userPrincipalName"`
	OfficeLocation    string `json:"officeLocation"`
}

type passwordProfile struct {
	Password                      string `json:"password"`
	ForceChangePasswordNextSignIn bool   `json:"forceChangePasswordNextSignIn"`
}

type createUserRequest struct {
	AccountEnabled    bool            `json:"accountEnabled"`
	GivenName         string          `json:"givenName"`
	Surname           string          `json:"surname"`
	DisplayName       string          `json:"displayName"`
	MailNickname      string          `json:"mailNickname"`
	UserPrincipalName string          `json:"userPrincipalName"`
	OfficeLocation    string          `json:"officeLocation,omitempty"`
	Department        string          `json:"department,omitempty"`
	JobTitle          string          `json:"jobTitle,omitempty"`
	UsageLocation     string          `json:"usageLocation,omitempty"`
	PasswordProfile   passwordProfile `json:"passwordProfile"`
}

type phoneMethodRequest struct {
	PhoneNumber string `json:"phoneNumber"`
	PhoneType   string `json:"phoneType"`
}

type phoneMethodResource struct {
	PhoneNumber string `json:"phoneNumber"`
}

type odataRef struct {
	ODataID string `json:"@odata.id"`
}

type groupResource struct {
	ID              string   `json:"id"`
	DisplayName     string   `json:"displayName"`
	GroupTypes      []string `json:"groupTypes"`
	MailEnabled     bool     `json:"mailEnabled"`
	SecurityEnabled bool     `json:"securityEnabled"`
}

type prepaidUnits struct {
	Enabled int `json:"enabled"`
}

type subscribedSkuResource struct {
	SkuID         string       `json:"skuId"`
	SkuPartNumber string       `json:"skuPartNumber"`
	ConsumedUnits int          `json:"consumedUnits"`
	PrepaidUnits  prepaidUnits `json:"prepaidUnits"`
}

type skuRef struct {
	SkuID string `json:"skuId"`
}

type assignLicenseRequest struct {
	AddLicenses    []skuRef `json:"addLicenses"`
	RemoveLicenses []string `json:"removeLicenses"`
}
