package graph

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/astra-hd/onboard/pkg/domain/interfaces"
	"github.com/astra-hd/onboard/pkg/domain/model"
	"github.com/astra-hd/onboard/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// DefaultBaseURL is the Microsoft Graph v1.0 endpoint
const DefaultBaseURL = "https://graph.microsoft.com/v1.0"

// Error tags for classifying directory call failures
var (
	// ErrTagTransport marks protocol-level failures of a directory call
	ErrTagTransport = goerr.NewTag("transport")
	// ErrTagRejected marks non-2xx responses from the directory backend
	ErrTagRejected = goerr.NewTag("rejected")
)

// TokenSource supplies a bearer token per request. Token acquisition and
// refresh are outside this client; a static token is the minimal source.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// StaticTokenSource returns a TokenSource yielding a fixed token
func StaticTokenSource(token string) TokenSource {
	return staticToken(token)
}

type staticToken string

func (t staticToken) Token(context.Context) (string, error) {
	if t == "" {
		return "", goerr.New("access token is empty")
	}
	return string(t), nil
}

// Client is a thin REST client for the directory operations of a
// provisioning run. It implements interfaces.DirectoryClient.
type Client struct {
	httpClient *http.Client
	baseURL    string
	tokens     TokenSource
}

// Option is a functional option for configuring Client
type Option func(*Client)

// WithBaseURL overrides the Graph endpoint, used by tests
func WithBaseURL(u string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimSuffix(u, "/")
	}
}

// WithHTTPClient overrides the underlying HTTP client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// New creates a Graph client
func New(tokens TokenSource, opts ...Option) *Client {
	c := &Client{
		httpClient: http.DefaultClient,
		baseURL:    DefaultBaseURL,
		tokens:     tokens,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var _ interfaces.DirectoryClient = (*Client)(nil)

// FindUsersByUPN implements interfaces.DirectoryClient
func (c *Client) FindUsersByUPN(ctx context.Context, upn types.UPN) ([]model.DirectoryUser, error) {
	path := "/users?$filter=" + eqFilter("userPrincipalName", upn.String())
	var resp listResponse[userResource]
	if err := c.do(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}
	return toUsers(resp.Value), nil
}

// FindUsersByDisplayName implements interfaces.DirectoryClient
func (c *Client) FindUsersByDisplayName(ctx context.Context, name string) ([]model.DirectoryUser, error) {
	path := "/users?$filter=" + eqFilter("displayName", name)
	var resp listResponse[userResource]
	if err := c.do(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}
	return toUsers(resp.Value), nil
}

// CreateUser implements interfaces.DirectoryClient
func (c *Client) CreateUser(ctx context.Context, req model.CreateUserRequest) (*model.DirectoryUser, error) {
	body := createUserRequest{
		AccountEnabled:    req.AccountEnabled,
		GivenName:         req.GivenName,
		Surname:           req.Surname,
		DisplayName:       req.DisplayName,
		MailNickname:      req.MailNickname,
		UserPrincipalName: req.UserPrincipalName.String(),
		OfficeLocation:    req.OfficeLocation,
		Department:        req.Department,
		JobTitle:          req.JobTitle,
		UsageLocation:     req.UsageLocation,
		PasswordProfile: passwordProfile{
			Password:                      req.InitialPassword,
			ForceChangePasswordNextSignIn: true,
		},
	}

	var resp userResource
	if err := c.do(ctx, http.MethodPost, "/users", body, &resp); err != nil {
		return nil, err
	}
	user := toUser(resp)
	return &user, nil
}

// AddPhoneMethod implements interfaces.DirectoryClient
func (c *Client) AddPhoneMethod(ctx context.Context, userID types.DirectoryID, phoneNumber string) (string, error) {
	body := phoneMethodRequest{
		PhoneNumber: phoneNumber,
		PhoneType:   "mobile",
	}

	path := fmt.Sprintf("/users/%s/authentication/phoneMethods", userID)
	var resp phoneMethodResource
	if err := c.do(ctx, http.MethodPost, path, body, &resp); err != nil {
		return "", err
	}
	return resp.PhoneNumber, nil
}

// SetManager implements interfaces.DirectoryClient
func (c *Client) SetManager(ctx context.Context, userID, managerID types.DirectoryID) error {
	body := odataRef{
		ODataID: fmt.Sprintf("%s/users/%s", c.baseURL, managerID),
	}

	path := fmt.Sprintf("/users/%s/manager/$ref", userID)
	return c.do(ctx, http.MethodPut, path, body, nil)
}

// FindGroupsByMail implements interfaces.DirectoryClient
func (c *Client) FindGroupsByMail(ctx context.Context, addr string) ([]model.DirectoryGroup, error) {
	path := "/groups?$filter=" + eqFilter("mail", addr)
	var resp listResponse[groupResource]
	if err := c.do(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}
	return toGroups(resp.Value), nil
}

// FindGroupsByDisplayName implements interfaces.DirectoryClient
func (c *Client) FindGroupsByDisplayName(ctx context.Context, name string) ([]model.DirectoryGroup, error) {
	path := "/groups?$filter=" + eqFilter("displayName", name)
	var resp listResponse[groupResource]
	if err := c.do(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}
	return toGroups(resp.Value), nil
}

// AddGroupMember implements interfaces.DirectoryClient. Adding a user who
// is already a member reports success: the backend's "already exist"
// response is not a distinct failure kind at this layer.
func (c *Client) AddGroupMember(ctx context.Context, groupID, userID types.DirectoryID) error {
	body := odataRef{
		ODataID: fmt.Sprintf("%s/directoryObjects/%s", c.baseURL, userID),
	}

	path := fmt.Sprintf("/groups/%s/members/$ref", groupID)
	err := c.do(ctx, http.MethodPost, path, body, nil)
	if err != nil && isAlreadyMember(err) {
		return nil
	}
	return err
}

// ListSubscribedSkus implements interfaces.DirectoryClient
func (c *Client) ListSubscribedSkus(ctx context.Context) ([]model.SubscribedSku, error) {
	var resp listResponse[subscribedSkuResource]
	if err := c.do(ctx, http.MethodGet, "/subscribedSkus", nil, &resp); err != nil {
		return nil, err
	}

	skus := make([]model.SubscribedSku, 0, len(resp.Value))
	for _, s := range resp.Value {
		skus = append(skus, model.SubscribedSku{
			SkuID:         types.SkuID(s.SkuID),
			SkuPartNumber: s.SkuPartNumber,
			ConsumedUnits: s.ConsumedUnits,
			PrepaidUnits:  s.PrepaidUnits.Enabled,
		})
	}
	return skus, nil
}

// AssignLicense implements interfaces.DirectoryClient
func (c *Client) AssignLicense(ctx context.Context, userID types.DirectoryID, skuIDs []types.SkuID) error {
	body := assignLicenseRequest{
		AddLicenses:    make([]skuRef, 0, len(skuIDs)),
		RemoveLicenses: []string{},
	}
	for _, id := range skuIDs {
		body.AddLicenses = append(body.AddLicenses, skuRef{SkuID: id.String()})
	}

	path := fmt.Sprintf("/users/%s/microsoft.graph.assignLicense", userID)
	return c.do(ctx, http.MethodPost, path, body, nil)
}

// do issues one request and decodes the response into out (nil for
// no-content operations). Non-2xx responses become errors carrying the
// status and a body excerpt.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return goerr.Wrap(err, "failed to encode request body")
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return goerr.Wrap(err, "failed to build directory request",
			goerr.V("method", method), goerr.V("path", path))
	}

	token, err := c.tokens.Token(ctx)
	if err != nil {
		return goerr.Wrap(err, "failed to acquire access token")
	}
	req.Header.Set("Authorization", "Bearer "+token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return goerr.Wrap(err, "directory request failed",
			goerr.T(ErrTagTransport),
			goerr.V("method", method), goerr.V("path", path))
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		excerpt, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return goerr.New("directory request rejected",
			goerr.T(ErrTagRejected),
			goerr.V("method", method),
			goerr.V("path", path),
			goerr.V("status", resp.StatusCode),
			goerr.V("body", string(excerpt)))
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return goerr.Wrap(err, "failed to decode directory response",
			goerr.V("method", method), goerr.V("path", path))
	}
	return nil
}

// eqFilter builds a URL-encoded OData equality filter. Single quotes are
// doubled per OData literal rules; query encoding covers characters like
// '&' that would otherwise break the request.
func eqFilter(attr, value string) string {
	value = strings.ReplaceAll(value, "'", "''")
	return url.QueryEscape(fmt.Sprintf("%s eq '%s'", attr, value))
}

// isAlreadyMember matches the backend's duplicate member-ref rejection
// ("One or more added object references already exist")
func isAlreadyMember(err error) bool {
	values := goerr.Values(err)
	if values == nil {
		return false
	}
	body, ok := values["body"].(string)
	return ok && strings.Contains(body, "already exist")
}

func toUser(r userResource) model.DirectoryUser {
	return model.DirectoryUser{
		ID:                types.DirectoryID(r.ID),
		DisplayName:       r.DisplayName,
		UserPrincipalName: types.UPN(r.UserPrincipalName),
		OfficeLocation:    r.OfficeLocation,
	}
}

func toUsers(rs []userResource) []model.DirectoryUser {
	users := make([]model.DirectoryUser, 0, len(rs))
	for _, r := range rs {
		users = append(users, toUser(r))
	}
	return users
}

func toGroups(rs []groupResource) []model.DirectoryGroup {
	groups := make([]model.DirectoryGroup, 0, len(rs))
	for _, r := range rs {
		groups = append(groups, model.DirectoryGroup{
			ID:              types.DirectoryID(r.ID),
			DisplayName:     r.DisplayName,
			GroupTypes:      r.GroupTypes,
			MailEnabled:     r.MailEnabled,
			SecurityEnabled: r.SecurityEnabled,
		})
	}
	return groups
}
