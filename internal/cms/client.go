package cms

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// ErrUnsuccessful is wrapped by errors for envelopes that report failure
// with a 2xx HTTP status.
var ErrUnsuccessful = errors.New("unsuccessful response")

// Error is returned for every failed CMS call that got a response.
type Error struct {
	Code    int
	Message string
	Err     error
}

func (e *Error) Error() string {
	msg := e.Message
	if msg == "" {
		msg = http.StatusText(e.Code)
	}
	if e.Err != nil {
		return fmt.Sprintf("cms: %d %s: %v", e.Code, msg, e.Err)
	}
	return fmt.Sprintf("cms: %d %s", e.Code, msg)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) StatusCode() int {
	return e.Code
}

// IsNotFound reports whether err is a CMS 404.
func IsNotFound(err error) bool {
	var cmsErr *Error
	return errors.As(err, &cmsErr) && cmsErr.Code == http.StatusNotFound
}

// IsUnauthorized reports whether the CMS rejected the bearer token.
func IsUnauthorized(err error) bool {
	var cmsErr *Error
	return errors.As(err, &cmsErr) &&
		(cmsErr.Code == http.StatusUnauthorized || cmsErr.Code == http.StatusForbidden)
}

type Client struct {
	endpoint string
	client   *http.Client
	token    string
	hook     Hook
}

type ClientOption func(*Client)

func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		c.client.Timeout = timeout
	}
}

func WithHTTPClient(client *http.Client) ClientOption {
	return func(c *Client) {
		c.client = client
	}
}

func WithHook(hook Hook) ClientOption {
	return func(c *Client) {
		c.hook = hook
	}
}

// NewClient returns a client of the CMS API located at endpoint.
func NewClient(endpoint string, options ...ClientOption) *Client {
	c := Client{
		endpoint: strings.TrimRight(endpoint, "/"),
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
	for _, option := range options {
		option(&c)
	}
	return &c
}

// WithToken returns a copy of the client that authorizes with a bearer token.
func (c *Client) WithToken(token string) *Client {
	clone := *c
	clone.token = token
	return &clone
}

func (c *Client) Contents(ctx context.Context, categoryID, subcategoryID string, page int) (Listing, error) {
	return c.listing(ctx, c.path("/contents/%s/%s", categoryID, subcategoryID), page)
}

func (c *Client) Content(ctx context.Context, categoryID, subcategoryID string, id int) (Content, error) {
	var content Content
	err := c.do(ctx, http.MethodGet, c.path("/contents/%s/%s/%d", categoryID, subcategoryID, id), nil, nil, &content)
	return content, err
}

func (c *Client) Home(ctx context.Context, page int) (Listing, error) {
	return c.listing(ctx, "/home", page)
}

func (c *Client) HomeCategory(ctx context.Context, categoryName string, page int) (Listing, error) {
	return c.listing(ctx, c.path("/home/%s", categoryName), page)
}

func (c *Client) Shows(ctx context.Context, page int) (Listing, error) {
	return c.listing(ctx, "/shows", page)
}

func (c *Client) ShowTags(ctx context.Context, tag string, page int) (Listing, error) {
	return c.listing(ctx, c.path("/show-tags/%s", tag), page)
}

func (c *Client) Advertising(ctx context.Context, placement string) (Ad, error) {
	var ad Ad
	err := c.do(ctx, http.MethodGet, c.path("/advertising/%s", placement), nil, nil, &ad)
	return ad, err
}

func (c *Client) UpdateAdvertising(ctx context.Context, placement string, form AdForm) (Ad, error) {
	var ad Ad
	err := c.do(ctx, http.MethodPost, c.path("/advertising/%s", placement), nil, form, &ad)
	return ad, err
}

func (c *Client) Login(ctx context.Context, form LoginForm) (Session, error) {
	var session Session
	err := c.do(ctx, http.MethodPost, "/login", nil, form, &session)
	return session, err
}

func (c *Client) Logout(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/logout", nil, nil, nil)
}

func (c *Client) Me(ctx context.Context) (User, error) {
	var user User
	err := c.do(ctx, http.MethodGet, "/me", nil, nil, &user)
	return user, err
}

func (c *Client) Categories(ctx context.Context) ([]Category, error) {
	var categories []Category
	err := c.do(ctx, http.MethodGet, "/categories", nil, nil, &categories)
	return categories, err
}

func (c *Client) CreateCategory(ctx context.Context, form CategoryForm) (Category, error) {
	var category Category
	err := c.do(ctx, http.MethodPost, "/categories", nil, form, &category)
	return category, err
}

func (c *Client) UpdateCategory(ctx context.Context, id int, form CategoryForm) (Category, error) {
	var category Category
	err := c.do(ctx, http.MethodPut, c.path("/categories/%d", id), nil, form, &category)
	return category, err
}

func (c *Client) DeleteCategory(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, c.path("/categories/%d", id), nil, nil, nil)
}

func (c *Client) Subcategories(ctx context.Context, categoryID int) ([]Subcategory, error) {
	var subcategories []Subcategory
	err := c.do(ctx, http.MethodGet, c.path("/categories/%d/subcategories", categoryID), nil, nil, &subcategories)
	return subcategories, err
}

func (c *Client) CreateSubcategory(ctx context.Context, form SubcategoryForm) (Subcategory, error) {
	var subcategory Subcategory
	err := c.do(ctx, http.MethodPost, "/subcategories", nil, form, &subcategory)
	return subcategory, err
}

func (c *Client) UpdateSubcategory(ctx context.Context, id int, form SubcategoryForm) (Subcategory, error) {
	var subcategory Subcategory
	err := c.do(ctx, http.MethodPut, c.path("/subcategories/%d", id), nil, form, &subcategory)
	return subcategory, err
}

func (c *Client) DeleteSubcategory(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, c.path("/subcategories/%d", id), nil, nil, nil)
}

// DashboardContents lists contents of every status for the dashboard.
func (c *Client) DashboardContents(ctx context.Context, page int) (Listing, error) {
	return c.listing(ctx, "/dashboard/contents", page)
}

func (c *Client) CreateContent(ctx context.Context, form ContentForm) (Content, error) {
	var content Content
	err := c.do(ctx, http.MethodPost, "/contents", nil, form, &content)
	return content, err
}

func (c *Client) UpdateContent(ctx context.Context, id int, form ContentForm) (Content, error) {
	var content Content
	err := c.do(ctx, http.MethodPut, c.path("/contents/%d", id), nil, form, &content)
	return content, err
}

func (c *Client) DeleteContent(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, c.path("/contents/%d", id), nil, nil, nil)
}

func (c *Client) UpdateContentStatus(ctx context.Context, id int, status string) error {
	return c.do(ctx, http.MethodPatch, c.path("/contents/%d/status", id), nil, StatusForm{Status: status}, nil)
}

func (c *Client) Roles(ctx context.Context) ([]Role, error) {
	var roles []Role
	err := c.do(ctx, http.MethodGet, "/roles", nil, nil, &roles)
	return roles, err
}

func (c *Client) CreateRole(ctx context.Context, form RoleForm) (Role, error) {
	var role Role
	err := c.do(ctx, http.MethodPost, "/roles", nil, form, &role)
	return role, err
}

func (c *Client) DeleteRole(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, c.path("/roles/%d", id), nil, nil, nil)
}

func (c *Client) Subscribers(ctx context.Context, page int) ([]Subscriber, Meta, error) {
	var subscribers []Subscriber
	meta, err := c.doPage(ctx, http.MethodGet, "/subscribers", pageQuery(page), nil, &subscribers)
	return subscribers, meta, err
}

func (c *Client) Subscribe(ctx context.Context, form SubscribeForm) error {
	return c.do(ctx, http.MethodPost, "/subscribe", nil, form, nil)
}

func (c *Client) DeleteSubscriber(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, c.path("/subscribers/%d", id), nil, nil, nil)
}

func (c *Client) Settings(ctx context.Context) (Settings, error) {
	var settings Settings
	err := c.do(ctx, http.MethodGet, "/settings", nil, nil, &settings)
	return settings, err
}

func (c *Client) UpdateSettings(ctx context.Context, settings Settings) (Settings, error) {
	var updated Settings
	err := c.do(ctx, http.MethodPut, "/settings", nil, settings, &updated)
	return updated, err
}

func (c *Client) listing(ctx context.Context, path string, page int) (Listing, error) {
	var items []Content
	meta, err := c.doPage(ctx, http.MethodGet, path, pageQuery(page), nil, &items)
	if err != nil {
		return Listing{}, err
	}

	return Listing{Items: items, Meta: meta}, nil
}

// path formats a request path escaping every string argument as a segment.
func (c *Client) path(format string, args ...any) string {
	for i := range args {
		if s, ok := args[i].(string); ok {
			args[i] = url.PathEscape(s)
		}
	}
	return fmt.Sprintf(format, args...)
}

func pageQuery(page int) url.Values {
	if page < 1 {
		page = 1
	}
	return url.Values{"page": []string{strconv.Itoa(page)}}
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, respData any) error {
	_, err := c.doPage(ctx, method, path, query, body, respData)
	return err
}

func (c *Client) doPage(ctx context.Context, method, path string, query url.Values, body, respData any) (meta Meta, err error) {
	event := RequestEvent{Method: method, Path: path, StartTime: time.Now()}
	if c.hook != nil {
		ctx = c.hook.BeforeRequest(ctx, &event)
		defer func() {
			event.Err = err
			c.hook.AfterRequest(ctx, &event)
		}()
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return Meta{}, fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	u := c.endpoint + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return Meta{}, err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return Meta{}, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()
	event.Status = resp.StatusCode

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var envelope Envelope[json.RawMessage]
		if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
			return Meta{}, &Error{Code: resp.StatusCode}
		}
		return Meta{}, &Error{Code: resp.StatusCode, Message: envelope.Message}
	}

	var envelope Envelope[json.RawMessage]
	if resp.StatusCode != http.StatusNoContent {
		if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil && !errors.Is(err, io.EOF) {
			return Meta{}, fmt.Errorf("decode %s %s: %w", method, path, err)
		}
	}

	if !envelope.OK() {
		return Meta{}, &Error{Code: resp.StatusCode, Message: envelope.Message, Err: ErrUnsuccessful}
	}

	if respData != nil && len(envelope.Data) > 0 && string(envelope.Data) != "null" {
		if err := json.Unmarshal(envelope.Data, respData); err != nil {
			return Meta{}, fmt.Errorf("decode %s %s data: %w", method, path, err)
		}
	}

	if envelope.Meta != nil {
		meta = *envelope.Meta
	}

	return meta, nil
}
