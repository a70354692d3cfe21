package userdemo

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

// Client is a typed consumer of the demo user API, used by smoke checks and
// downstream test suites.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Option configures the client.
type Option func(*Client)

// WithHTTPClient swaps the underlying HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.httpClient = httpClient
		}
	}
}

// New instantiates a client with sane defaults.
func New(baseURL string, opts ...Option) (*Client, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, errors.New("demo user API base URL is required")
	}
	client := &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 5 * time.Second},
	}
	for _, opt := range opts {
		if opt != nil {
			opt(client)
		}
	}
	return client, nil
}

// APIError is the JSON error envelope returned by the service.
type APIError struct {
	StatusCode int    `json:"-"`
	Message    string `json:"error"`
	Detail     string `json:"detail,omitempty"`
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("demo user API returned %d: %s: %s", e.StatusCode, e.Message, e.Detail)
	}
	return fmt.Sprintf("demo user API returned %d: %s", e.StatusCode, e.Message)
}

// User mirrors the stored record shape on the wire.
type User struct {
	ID        int64  `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Job       string `json:"job,omitempty"`
}

// Support mirrors the support block on list and get payloads.
type Support struct {
	URL  string `json:"url"`
	Text string `json:"text"`
}

// UserPage mirrors the paginated list payload.
type UserPage struct {
	Page       float64 `json:"page"`
	PerPage    float64 `json:"per_page"`
	Total      int     `json:"total"`
	TotalPages int     `json:"total_pages"`
	Data       []User  `json:"data"`
	Support    Support `json:"support"`
}

// UserList mirrors the unpaginated list payload.
type UserList struct {
	Total int    `json:"total"`
	Data  []User `json:"data"`
}

// CreatedUser mirrors the create echo payload.
type CreatedUser struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Job       string `json:"job"`
	CreatedAt string `json:"createdAt"`
}

// UpdatedUser mirrors the canned update echo payload.
type UpdatedUser struct {
	Name      string `json:"name"`
	Job       string `json:"job"`
	UpdatedAt string `json:"updatedAt"`
}

// Health mirrors the healthy probe payload.
type Health struct {
	Status string `json:"status"`
	Time   string `json:"time"`
}

// ListOption adds a pagination parameter to a list request.
type ListOption func(url.Values)

// WithPage sets the 1-based window index.
func WithPage(page float64) ListOption {
	return func(values url.Values) {
		values.Set("page", strconv.FormatFloat(page, 'f', -1, 64))
	}
}

// WithPerPage sets the window size.
func WithPerPage(perPage float64) ListOption {
	return func(values url.Values) {
		values.Set("per_page", strconv.FormatFloat(perPage, 'f', -1, 64))
	}
}

// Health probes the service.
func (c *Client) Health(ctx context.Context) (*Health, error) {
	var out Health
	if err := c.doJSON(ctx, http.MethodGet, "/health", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListUsers fetches one pagination window.
func (c *Client) ListUsers(ctx context.Context, opts ...ListOption) (*UserPage, error) {
	query := url.Values{}
	for _, opt := range opts {
		if opt != nil {
			opt(query)
		}
	}
	var out UserPage
	if err := c.doJSON(ctx, http.MethodGet, "/api/users", query, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListAllUsers fetches the full collection.
func (c *Client) ListAllUsers(ctx context.Context) (*UserList, error) {
	var out UserList
	if err := c.doJSON(ctx, http.MethodGet, "/api/users/all", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetUser fetches a single record by id.
func (c *Client) GetUser(ctx context.Context, id int64) (*User, error) {
	var out struct {
		Data User `json:"data"`
	}
	if err := c.doJSON(ctx, http.MethodGet, "/api/users/"+strconv.FormatInt(id, 10), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out.Data, nil
}

// CreateUser submits a name and job pair.
func (c *Client) CreateUser(ctx context.Context, name, job string) (*CreatedUser, error) {
	body := map[string]string{"name": name, "job": job}
	var out CreatedUser
	if err := c.doJSON(ctx, http.MethodPost, "/api/users", nil, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateUser submits optional field changes and returns the echo. Nil fields
// are omitted from the request body.
func (c *Client) UpdateUser(ctx context.Context, id int64, name, job *string) (*UpdatedUser, error) {
	body := map[string]string{}
	if name != nil {
		body["name"] = *name
	}
	if job != nil {
		body["job"] = *job
	}
	var out UpdatedUser
	if err := c.doJSON(ctx, http.MethodPut, "/api/users/"+strconv.FormatInt(id, 10), nil, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteUser removes every record matching the id.
func (c *Client) DeleteUser(ctx context.Context, id int64) error {
	body := map[string]int64{"id": id}
	return c.doJSON(ctx, http.MethodDelete, "/api/users", nil, body, nil)
}

// Login exchanges the demo credentials for the fixed token.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	body := map[string]string{"email": email, "password": password}
	var out struct {
		Token string `json:"token"`
	}
	if err := c.doJSON(ctx, http.MethodPost, "/api/login", nil, body, &out); err != nil {
		return "", err
	}
	return out.Token, nil
}

func (c *Client) doJSON(ctx context.Context, method, path string, query url.Values, body, out any) error {
	if c == nil || c.httpClient == nil {
		return errors.New("demo user API client not configured")
	}
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("call demo user API: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode >= http.StatusBadRequest {
		return decodeAPIError(resp)
	}
	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func decodeAPIError(resp *http.Response) error {
	apiErr := &APIError{StatusCode: resp.StatusCode}
	if err := json.NewDecoder(resp.Body).Decode(apiErr); err != nil || apiErr.Message == "" {
		apiErr.Message = resp.Status
	}
	return apiErr
}
