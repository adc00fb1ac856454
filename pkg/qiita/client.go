package qiita

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	urlpkg "net/url"
	"strconv"
	"strings"
)

// DefaultBaseURL is the public Qiita API v2 endpoint.
const DefaultBaseURL = "https://qiita.com/api/v2"

// maxErrorBody caps how much of a failed response body ends up in HTTPError.
const maxErrorBody = 1024

// API is the subset of the Qiita API exposed as tools.
type API interface {
	AuthenticatedUser(ctx context.Context) (any, error)
	SearchItems(ctx context.Context, query string, opts ListOptions) (any, error)
	GetItem(ctx context.Context, itemID string) (any, error)
	AuthenticatedUserItems(ctx context.Context, opts ListOptions) (any, error)
	ListTags(ctx context.Context, sort string, opts ListOptions) (any, error)
	CreateItem(ctx context.Context, item NewItem) (any, error)
}

// HTTPError is returned for any response whose status is not 2xx.
type HTTPError struct {
	StatusCode int
	Body       string
}

func (e *HTTPError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("request failed with status %d", e.StatusCode)
	}
	return fmt.Sprintf("request failed with status %d: %s", e.StatusCode, e.Body)
}

// IsNotFound reports whether err is an HTTPError with status 404.
func IsNotFound(err error) bool {
	var httpErr *HTTPError
	return errors.As(err, &httpErr) && httpErr.StatusCode == http.StatusNotFound
}

type Client struct {
	httpClient *http.Client
	baseURL    string
}

var _ API = (*Client)(nil)

func NewClient(httpClient *http.Client, baseURL string) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimSuffix(baseURL, "/"),
	}
}

// Call sends a request to baseURL+path and returns the decoded JSON body.
// query is only attached when non-empty and body is JSON-encoded when non-nil.
func (c *Client) Call(ctx context.Context, method, path string, query urlpkg.Values, body any) (any, error) {
	url := c.baseURL + path

	var reqBody io.Reader = http.NoBody
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return nil, err
	}
	if len(query) > 0 {
		req.URL.RawQuery = query.Encode()
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg := strings.TrimSpace(string(bodyBytes))
		if len(msg) > maxErrorBody {
			msg = msg[:maxErrorBody] + "..."
		}
		return nil, &HTTPError{StatusCode: resp.StatusCode, Body: msg}
	}

	if len(bytes.TrimSpace(bodyBytes)) == 0 {
		return nil, nil
	}

	// UseNumber keeps ids and counts byte-for-byte when re-encoded.
	dec := json.NewDecoder(bytes.NewReader(bodyBytes))
	dec.UseNumber()
	var data any
	if err := dec.Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return data, nil
}

// ListOptions carries the pagination parameters shared by list endpoints.
type ListOptions struct {
	Page    int
	PerPage int
}

func (o ListOptions) values() urlpkg.Values {
	q := urlpkg.Values{}
	if o.Page != 0 {
		q.Add("page", strconv.Itoa(o.Page))
	}
	if o.PerPage != 0 {
		q.Add("per_page", strconv.Itoa(o.PerPage))
	}
	return q
}

func (c *Client) AuthenticatedUser(ctx context.Context) (any, error) {
	return c.Call(ctx, http.MethodGet, "/authenticated_user", nil, nil)
}

func (c *Client) SearchItems(ctx context.Context, query string, opts ListOptions) (any, error) {
	q := opts.values()
	q.Set("query", query)
	return c.Call(ctx, http.MethodGet, "/items", q, nil)
}

func (c *Client) GetItem(ctx context.Context, itemID string) (any, error) {
	return c.Call(ctx, http.MethodGet, "/items/"+urlpkg.PathEscape(itemID), nil, nil)
}

func (c *Client) AuthenticatedUserItems(ctx context.Context, opts ListOptions) (any, error) {
	return c.Call(ctx, http.MethodGet, "/authenticated_user/items", opts.values(), nil)
}

func (c *Client) ListTags(ctx context.Context, sort string, opts ListOptions) (any, error) {
	q := opts.values()
	if sort != "" {
		q.Set("sort", sort)
	}
	return c.Call(ctx, http.MethodGet, "/tags", q, nil)
}

// Tagging is a tag attached to an article.
type Tagging struct {
	Name     string   `json:"name"`
	Versions []string `json:"versions,omitempty"`
}

// NewItem is the request body for creating an article.
type NewItem struct {
	Title   string    `json:"title"`
	Body    string    `json:"body"`
	Tags    []Tagging `json:"tags"`
	Private bool      `json:"private"`
	Tweet   bool      `json:"tweet"`
}

func (c *Client) CreateItem(ctx context.Context, item NewItem) (any, error) {
	return c.Call(ctx, http.MethodPost, "/items", nil, item)
}
