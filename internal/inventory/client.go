// Package inventory provides the HTTP client for the project inventory
// service: the option lists the filter UI offers, and the filtered project
// listings the browser displays.
package inventory

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// ErrUnavailable indicates the inventory service responded with a server
// error. Callers may retry; the TUI surfaces it as a status line.
var ErrUnavailable = errors.New("inventory service unavailable")

const defaultTimeout = 10 * time.Second

// Client talks to the inventory service over HTTP with JSON bodies.
type Client struct {
	baseURL string
	http    *http.Client
}

// New creates a Client for the service at baseURL. A zero timeout falls
// back to the default.
func New(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

// Namespaces returns all namespaces in display order.
func (c *Client) Namespaces(ctx context.Context) ([]Namespace, error) {
	var out []Namespace
	if err := c.get(ctx, "/namespaces", nil, &out); err != nil {
		return nil, fmt.Errorf("listing namespaces: %w", err)
	}
	return out, nil
}

// ProjectTypes returns all project types in display order.
func (c *Client) ProjectTypes(ctx context.Context) ([]ProjectType, error) {
	var out []ProjectType
	if err := c.get(ctx, "/project-types", nil, &out); err != nil {
		return nil, fmt.Errorf("listing project types: %w", err)
	}
	return out, nil
}

// Projects returns projects matching the query. Inactive filters are left
// out of the request entirely; an empty query lists everything.
func (c *Client) Projects(ctx context.Context, q Query) ([]Project, error) {
	params := url.Values{}
	if q.NamespaceID != nil {
		params.Set("namespace_id", strconv.Itoa(*q.NamespaceID))
	}
	if q.ProjectTypeID != nil {
		params.Set("project_type_id", strconv.Itoa(*q.ProjectTypeID))
	}

	var out []Project
	if err := c.get(ctx, "/projects", params, &out); err != nil {
		return nil, fmt.Errorf("listing projects: %w", err)
	}
	return out, nil
}

func (c *Client) get(ctx context.Context, path string, params url.Values, out any) error {
	u := c.baseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= 500:
		return fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode)
	case resp.StatusCode != http.StatusOK:
		return fmt.Errorf("unexpected status %d from %s", resp.StatusCode, path)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}
