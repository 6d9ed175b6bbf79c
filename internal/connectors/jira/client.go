package jira

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"
	"time"

	"golang.org/x/oauth2"

	"github.com/atlaslens/jira-mcp/internal/core/domain"
)

// DefaultTimeout is the default HTTP request timeout.
const DefaultTimeout = 30 * time.Second

// Client issues authenticated requests against the Jira REST API and
// classifies failures into the package's error taxonomy. It carries no
// retry logic; see WithRetry for the explicit composition.
type Client struct {
	creds       domain.Credentials
	httpClient  *http.Client
	rateLimiter *RateLimiter
}

// NewClient creates a Jira API client from a credential bundle.
// Bearer-mode credentials get an oauth2 static token source so the
// transport attaches the Authorization header; Basic-mode credentials
// are encoded per request.
func NewClient(creds domain.Credentials) *Client {
	c := &Client{
		creds:       creds,
		rateLimiter: NewRateLimiter(),
	}
	if creds.IsBearer() {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: creds.PAT})
		c.httpClient = oauth2.NewClient(context.Background(), ts)
		c.httpClient.Timeout = DefaultTimeout
	} else {
		c.httpClient = &http.Client{Timeout: DefaultTimeout}
	}
	return c
}

// NewClientWithHTTPClient creates a client with a custom http.Client.
// Useful for tests and callers that manage their own transport. With
// bearer credentials the given client's transport is wrapped so the
// Authorization header is still attached.
func NewClientWithHTTPClient(creds domain.Credentials, httpClient *http.Client) *Client {
	if creds.IsBearer() {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: creds.PAT})
		httpClient = &http.Client{
			Transport:     &oauth2.Transport{Source: ts, Base: httpClient.Transport},
			CheckRedirect: httpClient.CheckRedirect,
			Jar:           httpClient.Jar,
			Timeout:       httpClient.Timeout,
		}
	}
	return &Client{
		creds:       creds,
		httpClient:  httpClient,
		rateLimiter: NewRateLimiter(),
	}
}

// RateLimiter returns the rate limiter for external access.
func (c *Client) RateLimiter() *RateLimiter {
	return c.rateLimiter
}

// Credentials returns the credential bundle the client was built with.
func (c *Client) Credentials() domain.Credentials {
	return c.creds
}

// errorBody is the shape Jira uses for error responses. Both fields are
// optional and either may carry the useful message.
type errorBody struct {
	ErrorMessages []string          `json:"errorMessages"`
	Errors        map[string]string `json:"errors"`
}

// Do issues an authenticated JSON request and decodes the response body
// into out. A nil body sends no payload; a nil out discards the
// response. Classification:
//
//   - transport failure: wrapped unclassified error
//   - 401: *AuthError
//   - 404: *NotFoundError carrying the request path
//   - other non-2xx: *APIError with status, extracted message, raw body
//   - 2xx with an undecodable body: *DecodeError
//
// An empty 2xx body is success: out is left zeroed.
func (c *Client) Do(ctx context.Context, method, path string, body, out any) error {
	raw, err := c.DoRaw(ctx, method, path, body)
	if err != nil {
		return err
	}
	if out == nil || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return &DecodeError{Path: path, Err: err}
	}
	return nil
}

// DoRaw issues an authenticated JSON request and returns the raw
// response body. Classification is identical to Do.
func (c *Client) DoRaw(ctx context.Context, method, path string, body any) (json.RawMessage, error) {
	var payload io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("jira: encoding request body: %w", err)
		}
		payload = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.creds.BaseURL+path, payload)
	if err != nil {
		return nil, fmt.Errorf("jira: building request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if !c.creds.IsBearer() {
		req.Header.Set("Authorization", "Basic "+basicAuth(c.creds.Email, c.creds.APIToken))
	}

	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("jira: rate limit wait: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// No response received: transport-level, unclassified.
		return nil, fmt.Errorf("jira: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	c.rateLimiter.UpdateFromResponse(resp)

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("jira: reading response from %s: %w", path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, classifyStatus(resp.StatusCode, path, data)
	}
	return data, nil
}

// classifyStatus maps a non-2xx response to the error taxonomy.
func classifyStatus(status int, path string, body []byte) error {
	switch status {
	case http.StatusUnauthorized:
		return &AuthError{Reason: "API returned 401"}
	case http.StatusNotFound:
		return &NotFoundError{Path: path}
	default:
		return &APIError{
			StatusCode: status,
			Message:    extractErrorMessage(status, body),
			Body:       string(body),
		}
	}
}

// extractErrorMessage pulls a human-readable message out of a Jira
// error body, falling back to the HTTP status text when the body is
// not the expected shape.
func extractErrorMessage(status int, body []byte) string {
	var eb errorBody
	if err := json.Unmarshal(body, &eb); err == nil {
		if len(eb.ErrorMessages) > 0 {
			return strings.Join(eb.ErrorMessages, "; ")
		}
		if len(eb.Errors) > 0 {
			fields := make([]string, 0, len(eb.Errors))
			for field := range eb.Errors {
				fields = append(fields, field)
			}
			sort.Strings(fields)
			parts := make([]string, 0, len(fields))
			for _, field := range fields {
				parts = append(parts, field+": "+eb.Errors[field])
			}
			return strings.Join(parts, "; ")
		}
	}
	return http.StatusText(status)
}

func basicAuth(user, pass string) string {
	return base64.StdEncoding.EncodeToString([]byte(user + ":" + pass))
}

// Myself validates the credentials by fetching the authenticated user.
func (c *Client) Myself(ctx context.Context) (map[string]any, error) {
	var me map[string]any
	if err := c.Do(ctx, http.MethodGet, "/rest/api/3/myself", nil, &me); err != nil {
		return nil, err
	}
	return me, nil
}
