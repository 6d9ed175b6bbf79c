package jira

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// apiPrefix is the versioned REST prefix all issue endpoints live under.
const apiPrefix = "/rest/api/3"

// Issue is the wire shape of a Jira issue. Fields is left schema-less:
// the catalog is open-ended and the field normaliser compacts it later.
type Issue struct {
	ID     string         `json:"id"`
	Key    string         `json:"key"`
	Fields map[string]any `json:"fields"`
}

// SearchPage is one page of JQL search results. This endpoint uses the
// token pagination contract; there is no total count.
type SearchPage struct {
	Issues []Issue `json:"issues"`
	TokenPage
}

// SearchOptions controls a JQL search request.
type SearchOptions struct {
	// MaxResults caps the page size; DefaultPageSize when zero.
	MaxResults int
	// PageToken is the opaque continuation token from the prior page.
	PageToken string
	// Fields restricts which issue fields the server returns.
	Fields []string
}

// SearchJQL runs one page of a JQL search. Paging continues by echoing
// the returned token verbatim in the next call's options.
func (c *Client) SearchJQL(ctx context.Context, jql string, opts SearchOptions) (*SearchPage, error) {
	maxResults := opts.MaxResults
	if maxResults <= 0 {
		maxResults = DefaultPageSize
	}

	q := url.Values{}
	q.Set("jql", jql)
	q.Set("maxResults", strconv.Itoa(maxResults))
	if opts.PageToken != "" {
		q.Set("nextPageToken", opts.PageToken)
	}
	if len(opts.Fields) > 0 {
		q.Set("fields", strings.Join(opts.Fields, ","))
	}

	var page SearchPage
	if err := c.Do(ctx, http.MethodGet, apiPrefix+"/search/jql?"+q.Encode(), nil, &page); err != nil {
		return nil, err
	}
	page.MaxResults = maxResults
	return &page, nil
}

// GetIssue fetches a single issue by key or ID.
func (c *Client) GetIssue(ctx context.Context, key string) (*Issue, error) {
	var issue Issue
	path := apiPrefix + "/issue/" + url.PathEscape(key)
	if err := c.Do(ctx, http.MethodGet, path, nil, &issue); err != nil {
		return nil, err
	}
	return &issue, nil
}

// CreatedIssue is the server's acknowledgement of an issue creation.
type CreatedIssue struct {
	ID   string `json:"id"`
	Key  string `json:"key"`
	Self string `json:"self"`
}

// CreateIssue creates an issue from a prepared field map. Description,
// if present as plain text, must already be wrapped via TextToADF by
// the caller.
func (c *Client) CreateIssue(ctx context.Context, fields map[string]any) (*CreatedIssue, error) {
	var created CreatedIssue
	body := map[string]any{"fields": fields}
	if err := c.Do(ctx, http.MethodPost, apiPrefix+"/issue", body, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateIssue updates issue fields. Jira answers 204 with an empty
// body on success.
func (c *Client) UpdateIssue(ctx context.Context, key string, fields map[string]any) error {
	path := apiPrefix + "/issue/" + url.PathEscape(key)
	body := map[string]any{"fields": fields}
	return c.Do(ctx, http.MethodPut, path, body, nil)
}

// WireComment is the wire shape of one comment.
type WireComment struct {
	ID      string         `json:"id"`
	Author  map[string]any `json:"author"`
	Body    any            `json:"body"`
	Created string         `json:"created"`
}

// CommentPage is one page of issue comments. This endpoint uses the
// legacy offset pagination contract.
type CommentPage struct {
	Comments []WireComment `json:"comments"`
	OffsetPage
}

// ListComments fetches one offset page of an issue's comments.
func (c *Client) ListComments(ctx context.Context, key string, startAt, maxResults int) (*CommentPage, error) {
	if maxResults <= 0 {
		maxResults = DefaultPageSize
	}
	q := url.Values{}
	q.Set("startAt", strconv.Itoa(startAt))
	q.Set("maxResults", strconv.Itoa(maxResults))

	var page CommentPage
	path := fmt.Sprintf("%s/issue/%s/comment?%s", apiPrefix, url.PathEscape(key), q.Encode())
	if err := c.Do(ctx, http.MethodGet, path, nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// AddComment posts a comment on an issue. The body is a document tree;
// plain text callers wrap it with TextToADF first.
func (c *Client) AddComment(ctx context.Context, key string, body *ADFNode) (*WireComment, error) {
	var comment WireComment
	path := apiPrefix + "/issue/" + url.PathEscape(key) + "/comment"
	if err := c.Do(ctx, http.MethodPost, path, map[string]any{"body": body}, &comment); err != nil {
		return nil, err
	}
	return &comment, nil
}

// WireTransition is the wire shape of one available workflow transition.
type WireTransition struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	To   struct {
		Name string `json:"name"`
	} `json:"to"`
}

// ListTransitions fetches the transitions currently legal on an issue.
// Legality is the server's call; the connector just surfaces the list.
func (c *Client) ListTransitions(ctx context.Context, key string) ([]WireTransition, error) {
	var out struct {
		Transitions []WireTransition `json:"transitions"`
	}
	path := apiPrefix + "/issue/" + url.PathEscape(key) + "/transitions"
	if err := c.Do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out.Transitions, nil
}

// DoTransition applies a workflow transition by ID. The server answers
// 204 with an empty body on success and rejects illegal transitions
// with its own error, which classifies as an APIError.
func (c *Client) DoTransition(ctx context.Context, key, transitionID string) error {
	path := apiPrefix + "/issue/" + url.PathEscape(key) + "/transitions"
	body := map[string]any{
		"transition": map[string]any{"id": transitionID},
	}
	return c.Do(ctx, http.MethodPost, path, body, nil)
}
