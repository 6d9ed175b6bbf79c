package jira

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// WireProject is the wire shape of a project.
type WireProject struct {
	ID   string `json:"id"`
	Key  string `json:"key"`
	Name string `json:"name"`
}

// ProjectPage is one page of project search results. This endpoint
// uses the legacy offset pagination contract.
type ProjectPage struct {
	Values []WireProject `json:"values"`
	OffsetPage
}

// ListProjects fetches one offset page of projects visible to the
// authenticated user.
func (c *Client) ListProjects(ctx context.Context, startAt, maxResults int) (*ProjectPage, error) {
	if maxResults <= 0 {
		maxResults = DefaultPageSize
	}
	q := url.Values{}
	q.Set("startAt", strconv.Itoa(startAt))
	q.Set("maxResults", strconv.Itoa(maxResults))

	var page ProjectPage
	if err := c.Do(ctx, http.MethodGet, apiPrefix+"/project/search?"+q.Encode(), nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// GetProject fetches a single project by key or ID.
func (c *Client) GetProject(ctx context.Context, key string) (*WireProject, error) {
	var project WireProject
	path := apiPrefix + "/project/" + url.PathEscape(key)
	if err := c.Do(ctx, http.MethodGet, path, nil, &project); err != nil {
		return nil, err
	}
	return &project, nil
}

// WireField is one entry of the site's field catalog.
type WireField struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Custom bool   `json:"custom"`
}

// ListFields fetches the full field catalog. The endpoint is not
// paginated; the catalog is small enough to return whole.
func (c *Client) ListFields(ctx context.Context) ([]WireField, error) {
	var fields []WireField
	if err := c.Do(ctx, http.MethodGet, apiPrefix+"/field", nil, &fields); err != nil {
		return nil, err
	}
	return fields, nil
}
