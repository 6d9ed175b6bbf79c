package services

import (
	"context"
	"fmt"

	"github.com/atlaslens/jira-mcp/internal/adapters/driven/storage/memory"
	"github.com/atlaslens/jira-mcp/internal/connectors/jira"
	"github.com/atlaslens/jira-mcp/internal/core/domain"
	"github.com/atlaslens/jira-mcp/internal/core/ports/driven"
	"github.com/atlaslens/jira-mcp/internal/core/ports/driving"
	"github.com/atlaslens/jira-mcp/internal/logger"
)

// Ensure ProjectService implements the driving port.
var _ driving.ProjectService = (*ProjectService)(nil)

// ProjectService implements project and field-catalog reads with a
// TTL cache in front. The cache is purely an optimisation: every entry
// is re-derivable from a fresh remote call.
type ProjectService struct {
	api   driven.ProjectAPI
	cache *memory.TTLCache[string, any]
}

// NewProjectService creates a project service around the given cache.
// The cache's sweep loop is the caller's responsibility.
func NewProjectService(api driven.ProjectAPI, cache *memory.TTLCache[string, any]) *ProjectService {
	return &ProjectService{api: api, cache: cache}
}

// List fetches one offset page of projects. An empty page is terminal
// regardless of the reported total.
func (s *ProjectService) List(ctx context.Context, opts driving.PageOptions) (*driving.ProjectList, error) {
	cacheKey := fmt.Sprintf("projects:%d:%d", opts.StartAt, opts.MaxResults)
	if cached, ok := s.cache.Get(cacheKey); ok {
		if list, ok := cached.(*driving.ProjectList); ok {
			logger.Debug("project list cache hit: %s", cacheKey)
			return list, nil
		}
	}

	var page *jira.ProjectPage
	err := jira.RetryTransient(ctx, func(ctx context.Context) error {
		var err error
		page, err = s.api.ListProjects(ctx, opts.StartAt, opts.MaxResults)
		return err
	})
	if err != nil {
		return nil, err
	}

	list := &driving.ProjectList{
		Projects: make([]domain.Project, len(page.Values)),
		StartAt:  page.StartAt,
		Total:    page.Total,
	}
	for i, p := range page.Values {
		list.Projects[i] = domain.Project{ID: p.ID, Key: p.Key, Name: p.Name}
	}
	if next, ok := page.NextStartAt(); ok && len(page.Values) > 0 {
		list.HasMore = true
		list.NextStartAt = next
	}

	s.cache.Set(cacheKey, list)
	return list, nil
}

// Get fetches a single project by key, cached.
func (s *ProjectService) Get(ctx context.Context, key string) (*domain.Project, error) {
	if key == "" {
		return nil, fmt.Errorf("%w: project key is required", domain.ErrInvalidInput)
	}

	cacheKey := "project:" + key
	if cached, ok := s.cache.Get(cacheKey); ok {
		if project, ok := cached.(*domain.Project); ok {
			return project, nil
		}
	}

	var wire *jira.WireProject
	err := jira.RetryTransient(ctx, func(ctx context.Context) error {
		var err error
		wire, err = s.api.GetProject(ctx, key)
		return err
	})
	if err != nil {
		return nil, err
	}

	project := &domain.Project{ID: wire.ID, Key: wire.Key, Name: wire.Name}
	s.cache.Set(cacheKey, project)
	return project, nil
}

// Fields fetches the site's field catalog, cached. The catalog changes
// rarely and is consulted on most tool calls that touch custom fields.
func (s *ProjectService) Fields(ctx context.Context) ([]domain.Field, error) {
	const cacheKey = "fields"
	if cached, ok := s.cache.Get(cacheKey); ok {
		if fields, ok := cached.([]domain.Field); ok {
			return fields, nil
		}
	}

	var wire []jira.WireField
	err := jira.RetryTransient(ctx, func(ctx context.Context) error {
		var err error
		wire, err = s.api.ListFields(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}

	fields := make([]domain.Field, len(wire))
	for i, f := range wire {
		fields[i] = domain.Field{ID: f.ID, Name: f.Name, Custom: f.Custom}
	}
	s.cache.Set(cacheKey, fields)
	return fields, nil
}
