package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/atlaslens/jira-mcp/internal/connectors/jira"
	"github.com/atlaslens/jira-mcp/internal/core/domain"
	"github.com/atlaslens/jira-mcp/internal/core/ports/driven"
	"github.com/atlaslens/jira-mcp/internal/core/ports/driving"
	"github.com/atlaslens/jira-mcp/internal/logger"
)

// Ensure IssueService implements the driving port.
var _ driving.IssueService = (*IssueService)(nil)

// IssueService implements issue operations over the IssueAPI port.
// Reads are wrapped in the transient-retry policy; mutations are issued
// exactly once, since create/comment/transition are not idempotent.
type IssueService struct {
	api driven.IssueAPI
}

// NewIssueService creates an issue service.
func NewIssueService(api driven.IssueAPI) *IssueService {
	return &IssueService{api: api}
}

// Search runs one page of a JQL search and compacts each hit.
func (s *IssueService) Search(ctx context.Context, jql string, opts driving.SearchOptions) (*driving.SearchResult, error) {
	if strings.TrimSpace(jql) == "" {
		return nil, fmt.Errorf("%w: jql is required", domain.ErrInvalidInput)
	}

	var page *jira.SearchPage
	err := jira.RetryTransient(ctx, func(ctx context.Context) error {
		var err error
		page, err = s.api.SearchJQL(ctx, jql, jira.SearchOptions{
			MaxResults: opts.MaxResults,
			PageToken:  opts.PageToken,
			Fields:     opts.Fields,
		})
		return err
	})
	if err != nil {
		return nil, err
	}

	result := &driving.SearchResult{
		Issues: make([]domain.Issue, len(page.Issues)),
	}
	for i := range page.Issues {
		result.Issues[i] = compactIssue(&page.Issues[i])
	}

	token, err := page.Next()
	if err != nil {
		return nil, err
	}
	result.NextPageToken = token

	logger.Debug("search %q returned %d issues, more=%v", jql, len(result.Issues), page.HasMore())
	return result, nil
}

// Get fetches and compacts a single issue.
func (s *IssueService) Get(ctx context.Context, key string) (*domain.Issue, error) {
	if key == "" {
		return nil, fmt.Errorf("%w: issue key is required", domain.ErrInvalidInput)
	}

	var wire *jira.Issue
	err := jira.RetryTransient(ctx, func(ctx context.Context) error {
		var err error
		wire, err = s.api.GetIssue(ctx, key)
		return err
	})
	if err != nil {
		return nil, err
	}

	issue := compactIssue(wire)
	return &issue, nil
}

// Create creates an issue. Plain-text descriptions are wrapped into a
// minimal document tree before hitting the wire.
func (s *IssueService) Create(ctx context.Context, input driving.CreateIssueInput) (*domain.Issue, error) {
	if input.ProjectKey == "" {
		return nil, fmt.Errorf("%w: project key is required", domain.ErrInvalidInput)
	}
	if input.Summary == "" {
		return nil, fmt.Errorf("%w: summary is required", domain.ErrInvalidInput)
	}
	issueType := input.IssueType
	if issueType == "" {
		issueType = "Task"
	}

	fields := map[string]any{
		"project":   map[string]any{"key": input.ProjectKey},
		"issuetype": map[string]any{"name": issueType},
		"summary":   input.Summary,
	}
	if input.Description != "" {
		fields["description"] = jira.TextToADF(input.Description)
	}
	for name, value := range input.Fields {
		fields[name] = value
	}

	created, err := s.api.CreateIssue(ctx, fields)
	if err != nil {
		return nil, err
	}

	logger.Info("created issue %s", created.Key)
	return &domain.Issue{
		ID:          created.ID,
		Key:         created.Key,
		Summary:     input.Summary,
		Description: input.Description,
	}, nil
}

// Update updates issue fields. Rich-text field values given as plain
// strings are wrapped into document trees.
func (s *IssueService) Update(ctx context.Context, key string, fields map[string]any) error {
	if key == "" {
		return fmt.Errorf("%w: issue key is required", domain.ErrInvalidInput)
	}
	if len(fields) == 0 {
		return fmt.Errorf("%w: no fields to update", domain.ErrInvalidInput)
	}

	prepared := make(map[string]any, len(fields))
	for name, value := range fields {
		if name == "description" {
			prepared[name] = jira.EnsureADF(value)
			continue
		}
		prepared[name] = value
	}

	return s.api.UpdateIssue(ctx, key, prepared)
}

// Comments fetches one offset page of an issue's comments. An empty
// page is treated as terminal even if the reported total disagrees, so
// inconsistent upstream counts cannot drive a caller into a loop.
func (s *IssueService) Comments(ctx context.Context, key string, opts driving.PageOptions) (*driving.CommentList, error) {
	if key == "" {
		return nil, fmt.Errorf("%w: issue key is required", domain.ErrInvalidInput)
	}

	var page *jira.CommentPage
	err := jira.RetryTransient(ctx, func(ctx context.Context) error {
		var err error
		page, err = s.api.ListComments(ctx, key, opts.StartAt, opts.MaxResults)
		return err
	})
	if err != nil {
		return nil, err
	}

	list := &driving.CommentList{
		Comments: make([]domain.Comment, len(page.Comments)),
		StartAt:  page.StartAt,
		Total:    page.Total,
	}
	for i := range page.Comments {
		list.Comments[i] = compactComment(&page.Comments[i])
	}

	if next, ok := page.NextStartAt(); ok && len(page.Comments) > 0 {
		list.HasMore = true
		list.NextStartAt = next
	}
	return list, nil
}

// AddComment posts a plain-text comment, wrapped into a document tree.
func (s *IssueService) AddComment(ctx context.Context, key, body string) (*domain.Comment, error) {
	if key == "" {
		return nil, fmt.Errorf("%w: issue key is required", domain.ErrInvalidInput)
	}
	if strings.TrimSpace(body) == "" {
		return nil, fmt.Errorf("%w: comment body is required", domain.ErrInvalidInput)
	}

	wire, err := s.api.AddComment(ctx, key, jira.TextToADF(body))
	if err != nil {
		return nil, err
	}
	comment := compactComment(wire)
	return &comment, nil
}

// Transitions lists the workflow transitions legal on an issue.
func (s *IssueService) Transitions(ctx context.Context, key string) ([]domain.Transition, error) {
	if key == "" {
		return nil, fmt.Errorf("%w: issue key is required", domain.ErrInvalidInput)
	}

	var wire []jira.WireTransition
	err := jira.RetryTransient(ctx, func(ctx context.Context) error {
		var err error
		wire, err = s.api.ListTransitions(ctx, key)
		return err
	})
	if err != nil {
		return nil, err
	}

	transitions := make([]domain.Transition, len(wire))
	for i, t := range wire {
		transitions[i] = domain.Transition{ID: t.ID, Name: t.Name, To: t.To.Name}
	}
	return transitions, nil
}

// Transition applies a workflow transition by ID.
func (s *IssueService) Transition(ctx context.Context, key, transitionID string) error {
	if key == "" {
		return fmt.Errorf("%w: issue key is required", domain.ErrInvalidInput)
	}
	if transitionID == "" {
		return fmt.Errorf("%w: transition id is required", domain.ErrInvalidInput)
	}
	return s.api.DoTransition(ctx, key, transitionID)
}

// compactIssue reduces a wire issue to the domain shape: summary and
// description lifted out, the rest of the field map normalised.
func compactIssue(wire *jira.Issue) domain.Issue {
	issue := domain.Issue{ID: wire.ID, Key: wire.Key}
	if wire.Fields == nil {
		return issue
	}

	rest := make(map[string]any, len(wire.Fields))
	for name, value := range wire.Fields {
		switch name {
		case "summary":
			issue.Summary, _ = value.(string)
		case "description":
			issue.Description = jira.ADFToText(value)
		default:
			rest[name] = value
		}
	}
	if len(rest) > 0 {
		issue.Fields = jira.NormalizeFields(rest)
	}
	return issue
}

// compactComment reduces a wire comment to the domain shape, flattening
// the rich-text body.
func compactComment(wire *jira.WireComment) domain.Comment {
	comment := domain.Comment{
		ID:      wire.ID,
		Body:    jira.ADFToText(wire.Body),
		Created: wire.Created,
	}
	if wire.Author != nil {
		comment.AuthorName, _ = wire.Author["displayName"].(string)
		comment.AuthorEmail, _ = wire.Author["emailAddress"].(string)
	}
	return comment
}
