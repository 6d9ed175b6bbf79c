package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/atlaslens/jira-mcp/internal/core/domain"
	"github.com/atlaslens/jira-mcp/internal/core/ports/driving"
)

// SearchIssuesInput is the input schema for the search_issues tool.
type SearchIssuesInput struct {
	JQL        string `json:"jql" jsonschema:"the JQL query to find issues"`
	MaxResults int    `json:"max_results,omitempty" jsonschema:"maximum number of issues per page (default 50)"`
	PageToken  string `json:"page_token,omitempty" jsonschema:"opaque continuation token from a prior page"`
}

// SearchIssuesOutput is the output schema for the search_issues tool.
type SearchIssuesOutput struct {
	Issues []domain.Issue `json:"issues"`
	Count  int            `json:"count"`
	// NextPageToken continues the search; empty on the last page.
	NextPageToken string `json:"next_page_token,omitempty"`
}

// GetIssueInput is the input schema for the get_issue tool.
type GetIssueInput struct {
	Key string `json:"key" jsonschema:"the issue key, e.g. PRJ-42"`
}

// CreateIssueInput is the input schema for the create_issue tool.
type CreateIssueInput struct {
	ProjectKey  string         `json:"project_key" jsonschema:"key of the project to create the issue in"`
	IssueType   string         `json:"issue_type,omitempty" jsonschema:"issue type name (default Task)"`
	Summary     string         `json:"summary" jsonschema:"the issue summary"`
	Description string         `json:"description,omitempty" jsonschema:"plain-text issue description"`
	Fields      map[string]any `json:"fields,omitempty" jsonschema:"additional field values, passed through verbatim"`
}

// UpdateIssueInput is the input schema for the update_issue tool.
type UpdateIssueInput struct {
	Key    string         `json:"key" jsonschema:"the issue key to update"`
	Fields map[string]any `json:"fields" jsonschema:"field values to set; plain-text description is wrapped automatically"`
}

// UpdateIssueOutput is the output schema for the update_issue tool.
type UpdateIssueOutput struct {
	Key     string `json:"key"`
	Updated bool   `json:"updated"`
}

// GetCommentsInput is the input schema for the get_comments tool.
type GetCommentsInput struct {
	Key        string `json:"key" jsonschema:"the issue key"`
	StartAt    int    `json:"start_at,omitempty" jsonschema:"offset of the first comment to return"`
	MaxResults int    `json:"max_results,omitempty" jsonschema:"maximum number of comments per page (default 50)"`
}

// GetCommentsOutput is the output schema for the get_comments tool.
type GetCommentsOutput struct {
	Comments []domain.Comment `json:"comments"`
	Total    int              `json:"total"`
	// NextStartAt is the offset for the next page; absent when done.
	NextStartAt *int `json:"next_start_at,omitempty"`
}

// AddCommentInput is the input schema for the add_comment tool.
type AddCommentInput struct {
	Key  string `json:"key" jsonschema:"the issue key"`
	Body string `json:"body" jsonschema:"plain-text comment body"`
}

// ListTransitionsInput is the input schema for the list_transitions tool.
type ListTransitionsInput struct {
	Key string `json:"key" jsonschema:"the issue key"`
}

// ListTransitionsOutput is the output schema for the list_transitions tool.
type ListTransitionsOutput struct {
	Transitions []domain.Transition `json:"transitions"`
}

// TransitionIssueInput is the input schema for the transition_issue tool.
type TransitionIssueInput struct {
	Key          string `json:"key" jsonschema:"the issue key"`
	TransitionID string `json:"transition_id" jsonschema:"id of the transition to apply, from list_transitions"`
}

// TransitionIssueOutput is the output schema for the transition_issue tool.
type TransitionIssueOutput struct {
	Key          string `json:"key"`
	Transitioned bool   `json:"transitioned"`
	TransitionID string `json:"transition_id"`
}

// ListProjectsInput is the input schema for the list_projects tool.
type ListProjectsInput struct {
	StartAt    int `json:"start_at,omitempty" jsonschema:"offset of the first project to return"`
	MaxResults int `json:"max_results,omitempty" jsonschema:"maximum number of projects per page (default 50)"`
}

// ListProjectsOutput is the output schema for the list_projects tool.
type ListProjectsOutput struct {
	Projects []domain.Project `json:"projects"`
	Total    int              `json:"total"`
	// NextStartAt is the offset for the next page; absent when done.
	NextStartAt *int `json:"next_start_at,omitempty"`
}

// GetProjectInput is the input schema for the get_project tool.
type GetProjectInput struct {
	Key string `json:"key" jsonschema:"the project key, e.g. PRJ"`
}

// ListFieldsInput is the input schema for the list_fields tool.
type ListFieldsInput struct{}

// ListFieldsOutput is the output schema for the list_fields tool.
type ListFieldsOutput struct {
	Fields []domain.Field `json:"fields"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "search_issues",
		Description: "Search Jira issues with a JQL query",
	}, s.handleSearchIssues)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_issue",
		Description: "Fetch a single Jira issue by key",
	}, s.handleGetIssue)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "create_issue",
		Description: "Create a new Jira issue",
	}, s.handleCreateIssue)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "update_issue",
		Description: "Update fields on an existing Jira issue",
	}, s.handleUpdateIssue)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_comments",
		Description: "List comments on a Jira issue",
	}, s.handleGetComments)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "add_comment",
		Description: "Add a comment to a Jira issue",
	}, s.handleAddComment)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_transitions",
		Description: "List the workflow transitions available on a Jira issue",
	}, s.handleListTransitions)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "transition_issue",
		Description: "Apply a workflow transition to a Jira issue",
	}, s.handleTransitionIssue)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_projects",
		Description: "List Jira projects visible to the configured account",
	}, s.handleListProjects)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_project",
		Description: "Fetch a single Jira project by key",
	}, s.handleGetProject)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_fields",
		Description: "List the Jira field catalog, including custom fields",
	}, s.handleListFields)
}

// handleSearchIssues handles the search_issues tool invocation.
func (s *Server) handleSearchIssues(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchIssuesInput,
) (*mcp.CallToolResult, SearchIssuesOutput, error) {
	result, err := s.ports.Issues.Search(ctx, input.JQL, driving.SearchOptions{
		MaxResults: input.MaxResults,
		PageToken:  input.PageToken,
	})
	if err != nil {
		return nil, SearchIssuesOutput{}, err
	}

	return nil, SearchIssuesOutput{
		Issues:        result.Issues,
		Count:         len(result.Issues),
		NextPageToken: result.NextPageToken,
	}, nil
}

// handleGetIssue handles the get_issue tool invocation.
func (s *Server) handleGetIssue(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input GetIssueInput,
) (*mcp.CallToolResult, domain.Issue, error) {
	issue, err := s.ports.Issues.Get(ctx, input.Key)
	if err != nil {
		return nil, domain.Issue{}, err
	}
	return nil, *issue, nil
}

// handleCreateIssue handles the create_issue tool invocation.
func (s *Server) handleCreateIssue(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input CreateIssueInput,
) (*mcp.CallToolResult, domain.Issue, error) {
	issue, err := s.ports.Issues.Create(ctx, driving.CreateIssueInput{
		ProjectKey:  input.ProjectKey,
		IssueType:   input.IssueType,
		Summary:     input.Summary,
		Description: input.Description,
		Fields:      input.Fields,
	})
	if err != nil {
		return nil, domain.Issue{}, err
	}
	return nil, *issue, nil
}

// handleUpdateIssue handles the update_issue tool invocation.
func (s *Server) handleUpdateIssue(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input UpdateIssueInput,
) (*mcp.CallToolResult, UpdateIssueOutput, error) {
	if err := s.ports.Issues.Update(ctx, input.Key, input.Fields); err != nil {
		return nil, UpdateIssueOutput{}, err
	}
	return nil, UpdateIssueOutput{Key: input.Key, Updated: true}, nil
}

// handleGetComments handles the get_comments tool invocation.
func (s *Server) handleGetComments(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input GetCommentsInput,
) (*mcp.CallToolResult, GetCommentsOutput, error) {
	list, err := s.ports.Issues.Comments(ctx, input.Key, driving.PageOptions{
		StartAt:    input.StartAt,
		MaxResults: input.MaxResults,
	})
	if err != nil {
		return nil, GetCommentsOutput{}, err
	}

	output := GetCommentsOutput{
		Comments: list.Comments,
		Total:    list.Total,
	}
	if list.HasMore {
		next := list.NextStartAt
		output.NextStartAt = &next
	}
	return nil, output, nil
}

// handleAddComment handles the add_comment tool invocation.
func (s *Server) handleAddComment(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input AddCommentInput,
) (*mcp.CallToolResult, domain.Comment, error) {
	comment, err := s.ports.Issues.AddComment(ctx, input.Key, input.Body)
	if err != nil {
		return nil, domain.Comment{}, err
	}
	return nil, *comment, nil
}

// handleListTransitions handles the list_transitions tool invocation.
func (s *Server) handleListTransitions(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ListTransitionsInput,
) (*mcp.CallToolResult, ListTransitionsOutput, error) {
	transitions, err := s.ports.Issues.Transitions(ctx, input.Key)
	if err != nil {
		return nil, ListTransitionsOutput{}, err
	}
	return nil, ListTransitionsOutput{Transitions: transitions}, nil
}

// handleTransitionIssue handles the transition_issue tool invocation.
func (s *Server) handleTransitionIssue(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input TransitionIssueInput,
) (*mcp.CallToolResult, TransitionIssueOutput, error) {
	if err := s.ports.Issues.Transition(ctx, input.Key, input.TransitionID); err != nil {
		return nil, TransitionIssueOutput{}, err
	}
	return nil, TransitionIssueOutput{
		Key:          input.Key,
		Transitioned: true,
		TransitionID: input.TransitionID,
	}, nil
}

// handleListProjects handles the list_projects tool invocation.
func (s *Server) handleListProjects(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ListProjectsInput,
) (*mcp.CallToolResult, ListProjectsOutput, error) {
	list, err := s.ports.Projects.List(ctx, driving.PageOptions{
		StartAt:    input.StartAt,
		MaxResults: input.MaxResults,
	})
	if err != nil {
		return nil, ListProjectsOutput{}, err
	}

	output := ListProjectsOutput{
		Projects: list.Projects,
		Total:    list.Total,
	}
	if list.HasMore {
		next := list.NextStartAt
		output.NextStartAt = &next
	}
	return nil, output, nil
}

// handleGetProject handles the get_project tool invocation.
func (s *Server) handleGetProject(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input GetProjectInput,
) (*mcp.CallToolResult, domain.Project, error) {
	project, err := s.ports.Projects.Get(ctx, input.Key)
	if err != nil {
		return nil, domain.Project{}, err
	}
	return nil, *project, nil
}

// handleListFields handles the list_fields tool invocation.
func (s *Server) handleListFields(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ ListFieldsInput,
) (*mcp.CallToolResult, ListFieldsOutput, error) {
	fields, err := s.ports.Projects.Fields(ctx)
	if err != nil {
		return nil, ListFieldsOutput{}, err
	}
	return nil, ListFieldsOutput{Fields: fields}, nil
}
