package driven

import (
	"context"

	"github.com/atlaslens/jira-mcp/internal/connectors/jira"
)

// IssueAPI is the outbound port for issue operations. Implemented by
// *jira.Client; mocked in service tests.
type IssueAPI interface {
	SearchJQL(ctx context.Context, jql string, opts jira.SearchOptions) (*jira.SearchPage, error)
	GetIssue(ctx context.Context, key string) (*jira.Issue, error)
	CreateIssue(ctx context.Context, fields map[string]any) (*jira.CreatedIssue, error)
	UpdateIssue(ctx context.Context, key string, fields map[string]any) error
	ListComments(ctx context.Context, key string, startAt, maxResults int) (*jira.CommentPage, error)
	AddComment(ctx context.Context, key string, body *jira.ADFNode) (*jira.WireComment, error)
	ListTransitions(ctx context.Context, key string) ([]jira.WireTransition, error)
	DoTransition(ctx context.Context, key, transitionID string) error
}

// ProjectAPI is the outbound port for project and field-catalog reads.
type ProjectAPI interface {
	ListProjects(ctx context.Context, startAt, maxResults int) (*jira.ProjectPage, error)
	GetProject(ctx context.Context, key string) (*jira.WireProject, error)
	ListFields(ctx context.Context) ([]jira.WireField, error)
}

// Ensure the connector satisfies the ports.
var (
	_ IssueAPI   = (*jira.Client)(nil)
	_ ProjectAPI = (*jira.Client)(nil)
)
