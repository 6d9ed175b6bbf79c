package driving

import (
	"context"

	"github.com/atlaslens/jira-mcp/internal/core/domain"
)

// SearchOptions controls an issue search.
type SearchOptions struct {
	// MaxResults caps the page size (service default when zero).
	MaxResults int
	// PageToken continues a prior search; opaque, echoed verbatim.
	PageToken string
	// Fields restricts which issue fields are fetched.
	Fields []string
}

// SearchResult is one page of search hits plus its continuation state.
// NextPageToken is empty on the final page; no total count exists in
// this contract.
type SearchResult struct {
	Issues        []domain.Issue
	NextPageToken string
}

// PageOptions controls an offset-paged listing.
type PageOptions struct {
	StartAt    int
	MaxResults int
}

// CommentList is one offset page of comments.
type CommentList struct {
	Comments []domain.Comment
	StartAt  int
	Total    int
	// NextStartAt is valid only when HasMore.
	HasMore     bool
	NextStartAt int
}

// ProjectList is one offset page of projects.
type ProjectList struct {
	Projects    []domain.Project
	StartAt     int
	Total       int
	HasMore     bool
	NextStartAt int
}

// CreateIssueInput is the data needed to create an issue.
type CreateIssueInput struct {
	ProjectKey  string
	IssueType   string
	Summary     string
	Description string
	// Fields carries any additional fields verbatim.
	Fields map[string]any
}

// IssueService drives issue operations.
type IssueService interface {
	Search(ctx context.Context, jql string, opts SearchOptions) (*SearchResult, error)
	Get(ctx context.Context, key string) (*domain.Issue, error)
	Create(ctx context.Context, input CreateIssueInput) (*domain.Issue, error)
	Update(ctx context.Context, key string, fields map[string]any) error
	Comments(ctx context.Context, key string, opts PageOptions) (*CommentList, error)
	AddComment(ctx context.Context, key, body string) (*domain.Comment, error)
	Transitions(ctx context.Context, key string) ([]domain.Transition, error)
	Transition(ctx context.Context, key, transitionID string) error
}

// ProjectService drives project and field-catalog reads.
type ProjectService interface {
	List(ctx context.Context, opts PageOptions) (*ProjectList, error)
	Get(ctx context.Context, key string) (*domain.Project, error)
	Fields(ctx context.Context) ([]domain.Field, error)
}
