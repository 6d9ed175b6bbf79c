package mcp

import (
	"context"

	"github.com/atlaslens/jira-mcp/internal/core/domain"
	"github.com/atlaslens/jira-mcp/internal/core/ports/driving"
)

// mockIssueService is a mock implementation of driving.IssueService.
type mockIssueService struct {
	searchResult *driving.SearchResult
	issue        *domain.Issue
	comment      *domain.Comment
	commentList  *driving.CommentList
	transitions  []domain.Transition
	err          error

	lastJQL   string
	lastOpts  driving.SearchOptions
	lastInput driving.CreateIssueInput
}

func (m *mockIssueService) Search(_ context.Context, jql string, opts driving.SearchOptions) (*driving.SearchResult, error) {
	m.lastJQL = jql
	m.lastOpts = opts
	return m.searchResult, m.err
}

func (m *mockIssueService) Get(_ context.Context, _ string) (*domain.Issue, error) {
	return m.issue, m.err
}

func (m *mockIssueService) Create(_ context.Context, input driving.CreateIssueInput) (*domain.Issue, error) {
	m.lastInput = input
	return m.issue, m.err
}

func (m *mockIssueService) Update(_ context.Context, _ string, _ map[string]any) error {
	return m.err
}

func (m *mockIssueService) Comments(_ context.Context, _ string, _ driving.PageOptions) (*driving.CommentList, error) {
	return m.commentList, m.err
}

func (m *mockIssueService) AddComment(_ context.Context, _, _ string) (*domain.Comment, error) {
	return m.comment, m.err
}

func (m *mockIssueService) Transitions(_ context.Context, _ string) ([]domain.Transition, error) {
	return m.transitions, m.err
}

func (m *mockIssueService) Transition(_ context.Context, _, _ string) error {
	return m.err
}

// mockProjectService is a mock implementation of driving.ProjectService.
type mockProjectService struct {
	list   *driving.ProjectList
	single *domain.Project
	fields []domain.Field
	err    error
}

func (m *mockProjectService) List(_ context.Context, _ driving.PageOptions) (*driving.ProjectList, error) {
	return m.list, m.err
}

func (m *mockProjectService) Get(_ context.Context, _ string) (*domain.Project, error) {
	return m.single, m.err
}

func (m *mockProjectService) Fields(_ context.Context) ([]domain.Field, error) {
	return m.fields, m.err
}
