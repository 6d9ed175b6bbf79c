package services

import (
	"context"

	"github.com/atlaslens/jira-mcp/internal/connectors/jira"
)

// mockIssueAPI is a mock implementation of driven.IssueAPI.
type mockIssueAPI struct {
	searchPage  *jira.SearchPage
	issue       *jira.Issue
	created     *jira.CreatedIssue
	commentPage *jira.CommentPage
	comment     *jira.WireComment
	transitions []jira.WireTransition
	err         error

	searchCalls   int
	lastJQL       string
	lastSearch    jira.SearchOptions
	lastFields    map[string]any
	lastADFBody   *jira.ADFNode
	lastKey       string
	lastStartAt   int
	lastMaxResult int
}

func (m *mockIssueAPI) SearchJQL(_ context.Context, jql string, opts jira.SearchOptions) (*jira.SearchPage, error) {
	m.searchCalls++
	m.lastJQL = jql
	m.lastSearch = opts
	return m.searchPage, m.err
}

func (m *mockIssueAPI) GetIssue(_ context.Context, key string) (*jira.Issue, error) {
	m.lastKey = key
	return m.issue, m.err
}

func (m *mockIssueAPI) CreateIssue(_ context.Context, fields map[string]any) (*jira.CreatedIssue, error) {
	m.lastFields = fields
	return m.created, m.err
}

func (m *mockIssueAPI) UpdateIssue(_ context.Context, key string, fields map[string]any) error {
	m.lastKey = key
	m.lastFields = fields
	return m.err
}

func (m *mockIssueAPI) ListComments(_ context.Context, key string, startAt, maxResults int) (*jira.CommentPage, error) {
	m.lastKey = key
	m.lastStartAt = startAt
	m.lastMaxResult = maxResults
	return m.commentPage, m.err
}

func (m *mockIssueAPI) AddComment(_ context.Context, key string, body *jira.ADFNode) (*jira.WireComment, error) {
	m.lastKey = key
	m.lastADFBody = body
	return m.comment, m.err
}

func (m *mockIssueAPI) ListTransitions(_ context.Context, key string) ([]jira.WireTransition, error) {
	m.lastKey = key
	return m.transitions, m.err
}

func (m *mockIssueAPI) DoTransition(_ context.Context, key, transitionID string) error {
	m.lastKey = key + ":" + transitionID
	return m.err
}

// mockProjectAPI is a mock implementation of driven.ProjectAPI.
type mockProjectAPI struct {
	page    *jira.ProjectPage
	project *jira.WireProject
	fields  []jira.WireField
	err     error

	listCalls   int
	getCalls    int
	fieldsCalls int
}

func (m *mockProjectAPI) ListProjects(_ context.Context, _, _ int) (*jira.ProjectPage, error) {
	m.listCalls++
	return m.page, m.err
}

func (m *mockProjectAPI) GetProject(_ context.Context, _ string) (*jira.WireProject, error) {
	m.getCalls++
	return m.project, m.err
}

func (m *mockProjectAPI) ListFields(_ context.Context) ([]jira.WireField, error) {
	m.fieldsCalls++
	return m.fields, m.err
}
