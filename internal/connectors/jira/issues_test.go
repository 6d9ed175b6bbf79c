package jira

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchJQL_QueryParams(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/rest/api/3/search/jql", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, `project = PRJ ORDER BY created DESC`, q.Get("jql"))
		assert.Equal(t, "25", q.Get("maxResults"))
		assert.Equal(t, "tok-1", q.Get("nextPageToken"))
		assert.Equal(t, "summary,status", q.Get("fields"))
		w.Write([]byte(`{"issues":[{"id":"1","key":"PRJ-1","fields":{"summary":"s"}}],"isLast":true}`))
	})

	page, err := client.SearchJQL(context.Background(), `project = PRJ ORDER BY created DESC`, SearchOptions{
		MaxResults: 25,
		PageToken:  "tok-1",
		Fields:     []string{"summary", "status"},
	})

	require.NoError(t, err)
	require.Len(t, page.Issues, 1)
	assert.Equal(t, "PRJ-1", page.Issues[0].Key)
	assert.False(t, page.HasMore())
}

func TestSearchJQL_Defaults(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "50", q.Get("maxResults"))
		assert.False(t, q.Has("nextPageToken"))
		assert.False(t, q.Has("fields"))
		w.Write([]byte(`{"issues":[],"isLast":false,"nextPageToken":"tok-2"}`))
	})

	page, err := client.SearchJQL(context.Background(), "order by created", SearchOptions{})

	require.NoError(t, err)
	assert.Equal(t, DefaultPageSize, page.MaxResults)

	next, err := page.Next()
	require.NoError(t, err)
	assert.Equal(t, "tok-2", next)
}

func TestGetIssue_EscapesKey(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/rest/api/3/issue/PRJ-7", r.URL.Path)
		w.Write([]byte(`{"id":"7","key":"PRJ-7","fields":{"summary":"hello"}}`))
	})

	issue, err := client.GetIssue(context.Background(), "PRJ-7")

	require.NoError(t, err)
	assert.Equal(t, "hello", issue.Fields["summary"])
}

func TestCreateIssue_WrapsFields(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		fields, ok := body["fields"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "New bug", fields["summary"])

		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id":"10100","key":"PRJ-42","self":"https://x/issue/10100"}`))
	})

	created, err := client.CreateIssue(context.Background(), map[string]any{"summary": "New bug"})

	require.NoError(t, err)
	assert.Equal(t, "PRJ-42", created.Key)
}

func TestUpdateIssue_AcceptsNoContent(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/rest/api/3/issue/PRJ-1", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	})

	err := client.UpdateIssue(context.Background(), "PRJ-1", map[string]any{"summary": "renamed"})
	require.NoError(t, err)
}

func TestListComments_OffsetParams(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/rest/api/3/issue/PRJ-1/comment", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "50", q.Get("startAt"))
		assert.Equal(t, "50", q.Get("maxResults"))
		w.Write([]byte(`{
			"comments":[{"id":"c1","author":{"displayName":"Dev"},"body":"plain","created":"2026-08-01T10:00:00.000+0000"}],
			"startAt":50,"maxResults":50,"total":120
		}`))
	})

	page, err := client.ListComments(context.Background(), "PRJ-1", 50, 0)

	require.NoError(t, err)
	require.Len(t, page.Comments, 1)
	assert.Equal(t, "c1", page.Comments[0].ID)
	assert.True(t, page.HasMore())

	next, ok := page.NextStartAt()
	require.True(t, ok)
	assert.Equal(t, 100, next)
}

func TestAddComment_SendsDocumentBody(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)

		var body struct {
			Body ADFNode `json:"body"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "doc", body.Body.Type)
		assert.Equal(t, 1, body.Body.Version)

		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id":"c9","author":{"displayName":"Dev"},"body":{},"created":"2026-08-01T10:00:00.000+0000"}`))
	})

	comment, err := client.AddComment(context.Background(), "PRJ-1", TextToADF("hi there"))

	require.NoError(t, err)
	assert.Equal(t, "c9", comment.ID)
}

func TestListTransitions(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/rest/api/3/issue/PRJ-1/transitions", r.URL.Path)
		w.Write([]byte(`{"transitions":[
			{"id":"11","name":"To Do","to":{"name":"To Do"}},
			{"id":"31","name":"Done","to":{"name":"Done"}}
		]}`))
	})

	transitions, err := client.ListTransitions(context.Background(), "PRJ-1")

	require.NoError(t, err)
	require.Len(t, transitions, 2)
	assert.Equal(t, "Done", transitions[1].To.Name)
}

func TestDoTransition_PostsTransitionID(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		transition, ok := body["transition"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "31", transition["id"])

		w.WriteHeader(http.StatusNoContent)
	})

	err := client.DoTransition(context.Background(), "PRJ-1", "31")
	require.NoError(t, err)
}
