package jira

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListProjects_OffsetParams(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/rest/api/3/project/search", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "0", q.Get("startAt"))
		assert.Equal(t, "10", q.Get("maxResults"))
		w.Write([]byte(`{
			"values":[{"id":"10000","key":"PRJ","name":"Project"}],
			"startAt":0,"maxResults":10,"total":1
		}`))
	})

	page, err := client.ListProjects(context.Background(), 0, 10)

	require.NoError(t, err)
	require.Len(t, page.Values, 1)
	assert.Equal(t, "PRJ", page.Values[0].Key)
	assert.False(t, page.HasMore())
}

func TestGetProject(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/rest/api/3/project/PRJ", r.URL.Path)
		w.Write([]byte(`{"id":"10000","key":"PRJ","name":"Project"}`))
	})

	project, err := client.GetProject(context.Background(), "PRJ")

	require.NoError(t, err)
	assert.Equal(t, "Project", project.Name)
}

func TestListFields(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/rest/api/3/field", r.URL.Path)
		w.Write([]byte(`[
			{"id":"summary","name":"Summary","custom":false},
			{"id":"customfield_10010","name":"Sprint","custom":true}
		]`))
	})

	fields, err := client.ListFields(context.Background())

	require.NoError(t, err)
	require.Len(t, fields, 2)
	assert.True(t, fields[1].Custom)
}
