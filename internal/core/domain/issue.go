package domain

// Issue is a compacted view of a Jira issue.
// Fields holds the normalised field map: every remote field value has
// been reduced to one of the canonical shapes (name-only, value+id,
// actor, plain text) by the field normaliser before it lands here.
type Issue struct {
	// ID is the numeric issue ID assigned by Jira.
	ID string `json:"id"`
	// Key is the human-readable key, e.g. "PRJ-42".
	Key string `json:"key"`
	// Summary is the issue title.
	Summary string `json:"summary"`
	// Description is the issue body flattened to plain text.
	Description string `json:"description,omitempty"`
	// Fields is the normalised remaining field map.
	Fields map[string]any `json:"fields,omitempty"`
}

// Comment is a single issue comment with its body flattened to plain text.
type Comment struct {
	ID          string `json:"id"`
	AuthorName  string `json:"author_name,omitempty"`
	AuthorEmail string `json:"author_email,omitempty"`
	Body        string `json:"body"`
	Created     string `json:"created,omitempty"`
}

// Project identifies a Jira project.
type Project struct {
	ID   string `json:"id"`
	Key  string `json:"key"`
	Name string `json:"name"`
}

// Transition is a workflow transition available on an issue.
type Transition struct {
	ID string `json:"id"`
	// Name is the transition label, e.g. "Start Progress".
	Name string `json:"name"`
	// To is the status the transition leads to.
	To string `json:"to,omitempty"`
}

// Field describes an entry in the site's field catalog.
type Field struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Custom bool   `json:"custom"`
}
