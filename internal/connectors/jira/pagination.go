package jira

// The Jira API carries two pagination contracts side by side: the
// legacy offset contract (startAt/maxResults/total) on endpoints like
// project search and comments, and the token contract
// (isLast/nextPageToken) on the newer JQL search endpoint. The two are
// deliberately kept as disjoint types with no shared supertype; a
// caller knows which contract it is paging from the endpoint it hit,
// never from the response shape.

// DefaultPageSize is the page size used when a caller does not specify one.
const DefaultPageSize = 50

// OffsetPage is the legacy offset-based page metadata.
type OffsetPage struct {
	StartAt    int `json:"startAt"`
	MaxResults int `json:"maxResults"`
	Total      int `json:"total"`
}

// HasMore reports whether another page exists.
func (p OffsetPage) HasMore() bool {
	return p.StartAt+p.MaxResults < p.Total
}

// NextStartAt returns the offset for the next request. The boolean is
// false when there is no next page; the offset is meaningless then.
func (p OffsetPage) NextStartAt() (int, bool) {
	if !p.HasMore() {
		return 0, false
	}
	return p.StartAt + p.MaxResults, true
}

// TokenPage is the token-based page metadata. The token is opaque: it
// is echoed verbatim on the next request and never parsed, modified,
// or held beyond one page. Total count is unknowable in this contract.
type TokenPage struct {
	MaxResults    int    `json:"maxResults"`
	IsLast        bool   `json:"isLast"`
	NextPageToken string `json:"nextPageToken,omitempty"`
}

// HasMore reports whether another page exists.
func (p TokenPage) HasMore() bool {
	return !p.IsLast
}

// Next returns the continuation token for the next request. A missing
// token while the server reports more pages is a protocol violation
// and surfaces as ErrMissingPageToken.
func (p TokenPage) Next() (string, error) {
	if p.IsLast {
		return "", nil
	}
	if p.NextPageToken == "" {
		return "", ErrMissingPageToken
	}
	return p.NextPageToken, nil
}
