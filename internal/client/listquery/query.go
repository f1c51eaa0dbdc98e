package listquery

import (
	"maps"
	"net/url"
	"strconv"
)

// Query is the committed request state of a screen.
type Query struct {
	Filters  map[string]string
	Search   string
	Page     int
	PageSize int
	Cursor   string
	SortKey  string
	SortDesc bool
}

// Values encodes q using the backend's list conventions. A cursor replaces
// the page number.
func (q Query) Values() url.Values {
	v := url.Values{}
	for k, val := range q.Filters {
		if val != "" {
			v.Set(k, val)
		}
	}
	if q.Search != "" {
		v.Set("search", q.Search)
	}
	if q.Cursor != "" {
		v.Set("cursor", q.Cursor)
	} else if q.Page > 0 {
		v.Set("page", strconv.Itoa(q.Page))
	}
	if q.PageSize > 0 {
		v.Set("limit", strconv.Itoa(q.PageSize))
	}
	if q.SortKey != "" {
		if q.SortDesc {
			v.Set("ordering", "-"+q.SortKey)
		} else {
			v.Set("ordering", q.SortKey)
		}
	}
	return v
}

func (q Query) clone() Query {
	out := q
	out.Filters = maps.Clone(q.Filters)
	if out.Filters == nil {
		out.Filters = map[string]string{}
	}
	return out
}

func (q *Query) firstPage() {
	q.Page = 1
	q.Cursor = ""
}
