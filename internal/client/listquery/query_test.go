package listquery

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuery_Values(t *testing.T) {
	tests := []struct {
		name string
		q    Query
		want string
	}{
		{
			name: "page mode",
			q:    Query{Filters: map[string]string{"trainee": "u1", "blank": ""}, Search: "dana", Page: 2, PageSize: 20},
			want: "limit=20&page=2&search=dana&trainee=u1",
		},
		{
			name: "cursor replaces page",
			q:    Query{Page: 3, Cursor: "abc"},
			want: "cursor=abc",
		},
		{
			name: "descending sort",
			q:    Query{SortKey: "shift_date", SortDesc: true},
			want: "ordering=-shift_date",
		},
		{
			name: "empty",
			q:    Query{},
			want: "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.q.Values().Encode())
		})
	}
}
