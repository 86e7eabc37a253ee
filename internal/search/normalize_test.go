package search

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		query url.Values
		want  Filter
	}{
		{
			name:  "empty query",
			query: url.Values{},
			want:  Filter{Type: SelectAll, Page: 1},
		},
		{
			name:  "all fields",
			query: url.Values{"q": {"  Fitness "}, "city": {"Casablanca "}, "type": {"gym"}, "page": {"3"}},
			want:  Filter{Term: "Fitness", City: "Casablanca", Type: SelectGym, Page: 3},
		},
		{
			name:  "non-numeric page",
			query: url.Values{"page": {"two"}},
			want:  Filter{Type: SelectAll, Page: 1},
		},
		{
			name:  "negative page",
			query: url.Values{"page": {"-1"}},
			want:  Filter{Type: SelectAll, Page: 1},
		},
		{
			name:  "type is case insensitive",
			query: url.Values{"type": {"CLUB"}},
			want:  Filter{Type: SelectClub, Page: 1},
		},
		{
			name:  "unknown type",
			query: url.Values{"type": {"trainer"}},
			want:  Filter{Type: SelectAll, Page: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.query))
		})
	}
}

func TestFilterQuery(t *testing.T) {
	f := Filter{Term: "yoga", City: "Rabat", Type: SelectClub, Page: 1}

	assert.Equal(t, "city=Rabat&page=2&q=yoga&type=club", f.Query(2).Encode())
	assert.Equal(t, "", Filter{Type: SelectAll}.Query(1).Encode())
}
