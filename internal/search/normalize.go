package search

import (
	"net/url"
	"strconv"
	"strings"

	"gymspot/internal/params"
)

// Selector restricts a search to one venue kind or to both.
type Selector string

const (
	SelectAll  Selector = "all"
	SelectGym  Selector = "gym"
	SelectClub Selector = "club"
)

// Filter is the typed form of the search query string.
type Filter struct {
	Term string   `json:"q"`
	City string   `json:"city"`
	Type Selector `json:"type"`
	Page int      `json:"page"`
}

// Normalize parses q, city, type and page. It never fails: unknown types
// mean "all" and a missing or malformed page means 1.
func Normalize(q url.Values) Filter {
	f := Filter{
		Term: strings.TrimSpace(q.Get("q")),
		City: strings.TrimSpace(q.Get("city")),
		Type: SelectAll,
		Page: params.ParsePage(q.Get("page")),
	}

	switch Selector(strings.ToLower(strings.TrimSpace(q.Get("type")))) {
	case SelectGym:
		f.Type = SelectGym
	case SelectClub:
		f.Type = SelectClub
	}

	return f
}

// Query renders f back into URL parameters, overriding the page.
func (f Filter) Query(page int) url.Values {
	v := url.Values{}
	if f.Term != "" {
		v.Set("q", f.Term)
	}
	if f.City != "" {
		v.Set("city", f.City)
	}
	if f.Type != SelectAll && f.Type != "" {
		v.Set("type", string(f.Type))
	}
	if page > 1 {
		v.Set("page", strconv.Itoa(page))
	}
	return v
}
