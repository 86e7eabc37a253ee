package params

import (
	"math"
	"net/url"
	"strconv"
	"strings"
)

const (
	DefaultLimit = 15
	MaxLimit     = 50
)

// URL: /v1/admin/venues?page=2&limit=30
// → ParsePagination() → Pagination{Limit:30, Page:2, Offset:30}
// → SQL: SELECT ... LIMIT 30 OFFSET 30
// → DB returns data + total count
// → ComputeMeta(total) → fills TotalPages, HasNext, etc.
type Pagination struct {
	Limit      int  `json:"limit"`
	Offset     int  `json:"offset"`
	Page       int  `json:"page"`
	Total      int  `json:"total"`
	TotalPages int  `json:"total_pages"`
	HasNext    bool `json:"has_next"`
	HasPrev    bool `json:"has_prev"`
}

// ParsePage reads a 1-indexed page number. Missing, non-numeric and
// non-positive values all fall back to 1.
func ParsePage(raw string) int {
	page, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || page < 1 {
		return 1
	}
	return page
}

// ParsePagination parses ?limit=...&page=... safely. Keys are case sensitive.
func ParsePagination(q url.Values) Pagination {
	p := Pagination{
		Limit: DefaultLimit,
		Page:  ParsePage(q.Get("page")),
	}

	if limitStr := strings.TrimSpace(q.Get("limit")); limitStr != "" {
		if limit, err := strconv.Atoi(limitStr); err == nil {
			switch {
			case limit <= 0:
				p.Limit = DefaultLimit
			case limit > MaxLimit:
				p.Limit = MaxLimit
			default:
				p.Limit = limit
			}
		}
	}

	p.Offset = Offset(p.Page, p.Limit)
	return p
}

// Offset is the SQL OFFSET for a 1-indexed page. It saturates at
// math.MaxInt instead of overflowing, so absurd pages read as empty.
func Offset(page, limit int) int {
	if page < 1 {
		page = 1
	}
	if limit > 0 && page-1 > math.MaxInt/limit {
		return math.MaxInt
	}
	return (page - 1) * limit
}

// TotalPages is ceil(total/limit).
func TotalPages(total, limit int) int {
	if limit <= 0 || total <= 0 {
		return 0
	}
	return int(math.Ceil(float64(total) / float64(limit)))
}

// ComputeMeta updates pagination after fetching total count.
func (p *Pagination) ComputeMeta(total int) {
	p.Total = total
	p.TotalPages = TotalPages(total, p.Limit)
	p.HasPrev = p.Page > 1
	p.HasNext = p.Page < p.TotalPages
}
