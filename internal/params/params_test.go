package params

import (
	"math"
	"net/url"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePage(t *testing.T) {
	assert.Equal(t, 1, ParsePage(""))
	assert.Equal(t, 1, ParsePage("abc"))
	assert.Equal(t, 1, ParsePage("0"))
	assert.Equal(t, 1, ParsePage("-4"))
	assert.Equal(t, 1, ParsePage("2.5"))
	assert.Equal(t, 3, ParsePage(" 3 "))
}

func TestParsePagination(t *testing.T) {
	p := ParsePagination(url.Values{"page": {"3"}, "limit": {"20"}})
	assert.Equal(t, Pagination{Limit: 20, Page: 3, Offset: 40}, p)

	p = ParsePagination(url.Values{"limit": {"500"}})
	assert.Equal(t, MaxLimit, p.Limit)
	assert.Equal(t, 0, p.Offset)

	p = ParsePagination(url.Values{"limit": {"nope"}, "page": {"x"}})
	assert.Equal(t, DefaultLimit, p.Limit)
	assert.Equal(t, 1, p.Page)
}

func TestComputeMeta(t *testing.T) {
	p := Pagination{Limit: 12, Page: 2}
	p.ComputeMeta(25)

	assert.Equal(t, 25, p.Total)
	assert.Equal(t, 3, p.TotalPages)
	assert.True(t, p.HasPrev)
	assert.True(t, p.HasNext)

	p = Pagination{Limit: 12, Page: 1}
	p.ComputeMeta(0)
	assert.Equal(t, 0, p.TotalPages)
	assert.False(t, p.HasNext)
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 0, TotalPages(0, 12))
	assert.Equal(t, 1, TotalPages(1, 12))
	assert.Equal(t, 1, TotalPages(12, 12))
	assert.Equal(t, 2, TotalPages(13, 12))
	assert.Equal(t, 0, TotalPages(10, 0))
}

func TestOffsetNeverOverflows(t *testing.T) {
	assert.Equal(t, 0, Offset(0, 12))
	assert.Equal(t, 24, Offset(3, 12))
	assert.Equal(t, math.MaxInt, Offset(math.MaxInt, 12))
	assert.Equal(t, math.MaxInt, Offset(math.MaxInt/12+2, 12))

	p := ParsePagination(url.Values{"page": {strconv.Itoa(math.MaxInt)}, "limit": {"20"}})
	assert.Equal(t, math.MaxInt, p.Offset)
	assert.Equal(t, math.MaxInt, p.Page)

	p.ComputeMeta(40)
	assert.False(t, p.HasNext)
	assert.True(t, p.HasPrev)
}
