package search

import (
	"context"
	"errors"
	"math"
	"net/url"
	"strconv"
	"testing"

	"gymspot/internal/domain/venues"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type mockLookup struct {
	mock.Mock
}

func (m *mockLookup) FindListings(ctx context.Context, p venues.Predicate, limit, offset int) ([]venues.Listing, int, error) {
	args := m.Called(ctx, p, limit, offset)
	rows, _ := args.Get(0).([]venues.Listing)
	return rows, args.Int(1), args.Error(2)
}

func kindIs(kind venues.Kind) interface{} {
	return mock.MatchedBy(func(p venues.Predicate) bool { return p.Kind == kind })
}

func listings(names ...string) []venues.Listing {
	out := make([]venues.Listing, 0, len(names))
	for i, n := range names {
		out = append(out, venues.Listing{ID: int64(i + 1), Name: n})
	}
	return out
}

func newTestAggregator(l Lookup) *Aggregator {
	return NewAggregator(l, zap.NewNop().Sugar())
}

func TestSearchGymOnlySkipsClubLookup(t *testing.T) {
	m := &mockLookup{}
	m.On("FindListings", mock.Anything, kindIs(venues.KindGym), PageSize, 0).
		Return(listings("Fitness Zone"), 1, nil).Once()

	res := newTestAggregator(m).Search(context.Background(), Filter{Term: "Fitness", City: "Casablanca", Type: SelectGym, Page: 1})

	require.Nil(t, res.Error)
	assert.Equal(t, 1, res.TotalResults)
	assert.Equal(t, 1, res.TotalPages)
	require.Len(t, res.Results, 1)
	assert.Equal(t, venues.KindGym, res.Results[0].Type)
	assert.Equal(t, "Fitness Zone", res.Results[0].Name)

	m.AssertNumberOfCalls(t, "FindListings", 1)
	m.AssertNotCalled(t, "FindListings", mock.Anything, kindIs(venues.KindClub), mock.Anything, mock.Anything)
}

func TestSearchClubOnlySkipsGymLookup(t *testing.T) {
	m := &mockLookup{}
	m.On("FindListings", mock.Anything, kindIs(venues.KindClub), PageSize, 0).
		Return(listings("Padel Club"), 1, nil).Once()

	res := newTestAggregator(m).Search(context.Background(), Filter{Type: SelectClub, Page: 1})

	require.Len(t, res.Results, 1)
	assert.Equal(t, venues.KindClub, res.Results[0].Type)
	m.AssertNotCalled(t, "FindListings", mock.Anything, kindIs(venues.KindGym), mock.Anything, mock.Anything)
}

func TestSearchAllConcatenatesGymsThenClubs(t *testing.T) {
	m := &mockLookup{}
	m.On("FindListings", mock.Anything, kindIs(venues.KindGym), PageSize, 12).
		Return(listings("Gym A", "Gym B"), 14, nil).Once()
	m.On("FindListings", mock.Anything, kindIs(venues.KindClub), PageSize, 12).
		Return(listings("Club A"), 13, nil).Once()

	res := newTestAggregator(m).Search(context.Background(), Filter{Type: SelectAll, Page: 2})

	require.Nil(t, res.Error)
	assert.Equal(t, 2, res.CurrentPage)
	assert.Equal(t, 27, res.TotalResults)
	assert.Equal(t, 3, res.TotalPages)

	var got []string
	for _, e := range res.Results {
		got = append(got, string(e.Type)+":"+e.Name)
	}
	assert.Equal(t, []string{"gym:Gym A", "gym:Gym B", "club:Club A"}, got)
	m.AssertExpectations(t)
}

func TestSearchTotalPagesIsCeil(t *testing.T) {
	for total, want := range map[int]int{0: 0, 1: 1, 12: 1, 13: 2, 24: 2, 25: 3} {
		m := &mockLookup{}
		m.On("FindListings", mock.Anything, kindIs(venues.KindGym), PageSize, 0).Return([]venues.Listing{}, total, nil)

		res := newTestAggregator(m).Search(context.Background(), Filter{Type: SelectGym, Page: 1})
		assert.Equal(t, want, res.TotalPages, "total=%d", total)
	}
}

func TestSearchDoesNotClampPage(t *testing.T) {
	m := &mockLookup{}
	m.On("FindListings", mock.Anything, kindIs(venues.KindGym), PageSize, 9*PageSize).Return([]venues.Listing{}, 3, nil)

	res := newTestAggregator(m).Search(context.Background(), Filter{Type: SelectGym, Page: 10})

	assert.Equal(t, 10, res.CurrentPage)
	assert.Equal(t, 1, res.TotalPages)
	assert.Empty(t, res.Results)
	assert.NotNil(t, res.Results)
}

func TestSearchHugePageReadsAsEmpty(t *testing.T) {
	m := &mockLookup{}
	m.On("FindListings", mock.Anything, kindIs(venues.KindGym), PageSize, math.MaxInt).Return([]venues.Listing{}, 3, nil)

	f := Normalize(url.Values{"type": {"gym"}, "page": {strconv.Itoa(math.MaxInt)}})
	res := newTestAggregator(m).Search(context.Background(), f)

	require.Nil(t, res.Error)
	assert.Equal(t, math.MaxInt, res.CurrentPage)
	assert.Empty(t, res.Results)
	m.AssertExpectations(t)
}

func TestSearchLookupFailureReturnsErrorResult(t *testing.T) {
	m := &mockLookup{}
	m.On("FindListings", mock.Anything, kindIs(venues.KindGym), mock.Anything, mock.Anything).
		Return(listings("Gym A"), 1, nil)
	m.On("FindListings", mock.Anything, kindIs(venues.KindClub), mock.Anything, mock.Anything).
		Return(nil, 0, errors.New("connection refused"))

	res := newTestAggregator(m).Search(context.Background(), Filter{Type: SelectAll, Page: 3})

	require.True(t, res.Failed())
	assert.Equal(t, ErrMessage, *res.Error)
	assert.Empty(t, res.Results)
	assert.Equal(t, 0, res.TotalResults)
	assert.Equal(t, 0, res.TotalPages)
	assert.Equal(t, 3, res.CurrentPage)
}
