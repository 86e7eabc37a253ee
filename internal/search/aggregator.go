package search

import (
	"context"

	"gymspot/internal/domain/venues"
	"gymspot/internal/params"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// PageSize is the number of rows fetched per venue kind for one page.
const PageSize = 12

// ErrMessage is shown to users when a lookup fails. Lookups are not retried;
// the caller offers a retry link.
const ErrMessage = "Failed to fetch search results. Please try again later."

// Lookup runs a predicate against the venue store and returns one page of
// rows with the total number of matches.
type Lookup interface {
	FindListings(ctx context.Context, p venues.Predicate, limit, offset int) ([]venues.Listing, int, error)
}

// Entity is a search row tagged with its venue kind.
type Entity struct {
	Type venues.Kind `json:"type"`
	venues.Listing
}

type Result struct {
	Results      []Entity `json:"results"`
	CurrentPage  int      `json:"currentPage"`
	TotalPages   int      `json:"totalPages"`
	TotalResults int      `json:"totalResults"`
	Error        *string  `json:"error"`
}

// Failed reports whether the result carries a lookup error.
func (r Result) Failed() bool {
	return r.Error != nil
}

type Aggregator struct {
	lookup Lookup
	logger *zap.SugaredLogger
}

func NewAggregator(lookup Lookup, logger *zap.SugaredLogger) *Aggregator {
	return &Aggregator{lookup: lookup, logger: logger}
}

// kinds fixes the concatenation order of the per-kind pages.
var kinds = []venues.Kind{venues.KindGym, venues.KindClub}

type kindPage struct {
	rows  []venues.Listing
	total int
}

// Search runs the gym and club lookups concurrently and concatenates gym rows
// before club rows. Rows are not re-sorted across kinds, so a page mixing both
// kinds is ordered per kind only. Errors are reported in Result.Error.
func (a *Aggregator) Search(ctx context.Context, f Filter) Result {
	page := f.Page
	if page < 1 {
		page = 1
	}
	offset := params.Offset(page, PageSize)

	pages := make([]kindPage, len(kinds))
	g, gctx := errgroup.WithContext(ctx)

	for i, kind := range kinds {
		pred, ok := Build(f, kind)
		if !ok {
			continue
		}

		g.Go(func() error {
			rows, total, err := a.lookup.FindListings(gctx, pred, PageSize, offset)
			if err != nil {
				return err
			}
			pages[i] = kindPage{rows: rows, total: total}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		a.logger.Errorw("search lookup failed",
			"q", f.Term, "city", f.City, "type", f.Type, "page", page, "error", err.Error())
		msg := ErrMessage
		return Result{
			Results:     []Entity{},
			CurrentPage: page,
			Error:       &msg,
		}
	}

	res := Result{
		Results:     []Entity{},
		CurrentPage: page,
	}
	for i, p := range pages {
		res.TotalResults += p.total
		for _, row := range p.rows {
			res.Results = append(res.Results, Entity{Type: kinds[i], Listing: row})
		}
	}
	res.TotalPages = params.TotalPages(res.TotalResults, PageSize)

	return res
}
