package search

import "gymspot/internal/domain/venues"

// Build returns the lookup predicate for one venue kind. ok is false when the
// filter's type selector excludes that kind and the lookup should be skipped.
func Build(f Filter, kind venues.Kind) (venues.Predicate, bool) {
	switch f.Type {
	case SelectGym:
		if kind != venues.KindGym {
			return venues.Predicate{}, false
		}
	case SelectClub:
		if kind != venues.KindClub {
			return venues.Predicate{}, false
		}
	}

	return venues.Predicate{
		Kind:   kind,
		Status: venues.StatusActive,
		Term:   f.Term,
		City:   f.City,
	}, true
}
