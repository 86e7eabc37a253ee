package accesscontrol

import (
	"slices"

	"gymspot/internal/domain/users"
	venuereviews "gymspot/internal/domain/venuereview"
	"gymspot/internal/domain/venues"
)

func IsAdmin(role users.Role) bool {
	return role == users.RoleAdmin
}

// HasRole reports whether role is one of allowed. Admins pass every check.
func HasRole(role users.Role, allowed ...users.Role) bool {
	return IsAdmin(role) || slices.Contains(allowed, role)
}

// CanCreateVenue allows gym owners and admins to list venues.
func CanCreateVenue(p Principal) bool {
	return !p.Anonymous() && HasRole(p.Role, users.RoleGymOwner)
}

// CanManageVenue allows the owning account or an admin to mutate a venue and
// its promotions.
func CanManageVenue(p Principal, v *venues.Venue) bool {
	if p.Anonymous() || v == nil {
		return false
	}
	return IsAdmin(p.Role) || v.OwnerID == p.UserID
}

// CanModifyReview allows the author or an admin to edit or delete a review.
func CanModifyReview(p Principal, r *venuereviews.Review) bool {
	if p.Anonymous() || r == nil {
		return false
	}
	return IsAdmin(p.Role) || r.UserID == p.UserID
}

// CanViewVenue hides non-active venues from everyone but their owner and
// admins.
func CanViewVenue(p Principal, v *venues.Venue) bool {
	if v == nil {
		return false
	}
	return v.Status == venues.StatusActive || CanManageVenue(p, v)
}
