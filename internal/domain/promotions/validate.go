package promotions

import (
	"strings"
)

// FieldErrors maps a request field to a message shown next to it.
type FieldErrors map[string]string

// Validate checks the rules a promotion must satisfy before it is stored.
func Validate(p *Promotion) FieldErrors {
	errs := FieldErrors{}

	if len(strings.TrimSpace(p.Title)) < 3 {
		errs["title"] = "Title must be at least 3 characters"
	}
	if len(strings.TrimSpace(p.Description)) < 10 {
		errs["description"] = "Description must be at least 10 characters"
	}
	if !p.EndsAt.After(p.StartsAt) {
		errs["ends_at"] = "End date must be after start date"
	}

	switch p.DiscountType {
	case DiscountPercentage:
		if p.DiscountPercent == nil || *p.DiscountPercent < 1 || *p.DiscountPercent > 100 {
			errs["discount_percent"] = "Discount must be between 1 and 100 percent"
		}
	case DiscountOffer:
		if strings.TrimSpace(p.OfferText) == "" {
			errs["offer_text"] = "Offer text is required"
		}
	default:
		errs["discount_type"] = "Discount type must be PERCENTAGE or OFFER"
	}

	if p.Status != "" && !p.Status.Valid() {
		errs["status"] = "Unknown status"
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}
