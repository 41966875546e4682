// Package filter holds the per-resource predicate set. Every predicate is a
// pure function over one canonical record and the request parameters: a
// record is retained iff it passes the conjunction of all supplied criteria,
// and an absent criterion excludes nothing. Matching is exact-substring or
// exact-equality, case-insensitive; there is no scoring and no reordering.
package filter

import (
	"strconv"
	"strings"

	"github.com/tapcellar/searchgate/internal/domain/record"
	"github.com/tapcellar/searchgate/internal/domain/search/query"
)

// Apply retains the records passing pred, preserving relative order.
func Apply[T any](records []T, pred func(T) bool) []T {
	kept := make([]T, 0, len(records))
	for _, r := range records {
		if pred(r) {
			kept = append(kept, r)
		}
	}
	return kept
}

// MatchInventory reports whether an inventory record satisfies every
// supplied criterion. The text criterion is a case-insensitive substring of
// name or description; type is case-insensitive equality; flavor matches any
// of the taste profile descriptors.
func MatchInventory(rec record.Inventory, p query.Params) bool {
	if q := p.Text(); q != "" {
		if !containsFold(rec.Name(), q) && !containsFold(rec.Description(), q) {
			return false
		}
	}
	if t := p.Type(); t != "" && !strings.EqualFold(rec.Type(), t) {
		return false
	}
	if f := p.Flavor(); f != "" {
		taste := rec.Taste()
		if !anyEqualFold(f, taste.PrimaryFlavor(), taste.Sweetness(), taste.Bitterness()) {
			return false
		}
	}
	return true
}

// MatchOrder reports whether an order satisfies every supplied criterion.
// The text criterion is an exact (not substring) case-insensitive token
// match against the decimal renderings of the order id or owner id.
func MatchOrder(rec record.Order, p query.Params) bool {
	if q := p.Text(); q != "" {
		if !strings.EqualFold(q, strconv.Itoa(rec.ID())) &&
			!strings.EqualFold(q, strconv.Itoa(rec.OwnerID())) {
			return false
		}
	}
	if s := p.Status(); s != "" && !strings.EqualFold(rec.Status(), s) {
		return false
	}
	return true
}

// MatchUser reports whether a user satisfies the text criterion: a
// case-insensitive substring of name or email.
func MatchUser(rec record.User, p query.Params) bool {
	if q := p.Text(); q != "" {
		if !containsFold(rec.Name(), q) && !containsFold(rec.Email(), q) {
			return false
		}
	}
	return true
}

// MatchReview reports whether a review satisfies the text criterion: a
// case-insensitive substring of the message, or exact equality with the
// decimal-string rendering of the rating.
func MatchReview(rec record.Review, p query.Params) bool {
	if q := p.Text(); q != "" {
		if !containsFold(rec.Message(), q) && q != rec.RatingString() {
			return false
		}
	}
	return true
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// anyEqualFold reports whether want equals any non-empty candidate,
// case-insensitively. Absent descriptors never match.
func anyEqualFold(want string, candidates ...string) bool {
	for _, c := range candidates {
		if c != "" && strings.EqualFold(c, want) {
			return true
		}
	}
	return false
}
