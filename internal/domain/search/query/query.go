package query

import "fmt"

// Pagination defaults and limits.
const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// Params is a validated set of search parameters. Absent criteria are empty
// strings and exclude nothing.
type Params struct {
	text   string
	typ    string
	flavor string
	status string
	page   int
	limit  int
}

// New validates and normalizes search parameters.
// Defaults: page=1, limit=10. Limit is clamped to MaxLimit.
func New(text, typeFilter, flavorFilter, statusFilter string, page, limit int) (Params, error) {
	if page < 0 {
		return Params{}, fmt.Errorf("page must be a positive integer, got %d", page)
	}
	if limit < 0 {
		return Params{}, fmt.Errorf("limit must be a positive integer, got %d", limit)
	}
	if page == 0 {
		page = DefaultPage
	}
	if limit == 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return Params{
		text:   text,
		typ:    typeFilter,
		flavor: flavorFilter,
		status: statusFilter,
		page:   page,
		limit:  limit,
	}, nil
}

// Text returns the free-text query criterion.
func (p Params) Text() string { return p.text }

// Type returns the inventory type criterion.
func (p Params) Type() string { return p.typ }

// Flavor returns the inventory flavor criterion.
func (p Params) Flavor() string { return p.flavor }

// Status returns the order status criterion.
func (p Params) Status() string { return p.status }

// Page returns the 1-based page number.
func (p Params) Page() int { return p.page }

// Limit returns the page size.
func (p Params) Limit() int { return p.limit }
