package search

import (
	"context"
	"fmt"

	"github.com/tapcellar/searchgate/internal/domain"
	"github.com/tapcellar/searchgate/internal/domain/record"
	"github.com/tapcellar/searchgate/internal/domain/search/filter"
	"github.com/tapcellar/searchgate/internal/domain/search/page"
	"github.com/tapcellar/searchgate/internal/domain/search/query"
)

// Service orchestrates one search request per resource kind:
// fetch -> normalize -> scope -> filter -> paginate. Each request owns its
// own copy of fetched data; there is no cross-request state. The returned
// total is always the filtered-but-unpaginated count.
type Service struct {
	catalog         Catalog
	anonymousOrders bool
}

// New creates a search service. Anonymous order search is allowed by default.
func New(catalog Catalog) *Service {
	return &Service{catalog: catalog, anonymousOrders: true}
}

// WithAnonymousOrders toggles whether order search is usable without a
// caller identity.
func (s *Service) WithAnonymousOrders(allowed bool) *Service {
	s.anonymousOrders = allowed
	return s
}

// Inventory searches the inventory collection.
func (s *Service) Inventory(ctx context.Context, p query.Params) ([]record.Inventory, int, error) {
	records, err := s.catalog.Inventory(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("search inventory: %w", err)
	}

	matched := filter.Apply(records, func(r record.Inventory) bool {
		return filter.MatchInventory(r, p)
	})
	return page.Slice(matched, p.Page(), p.Limit()), len(matched), nil
}

// Orders searches the orders collection. With a caller identity present,
// scoping to the caller's rows runs before any predicate filter.
func (s *Service) Orders(ctx context.Context, ident *domain.Identity, p query.Params) ([]record.Order, int, error) {
	if ident == nil && !s.anonymousOrders {
		return nil, 0, domain.ErrUnauthorized
	}

	records, err := s.catalog.Orders(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("search orders: %w", err)
	}

	scoped := filter.ScopeOrders(records, ident)
	matched := filter.Apply(scoped, func(r record.Order) bool {
		return filter.MatchOrder(r, p)
	})
	return page.Slice(matched, p.Page(), p.Limit()), len(matched), nil
}

// Users searches the users collection. Anonymous callers are rejected
// before any upstream fetch.
func (s *Service) Users(ctx context.Context, ident *domain.Identity, p query.Params) ([]record.User, int, error) {
	if ident == nil {
		return nil, 0, domain.ErrUnauthorized
	}

	records, err := s.catalog.Users(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("search users: %w", err)
	}

	matched := filter.Apply(records, func(r record.User) bool {
		return filter.MatchUser(r, p)
	})
	return page.Slice(matched, p.Page(), p.Limit()), len(matched), nil
}

// Reviews searches the reviews collection.
func (s *Service) Reviews(ctx context.Context, p query.Params) ([]record.Review, int, error) {
	records, err := s.catalog.Reviews(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("search reviews: %w", err)
	}

	matched := filter.Apply(records, func(r record.Review) bool {
		return filter.MatchReview(r, p)
	})
	return page.Slice(matched, p.Page(), p.Limit()), len(matched), nil
}
