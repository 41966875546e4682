package search

import (
	"context"

	"github.com/tapcellar/searchgate/internal/domain/record"
)

// Catalog fetches and normalizes the upstream collections. Implementations
// return the full collection in upstream order; filtering, scoping, and
// pagination belong to this service.
type Catalog interface {
	Inventory(ctx context.Context) ([]record.Inventory, error)
	Orders(ctx context.Context) ([]record.Order, error)
	Users(ctx context.Context) ([]record.User, error)
	Reviews(ctx context.Context) ([]record.Review, error)
}
