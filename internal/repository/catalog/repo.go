package catalog

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/tapcellar/searchgate/internal/domain/record"
	"github.com/tapcellar/searchgate/internal/domain/resource"
	"github.com/tapcellar/searchgate/internal/logger"
	"github.com/tapcellar/searchgate/internal/metrics"
)

// fetcher is the consumer interface for the upstream provider (ISP).
type fetcher interface {
	FetchCollection(ctx context.Context, kind resource.Kind) ([]json.RawMessage, error)
}

// Repo implements usecase/search.Catalog: it fetches a raw collection and
// normalizes each record, dropping the ones that cannot be coerced.
// Relative order of surviving records equals upstream order.
type Repo struct {
	upstream fetcher
}

// New creates a catalog repository.
func New(upstream fetcher) *Repo {
	return &Repo{upstream: upstream}
}

// Inventory returns the normalized inventory collection.
func (r *Repo) Inventory(ctx context.Context) ([]record.Inventory, error) {
	raws, err := r.upstream.FetchCollection(ctx, resource.Inventory)
	if err != nil {
		return nil, fmt.Errorf("fetch inventory: %w", err)
	}
	return normalize(ctx, resource.Inventory, raws, inventoryFromRaw), nil
}

// Orders returns the normalized orders collection.
func (r *Repo) Orders(ctx context.Context) ([]record.Order, error) {
	raws, err := r.upstream.FetchCollection(ctx, resource.Orders)
	if err != nil {
		return nil, fmt.Errorf("fetch orders: %w", err)
	}
	return normalize(ctx, resource.Orders, raws, orderFromRaw), nil
}

// Users returns the normalized users collection.
func (r *Repo) Users(ctx context.Context) ([]record.User, error) {
	raws, err := r.upstream.FetchCollection(ctx, resource.Users)
	if err != nil {
		return nil, fmt.Errorf("fetch users: %w", err)
	}
	return normalize(ctx, resource.Users, raws, userFromRaw), nil
}

// Reviews returns the normalized reviews collection.
func (r *Repo) Reviews(ctx context.Context) ([]record.Review, error) {
	raws, err := r.upstream.FetchCollection(ctx, resource.Reviews)
	if err != nil {
		return nil, fmt.Errorf("fetch reviews: %w", err)
	}
	return normalize(ctx, resource.Reviews, raws, reviewFromRaw), nil
}

// normalize coerces each raw record, preserving input order. Malformed
// records are dropped so partial upstream corruption never blocks search
// traffic; each drop is logged and counted.
func normalize[T any](
	ctx context.Context, kind resource.Kind,
	raws []json.RawMessage, convert func(json.RawMessage) (T, error),
) []T {
	out := make([]T, 0, len(raws))
	for i, raw := range raws {
		rec, err := convert(raw)
		if err != nil {
			logger.FromContext(ctx).Warn("dropping malformed upstream record",
				zap.String("resource", kind.String()),
				zap.Int("position", i),
				zap.Error(err),
			)
			metrics.RecordDropped(kind.String())
			continue
		}
		out = append(out, rec)
	}
	return out
}
