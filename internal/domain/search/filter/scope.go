package filter

import (
	"github.com/tapcellar/searchgate/internal/domain"
	"github.com/tapcellar/searchgate/internal/domain/record"
)

// ScopeOrders restricts orders to those owned by the caller. Anonymous
// callers see every record. Scoping runs before the predicate filters so a
// partial-match search never surfaces another caller's rows.
func ScopeOrders(records []record.Order, ident *domain.Identity) []record.Order {
	if ident == nil {
		return records
	}
	return Apply(records, func(r record.Order) bool {
		return r.OwnerID() == ident.ID()
	})
}
