package record

import "fmt"

// Order is a canonical order. OwnerID drives access scoping.
type Order struct {
	id         int
	ownerID    int
	totalPrice float64
	status     string
}

// NewOrder creates a canonical order record.
func NewOrder(id, ownerID int, totalPrice float64, status string) (Order, error) {
	if id <= 0 {
		return Order{}, fmt.Errorf("order record requires a positive id, got %d", id)
	}
	if ownerID <= 0 {
		return Order{}, fmt.Errorf("order %d requires a positive owner id, got %d", id, ownerID)
	}
	return Order{
		id:         id,
		ownerID:    ownerID,
		totalPrice: totalPrice,
		status:     status,
	}, nil
}

// ID returns the order identifier.
func (o *Order) ID() int { return o.id }

// OwnerID returns the id of the user the order belongs to.
func (o *Order) OwnerID() int { return o.ownerID }

// TotalPrice returns the order total.
func (o *Order) TotalPrice() float64 { return o.totalPrice }

// Status returns the order status.
func (o *Order) Status() string { return o.status }
