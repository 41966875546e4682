package resource

// Kind identifies one of the searchable upstream collections.
type Kind string

// Resource kind constants.
const (
	Inventory Kind = "inventory"
	Orders    Kind = "orders"
	Users     Kind = "users"
	Reviews   Kind = "reviews"
)

// IsValid checks if the kind is one of the supported collections.
func (k Kind) IsValid() bool {
	return k == Inventory || k == Orders || k == Users || k == Reviews
}

func (k Kind) String() string { return string(k) }
