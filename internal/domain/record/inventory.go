package record

import "fmt"

// Inventory is a canonical inventory item.
type Inventory struct {
	id          int
	name        string
	itemType    string
	description string
	taste       TasteProfile
}

// NewInventory creates a canonical inventory record.
func NewInventory(id int, name, itemType, description string, taste TasteProfile) (Inventory, error) {
	if id <= 0 {
		return Inventory{}, fmt.Errorf("inventory record requires a positive id, got %d", id)
	}
	return Inventory{
		id:          id,
		name:        name,
		itemType:    itemType,
		description: description,
		taste:       taste,
	}, nil
}

// ID returns the item identifier.
func (i *Inventory) ID() int { return i.id }

// Name returns the item name.
func (i *Inventory) Name() string { return i.name }

// Type returns the item category.
func (i *Inventory) Type() string { return i.itemType }

// Description returns the item description.
func (i *Inventory) Description() string { return i.description }

// Taste returns the item's taste profile.
func (i *Inventory) Taste() TasteProfile { return i.taste }

// TasteProfile holds the optional flavor descriptors of an inventory item.
// Absent descriptors are empty strings.
type TasteProfile struct {
	primaryFlavor string
	sweetness     string
	bitterness    string
}

// NewTasteProfile creates a taste profile.
func NewTasteProfile(primaryFlavor, sweetness, bitterness string) TasteProfile {
	return TasteProfile{
		primaryFlavor: primaryFlavor,
		sweetness:     sweetness,
		bitterness:    bitterness,
	}
}

// PrimaryFlavor returns the dominant flavor descriptor.
func (t TasteProfile) PrimaryFlavor() string { return t.primaryFlavor }

// Sweetness returns the sweetness descriptor.
func (t TasteProfile) Sweetness() string { return t.sweetness }

// Bitterness returns the bitterness descriptor.
func (t TasteProfile) Bitterness() string { return t.bitterness }

// IsEmpty reports whether no descriptor is set.
func (t TasteProfile) IsEmpty() bool {
	return t.primaryFlavor == "" && t.sweetness == "" && t.bitterness == ""
}
