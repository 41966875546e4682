package catalog

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/tapcellar/searchgate/internal/domain"
	"github.com/tapcellar/searchgate/internal/domain/record"
)

// Upstream records are loosely typed: numeric fields arrive as JSON numbers
// or as base-10 numeric strings, and any field may be missing. The DTO
// layer coerces each record into its canonical shape; a failed coercion is
// a per-record error (domain.ErrMalformedRecord), never a collection-level
// failure.

// intField accepts a JSON integer or a base-10 integer string.
type intField struct {
	value int
	set   bool
}

func (f *intField) UnmarshalJSON(data []byte) error {
	s, err := scalarString(data)
	if err != nil {
		return err
	}
	if s == "" {
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("parse integer %q: %w", s, err)
	}
	f.value = n
	f.set = true
	return nil
}

// floatField accepts a JSON number or a base-10 decimal string.
type floatField struct {
	value float64
	set   bool
}

func (f *floatField) UnmarshalJSON(data []byte) error {
	s, err := scalarString(data)
	if err != nil {
		return err
	}
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("parse number %q: %w", s, err)
	}
	f.value = v
	f.set = true
	return nil
}

// scalarString unwraps a JSON number or string token to its text. null and
// empty strings yield "".
func scalarString(data []byte) (string, error) {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "null" {
		return "", nil
	}
	if strings.HasPrefix(trimmed, `"`) {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return "", fmt.Errorf("decode string value: %w", err)
		}
		return strings.TrimSpace(s), nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return "", fmt.Errorf("decode numeric value: %w", err)
	}
	return n.String(), nil
}

type tasteProfileDTO struct {
	PrimaryFlavor string `json:"PrimaryFlavor"`
	Sweetness     string `json:"Sweetness"`
	Bitterness    string `json:"Bitterness"`
}

type inventoryDTO struct {
	ID           intField         `json:"Id"`
	Name         string           `json:"Name"`
	Type         string           `json:"Type"`
	Description  string           `json:"Description"`
	TasteProfile *tasteProfileDTO `json:"TasteProfile"`
}

type orderDTO struct {
	ID         intField   `json:"Id"`
	OwnerID    intField   `json:"OwnerId"`
	TotalPrice floatField `json:"TotalPrice"`
	Status     string     `json:"Status"`
}

type userDTO struct {
	ID    intField `json:"Id"`
	Name  string   `json:"Name"`
	Email string   `json:"Email"`
}

type reviewDTO struct {
	ID        intField   `json:"Id"`
	UserID    intField   `json:"UserId"`
	ProductID intField   `json:"ProductId"`
	Rating    floatField `json:"Rating"`
	Message   string     `json:"Message"`
	CreatedAt string     `json:"CreatedAt"`
}

func inventoryFromRaw(raw json.RawMessage) (record.Inventory, error) {
	var dto inventoryDTO
	if err := json.Unmarshal(raw, &dto); err != nil {
		return record.Inventory{}, fmt.Errorf("%w: %v", domain.ErrMalformedRecord, err)
	}
	if !dto.ID.set {
		return record.Inventory{}, fmt.Errorf("%w: missing Id", domain.ErrMalformedRecord)
	}

	var taste record.TasteProfile
	if dto.TasteProfile != nil {
		taste = record.NewTasteProfile(
			dto.TasteProfile.PrimaryFlavor,
			dto.TasteProfile.Sweetness,
			dto.TasteProfile.Bitterness,
		)
	}

	rec, err := record.NewInventory(dto.ID.value, dto.Name, dto.Type, dto.Description, taste)
	if err != nil {
		return record.Inventory{}, fmt.Errorf("%w: %v", domain.ErrMalformedRecord, err)
	}
	return rec, nil
}

func orderFromRaw(raw json.RawMessage) (record.Order, error) {
	var dto orderDTO
	if err := json.Unmarshal(raw, &dto); err != nil {
		return record.Order{}, fmt.Errorf("%w: %v", domain.ErrMalformedRecord, err)
	}
	if !dto.ID.set {
		return record.Order{}, fmt.Errorf("%w: missing Id", domain.ErrMalformedRecord)
	}
	if !dto.OwnerID.set {
		return record.Order{}, fmt.Errorf("%w: missing OwnerId", domain.ErrMalformedRecord)
	}
	if !dto.TotalPrice.set {
		return record.Order{}, fmt.Errorf("%w: missing TotalPrice", domain.ErrMalformedRecord)
	}

	rec, err := record.NewOrder(dto.ID.value, dto.OwnerID.value, dto.TotalPrice.value, dto.Status)
	if err != nil {
		return record.Order{}, fmt.Errorf("%w: %v", domain.ErrMalformedRecord, err)
	}
	return rec, nil
}

func userFromRaw(raw json.RawMessage) (record.User, error) {
	var dto userDTO
	if err := json.Unmarshal(raw, &dto); err != nil {
		return record.User{}, fmt.Errorf("%w: %v", domain.ErrMalformedRecord, err)
	}
	if !dto.ID.set {
		return record.User{}, fmt.Errorf("%w: missing Id", domain.ErrMalformedRecord)
	}

	rec, err := record.NewUser(dto.ID.value, dto.Name, dto.Email)
	if err != nil {
		return record.User{}, fmt.Errorf("%w: %v", domain.ErrMalformedRecord, err)
	}
	return rec, nil
}

func reviewFromRaw(raw json.RawMessage) (record.Review, error) {
	var dto reviewDTO
	if err := json.Unmarshal(raw, &dto); err != nil {
		return record.Review{}, fmt.Errorf("%w: %v", domain.ErrMalformedRecord, err)
	}
	if !dto.ID.set {
		return record.Review{}, fmt.Errorf("%w: missing Id", domain.ErrMalformedRecord)
	}
	if !dto.Rating.set {
		return record.Review{}, fmt.Errorf("%w: missing Rating", domain.ErrMalformedRecord)
	}

	var createdAt time.Time
	if dto.CreatedAt != "" {
		t, err := time.Parse(time.RFC3339, dto.CreatedAt)
		if err != nil {
			return record.Review{}, fmt.Errorf("%w: parse CreatedAt %q: %v", domain.ErrMalformedRecord, dto.CreatedAt, err)
		}
		createdAt = t
	}

	rec, err := record.NewReview(
		dto.ID.value, dto.UserID.value, dto.ProductID.value,
		dto.Rating.value, dto.Message, createdAt,
	)
	if err != nil {
		return record.Review{}, fmt.Errorf("%w: %v", domain.ErrMalformedRecord, err)
	}
	return rec, nil
}
