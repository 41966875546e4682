package catalog

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/tapcellar/searchgate/internal/domain"
)

func TestInventoryFromRaw_FullRecord(t *testing.T) {
	raw := json.RawMessage(`{
		"Id": 1, "Name": "Hoppy Beer", "Type": "Beer",
		"Description": "A hoppy delight",
		"TasteProfile": {"PrimaryFlavor": "Hoppy"}
	}`)

	rec, err := inventoryFromRaw(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.ID() != 1 || rec.Name() != "Hoppy Beer" || rec.Type() != "Beer" {
		t.Errorf("unexpected record: %+v", rec)
	}
	if rec.Taste().PrimaryFlavor() != "Hoppy" {
		t.Errorf("PrimaryFlavor = %q", rec.Taste().PrimaryFlavor())
	}
}

func TestInventoryFromRaw_StringID(t *testing.T) {
	rec, err := inventoryFromRaw(json.RawMessage(`{"Id": "7", "Name": "Ale"}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.ID() != 7 {
		t.Errorf("ID = %d, want 7", rec.ID())
	}
}

func TestInventoryFromRaw_MissingID(t *testing.T) {
	_, err := inventoryFromRaw(json.RawMessage(`{"Name": "Ale"}`))
	if !errors.Is(err, domain.ErrMalformedRecord) {
		t.Fatalf("expected ErrMalformedRecord, got %v", err)
	}
}

func TestInventoryFromRaw_NonIntegerID(t *testing.T) {
	_, err := inventoryFromRaw(json.RawMessage(`{"Id": "1.5", "Name": "Ale"}`))
	if !errors.Is(err, domain.ErrMalformedRecord) {
		t.Fatalf("expected ErrMalformedRecord for non-integer id, got %v", err)
	}
}

// Numeric fields arriving as text coerce via standard decimal parsing.
func TestOrderFromRaw_StringPriceCoercion(t *testing.T) {
	raw := json.RawMessage(`{"Id": 1, "OwnerId": 2, "TotalPrice": "10.99", "Status": "shipped"}`)

	rec, err := orderFromRaw(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.TotalPrice() != 10.99 {
		t.Errorf("TotalPrice = %v, want 10.99", rec.TotalPrice())
	}
}

func TestOrderFromRaw_UnparsablePrice(t *testing.T) {
	raw := json.RawMessage(`{"Id": 1, "OwnerId": 2, "TotalPrice": "ten dollars"}`)
	_, err := orderFromRaw(raw)
	if !errors.Is(err, domain.ErrMalformedRecord) {
		t.Fatalf("expected ErrMalformedRecord, got %v", err)
	}
}

func TestOrderFromRaw_MissingOwner(t *testing.T) {
	_, err := orderFromRaw(json.RawMessage(`{"Id": 1, "TotalPrice": 5}`))
	if !errors.Is(err, domain.ErrMalformedRecord) {
		t.Fatalf("expected ErrMalformedRecord, got %v", err)
	}
}

func TestUserFromRaw(t *testing.T) {
	rec, err := userFromRaw(json.RawMessage(`{"Id": 3, "Name": "Ada", "Email": "ada@example.com"}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.ID() != 3 || rec.Email() != "ada@example.com" {
		t.Errorf("unexpected record: %+v", rec)
	}
}

func TestReviewFromRaw_StringRatingAndTimestamp(t *testing.T) {
	raw := json.RawMessage(`{
		"Id": 9, "UserId": 3, "ProductId": 1,
		"Rating": "4.5", "Message": "great",
		"CreatedAt": "2025-06-01T12:00:00Z"
	}`)

	rec, err := reviewFromRaw(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Rating() != 4.5 {
		t.Errorf("Rating = %v, want 4.5", rec.Rating())
	}
	if rec.CreatedAt().IsZero() {
		t.Error("CreatedAt should be set")
	}
}

func TestReviewFromRaw_AbsentTimestamp(t *testing.T) {
	rec, err := reviewFromRaw(json.RawMessage(`{"Id": 9, "Rating": 4}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !rec.CreatedAt().IsZero() {
		t.Error("absent CreatedAt should yield zero time")
	}
}

func TestReviewFromRaw_BadTimestamp(t *testing.T) {
	_, err := reviewFromRaw(json.RawMessage(`{"Id": 9, "Rating": 4, "CreatedAt": "yesterday"}`))
	if !errors.Is(err, domain.ErrMalformedRecord) {
		t.Fatalf("expected ErrMalformedRecord, got %v", err)
	}
}
