package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/tapcellar/searchgate/internal/domain"
	"github.com/tapcellar/searchgate/internal/domain/resource"
)

type mockFetcher struct {
	raws     []json.RawMessage
	err      error
	lastKind resource.Kind
	calls    int
}

func (m *mockFetcher) FetchCollection(_ context.Context, kind resource.Kind) ([]json.RawMessage, error) {
	m.calls++
	m.lastKind = kind
	return m.raws, m.err
}

func TestInventory_DropsMalformedAndPreservesOrder(t *testing.T) {
	fetcher := &mockFetcher{raws: []json.RawMessage{
		json.RawMessage(`{"Id": 2, "Name": "Sweet Ale"}`),
		json.RawMessage(`{"Name": "no id"}`),
		json.RawMessage(`{"Id": 1, "Name": "Hoppy Beer"}`),
	}}
	repo := New(fetcher)

	records, err := repo.Inventory(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].ID() != 2 || records[1].ID() != 1 {
		t.Errorf("upstream order not preserved: got [%d %d]", records[0].ID(), records[1].ID())
	}
	if fetcher.lastKind != resource.Inventory {
		t.Errorf("fetched kind = %q", fetcher.lastKind)
	}
}

func TestOrders_PropagatesFetchError(t *testing.T) {
	wantErr := domain.NewUpstreamError(503, "Service unavailable")
	repo := New(&mockFetcher{err: wantErr})

	_, err := repo.Orders(context.Background())
	if !errors.Is(err, domain.ErrUpstream) {
		t.Fatalf("expected upstream error, got %v", err)
	}
	var ue *domain.UpstreamError
	if !errors.As(err, &ue) || ue.StatusCode != 503 {
		t.Errorf("expected status 503 preserved, got %v", err)
	}
}

func TestUsers_EmptyCollection(t *testing.T) {
	repo := New(&mockFetcher{raws: []json.RawMessage{}})

	records, err := repo.Users(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("expected no records, got %d", len(records))
	}
}

func TestReviews_AllMalformed(t *testing.T) {
	fetcher := &mockFetcher{raws: []json.RawMessage{
		json.RawMessage(`{"Rating": "bad"}`),
		json.RawMessage(`"not an object"`),
	}}
	repo := New(fetcher)

	records, err := repo.Reviews(context.Background())
	if err != nil {
		t.Fatalf("corrupt records must not fail the collection: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("expected all records dropped, got %d", len(records))
	}
}
