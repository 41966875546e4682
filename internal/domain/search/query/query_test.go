package query

import "testing"

func TestNew_Defaults(t *testing.T) {
	p, err := New("", "", "", "", 0, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Page() != DefaultPage {
		t.Errorf("Page() = %d, want %d", p.Page(), DefaultPage)
	}
	if p.Limit() != DefaultLimit {
		t.Errorf("Limit() = %d, want %d", p.Limit(), DefaultLimit)
	}
	if p.Text() != "" || p.Type() != "" || p.Flavor() != "" || p.Status() != "" {
		t.Error("expected all criteria to be empty")
	}
}

func TestNew_ExplicitValues(t *testing.T) {
	p, err := New("hoppy", "Beer", "Hoppy", "shipped", 3, 25)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Text() != "hoppy" {
		t.Errorf("Text() = %q", p.Text())
	}
	if p.Type() != "Beer" {
		t.Errorf("Type() = %q", p.Type())
	}
	if p.Flavor() != "Hoppy" {
		t.Errorf("Flavor() = %q", p.Flavor())
	}
	if p.Status() != "shipped" {
		t.Errorf("Status() = %q", p.Status())
	}
	if p.Page() != 3 {
		t.Errorf("Page() = %d", p.Page())
	}
	if p.Limit() != 25 {
		t.Errorf("Limit() = %d", p.Limit())
	}
}

func TestNew_NegativePage(t *testing.T) {
	_, err := New("", "", "", "", -1, 10)
	if err == nil {
		t.Fatal("expected error for negative page")
	}
}

func TestNew_NegativeLimit(t *testing.T) {
	_, err := New("", "", "", "", 1, -5)
	if err == nil {
		t.Fatal("expected error for negative limit")
	}
}

func TestNew_LimitClamped(t *testing.T) {
	p, err := New("", "", "", "", 1, MaxLimit+50)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Limit() != MaxLimit {
		t.Errorf("Limit() = %d, want clamp to %d", p.Limit(), MaxLimit)
	}
}
