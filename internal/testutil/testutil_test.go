package testutil

import (
	"testing"
)

func TestTestLogger(t *testing.T) {
	l := TestLogger(t)
	if l == nil {
		t.Fatal("expected non-nil logger")
	}
	l.Info("written through t.Log")
}

func TestNewRecord_Defaults(t *testing.T) {
	r := NewRecord("Open Weather")
	if r.ID != "open-weather" {
		t.Errorf("ID = %q, want open-weather", r.ID)
	}
	if r.Category != "Development" {
		t.Errorf("Category = %q, want Development", r.Category)
	}
	if !r.IsFree() {
		t.Error("expected default pricing to be free")
	}
}

func TestNewRecord_WithOptions(t *testing.T) {
	r := NewRecord("Stripe",
		WithID("stripe-v2"),
		WithCategory("Payment"),
		WithAuthType("OAuth"),
		WithPricing("2.9% per charge"),
		WithDescription("Payment processing"),
	)
	if r.ID != "stripe-v2" {
		t.Errorf("ID = %q, want stripe-v2", r.ID)
	}
	if r.Category != "Payment" {
		t.Errorf("Category = %q, want Payment", r.Category)
	}
	if r.AuthType != "OAuth" {
		t.Errorf("AuthType = %q, want OAuth", r.AuthType)
	}
	if r.IsFree() {
		t.Error("expected non-free pricing")
	}
	if r.Description != "Payment processing" {
		t.Errorf("Description = %q, want Payment processing", r.Description)
	}
}

func TestNewCatalog(t *testing.T) {
	cat := NewCatalog(t, NewRecord("A"), NewRecord("B"))
	if cat.Len() != 2 {
		t.Fatalf("Len = %d, want 2", cat.Len())
	}
}
