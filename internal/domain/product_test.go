package domain

import (
	"testing"

	"github.com/shopspring/decimal"
)

func newLaptop(t *testing.T) *Product {
	t.Helper()
	price, err := NewMoney(decimal.RequireFromString("899.99"), "USD")
	if err != nil {
		t.Fatalf("NewMoney: %v", err)
	}
	p, err := NewProduct("Laptop", "15 inch laptop", price, 10, "Electronics")
	if err != nil {
		t.Fatalf("NewProduct: %v", err)
	}
	return p
}

func TestNewProductDefaults(t *testing.T) {
	p := newLaptop(t)

	if p.ID.String() == "00000000-0000-0000-0000-000000000000" {
		t.Fatalf("expected generated id")
	}
	if !p.Active {
		t.Fatalf("expected new product to be active")
	}
	if p.Stock != 10 {
		t.Fatalf("expected stock 10, got %d", p.Stock)
	}
	if !p.CreatedAt.Equal(p.UpdatedAt) {
		t.Fatalf("expected createdAt == updatedAt at creation")
	}
}

func TestNewProductIDsAreTimeOrdered(t *testing.T) {
	first := newLaptop(t)
	second := newLaptop(t)
	if first.ID.String() >= second.ID.String() {
		t.Fatalf("expected v7 ids to sort by creation order: %s vs %s", first.ID, second.ID)
	}
}

func TestUpdate(t *testing.T) {
	p := newLaptop(t)
	newPrice, err := NewMoney(decimal.RequireFromString("799.99"), "EUR")
	if err != nil {
		t.Fatalf("NewMoney: %v", err)
	}

	if err := p.Update("Laptop Pro", "updated", newPrice, 5, "Computers"); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if p.Name != "Laptop Pro" || p.Stock != 5 || p.Category != "Computers" {
		t.Fatalf("Update did not replace fields: %+v", p)
	}
	if !p.Price.Equal(newPrice) {
		t.Fatalf("Update did not replace price")
	}
	if p.UpdatedAt.Before(p.CreatedAt) {
		t.Fatalf("updatedAt must not precede createdAt")
	}
}

func TestUpdateRejectedOnInactiveProduct(t *testing.T) {
	p := newLaptop(t)
	if err := p.Deactivate(); err != nil {
		t.Fatalf("Deactivate: %v", err)
	}

	before := *p
	newPrice, _ := NewMoney(decimal.RequireFromString("1.00"), "USD")
	err := p.Update("Other", "other", newPrice, 99, "Other Category")
	if err != ErrInactiveProduct {
		t.Fatalf("expected ErrInactiveProduct, got %v", err)
	}
	if p.Name != before.Name || p.Stock != before.Stock || !p.Price.Equal(before.Price) {
		t.Fatalf("failed update must leave fields unchanged")
	}
}

func TestAddStock(t *testing.T) {
	cases := []struct {
		name      string
		quantity  int
		wantErr   error
		wantStock int
	}{
		{name: "positive", quantity: 5, wantErr: nil, wantStock: 15},
		{name: "zero", quantity: 0, wantErr: ErrInvalidQuantity, wantStock: 10},
		{name: "negative", quantity: -3, wantErr: ErrInvalidQuantity, wantStock: 10},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := newLaptop(t)
			err := p.AddStock(tc.quantity)
			if err != tc.wantErr {
				t.Fatalf("AddStock(%d)=%v, want %v", tc.quantity, err, tc.wantErr)
			}
			if p.Stock != tc.wantStock {
				t.Fatalf("stock=%d, want %d", p.Stock, tc.wantStock)
			}
		})
	}
}

func TestRemoveStock(t *testing.T) {
	cases := []struct {
		name      string
		quantity  int
		wantErr   error
		wantStock int
	}{
		{name: "partial", quantity: 4, wantErr: nil, wantStock: 6},
		{name: "all", quantity: 10, wantErr: nil, wantStock: 0},
		{name: "more_than_available", quantity: 15, wantErr: ErrInsufficientStock, wantStock: 10},
		{name: "zero", quantity: 0, wantErr: ErrInvalidQuantity, wantStock: 10},
		{name: "negative", quantity: -1, wantErr: ErrInvalidQuantity, wantStock: 10},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := newLaptop(t)
			err := p.RemoveStock(tc.quantity)
			if err != tc.wantErr {
				t.Fatalf("RemoveStock(%d)=%v, want %v", tc.quantity, err, tc.wantErr)
			}
			if p.Stock != tc.wantStock {
				t.Fatalf("stock=%d, want %d", p.Stock, tc.wantStock)
			}
		})
	}
}

func TestActivateDeactivateOnlyWhenChanging(t *testing.T) {
	p := newLaptop(t)

	if err := p.Activate(); err != ErrAlreadyActive {
		t.Fatalf("Activate on active product: got %v, want ErrAlreadyActive", err)
	}
	if !p.Active {
		t.Fatalf("failed activate must leave state unchanged")
	}

	if err := p.Deactivate(); err != nil {
		t.Fatalf("Deactivate: %v", err)
	}
	if p.Active {
		t.Fatalf("expected inactive after Deactivate")
	}

	if err := p.Deactivate(); err != ErrAlreadyInactive {
		t.Fatalf("Deactivate on inactive product: got %v, want ErrAlreadyInactive", err)
	}

	if err := p.Activate(); err != nil {
		t.Fatalf("Activate: %v", err)
	}
	if !p.Active {
		t.Fatalf("expected active after Activate")
	}
}
