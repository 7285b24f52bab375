package domain

import (
	"time"

	"github.com/google/uuid"
)

// Product is the aggregate root. Mutations go through the named methods
// below, which enforce the lifecycle invariants and re-stamp UpdatedAt.
// Field-format rules (name/category lengths and so on) are the request
// layer's job; the aggregate only guards its behavioral invariants.
type Product struct {
	ID          uuid.UUID
	Name        string
	Description string
	Price       Money
	Stock       int
	Category    string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Active      bool

	// Version is the optimistic concurrency token observed at load time.
	// The repository bumps it on every successful save.
	Version int64
}

// NewProduct stamps a fresh time-ordered id, sets Active and initializes
// both timestamps to the same instant.
func NewProduct(name, description string, price Money, stock int, category string) (*Product, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	return &Product{
		ID:          id,
		Name:        name,
		Description: description,
		Price:       price,
		Stock:       stock,
		Category:    category,
		CreatedAt:   now,
		UpdatedAt:   now,
		Active:      true,
	}, nil
}

// Update replaces all five mutable fields atomically. It is rejected, not
// ignored, on an inactive product.
func (p *Product) Update(name, description string, price Money, stock int, category string) error {
	if !p.Active {
		return ErrInactiveProduct
	}
	p.Name = name
	p.Description = description
	p.Price = price
	p.Stock = stock
	p.Category = category
	p.touch()
	return nil
}

func (p *Product) AddStock(quantity int) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}
	p.Stock += quantity
	p.touch()
	return nil
}

func (p *Product) RemoveStock(quantity int) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}
	if quantity > p.Stock {
		return ErrInsufficientStock
	}
	p.Stock -= quantity
	p.touch()
	return nil
}

// Activate is only legal when it changes the flag.
func (p *Product) Activate() error {
	if p.Active {
		return ErrAlreadyActive
	}
	p.Active = true
	p.touch()
	return nil
}

// Deactivate is only legal when it changes the flag.
func (p *Product) Deactivate() error {
	if !p.Active {
		return ErrAlreadyInactive
	}
	p.Active = false
	p.touch()
	return nil
}

func (p *Product) touch() {
	p.UpdatedAt = time.Now().UTC()
}
