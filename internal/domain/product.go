package domain

import "time"

// Product is a store item. Price is stored in minor currency units.
type Product struct {
	ID          string
	Name        string
	PriceCents  int64
	Image       string
	Category    string
	Description string
	Stock       int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
