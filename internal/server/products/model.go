package products

import "time"

// Product is one catalog entry. ID is the store's record identity
// (assigned by the database); ItemID is the public sequential catalog
// identifier handed out by the allocator. Products are never mutated in
// place, only created and removed.
type Product struct {
	ID        int64
	ItemID    int64
	Name      string
	Image     string
	Category  string
	NewPrice  float64
	OldPrice  float64
	Available bool
	CreatedAt time.Time
}
