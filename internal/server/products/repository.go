package products

import (
	"context"
)

type Repository interface {
	// NextItemID returns one more than the highest assigned catalog id,
	// or 1 for an empty catalog. The read is not atomic with a following
	// Create; callers must retry on a uniqueness conflict.
	NextItemID(ctx context.Context) (int64, error)
	Create(ctx context.Context, product *Product) (*Product, error)
	// Delete removes a product by store record identity and returns its name.
	Delete(ctx context.Context, id int64) (string, error)
	List(ctx context.Context) ([]*Product, error)
	// ListLast returns the n most recently inserted products in insertion order.
	ListLast(ctx context.Context, n int) ([]*Product, error)
	// ListByCategory returns the first n products of a category in insertion order.
	ListByCategory(ctx context.Context, category string, n int) ([]*Product, error)
}
