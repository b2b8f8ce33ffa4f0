package users

import (
	"context"
)

type Repository interface {
	Create(ctx context.Context, user *User) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByID(ctx context.Context, id int64) (*User, error)
	// UpdateCart replaces the whole stored cart in a single statement.
	UpdateCart(ctx context.Context, id int64, cart Cart) error
}
