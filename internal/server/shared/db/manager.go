package db

import (
	"context"
	"database/sql"

	"github.com/stitchline/storefront/internal/server/products"
	"github.com/stitchline/storefront/internal/server/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context) error
	Conn() *sql.DB
	Users() users.Repository
	Products() products.Repository
}
