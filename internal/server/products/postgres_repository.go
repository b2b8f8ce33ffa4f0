package products

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/stitchline/storefront/internal/common"
)

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) (*PostgresRepository, error) {
	return &PostgresRepository{db: db}, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}

func (r *PostgresRepository) NextItemID(ctx context.Context) (int64, error) {

	query := `SELECT COALESCE(MAX(item_id), 0) + 1 FROM products`

	var next int64
	if err := r.db.QueryRowContext(ctx, query).Scan(&next); err != nil {
		return 0, fmt.Errorf("error performing sql request: %w", err)
	}

	return next, nil
}

func (r *PostgresRepository) Create(ctx context.Context, product *Product) (*Product, error) {

	query :=
		`INSERT INTO products (item_id, name, image, category, new_price, old_price, available)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id, created_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		product.ItemID, product.Name, product.Image, product.Category,
		product.NewPrice, product.OldPrice, product.Available).
		Scan(&product.ID, &product.CreatedAt)

	if err != nil {
		// item_id carries a UNIQUE constraint; a violation here means a
		// concurrent writer allocated the same catalog id.
		if isUniqueViolation(err) {
			return nil, common.ErrorAlreadyExists
		}
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}

	return product, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id int64) (string, error) {

	query := `DELETE FROM products WHERE id = $1 RETURNING name`

	var name string
	err := r.db.QueryRowContext(ctx, query, id).Scan(&name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", common.ErrorNotFound
		}
		return "", fmt.Errorf("error performing sql request: %w", err)
	}

	return name, nil
}

const productColumns = `id, item_id, name, image, category, new_price, old_price, available, created_at`

func (r *PostgresRepository) queryProducts(ctx context.Context, query string, args ...any) ([]*Product, error) {

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}
	defer rows.Close()

	products := []*Product{}
	for rows.Next() {
		p := &Product{}
		err := rows.Scan(&p.ID, &p.ItemID, &p.Name, &p.Image, &p.Category,
			&p.NewPrice, &p.OldPrice, &p.Available, &p.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return products, nil
}

func (r *PostgresRepository) List(ctx context.Context) ([]*Product, error) {
	query := `SELECT ` + productColumns + ` FROM products ORDER BY id`
	return r.queryProducts(ctx, query)
}

func (r *PostgresRepository) ListLast(ctx context.Context, n int) ([]*Product, error) {
	query := `SELECT ` + productColumns + ` FROM (
		SELECT ` + productColumns + ` FROM products ORDER BY id DESC LIMIT $1
	) recent ORDER BY id`
	return r.queryProducts(ctx, query, n)
}

func (r *PostgresRepository) ListByCategory(ctx context.Context, category string, n int) ([]*Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE category = $1 ORDER BY id LIMIT $2`
	return r.queryProducts(ctx, query, category, n)
}
