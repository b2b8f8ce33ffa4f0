package users

import (
	"context"
	"database/sql"
	"encoding/json"
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

func (r *PostgresRepository) Create(ctx context.Context, user *User) (*User, error) {

	cart, err := json.Marshal(user.Cart)
	if err != nil {
		return nil, fmt.Errorf("error encoding cart: %w", err)
	}

	query :=
		`INSERT INTO users (name, email, password_hash, cart)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at
		 `

	err = r.db.QueryRowContext(ctx, query,
		user.Name, user.Email, user.PasswordHash, cart).Scan(&user.ID, &user.CreatedAt)

	if err != nil {
		// The email uniqueness constraint is the backstop for concurrent
		// signups with the same address.
		if isUniqueViolation(err) {
			return nil, common.ErrorAlreadyExists
		}
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}

	return user, nil
}

func (r *PostgresRepository) scanUser(row *sql.Row) (*User, error) {
	user := &User{}
	var cart []byte

	err := row.Scan(&user.ID, &user.Name, &user.Email, &user.PasswordHash, &cart, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}

	if err := json.Unmarshal(cart, &user.Cart); err != nil {
		return nil, fmt.Errorf("error decoding cart: %w", err)
	}

	return user, nil
}

func (r *PostgresRepository) GetByEmail(ctx context.Context, email string) (*User, error) {
	query :=
		`SELECT id, name, email, password_hash, cart, created_at FROM users
		 WHERE email = $1
		 `

	return r.scanUser(r.db.QueryRowContext(ctx, query, email))
}

func (r *PostgresRepository) GetByID(ctx context.Context, id int64) (*User, error) {
	query :=
		`SELECT id, name, email, password_hash, cart, created_at FROM users
		 WHERE id = $1
		 `

	return r.scanUser(r.db.QueryRowContext(ctx, query, id))
}

func (r *PostgresRepository) UpdateCart(ctx context.Context, id int64, cart Cart) error {

	encoded, err := json.Marshal(cart)
	if err != nil {
		return fmt.Errorf("error encoding cart: %w", err)
	}

	query := `UPDATE users SET cart = $2 WHERE id = $1`

	res, err := r.db.ExecContext(ctx, query, id, encoded)
	if err != nil {
		return fmt.Errorf("error performing sql request: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("error reading rows affected: %w", err)
	}
	if affected == 0 {
		return common.ErrorNotFound
	}

	return nil
}
