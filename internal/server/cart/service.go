// Package cart implements the per-user cart state manager. The cart is a
// sparse quantity map owned by the user record; every mutation loads the
// full map, changes one entry and writes the whole map back.
package cart

import (
	"context"
	"fmt"

	"github.com/stitchline/storefront/internal/common"
	"github.com/stitchline/storefront/internal/server/users"
)

// Service mutates cart state through the users repository.
//
// Known limitation: a mutation is two store round trips (read, then
// whole-map overwrite), not an atomic increment. Two concurrent mutations
// for the same user can both read the same prior quantity and one update is
// lost. Fixing this requires an atomic per-key delta in the store or
// per-user serialization of cart writes.
type Service struct {
	repo users.Repository
}

func NewService(repo users.Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) load(ctx context.Context, userID int64) (*users.User, error) {
	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.Cart == nil {
		user.Cart = users.Cart{}
	}
	return user, nil
}

// Add increments the quantity for itemID by one, treating absence as zero,
// and returns the updated map.
func (s *Service) Add(ctx context.Context, userID, itemID int64) (users.Cart, error) {

	if itemID <= 0 {
		return nil, common.ErrorValidation
	}

	user, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}

	user.Cart[itemID]++

	if err := s.repo.UpdateCart(ctx, userID, user.Cart); err != nil {
		return nil, fmt.Errorf("error saving cart: %w", err)
	}

	return user.Cart, nil
}

// Remove decrements the quantity for itemID by one. A quantity reaching
// zero is deleted from the map rather than stored as an explicit zero.
// Removing an item with no positive quantity recorded is a validation
// failure.
func (s *Service) Remove(ctx context.Context, userID, itemID int64) (users.Cart, error) {

	if itemID <= 0 {
		return nil, common.ErrorValidation
	}

	user, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}

	if user.Cart[itemID] <= 0 {
		return nil, common.ErrorValidation
	}

	user.Cart[itemID]--
	if user.Cart[itemID] == 0 {
		delete(user.Cart, itemID)
	}

	if err := s.repo.UpdateCart(ctx, userID, user.Cart); err != nil {
		return nil, fmt.Errorf("error saving cart: %w", err)
	}

	return user.Cart, nil
}

// Get returns the stored map verbatim: no defaulting, no zero-filling.
func (s *Service) Get(ctx context.Context, userID int64) (users.Cart, error) {
	user, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	return user.Cart, nil
}
