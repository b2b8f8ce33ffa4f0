package products

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/stitchline/storefront/internal/common"
)

const (
	newCollectionSize  = 8
	popularSectionSize = 4
	popularCategory    = "women"
	allocationAttempts = 3
	allocationBackoff  = 10 * time.Millisecond
)

// Service implements catalog operations. Catalog ids come from a scan of
// the current maximum, which is not atomic with the insert: two concurrent
// Add calls can allocate the same id. The UNIQUE constraint on item_id is
// the backstop, and allocate+insert is retried as one unit on that conflict.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Add validates the product, assigns the next catalog id and persists it.
func (s *Service) Add(ctx context.Context, product *Product) (*Product, error) {

	if product.Name == "" || product.Image == "" || product.Category == "" || product.NewPrice <= 0 {
		return nil, common.ErrorValidation
	}

	product.Available = true

	backoff := retry.WithMaxRetries(allocationAttempts, retry.NewConstant(allocationBackoff))

	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		itemID, err := s.repo.NextItemID(ctx)
		if err != nil {
			return err
		}
		product.ItemID = itemID

		_, err = s.repo.Create(ctx, product)
		if errors.Is(err, common.ErrorAlreadyExists) {
			// Lost the allocation race; re-scan and try again.
			return retry.RetryableError(err)
		}
		return err
	})
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, common.ErrorAlreadyExists
		}
		return nil, fmt.Errorf("error adding product: %w", err)
	}

	return product, nil
}

// Remove deletes a product by store record identity and returns its name.
func (s *Service) Remove(ctx context.Context, id int64) (string, error) {
	if id <= 0 {
		return "", common.ErrorValidation
	}
	return s.repo.Delete(ctx, id)
}

// All returns the full catalog in insertion order.
func (s *Service) All(ctx context.Context) ([]*Product, error) {
	return s.repo.List(ctx)
}

// NewCollection returns the last eight products by insertion order.
func (s *Service) NewCollection(ctx context.Context) ([]*Product, error) {
	return s.repo.ListLast(ctx, newCollectionSize)
}

// PopularInWomen returns the first four products of the "women" category.
func (s *Service) PopularInWomen(ctx context.Context) ([]*Product, error) {
	return s.repo.ListByCategory(ctx, popularCategory, popularSectionSize)
}
