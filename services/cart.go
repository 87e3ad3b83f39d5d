package services

import (
	"context"
	"errors"

	"github.com/Myusername84/food-server/models"
	"github.com/Myusername84/food-server/store"
)

// CartService exposes the session user's cart: the priced aggregation view
// and the line-item mutations, all scoped to that user's cart.
type CartService struct {
	carts store.CartStore
}

func NewCartService(carts store.CartStore) *CartService {
	return &CartService{carts: carts}
}

// ViewCart returns the priced, denormalized cart view. A missing or empty
// cart yields an empty slice; dangling product references are dropped by the
// join.
func (s *CartService) ViewCart(ctx context.Context, userID int) ([]models.CartLine, error) {
	return s.carts.ViewCart(ctx, userID)
}

// AddItem accumulates: an existing line for the product is incremented by
// count, otherwise a new line is appended.
func (s *CartService) AddItem(ctx context.Context, userID, productID, count int) error {
	if productID <= 0 || count <= 0 {
		return ErrInvalidInput
	}

	err := s.carts.AddItem(ctx, userID, productID, count)
	if errors.Is(err, store.ErrCartNotFound) {
		return ErrNotFound
	}
	return err
}

// SetItemCount overwrites the line's count (no positivity check: a zero or
// negative count is stored as given) and returns the refreshed view.
func (s *CartService) SetItemCount(ctx context.Context, userID, productID, count int) ([]models.CartLine, error) {
	if productID <= 0 {
		return nil, ErrInvalidInput
	}

	if err := s.carts.SetItemCount(ctx, userID, productID, count); err != nil {
		if errors.Is(err, store.ErrItemNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return s.carts.ViewCart(ctx, userID)
}

// RemoveItem deletes the product's line from this user's cart only and
// returns the refreshed view.
func (s *CartService) RemoveItem(ctx context.Context, userID, productID int) ([]models.CartLine, error) {
	if productID <= 0 {
		return nil, ErrInvalidInput
	}

	if err := s.carts.RemoveItem(ctx, userID, productID); err != nil {
		if errors.Is(err, store.ErrCartNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return s.carts.ViewCart(ctx, userID)
}
