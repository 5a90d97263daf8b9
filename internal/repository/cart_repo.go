package repository

import (
	"context"
	"sync"

	"github.com/planittesting/jupiter-e2e/internal/models"
)

// CartRepository keeps one cart per browser session in memory. Carts live as
// long as the replica process, like the live site's client-side cart lives
// as long as the browser context.
type CartRepository struct {
	mu    sync.Mutex
	carts map[string]*models.Cart
}

// NewCartRepository creates an empty cart store
func NewCartRepository() *CartRepository {
	return &CartRepository{carts: map[string]*models.Cart{}}
}

// Update runs fn on the session's cart under the store lock, creating the
// cart on first use, and returns a snapshot of the result
func (r *CartRepository) Update(_ context.Context, sessionID string, fn func(*models.Cart) error) (*models.Cart, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	cart, ok := r.carts[sessionID]
	if !ok {
		var err error
		if cart, err = models.NewCart(sessionID); err != nil {
			return nil, err
		}
	}

	if err := fn(cart); err != nil {
		return nil, err
	}
	r.carts[sessionID] = cart

	return snapshot(cart), nil
}

// GetCart returns a snapshot of the session's cart, empty if it has none
func (r *CartRepository) GetCart(_ context.Context, sessionID string) (*models.Cart, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if cart, ok := r.carts[sessionID]; ok {
		return snapshot(cart), nil
	}
	return models.NewCart(sessionID)
}

func snapshot(c *models.Cart) *models.Cart {
	out := *c
	out.Items = append([]models.CartItem(nil), c.Items...)
	return &out
}
