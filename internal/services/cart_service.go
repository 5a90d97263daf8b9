package services

import (
	"context"

	"github.com/go-faster/errors"

	"github.com/planittesting/jupiter-e2e/internal/models"
)

// CartRepository defines the interface for per-session cart storage
type CartRepository interface {
	Update(ctx context.Context, sessionID string, fn func(*models.Cart) error) (*models.Cart, error)
	GetCart(ctx context.Context, sessionID string) (*models.Cart, error)
}

// CartService handles the shop's Buy buttons and the cart page
type CartService interface {
	Catalog() *models.Catalog
	AddProduct(ctx context.Context, sessionID string, productID int) (*models.Cart, error)
	SetQuantity(ctx context.Context, sessionID string, productID, quantity int) (*models.Cart, error)
	EmptyCart(ctx context.Context, sessionID string) (*models.Cart, error)
	GetCart(ctx context.Context, sessionID string) (*models.Cart, error)
}

// CartServiceImpl implements CartService
type CartServiceImpl struct {
	catalog *models.Catalog
	carts   CartRepository
}

// NewCartService creates a cart service selling from the catalog
func NewCartService(catalog *models.Catalog, carts CartRepository) CartService {
	return &CartServiceImpl{
		catalog: catalog,
		carts:   carts,
	}
}

// Catalog returns the products on sale
func (s *CartServiceImpl) Catalog() *models.Catalog {
	return s.catalog
}

// AddProduct adds one unit of a catalog product to the session's cart
func (s *CartServiceImpl) AddProduct(ctx context.Context, sessionID string, productID int) (*models.Cart, error) {
	product, err := s.catalog.FindByID(productID)
	if err != nil {
		return nil, err
	}

	cart, err := s.carts.Update(ctx, sessionID, func(c *models.Cart) error {
		return c.Add(product, 1)
	})
	if err != nil {
		return nil, errors.Wrap(err, "add to cart")
	}
	return cart, nil
}

// SetQuantity changes the quantity of a line already in the cart
func (s *CartServiceImpl) SetQuantity(ctx context.Context, sessionID string, productID, quantity int) (*models.Cart, error) {
	cart, err := s.carts.Update(ctx, sessionID, func(c *models.Cart) error {
		return c.SetQuantity(productID, quantity)
	})
	if err != nil {
		return nil, errors.Wrap(err, "set quantity")
	}
	return cart, nil
}

// EmptyCart removes every line from the session's cart
func (s *CartServiceImpl) EmptyCart(ctx context.Context, sessionID string) (*models.Cart, error) {
	cart, err := s.carts.Update(ctx, sessionID, func(c *models.Cart) error {
		c.Empty()
		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "empty cart")
	}
	return cart, nil
}

// GetCart returns the session's cart
func (s *CartServiceImpl) GetCart(ctx context.Context, sessionID string) (*models.Cart, error) {
	cart, err := s.carts.GetCart(ctx, sessionID)
	if err != nil {
		return nil, errors.Wrap(err, "get cart")
	}
	return cart, nil
}
