package models

import (
	"time"

	"github.com/go-faster/errors"
)

// CartItem is one line of the cart: a product and how many of it
type CartItem struct {
	Product  Product
	Quantity int
}

// Subtotal returns unit price times quantity
func (i CartItem) Subtotal() Money {
	return i.Product.Price.Times(i.Quantity)
}

// Cart holds the items a visitor added during their session
type Cart struct {
	SessionID string
	Items     []CartItem
	UpdatedAt time.Time
}

// Domain errors
var (
	ErrInvalidQuantity  = errors.New("quantity must be positive")
	ErrInvalidSessionID = errors.New("session id cannot be empty")
	ErrItemNotInCart    = errors.New("item not in cart")
)

// NewCart creates an empty cart for a session
func NewCart(sessionID string) (*Cart, error) {
	if sessionID == "" {
		return nil, ErrInvalidSessionID
	}
	return &Cart{
		SessionID: sessionID,
		UpdatedAt: time.Now(),
	}, nil
}

// Add puts quantity units of a product in the cart. Adding a product that is
// already in the cart increases its quantity, keeping its original position.
func (c *Cart) Add(product Product, quantity int) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}

	for i := range c.Items {
		if c.Items[i].Product.ID == product.ID {
			c.Items[i].Quantity += quantity
			c.UpdatedAt = time.Now()
			return nil
		}
	}

	c.Items = append(c.Items, CartItem{Product: product, Quantity: quantity})
	c.UpdatedAt = time.Now()
	return nil
}

// SetQuantity replaces the quantity of a product already in the cart. A zero
// quantity removes the line.
func (c *Cart) SetQuantity(productID, quantity int) error {
	if quantity < 0 {
		return ErrInvalidQuantity
	}

	for i := range c.Items {
		if c.Items[i].Product.ID != productID {
			continue
		}
		if quantity == 0 {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
		} else {
			c.Items[i].Quantity = quantity
		}
		c.UpdatedAt = time.Now()
		return nil
	}

	return errors.Wrapf(ErrItemNotInCart, "product %d", productID)
}

// Empty removes every line
func (c *Cart) Empty() {
	c.Items = nil
	c.UpdatedAt = time.Now()
}

// Count returns the number of units in the cart, as shown next to the Cart
// menu entry
func (c *Cart) Count() int {
	n := 0
	for _, item := range c.Items {
		n += item.Quantity
	}
	return n
}

// Total returns the sum of the line subtotals
func (c *Cart) Total() Money {
	var total Money
	for _, item := range c.Items {
		total += item.Subtotal()
	}
	return total
}

// IsEmpty returns true if the cart holds no items
func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}
