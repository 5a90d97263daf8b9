package models

import (
	"strings"

	"github.com/go-faster/errors"
)

// Product is a toy sold in the shop
type Product struct {
	ID       int
	Name     string
	Price    Money
	ImageURL string
}

// ErrProductNotFound is returned when a catalog lookup misses
var ErrProductNotFound = errors.New("product not found")

// Catalog is the ordered list of products shown on the shop page
type Catalog struct {
	products []Product
}

// NewCatalog creates a catalog from the given products, keeping their order
func NewCatalog(products ...Product) *Catalog {
	return &Catalog{products: append([]Product(nil), products...)}
}

// DefaultCatalog returns the toys listed by the Jupiter Toys demo shop
func DefaultCatalog() *Catalog {
	return NewCatalog(
		Product{ID: 1, Name: "Teddy Bear", Price: 1299, ImageURL: "/static/images/teddy-bear.svg"},
		Product{ID: 2, Name: "Stuffed Frog", Price: 1099, ImageURL: "/static/images/stuffed-frog.svg"},
		Product{ID: 3, Name: "Handmade Doll", Price: 1099, ImageURL: "/static/images/handmade-doll.svg"},
		Product{ID: 4, Name: "Fluffy Bunny", Price: 999, ImageURL: "/static/images/fluffy-bunny.svg"},
		Product{ID: 5, Name: "Smiley Bear", Price: 1499, ImageURL: "/static/images/smiley-bear.svg"},
		Product{ID: 6, Name: "Funny Cow", Price: 1099, ImageURL: "/static/images/funny-cow.svg"},
		Product{ID: 7, Name: "Valentine Bear", Price: 1499, ImageURL: "/static/images/valentine-bear.svg"},
		Product{ID: 8, Name: "Smiley Face", Price: 999, ImageURL: "/static/images/smiley-face.svg"},
	)
}

// Products returns a copy of the catalog contents
func (c *Catalog) Products() []Product {
	return append([]Product(nil), c.products...)
}

// FindByID looks a product up by id
func (c *Catalog) FindByID(id int) (Product, error) {
	for _, p := range c.products {
		if p.ID == id {
			return p, nil
		}
	}
	return Product{}, errors.Wrapf(ErrProductNotFound, "id %d", id)
}

// FindByName looks a product up by its exact name, ignoring case and
// surrounding whitespace
func (c *Catalog) FindByName(name string) (Product, error) {
	name = strings.TrimSpace(name)
	for _, p := range c.products {
		if strings.EqualFold(p.Name, name) {
			return p, nil
		}
	}
	return Product{}, errors.Wrapf(ErrProductNotFound, "name %q", name)
}
