package pages

import (
	"strconv"
	"strings"

	"github.com/go-faster/errors"
	"github.com/playwright-community/playwright-go"

	"github.com/planittesting/jupiter-e2e/internal/models"
)

// CartPage is the cart table with its total
type CartPage struct {
	page   playwright.Page
	expect playwright.PlaywrightAssertions
}

// NewCartPage creates the cart page object
func NewCartPage(page playwright.Page, expect playwright.PlaywrightAssertions) *CartPage {
	return &CartPage{page: page, expect: expect}
}

// VerifySubtotal checks the product's subtotal is price times quantity and
// returns it
func (p *CartPage) VerifySubtotal(product string, quantity int, price models.Money) (models.Money, error) {
	want := price.Times(quantity)

	got, err := GetColumnAmount(p.page, p.expect, product, "Subtotal")
	if err != nil {
		return 0, err
	}
	if got != want {
		return 0, errors.Errorf("subtotal of %q: got %s, want %s (%d x %s)", product, got, want, quantity, price)
	}
	return want, nil
}

// VerifyQuantity checks the product's quantity input
func (p *CartPage) VerifyQuantity(product string, quantity int) error {
	value, err := GetColumnValue(p.page, p.expect, product, "Quantity")
	if err != nil {
		return err
	}
	got, err := strconv.Atoi(value)
	if err != nil {
		return errors.Wrapf(err, "quantity of %q", product)
	}
	if got != quantity {
		return errors.Errorf("quantity of %q: got %d, want %d", product, got, quantity)
	}
	return nil
}

// VerifyPrice checks the product's unit price
func (p *CartPage) VerifyPrice(product string, price models.Money) error {
	got, err := GetColumnAmount(p.page, p.expect, product, "Price")
	if err != nil {
		return err
	}
	if got != price {
		return errors.Errorf("price of %q: got %s, want %s", product, got, price)
	}
	return nil
}

// VerifyTotal checks the cart total
func (p *CartPage) VerifyTotal(total models.Money) error {
	loc := p.page.Locator(".total.ng-binding")
	if err := p.expect.Locator(loc).ToBeVisible(); err != nil {
		return errors.Wrap(err, "cart total")
	}
	text, err := loc.InnerText()
	if err != nil {
		return errors.Wrap(err, "read cart total")
	}

	got, err := models.ParseMoney(strings.TrimPrefix(strings.TrimSpace(text), "Total: "))
	if err != nil {
		return errors.Wrapf(err, "cart total %q", text)
	}
	if got != total {
		return errors.Errorf("cart total: got %s, want %s", got, total)
	}
	return nil
}
