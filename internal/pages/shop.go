package pages

import (
	"strconv"
	"strings"

	"github.com/go-faster/errors"
	"github.com/playwright-community/playwright-go"

	"github.com/planittesting/jupiter-e2e/internal/models"
)

// ShopPage lists the products with their Buy buttons
type ShopPage struct {
	page   playwright.Page
	expect playwright.PlaywrightAssertions
}

// NewShopPage creates the shop page object
func NewShopPage(page playwright.Page, expect playwright.PlaywrightAssertions) *ShopPage {
	return &ShopPage{page: page, expect: expect}
}

// EnsureShopPageIsVisible waits for the page to load and checks that
// products are listed and the URL is the shop's
func (p *ShopPage) EnsureShopPageIsVisible() error {
	if err := p.page.WaitForLoadState(); err != nil {
		return errors.Wrap(err, "load shop page")
	}

	products := p.page.Locator(".product.ng-scope")
	if err := p.expect.Locator(products.First()).ToBeVisible(); err != nil {
		return errors.Wrap(err, "first product")
	}
	n, err := products.Count()
	if err != nil {
		return errors.Wrap(err, "count products")
	}
	if n == 0 {
		return errors.New("shop lists no products")
	}

	if url := p.page.URL(); !strings.Contains(url, "/shop") {
		return errors.Errorf("expected a /shop URL, got %s", url)
	}
	return nil
}

// AddProductToCart clicks the product's Buy button, checks the cart count
// went up by one and returns the product's unit price
func (p *ShopPage) AddProductToCart(product string) (models.Money, error) {
	item := p.page.Locator(".product.ng-scope").Filter(playwright.LocatorFilterOptions{
		HasText: product,
	})
	if err := p.expect.Locator(item).ToBeVisible(); err != nil {
		return 0, errors.Wrapf(err, "product %q", product)
	}

	cartCount := p.page.Locator("#nav-cart > a > span")
	if err := p.expect.Locator(cartCount).ToBeVisible(); err != nil {
		return 0, errors.Wrap(err, "cart count")
	}
	text, err := cartCount.InnerText()
	if err != nil {
		return 0, errors.Wrap(err, "read cart count")
	}
	count, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return 0, errors.Wrapf(err, "cart count %q", text)
	}

	priceText, err := item.Locator(".product-price.ng-binding").InnerText()
	if err != nil {
		return 0, errors.Wrapf(err, "read price of %q", product)
	}
	price, err := models.ParseMoney(priceText)
	if err != nil {
		return 0, errors.Wrapf(err, "price of %q", product)
	}

	buy := item.Locator(".btn.btn-success")
	if err := buy.ScrollIntoViewIfNeeded(); err != nil {
		return 0, errors.Wrapf(err, "scroll to Buy %q", product)
	}
	if err := buy.Click(); err != nil {
		return 0, errors.Wrapf(err, "click Buy %q", product)
	}

	if err := p.expect.Locator(cartCount).ToHaveText(strconv.Itoa(count + 1)); err != nil {
		return 0, errors.Wrapf(err, "cart count after buying %q", product)
	}
	return price, nil
}
