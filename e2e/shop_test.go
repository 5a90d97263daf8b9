//go:build e2e

package e2e

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/planittesting/jupiter-e2e/internal/models"
	"github.com/planittesting/jupiter-e2e/internal/pages"
	"github.com/planittesting/jupiter-e2e/internal/suite"
)

// lineItem is one product the journey buys. price is filled in from the shop
// page as the product is added.
type lineItem struct {
	product  string
	quantity int
	price    models.Money
}

func TestShop(t *testing.T) {
	s.Test(t, "Buy items", func(t *testing.T, f *suite.Fixture) {
		items := []*lineItem{
			{product: "Stuffed Frog", quantity: 2},
			{product: "Fluffy Bunny", quantity: 5},
			{product: "Valentine Bear", quantity: 3},
		}
		var total models.Money

		suite.Step(t, "Step 1 - Go to Shopping Page", func(t *testing.T) {
			require.NoError(t, pages.NavigateToPage(f.Page, "Shop"))
			require.NoError(t, f.ShopPage.EnsureShopPageIsVisible())
		})

		suite.Step(t, "Step 2 - Add products to cart", func(t *testing.T) {
			for _, item := range items {
				for i := 1; i <= item.quantity; i++ {
					name := fmt.Sprintf("Step 2-%d - Add %q to cart (%d of %d)", i, item.product, i, item.quantity)
					suite.Step(t, name, func(t *testing.T) {
						price, err := f.ShopPage.AddProductToCart(item.product)
						require.NoError(t, err)
						item.price = price
					})
				}
			}
		})

		suite.Step(t, "Step 3 - Go to Cart Page", func(t *testing.T) {
			require.NoError(t, pages.NavigateToPage(f.Page, "Cart"))
		})

		suite.Step(t, "Step 4 - Verify the subtotals and quantities for each product", func(t *testing.T) {
			for i, item := range items {
				name := fmt.Sprintf("Step 4-%d - Verify %q is %d x %s", i+1, item.product, item.quantity, item.price)
				suite.Step(t, name, func(t *testing.T) {
					subtotal, err := f.CartPage.VerifySubtotal(item.product, item.quantity, item.price)
					require.NoError(t, err)
					require.NoError(t, f.CartPage.VerifyQuantity(item.product, item.quantity))
					total += subtotal
				})
			}
		})

		suite.Step(t, "Step 5 - Verify the prices for each product", func(t *testing.T) {
			for i, item := range items {
				name := fmt.Sprintf("Step 5-%d - Verify the price of %q is %s", i+1, item.product, item.price)
				suite.Step(t, name, func(t *testing.T) {
					require.NoError(t, f.CartPage.VerifyPrice(item.product, item.price))
				})
			}
		})

		suite.Step(t, fmt.Sprintf("Step 6 - Verify that total = sum of the sub totals (%s)", total), func(t *testing.T) {
			require.NoError(t, f.CartPage.VerifyTotal(total))
		})
	}, suite.Tag("@RegressionTest"))
}
