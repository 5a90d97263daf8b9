package pages

import (
	"net/http"

	"github.com/go-faster/errors"
	"github.com/playwright-community/playwright-go"
)

// MainPage is the site's home page
type MainPage struct {
	page     playwright.Page
	expect   playwright.PlaywrightAssertions
	timeouts Timeouts
}

// NewMainPage creates the home page object
func NewMainPage(page playwright.Page, expect playwright.PlaywrightAssertions, timeouts Timeouts) *MainPage {
	return &MainPage{page: page, expect: expect, timeouts: timeouts}
}

// GoToMainPage opens the base URL and waits until the main view has been
// fetched and its header is visible
func (p *MainPage) GoToMainPage() error {
	resp, err := p.page.ExpectResponse("**/main.html*", func() error {
		_, err := p.page.Goto("/", playwright.PageGotoOptions{
			WaitUntil: playwright.WaitUntilStateLoad,
			Timeout:   ms(p.timeouts.Navigation),
		})
		return err
	}, playwright.PageExpectResponseOptions{
		Timeout: ms(p.timeouts.Navigation),
	})
	if err != nil {
		return errors.Wrap(err, "open main page")
	}
	if resp.Status() != http.StatusOK {
		return errors.Errorf("main view %s: status %d", resp.URL(), resp.Status())
	}

	header := p.page.Locator("h1").GetByText("Jupiter Toys")
	if err := p.expect.Locator(header).ToBeVisible(); err != nil {
		return errors.Wrap(err, "main page header")
	}
	return nil
}

// NavigateToPage opens another page through the menu
func (p *MainPage) NavigateToPage(label string) error {
	return NavigateToPage(p.page, label)
}
