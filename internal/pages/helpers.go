package pages

import (
	"strings"
	"time"

	"github.com/go-faster/errors"
	"github.com/playwright-community/playwright-go"

	"github.com/planittesting/jupiter-e2e/internal/models"
)

// Timeouts bound the waits that outlast the assertion timeout
type Timeouts struct {
	// Navigation bounds page loads and the responses they wait for
	Navigation time.Duration
	// Submission bounds the contact form round trip
	Submission time.Duration
}

func ms(d time.Duration) *float64 {
	return playwright.Float(float64(d.Milliseconds()))
}

// GetMenuLink returns the navigation menu entry whose text contains label
func GetMenuLink(page playwright.Page, label string) playwright.Locator {
	return page.Locator("ul > li").Filter(playwright.LocatorFilterOptions{
		HasText: label,
	})
}

// NavigateToPage clicks the menu entry for label and waits for the new page
// to load
func NavigateToPage(page playwright.Page, label string) error {
	link := GetMenuLink(page, label)
	if err := link.ScrollIntoViewIfNeeded(); err != nil {
		return errors.Wrapf(err, "scroll to %q menu link", label)
	}
	if err := link.Click(); err != nil {
		return errors.Wrapf(err, "click %q menu link", label)
	}
	if err := page.WaitForLoadState(playwright.PageWaitForLoadStateOptions{
		State: playwright.LoadStateLoad,
	}); err != nil {
		return errors.Wrapf(err, "load %q page", label)
	}
	return nil
}

// PopulateField fills the field matched by selector and waits until it
// holds value
func PopulateField(page playwright.Page, expect playwright.PlaywrightAssertions, selector, value string) error {
	field := page.Locator(selector)
	if err := field.Fill(value); err != nil {
		return errors.Wrapf(err, "fill %s", selector)
	}
	if err := expect.Locator(field).ToHaveValue(value); err != nil {
		return errors.Wrapf(err, "value of %s", selector)
	}
	return nil
}

// GetColumnValue returns the text of the cell under the column header named
// column, in the table row containing rowText. Cells holding an input return
// the input's value.
func GetColumnValue(page playwright.Page, expect playwright.PlaywrightAssertions, rowText, column string) (string, error) {
	headers := page.Locator("table thead th")
	if err := expect.Locator(headers.First()).ToBeVisible(); err != nil {
		return "", errors.Wrap(err, "table headers")
	}
	names, err := headers.AllInnerTexts()
	if err != nil {
		return "", errors.Wrap(err, "read table headers")
	}
	idx, err := columnIndex(names, column)
	if err != nil {
		return "", err
	}

	row := page.Locator("table tbody tr").Filter(playwright.LocatorFilterOptions{
		HasText: rowText,
	})
	if err := expect.Locator(row).ToBeVisible(); err != nil {
		return "", errors.Wrapf(err, "row %q", rowText)
	}

	cell := row.Locator("td").Nth(idx)
	input := cell.Locator("input")
	n, err := input.Count()
	if err != nil {
		return "", errors.Wrapf(err, "%s of %q", column, rowText)
	}

	var value string
	if n > 0 {
		value, err = input.First().InputValue()
	} else {
		value, err = cell.InnerText()
	}
	if err != nil {
		return "", errors.Wrapf(err, "read %s of %q", column, rowText)
	}
	return strings.TrimSpace(value), nil
}

// GetColumnAmount is GetColumnValue parsed as a dollar amount
func GetColumnAmount(page playwright.Page, expect playwright.PlaywrightAssertions, rowText, column string) (models.Money, error) {
	value, err := GetColumnValue(page, expect, rowText, column)
	if err != nil {
		return 0, err
	}
	amount, err := models.ParseMoney(value)
	if err != nil {
		return 0, errors.Wrapf(err, "%s of %q", column, rowText)
	}
	return amount, nil
}

func columnIndex(headers []string, column string) (int, error) {
	for i, h := range headers {
		if strings.EqualFold(strings.TrimSpace(h), column) {
			return i, nil
		}
	}
	return 0, errors.Errorf("no %q column in %q", column, headers)
}
