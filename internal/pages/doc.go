// Package pages holds the page objects of the Jupiter Toys site. Each page
// object wraps the locators of one page and exposes actions and verifications
// that return an error when the page does not reach the expected state.
//
// Verifications go through playwright.PlaywrightAssertions and retry until
// the assertion timeout, so callers never sleep.
package pages
