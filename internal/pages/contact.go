package pages

import (
	"fmt"
	"strings"

	"github.com/go-faster/errors"
	"github.com/playwright-community/playwright-go"

	"github.com/planittesting/jupiter-e2e/internal/models"
)

const (
	// ContactInfoMessage is the contact page header before any submission
	ContactInfoMessage = "We welcome your feedback - tell it how it is."
	// HeaderErrorMessage replaces the header when the form is invalid
	HeaderErrorMessage = "We welcome your feedback - but we won't get it unless you complete the form correctly."
)

// ContactPage is the feedback form
type ContactPage struct {
	page     playwright.Page
	expect   playwright.PlaywrightAssertions
	timeouts Timeouts
}

// NewContactPage creates the contact page object
func NewContactPage(page playwright.Page, expect playwright.PlaywrightAssertions, timeouts Timeouts) *ContactPage {
	return &ContactPage{page: page, expect: expect, timeouts: timeouts}
}

// EnsureContactPageIsVisible waits for the page to load and checks the
// welcome header and the URL
func (p *ContactPage) EnsureContactPageIsVisible() error {
	if err := p.page.WaitForLoadState(); err != nil {
		return errors.Wrap(err, "load contact page")
	}

	header := p.page.Locator("#header-message").GetByText(ContactInfoMessage)
	if err := p.expect.Locator(header).ToBeVisible(); err != nil {
		return errors.Wrap(err, "contact page header")
	}

	if url := p.page.URL(); !strings.Contains(url, "/contact") {
		return errors.Errorf("expected a /contact URL, got %s", url)
	}
	return nil
}

// ClickSubmitButton submits the form. When no alert is showing the form is
// being sent, so it also waits for the button to disappear.
func (p *ContactPage) ClickSubmitButton() error {
	submit := p.page.Locator(".btn-contact.btn.btn-primary").Filter(playwright.LocatorFilterOptions{
		HasText: "Submit",
	})
	if err := submit.ScrollIntoViewIfNeeded(); err != nil {
		return errors.Wrap(err, "scroll to submit button")
	}
	if err := submit.Click(); err != nil {
		return errors.Wrap(err, "click submit button")
	}

	hidden, err := p.page.Locator(".alert").IsHidden()
	if err != nil {
		return errors.Wrap(err, "check header alert")
	}
	if hidden {
		if err := submit.WaitFor(playwright.LocatorWaitForOptions{
			State:   playwright.WaitForSelectorStateHidden,
			Timeout: ms(p.timeouts.Submission),
		}); err != nil {
			return errors.Wrap(err, "wait for form to be sent")
		}
	}
	return nil
}

// VerifyHeaderErrorMessage checks whether the header shows the invalid form
// message
func (p *ContactPage) VerifyHeaderErrorMessage(expected bool) error {
	return p.VerifyHeaderMessage(HeaderErrorMessage, expected)
}

// VerifyHeaderMessage checks whether the header alert reads message
func (p *ContactPage) VerifyHeaderMessage(message string, expected bool) error {
	alert := p.expect.Locator(p.page.Locator(".alert"))

	var err error
	if expected {
		err = alert.ToHaveText(message)
	} else {
		err = alert.Not().ToHaveText(message)
	}
	if err != nil {
		return errors.Wrapf(err, "header message %q (expected %t)", message, expected)
	}
	return nil
}

// VerifyFieldErrorMessage checks the "<field> is required" message of each
// field is shown, or not, and that no other field shows one
func (p *ContactPage) VerifyFieldErrorMessage(fields []string, expected bool) error {
	for _, field := range fields {
		msg := p.expect.Locator(p.page.GetByText(models.RequiredMessage(field), playwright.PageGetByTextOptions{
			Exact: playwright.Bool(true),
		}))

		var err error
		if expected {
			err = msg.ToBeVisible()
		} else {
			err = msg.Not().ToBeVisible()
		}
		if err != nil {
			return errors.Wrapf(err, "%s error message (expected %t)", field, expected)
		}
	}

	count, err := p.page.GetByText(" is required").Count()
	if err != nil {
		return errors.Wrap(err, "count field errors")
	}

	want := 0
	if expected {
		want = len(fields)
	}
	if count != want {
		return errors.Errorf("expected %d field errors, got %d", want, count)
	}
	return nil
}

// SetForename fills the forename and waits for its error to go away
func (p *ContactPage) SetForename(forename string) error {
	return p.setMandatory("#forename", "Forename", forename)
}

// SetEmail fills the email and waits for its error to go away
func (p *ContactPage) SetEmail(email string) error {
	return p.setMandatory("#email", "Email", email)
}

// SetMessage fills the message and waits for its error to go away
func (p *ContactPage) SetMessage(message string) error {
	return p.setMandatory("#message", "Message", message)
}

func (p *ContactPage) setMandatory(selector, field, value string) error {
	if err := PopulateField(p.page, p.expect, selector, value); err != nil {
		return err
	}
	if err := p.expect.Locator(p.page.GetByText(models.RequiredMessage(field))).Not().ToBeVisible(); err != nil {
		return errors.Wrapf(err, "%s error message still shown", field)
	}
	return nil
}

// VerifySuccessfulSubmissionMessage waits for the sending dialog to close
// and for the thank you message addressed to forename
func (p *ContactPage) VerifySuccessfulSubmissionMessage(forename string) error {
	if err := p.page.GetByText("Sending Feedback").WaitFor(playwright.LocatorWaitForOptions{
		State:   playwright.WaitForSelectorStateHidden,
		Timeout: ms(p.timeouts.Submission),
	}); err != nil {
		return errors.Wrap(err, "wait for feedback to be sent")
	}

	success := p.page.Locator(".alert.alert-success").GetByText(
		fmt.Sprintf("Thanks %s, we appreciate your feedback.", forename),
	)
	if err := p.expect.Locator(success).ToBeVisible(playwright.LocatorAssertionsToBeVisibleOptions{
		Timeout: ms(p.timeouts.Submission),
	}); err != nil {
		return errors.Wrap(err, "success message")
	}
	return nil
}
