package models

import (
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Feedback fields, named as the contact form labels them
const (
	FieldForename  = "Forename"
	FieldSurname   = "Surname"
	FieldEmail     = "Email"
	FieldTelephone = "Telephone"
	FieldMessage   = "Message"
)

var (
	emailPattern     = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	telephonePattern = regexp.MustCompile(`^[0-9 ()+-]{6,20}$`)
)

// Feedback is a message submitted through the contact form
type Feedback struct {
	ID        string
	Forename  string
	Surname   string
	Email     string
	Telephone string
	Message   string
	CreatedAt time.Time
}

// ValidationError lists the contact form fields that failed validation,
// keyed by field name, with the message the form shows under each field
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	msgs := make([]string, 0, len(names))
	for _, name := range names {
		msgs = append(msgs, e.Fields[name])
	}
	return "invalid feedback: " + strings.Join(msgs, "; ")
}

// RequiredMessage returns the error text shown for an empty mandatory field
func RequiredMessage(field string) string {
	return field + " is required"
}

// NewFeedback validates the form values and creates a feedback entry.
// Forename, email and message are mandatory. Email and telephone must be
// well formed when present.
func NewFeedback(forename, surname, email, telephone, message string) (*Feedback, error) {
	f := &Feedback{
		Forename:  strings.TrimSpace(forename),
		Surname:   strings.TrimSpace(surname),
		Email:     strings.TrimSpace(email),
		Telephone: strings.TrimSpace(telephone),
		Message:   strings.TrimSpace(message),
	}

	if err := f.Validate(); err != nil {
		return nil, err
	}

	f.ID = uuid.New().String()
	f.CreatedAt = time.Now()
	return f, nil
}

// Validate checks the form values, returning a *ValidationError
func (f *Feedback) Validate() error {
	fields := map[string]string{}

	if f.Forename == "" {
		fields[FieldForename] = RequiredMessage(FieldForename)
	}
	if f.Email == "" {
		fields[FieldEmail] = RequiredMessage(FieldEmail)
	} else if !emailPattern.MatchString(f.Email) {
		fields[FieldEmail] = "Please enter a valid email"
	}
	if f.Telephone != "" && !telephonePattern.MatchString(f.Telephone) {
		fields[FieldTelephone] = "Please enter a valid telephone number"
	}
	if f.Message == "" {
		fields[FieldMessage] = RequiredMessage(FieldMessage)
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// ThankYouMessage returns the confirmation shown once feedback is sent
func (f *Feedback) ThankYouMessage() string {
	return "Thanks " + f.Forename + ", we appreciate your feedback."
}
