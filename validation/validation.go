// Package validation holds the form rules shared by every registry screen.
package validation

import (
	"net/mail"
	"regexp"
	"strings"
)

const PhoneDigits = 10

var (
	nonDigits      = regexp.MustCompile(`\D`)
	licensePattern = regexp.MustCompile(`^[A-Z]{2,3}\d{6,10}$`)
)

// CleanPhone strips every non-digit character.
func CleanPhone(phone string) string {
	return nonDigits.ReplaceAllString(phone, "")
}

// ValidPhone reports whether the cleaned number has exactly ten digits.
func ValidPhone(phone string) bool {
	return len(CleanPhone(phone)) == PhoneDigits
}

// ValidLicense reports whether a medical license number is two or three
// upper case letters followed by six to ten digits.
func ValidLicense(license string) bool {
	return licensePattern.MatchString(strings.TrimSpace(license))
}

func ValidEmail(email string) bool {
	addr, err := mail.ParseAddress(email)
	return err == nil && addr.Address == email
}

type Error struct {
	Message string
}

func NewValidationError(message string) *Error {
	return &Error{Message: message}
}

// Errors maps form field names to the message shown next to the field.
type Errors map[string]*Error

func (e Errors) Add(field, message string) {
	if _, exists := e[field]; !exists {
		e[field] = NewValidationError(message)
	}
}

func (e Errors) HasErrors() bool {
	return len(e) > 0
}

// Message returns the message for a field, used by templates.
func (e Errors) Message(field string) string {
	if err, ok := e[field]; ok && err != nil {
		return err.Message
	}
	return ""
}

func (e Errors) Required(field, value, label string) {
	if strings.TrimSpace(value) == "" {
		e.Add(field, label+" is required")
	}
}

func (e Errors) Phone(field, value string) {
	if !ValidPhone(value) {
		e.Add(field, "Phone number must have exactly 10 digits")
	}
}

// OptionalPhone validates the phone only when something was typed.
func (e Errors) OptionalPhone(field, value string) {
	if strings.TrimSpace(value) != "" {
		e.Phone(field, value)
	}
}

func (e Errors) OptionalEmail(field, value string) {
	if strings.TrimSpace(value) != "" && !ValidEmail(strings.TrimSpace(value)) {
		e.Add(field, "The email address is not valid")
	}
}

func (e Errors) License(field, value string) {
	if !ValidLicense(value) {
		e.Add(field, "License number must be 2-3 capital letters followed by 6-10 digits")
	}
}

func (e Errors) OneOf(field, value string, allowed ...string) {
	for _, a := range allowed {
		if value == a {
			return
		}
	}
	e.Add(field, "Please choose one of: "+strings.Join(allowed, ", "))
}
