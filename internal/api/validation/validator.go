package validation

import (
	"errors"
	"regexp"

	"github.com/go-playground/validator/v10"
	"github.com/wneessen/go-mail"
)

// emailRegex accepts local@domain.tld: no whitespace, exactly one @ and a dot in the domain
var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// fieldMessages maps struct fields to the message shown when they fail validation
var fieldMessages = map[string]string{
	"Name":    "Name is required",
	"Email":   "Valid email is required",
	"Subject": "Subject is required",
	"Message": "Message is required",
}

// New returns a validator with the custom rules registered
func New() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	RegisterValidators(v)
	return v
}

// RegisterValidators registers custom validators
func RegisterValidators(v *validator.Validate) {
	v.RegisterValidation("contactemail", validateEmail)
}

// IsValidEmail checks an address against the contact form email pattern.
// The address must also be accepted as a recipient by the mailer, otherwise a typo such as
// "jane..doe@example.com" would only surface as a failed dispatch.
func IsValidEmail(email string) bool {
	if !emailRegex.MatchString(email) {
		return false
	}
	return mail.NewMsg().To(email) == nil
}

// validateEmail checks if the email is valid
func validateEmail(fl validator.FieldLevel) bool {
	return IsValidEmail(fl.Field().String())
}

// FormatValidationError turns validator errors into user-facing messages, one per field,
// in struct field order. Errors that are not validation errors yield nil.
func FormatValidationError(err error) []string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return nil
	}

	seen := make(map[string]bool)
	var messages []string
	for _, e := range validationErrors {
		field := e.StructField()
		if seen[field] {
			continue
		}
		seen[field] = true

		msg, ok := fieldMessages[field]
		if !ok {
			msg = field + " is invalid"
		}
		messages = append(messages, msg)
	}
	return messages
}
