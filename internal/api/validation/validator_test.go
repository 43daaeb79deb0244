package validation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidEmail(t *testing.T) {
	tests := []struct {
		email string
		valid bool
	}{
		{"jane@example.com", true},
		{"first.last+tag@sub.example.co.uk", true},
		{"a@b.c", true},
		{"", false},
		{"plainaddress", false},
		{"missing-at.example.com", false},
		{"user@nodot", false},
		{"user@@example.com", false},
		{"user name@example.com", false},
		{"user@exa mple.com", false},
		{"@example.com", false},
		{"user@.", false},
		// Match the pattern but are rejected by the mail library's address parser
		{"jane..doe@example.com", false},
		{"jane.@example.com", false},
		{"a(b@example.com", false},
	}

	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			assert.Equal(t, tt.valid, IsValidEmail(tt.email))
		})
	}
}

type contactFields struct {
	Name    string `validate:"required"`
	Email   string `validate:"required,contactemail"`
	Phone   string
	Subject string `validate:"required"`
	Message string `validate:"required"`
}

func TestFormatValidationError(t *testing.T) {
	v := New()

	tests := []struct {
		name     string
		input    contactFields
		expected []string
	}{
		{
			name:     "valid",
			input:    contactFields{Name: "Jane", Email: "jane@example.com", Subject: "Hi", Message: "Hello"},
			expected: nil,
		},
		{
			name:  "everything missing",
			input: contactFields{},
			expected: []string{
				"Name is required",
				"Valid email is required",
				"Subject is required",
				"Message is required",
			},
		},
		{
			name:     "bad email only",
			input:    contactFields{Name: "Jane", Email: "jane@", Subject: "Hi", Message: "Hello"},
			expected: []string{"Valid email is required"},
		},
		{
			name:     "phone is optional",
			input:    contactFields{Name: "Jane", Email: "jane@example.com", Phone: "", Subject: "Hi"},
			expected: []string{"Message is required"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(tt.input)
			if tt.expected == nil {
				assert.NoError(t, err)
				return
			}
			assert.Equal(t, tt.expected, FormatValidationError(err))
		})
	}
}

func TestFormatValidationErrorIgnoresOtherErrors(t *testing.T) {
	assert.Nil(t, FormatValidationError(errors.New("boom")))
	assert.Nil(t, FormatValidationError(nil))
}
