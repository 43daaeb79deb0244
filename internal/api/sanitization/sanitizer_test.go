package sanitization

import "testing"

func TestSanitizeField(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"trims", "  Jane Doe  ", "Jane Doe"},
		{"removes control characters", "Jane\x00\x07 Doe", "Jane Doe"},
		{"newline becomes space", "Jane\nDoe", "Jane Doe"},
		{"keeps markup for the templates to escape", "<b>Jane</b>", "<b>Jane</b>"},
		{"unicode survives", "Kofi Ànan", "Kofi Ànan"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SanitizeField(tt.input); got != tt.expected {
				t.Errorf("SanitizeField(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestSanitizeMessage(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"keeps newlines", "line one\nline two", "line one\nline two"},
		{"normalizes CRLF", "line one\r\nline two\rline three", "line one\nline two\nline three"},
		{"keeps tabs", "a\tb", "a\tb"},
		{"strips other control characters", "a\x1bb", "ab"},
		{"trims surrounding blank lines", "\n\n hello \n", "hello"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SanitizeMessage(tt.input); got != tt.expected {
				t.Errorf("SanitizeMessage(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestSanitizeHeader(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"single line", "Partnership", "Partnership"},
		{"header injection is flattened", "Hi\r\nBcc: victim@example.com", "Hi Bcc: victim@example.com"},
		{"whitespace runs collapse", "a   \t  b", "a b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SanitizeHeader(tt.input); got != tt.expected {
				t.Errorf("SanitizeHeader(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestSanitizeEmail(t *testing.T) {
	if got := SanitizeEmail("  jane@example.com\x00 "); got != "jane@example.com" {
		t.Errorf("SanitizeEmail() = %q", got)
	}
}
