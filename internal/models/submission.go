package models

// ContactSubmission is one contact form payload. It lives for a single request and is never stored.
type ContactSubmission struct {
	Name    string
	Email   string
	Phone   string // optional
	Subject string
	Message string
}

// HasPhone reports whether the submitter left a phone number
func (s ContactSubmission) HasPhone() bool {
	return s.Phone != ""
}
