package service

import "context"

// Address is a mailbox with an optional display name
type Address struct {
	Name  string
	Email string
}

// Email is a fully rendered message ready for dispatch
type Email struct {
	From    Address
	To      Address
	Cc      []string
	ReplyTo *Address
	Subject string
	HTML    string
	Text    string
}

// Mailer hands a message to the mail relay. Implementations must be safe for concurrent use.
type Mailer interface {
	Send(ctx context.Context, email *Email) error
}
