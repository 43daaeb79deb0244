package contact

import "github.com/osa911/contactapi/internal/models"

// ContactRequest represents a contact form submission.
// Fields are bound from JSON or form-encoded bodies and validated after sanitization.
type ContactRequest struct {
	Name    string `json:"name" form:"name" validate:"required"`
	Email   string `json:"email" form:"email" validate:"required,contactemail"`
	Phone   string `json:"phone" form:"phone"`
	Subject string `json:"subject" form:"subject" validate:"required"`
	Message string `json:"message" form:"message" validate:"required"`
}

// ToSubmission converts the validated request into the service model
func (r *ContactRequest) ToSubmission() models.ContactSubmission {
	return models.ContactSubmission{
		Name:    r.Name,
		Email:   r.Email,
		Phone:   r.Phone,
		Subject: r.Subject,
		Message: r.Message,
	}
}
