// Package templates renders the two emails sent for every contact submission.
package templates

import (
	"bytes"
	"embed"
	"fmt"
	htmltemplate "html/template"
	"strings"
	texttemplate "text/template"
	"time"

	"github.com/osa911/contactapi/internal/models"
)

//go:embed files/*
var files embed.FS

const receivedAtLayout = "January 2, 2006, 3:04 pm MST"

// Rendered is one fully rendered email
type Rendered struct {
	Subject string
	HTML    string
	Text    string
}

// Renderer renders admin notifications and submitter confirmations
type Renderer struct {
	brand    models.Brand
	location *time.Location
	html     *htmltemplate.Template
	text     *texttemplate.Template
}

type templateData struct {
	Submission models.ContactSubmission
	Brand      models.Brand
	ReceivedAt string
}

// NewRenderer parses the embedded templates. loc controls how the received-at time is printed;
// nil means UTC.
func NewRenderer(brand models.Brand, loc *time.Location) (*Renderer, error) {
	if loc == nil {
		loc = time.UTC
	}

	html, err := htmltemplate.New("html").
		Funcs(htmltemplate.FuncMap{"nl2br": nl2br}).
		ParseFS(files, "files/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse html templates: %w", err)
	}

	text, err := texttemplate.New("text").ParseFS(files, "files/*.txt")
	if err != nil {
		return nil, fmt.Errorf("failed to parse text templates: %w", err)
	}

	return &Renderer{
		brand:    brand,
		location: loc,
		html:     html,
		text:     text,
	}, nil
}

// Brand returns the brand the renderer was built with
func (r *Renderer) Brand() models.Brand {
	return r.brand
}

// RenderAdminNotification renders the email sent to the administrator
func (r *Renderer) RenderAdminNotification(sub models.ContactSubmission, receivedAt time.Time) (Rendered, error) {
	data := templateData{
		Submission: sub,
		Brand:      r.brand,
		ReceivedAt: receivedAt.In(r.location).Format(receivedAtLayout),
	}
	return r.render("admin_notification", "New Contact Form Submission: "+sub.Subject, data)
}

// RenderConfirmation renders the confirmation sent back to the submitter
func (r *Renderer) RenderConfirmation(sub models.ContactSubmission) (Rendered, error) {
	data := templateData{
		Submission: sub,
		Brand:      r.brand,
	}
	return r.render("confirmation", "Thank you for contacting "+r.brand.Name, data)
}

func (r *Renderer) render(name, subject string, data templateData) (Rendered, error) {
	var html, text bytes.Buffer

	if err := r.html.ExecuteTemplate(&html, name+".html", data); err != nil {
		return Rendered{}, fmt.Errorf("failed to render %s html: %w", name, err)
	}
	if err := r.text.ExecuteTemplate(&text, name+".txt", data); err != nil {
		return Rendered{}, fmt.Errorf("failed to render %s text: %w", name, err)
	}

	return Rendered{
		Subject: subject,
		HTML:    html.String(),
		Text:    text.String(),
	}, nil
}

// nl2br escapes s and turns every newline into an explicit <br>
func nl2br(s string) htmltemplate.HTML {
	escaped := htmltemplate.HTMLEscapeString(s)
	return htmltemplate.HTML(strings.ReplaceAll(escaped, "\n", "<br>"))
}
