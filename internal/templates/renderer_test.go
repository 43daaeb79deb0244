package templates

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osa911/contactapi/internal/models"
)

func testBrand() models.Brand {
	return models.Brand{
		Name:     "DeliaNexus",
		Tagline:  "Fashion • Digital • Health",
		Location: "Accra, Ghana",
		Phone:    "0302 555 0100",
		WhatsApp: "+233 20 000 0000",
		Email:    "hello@example.com",
	}
}

func testSubmission() models.ContactSubmission {
	return models.ContactSubmission{
		Name:    "Jane Doe",
		Email:   "jane@example.com",
		Subject: "Partnership",
		Message: "First line\nSecond line",
	}
}

func newTestRenderer(t *testing.T, brand models.Brand) *Renderer {
	t.Helper()
	r, err := NewRenderer(brand, time.UTC)
	require.NoError(t, err)
	return r
}

func TestRenderAdminNotification(t *testing.T) {
	r := newTestRenderer(t, testBrand())
	receivedAt := time.Date(2024, 3, 9, 14, 5, 0, 0, time.UTC)

	out, err := r.RenderAdminNotification(testSubmission(), receivedAt)
	require.NoError(t, err)

	assert.Equal(t, "New Contact Form Submission: Partnership", out.Subject)
	assert.Contains(t, out.HTML, "Jane Doe")
	assert.Contains(t, out.HTML, "mailto:jane@example.com")
	assert.Contains(t, out.HTML, "First line<br>Second line")
	assert.Contains(t, out.HTML, "March 9, 2024, 2:05 pm UTC")

	assert.Contains(t, out.Text, "From: Jane Doe")
	assert.Contains(t, out.Text, "First line\nSecond line")
	assert.NotContains(t, out.Text, "<br>")
	assert.Contains(t, out.Text, "Received on: March 9, 2024, 2:05 pm UTC")
}

func TestRenderAdminNotificationPhone(t *testing.T) {
	r := newTestRenderer(t, testBrand())

	tests := []struct {
		name  string
		phone string
		shown bool
	}{
		{"without phone", "", false},
		{"with phone", "024 123 4567", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sub := testSubmission()
			sub.Phone = tt.phone

			out, err := r.RenderAdminNotification(sub, time.Now())
			require.NoError(t, err)

			assert.Equal(t, tt.shown, strings.Contains(out.HTML, ">Phone<"))
			assert.Equal(t, tt.shown, strings.Contains(out.Text, "Phone:"))
			if tt.shown {
				assert.Contains(t, out.HTML, tt.phone)
				assert.Contains(t, out.Text, "Phone: "+tt.phone)
			}
		})
	}
}

func TestRenderEscapesUserInput(t *testing.T) {
	r := newTestRenderer(t, testBrand())

	sub := testSubmission()
	sub.Name = `<script>alert("x")</script>`
	sub.Subject = "<b>bold</b>"
	sub.Message = "<img src=x onerror=alert(1)>\nbye"

	admin, err := r.RenderAdminNotification(sub, time.Now())
	require.NoError(t, err)
	confirmation, err := r.RenderConfirmation(sub)
	require.NoError(t, err)

	for _, html := range []string{admin.HTML, confirmation.HTML} {
		assert.NotContains(t, html, "<script>")
		assert.NotContains(t, html, "<b>bold</b>")
		assert.NotContains(t, html, "<img")
		assert.Contains(t, html, "&lt;script&gt;")
		assert.Contains(t, html, "&lt;img src=x onerror=alert(1)&gt;<br>bye")
	}

	// Plain text bodies carry the input as typed
	assert.Contains(t, admin.Text, "<b>bold</b>")
}

func TestRenderConfirmation(t *testing.T) {
	r := newTestRenderer(t, testBrand())

	out, err := r.RenderConfirmation(testSubmission())
	require.NoError(t, err)

	assert.Equal(t, "Thank you for contacting DeliaNexus", out.Subject)
	assert.Contains(t, out.HTML, "Dear Jane Doe,")
	assert.Contains(t, out.HTML, "First line<br>Second line")
	assert.Contains(t, out.HTML, "https://wa.me/233200000000")
	assert.Contains(t, out.HTML, "Accra, Ghana")

	assert.Contains(t, out.Text, "Dear Jane Doe,")
	assert.Contains(t, out.Text, "regarding: Partnership")
	assert.Contains(t, out.Text, "Phone: 0302 555 0100")
	assert.Contains(t, out.Text, "Email: hello@example.com")
}

func TestRenderConfirmationWithoutDirectContact(t *testing.T) {
	r := newTestRenderer(t, models.Brand{Name: "Acme"})

	out, err := r.RenderConfirmation(testSubmission())
	require.NoError(t, err)

	assert.NotContains(t, out.HTML, "reach us directly")
	assert.NotContains(t, out.Text, "For immediate assistance")
	assert.NotContains(t, out.HTML, "Visit Our Website")
}

func TestNewRendererNilLocation(t *testing.T) {
	r, err := NewRenderer(testBrand(), nil)
	require.NoError(t, err)

	out, err := r.RenderAdminNotification(testSubmission(), time.Date(2024, 1, 2, 3, 4, 0, 0, time.FixedZone("WAT", 3600)))
	require.NoError(t, err)
	assert.Contains(t, out.Text, "January 2, 2024, 2:04 am UTC")
}

func TestNl2br(t *testing.T) {
	assert.Equal(t, "a<br>b&lt;c&gt;", string(nl2br("a\nb<c>")))
}
