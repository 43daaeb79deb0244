package models

// Brand holds the organisation details printed in emails and fallback messages
type Brand struct {
	Name          string
	Tagline       string
	Location      string
	Website       string
	Phone         string
	WhatsApp      string
	Email         string
	BusinessHours string
}

// WhatsAppLink returns a wa.me link for the configured WhatsApp number, or "" if none
func (b Brand) WhatsAppLink() string {
	digits := make([]rune, 0, len(b.WhatsApp))
	for _, r := range b.WhatsApp {
		if r >= '0' && r <= '9' {
			digits = append(digits, r)
		}
	}
	if len(digits) == 0 {
		return ""
	}
	return "https://wa.me/" + string(digits)
}

// HasDirectContact reports whether at least one alternative channel is configured
func (b Brand) HasDirectContact() bool {
	return b.Phone != "" || b.WhatsApp != "" || b.Email != ""
}
