package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/osa911/contactapi/internal/api/sanitization"
	"github.com/osa911/contactapi/internal/models"
	"github.com/osa911/contactapi/internal/templates"
)

var previewCmd = &cobra.Command{
	Use:   "preview [admin|confirmation]",
	Short: "Render an email to stdout",
	Long: `Render the admin notification or the submitter confirmation for a sample
submission and print it. Fields can be overridden with flags.

Example:
  contactapi preview admin --format text
  contactapi preview confirmation --name "Ama" --message "Hello"`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"admin", "confirmation"},
	RunE: func(cmd *cobra.Command, args []string) error {
		flags := cmd.Flags()
		name, _ := flags.GetString("name")
		email, _ := flags.GetString("email")
		phone, _ := flags.GetString("phone")
		subject, _ := flags.GetString("subject")
		message, _ := flags.GetString("message")
		format, _ := flags.GetString("format")

		sub := models.ContactSubmission{
			Name:    sanitization.SanitizeField(name),
			Email:   sanitization.SanitizeEmail(email),
			Phone:   sanitization.SanitizeField(phone),
			Subject: sanitization.SanitizeHeader(subject),
			Message: sanitization.SanitizeMessage(message),
		}

		renderer, err := templates.NewRenderer(cfg.Brand.Model(), time.Local)
		if err != nil {
			return err
		}

		var rendered templates.Rendered
		switch args[0] {
		case "admin":
			rendered, err = renderer.RenderAdminNotification(sub, time.Now())
		case "confirmation":
			rendered, err = renderer.RenderConfirmation(sub)
		default:
			return fmt.Errorf("unknown email %q, expected admin or confirmation", args[0])
		}
		if err != nil {
			return err
		}

		fmt.Printf("Subject: %s\n\n", rendered.Subject)
		switch format {
		case "html":
			fmt.Println(rendered.HTML)
		case "text":
			fmt.Println(rendered.Text)
		default:
			return fmt.Errorf("unknown format %q, expected html or text", format)
		}
		return nil
	},
}

func init() {
	previewCmd.Flags().String("name", "Jane Doe", "Submitter name")
	previewCmd.Flags().String("email", "jane@example.com", "Submitter email")
	previewCmd.Flags().String("phone", "", "Submitter phone (optional)")
	previewCmd.Flags().String("subject", "Partnership enquiry", "Message subject")
	previewCmd.Flags().String("message", "Hello,\nI would like to know more about your services.", "Message body")
	previewCmd.Flags().String("format", "html", "Output format: html or text")
}
