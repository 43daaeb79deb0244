package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"

	"github.com/osa911/contactapi/internal/service"
)

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Check that the SMTP relay accepts our credentials",
	Long: `Connect to the configured SMTP relay, negotiate TLS and authenticate
without sending any email. Port 465 uses implicit TLS, any other port STARTTLS.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if missing := cfg.MissingMailSettings(); len(missing) > 0 {
			return fmt.Errorf("mail delivery is not configured, missing: %s", strings.Join(missing, ", "))
		}

		smtpCfg := cfg.SMTP()
		mode := "STARTTLS"
		if smtpCfg.ImplicitTLS() {
			mode = "implicit TLS"
		}

		timeout, _ := cmd.Flags().GetDuration("timeout")
		ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
		defer cancel()

		s := spinner.New(spinner.CharSets[14], 120*time.Millisecond)
		s.Suffix = fmt.Sprintf(" Connecting to %s:%d (%s)...", smtpCfg.Host, smtpCfg.Port, mode)
		s.Start()
		err := service.NewSMTPMailer(smtpCfg).Verify(ctx)
		s.Stop()

		if err != nil {
			logger.Error("SMTP verification failed: %v", err)
			return err
		}

		fmt.Printf("SMTP server %s:%d is ready to send emails (%s)\n", smtpCfg.Host, smtpCfg.Port, mode)
		return nil
	},
}

func init() {
	verifyCmd.Flags().Duration("timeout", 30*time.Second, "Overall time allowed for the check")
}
