package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/osa911/contactapi/internal/config"
	"github.com/osa911/contactapi/internal/logging"
)

var (
	cfg    *config.Config
	logger *logging.Logger
)

var rootCmd = &cobra.Command{
	Use:   "contactapi",
	Short: "Contact form API - serve, verify and preview",
	Long: `contactapi runs the contact form backend and helps operators check
the SMTP relay and preview the emails it sends.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return err
		}

		// Commands other than serve log to the terminal only
		if cmd.Name() == serveCmd.Name() {
			if err := logging.InitLogger(cfg.Logging()); err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			logger = logging.GetLogger()
		} else {
			logger = logging.NewWriterLogger(os.Stderr, cfg.LogLevel)
			logging.SetLogger(logger)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(verifyCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
