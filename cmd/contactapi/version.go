package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/osa911/contactapi/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		info := version.GetBuildInfo()
		fmt.Printf("contactapi %s\n", version.Info())
		fmt.Printf("Go version: %s\n", info.GoVersion)
		fmt.Printf("Platform:   %s\n", info.Platform)
	},
}
