package cmd

import (
	"github.com/spf13/cobra"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:          "crypto-analysis",
	Short:        "Technical analysis dashboard for crypto daily prices",
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to config file (default ./config.yaml)")
	rootCmd.AddCommand(startCmd)
	rootCmd.AddCommand(analyzeCmd)
}

func Execute() error {
	return rootCmd.Execute()
}
