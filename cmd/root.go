package cmd

import (
	"github.com/spf13/cobra"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "portfolio",
	Short: "Personal portfolio site with a relayed contact form",
	Long: `portfolio serves a single-page personal portfolio. Contact form
messages are handed to EmailJS for delivery; nothing is stored locally
apart from optional, privacy-conscious visit counts.`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "portfolio.yml", "config file path")
}
