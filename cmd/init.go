package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ziadkadry99/portfoliai/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize portfoliai configuration with an interactive wizard",
	Long:  `Runs an interactive wizard to choose the LLM provider, preview theme and contact delivery, and writes the answers to the config file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := config.RunWizard(cfgFile)
		return err
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
