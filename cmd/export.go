package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/portfoliai/internal/activity"
	"github.com/ziadkadry99/portfoliai/internal/shell"
)

var (
	exportOutput string
	exportTheme  string
	exportDark   bool
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the portfolio as a printable HTML page",
	Long:  `Renders the portfolio with the configured theme as a standalone HTML page that opens the print dialog when loaded, so it can be saved as PDF from a browser.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := openSession(activity.ActorCLI, false)
		if err != nil {
			return err
		}
		defer sess.Close()

		sh, err := sess.newShell()
		if err != nil {
			return fmt.Errorf("creating shell: %w", err)
		}

		var update shell.SettingsUpdate
		if exportTheme != "" {
			update.Theme = &exportTheme
		}
		if cmd.Flags().Changed("dark") {
			update.Dark = &exportDark
		}
		if _, err := sh.UpdateSettings(update); err != nil {
			return err
		}

		page, err := sh.ExportContext(context.Background())
		if err != nil {
			return err
		}

		if exportOutput == "" || exportOutput == "-" {
			_, err = os.Stdout.Write(page)
			return err
		}
		if err := os.WriteFile(exportOutput, page, 0o644); err != nil {
			return fmt.Errorf("writing export: %w", err)
		}
		fmt.Fprintf(os.Stderr, "Exported portfolio to %s\n", exportOutput)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "portfolio.html", `output file ("-" for stdout)`)
	exportCmd.Flags().StringVar(&exportTheme, "theme", "", "theme override (modern, minimal, creative)")
	exportCmd.Flags().BoolVar(&exportDark, "dark", false, "use the dark color mode")
	rootCmd.AddCommand(exportCmd)
}
