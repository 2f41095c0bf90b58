package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/zhubert/readthrough/internal/config"
	"github.com/zhubert/readthrough/internal/i18n"
)

var languagesCmd = &cobra.Command{
	Use:   "languages",
	Short: "List the available interface languages",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("error loading config: %w", err)
		}
		catalog, err := loadCatalog()
		if err != nil {
			return err
		}
		printLanguages(cmd.OutOrStdout(), catalog, cfg.GetLanguage())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(languagesCmd)
}

// printLanguages writes one language per line, marking the active one.
func printLanguages(out io.Writer, catalog *i18n.Catalog, active string) {
	for _, code := range catalog.Languages() {
		mark := " "
		if code == active {
			mark = "*"
		}
		line := fmt.Sprintf("%s %-3s %s", mark, code, i18n.Name(code))
		if i18n.IsRTL(code) {
			line += " (right to left)"
		}
		fmt.Fprintln(out, line)
	}
}
