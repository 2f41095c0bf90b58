package cmd

import (
	"fmt"

	huh "charm.land/huh/v2"
	"github.com/spf13/cobra"

	"github.com/zhubert/readthrough/internal/config"
	"github.com/zhubert/readthrough/internal/i18n"
)

var langCmd = &cobra.Command{
	Use:   "lang [code]",
	Short: "Set the interface language",
	Long: `Sets and saves the interface language. Without a code, pick one from
a list.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLang,
}

func init() {
	rootCmd.AddCommand(langCmd)
}

// pickLanguage asks for a language interactively; replaced in tests.
var pickLanguage = func(catalog *i18n.Catalog, current string) (string, error) {
	choice := current
	var opts []huh.Option[string]
	for _, code := range catalog.Languages() {
		opts = append(opts, huh.NewOption(i18n.Name(code)+" ("+code+")", code))
	}

	err := huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().
			Title("Language").
			Options(opts...).
			Value(&choice),
	)).Run()
	return choice, err
}

func runLang(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}
	catalog, err := loadCatalog()
	if err != nil {
		return err
	}

	var code string
	if len(args) == 1 {
		code = args[0]
	} else {
		code, err = pickLanguage(catalog, cfg.GetLanguage())
		if err != nil {
			return err
		}
	}

	if !catalog.HasLanguage(code) {
		return fmt.Errorf("unknown language %q (see 'readthrough languages')", code)
	}

	cfg.SetLanguage(code)
	if err := cfg.Save(); err != nil {
		return fmt.Errorf("error saving config: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Language set to %s (%s).\n", i18n.Name(code), code)
	return nil
}
