package cmd

import (
	"fmt"
	"path/filepath"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"

	"github.com/zhubert/readthrough/internal/app"
	"github.com/zhubert/readthrough/internal/config"
	"github.com/zhubert/readthrough/internal/document"
	"github.com/zhubert/readthrough/internal/i18n"
	"github.com/zhubert/readthrough/internal/logger"
)

var (
	debugMode             bool
	quietMode             bool
	docPath               string
	langFlag              string
	translationsPath      string
	version, commit, date string
)

// SetVersionInfo sets version information from ldflags
func SetVersionInfo(v, c, d string) {
	version, commit, date = v, c, d
}

var rootCmd = &cobra.Command{
	Use:   "readthrough",
	Short: "A checklist whose details you have to read before closing",
	Long: `Readthrough shows a checklist in the terminal. Each item opens a dialog
with the details, and a dialog only closes quietly once you have scrolled
all the way through it.`,
	RunE:          runTUI,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", true, "Enable debug logging (on by default)")
	rootCmd.PersistentFlags().BoolVarP(&quietMode, "quiet", "q", false, "Reduce logging to info level only")
	rootCmd.PersistentFlags().StringVar(&translationsPath, "translations", "", "YAML file with extra or overriding translations")
	rootCmd.Flags().StringVar(&docPath, "doc", "", "Checklist YAML file (remembered for later runs)")
	rootCmd.Flags().StringVar(&langFlag, "lang", "", "Interface language for this run")
}

func initConfig() {
	if quietMode {
		logger.SetDebug(false)
	} else if debugMode {
		logger.SetDebug(true)
	}
}

// Execute runs the root command
func Execute() error {
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(versionTemplate())
	return rootCmd.Execute()
}

func versionTemplate() string {
	if commit != "none" && commit != "" {
		return fmt.Sprintf("readthrough %s\n  commit: %s\n  built:  %s\n", version, commit, date)
	}
	return fmt.Sprintf("readthrough %s\n", version)
}

// loadCatalog returns the built-in translations merged with the
// --translations file, if any.
func loadCatalog() (*i18n.Catalog, error) {
	catalog := i18n.New()
	if translationsPath != "" {
		if err := catalog.LoadFile(translationsPath); err != nil {
			return nil, fmt.Errorf("error loading translations: %w", err)
		}
	}
	return catalog, nil
}

// loadDocument picks the checklist: --doc, then the remembered path, then
// the built-in sample. A remembered file that no longer loads is forgotten
// and the sample is shown instead; a bad --doc is an error.
func loadDocument(cfg *config.Config) (*document.Document, error) {
	if docPath == "" {
		return loadRemembered(cfg), nil
	}

	path, err := filepath.Abs(docPath)
	if err != nil {
		return nil, err
	}
	doc, err := document.Load(path)
	if err != nil {
		return nil, fmt.Errorf("error loading checklist: %w", err)
	}
	if path != cfg.GetDocumentPath() {
		cfg.SetDocumentPath(path)
		if err := cfg.Save(); err != nil {
			logger.Warn("could not remember checklist path: %v", err)
		}
	}
	return doc, nil
}

func loadRemembered(cfg *config.Config) *document.Document {
	path := cfg.GetDocumentPath()
	if path == "" {
		return document.Default()
	}
	doc, err := document.Load(path)
	if err == nil {
		return doc
	}

	logger.Warn("remembered checklist %s could not be loaded, using the built-in one: %v", path, err)
	cfg.SetDocumentPath("")
	if err := cfg.Save(); err != nil {
		logger.Warn("could not forget checklist path: %v", err)
	}
	return document.Default()
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	catalog, err := loadCatalog()
	if err != nil {
		return err
	}
	if langFlag != "" && !catalog.HasLanguage(langFlag) {
		return fmt.Errorf("unknown language %q (see 'readthrough languages')", langFlag)
	}

	doc, err := loadDocument(cfg)
	if err != nil {
		return err
	}

	defer logger.Close()

	m := app.New(cfg, doc, catalog, app.Options{Version: version, Language: langFlag})
	p := tea.NewProgram(m)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running app: %w", err)
	}
	return nil
}
