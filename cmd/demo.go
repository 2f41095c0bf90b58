package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/zhubert/readthrough/internal/demo"
	"github.com/zhubert/readthrough/internal/demo/scenarios"
)

var (
	demoOutput     string
	demoWidth      int
	demoHeight     int
	demoLang       string
	demoCaptureAll bool
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Generate demo recordings of readthrough",
	Long: `Generate demo recordings of readthrough for documentation.

Available subcommands:
  list      - List available demo scenarios
  run       - Run a scenario and print the frames (for testing)
  generate  - Generate a VHS tape file for rendering
  cast      - Generate an asciinema cast file`,
}

var demoListCmd = &cobra.Command{
	Use:   "list",
	Short: "List available demo scenarios",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		listScenarios(cmd.OutOrStdout())
	},
}

var demoRunCmd = &cobra.Command{
	Use:   "run <scenario>",
	Short: "Run a scenario and print the frames (for testing)",
	Args:  cobra.ExactArgs(1),
	RunE:  runDemoRun,
}

var demoGenerateCmd = &cobra.Command{
	Use:   "generate <scenario>",
	Short: "Generate a VHS tape file for rendering",
	Args:  cobra.ExactArgs(1),
	RunE:  runDemoGenerate,
}

var demoCastCmd = &cobra.Command{
	Use:   "cast <scenario>",
	Short: "Generate an asciinema cast file",
	Args:  cobra.ExactArgs(1),
	RunE:  runDemoCast,
}

func init() {
	for _, cmd := range []*cobra.Command{demoRunCmd, demoGenerateCmd, demoCastCmd} {
		cmd.Flags().StringVarP(&demoOutput, "output", "o", "", "Output file")
		cmd.Flags().IntVarP(&demoWidth, "width", "w", 0, "Terminal width (default: the scenario's)")
		cmd.Flags().IntVarP(&demoHeight, "height", "H", 0, "Terminal height (default: the scenario's)")
		cmd.Flags().StringVar(&demoLang, "lang", "", "Interface language (default: the scenario's)")
		cmd.Flags().BoolVar(&demoCaptureAll, "capture-all", false, "Capture frame after every step (for debugging)")
	}

	demoCmd.AddCommand(demoListCmd)
	demoCmd.AddCommand(demoRunCmd)
	demoCmd.AddCommand(demoGenerateCmd)
	demoCmd.AddCommand(demoCastCmd)
	rootCmd.AddCommand(demoCmd)
}

func listScenarios(out io.Writer) {
	fmt.Fprintln(out, "Available demo scenarios:")
	fmt.Fprintln(out)
	for _, s := range scenarios.All() {
		fmt.Fprintf(out, "  %-10s %s\n", s.Name, s.Description)
	}
}

// getScenario returns a copy of the named scenario with the command line
// overrides applied.
func getScenario(name string) (*demo.Scenario, error) {
	found := scenarios.Get(name)
	if found == nil {
		return nil, fmt.Errorf("unknown scenario %q\nRun 'readthrough demo list' to see available scenarios", name)
	}
	scenario := *found

	if demoWidth > 0 {
		scenario.Width = demoWidth
	}
	if demoHeight > 0 {
		scenario.Height = demoHeight
	}
	if demoLang != "" {
		scenario.Language = demoLang
	}
	if err := scenario.Validate(); err != nil {
		return nil, err
	}
	return &scenario, nil
}

func executeScenario(scenario *demo.Scenario) ([]demo.Frame, error) {
	catalog, err := loadCatalog()
	if err != nil {
		return nil, err
	}
	if !catalog.HasLanguage(scenario.Language) {
		return nil, fmt.Errorf("unknown language %q", scenario.Language)
	}

	execCfg := demo.DefaultExecutorConfig()
	execCfg.CaptureEveryStep = demoCaptureAll
	execCfg.Catalog = catalog

	return demo.NewExecutor(execCfg).Run(scenario)
}

func runDemoRun(cmd *cobra.Command, args []string) error {
	scenario, err := getScenario(args[0])
	if err != nil {
		return err
	}

	frames, err := executeScenario(scenario)
	if err != nil {
		return fmt.Errorf("error running scenario: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Captured %d frames\n", len(frames))
	for i, f := range frames {
		fmt.Fprintf(out, "\n=== Frame %d (delay: %v) ===\n", i, f.Delay)
		if f.Annotation != "" {
			fmt.Fprintf(out, "Annotation: %s\n", f.Annotation)
		}
		fmt.Fprintln(out, f.Content)
	}

	return nil
}

func runDemoGenerate(cmd *cobra.Command, args []string) error {
	scenario, err := getScenario(args[0])
	if err != nil {
		return err
	}

	outputFile := demoOutput
	if outputFile == "" {
		outputFile = scenario.Name + ".tape"
	}

	f, err := os.Create(outputFile)
	if err != nil {
		return fmt.Errorf("error creating output file: %w", err)
	}
	defer f.Close()

	vhsCfg := demo.DefaultVHSConfig()
	vhsCfg.Output = strings.TrimSuffix(outputFile, ".tape") + ".gif"
	vhsCfg.Width = scenario.Width
	vhsCfg.Height = scenario.Height

	if err := demo.GenerateVHSTape(f, scenario, vhsCfg); err != nil {
		return fmt.Errorf("error generating VHS tape: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Generated %s\n", outputFile)
	fmt.Fprintf(cmd.OutOrStdout(), "Render with: vhs %s\n", outputFile)
	return nil
}

func runDemoCast(cmd *cobra.Command, args []string) error {
	scenario, err := getScenario(args[0])
	if err != nil {
		return err
	}

	frames, err := executeScenario(scenario)
	if err != nil {
		return fmt.Errorf("error running scenario: %w", err)
	}

	outputFile := demoOutput
	if outputFile == "" {
		outputFile = scenario.Name + ".cast"
	}

	f, err := os.Create(outputFile)
	if err != nil {
		return fmt.Errorf("error creating output file: %w", err)
	}
	defer f.Close()

	if err := demo.GenerateTitledCast(f, frames, scenario.Width, scenario.Height, "readthrough "+scenario.Name, time.Now()); err != nil {
		return fmt.Errorf("error generating cast file: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Generated %s (%d frames)\n", outputFile, len(frames))
	fmt.Fprintf(cmd.OutOrStdout(), "Play with: asciinema play %s\n", outputFile)
	return nil
}
