package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zhubert/readthrough/internal/config"
	"github.com/zhubert/readthrough/internal/logger"
)

var (
	skipConfirm bool
	resetLogs   bool
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Uncheck every checklist item",
	Long: `Clears the saved checkbox state so every item starts unchecked again.
It will prompt for confirmation before proceeding unless the --yes flag is used.`,
	RunE: runReset,
}

func init() {
	resetCmd.Flags().BoolVarP(&skipConfirm, "yes", "y", false, "Skip confirmation prompt")
	resetCmd.Flags().BoolVar(&resetLogs, "logs", false, "Also remove the debug log")
	rootCmd.AddCommand(resetCmd)
}

func runReset(cmd *cobra.Command, args []string) error {
	return runResetWith(cmd.InOrStdin(), cmd.OutOrStdout())
}

// runResetWith allows injecting input and output for testing
func runResetWith(input io.Reader, out io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	checked := cfg.CheckedIDs()
	if len(checked) == 0 && !resetLogs {
		fmt.Fprintln(out, "Nothing to reset.")
		return nil
	}

	fmt.Fprintln(out, "This will reset:")
	if len(checked) > 0 {
		fmt.Fprintf(out, "  - %d checked item(s): %s\n", len(checked), strings.Join(checked, ", "))
	}
	if resetLogs {
		fmt.Fprintf(out, "  - the debug log at %s\n", logger.DefaultLogPath)
	}

	if !skipConfirm {
		if !confirm(input, out, "Continue?") {
			fmt.Fprintln(out, "Aborted.")
			return nil
		}
	}

	cleared := cfg.ClearChecked()
	if err := cfg.Save(); err != nil {
		return fmt.Errorf("error saving config: %w", err)
	}
	fmt.Fprintf(out, "Unchecked %d item(s).\n", cleared)

	if resetLogs {
		n, err := logger.ClearLogs()
		if err != nil {
			fmt.Fprintf(out, "Warning: error clearing logs: %v\n", err)
		} else if n > 0 {
			fmt.Fprintf(out, "Removed %d log file(s).\n", n)
		}
	}
	return nil
}

// confirm prompts the user for y/n confirmation
func confirm(input io.Reader, out io.Writer, prompt string) bool {
	reader := bufio.NewReader(input)
	fmt.Fprintf(out, "%s [y/N]: ", prompt)
	response, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	response = strings.ToLower(strings.TrimSpace(response))
	return response == "y" || response == "yes"
}
