package main

import (
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"irval/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "irval",
	Short: "Typed IR constant inspector",
	Long:  `irval builds IR constants against the reference engine and dumps them for inspection`,
}

// main initializes the CLI by setting the command version, registering
// subcommands and persistent flags, and then executes the root command.
// If command execution returns an error, the process exits with status
// code 1.
func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(demoCmd)
	rootCmd.AddCommand(kindsCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().String("config", "irval.toml", "optional config file")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// isTerminal reports whether the file is attached to a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// applyColorMode resolves the --color flag, falling back to the config
// file's setting when the flag is left at auto.
func applyColorMode(cmd *cobra.Command, cfg config) {
	mode, _ := cmd.Flags().GetString("color")
	if mode == "auto" && cfg.Output.Color != "" {
		mode = cfg.Output.Color
	}
	switch mode {
	case "on":
		color.NoColor = false
	case "off":
		color.NoColor = true
	default:
		color.NoColor = !isTerminal(os.Stdout)
	}
}
