package cmd

import (
	"github.com/spf13/cobra"

	"provedit/internal/tui"
)

// Version information
var (
	version string
	commit  string
	date    string
)

// SetVersionInfo sets the version information
func SetVersionInfo(v, c, d string) {
	version = v
	commit = c
	date = d
}

var rootCmd = &cobra.Command{
	Use:   "provedit",
	Short: "Interactive editor for AI provider configuration JSON",
	Long: `provedit edits the JSON configuration consumed by AI provider loaders:
a list of providers (name, API key environment variable, base URL), each
with one or more models (API name, display name, tool-support flag).

Run without arguments to open the interactive editor. Subcommands operate
on configuration text directly, reading a file argument or stdin and
writing to stdout; nothing is stored anywhere.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return tui.Run()
	},
}

// Execute executes the root command
func Execute() error {
	rootCmd.Version = version

	rootCmd.SetVersionTemplate(`provedit {{.Version}}
Commit: ` + commit + `
Date: ` + date + `
`)

	return rootCmd.Execute()
}
