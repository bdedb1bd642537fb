package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"provedit/config/models"
	"provedit/config/validation"
	"provedit/internal/providers"
)

func init() {
	presetsCmd.AddCommand(presetsShowCmd)
	rootCmd.AddCommand(presetsCmd)
}

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List built-in provider presets",
	Run: func(cmd *cobra.Command, args []string) {
		for _, name := range providers.List() {
			preset, _ := providers.Get(name)
			fmt.Fprintf(cmd.OutOrStdout(), "%-12s %s (%s, %d models)\n",
				name, preset.Provider, preset.APIKeyEnvVar, len(preset.Models))
		}
	},
}

var presetsShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Print a preset as a single-provider configuration",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		preset, err := providers.Get(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), validation.Serialize([]models.Provider{preset}))
		return nil
	},
}
