package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"provedit/config/session"
)

func init() {
	rootCmd.AddCommand(generateCmd)
}

var generateCmd = &cobra.Command{
	Use:   "generate [file]",
	Short: "Validate and print the canonical single-line configuration",
	Long: `Validate a provider configuration document and print it in canonical
form: a single-line JSON array with stable key order (provider,
apiKeyEnvVar, baseUrl, models; apiName, uiName, supportsTools).

Nothing is printed if the document is invalid.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := readInput(cmd, args, 0)
		if err != nil {
			return err
		}

		sess := session.New()
		if err := sess.ImportFrom(text); err != nil {
			reportConfigError(cmd.ErrOrStderr(), err)
			return fmt.Errorf("configuration is invalid")
		}

		out, err := sess.Submit()
		if err != nil {
			reportConfigError(cmd.ErrOrStderr(), err)
			return fmt.Errorf("configuration is invalid")
		}

		fmt.Fprintln(cmd.OutOrStdout(), out)
		return nil
	},
}
