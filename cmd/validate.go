package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"provedit/config/session"
)

func init() {
	rootCmd.AddCommand(validateCmd)
}

var validateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Validate a provider configuration document",
	Long: `Validate a provider configuration JSON document read from a file or stdin.

Every invalid field in the document is reported on its own line, tagged
with the field's path, e.g.:

  0.provider: provider cannot be empty
  0.models.1.apiName: apiName is required`,
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

		fmt.Fprintf(cmd.OutOrStdout(), "configuration is valid (%d providers)\n", sess.Len())
		return nil
	},
}
