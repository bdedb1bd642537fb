package cmd

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"provedit/config/session"
)

var checkEnvFile string

func init() {
	checkCmd.Flags().StringVar(&checkEnvFile, "env-file", "", "load environment variables from a dotenv file before checking")
	rootCmd.AddCommand(checkCmd)
}

var checkCmd = &cobra.Command{
	Use:   "check [file]",
	Short: "Check that referenced API key environment variables are set",
	Long: `Validate a provider configuration document and report, for each
provider, whether the environment variable named by apiKeyEnvVar is set
in the current environment. The variable's value is never printed.

With --env-file, a dotenv file is loaded first, so a project's .env can
be checked without exporting it.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if checkEnvFile != "" {
			if err := godotenv.Load(checkEnvFile); err != nil {
				return fmt.Errorf("load %s: %w", checkEnvFile, err)
			}
		}

		text, err := readInput(cmd, args, 0)
		if err != nil {
			return err
		}

		sess := session.New()
		if err := sess.ImportFrom(text); err != nil {
			reportConfigError(cmd.ErrOrStderr(), err)
			return fmt.Errorf("configuration is invalid")
		}

		missing := 0
		for _, p := range sess.Providers() {
			if _, ok := os.LookupEnv(p.APIKeyEnvVar); ok {
				fmt.Fprintf(cmd.OutOrStdout(), "✓ %s: %s is set\n", p.Provider, p.APIKeyEnvVar)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "✗ %s: %s is not set\n", p.Provider, p.APIKeyEnvVar)
				missing++
			}
		}

		if missing > 0 {
			return fmt.Errorf("%d environment variable(s) not set", missing)
		}
		return nil
	},
}
