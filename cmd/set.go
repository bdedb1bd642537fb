package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/tidwall/sjson"

	"provedit/config/models"
	"provedit/config/session"
)

func init() {
	rootCmd.AddCommand(setCmd)
}

var setCmd = &cobra.Command{
	Use:   "set <path> <value> [file]",
	Short: "Update one field of a configuration document",
	Long: `Apply a surgical update to a single field of a provider configuration
document and print the re-validated result in canonical form.

The path addresses a leaf field: <provider>.<field> or
<provider>.models.<model>.<field>, e.g.

  provedit set 0.apiKeyEnvVar GROQ_API_KEY config.json
  provedit set 0.models.1.supportsTools true < config.json

supportsTools values are coerced to boolean; all other fields are set as
strings. The update is rejected if the resulting document is invalid.`,
	Args: cobra.RangeArgs(2, 3),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := readInput(cmd, args, 2)
		if err != nil {
			return err
		}

		updated, err := applySet(doc, args[0], args[1])
		if err != nil {
			reportConfigError(cmd.ErrOrStderr(), err)
			return fmt.Errorf("update rejected")
		}

		fmt.Fprintln(cmd.OutOrStdout(), updated)
		return nil
	},
}

// applySet performs the surgical update and re-validates the result,
// returning the canonical serialization of the updated document.
func applySet(doc, rawPath, value string) (string, error) {
	path, err := models.ParseFieldPath(rawPath)
	if err != nil {
		return "", err
	}

	var updated string
	if path.Field == models.FieldSupportsTools {
		b, err := strconv.ParseBool(value)
		if err != nil {
			return "", fmt.Errorf("%s takes a boolean value, got %q", rawPath, value)
		}
		updated, err = sjson.Set(doc, path.String(), b)
		if err != nil {
			return "", fmt.Errorf("apply update: %w", err)
		}
	} else {
		updated, err = sjson.Set(doc, path.String(), value)
		if err != nil {
			return "", fmt.Errorf("apply update: %w", err)
		}
	}

	sess := session.New()
	if err := sess.ImportFrom(updated); err != nil {
		return "", err
	}
	return sess.Submit()
}
