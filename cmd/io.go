package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"provedit/config/validation"
)

// readInput returns the configuration text to operate on: the contents of
// the file named in args[pos] when present, otherwise everything on stdin.
func readInput(cmd *cobra.Command, args []string, pos int) (string, error) {
	if len(args) > pos {
		data, err := os.ReadFile(args[pos])
		if err != nil {
			return "", fmt.Errorf("read %s: %w", args[pos], err)
		}
		return string(data), nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return string(data), nil
}

// reportConfigError writes a human-readable account of an import failure:
// one line per field error, or a single line for parse/empty-input errors.
func reportConfigError(w io.Writer, err error) {
	var fieldErrs validation.FieldErrors
	var parseErr *validation.ParseError
	switch {
	case errors.As(err, &fieldErrs):
		for _, fe := range fieldErrs {
			fmt.Fprintf(w, "%s: %s\n", fe.Path, fe.Message)
		}
	case errors.As(err, &parseErr):
		fmt.Fprintf(w, "parse error: %s\n", parseErr.Msg)
	default:
		fmt.Fprintln(w, err)
	}
}
