package cmd

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"provedit/config/validation"
)

const groqDoc = `[{"provider":"Groq","apiKeyEnvVar":"GROQ_API_KEY","baseUrl":"https://api.groq.com/openai/v1","models":[{"apiName":"llama3-8b-8192","uiName":"Llama 3 8B","supportsTools":true}]}]`

func TestApplySet(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		path    string
		value   string
		want    string
		wantErr bool
	}{
		{
			name:  "Update provider name",
			doc:   groqDoc,
			path:  "0.provider",
			value: "Groq Cloud",
			want:  strings.Replace(groqDoc, `"provider":"Groq"`, `"provider":"Groq Cloud"`, 1),
		},
		{
			name:  "Coerce supportsTools to boolean",
			doc:   groqDoc,
			path:  "0.models.0.supportsTools",
			value: "false",
			want:  strings.Replace(groqDoc, `"supportsTools":true`, `"supportsTools":false`, 1),
		},
		{
			name:    "Non-boolean supportsTools value",
			doc:     groqDoc,
			path:    "0.models.0.supportsTools",
			value:   "maybe",
			wantErr: true,
		},
		{
			name:    "Malformed path",
			doc:     groqDoc,
			path:    "0.nested.thing",
			value:   "x",
			wantErr: true,
		},
		{
			name:    "Update producing an invalid document is rejected",
			doc:     groqDoc,
			path:    "0.provider",
			value:   "",
			wantErr: true,
		},
		{
			name:    "Update creating a half-empty model row is rejected",
			doc:     groqDoc,
			path:    "0.models.1.apiName",
			value:   "llama3-70b-8192",
			wantErr: true,
		},
		{
			name:    "Malformed document",
			doc:     "{ not json",
			path:    "0.provider",
			value:   "X",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := applySet(tt.doc, tt.path, tt.value)
			if (err != nil) != tt.wantErr {
				t.Fatalf("applySet() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("applySet() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestReadInput(t *testing.T) {
	t.Run("Reads the file argument", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.json")
		if err := os.WriteFile(path, []byte(groqDoc), 0o644); err != nil {
			t.Fatal(err)
		}
		got, err := readInput(validateCmd, []string{path}, 0)
		if err != nil {
			t.Fatalf("readInput error = %v", err)
		}
		if got != groqDoc {
			t.Errorf("readInput = %q, want file contents", got)
		}
	})

	t.Run("Falls back to stdin", func(t *testing.T) {
		validateCmd.SetIn(strings.NewReader(groqDoc))
		defer validateCmd.SetIn(nil)

		got, err := readInput(validateCmd, nil, 0)
		if err != nil {
			t.Fatalf("readInput error = %v", err)
		}
		if got != groqDoc {
			t.Errorf("readInput = %q, want stdin contents", got)
		}
	})

	t.Run("Missing file is an error", func(t *testing.T) {
		if _, err := readInput(validateCmd, []string{"/does/not/exist.json"}, 0); err == nil {
			t.Errorf("expected error for missing file")
		}
	})
}

func TestReportConfigError(t *testing.T) {
	t.Run("Field errors print one line per field", func(t *testing.T) {
		var buf bytes.Buffer
		errs := validation.FieldErrors{
			{Path: "0.provider", Message: "provider cannot be empty"},
			{Path: "0.models", Message: "models cannot be empty"},
		}
		reportConfigError(&buf, errs)

		want := "0.provider: provider cannot be empty\n0.models: models cannot be empty\n"
		if buf.String() != want {
			t.Errorf("output = %q, want %q", buf.String(), want)
		}
	})

	t.Run("Parse error prints a single tagged line", func(t *testing.T) {
		var buf bytes.Buffer
		reportConfigError(&buf, &validation.ParseError{Msg: "invalid JSON"})
		if got := buf.String(); got != "parse error: invalid JSON\n" {
			t.Errorf("output = %q", got)
		}
	})

	t.Run("Other errors print as-is", func(t *testing.T) {
		var buf bytes.Buffer
		reportConfigError(&buf, errors.New("boom"))
		if got := buf.String(); got != "boom\n" {
			t.Errorf("output = %q", got)
		}
	})
}

// runCommand executes a subcommand through the root with captured streams.
func runCommand(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	defer func() {
		rootCmd.SetIn(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	}()
	err := rootCmd.Execute()
	return out.String(), errOut.String(), err
}

func TestValidateCommand(t *testing.T) {
	t.Run("Valid document", func(t *testing.T) {
		out, _, err := runCommand(t, groqDoc, "validate")
		if err != nil {
			t.Fatalf("validate error = %v", err)
		}
		if !strings.Contains(out, "configuration is valid (1 providers)") {
			t.Errorf("output = %q", out)
		}
	})

	t.Run("Invalid document reports tagged fields", func(t *testing.T) {
		out, errOut, err := runCommand(t, `[{"models":[]}]`, "validate")
		if err == nil {
			t.Fatalf("expected error, got output %q", out)
		}
		for _, want := range []string{"0.provider:", "0.apiKeyEnvVar:", "0.models:"} {
			if !strings.Contains(errOut, want) {
				t.Errorf("stderr missing %q: %q", want, errOut)
			}
		}
	})
}

func TestGenerateCommand(t *testing.T) {
	// Pretty-printed input comes out canonical and single-line.
	pretty := `[
  {
    "models": [ {"supportsTools": true, "uiName": "Llama 3 8B", "apiName": "llama3-8b-8192"} ],
    "baseUrl": "https://api.groq.com/openai/v1",
    "apiKeyEnvVar": "GROQ_API_KEY",
    "provider": "Groq"
  }
]`
	out, _, err := runCommand(t, pretty, "generate")
	if err != nil {
		t.Fatalf("generate error = %v", err)
	}
	if strings.TrimSuffix(out, "\n") != groqDoc {
		t.Errorf("output = %s, want %s", out, groqDoc)
	}
}

func TestCheckCommand(t *testing.T) {
	t.Run("Set variable reported", func(t *testing.T) {
		t.Setenv("GROQ_API_KEY", "value")
		out, _, err := runCommand(t, groqDoc, "check")
		if err != nil {
			t.Fatalf("check error = %v", err)
		}
		if !strings.Contains(out, "✓ Groq: GROQ_API_KEY is set") {
			t.Errorf("output = %q", out)
		}
		if strings.Contains(out, "value") {
			t.Errorf("output leaks the key value: %q", out)
		}
	})

	t.Run("Missing variable fails", func(t *testing.T) {
		doc := strings.Replace(groqDoc, "GROQ_API_KEY", "PROVEDIT_TEST_UNSET_VAR", 1)
		out, _, err := runCommand(t, doc, "check")
		if err == nil {
			t.Fatalf("expected error for unset variable")
		}
		if !strings.Contains(out, "✗ Groq: PROVEDIT_TEST_UNSET_VAR is not set") {
			t.Errorf("output = %q", out)
		}
	})

	t.Run("Loads a dotenv file first", func(t *testing.T) {
		envPath := filepath.Join(t.TempDir(), ".env")
		if err := os.WriteFile(envPath, []byte("PROVEDIT_DOTENV_KEY=abc\n"), 0o644); err != nil {
			t.Fatal(err)
		}
		doc := strings.Replace(groqDoc, "GROQ_API_KEY", "PROVEDIT_DOTENV_KEY", 1)
		defer os.Unsetenv("PROVEDIT_DOTENV_KEY")
		defer func() { checkEnvFile = "" }()

		out, _, err := runCommand(t, doc, "check", "--env-file", envPath)
		if err != nil {
			t.Fatalf("check error = %v", err)
		}
		if !strings.Contains(out, "✓ Groq: PROVEDIT_DOTENV_KEY is set") {
			t.Errorf("output = %q", out)
		}
	})
}

func TestPresetsCommands(t *testing.T) {
	t.Run("List includes the builtins", func(t *testing.T) {
		out, _, err := runCommand(t, "", "presets")
		if err != nil {
			t.Fatalf("presets error = %v", err)
		}
		for _, name := range []string{"anthropic", "groq", "openai"} {
			if !strings.Contains(out, name) {
				t.Errorf("output missing preset %q: %q", name, out)
			}
		}
	})

	t.Run("Show prints a valid single-provider document", func(t *testing.T) {
		out, _, err := runCommand(t, "", "presets", "show", "groq")
		if err != nil {
			t.Fatalf("presets show error = %v", err)
		}
		doc := strings.TrimSuffix(out, "\n")
		if strings.Count(doc, "\n") != 0 {
			t.Errorf("output is not single-line: %q", doc)
		}

		parsed, err := validation.Parse(doc)
		if err != nil {
			t.Fatalf("output does not parse: %v", err)
		}
		if _, errs := validation.ValidateConfiguration(parsed); len(errs) > 0 {
			t.Errorf("output does not validate: %v", errs)
		}
	})

	t.Run("Show unknown preset fails", func(t *testing.T) {
		if _, _, err := runCommand(t, "", "presets", "show", "nope"); err == nil {
			t.Errorf("expected error for unknown preset")
		}
	})
}

func TestSetCommand(t *testing.T) {
	out, _, err := runCommand(t, groqDoc, "set", "0.models.0.supportsTools", "false")
	if err != nil {
		t.Fatalf("set error = %v", err)
	}
	want := strings.Replace(groqDoc, `"supportsTools":true`, `"supportsTools":false`, 1)
	if strings.TrimSuffix(out, "\n") != want {
		t.Errorf("output = %s, want %s", out, want)
	}
}
