package tui

import (
	"testing"

	"provedit/config/models"
	"provedit/config/session"
)

func TestBuildForm(t *testing.T) {
	sess := session.New()
	sess.AppendModel(0)

	fields := buildForm(sess, 0)
	if len(fields) != providerFieldCount+2*3 {
		t.Fatalf("field count = %d, want %d", len(fields), providerFieldCount+2*3)
	}

	wantPaths := []string{
		"0.provider",
		"0.apiKeyEnvVar",
		"0.baseUrl",
		"0.models.0.apiName",
		"0.models.0.uiName",
		"0.models.0.supportsTools",
		"0.models.1.apiName",
		"0.models.1.uiName",
		"0.models.1.supportsTools",
	}
	for i, want := range wantPaths {
		if got := fields[i].path.String(); got != want {
			t.Errorf("fields[%d].path = %q, want %q", i, got, want)
		}
	}

	for i, f := range fields {
		wantToggle := f.path.Field == models.FieldSupportsTools
		if (f.kind == fieldToggle) != wantToggle {
			t.Errorf("fields[%d] kind = %v for field %q", i, f.kind, f.path.Field)
		}
	}
}

func TestBuildFormOutOfRange(t *testing.T) {
	if fields := buildForm(session.New(), 5); fields != nil {
		t.Errorf("buildForm out of range = %v, want nil", fields)
	}
}

func TestFieldNavigationWraps(t *testing.T) {
	sess := session.New()
	fields := buildForm(sess, 0)

	focus := focusField(fields, -1, 0)
	for i := 0; i < len(fields); i++ {
		focus = nextField(fields, focus)
	}
	if focus != 0 {
		t.Errorf("forward cycle ended at %d, want 0", focus)
	}

	focus = prevField(fields, focus)
	if focus != len(fields)-1 {
		t.Errorf("prevField from 0 = %d, want %d", focus, len(fields)-1)
	}
}
