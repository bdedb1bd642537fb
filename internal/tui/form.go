// Package tui provides the terminal form editor for provider configurations.
package tui

import (
	"github.com/charmbracelet/bubbles/textinput"

	"provedit/config/models"
	"provedit/config/session"
)

// fieldKind distinguishes text inputs from the tool-support toggle.
type fieldKind int

const (
	fieldText fieldKind = iota
	fieldToggle
)

// formField is one focusable element of the provider form. The field list
// is dynamic: three provider fields plus three per model row.
type formField struct {
	kind   fieldKind
	path   models.FieldPath
	label  string
	input  textinput.Model // text fields only
	toggle bool            // toggle fields only
}

// newTextField creates an initialized text input bound to path.
func newTextField(path models.FieldPath, label, placeholder, value string, limit int) formField {
	in := textinput.New()
	in.Placeholder = placeholder
	in.CharLimit = limit
	in.Width = 40
	in.Prompt = ""
	in.SetValue(value)
	return formField{kind: fieldText, path: path, label: label, input: in}
}

// buildForm constructs the field list for the provider at index pi of the
// session's configuration.
func buildForm(sess *session.Session, pi int) []formField {
	p, ok := sess.Provider(pi)
	if !ok {
		return nil
	}

	fields := []formField{
		newTextField(models.ProviderField(pi, models.FieldProvider),
			"Provider:", "Display name", p.Provider, 64),
		newTextField(models.ProviderField(pi, models.FieldAPIKeyEnvVar),
			"Key env var:", "GROQ_API_KEY", p.APIKeyEnvVar, 128),
		newTextField(models.ProviderField(pi, models.FieldBaseURL),
			"Base URL:", "https://api.example.com/v1 (optional)", p.BaseURL, 256),
	}

	for mi, m := range p.Models {
		fields = append(fields,
			newTextField(models.ModelField(pi, mi, models.FieldAPIName),
				"API name:", "llama3-8b-8192", m.APIName, 128),
			newTextField(models.ModelField(pi, mi, models.FieldUIName),
				"UI name:", "Llama 3 8B", m.UIName, 128),
			formField{
				kind:   fieldToggle,
				path:   models.ModelField(pi, mi, models.FieldSupportsTools),
				label:  "Tools:",
				toggle: m.SupportsTools,
			},
		)
	}

	return fields
}

// focusField moves input focus to fields[target] and returns target.
func focusField(fields []formField, current, target int) int {
	if current >= 0 && current < len(fields) && fields[current].kind == fieldText {
		fields[current].input.Blur()
	}
	if target >= 0 && target < len(fields) && fields[target].kind == fieldText {
		fields[target].input.Focus()
	}
	return target
}

// nextField cycles focus forward.
func nextField(fields []formField, current int) int {
	if len(fields) == 0 {
		return 0
	}
	return focusField(fields, current, (current+1)%len(fields))
}

// prevField cycles focus backward.
func prevField(fields []formField, current int) int {
	if len(fields) == 0 {
		return 0
	}
	target := current - 1
	if target < 0 {
		target = len(fields) - 1
	}
	return focusField(fields, current, target)
}
