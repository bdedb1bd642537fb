// Package validation defines the shape of a valid provider configuration
// and validates arbitrary candidate JSON against it. Validation is total:
// every invalid field across the whole tree is reported in one pass, so a
// caller can annotate every offending input at once.
package validation

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"

	"provedit/config/models"
	"provedit/internal/utils"

	"github.com/tidwall/gjson"
)

// Parse checks that text is syntactically valid JSON and returns the parsed
// result. Empty input yields ErrEmptyInput, malformed JSON a *ParseError.
func Parse(text string) (gjson.Result, error) {
	if strings.TrimSpace(text) == "" {
		return gjson.Result{}, ErrEmptyInput
	}
	if !gjson.Valid(text) {
		return gjson.Result{}, &ParseError{Msg: "input is not valid JSON"}
	}
	return gjson.Parse(text), nil
}

// ValidateModel validates one model entry. path is the location of the
// entry within the configuration, e.g. "0.models.1". Invalid fields are
// coerced to their zero value in the returned model.
func ValidateModel(path string, candidate gjson.Result) (models.Model, FieldErrors) {
	var errs FieldErrors

	if !candidate.IsObject() {
		errs.Add(path, "model entry must be an object")
		return models.Model{}, errs
	}

	var m models.Model
	m.APIName = requireString(&errs, path, models.FieldAPIName, candidate)
	m.UIName = requireString(&errs, path, models.FieldUIName, candidate)

	tools := candidate.Get(models.FieldSupportsTools)
	switch {
	case !tools.Exists():
		errs.Add(path+"."+models.FieldSupportsTools, "supportsTools is required")
	case !tools.IsBool():
		errs.Add(path+"."+models.FieldSupportsTools, "supportsTools must be a boolean")
	default:
		m.SupportsTools = tools.Bool()
	}

	return m, errs
}

// ValidateProvider validates one provider entry at path (e.g. "0"). Every
// model is validated independently; one bad model does not suppress the
// errors of its siblings.
func ValidateProvider(path string, candidate gjson.Result) (models.Provider, FieldErrors) {
	var errs FieldErrors

	if !candidate.IsObject() {
		errs.Add(path, "provider entry must be an object")
		return models.Provider{}, errs
	}

	var p models.Provider
	p.Provider = requireString(&errs, path, models.FieldProvider, candidate)
	p.APIKeyEnvVar = requireString(&errs, path, models.FieldAPIKeyEnvVar, candidate)

	// baseUrl is optional: absent and "" are equivalent, anything else must
	// be a well-formed http(s) URL.
	base := candidate.Get(models.FieldBaseURL)
	if base.Exists() {
		if base.Type != gjson.String {
			errs.Add(path+"."+models.FieldBaseURL, "baseUrl must be a string")
		} else if base.String() != "" && !utils.ValidateURL(base.String()) {
			errs.Add(path+"."+models.FieldBaseURL, "invalid URL format")
		} else {
			p.BaseURL = base.String()
		}
	}

	modelsPath := path + "." + "models"
	list := candidate.Get("models")
	switch {
	case !list.Exists():
		errs.Add(modelsPath, "models is required")
	case !list.IsArray():
		errs.Add(modelsPath, "models must be an array")
	case len(list.Array()) == 0:
		errs.Add(modelsPath, "models cannot be empty")
	default:
		entries := list.Array()
		p.Models = make([]models.Model, 0, len(entries))
		for i, entry := range entries {
			m, merrs := ValidateModel(modelsPath+"."+strconv.Itoa(i), entry)
			errs = append(errs, merrs...)
			p.Models = append(p.Models, m)
		}
	}

	return p, errs
}

// ValidateConfiguration validates a full candidate configuration: a JSON
// array of provider entries, order preserved. An empty array is structurally
// valid at this level; requiring at least one provider is left to the form's
// seeded default rather than the validator.
func ValidateConfiguration(candidate gjson.Result) ([]models.Provider, FieldErrors) {
	var errs FieldErrors

	if !candidate.IsArray() {
		errs.Add("", "configuration must be an array")
		return nil, errs
	}

	entries := candidate.Array()
	providers := make([]models.Provider, 0, len(entries))
	for i, entry := range entries {
		p, perrs := ValidateProvider(strconv.Itoa(i), entry)
		errs = append(errs, perrs...)
		providers = append(providers, p)
	}

	if len(errs) > 0 {
		return nil, errs
	}
	return providers, nil
}

// CheckField re-checks a single leaf field of the live configuration for
// inline error display. The bool reports whether the field is valid; an
// out-of-range path is treated as valid since there is nothing to annotate.
func CheckField(providers []models.Provider, path models.FieldPath) (string, bool) {
	if path.Provider < 0 || path.Provider >= len(providers) {
		return "", true
	}
	p := providers[path.Provider]

	if path.Model == models.NoModel {
		switch path.Field {
		case models.FieldProvider:
			if strings.TrimSpace(p.Provider) == "" {
				return "provider cannot be empty", false
			}
		case models.FieldAPIKeyEnvVar:
			if strings.TrimSpace(p.APIKeyEnvVar) == "" {
				return "apiKeyEnvVar cannot be empty", false
			}
		case models.FieldBaseURL:
			if p.BaseURL != "" && !utils.ValidateURL(p.BaseURL) {
				return "invalid URL format", false
			}
		}
		return "", true
	}

	if path.Model < 0 || path.Model >= len(p.Models) {
		return "", true
	}
	m := p.Models[path.Model]
	switch path.Field {
	case models.FieldAPIName:
		if strings.TrimSpace(m.APIName) == "" {
			return "apiName cannot be empty", false
		}
	case models.FieldUIName:
		if strings.TrimSpace(m.UIName) == "" {
			return "uiName cannot be empty", false
		}
	}
	return "", true
}

// Serialize renders the provider list as a single-line JSON string with
// stable key order. HTML escaping is disabled so base URLs with query
// strings survive byte-for-byte.
func Serialize(providers []models.Provider) string {
	if providers == nil {
		providers = []models.Provider{}
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(providers); err != nil {
		// A provider list contains only strings, bools and slices; the
		// encoder cannot fail on it.
		panic(err)
	}
	return strings.TrimSuffix(buf.String(), "\n")
}

// requireString validates a required non-empty string field of an object
// and records errors for missing, mistyped, or empty values.
func requireString(errs *FieldErrors, path, field string, obj gjson.Result) string {
	v := obj.Get(field)
	switch {
	case !v.Exists():
		errs.Add(path+"."+field, field+" is required")
	case v.Type != gjson.String:
		errs.Add(path+"."+field, field+" must be a string")
	case v.String() == "":
		errs.Add(path+"."+field, field+" cannot be empty")
	default:
		return v.String()
	}
	return ""
}

