// Package models defines the provider configuration data model.
package models

import (
	"fmt"
	"strconv"
	"strings"
)

// Model represents one selectable AI model under a provider.
// Field order fixes the JSON key order on export.
type Model struct {
	APIName       string `json:"apiName"`
	UIName        string `json:"uiName"`
	SupportsTools bool   `json:"supportsTools"`
}

// Provider represents one upstream AI API configuration. The API key itself
// is never stored, only the name of the environment variable holding it.
type Provider struct {
	Provider     string  `json:"provider"`
	APIKeyEnvVar string  `json:"apiKeyEnvVar"`
	BaseURL      string  `json:"baseUrl,omitempty"`
	Models       []Model `json:"models"`
}

// Clone returns a deep copy of the provider.
func (p Provider) Clone() Provider {
	out := p
	out.Models = make([]Model, len(p.Models))
	copy(out.Models, p.Models)
	return out
}

// CloneProviders returns a deep copy of a provider list.
func CloneProviders(providers []Provider) []Provider {
	out := make([]Provider, len(providers))
	for i, p := range providers {
		out[i] = p.Clone()
	}
	return out
}

// EmptyModel returns a model with all fields zeroed, as appended by the form.
func EmptyModel() Model {
	return Model{}
}

// EmptyProvider returns a provider with blank fields and exactly one empty
// model, as appended by the form.
func EmptyProvider() Provider {
	return Provider{Models: []Model{EmptyModel()}}
}

// Leaf field names addressable through a FieldPath.
const (
	FieldProvider      = "provider"
	FieldAPIKeyEnvVar  = "apiKeyEnvVar"
	FieldBaseURL       = "baseUrl"
	FieldAPIName       = "apiName"
	FieldUIName        = "uiName"
	FieldSupportsTools = "supportsTools"
)

// NoModel marks a FieldPath that addresses a provider-level field.
const NoModel = -1

// FieldPath addresses a single leaf field in the configuration tree:
// a provider index, an optional model index, and a field name.
type FieldPath struct {
	Provider int
	Model    int // NoModel for provider-level fields
	Field    string
}

// ProviderField returns the path of a provider-level field.
func ProviderField(provider int, field string) FieldPath {
	return FieldPath{Provider: provider, Model: NoModel, Field: field}
}

// ModelField returns the path of a model-level field.
func ModelField(provider, model int, field string) FieldPath {
	return FieldPath{Provider: provider, Model: model, Field: field}
}

// String renders the path in gjson syntax relative to the providers array,
// e.g. "0.provider" or "0.models.1.apiName".
func (p FieldPath) String() string {
	if p.Model == NoModel {
		return fmt.Sprintf("%d.%s", p.Provider, p.Field)
	}
	return fmt.Sprintf("%d.models.%d.%s", p.Provider, p.Model, p.Field)
}

// ModelsPath returns the path of a provider's models array, used to tag
// "models must not be empty" errors.
func ModelsPath(provider int) string {
	return fmt.Sprintf("%d.models", provider)
}

// ParseFieldPath parses the String form back into a FieldPath.
func ParseFieldPath(s string) (FieldPath, error) {
	parts := strings.Split(s, ".")
	switch len(parts) {
	case 2:
		idx, err := strconv.Atoi(parts[0])
		if err != nil || idx < 0 {
			return FieldPath{}, fmt.Errorf("invalid provider index in path %q", s)
		}
		return ProviderField(idx, parts[1]), nil
	case 4:
		if parts[1] != "models" {
			return FieldPath{}, fmt.Errorf("invalid field path %q", s)
		}
		pi, err := strconv.Atoi(parts[0])
		if err != nil || pi < 0 {
			return FieldPath{}, fmt.Errorf("invalid provider index in path %q", s)
		}
		mi, err := strconv.Atoi(parts[2])
		if err != nil || mi < 0 {
			return FieldPath{}, fmt.Errorf("invalid model index in path %q", s)
		}
		return ModelField(pi, mi, parts[3]), nil
	default:
		return FieldPath{}, fmt.Errorf("invalid field path %q", s)
	}
}
