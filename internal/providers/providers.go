// Package providers holds built-in provider presets: ready-to-edit
// configuration entries for well-known AI APIs. A preset carries the
// conventional API key environment variable, the default base URL, and a
// starter model list; the user edits the copy, never the preset.
package providers

import (
	"errors"
	"sort"

	"provedit/config/models"
)

// registry stores all registered presets by name.
var registry = make(map[string]models.Provider)

// Register registers a preset under name, replacing any existing one.
func Register(name string, preset models.Provider) {
	registry[name] = preset
}

// Get returns a deep copy of the preset registered under name.
func Get(name string) (models.Provider, error) {
	preset, ok := registry[name]
	if !ok {
		return models.Provider{}, errors.New("unknown preset: " + name)
	}
	return preset.Clone(), nil
}

// List returns all registered preset names, sorted.
func List() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func init() {
	Register("anthropic", models.Provider{
		Provider:     "Anthropic",
		APIKeyEnvVar: "ANTHROPIC_API_KEY",
		BaseURL:      "https://api.anthropic.com/v1",
		Models: []models.Model{
			{APIName: "claude-sonnet-4-20250514", UIName: "Claude Sonnet 4", SupportsTools: true},
			{APIName: "claude-3-5-haiku-20241022", UIName: "Claude 3.5 Haiku", SupportsTools: true},
		},
	})

	Register("openai", models.Provider{
		Provider:     "OpenAI",
		APIKeyEnvVar: "OPENAI_API_KEY",
		BaseURL:      "https://api.openai.com/v1",
		Models: []models.Model{
			{APIName: "gpt-4o", UIName: "GPT-4o", SupportsTools: true},
			{APIName: "gpt-4o-mini", UIName: "GPT-4o mini", SupportsTools: true},
		},
	})

	Register("groq", models.Provider{
		Provider:     "Groq",
		APIKeyEnvVar: "GROQ_API_KEY",
		BaseURL:      "https://api.groq.com/openai/v1",
		Models: []models.Model{
			{APIName: "llama3-8b-8192", UIName: "Llama 3 8B", SupportsTools: true},
			{APIName: "llama3-70b-8192", UIName: "Llama 3 70B", SupportsTools: true},
		},
	})

	Register("openrouter", models.Provider{
		Provider:     "OpenRouter",
		APIKeyEnvVar: "OPENROUTER_API_KEY",
		BaseURL:      "https://openrouter.ai/api/v1",
		Models: []models.Model{
			{APIName: "meta-llama/llama-3.1-8b-instruct", UIName: "Llama 3.1 8B", SupportsTools: false},
		},
	})

	Register("ollama", models.Provider{
		Provider:     "Ollama",
		APIKeyEnvVar: "OLLAMA_API_KEY",
		BaseURL:      "http://localhost:11434/v1",
		Models: []models.Model{
			{APIName: "llama3.1", UIName: "Llama 3.1 (local)", SupportsTools: false},
		},
	})
}
