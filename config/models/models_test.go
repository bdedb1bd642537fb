package models

import "testing"

func TestFieldPathString(t *testing.T) {
	tests := []struct {
		name string
		path FieldPath
		want string
	}{
		{"Provider-level field", ProviderField(0, FieldProvider), "0.provider"},
		{"Base URL field", ProviderField(2, FieldBaseURL), "2.baseUrl"},
		{"Model-level field", ModelField(0, 1, FieldAPIName), "0.models.1.apiName"},
		{"Supports tools", ModelField(3, 0, FieldSupportsTools), "3.models.0.supportsTools"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.path.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseFieldPath(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    FieldPath
		wantErr bool
	}{
		{"Provider field", "0.provider", ProviderField(0, FieldProvider), false},
		{"Model field", "1.models.2.uiName", ModelField(1, 2, FieldUIName), false},
		{"Round-trip of ModelsPath is not a leaf", "0.models", FieldPath{}, true},
		{"Negative provider index", "-1.provider", FieldPath{}, true},
		{"Non-numeric provider index", "x.provider", FieldPath{}, true},
		{"Wrong middle segment", "0.model.1.apiName", FieldPath{}, true},
		{"Non-numeric model index", "0.models.x.apiName", FieldPath{}, true},
		{"Too many segments", "0.models.1.apiName.extra", FieldPath{}, true},
		{"Empty string", "", FieldPath{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseFieldPath(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseFieldPath(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("ParseFieldPath(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseFieldPathRoundTrip(t *testing.T) {
	paths := []FieldPath{
		ProviderField(0, FieldAPIKeyEnvVar),
		ModelField(4, 7, FieldSupportsTools),
	}
	for _, p := range paths {
		got, err := ParseFieldPath(p.String())
		if err != nil {
			t.Fatalf("ParseFieldPath(%q) error = %v", p.String(), err)
		}
		if got != p {
			t.Errorf("round-trip of %q = %+v, want %+v", p.String(), got, p)
		}
	}
}

func TestClone(t *testing.T) {
	orig := Provider{
		Provider:     "Groq",
		APIKeyEnvVar: "GROQ_API_KEY",
		Models:       []Model{{APIName: "llama3-8b-8192"}},
	}

	clone := orig.Clone()
	clone.Models[0].APIName = "mutated"

	if orig.Models[0].APIName != "llama3-8b-8192" {
		t.Errorf("Clone shares model storage with the original")
	}
}

func TestEmptyProvider(t *testing.T) {
	p := EmptyProvider()
	if len(p.Models) != 1 {
		t.Fatalf("EmptyProvider model count = %d, want 1", len(p.Models))
	}
	if p.Models[0] != (Model{}) {
		t.Errorf("EmptyProvider model = %+v, want zero value", p.Models[0])
	}
}
