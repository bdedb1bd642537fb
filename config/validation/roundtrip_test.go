package validation

import (
	"reflect"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"provedit/config/models"
)

// genIdentifier generates non-empty strings safe for any text field.
func genIdentifier() gopter.Gen {
	return gen.RegexMatch(`[A-Za-z][A-Za-z0-9_-]{0,15}`)
}

// genModel generates a valid model entry.
func genModel() gopter.Gen {
	return gopter.CombineGens(
		genIdentifier(), // APIName
		genIdentifier(), // UIName
		gen.Bool(),      // SupportsTools
	).Map(func(values []interface{}) models.Model {
		return models.Model{
			APIName:       values[0].(string),
			UIName:        values[1].(string),
			SupportsTools: values[2].(bool),
		}
	})
}

// genProvider generates a valid provider with 1 to 4 models and an optional
// base URL.
func genProvider() gopter.Gen {
	return gopter.CombineGens(
		genIdentifier(),                // Provider
		genIdentifier(),                // APIKeyEnvVar
		gen.Bool(),                     // has base URL
		genIdentifier(),                // base URL host part
		gen.SliceOfN(4, genModel()),    // candidate models
		gen.IntRange(1, 4),             // how many models to keep
	).Map(func(values []interface{}) models.Provider {
		baseURL := ""
		if values[2].(bool) {
			baseURL = "https://" + values[3].(string) + ".example.com/v1"
		}
		candidates := values[4].([]models.Model)
		n := values[5].(int)
		if n > len(candidates) {
			n = len(candidates)
		}
		return models.Provider{
			Provider:     values[0].(string),
			APIKeyEnvVar: values[1].(string),
			BaseURL:      baseURL,
			Models:       append([]models.Model{}, candidates[:n]...),
		}
	})
}

func genConfiguration() gopter.Gen {
	return gen.SliceOfN(3, genProvider())
}

// For any valid configuration C, validating serialize(C) succeeds and
// yields a value structurally equal to C.
func TestSerializeValidateRoundTrip(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("serialize then validate is the identity", prop.ForAll(
		func(cfg []models.Provider) bool {
			out := Serialize(cfg)
			parsed, err := Parse(out)
			if err != nil {
				return false
			}
			got, errs := ValidateConfiguration(parsed)
			if len(errs) > 0 {
				return false
			}
			return reflect.DeepEqual(got, cfg)
		},
		genConfiguration(),
	))

	properties.Property("serialization is deterministic", prop.ForAll(
		func(cfg []models.Provider) bool {
			return Serialize(cfg) == Serialize(models.CloneProviders(cfg))
		},
		genConfiguration(),
	))

	properties.TestingRun(t)
}

// Blanking any required string field of a valid configuration produces at
// least one error tagged with exactly that field's path.
func TestBlankedFieldIsReported(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	fields := []string{models.FieldProvider, models.FieldAPIKeyEnvVar}

	properties.Property("blanked provider field is reported at its path", prop.ForAll(
		func(cfg []models.Provider, rawIdx, rawField int) bool {
			if len(cfg) == 0 {
				return true
			}
			idx := rawIdx % len(cfg)
			field := fields[rawField%len(fields)]

			mutated := models.CloneProviders(cfg)
			switch field {
			case models.FieldProvider:
				mutated[idx].Provider = ""
			case models.FieldAPIKeyEnvVar:
				mutated[idx].APIKeyEnvVar = ""
			}

			parsed, err := Parse(Serialize(mutated))
			if err != nil {
				return false
			}
			_, errs := ValidateConfiguration(parsed)
			_, found := errs.ByPath(models.ProviderField(idx, field).String())
			return found
		},
		genConfiguration(),
		gen.IntRange(0, 100),
		gen.IntRange(0, 100),
	))

	properties.TestingRun(t)
}
