// Package session owns the live, editable provider configuration for one
// editor instance. The session is the only writer of its configuration;
// the validator never holds state. Scoping the configuration to a session
// value (rather than a package global) keeps it testable and allows several
// independent editors in one process.
package session

import (
	"fmt"
	"strconv"
	"strings"

	"provedit/config/models"
	"provedit/config/validation"
)

// Session holds the current configuration as an ordered, mutable list of
// providers, along with per-field validation errors for inline display.
type Session struct {
	providers []models.Provider
	fieldErrs validation.FieldErrors
}

// New creates a session seeded with one default provider containing one
// empty model, matching the state a fresh editor presents.
func New() *Session {
	return &Session{providers: []models.Provider{models.EmptyProvider()}}
}

// Providers returns a deep copy of the current configuration.
func (s *Session) Providers() []models.Provider {
	return models.CloneProviders(s.providers)
}

// Len returns the number of providers.
func (s *Session) Len() int {
	return len(s.providers)
}

// Provider returns a deep copy of the provider at index i.
func (s *Session) Provider(i int) (models.Provider, bool) {
	if i < 0 || i >= len(s.providers) {
		return models.Provider{}, false
	}
	return s.providers[i].Clone(), true
}

// AppendProvider appends a provider with blank fields and exactly one empty
// model. It never fails.
func (s *Session) AppendProvider() {
	s.providers = append(s.providers, models.EmptyProvider())
}

// AppendProviderFrom appends a copy of the given provider, used by the
// preset flow. The copy is editable without affecting the source.
func (s *Session) AppendProviderFrom(p models.Provider) {
	s.providers = append(s.providers, p.Clone())
}

// RemoveProvider removes the provider at index i. Out-of-range indices are
// a no-op; the UI only supplies valid ones, but the session does not rely
// on that.
func (s *Session) RemoveProvider(i int) {
	if i < 0 || i >= len(s.providers) {
		return
	}
	s.providers = append(s.providers[:i], s.providers[i+1:]...)
	s.reindexAfterProviderRemoval(i)
}

// AppendModel appends an empty model to the provider at index i. No-op on
// a bad index.
func (s *Session) AppendModel(i int) {
	if i < 0 || i >= len(s.providers) {
		return
	}
	s.providers[i].Models = append(s.providers[i].Models, models.EmptyModel())
}

// RemoveModel removes model j of provider i. Removing a provider's last
// model is permitted: the resulting empty list fails validation at submit
// time, which is where the at-least-one-model rule is enforced.
func (s *Session) RemoveModel(i, j int) {
	if i < 0 || i >= len(s.providers) {
		return
	}
	ms := s.providers[i].Models
	if j < 0 || j >= len(ms) {
		return
	}
	s.providers[i].Models = append(ms[:j], ms[j+1:]...)
	s.reindexAfterModelRemoval(i, j)
}

// SetField updates a single leaf field and re-validates just that field,
// keeping the inline error set current. Text fields take a string value,
// supportsTools a bool. Out-of-range paths are a no-op; an unknown field
// name is an error.
func (s *Session) SetField(path models.FieldPath, value any) error {
	if path.Provider < 0 || path.Provider >= len(s.providers) {
		return nil
	}
	p := &s.providers[path.Provider]

	if path.Model == models.NoModel {
		str, ok := value.(string)
		if !ok {
			return fmt.Errorf("field %s takes a string value", path.Field)
		}
		switch path.Field {
		case models.FieldProvider:
			p.Provider = str
		case models.FieldAPIKeyEnvVar:
			p.APIKeyEnvVar = str
		case models.FieldBaseURL:
			p.BaseURL = str
		default:
			return fmt.Errorf("unknown provider field %q", path.Field)
		}
	} else {
		if path.Model < 0 || path.Model >= len(p.Models) {
			return nil
		}
		m := &p.Models[path.Model]
		switch path.Field {
		case models.FieldAPIName, models.FieldUIName:
			str, ok := value.(string)
			if !ok {
				return fmt.Errorf("field %s takes a string value", path.Field)
			}
			if path.Field == models.FieldAPIName {
				m.APIName = str
			} else {
				m.UIName = str
			}
		case models.FieldSupportsTools:
			b, ok := value.(bool)
			if !ok {
				return fmt.Errorf("field %s takes a boolean value", path.Field)
			}
			m.SupportsTools = b
		default:
			return fmt.Errorf("unknown model field %q", path.Field)
		}
	}

	if msg, ok := validation.CheckField(s.providers, path); !ok {
		s.fieldErrs.Upsert(path.String(), msg)
	} else {
		s.fieldErrs.Remove(path.String())
	}
	return nil
}

// Submit validates the entire current state and, on success, returns it as
// a single-line JSON string with stable key order. On failure it returns
// the full field error report and serializes nothing.
func (s *Session) Submit() (string, error) {
	out := validation.Serialize(s.providers)
	parsed, err := validation.Parse(out)
	if err != nil {
		return "", err
	}
	if _, errs := validation.ValidateConfiguration(parsed); len(errs) > 0 {
		s.fieldErrs = errs
		return "", errs
	}
	s.fieldErrs = nil
	return out, nil
}

// ImportFrom parses jsonText and, if it validates, wholesale-replaces the
// current configuration with the result, discarding unsaved edits. Any
// failure, parse or validation, leaves the current state completely
// unmodified.
func (s *Session) ImportFrom(jsonText string) error {
	parsed, err := validation.Parse(jsonText)
	if err != nil {
		return err
	}
	providers, errs := validation.ValidateConfiguration(parsed)
	if len(errs) > 0 {
		return errs
	}
	s.providers = providers
	s.fieldErrs = nil
	return nil
}

// Errors returns a copy of the current per-field error set, in order.
func (s *Session) Errors() validation.FieldErrors {
	out := make(validation.FieldErrors, len(s.fieldErrs))
	copy(out, s.fieldErrs)
	return out
}

// ErrorFor returns the inline error recorded for a field path, if any.
func (s *Session) ErrorFor(path string) (string, bool) {
	return s.fieldErrs.ByPath(path)
}

// reindexAfterProviderRemoval drops error entries for the removed provider
// and shifts the indices of later ones so annotations stay attached to the
// right rows.
func (s *Session) reindexAfterProviderRemoval(removed int) {
	var kept validation.FieldErrors
	for _, fe := range s.fieldErrs {
		dot := strings.Index(fe.Path, ".")
		if dot < 0 {
			continue
		}
		idx, err := strconv.Atoi(fe.Path[:dot])
		if err != nil || idx == removed {
			continue
		}
		if idx > removed {
			idx--
		}
		kept.Add(strconv.Itoa(idx)+fe.Path[dot:], fe.Message)
	}
	s.fieldErrs = kept
}

// reindexAfterModelRemoval does the same for model rows within provider i.
func (s *Session) reindexAfterModelRemoval(provider, removed int) {
	prefix := strconv.Itoa(provider) + ".models."
	var kept validation.FieldErrors
	for _, fe := range s.fieldErrs {
		if !strings.HasPrefix(fe.Path, prefix) {
			kept = append(kept, fe)
			continue
		}
		rest := fe.Path[len(prefix):]
		dot := strings.Index(rest, ".")
		if dot < 0 {
			kept = append(kept, fe)
			continue
		}
		idx, err := strconv.Atoi(rest[:dot])
		if err != nil || idx == removed {
			continue
		}
		if idx > removed {
			idx--
		}
		kept.Add(prefix+strconv.Itoa(idx)+rest[dot:], fe.Message)
	}
	s.fieldErrs = kept
}
