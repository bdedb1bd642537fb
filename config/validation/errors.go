package validation

import (
	"errors"
	"strings"
)

// ErrEmptyInput is returned when an import is requested with no text. It is
// checked before any parsing happens.
var ErrEmptyInput = errors.New("no input provided")

// ParseError reports input that is not syntactically valid JSON. It is
// distinct from field-level validation failures: a ParseError means there
// was nothing well-formed to validate.
type ParseError struct {
	Msg string
}

func (e *ParseError) Error() string {
	return e.Msg
}

// FieldError is a single validation failure tagged with the path of the
// offending field, e.g. "0.models.1.apiName".
type FieldError struct {
	Path    string
	Message string
}

// FieldErrors is an ordered collection of field-level validation failures
// covering an entire candidate value in one pass. It is data: callers decide
// whether to block submission, annotate inputs, or abort an import.
type FieldErrors []FieldError

func (e FieldErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}
	parts := make([]string, len(e))
	for i, fe := range e {
		parts[i] = fe.Path + ": " + fe.Message
	}
	return strings.Join(parts, "; ")
}

// Add appends a failure for the given path.
func (e *FieldErrors) Add(path, message string) {
	*e = append(*e, FieldError{Path: path, Message: message})
}

// ByPath returns the message recorded for path, if any.
func (e FieldErrors) ByPath(path string) (string, bool) {
	for _, fe := range e {
		if fe.Path == path {
			return fe.Message, true
		}
	}
	return "", false
}

// Upsert replaces the message recorded for path, appending if absent.
func (e *FieldErrors) Upsert(path, message string) {
	for i, fe := range *e {
		if fe.Path == path {
			(*e)[i].Message = message
			return
		}
	}
	e.Add(path, message)
}

// Remove drops the entry recorded for path, if any.
func (e *FieldErrors) Remove(path string) {
	for i, fe := range *e {
		if fe.Path == path {
			*e = append((*e)[:i], (*e)[i+1:]...)
			return
		}
	}
}
