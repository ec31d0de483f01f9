package validator

import (
	"fmt"
	"strings"
)

// ValidationError describes one failed rule on one field.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors collects every failed rule for a struct. It implements
// the error interface; the pipeline serializes it into the 422 response
// details.
type ValidationErrors []ValidationError

// Error implements the error interface.
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return "validation failed"
	}
	parts := make([]string, len(e))
	for i, ve := range e {
		parts[i] = fmt.Sprintf("%s: %s", ve.Field, ve.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// IsEmpty reports whether any rule failed.
func (e ValidationErrors) IsEmpty() bool {
	return len(e) == 0
}

// Fields groups failure messages by field name for machine-readable output.
func (e ValidationErrors) Fields() map[string][]string {
	if len(e) == 0 {
		return nil
	}
	fields := make(map[string][]string)
	for _, ve := range e {
		fields[ve.Field] = append(fields[ve.Field], ve.Message)
	}
	return fields
}

func (e *ValidationErrors) add(err ValidationError) {
	*e = append(*e, err)
}
