package validator

import (
	"fmt"
	"reflect"
	"strings"
	"sync"
)

// Rule pairs a check with the error reported when it fails.
type Rule struct {
	Check func() bool
	Error ValidationError
}

// RuleFunc builds a Rule for a field value. Params come from the tag, e.g.
// `validate:"min:3"` yields params ["3"].
type RuleFunc func(field string, value reflect.Value, params []string) Rule

var (
	registryMu sync.RWMutex
	registry   = map[string]RuleFunc{
		"required": requiredRule,
		"min":      minRule,
		"max":      maxRule,
		"email":    emailRule,
		"uuid":     uuidRule,
		"in":       inRule,
		"numeric":  numericRule,
	}
)

// RegisterRule adds a custom rule to the registry, overriding any built-in
// with the same name.
func RegisterRule(name string, fn RuleFunc) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[name] = fn
}

// ValidateStruct validates a struct by its `validate` field tags. Rules are
// semicolon-separated, parameters follow a colon:
//
//	type createUser struct {
//		Email string `json:"email" validate:"required;email"`
//		Name  string `json:"name" validate:"required;min:2;max:64"`
//		Role  string `json:"role" validate:"in:admin,member"`
//	}
//
// Returns ValidationErrors listing every failed rule, or nil when the value
// is valid.
func ValidateStruct(v any) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer {
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return fmt.Errorf("validator: must pass a struct or pointer to struct, got %T", v)
	}

	var errs ValidationErrors
	validateStructRecursive(rv, "", &errs)
	if errs.IsEmpty() {
		return nil
	}
	return errs
}

func validateStructRecursive(rv reflect.Value, prefix string, errs *ValidationErrors) {
	rt := rv.Type()
	for i := range rv.NumField() {
		field := rv.Field(i)
		structField := rt.Field(i)
		if !structField.IsExported() {
			continue
		}

		tag := structField.Tag.Get("validate")
		if tag == "-" {
			continue
		}

		fieldPath := fieldName(structField)
		if prefix != "" {
			fieldPath = prefix + "." + fieldPath
		}

		// Untagged nested structs are validated recursively.
		if field.Kind() == reflect.Struct && tag == "" {
			validateStructRecursive(field, fieldPath, errs)
			continue
		}

		if field.Kind() == reflect.Pointer {
			if field.IsNil() {
				if tag != "" {
					validateField(fieldPath, field, tag, errs)
				}
				continue
			}
			elem := field.Elem()
			if elem.Kind() == reflect.Struct && tag == "" {
				validateStructRecursive(elem, fieldPath, errs)
				continue
			}
			if tag != "" {
				validateField(fieldPath, elem, tag, errs)
			}
			continue
		}

		if tag != "" {
			validateField(fieldPath, field, tag, errs)
		}
	}
}

// fieldName prefers the json tag name so validation errors match the wire
// representation the client sent.
func fieldName(field reflect.StructField) string {
	if tag := field.Tag.Get("json"); tag != "" && tag != "-" {
		if name, _, _ := strings.Cut(tag, ","); name != "" {
			return name
		}
	}
	return field.Name
}

func validateField(fieldPath string, field reflect.Value, tag string, errs *ValidationErrors) {
	registryMu.RLock()
	defer registryMu.RUnlock()

	for _, ruleStr := range strings.Split(tag, ";") {
		ruleStr = strings.TrimSpace(ruleStr)
		if ruleStr == "" {
			continue
		}

		name, paramStr, _ := strings.Cut(ruleStr, ":")
		name = strings.TrimSpace(name)

		var params []string
		if paramStr = strings.TrimSpace(paramStr); paramStr != "" {
			params = strings.Split(paramStr, ",")
			for i := range params {
				params[i] = strings.TrimSpace(params[i])
			}
		}

		fn, ok := registry[name]
		if !ok {
			continue
		}
		rule := fn(fieldPath, field, params)
		if rule.Check != nil && !rule.Check() {
			errs.add(rule.Error)
		}
	}
}
