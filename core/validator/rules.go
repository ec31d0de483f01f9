package validator

import (
	"fmt"
	"net/mail"
	"reflect"
	"slices"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

func passRule() Rule {
	return Rule{Check: func() bool { return true }}
}

func requiredRule(field string, value reflect.Value, params []string) Rule {
	return Rule{
		Check: func() bool {
			switch value.Kind() {
			case reflect.String:
				return strings.TrimSpace(value.String()) != ""
			case reflect.Slice, reflect.Map, reflect.Array:
				return value.Len() > 0
			case reflect.Pointer, reflect.Interface:
				return !value.IsNil()
			default:
				return !value.IsZero()
			}
		},
		Error: ValidationError{Field: field, Message: "field is required"},
	}
}

func minRule(field string, value reflect.Value, params []string) Rule {
	if len(params) < 1 {
		return passRule()
	}

	switch value.Kind() {
	case reflect.String, reflect.Slice, reflect.Array, reflect.Map:
		min, err := strconv.Atoi(params[0])
		if err != nil {
			return passRule()
		}
		return Rule{
			Check: func() bool { return length(value) >= min },
			Error: ValidationError{Field: field, Message: fmt.Sprintf("must have at least %d characters or items", min)},
		}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		min, err := strconv.ParseInt(params[0], 10, 64)
		if err != nil {
			return passRule()
		}
		return Rule{
			Check: func() bool { return value.Int() >= min },
			Error: ValidationError{Field: field, Message: fmt.Sprintf("must be at least %d", min)},
		}
	case reflect.Float32, reflect.Float64:
		min, err := strconv.ParseFloat(params[0], 64)
		if err != nil {
			return passRule()
		}
		return Rule{
			Check: func() bool { return value.Float() >= min },
			Error: ValidationError{Field: field, Message: fmt.Sprintf("must be at least %v", min)},
		}
	default:
		return passRule()
	}
}

func maxRule(field string, value reflect.Value, params []string) Rule {
	if len(params) < 1 {
		return passRule()
	}

	switch value.Kind() {
	case reflect.String, reflect.Slice, reflect.Array, reflect.Map:
		max, err := strconv.Atoi(params[0])
		if err != nil {
			return passRule()
		}
		return Rule{
			Check: func() bool { return length(value) <= max },
			Error: ValidationError{Field: field, Message: fmt.Sprintf("must have at most %d characters or items", max)},
		}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		max, err := strconv.ParseInt(params[0], 10, 64)
		if err != nil {
			return passRule()
		}
		return Rule{
			Check: func() bool { return value.Int() <= max },
			Error: ValidationError{Field: field, Message: fmt.Sprintf("must be at most %d", max)},
		}
	case reflect.Float32, reflect.Float64:
		max, err := strconv.ParseFloat(params[0], 64)
		if err != nil {
			return passRule()
		}
		return Rule{
			Check: func() bool { return value.Float() <= max },
			Error: ValidationError{Field: field, Message: fmt.Sprintf("must be at most %v", max)},
		}
	default:
		return passRule()
	}
}

func emailRule(field string, value reflect.Value, params []string) Rule {
	return Rule{
		Check: func() bool {
			if value.Kind() != reflect.String {
				return false
			}
			s := value.String()
			if s == "" {
				return true // combine with required to reject empties
			}
			addr, err := mail.ParseAddress(s)
			return err == nil && addr.Address == s
		},
		Error: ValidationError{Field: field, Message: "must be a valid email address"},
	}
}

func uuidRule(field string, value reflect.Value, params []string) Rule {
	return Rule{
		Check: func() bool {
			if value.Kind() != reflect.String {
				return false
			}
			s := value.String()
			return s == "" || uuid.Validate(s) == nil
		},
		Error: ValidationError{Field: field, Message: "must be a valid UUID"},
	}
}

func inRule(field string, value reflect.Value, params []string) Rule {
	if len(params) == 0 {
		return passRule()
	}
	return Rule{
		Check: func() bool {
			s := fmt.Sprintf("%v", value.Interface())
			return s == "" || slices.Contains(params, s)
		},
		Error: ValidationError{Field: field, Message: fmt.Sprintf("must be one of: %s", strings.Join(params, ", "))},
	}
}

func numericRule(field string, value reflect.Value, params []string) Rule {
	return Rule{
		Check: func() bool {
			if value.Kind() != reflect.String {
				return true
			}
			s := value.String()
			if s == "" {
				return true
			}
			_, err := strconv.ParseFloat(s, 64)
			return err == nil
		},
		Error: ValidationError{Field: field, Message: "must be numeric"},
	}
}

func length(value reflect.Value) int {
	if value.Kind() == reflect.String {
		return len([]rune(value.String()))
	}
	return value.Len()
}
