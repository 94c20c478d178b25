// Package validation validates configuration and manifest structs with
// go-playground/validator and reports failures per field.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/broady/typebridge/internal/metaname"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report fields by their yaml/koanf key instead of the Go field name.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		for _, tag := range []string{"yaml", "koanf"} {
			name, _, _ := strings.Cut(f.Tag.Get(tag), ",")
			if name != "" {
				return name
			}
		}
		return f.Name
	})

	mustRegister(v, "modulename", func(fl validator.FieldLevel) bool {
		_, ok := metaname.ModuleName(fl.Field().String())
		return ok
	})
	mustRegister(v, "metaname", func(fl validator.FieldLevel) bool {
		return validMetadataName(fl.Field().String())
	})
	mustRegister(v, "generic1", func(fl validator.FieldLevel) bool {
		name := fl.Field().String()
		_, simple := metaname.Split(name)
		return validMetadataName(name) && metaname.TotalArity(simple) == 1
	})
	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(err)
	}
}

// validMetadataName reports whether name is a non-empty metadata name
// without empty namespace or nesting segments.
func validMetadataName(name string) bool {
	if name == "" || strings.ContainsAny(name, " \t\n,[]") {
		return false
	}
	ns, simple := metaname.Split(name)
	if ns != "" {
		for _, seg := range strings.Split(ns, metaname.NamespaceSeparator) {
			if seg == "" {
				return false
			}
		}
	}
	for _, seg := range metaname.Nesting(simple) {
		if seg == "" {
			return false
		}
	}
	return true
}

// Error lists the fields that failed validation.
type Error struct {
	// Fields maps a field path (e.g. "modules[0].name") to its message.
	Fields map[string]string
}

func (e *Error) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	msgs := make([]string, len(keys))
	for i, k := range keys {
		msgs[i] = k + ": " + e.Fields[k]
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

// Struct validates s. Field failures are returned as *Error; any other
// failure (e.g. s is not a struct) is returned as is.
func Struct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var valErrs validator.ValidationErrors
	if !errors.As(err, &valErrs) {
		return err
	}
	out := &Error{Fields: make(map[string]string, len(valErrs))}
	for _, fe := range valErrs {
		out.Fields[fieldPath(fe)] = message(fe)
	}
	return out
}

// fieldPath strips the top-level struct name from the namespace.
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	return ns
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "required"
	case "min":
		if fe.Kind() == reflect.Slice {
			return fmt.Sprintf("must have at least %s item(s)", fe.Param())
		}
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	case "modulename":
		return "must be a module name"
	case "metaname":
		return "must be a metadata name"
	case "generic1":
		return "must name a generic definition with one type parameter"
	default:
		if fe.Param() != "" {
			return fmt.Sprintf("failed %s=%s validation", fe.Tag(), fe.Param())
		}
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}
