package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/phrazzld/person-api/internal/domain"
)

// Validatable is implemented by payloads with rules that cannot be written
// as struct tags. Validate runs after the tag rules pass.
type Validatable interface {
	Validate() error
}

// Validator checks values against validator tags.
type Validator struct {
	validate *validator.Validate
	enums    map[string][]string
}

// optional is satisfied by every domain.Optional instantiation.
type optional interface {
	ValuePtr() any
}

// New creates a Validator with the custom rules used across the API.
func New() *Validator {
	v := &Validator{
		validate: validator.New(validator.WithRequiredStructEnabled()),
		enums:    make(map[string][]string),
	}

	// Report JSON names instead of Go field names.
	v.validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})

	// Look through Optional wrappers. Absent and null become a nil pointer,
	// which the omitnil tag skips; a present value is checked even when empty.
	v.validate.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if o, ok := field.Interface().(optional); ok {
			return o.ValuePtr()
		}
		return nil
	},
		domain.Optional[string]{},
		domain.Optional[bool]{},
		domain.Optional[int]{},
		domain.Optional[domain.HairColor]{},
	)

	colors := make([]string, 0, len(domain.HairColors()))
	for _, c := range domain.HairColors() {
		colors = append(colors, string(c))
	}
	v.mustRegisterEnum("hair_color", colors)

	return v
}

// mustRegisterEnum adds a tag accepting exactly the given members.
func (v *Validator) mustRegisterEnum(tag string, members []string) {
	allowed := make(map[string]struct{}, len(members))
	for _, m := range members {
		allowed[m] = struct{}{}
	}
	err := v.validate.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
		if fl.Field().Kind() != reflect.String {
			return false
		}
		_, ok := allowed[fl.Field().String()]
		return ok
	})
	if err != nil {
		panic(fmt.Sprintf("register enum %q: %v", tag, err))
	}
	v.enums[tag] = members
}

// Struct validates every tagged field of s and returns Errors listing all
// failures, or nil.
func (v *Validator) Struct(s any) error {
	if err := v.validate.Struct(s); err != nil {
		return v.translate(err, "")
	}
	if custom, ok := s.(Validatable); ok {
		return custom.Validate()
	}
	return nil
}

// Var validates a single value against tag, reporting failures under field.
func (v *Validator) Var(field string, value any, tag string) error {
	if tag == "" {
		return nil
	}
	if err := v.validate.Var(value, tag); err != nil {
		return v.translate(err, field)
	}
	return nil
}

// translate converts validator errors into Errors. When field is set it
// overrides the name reported by the validator, which is empty for Var.
func (v *Validator) translate(err error, field string) error {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return fmt.Errorf("validation could not run: %w", err)
	}

	out := make(Errors, 0, len(validationErrs))
	for _, fe := range validationErrs {
		name := field
		if name == "" {
			name = fe.Field()
		}
		out = append(out, v.fieldError(name, fe))
	}
	return out
}

func (v *Validator) fieldError(name string, fe validator.FieldError) FieldError {
	rule := fe.Tag()
	if fe.Param() != "" {
		rule += "=" + fe.Param()
	}

	out := FieldError{
		Field: name,
		Kind:  KindConstraintViolation,
		Rule:  rule,
	}

	isString := fe.Kind() == reflect.String

	switch fe.Tag() {
	case "required":
		out.Kind = KindMissingParameter
		out.Message = "field required"
	case "oneof":
		out.Kind = KindInvalidEnumValue
		out.Message = enumMessage(strings.Fields(fe.Param()))
	case "min", "gte":
		if isString && fe.Tag() == "min" {
			out.Message = fmt.Sprintf("ensure this value has at least %s characters", fe.Param())
		} else {
			out.Message = fmt.Sprintf("ensure this value is greater than or equal to %s", fe.Param())
		}
	case "max", "lte":
		if isString && fe.Tag() == "max" {
			out.Message = fmt.Sprintf("ensure this value has at most %s characters", fe.Param())
		} else {
			out.Message = fmt.Sprintf("ensure this value is less than or equal to %s", fe.Param())
		}
	case "gt":
		out.Message = fmt.Sprintf("ensure this value is greater than %s", fe.Param())
	case "lt":
		out.Message = fmt.Sprintf("ensure this value is less than %s", fe.Param())
	case "email":
		out.Message = "value is not a valid email address"
	case "url":
		out.Message = "invalid or missing URL scheme"
	case "http_url":
		out.Message = "URL scheme not permitted; use http or https"
	default:
		if members, ok := v.enums[fe.Tag()]; ok {
			out.Kind = KindInvalidEnumValue
			out.Message = enumMessage(members)
		} else {
			out.Message = fmt.Sprintf("failed on the '%s' rule", rule)
		}
	}
	return out
}

func enumMessage(members []string) string {
	quoted := make([]string, len(members))
	for i, m := range members {
		quoted[i] = "'" + m + "'"
	}
	return "value is not a valid enumeration member; permitted: " + strings.Join(quoted, ", ")
}
