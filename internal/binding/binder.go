package binding

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/phrazzld/person-api/internal/validation"
)

// DefaultMaxMemory is the part of a multipart body kept in memory before
// file parts spill to disk.
const DefaultMaxMemory = 8 << 20

// ErrBodyTooLarge is returned when the request body exceeds the limit set
// with http.MaxBytesReader.
var ErrBodyTooLarge = errors.New("request body too large")

// Binder binds declared parameters from requests.
type Binder struct {
	validator *validation.Validator
	maxMemory int64
}

// NewBinder creates a Binder that validates with v.
func NewBinder(v *validation.Validator) *Binder {
	return &Binder{
		validator: v,
		maxMemory: DefaultMaxMemory,
	}
}

// Bind extracts every parameter in params from r. All parameters are
// processed; the returned error is a validation.Errors aggregating every
// failure, ErrBodyTooLarge, or nil.
func (b *Binder) Bind(r *http.Request, params []Param) (*Values, error) {
	values := newValues()
	var errs validation.Errors

	if needsForm(params) {
		if err := b.parseForm(r); err != nil {
			if isTooLarge(err) {
				return nil, fmt.Errorf("%w: %v", ErrBodyTooLarge, err)
			}
			errs = append(errs, validation.FieldError{
				Field:   "body",
				In:      string(SourceForm),
				Kind:    validation.KindConstraintViolation,
				Rule:    "form",
				Message: "could not parse form data",
			})
			return nil, errs
		}
	}

	var bodies []Param
	for _, p := range params {
		switch p.Source {
		case SourceBody:
			bodies = append(bodies, p)
		case SourceFile:
			errs = append(errs, b.bindFile(r, p, values)...)
		default:
			errs = append(errs, b.bindScalar(r, p, values)...)
		}
	}

	if len(bodies) > 0 {
		bodyErrs, err := b.bindBodies(r, bodies, values)
		if err != nil {
			return nil, err
		}
		errs = append(errs, bodyErrs...)
	}

	if len(errs) > 0 {
		return nil, errs
	}
	return values, nil
}

func needsForm(params []Param) bool {
	for _, p := range params {
		if p.Source == SourceForm || p.Source == SourceFile {
			return true
		}
	}
	return false
}

func (b *Binder) parseForm(r *http.Request) error {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "multipart/form-data" {
		return r.ParseMultipartForm(b.maxMemory)
	}
	return r.ParseForm()
}

func isTooLarge(err error) bool {
	var maxErr *http.MaxBytesError
	return errors.As(err, &maxErr)
}

// rawValue returns the raw string for a scalar parameter and whether it was sent.
func rawValue(r *http.Request, p Param) (string, bool) {
	switch p.Source {
	case SourcePath:
		v := chi.URLParam(r, p.Name)
		return v, v != ""
	case SourceQuery:
		vals, ok := r.URL.Query()[p.Name]
		if !ok || len(vals) == 0 {
			return "", false
		}
		return vals[0], true
	case SourceForm:
		vals, ok := r.PostForm[p.Name]
		if !ok || len(vals) == 0 {
			return "", false
		}
		return vals[0], true
	case SourceHeader:
		vals := r.Header.Values(strings.ReplaceAll(p.Name, "_", "-"))
		if len(vals) == 0 {
			return "", false
		}
		return vals[0], true
	case SourceCookie:
		c, err := r.Cookie(p.Name)
		if err != nil {
			return "", false
		}
		return c.Value, true
	default:
		return "", false
	}
}

func missing(p Param) validation.FieldError {
	return validation.FieldError{
		Field:   p.Name,
		In:      string(p.Source),
		Kind:    validation.KindMissingParameter,
		Rule:    "required",
		Message: "field required",
	}
}

func (b *Binder) bindScalar(r *http.Request, p Param, values *Values) validation.Errors {
	raw, ok := rawValue(r, p)
	if !ok {
		if p.Required {
			return validation.Errors{missing(p)}
		}
		if p.Default != nil {
			values.set(p.Name, p.Default)
		}
		return nil
	}

	typed, err := convert(raw, p.Type)
	if err != nil {
		return validation.Errors{{
			Field:   p.Name,
			In:      string(p.Source),
			Kind:    validation.KindConstraintViolation,
			Rule:    p.Type.String(),
			Message: fmt.Sprintf("value is not a valid %s", typeDescription(p.Type)),
		}}
	}

	if err := b.validator.Var(p.Name, typed, p.Rules); err != nil {
		var fieldErrs validation.Errors
		if errors.As(err, &fieldErrs) {
			return withSource(fieldErrs, p.Source)
		}
		return validation.Errors{{
			Field:   p.Name,
			In:      string(p.Source),
			Kind:    validation.KindConstraintViolation,
			Rule:    p.Rules,
			Message: err.Error(),
		}}
	}

	values.set(p.Name, typed)
	return nil
}

func convert(raw string, t Type) (any, error) {
	switch t {
	case TypeInt:
		return strconv.Atoi(strings.TrimSpace(raw))
	case TypeBool:
		return strconv.ParseBool(strings.TrimSpace(raw))
	default:
		return raw, nil
	}
}

func typeDescription(t Type) string {
	switch t {
	case TypeInt:
		return "integer"
	case TypeBool:
		return "boolean"
	default:
		return "string"
	}
}

func withSource(errs validation.Errors, source Source) validation.Errors {
	for i := range errs {
		errs[i].In = string(source)
	}
	return errs
}

func (b *Binder) bindFile(r *http.Request, p Param, values *Values) validation.Errors {
	if r.MultipartForm != nil {
		if files := r.MultipartForm.File[p.Name]; len(files) > 0 {
			values.set(p.Name, files[0])
			return nil
		}
	}
	if p.Required {
		return validation.Errors{missing(p)}
	}
	return nil
}

// bindBodies decodes the JSON body. One declared body parameter receives the
// whole document; several are read from top-level keys named after them.
func (b *Binder) bindBodies(r *http.Request, bodies []Param, values *Values) (validation.Errors, error) {
	data, err := readBody(r)
	if err != nil {
		if isTooLarge(err) {
			return nil, fmt.Errorf("%w: %v", ErrBodyTooLarge, err)
		}
		return validation.Errors{bodyError("body", fmt.Sprintf("could not read request body: %v", err))}, nil
	}

	if len(strings.TrimSpace(string(data))) == 0 {
		var errs validation.Errors
		for _, p := range bodies {
			if p.Required {
				errs = append(errs, missing(p))
			}
		}
		return errs, nil
	}

	if len(bodies) == 1 {
		return b.decodeBody(data, bodies[0], "", values), nil
	}

	var parts map[string]json.RawMessage
	if err := json.Unmarshal(data, &parts); err != nil {
		return validation.Errors{decodeError("body", "", err)}, nil
	}

	var errs validation.Errors
	for _, p := range bodies {
		part, ok := parts[p.Name]
		if !ok || string(part) == "null" {
			if p.Required {
				errs = append(errs, missing(p))
			}
			continue
		}
		errs = append(errs, b.decodeBody(part, p, p.Name, values)...)
	}
	return errs, nil
}

func readBody(r *http.Request) ([]byte, error) {
	if r.Body == nil {
		return nil, nil
	}
	return io.ReadAll(r.Body)
}

func (b *Binder) decodeBody(data []byte, p Param, prefix string, values *Values) validation.Errors {
	target := p.newTarget()
	if err := json.Unmarshal(data, target); err != nil {
		return validation.Errors{decodeError(p.Name, prefix, err)}
	}

	if err := b.validator.Struct(target); err != nil {
		var fieldErrs validation.Errors
		if errors.As(err, &fieldErrs) {
			return withSource(fieldErrs.Prefix(prefix), SourceBody)
		}
		return validation.Errors{bodyError(p.Name, err.Error())}
	}

	values.set(p.Name, target)
	return nil
}

func bodyError(field, message string) validation.FieldError {
	return validation.FieldError{
		Field:   field,
		In:      string(SourceBody),
		Kind:    validation.KindConstraintViolation,
		Rule:    "json",
		Message: message,
	}
}

// decodeError names the offending field when the JSON decoder reports one.
func decodeError(name, prefix string, err error) validation.FieldError {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		field := typeErr.Field
		if prefix != "" {
			field = prefix + "." + field
		}
		fe := bodyError(field, fmt.Sprintf("value is not a valid %s", typeErr.Type.String()))
		fe.Rule = "type"
		return fe
	}
	return bodyError(name, "invalid JSON body")
}
