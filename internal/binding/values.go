package binding

import (
	"mime/multipart"

	"github.com/phrazzld/person-api/internal/domain"
)

// Values holds the bound parameters of one request, keyed by name.
// Absent optional parameters have no entry.
type Values struct {
	values map[string]any
}

func newValues() *Values {
	return &Values{values: make(map[string]any)}
}

// NewValues builds Values from a map. It is intended for tests that call
// handlers without a request.
func NewValues(m map[string]any) *Values {
	v := newValues()
	for k, val := range m {
		v.values[k] = val
	}
	return v
}

func (v *Values) set(name string, val any) {
	v.values[name] = val
}

// Has reports whether name was bound.
func (v *Values) Has(name string) bool {
	_, ok := v.values[name]
	return ok
}

// Get returns the raw bound value.
func (v *Values) Get(name string) (any, bool) {
	val, ok := v.values[name]
	return val, ok
}

// String returns a bound string, or "" when absent.
func (v *Values) String(name string) string {
	s, _ := v.values[name].(string)
	return s
}

// Int returns a bound int, or 0 when absent.
func (v *Values) Int(name string) int {
	i, _ := v.values[name].(int)
	return i
}

// OptionalString returns a bound string as an Optional.
func (v *Values) OptionalString(name string) domain.Optional[string] {
	if s, ok := v.values[name].(string); ok {
		return domain.Some(s)
	}
	return domain.Optional[string]{}
}

// File returns a bound multipart file header, or nil when absent.
func (v *Values) File(name string) *multipart.FileHeader {
	fh, _ := v.values[name].(*multipart.FileHeader)
	return fh
}

// BodyAs returns the body parameter name decoded as T.
func BodyAs[T any](v *Values, name string) (T, bool) {
	switch val := v.values[name].(type) {
	case *T:
		return *val, true
	case T:
		return val, true
	default:
		var zero T
		return zero, false
	}
}
