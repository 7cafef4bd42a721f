package binding

// Source names where in the request a parameter is read from.
type Source string

// Parameter sources.
const (
	SourcePath   Source = "path"
	SourceQuery  Source = "query"
	SourceBody   Source = "body"
	SourceForm   Source = "form"
	SourceHeader Source = "header"
	SourceCookie Source = "cookie"
	SourceFile   Source = "file"
)

// Type is the Go type a scalar parameter is converted to.
type Type int

// Scalar parameter types.
const (
	TypeString Type = iota
	TypeInt
	TypeBool
)

func (t Type) String() string {
	switch t {
	case TypeInt:
		return "int"
	case TypeBool:
		return "bool"
	default:
		return "string"
	}
}

// Param declares one value a route extracts from the request.
type Param struct {
	Source   Source
	Name     string
	Type     Type
	Required bool

	// Default is used when an optional parameter is absent. Nil leaves the
	// parameter absent.
	Default any

	// Rules is a validator tag applied to the converted value, e.g. "gt=0".
	Rules string

	// newTarget allocates the destination for body parameters.
	newTarget func() any
}

// Option customizes a Param.
type Option func(*Param)

// Required marks the parameter as mandatory.
func Required() Option {
	return func(p *Param) { p.Required = true }
}

// Int converts the raw value to an int.
func Int() Option {
	return func(p *Param) { p.Type = TypeInt }
}

// Bool converts the raw value to a bool.
func Bool() Option {
	return func(p *Param) { p.Type = TypeBool }
}

// Default sets the value used when the parameter is absent. The value must
// already have the parameter's Go type.
func Default(v any) Option {
	return func(p *Param) { p.Default = v }
}

// Rules sets the validator tag checked against the converted value.
func Rules(tag string) Option {
	return func(p *Param) { p.Rules = tag }
}

func newParam(source Source, name string, opts []Option) Param {
	p := Param{Source: source, Name: name}
	for _, opt := range opts {
		opt(&p)
	}
	return p
}

// Path declares a path segment parameter. Path parameters are always required.
func Path(name string, opts ...Option) Param {
	p := newParam(SourcePath, name, opts)
	p.Required = true
	return p
}

// Query declares a query string parameter.
func Query(name string, opts ...Option) Param {
	return newParam(SourceQuery, name, opts)
}

// Form declares a form field, URL-encoded or multipart.
func Form(name string, opts ...Option) Param {
	return newParam(SourceForm, name, opts)
}

// Header declares a header parameter. Underscores in name match hyphens, so
// "user_agent" reads User-Agent.
func Header(name string, opts ...Option) Param {
	return newParam(SourceHeader, name, opts)
}

// Cookie declares a cookie parameter.
func Cookie(name string, opts ...Option) Param {
	return newParam(SourceCookie, name, opts)
}

// File declares a multipart file parameter.
func File(name string, opts ...Option) Param {
	return newParam(SourceFile, name, opts)
}

// Body declares a JSON body parameter decoded into a T and validated with its
// struct tags. When a route declares several body parameters each one is read
// from the top-level key of the same name.
func Body[T any](name string, opts ...Option) Param {
	p := newParam(SourceBody, name, opts)
	p.newTarget = func() any { return new(T) }
	return p
}
