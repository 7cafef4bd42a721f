package router

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/phrazzld/person-api/internal/binding"
)

// Errors returned while building or dispatching the route table.
var (
	ErrDuplicateRoute   = errors.New("duplicate route")
	ErrInvalidRoute     = errors.New("invalid route")
	ErrRouteNotFound    = errors.New("route not found")
	ErrMethodNotAllowed = errors.New("method not allowed")
)

// HandlerFunc handles a request whose parameters have been bound and
// validated. The returned value is written as JSON with the route's status.
type HandlerFunc func(ctx context.Context, in *binding.Values) (any, error)

// Route declares one endpoint.
type Route struct {
	Name    string
	Method  string
	Pattern string

	// Status is written on success; zero means 200.
	Status int

	Params []binding.Param

	// MaxBodyBytes caps the request body; zero leaves it unbounded.
	MaxBodyBytes int64

	// Middlewares wrap this route only, outermost first.
	Middlewares []func(http.Handler) http.Handler

	Handle HandlerFunc
}

// SuccessStatus returns the status written when the handler succeeds.
func (rt Route) SuccessStatus() int {
	if rt.Status == 0 {
		return http.StatusOK
	}
	return rt.Status
}

// Table is an ordered set of routes keyed by method and path template.
type Table struct {
	routes []Route
	index  map[string]int
}

// NewTable creates an empty route table.
func NewTable() *Table {
	return &Table{index: make(map[string]int)}
}

// Register adds rt to the table. Two routes with the same method and the same
// template, ignoring placeholder names, are rejected with ErrDuplicateRoute.
func (t *Table) Register(rt Route) error {
	if err := check(rt); err != nil {
		return err
	}

	rt.Method = strings.ToUpper(rt.Method)
	key := routeKey(rt.Method, rt.Pattern)
	if i, ok := t.index[key]; ok {
		return fmt.Errorf("%w: %s %s conflicts with %q", ErrDuplicateRoute, rt.Method, rt.Pattern, t.routes[i].Name)
	}

	t.index[key] = len(t.routes)
	t.routes = append(t.routes, rt)
	return nil
}

// Routes returns the registered routes in registration order.
func (t *Table) Routes() []Route {
	out := make([]Route, len(t.routes))
	copy(out, t.routes)
	return out
}

func check(rt Route) error {
	if rt.Method == "" || rt.Handle == nil {
		return fmt.Errorf("%w: %q needs a method and a handler", ErrInvalidRoute, rt.Name)
	}
	if !strings.HasPrefix(rt.Pattern, "/") {
		return fmt.Errorf("%w: pattern %q must start with /", ErrInvalidRoute, rt.Pattern)
	}

	placeholders := make(map[string]bool)
	for _, seg := range strings.Split(rt.Pattern, "/") {
		if name, ok := placeholder(seg); ok {
			placeholders[name] = true
		}
	}
	for _, p := range rt.Params {
		if p.Source == binding.SourcePath && !placeholders[p.Name] {
			return fmt.Errorf("%w: path parameter %q is not in pattern %q", ErrInvalidRoute, p.Name, rt.Pattern)
		}
	}
	return nil
}

func placeholder(seg string) (string, bool) {
	if len(seg) < 3 || seg[0] != '{' || seg[len(seg)-1] != '}' {
		return "", false
	}
	return seg[1 : len(seg)-1], true
}

// routeKey replaces placeholder names so /a/{x} and /a/{y} collide.
func routeKey(method, pattern string) string {
	segs := strings.Split(pattern, "/")
	for i, seg := range segs {
		if _, ok := placeholder(seg); ok {
			segs[i] = "{}"
		}
	}
	return method + " " + strings.Join(segs, "/")
}
