package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/phrazzld/person-api/internal/api/shared"
	"github.com/phrazzld/person-api/internal/binding"
)

// ErrorResponder writes the response for a failed request.
type ErrorResponder func(w http.ResponseWriter, r *http.Request, err error)

// Dispatcher adapts table routes to http handlers.
type Dispatcher struct {
	binder  *binding.Binder
	respond ErrorResponder
}

// NewDispatcher creates a Dispatcher that binds with b and reports failures
// through respond.
func NewDispatcher(b *binding.Binder, respond ErrorResponder) *Dispatcher {
	return &Dispatcher{binder: b, respond: respond}
}

// Handler returns the http.Handler serving rt.
func (d *Dispatcher) Handler(rt Route) http.Handler {
	status := rt.SuccessStatus()

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if rt.MaxBodyBytes > 0 {
			r.Body = http.MaxBytesReader(w, r.Body, rt.MaxBodyBytes)
		}

		in, err := d.binder.Bind(r, rt.Params)
		if err != nil {
			d.respond(w, r, err)
			return
		}

		result, err := rt.Handle(r.Context(), in)
		if err != nil {
			d.respond(w, r, err)
			return
		}

		shared.RespondWithJSON(w, r, status, result)
	})
}

// Mount registers every route of t on r, along with handlers for unknown
// paths and for known paths requested with the wrong method.
func (d *Dispatcher) Mount(r chi.Router, t *Table) {
	for _, rt := range t.Routes() {
		r.With(rt.Middlewares...).Method(rt.Method, rt.Pattern, d.Handler(rt))
	}

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		d.respond(w, r, ErrRouteNotFound)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		d.respond(w, r, ErrMethodNotAllowed)
	})
}
