package router

import (
	"context"
	"testing"

	"github.com/phrazzld/person-api/internal/binding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noop(context.Context, *binding.Values) (any, error) { return nil, nil }

func TestTableRegister(t *testing.T) {
	table := NewTable()

	require.NoError(t, table.Register(Route{Name: "detail", Method: "get", Pattern: "/person/detail/{person_id}", Handle: noop,
		Params: []binding.Param{binding.Path("person_id", binding.Int())}}))
	require.NoError(t, table.Register(Route{Name: "update", Method: "PUT", Pattern: "/person/{person_id}", Handle: noop}))
	require.NoError(t, table.Register(Route{Name: "query", Method: "GET", Pattern: "/person/detail", Handle: noop}))

	routes := table.Routes()
	require.Len(t, routes, 3)
	assert.Equal(t, "detail", routes[0].Name)
	assert.Equal(t, "GET", routes[0].Method)
	assert.Equal(t, "PUT", routes[1].Method)
	assert.Equal(t, "/person/detail", routes[2].Pattern)
}

func TestTableRegisterRejectsDuplicates(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
	}{
		{"same template", "/person/detail/{person_id}"},
		{"renamed placeholder", "/person/detail/{id}"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			table := NewTable()
			require.NoError(t, table.Register(Route{Name: "first", Method: "GET", Pattern: "/person/detail/{person_id}", Handle: noop}))

			err := table.Register(Route{Name: "second", Method: "GET", Pattern: tc.pattern, Handle: noop})
			require.ErrorIs(t, err, ErrDuplicateRoute)
			assert.Contains(t, err.Error(), "first")
			assert.Len(t, table.Routes(), 1)
		})
	}

	t.Run("different method is not a duplicate", func(t *testing.T) {
		table := NewTable()
		require.NoError(t, table.Register(Route{Method: "GET", Pattern: "/person/{id}", Handle: noop}))
		assert.NoError(t, table.Register(Route{Method: "PUT", Pattern: "/person/{id}", Handle: noop}))
	})
}

func TestTableRegisterRejectsInvalidRoutes(t *testing.T) {
	tests := []struct {
		name  string
		route Route
	}{
		{"missing handler", Route{Method: "GET", Pattern: "/"}},
		{"missing method", Route{Pattern: "/", Handle: noop}},
		{"relative pattern", Route{Method: "GET", Pattern: "person", Handle: noop}},
		{"unknown path parameter", Route{Method: "GET", Pattern: "/person/{id}", Handle: noop,
			Params: []binding.Param{binding.Path("person_id")}}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, NewTable().Register(tc.route), ErrInvalidRoute)
		})
	}
}

func TestSuccessStatus(t *testing.T) {
	assert.Equal(t, 200, Route{}.SuccessStatus())
	assert.Equal(t, 201, Route{Status: 201}.SuccessStatus())
}
