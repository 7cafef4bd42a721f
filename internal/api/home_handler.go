package api

import (
	"context"

	"github.com/phrazzld/person-api/internal/binding"
)

// Greeting is the body of the root endpoint.
type Greeting struct {
	Message string `json:"message"`
}

// Home answers the root endpoint.
func Home(context.Context, *binding.Values) (any, error) {
	return Greeting{Message: "Hello World"}, nil
}
