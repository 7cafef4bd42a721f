package api

import (
	"context"
	"fmt"
	"strconv"

	"github.com/phrazzld/person-api/internal/binding"
	"github.com/phrazzld/person-api/internal/domain"
	"github.com/phrazzld/person-api/internal/service"
)

// Parameter names shared by the person routes.
const (
	paramPersonID = "person_id"
	paramPerson   = "person"
	paramLocation = "location"
	paramName     = "name"
	paramAge      = "age"
)

// PersonHandler handles person endpoints.
type PersonHandler struct {
	persons service.PersonService
}

// NewPersonHandler creates a PersonHandler backed by persons.
func NewPersonHandler(persons service.PersonService) *PersonHandler {
	return &PersonHandler{persons: persons}
}

// PersonQueryResult echoes the query detail parameters.
type PersonQueryResult struct {
	Name domain.Optional[string] `json:"name"`
	Age  int                     `json:"age"`
}

// Create handles POST /person/new and returns the person without its password.
func (h *PersonHandler) Create(ctx context.Context, in *binding.Values) (any, error) {
	p, ok := binding.BodyAs[domain.Person](in, paramPerson)
	if !ok {
		return nil, fmt.Errorf("person body not bound")
	}

	record, err := h.persons.Create(ctx, p)
	if err != nil {
		return nil, err
	}
	return record.PersonOut, nil
}

// QueryDetail handles GET /person/detail.
func (h *PersonHandler) QueryDetail(_ context.Context, in *binding.Values) (any, error) {
	return PersonQueryResult{
		Name: in.OptionalString(paramName),
		Age:  in.Int(paramAge),
	}, nil
}

// Detail handles GET /person/detail/{person_id}.
func (h *PersonHandler) Detail(ctx context.Context, in *binding.Values) (any, error) {
	id := in.Int(paramPersonID)
	if err := h.persons.CheckExists(ctx, id); err != nil {
		return nil, err
	}
	return map[string]string{
		strconv.Itoa(id): fmt.Sprintf("The person with id %d exists", id),
	}, nil
}

// Update handles PUT /person/{person_id}.
func (h *PersonHandler) Update(ctx context.Context, in *binding.Values) (any, error) {
	p, ok := binding.BodyAs[domain.Person](in, paramPerson)
	if !ok {
		return nil, fmt.Errorf("person body not bound")
	}
	loc, ok := binding.BodyAs[domain.Location](in, paramLocation)
	if !ok {
		return nil, fmt.Errorf("location body not bound")
	}

	return h.persons.Update(ctx, in.Int(paramPersonID), p, loc)
}
