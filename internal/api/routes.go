package api

import (
	"fmt"
	"net/http"

	"github.com/phrazzld/person-api/internal/api/middleware"
	"github.com/phrazzld/person-api/internal/api/router"
	"github.com/phrazzld/person-api/internal/binding"
	"github.com/phrazzld/person-api/internal/domain"
	"github.com/phrazzld/person-api/internal/service"
	"github.com/phrazzld/person-api/internal/service/auth"
)

// DefaultMaxBodyBytes caps JSON and form bodies when RouteDeps.MaxBodyBytes
// is zero.
const DefaultMaxBodyBytes int64 = 1 << 20

// RouteDeps are the collaborators the route table's handlers need.
type RouteDeps struct {
	Persons  service.PersonService
	Contacts service.ContactService
	Uploads  service.UploadService
	JWT      auth.JWTService

	// MaxUploadBytes caps the /post-image request body.
	MaxUploadBytes int64
	// MaxBodyBytes caps every other route that reads a body.
	MaxBodyBytes int64
}

// NewRouteTable declares every endpoint of the service.
func NewRouteTable(deps RouteDeps) (*router.Table, error) {
	persons := NewPersonHandler(deps.Persons)
	authHandler := NewAuthHandler(deps.JWT)
	contacts := NewContactHandler(deps.Contacts)
	uploads := NewUploadHandler(deps.Uploads)
	authMiddleware := middleware.NewAuthMiddleware(deps.JWT)

	maxBody := deps.MaxBodyBytes
	if maxBody <= 0 {
		maxBody = DefaultMaxBodyBytes
	}

	routes := []router.Route{
		{
			Name:    "home",
			Method:  http.MethodGet,
			Pattern: "/",
			Handle:  Home,
		},
		{
			Name:         "create_person",
			Method:       http.MethodPost,
			Pattern:      "/person/new",
			Status:       http.StatusCreated,
			MaxBodyBytes: maxBody,
			Params: []binding.Param{
				binding.Body[domain.Person](paramPerson, binding.Required()),
			},
			Handle: persons.Create,
		},
		{
			Name:    "person_query_detail",
			Method:  http.MethodGet,
			Pattern: "/person/detail",
			Params: []binding.Param{
				binding.Query(paramName, binding.Rules("min=1,max=50")),
				binding.Query(paramAge, binding.Int(), binding.Required()),
			},
			Handle: persons.QueryDetail,
		},
		{
			Name:    "person_detail",
			Method:  http.MethodGet,
			Pattern: "/person/detail/{person_id}",
			Params: []binding.Param{
				binding.Path(paramPersonID, binding.Int(), binding.Rules("gt=0")),
			},
			Handle: persons.Detail,
		},
		{
			Name:         "update_person",
			Method:       http.MethodPut,
			Pattern:      "/person/{person_id}",
			MaxBodyBytes: maxBody,
			Params: []binding.Param{
				binding.Path(paramPersonID, binding.Int(), binding.Rules("gt=0")),
				binding.Body[domain.Person](paramPerson, binding.Required()),
				binding.Body[domain.Location](paramLocation, binding.Required()),
			},
			Handle: persons.Update,
		},
		{
			Name:         "login",
			Method:       http.MethodPost,
			Pattern:      "/login",
			MaxBodyBytes: maxBody,
			Params: []binding.Param{
				binding.Form("username", binding.Required(), binding.Rules("max=20")),
				binding.Form("password", binding.Required()),
			},
			Handle: authHandler.Login,
		},
		{
			Name:        "session",
			Method:      http.MethodGet,
			Pattern:     "/session",
			Middlewares: []func(http.Handler) http.Handler{authMiddleware.Authenticate},
			Handle:      authHandler.Session,
		},
		{
			Name:         "contact",
			Method:       http.MethodPost,
			Pattern:      "/contact",
			MaxBodyBytes: maxBody,
			Params: []binding.Param{
				binding.Form("first_name", binding.Required(), binding.Rules("min=1,max=20")),
				binding.Form("last_name", binding.Required(), binding.Rules("min=1,max=20")),
				binding.Form("email", binding.Required(), binding.Rules("email")),
				binding.Form("message", binding.Required(), binding.Rules("min=20")),
				binding.Header("user_agent"),
				binding.Cookie("ads"),
			},
			Handle: contacts.Submit,
		},
		{
			Name:         "post_image",
			Method:       http.MethodPost,
			Pattern:      "/post-image",
			MaxBodyBytes: deps.MaxUploadBytes,
			Params: []binding.Param{
				binding.File(paramImage, binding.Required()),
			},
			Handle: uploads.PostImage,
		},
	}

	table := router.NewTable()
	for _, rt := range routes {
		if err := table.Register(rt); err != nil {
			return nil, fmt.Errorf("failed to register route %s: %w", rt.Name, err)
		}
	}
	return table, nil
}
