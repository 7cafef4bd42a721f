package api

import (
	"context"
	"fmt"

	"github.com/phrazzld/person-api/internal/api/shared"
	"github.com/phrazzld/person-api/internal/binding"
	"github.com/phrazzld/person-api/internal/domain"
	"github.com/phrazzld/person-api/internal/service/auth"
)

// AuthHandler handles login and session endpoints.
type AuthHandler struct {
	jwtService auth.JWTService
}

// NewAuthHandler creates an AuthHandler issuing tokens with jwtService.
func NewAuthHandler(jwtService auth.JWTService) *AuthHandler {
	return &AuthHandler{jwtService: jwtService}
}

// SessionResponse identifies the holder of a valid token.
type SessionResponse struct {
	Username string `json:"username"`
}

// Login handles POST /login. Any well-formed credentials are accepted; the
// response carries an access token for the username.
func (h *AuthHandler) Login(ctx context.Context, in *binding.Values) (any, error) {
	username := in.String("username")

	token, err := h.jwtService.GenerateToken(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	return domain.NewLoginOut(username).WithToken(token.Value, token.ExpiresAt), nil
}

// Session handles GET /session for requests that passed authentication.
func (h *AuthHandler) Session(ctx context.Context, _ *binding.Values) (any, error) {
	username, ok := shared.GetUsername(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	return SessionResponse{Username: username}, nil
}
