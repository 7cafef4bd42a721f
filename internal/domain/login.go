package domain

import "time"

// LoginSuccessMessage is the fixed message returned by every successful login.
const LoginSuccessMessage = "Login successful"

// LoginOut is the response to a successful login.
type LoginOut struct {
	Username    string `json:"username"               validate:"required,max=20"`
	Message     string `json:"message"`
	AccessToken string `json:"access_token,omitempty"`
	ExpiresAt   string `json:"expires_at,omitempty"`
}

// NewLoginOut builds a LoginOut for username with the fixed success message.
func NewLoginOut(username string) LoginOut {
	return LoginOut{
		Username: username,
		Message:  LoginSuccessMessage,
	}
}

// WithToken returns a copy carrying an access token and its expiry in RFC 3339.
func (l LoginOut) WithToken(token string, expiresAt time.Time) LoginOut {
	l.AccessToken = token
	l.ExpiresAt = expiresAt.UTC().Format(time.RFC3339)
	return l
}
