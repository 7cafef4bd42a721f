package api

import (
	"context"

	"github.com/phrazzld/person-api/internal/binding"
	"github.com/phrazzld/person-api/internal/domain"
	"github.com/phrazzld/person-api/internal/service"
)

// ContactHandler handles the contact form.
type ContactHandler struct {
	contacts service.ContactService
}

// NewContactHandler creates a ContactHandler.
func NewContactHandler(contacts service.ContactService) *ContactHandler {
	return &ContactHandler{contacts: contacts}
}

// Submit handles POST /contact and answers with the caller's User-Agent, or null.
func (h *ContactHandler) Submit(ctx context.Context, in *binding.Values) (any, error) {
	return h.contacts.Submit(ctx, domain.ContactMessage{
		FirstName: in.String("first_name"),
		LastName:  in.String("last_name"),
		Email:     in.String("email"),
		Message:   in.String("message"),
		UserAgent: in.OptionalString("user_agent"),
		Ads:       in.OptionalString("ads"),
	}), nil
}
