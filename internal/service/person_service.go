package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/person-api/internal/domain"
	"github.com/phrazzld/person-api/internal/service/auth"
	"github.com/phrazzld/person-api/internal/store"
)

// PersonService provides person-related operations.
type PersonService interface {
	// Create hashes the person's password and returns the stored record.
	Create(ctx context.Context, p domain.Person) (domain.PersonRecord, error)

	// CheckExists returns domain.ErrPersonNotFound when id is not a known person.
	CheckExists(ctx context.Context, id int) error

	// Update merges p and loc for a known person id.
	Update(ctx context.Context, id int, p domain.Person, loc domain.Location) (domain.PersonWithLocation, error)
}

type personService struct {
	registry store.PersonRegistry
	hasher   auth.PasswordHasher
	logger   *slog.Logger
}

var _ PersonService = (*personService)(nil)

// NewPersonService creates a PersonService.
// It returns an error if any of the required dependencies are nil.
func NewPersonService(
	registry store.PersonRegistry,
	hasher auth.PasswordHasher,
	logger *slog.Logger,
) (PersonService, error) {
	if registry == nil {
		return nil, &ServiceError{Operation: "create_service", Message: "registry cannot be nil"}
	}
	if hasher == nil {
		return nil, &ServiceError{Operation: "create_service", Message: "hasher cannot be nil"}
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &personService{
		registry: registry,
		hasher:   hasher,
		logger:   logger.With("component", "person_service"),
	}, nil
}

func (s *personService) Create(ctx context.Context, p domain.Person) (domain.PersonRecord, error) {
	hash, err := s.hasher.Hash(p.Password)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to hash password", "error", err)
		return domain.PersonRecord{}, NewServiceError("create_person", "failed to hash password", err)
	}

	record := domain.PersonRecord{
		PersonOut:    p.Out(),
		PasswordHash: hash,
	}
	s.logger.DebugContext(ctx, "person created")
	return record, nil
}

func (s *personService) CheckExists(ctx context.Context, id int) error {
	if id <= 0 {
		return fmt.Errorf("%w: %d", domain.ErrInvalidPersonID, id)
	}

	ok, err := s.registry.Exists(ctx, id)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to consult person registry", "error", err, "person_id", id)
		return NewServiceError("check_person", "failed to consult person registry", err)
	}
	if !ok {
		return fmt.Errorf("%w: %d", domain.ErrPersonNotFound, id)
	}
	return nil
}

func (s *personService) Update(
	ctx context.Context,
	id int,
	p domain.Person,
	loc domain.Location,
) (domain.PersonWithLocation, error) {
	if err := s.CheckExists(ctx, id); err != nil {
		return domain.PersonWithLocation{}, err
	}

	return domain.PersonWithLocation{
		PersonOut: p.Out(),
		Location:  loc,
	}, nil
}
