package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/phrazzld/person-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func intPtr(i int) *int { return &i }

func samplePerson() domain.Person {
	return domain.Person{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Age:       intPtr(36),
		Email:     "ada@example.com",
		HairColor: domain.Some(domain.HairColorBrown),
		Password:  "analytical",
	}
}

func TestNewPersonServiceValidatesDependencies(t *testing.T) {
	_, err := NewPersonService(nil, &MockPasswordHasher{}, nil)
	assert.Error(t, err)

	_, err = NewPersonService(&MockPersonRegistry{}, nil, nil)
	assert.Error(t, err)

	svc, err := NewPersonService(&MockPersonRegistry{}, &MockPasswordHasher{}, nil)
	require.NoError(t, err)
	assert.NotNil(t, svc)
}

func TestPersonServiceCreate(t *testing.T) {
	hasher := &MockPasswordHasher{}
	hasher.On("Hash", "analytical").Return("$2a$hash", nil)
	svc, err := NewPersonService(&MockPersonRegistry{}, hasher, nil)
	require.NoError(t, err)

	record, err := svc.Create(context.Background(), samplePerson())
	require.NoError(t, err)
	assert.Equal(t, "$2a$hash", record.PasswordHash)
	assert.Equal(t, 36, record.Age)

	raw, err := json.Marshal(record)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "password")
	assert.NotContains(t, string(raw), "analytical")
	hasher.AssertExpectations(t)
}

func TestPersonServiceCreateHashFailure(t *testing.T) {
	hasher := &MockPasswordHasher{}
	hasher.On("Hash", mock.Anything).Return("", errors.New("cost too high"))
	svc, err := NewPersonService(&MockPersonRegistry{}, hasher, nil)
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), samplePerson())
	var svcErr *ServiceError
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, "create_person", svcErr.Operation)
}

func TestPersonServiceCheckExists(t *testing.T) {
	registryErr := errors.New("connection refused")

	tests := []struct {
		name      string
		id        int
		exists    bool
		lookupErr error
		wantErr   error
		noLookup  bool
	}{
		{name: "known id", id: 3, exists: true},
		{name: "unknown id", id: 21, wantErr: domain.ErrPersonNotFound},
		{name: "non-positive id", id: 0, wantErr: domain.ErrInvalidPersonID, noLookup: true},
		{name: "registry failure", id: 2, lookupErr: registryErr, wantErr: registryErr},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			registry := &MockPersonRegistry{}
			if !tc.noLookup {
				registry.On("Exists", mock.Anything, tc.id).Return(tc.exists, tc.lookupErr)
			}
			svc, err := NewPersonService(registry, &MockPasswordHasher{}, nil)
			require.NoError(t, err)

			err = svc.CheckExists(context.Background(), tc.id)
			if tc.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tc.wantErr)
			}
			registry.AssertExpectations(t)
		})
	}
}

func TestPersonServiceUpdate(t *testing.T) {
	registry := &MockPersonRegistry{}
	registry.On("Exists", mock.Anything, 3).Return(true, nil)
	registry.On("Exists", mock.Anything, 21).Return(false, nil)
	svc, err := NewPersonService(registry, &MockPasswordHasher{}, nil)
	require.NoError(t, err)

	loc := domain.Location{City: "London", State: "England", Country: "UK"}

	merged, err := svc.Update(context.Background(), 3, samplePerson(), loc)
	require.NoError(t, err)

	raw, err := json.Marshal(merged)
	require.NoError(t, err)
	var fields map[string]any
	require.NoError(t, json.Unmarshal(raw, &fields))
	assert.Equal(t, "Ada", fields["first_name"])
	assert.Equal(t, "brown", fields["hair_color"])
	assert.Equal(t, "London", fields["city"])
	assert.Equal(t, "UK", fields["country"])
	assert.NotContains(t, fields, "password")

	_, err = svc.Update(context.Background(), 21, samplePerson(), loc)
	assert.ErrorIs(t, err, domain.ErrPersonNotFound)
}
