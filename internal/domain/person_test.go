package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func TestHairColors(t *testing.T) {
	assert.Equal(t, []HairColor{"white", "brown", "black", "blond", "red"}, HairColors())
}

func TestPersonOutOmitsPassword(t *testing.T) {
	p := Person{
		FirstName: "John",
		LastName:  "Doe",
		Age:       intPtr(25),
		Email:     "john@doe.com",
		HairColor: Some(HairColorBrown),
		IsMarried: Some(true),
		Password:  "12345678",
	}

	data, err := json.Marshal(p.Out())
	require.NoError(t, err)

	var fields map[string]any
	require.NoError(t, json.Unmarshal(data, &fields))

	assert.NotContains(t, fields, "password")
	assert.Equal(t, "John", fields["first_name"])
	assert.Equal(t, float64(25), fields["age"])
	assert.Equal(t, "brown", fields["hair_color"])
	assert.Equal(t, true, fields["is_married"])
	assert.Nil(t, fields["homepage"])
}

func TestPersonRecordHidesHash(t *testing.T) {
	rec := PersonRecord{
		PersonOut:    PersonOut{FirstName: "John"},
		PasswordHash: "$2a$10$hash",
	}
	data, err := json.Marshal(rec)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "hash")
	assert.NotContains(t, string(data), "password")
}

func TestPersonWithLocationFlattens(t *testing.T) {
	merged := PersonWithLocation{
		PersonOut: PersonOut{FirstName: "John", LastName: "Doe", Age: 25, Email: "john@doe.com"},
		Location:  Location{City: "CDMX", State: "CDMX", Country: "Mexico"},
	}
	data, err := json.Marshal(merged)
	require.NoError(t, err)

	var fields map[string]any
	require.NoError(t, json.Unmarshal(data, &fields))
	for _, key := range []string{"first_name", "last_name", "age", "email", "hair_color", "is_married", "homepage", "city", "state", "country"} {
		assert.Contains(t, fields, key)
	}
	assert.NotContains(t, fields, "password")
}

func TestLocationRoundTrip(t *testing.T) {
	loc := Location{City: "CDMX", State: "CDMX", Country: "Mexico"}

	data, err := json.Marshal(loc)
	require.NoError(t, err)

	var decoded Location
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, loc, decoded)
}

func TestLoginOut(t *testing.T) {
	out := NewLoginOut("ojitos369")
	assert.Equal(t, LoginSuccessMessage, out.Message)
	assert.Empty(t, out.AccessToken)

	exp := time.Date(2030, 1, 2, 3, 4, 5, 0, time.FixedZone("x", 3600))
	withToken := out.WithToken("tok", exp)
	assert.Equal(t, "tok", withToken.AccessToken)
	assert.Equal(t, "2030-01-02T02:04:05Z", withToken.ExpiresAt)
	assert.Empty(t, out.AccessToken, "original value is not modified")
}
