package validate

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type loginPayload struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (p *loginPayload) Normalize() {
	p.Email = strings.ToLower(strings.TrimSpace(p.Email))
}

type addressPayload struct {
	City string `json:"city" validate:"required"`
}

type profilePayload struct {
	Name    string         `json:"name" validate:"required"`
	Address addressPayload `json:"address"`
}

func jsonBinder(raw string) Binder {
	return func(dst any) error {
		return json.Unmarshal([]byte(raw), dst)
	}
}

func TestStructSchema_Valid(t *testing.T) {
	schema := Struct[loginPayload](NewValidator())

	parsed, err := schema.Parse(jsonBinder(`{"email":"a@b.com","password":"secret"}`))
	require.NoError(t, err)

	payload, ok := parsed.(*loginPayload)
	require.True(t, ok)
	assert.Equal(t, "a@b.com", payload.Email)
}

func TestStructSchema_NormalizesBeforeValidation(t *testing.T) {
	schema := Struct[loginPayload](NewValidator())

	parsed, err := schema.Parse(jsonBinder(`{"email":"  A@B.COM ","password":"secret"}`))
	require.NoError(t, err)

	payload := parsed.(*loginPayload)
	assert.Equal(t, "a@b.com", payload.Email)
}

func TestStructSchema_ReportsJSONTagNames(t *testing.T) {
	schema := Struct[loginPayload](NewValidator())

	_, err := schema.Parse(jsonBinder(`{"password":"secret"}`))
	var ve *Error
	require.ErrorAs(t, err, &ve)
	require.Len(t, ve.Issues, 1)
	assert.Equal(t, []string{"email"}, ve.Issues[0].Path)
	assert.Equal(t, "email: is required", ve.Issues[0].String())
}

func TestStructSchema_JoinsIssuesWithSemicolon(t *testing.T) {
	schema := Struct[loginPayload](NewValidator())

	_, err := schema.Parse(jsonBinder(`{}`))
	var ve *Error
	require.ErrorAs(t, err, &ve)
	require.Len(t, ve.Issues, 2)
	assert.Equal(t, "email: is required; password: is required", ve.Error())
}

func TestStructSchema_NestedFieldPath(t *testing.T) {
	schema := Struct[profilePayload](NewValidator())

	_, err := schema.Parse(jsonBinder(`{"name":"Taro"}`))
	var ve *Error
	require.ErrorAs(t, err, &ve)
	require.Len(t, ve.Issues, 1)
	assert.Equal(t, "address.city: is required", ve.Issues[0].String())
}

func TestStructSchema_MalformedInput(t *testing.T) {
	schema := Struct[loginPayload](NewValidator())

	_, err := schema.Parse(jsonBinder(`{not json`))
	var ve *Error
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "body: must be valid JSON", ve.Error())
}

func TestStructSchema_BindErrorBecomesBodyIssue(t *testing.T) {
	schema := Struct[loginPayload](NewValidator())

	_, err := schema.Parse(func(any) error { return errors.New("read failed") })
	var ve *Error
	require.ErrorAs(t, err, &ve)
	require.Len(t, ve.Issues, 1)
	assert.Equal(t, []string{"body"}, ve.Issues[0].Path)
}
