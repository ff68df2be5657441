package apierror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructors(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		code    string
		message string
		status  int
	}{
		{"unauthorized", NewUnauthorized("Admin only"), CodeUnauthorized, "Admin only", http.StatusUnauthorized},
		{"validation", NewValidation("name_en: is required"), CodeValidation, "name_en: is required", http.StatusBadRequest},
		{"not found", NewNotFound("item"), CodeNotFound, "item not found", http.StatusNotFound},
		{"conflict", NewConflict("slug already in use"), CodeConflict, "slug already in use", http.StatusConflict},
		{"internal", NewInternal(errors.New("db down")), CodeInternal, "Internal server error", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var apiErr *APIError
			require.ErrorAs(t, tt.err, &apiErr)
			assert.Equal(t, tt.code, apiErr.Code)
			assert.Equal(t, tt.message, apiErr.Message)
			assert.Equal(t, tt.status, apiErr.StatusCode)
		})
	}
}

func TestInternal_HidesCause(t *testing.T) {
	cause := errors.New("pq: connection refused")
	err := NewInternal(cause)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Internal server error", apiErr.Message)
	assert.ErrorIs(t, err, cause)
}

func TestToAPIError(t *testing.T) {
	t.Run("api error kept", func(t *testing.T) {
		in := NewConflict("taken")
		out := ToAPIError(in)
		assert.Equal(t, CodeConflict, out.Code)
	})

	t.Run("wrapped api error kept", func(t *testing.T) {
		in := fmt.Errorf("while saving: %w", NewNotFound("user"))
		out := ToAPIError(in)
		assert.Equal(t, CodeNotFound, out.Code)
		assert.Equal(t, "user not found", out.Message)
	})

	t.Run("no rows maps to not found", func(t *testing.T) {
		out := ToAPIError(fmt.Errorf("query: %w", pgx.ErrNoRows))
		assert.Equal(t, CodeNotFound, out.Code)
		assert.Equal(t, http.StatusNotFound, out.StatusCode)
	})

	t.Run("anything else is internal", func(t *testing.T) {
		out := ToAPIError(errors.New("surprise"))
		assert.Equal(t, CodeInternal, out.Code)
		assert.Equal(t, "Internal server error", out.Message)
	})
}
