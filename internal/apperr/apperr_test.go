package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{Unauthenticated("no session"), http.StatusUnauthorized},
		{Forbidden("nope"), http.StatusForbidden},
		{NotFound("user not found"), http.StatusNotFound},
		{InvalidInput("quantity must be greater than 0"), http.StatusBadRequest},
		{Conflict("already exists"), http.StatusConflict},
		{Internal("boom", errors.New("db down")), http.StatusInternalServerError},
		{errors.New("untyped"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			assert.Equal(t, tt.want, HTTPStatus(KindOf(tt.err)))
		})
	}
}

func TestKindOf_Wrapped(t *testing.T) {
	err := fmt.Errorf("create car: %w", Conflict("duplicate"))

	assert.Equal(t, KindConflict, KindOf(err))
	assert.True(t, errors.Is(err, ErrConflict))
	assert.False(t, errors.Is(err, ErrNotFound))
}

func TestPublicMessage(t *testing.T) {
	assert.Equal(t, "Seller with this email already exists", PublicMessage(Conflict("Seller with this email already exists")))
	assert.Equal(t, "Internal server error", PublicMessage(Internal("query failed", errors.New("pq: relation missing"))))
	assert.Equal(t, "Internal server error", PublicMessage(errors.New("pq: connection refused")))
}

func TestInternal_Unwrap(t *testing.T) {
	cause := errors.New("timeout")
	err := Internal("save failed", cause)

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "timeout")
}
