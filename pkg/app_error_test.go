package pkg

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError(t *testing.T) {
	cause := errors.New("dynamo down")
	e := NewDomainError("INTERNAL_ERROR", "An internal error occurred", cause, http.StatusInternalServerError)

	assert.ErrorIs(t, e, cause)
	assert.Equal(t, http.StatusInternalServerError, e.HTTPStatus)
	assert.Equal(t, HTTPError{Error: "An internal error occurred", Code: "INTERNAL_ERROR"}, e.ToHTTPError())
	assert.Contains(t, e.Error(), "dynamo down")

	simple := NewDomainErrorSimple("INVALID_SIGNATURE", "Invalid signature", http.StatusUnauthorized)
	assert.NoError(t, simple.Unwrap())
	assert.Equal(t, "INVALID_SIGNATURE: Invalid signature", simple.Error())
}
