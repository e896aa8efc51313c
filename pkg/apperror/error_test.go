package apperror

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError(t *testing.T) {
	cause := errors.New("upstream returned 500")

	err := BadGateway("Failed to send message", cause)
	assert.Equal(t, http.StatusBadGateway, err.Code)
	assert.Equal(t, "Failed to send message", err.Error())
	assert.ErrorIs(t, err, cause)

	var target *AppError
	assert.True(t, errors.As(error(Internal(cause)), &target))
	assert.Equal(t, "Internal Server Error", target.Message)

	details := map[string]string{"email": "Invalid email address"}
	unprocessable := Unprocessable("Validation failed", details)
	assert.Equal(t, http.StatusUnprocessableEntity, unprocessable.Code)
	assert.Equal(t, details, unprocessable.Details)
	assert.Nil(t, unprocessable.Err)
}
