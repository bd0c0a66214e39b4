package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

var errTest = &ErrorWithStatusCode{Message: "Test failed", StatusCode: http.StatusTeapot, Code: "TEST"}

func TestWithCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := errTest.WithCause(cause)

	assert.Equal(t, "Test failed", err.Error(), "cause must not leak into the message")
	assert.ErrorIs(t, err, errTest)
	assert.ErrorIs(t, err, cause)
	assert.Nil(t, errTest.Cause, "original must stay untouched")
}

func TestIs(t *testing.T) {
	t.Run("same code matches", func(t *testing.T) {
		other := &ErrorWithStatusCode{Message: "other text", Code: "TEST"}
		assert.True(t, errors.Is(other, errTest))
	})

	t.Run("different code does not match", func(t *testing.T) {
		other := &ErrorWithStatusCode{Message: "Test failed", Code: "OTHER"}
		assert.False(t, errors.Is(other, errTest))
	})

	t.Run("uncoded errors match by identity only", func(t *testing.T) {
		a := &ErrorWithStatusCode{Message: "a"}
		b := &ErrorWithStatusCode{Message: "a"}
		assert.True(t, errors.Is(a, a))
		assert.False(t, errors.Is(a, b))
	})

	t.Run("found through fmt wrapping", func(t *testing.T) {
		wrapped := fmt.Errorf("storage: %w", errTest.WithCause(errors.New("boom")))
		var target *ErrorWithStatusCode
		assert.True(t, errors.As(wrapped, &target))
		assert.Equal(t, http.StatusTeapot, target.StatusCode)
	})
}
