package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindNotFound, KindOf(NotFound("missing")))
	assert.Equal(t, KindConflict, KindOf(Conflict("taken")))
	assert.Equal(t, KindInvalidCredentials, KindOf(InvalidCredentials("nope")))
	assert.Equal(t, KindInternal, KindOf(Internal("boom")))
}

func TestKindOf_WrappedError(t *testing.T) {
	wrapped := fmt.Errorf("handling request: %w", NotFound("missing"))

	assert.Equal(t, KindNotFound, KindOf(wrapped))
}

func TestKindOf_ForeignError(t *testing.T) {
	assert.Equal(t, KindUnknown, KindOf(errors.New("plain")))
	assert.Equal(t, KindUnknown, KindOf(nil))
}

func TestErrorMessage(t *testing.T) {
	err := Conflict("This email is already in use.")

	assert.Equal(t, "This email is already in use.", err.Error())
}
