package errs

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindValidation, KindOf(Validation("x")))
	assert.Equal(t, KindConflict, KindOf(fmt.Errorf("wrapped: %w", Conflict("dup"))))
	assert.Equal(t, KindStore, KindOf(errors.New("boom")))
}

func TestStoreKeepsMessage(t *testing.T) {
	base := errors.New("connection refused")
	err := Store(base)
	assert.Equal(t, KindStore, err.Kind)
	assert.Equal(t, "connection refused", err.Error())
	assert.ErrorIs(t, err, base)
	assert.Nil(t, Store(nil))
}

func TestStoreDoesNotRewrapTagged(t *testing.T) {
	nf := NotFound("gone")
	assert.Same(t, nf, Store(nf))
}

func TestIsMatchesKindAndMessage(t *testing.T) {
	assert.ErrorIs(t, NotFound(MsgUserNotFound), ErrUserNotFound)
	assert.NotErrorIs(t, NotFound(MsgRecipeNotFound), ErrUserNotFound)
	assert.ErrorIs(t, Conflict("anything"), &Error{Kind: KindConflict})
}
