package apperrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGameError_Wrapping(t *testing.T) {
	t.Parallel()

	wrapped := fmt.Errorf("dealing to banker: %w", ErrDeckExhausted)

	assert.ErrorIs(t, wrapped, ErrDeckExhausted)
	assert.NotErrorIs(t, wrapped, ErrHandFull)
	assert.True(t, IsInvariant(wrapped))
	assert.Equal(t, CodeDeckExhausted, CodeOf(wrapped))
	assert.Equal(t, "dealing to banker: deck exhausted mid-round", wrapped.Error())
}

func TestGameError_Plain(t *testing.T) {
	t.Parallel()

	plain := errors.New("boom")
	assert.False(t, IsInvariant(plain))
	assert.Equal(t, 0, CodeOf(plain))
	assert.Equal(t, CodeWrongPhase, CodeOf(ErrWrongPhase))
}
