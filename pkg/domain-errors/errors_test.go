package domainerrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrap(t *testing.T) {
	cause := errors.New("disk gone")
	err := fmt.Errorf("search: %w", Wrap(cause, CodeSourceUnavailable, "sdn list unavailable"))

	assert.True(t, HasCode(err, CodeSourceUnavailable))
	assert.False(t, HasCode(err, CodeInternal))
	assert.ErrorIs(t, err, cause)

	de, ok := As(err)
	require.True(t, ok)
	assert.Equal(t, "sdn list unavailable", de.Message)
	assert.Equal(t, "source_unavailable: sdn list unavailable: disk gone", de.Error())
}

func TestNew(t *testing.T) {
	err := New(CodeBadRequest, "invalid json")
	assert.Equal(t, "bad_request: invalid json", err.Error())
	assert.Nil(t, errors.Unwrap(err))

	_, ok := As(errors.New("plain"))
	assert.False(t, ok)
}
