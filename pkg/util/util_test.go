package util

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrapErrorf(t *testing.T) {
	cause := errors.New("location missing")
	err := WrapErrorf(cause, ErrNotFound, "location %q not found", "Library")

	assert.Equal(t, `location "Library" not found`, err.Error())
	assert.ErrorIs(t, err, cause)

	var ierr *Error
	wrapped := fmt.Errorf("handler: %w", err)
	assert.True(t, errors.As(wrapped, &ierr))
	assert.Equal(t, ErrNotFound, ierr.Code())
}

func TestHelpers(t *testing.T) {
	testCases := []struct {
		name string
		got  interface{}
		want interface{}
	}{
		{"round", RoundFloat(1.23456, 2), 1.23},
		{"clamp below", ClampMin(0.02, 0.1), 0.1},
		{"clamp above", ClampMin(3, 1), 3},
		{"min", MinG("b", "a"), "a"},
		{"reverse", ReverseG([]string{"a", "b", "c"}), []string{"c", "b", "a"}},
	}
	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got)
		})
	}

	v, err := StringToFloat64("4.5")
	assert.NoError(t, err)
	assert.Equal(t, 4.5, v)
	_, err = StringToFloat64("four")
	assert.Error(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	assert.False(t, StopConcurrentOperation(ctx))
	cancel()
	assert.True(t, StopConcurrentOperation(ctx))
}
