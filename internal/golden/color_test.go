package golden_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/thriftygen/thriftygen/internal/golden"
)

// FromCode resolves a declared code and reports false for any other.
func TestColorFromCode(t *testing.T) {
	t.Parallel()

	v, ok := golden.ColorFromCode(2)
	assert.True(t, ok)
	assert.Equal(t, golden.ColorGREEN, v)

	_, ok = golden.ColorFromCode(99)
	assert.False(t, ok)
}

func TestColorCodeRoundTrips(t *testing.T) {
	t.Parallel()

	assert.Equal(t, int32(1), golden.ColorRED.Code())
	assert.Equal(t, int32(3), golden.ColorBLUE.Code())
}
