package golden_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thriftygen/thriftygen/internal/golden"
)

// Building with both set raises an arity error; with neither set, the
// same error with count 0; with only right set, the value round-trips.
func TestEitherBuildRejectsBothSet(t *testing.T) {
	t.Parallel()

	_, err := golden.NewEitherBuilder().SetLeft(ptr(int32(1))).SetRight(ptr("x")).Build()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "2")
}

func TestEitherBuildRejectsNoneSet(t *testing.T) {
	t.Parallel()

	_, err := golden.NewEitherBuilder().Build()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "0")
}

func TestEitherRoundTripsWithOnlyRightSet(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	v, err := golden.NewEitherBuilder().SetRight(ptr("ok")).Build()
	require.NoError(t, err)
	require.Nil(t, v.Left)
	require.Equal(t, "ok", *v.Right)

	_, protocol := newBinaryProtocol(t)
	require.NoError(t, golden.ADAPTER_Either.Write(ctx, protocol, v))
	got, err := golden.ADAPTER_Either.ReadNew(ctx, protocol)
	require.NoError(t, err)
	assert.True(t, v.Equal(got))
}

func TestEitherRoundTripsWithOnlyLeftSet(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	v, err := golden.NewEitherBuilder().SetLeft(ptr(int32(42))).Build()
	require.NoError(t, err)

	_, protocol := newBinaryProtocol(t)
	require.NoError(t, golden.ADAPTER_Either.Write(ctx, protocol, v))
	got, err := golden.ADAPTER_Either.ReadNew(ctx, protocol)
	require.NoError(t, err)
	assert.True(t, v.Equal(got))
	assert.Nil(t, got.Right)
}
