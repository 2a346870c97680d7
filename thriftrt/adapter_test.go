package thriftrt_test

import (
	"context"
	"testing"

	"github.com/apache/thrift/lib/go/thrift"
	"github.com/stretchr/testify/require"

	"github.com/thriftygen/thriftygen/thriftrt"
)

func TestSkipConsumesAnUnknownI32Field(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	transport := thrift.NewTMemoryBuffer()
	protocol := thrift.NewTBinaryProtocolConf(transport, nil)

	require.NoError(t, protocol.WriteI32(ctx, 42))
	require.NoError(t, protocol.WriteString(ctx, "trailing"))

	require.NoError(t, thriftrt.Skip(ctx, protocol, thrift.I32))

	// Skip must consume exactly the I32 value, leaving the trailing string
	// readable as the next value on the wire.
	s, err := protocol.ReadString(ctx)
	require.NoError(t, err)
	require.Equal(t, "trailing", s)
}

func TestSkipConsumesANestedStruct(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	transport := thrift.NewTMemoryBuffer()
	protocol := thrift.NewTBinaryProtocolConf(transport, nil)

	require.NoError(t, protocol.WriteStructBegin(ctx, "Unknown"))
	require.NoError(t, protocol.WriteFieldBegin(ctx, "x", thrift.I32, 1))
	require.NoError(t, protocol.WriteI32(ctx, 7))
	require.NoError(t, protocol.WriteFieldEnd(ctx))
	require.NoError(t, protocol.WriteFieldStop(ctx))
	require.NoError(t, protocol.WriteStructEnd(ctx))
	require.NoError(t, protocol.WriteBool(ctx, true))

	require.NoError(t, thriftrt.Skip(ctx, protocol, thrift.STRUCT))

	b, err := protocol.ReadBool(ctx)
	require.NoError(t, err)
	require.True(t, b)
}
