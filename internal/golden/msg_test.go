package golden_test

import (
	"context"
	"testing"

	"github.com/apache/thrift/lib/go/thrift"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thriftygen/thriftygen/internal/golden"
)

// Writing Msg{body: nil} emits only STOP; reading a STOP-only stream
// yields a value whose Body is nil.
func TestMsgWriteWithNilBodyEmitsOnlyStop(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	v := &golden.Msg{}
	transport, protocol := newBinaryProtocol(t)
	require.NoError(t, golden.ADAPTER_Msg.Write(ctx, protocol, v))
	assert.Equal(t, []byte{byte(thrift.STOP)}, transport.(*thrift.TMemoryBuffer).Bytes())

	got, err := golden.ADAPTER_Msg.ReadNew(ctx, protocol)
	require.NoError(t, err)
	assert.Nil(t, got.Body)
}

func TestMsgReadFromStopOnlyStream(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	_, protocol := newBinaryProtocol(t)
	require.NoError(t, protocol.WriteStructBegin(ctx, "Msg"))
	require.NoError(t, protocol.WriteFieldStop(ctx))
	require.NoError(t, protocol.WriteStructEnd(ctx))

	got, err := golden.ADAPTER_Msg.ReadNew(ctx, protocol)
	require.NoError(t, err)
	assert.Nil(t, got.Body)
}

func TestMsgStringRendersAbsentFieldAsNull(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Msg{\n  body=null,\n}", (&golden.Msg{}).String())

	v, err := golden.NewMsgBuilder().SetBody(ptr("hi")).Build()
	require.NoError(t, err)
	assert.Equal(t, "Msg{\n  body=hi,\n}", v.String())
}

func TestMsgRoundTripsWithBodySet(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	v, err := golden.NewMsgBuilder().SetBody(ptr("hello")).Build()
	require.NoError(t, err)

	_, protocol := newBinaryProtocol(t)
	require.NoError(t, golden.ADAPTER_Msg.Write(ctx, protocol, v))
	got, err := golden.ADAPTER_Msg.ReadNew(ctx, protocol)
	require.NoError(t, err)
	assert.True(t, v.Equal(got))
}
