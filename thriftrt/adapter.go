// Package thriftrt is the small runtime surface generated code depends on:
// the Adapter capability every generated struct exposes as its package-level
// ADAPTER_<Name> value, and a thin Skip helper over the real Thrift protocol
// library. It implements no wire framing itself — that is entirely
// delegated to github.com/apache/thrift/lib/go/thrift, per the generator's
// non-goal of implementing Thrift encoding.
package thriftrt

import (
	"context"

	"github.com/apache/thrift/lib/go/thrift"
)

// Adapter is the capability a generated struct exposes for reading and
// writing a value of type V through a thrift.TProtocol, using a mutable
// builder of type B to accumulate a value while reading.
type Adapter[V any, B any] interface {
	// Write serializes v to protocol.
	Write(ctx context.Context, protocol thrift.TProtocol, v V) error
	// Read deserializes one value from protocol into builder, then builds
	// and returns it.
	Read(ctx context.Context, protocol thrift.TProtocol, builder B) (V, error)
	// ReadNew allocates a fresh builder and delegates to Read.
	ReadNew(ctx context.Context, protocol thrift.TProtocol) (V, error)
}

// Skip consumes and discards one value of the given wire type from
// protocol, for tolerating unknown fields and type-mismatched known fields.
func Skip(ctx context.Context, protocol thrift.TProtocol, typeID thrift.TType) error {
	return thrift.SkipDefaultDepth(ctx, protocol, typeID)
}
