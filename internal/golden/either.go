package golden

import (
	"context"
	"fmt"
	"strings"

	"github.com/apache/thrift/lib/go/thrift"

	"github.com/thriftygen/thriftygen/thriftrt"
)

// Either mirrors `union Either { 1: i32 left; 2: string right; }`.
type Either struct {
	Left  *int32  `thrift:"left,1"`
	Right *string `thrift:"right,2"`
}

func (p *Either) Equal(other *Either) bool {
	if p == other {
		return true
	}
	if p == nil || other == nil {
		return false
	}
	if !thriftrt.EqualValue(p.Left, other.Left) {
		return false
	}
	if !thriftrt.EqualValue(p.Right, other.Right) {
		return false
	}
	return true
}

func (p *Either) Hash() int32 {
	h := thriftrt.HashSeed
	h = thriftrt.HashCombine(h, thriftrt.HashOf(p.Left))
	h = thriftrt.HashCombine(h, thriftrt.HashOf(p.Right))
	return h
}

func (p *Either) String() string {
	var b strings.Builder
	b.WriteString("Either{")
	b.WriteString("\n  left=")
	b.WriteString(thriftrt.FormatValue(p.Left))
	b.WriteString(",")
	b.WriteString("\n  right=")
	b.WriteString(thriftrt.FormatValue(p.Right))
	b.WriteString(",")
	b.WriteString("\n")
	b.WriteString("}")
	return b.String()
}

// EitherBuilder is the mutable builder for Either.
type EitherBuilder struct {
	left  *int32
	right *string
}

// NewEitherBuilder returns an empty EitherBuilder, with any default values applied.
func NewEitherBuilder() *EitherBuilder {
	b := &EitherBuilder{}
	b.Reset()
	return b
}

// EitherBuilderFrom seeds an EitherBuilder from an existing Either value.
func EitherBuilderFrom(v *Either) *EitherBuilder {
	b := &EitherBuilder{}
	b.left = v.Left
	b.right = v.Right
	return b
}

// SetLeft sets the left field.
func (b *EitherBuilder) SetLeft(v *int32) *EitherBuilder {
	b.left = v
	return b
}

// SetRight sets the right field.
func (b *EitherBuilder) SetRight(v *string) *EitherBuilder {
	b.right = v
	return b
}

// Reset re-applies default field values and clears the rest.
func (b *EitherBuilder) Reset() *EitherBuilder {
	b.left = nil
	b.right = nil
	return b
}

// Build validates and constructs an Either: exactly one field must be set.
func (b *EitherBuilder) Build() (*Either, error) {
	set := 0
	if b.left != nil {
		set++
	}
	if b.right != nil {
		set++
	}
	if set != 1 {
		return nil, fmt.Errorf("Either: exactly one field must be set, %d fields were set", set)
	}
	v := &Either{
		Left:  b.left,
		Right: b.right,
	}
	return v, nil
}

// EitherAdapter implements thriftrt.Adapter[*Either, *EitherBuilder].
type EitherAdapter struct{}

var ADAPTER_Either = EitherAdapter{}

var _ thriftrt.Adapter[*Either, *EitherBuilder] = EitherAdapter{}

func (a EitherAdapter) Write(ctx context.Context, protocol thrift.TProtocol, v *Either) error {
	if err := protocol.WriteStructBegin(ctx, "Either"); err != nil {
		return err
	}

	if v.Left != nil {
		if err := protocol.WriteFieldBegin(ctx, "left", thrift.I32, 1); err != nil {
			return err
		}
		if err := protocol.WriteI32(ctx, *v.Left); err != nil {
			return err
		}
		if err := protocol.WriteFieldEnd(ctx); err != nil {
			return err
		}
	}

	if v.Right != nil {
		if err := protocol.WriteFieldBegin(ctx, "right", thrift.STRING, 2); err != nil {
			return err
		}
		if err := protocol.WriteString(ctx, *v.Right); err != nil {
			return err
		}
		if err := protocol.WriteFieldEnd(ctx); err != nil {
			return err
		}
	}

	if err := protocol.WriteFieldStop(ctx); err != nil {
		return err
	}
	return protocol.WriteStructEnd(ctx)
}

func (a EitherAdapter) Read(ctx context.Context, protocol thrift.TProtocol, builder *EitherBuilder) (*Either, error) {
	if _, err := protocol.ReadStructBegin(ctx); err != nil {
		return nil, err
	}
	for {
		_, fieldTypeID, fieldID, err := protocol.ReadFieldBegin(ctx)
		if err != nil {
			return nil, err
		}
		if fieldTypeID == thrift.STOP {
			break
		}
		switch fieldID {
		case 1:
			if fieldTypeID != thrift.I32 {
				if err := thriftrt.Skip(ctx, protocol, fieldTypeID); err != nil {
					return nil, err
				}
				break
			}
			val, err := protocol.ReadI32(ctx)
			if err != nil {
				return nil, err
			}
			builder.SetLeft(&val)
		case 2:
			if fieldTypeID != thrift.STRING {
				if err := thriftrt.Skip(ctx, protocol, fieldTypeID); err != nil {
					return nil, err
				}
				break
			}
			val, err := protocol.ReadString(ctx)
			if err != nil {
				return nil, err
			}
			builder.SetRight(&val)
		default:
			if err := thriftrt.Skip(ctx, protocol, fieldTypeID); err != nil {
				return nil, err
			}
		}
		if err := protocol.ReadFieldEnd(ctx); err != nil {
			return nil, err
		}
	}
	if err := protocol.ReadStructEnd(ctx); err != nil {
		return nil, err
	}
	return builder.Build()
}

func (a EitherAdapter) ReadNew(ctx context.Context, protocol thrift.TProtocol) (*Either, error) {
	return a.Read(ctx, protocol, NewEitherBuilder())
}
