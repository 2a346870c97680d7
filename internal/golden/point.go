package golden

import (
	"context"
	"fmt"
	"strings"

	"github.com/apache/thrift/lib/go/thrift"

	"github.com/thriftygen/thriftygen/thriftrt"
)

// Point mirrors `struct Point { 1: required i32 x; 2: required i32 y;
// 3: optional string label; 4: optional list<string> tags; }`.
type Point struct {
	X     int32   `thrift:"x,1,required"`
	Y     int32   `thrift:"y,2,required"`
	Label *string `thrift:"label,3"`
	tags  []string `thrift:"tags,4"`
}

// Tags returns a copy of the tags field.
func (p *Point) Tags() []string {
	if p.tags == nil {
		return nil
	}
	out := make([]string, len(p.tags))
	copy(out, p.tags)
	return out
}

// Equal reports whether p and other represent the same Point value.
func (p *Point) Equal(other *Point) bool {
	if p == other {
		return true
	}
	if p == nil || other == nil {
		return false
	}
	if !thriftrt.EqualValue(p.X, other.X) {
		return false
	}
	if !thriftrt.EqualValue(p.Y, other.Y) {
		return false
	}
	if !thriftrt.EqualValue(p.Label, other.Label) {
		return false
	}
	if !thriftrt.EqualValue(p.tags, other.tags) {
		return false
	}
	return true
}

// Hash returns an FNV-1a-style hash over every field.
func (p *Point) Hash() int32 {
	h := thriftrt.HashSeed
	h = thriftrt.HashCombine(h, thriftrt.HashOf(p.X))
	h = thriftrt.HashCombine(h, thriftrt.HashOf(p.Y))
	h = thriftrt.HashCombine(h, thriftrt.HashOf(p.Label))
	h = thriftrt.HashCombine(h, thriftrt.HashOf(p.tags))
	return h
}

// String renders Point as "Point{\n  field=value,\n}".
func (p *Point) String() string {
	var b strings.Builder
	b.WriteString("Point{")
	b.WriteString("\n  x=")
	b.WriteString(thriftrt.FormatValue(p.X))
	b.WriteString(",")
	b.WriteString("\n  y=")
	b.WriteString(thriftrt.FormatValue(p.Y))
	b.WriteString(",")
	b.WriteString("\n  label=")
	b.WriteString(thriftrt.FormatValue(p.Label))
	b.WriteString(",")
	b.WriteString("\n  tags=")
	b.WriteString(thriftrt.FormatValue(p.tags))
	b.WriteString(",")
	b.WriteString("\n")
	b.WriteString("}")
	return b.String()
}

// PointBuilder is the mutable builder for Point.
type PointBuilder struct {
	x     *int32
	y     *int32
	label *string
	tags  []string
}

// NewPointBuilder returns an empty PointBuilder, with any default values applied.
func NewPointBuilder() *PointBuilder {
	b := &PointBuilder{}
	b.Reset()
	return b
}

// PointBuilderFrom seeds a PointBuilder from an existing Point value.
func PointBuilderFrom(v *Point) *PointBuilder {
	b := &PointBuilder{}
	b.x = &v.X
	b.y = &v.Y
	b.label = v.Label
	b.tags = v.Tags()
	return b
}

// SetX sets the x field.
func (b *PointBuilder) SetX(v *int32) *PointBuilder {
	if v == nil {
		panic("PointBuilder: x must not be nil")
	}
	b.x = v
	return b
}

// SetY sets the y field.
func (b *PointBuilder) SetY(v *int32) *PointBuilder {
	if v == nil {
		panic("PointBuilder: y must not be nil")
	}
	b.y = v
	return b
}

// SetLabel sets the label field.
func (b *PointBuilder) SetLabel(v *string) *PointBuilder {
	b.label = v
	return b
}

// SetTags sets the tags field.
func (b *PointBuilder) SetTags(v []string) *PointBuilder {
	b.tags = v
	return b
}

// Reset re-applies default field values and clears the rest.
func (b *PointBuilder) Reset() *PointBuilder {
	b.x = nil
	b.y = nil
	b.label = nil
	b.tags = nil
	return b
}

// Build validates and constructs a Point.
func (b *PointBuilder) Build() (*Point, error) {
	if b.x == nil {
		return nil, fmt.Errorf("x is required")
	}
	if b.y == nil {
		return nil, fmt.Errorf("y is required")
	}
	v := &Point{
		X:     *b.x,
		Y:     *b.y,
		Label: b.label,
		tags:  b.tags,
	}
	return v, nil
}

// PointAdapter implements thriftrt.Adapter[*Point, *PointBuilder].
type PointAdapter struct{}

var ADAPTER_Point = PointAdapter{}

var _ thriftrt.Adapter[*Point, *PointBuilder] = PointAdapter{}

func (a PointAdapter) Write(ctx context.Context, protocol thrift.TProtocol, v *Point) error {
	if err := protocol.WriteStructBegin(ctx, "Point"); err != nil {
		return err
	}

	if err := protocol.WriteFieldBegin(ctx, "x", thrift.I32, 1); err != nil {
		return err
	}
	if err := protocol.WriteI32(ctx, v.X); err != nil {
		return err
	}
	if err := protocol.WriteFieldEnd(ctx); err != nil {
		return err
	}

	if err := protocol.WriteFieldBegin(ctx, "y", thrift.I32, 2); err != nil {
		return err
	}
	if err := protocol.WriteI32(ctx, v.Y); err != nil {
		return err
	}
	if err := protocol.WriteFieldEnd(ctx); err != nil {
		return err
	}

	if v.Label != nil {
		if err := protocol.WriteFieldBegin(ctx, "label", thrift.STRING, 3); err != nil {
			return err
		}
		if err := protocol.WriteString(ctx, *v.Label); err != nil {
			return err
		}
		if err := protocol.WriteFieldEnd(ctx); err != nil {
			return err
		}
	}

	if v.Tags() != nil {
		if err := protocol.WriteFieldBegin(ctx, "tags", thrift.LIST, 4); err != nil {
			return err
		}
		if err := protocol.WriteListBegin(ctx, thrift.STRING, len(v.Tags())); err != nil {
			return err
		}
		for _, elem := range v.Tags() {
			if err := protocol.WriteString(ctx, elem); err != nil {
				return err
			}
		}
		if err := protocol.WriteListEnd(ctx); err != nil {
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

func (a PointAdapter) Read(ctx context.Context, protocol thrift.TProtocol, builder *PointBuilder) (*Point, error) {
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
			builder.SetX(&val)
		case 2:
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
			builder.SetY(&val)
		case 3:
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
			builder.SetLabel(&val)
		case 4:
			if fieldTypeID != thrift.LIST {
				if err := thriftrt.Skip(ctx, protocol, fieldTypeID); err != nil {
					return nil, err
				}
				break
			}
			_, size, err := protocol.ReadListBegin(ctx)
			if err != nil {
				return nil, err
			}
			out := make([]string, 0, size)
			for i := 0; i < size; i++ {
				val, err := protocol.ReadString(ctx)
				if err != nil {
					return nil, err
				}
				out = append(out, val)
			}
			if err := protocol.ReadListEnd(ctx); err != nil {
				return nil, err
			}
			builder.SetTags(out)
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

func (a PointAdapter) ReadNew(ctx context.Context, protocol thrift.TProtocol) (*Point, error) {
	return a.Read(ctx, protocol, NewPointBuilder())
}
