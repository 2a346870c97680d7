package golden

import (
	"context"
	"strings"

	"github.com/apache/thrift/lib/go/thrift"

	"github.com/thriftygen/thriftygen/thriftrt"
)

// Msg mirrors `struct Msg { 1: optional string body; }`.
type Msg struct {
	Body *string `thrift:"body,1"`
}

func (p *Msg) Equal(other *Msg) bool {
	if p == other {
		return true
	}
	if p == nil || other == nil {
		return false
	}
	if !thriftrt.EqualValue(p.Body, other.Body) {
		return false
	}
	return true
}

func (p *Msg) Hash() int32 {
	h := thriftrt.HashSeed
	h = thriftrt.HashCombine(h, thriftrt.HashOf(p.Body))
	return h
}

func (p *Msg) String() string {
	var b strings.Builder
	b.WriteString("Msg{")
	b.WriteString("\n  body=")
	b.WriteString(thriftrt.FormatValue(p.Body))
	b.WriteString(",")
	b.WriteString("\n")
	b.WriteString("}")
	return b.String()
}

// MsgBuilder is the mutable builder for Msg.
type MsgBuilder struct {
	body *string
}

// NewMsgBuilder returns an empty MsgBuilder, with any default values applied.
func NewMsgBuilder() *MsgBuilder {
	b := &MsgBuilder{}
	b.Reset()
	return b
}

// MsgBuilderFrom seeds a MsgBuilder from an existing Msg value.
func MsgBuilderFrom(v *Msg) *MsgBuilder {
	b := &MsgBuilder{}
	b.body = v.Body
	return b
}

// SetBody sets the body field.
func (b *MsgBuilder) SetBody(v *string) *MsgBuilder {
	b.body = v
	return b
}

// Reset re-applies default field values and clears the rest.
func (b *MsgBuilder) Reset() *MsgBuilder {
	b.body = nil
	return b
}

// Build validates and constructs a Msg.
func (b *MsgBuilder) Build() (*Msg, error) {
	v := &Msg{
		Body: b.body,
	}
	return v, nil
}

// MsgAdapter implements thriftrt.Adapter[*Msg, *MsgBuilder].
type MsgAdapter struct{}

var ADAPTER_Msg = MsgAdapter{}

var _ thriftrt.Adapter[*Msg, *MsgBuilder] = MsgAdapter{}

func (a MsgAdapter) Write(ctx context.Context, protocol thrift.TProtocol, v *Msg) error {
	if err := protocol.WriteStructBegin(ctx, "Msg"); err != nil {
		return err
	}

	if v.Body != nil {
		if err := protocol.WriteFieldBegin(ctx, "body", thrift.STRING, 1); err != nil {
			return err
		}
		if err := protocol.WriteString(ctx, *v.Body); err != nil {
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

func (a MsgAdapter) Read(ctx context.Context, protocol thrift.TProtocol, builder *MsgBuilder) (*Msg, error) {
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
			builder.SetBody(&val)
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

func (a MsgAdapter) ReadNew(ctx context.Context, protocol thrift.TProtocol) (*Msg, error) {
	return a.Read(ctx, protocol, NewMsgBuilder())
}
