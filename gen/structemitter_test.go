package gen_test

import (
	"bytes"
	"testing"

	"github.com/dave/jennifer/jen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thriftygen/thriftygen/gen"
	"github.com/thriftygen/thriftygen/schema"
)

func renderStruct(t *testing.T, sch *schema.Schema, st *schema.StructType) string {
	t.Helper()
	cfg, err := gen.NewConfig()
	require.NoError(t, err)
	resolver := gen.NewTypeResolver(cfg)
	emitter := gen.NewStructEmitter(resolver, gen.NewWriterEmitter(resolver), gen.NewReaderEmitter(resolver)).
		WithDefaultsRenderer(gen.NewConstRenderer(resolver, sch))

	f := jen.NewFilePath(st.Namespace)
	require.NoError(t, emitter.Emit(f, st, st.Namespace))

	var buf bytes.Buffer
	require.NoError(t, f.Render(&buf))
	return buf.String()
}

func TestStructEmitterValueTypeBuilderAndAdapter(t *testing.T) {
	t.Parallel()

	sch := schema.NewSchema()
	sch.AddEnum(&schema.EnumType{
		Name: "Color", Namespace: "models",
		Members: []schema.EnumMember{{Name: "RED", Value: 1}},
	})
	st := &schema.StructType{
		Name: "Shape", Namespace: "models", Kind: schema.StructPlain,
		Fields: []schema.Field{
			{ID: 1, Name: "name", Type: schema.String, Required: true, Doc: "name labels the shape."},
			{ID: 2, Name: "color", Type: schema.EnumRef("models", "Color")},
			{ID: 3, Name: "tags", Type: schema.ListOf(schema.String)},
			{ID: 4, Name: "scores", Type: schema.MapOf(schema.String, schema.I64)},
		},
	}
	out := renderStruct(t, sch, st)

	// Value type: required scalar bare, optional enum pointer, collections
	// unexported behind copying accessors, field doc-strings carried.
	assert.Contains(t, out, "type Shape struct")
	assert.Contains(t, out, "// name labels the shape.")
	assert.Contains(t, out, `thrift:"name,1,required"`)
	assert.Contains(t, out, "Color  *Color")
	assert.Contains(t, out, "func (p *Shape) Tags() []string")
	assert.Contains(t, out, "func (p *Shape) Scores() map[string]int64")
	assert.Contains(t, out, "func (p *Shape) Equal(other *Shape) bool")
	assert.Contains(t, out, "func (p *Shape) Hash() int32")
	assert.Contains(t, out, "func (p *Shape) String() string")

	// Builder: pointer storage for scalars, nil-rejecting required setter.
	assert.Contains(t, out, "type ShapeBuilder struct")
	assert.Contains(t, out, "func (b *ShapeBuilder) SetName(v *string) *ShapeBuilder")
	assert.Contains(t, out, "must not be nil")
	assert.Contains(t, out, `"name is required"`)
	assert.Contains(t, out, "func (b *ShapeBuilder) Reset() *ShapeBuilder")

	// Adapter: package-level value plus checked protocol calls.
	assert.Contains(t, out, "var ADAPTER_Shape = ShapeAdapter{}")
	assert.Contains(t, out, `protocol.WriteFieldBegin(ctx, "name", thrift.STRING, 1)`)
	assert.Contains(t, out, "protocol.WriteI32(ctx, int32(v.Color.Code()))")
	assert.Contains(t, out, "protocol.WriteFieldStop(ctx)")
	assert.Contains(t, out, "protocol.ReadFieldBegin(ctx)")
	assert.Contains(t, out, "thriftrt.Skip(ctx, protocol, fieldTypeID)")
	assert.Contains(t, out, "builder.Build()")
}

func TestStructEmitterOptionalFieldGuardedOnWrite(t *testing.T) {
	t.Parallel()

	st := &schema.StructType{
		Name: "Msg", Namespace: "models", Kind: schema.StructPlain,
		Fields: []schema.Field{{ID: 1, Name: "body", Type: schema.String}},
	}
	out := renderStruct(t, schema.NewSchema(), st)

	assert.Contains(t, out, "if v.Body != nil")
	assert.Contains(t, out, "protocol.WriteString(ctx, *v.Body)")
}

func TestStructEmitterUnionArity(t *testing.T) {
	t.Parallel()

	st := &schema.StructType{
		Name: "Either", Namespace: "models", Kind: schema.StructUnion,
		Fields: []schema.Field{
			{ID: 1, Name: "left", Type: schema.I32},
			{ID: 2, Name: "right", Type: schema.String},
		},
	}
	out := renderStruct(t, schema.NewSchema(), st)

	assert.Contains(t, out, "set := 0")
	assert.Contains(t, out, "if set != 1")
	assert.Contains(t, out, "exactly one field must be set, %d fields were set")
}

func TestStructEmitterExceptionImplementsError(t *testing.T) {
	t.Parallel()

	st := &schema.StructType{
		Name: "NotFound", Namespace: "models", Kind: schema.StructException,
		Fields: []schema.Field{{ID: 1, Name: "message", Type: schema.String, Required: true}},
	}
	out := renderStruct(t, schema.NewSchema(), st)

	assert.Contains(t, out, "func (p *NotFound) Error() string")
}

func TestStructEmitterResetAppliesDefaults(t *testing.T) {
	t.Parallel()

	def := schema.IntValue(7)
	st := &schema.StructType{
		Name: "Conf", Namespace: "models", Kind: schema.StructPlain,
		Fields: []schema.Field{
			{ID: 1, Name: "retries", Type: schema.I32, Default: &def},
			{ID: 2, Name: "label", Type: schema.String},
		},
	}
	out := renderStruct(t, schema.NewSchema(), st)

	assert.Contains(t, out, "var retriesDefault int32 = 7")
	assert.Contains(t, out, "b.retries = &retriesDefault")
	assert.Contains(t, out, "b.label = nil")
}

func TestStructEmitterRejectsStructTypedDefault(t *testing.T) {
	t.Parallel()

	def := schema.IdentValue("origin")
	st := &schema.StructType{
		Name: "Canvas", Namespace: "models", Kind: schema.StructPlain,
		Fields: []schema.Field{
			{ID: 1, Name: "origin", Type: schema.StructRef("models", "Point"), Default: &def},
		},
	}
	cfg, err := gen.NewConfig()
	require.NoError(t, err)
	resolver := gen.NewTypeResolver(cfg)
	emitter := gen.NewStructEmitter(resolver, gen.NewWriterEmitter(resolver), gen.NewReaderEmitter(resolver)).
		WithDefaultsRenderer(gen.NewConstRenderer(resolver, schema.NewSchema()))

	f := jen.NewFilePath("models")
	err = emitter.Emit(f, st, "models")
	require.Error(t, err)
	assert.ErrorIs(t, err, gen.ErrUnsupportedConstruct)
}
