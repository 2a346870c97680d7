package gen_test

import (
	"fmt"
	"testing"

	"github.com/apache/thrift/lib/go/thrift"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thriftygen/thriftygen/gen"
	"github.com/thriftygen/thriftygen/schema"
)

func newResolver(t *testing.T) *gen.TypeResolver {
	t.Helper()
	cfg, err := gen.NewConfig()
	require.NoError(t, err)
	return gen.NewTypeResolver(cfg)
}

func TestSurfaceTypeRequiredScalarsAreBareValues(t *testing.T) {
	t.Parallel()
	r := newResolver(t)

	typ, err := r.SurfaceType(schema.I32, true, "models")
	require.NoError(t, err)
	assert.Equal(t, "int32", fmt.Sprintf("%#v", typ))

	typ, err = r.SurfaceType(schema.String, true, "models")
	require.NoError(t, err)
	assert.Equal(t, "string", fmt.Sprintf("%#v", typ))
}

func TestSurfaceTypeOptionalScalarsArePointers(t *testing.T) {
	t.Parallel()
	r := newResolver(t)

	typ, err := r.SurfaceType(schema.I32, false, "models")
	require.NoError(t, err)
	assert.Equal(t, "*int32", fmt.Sprintf("%#v", typ))
}

func TestSurfaceTypeEnumRequiredIsBareOptionalIsPointer(t *testing.T) {
	t.Parallel()
	r := newResolver(t)
	color := schema.EnumRef("models", "Color")

	required, err := r.SurfaceType(color, true, "models")
	require.NoError(t, err)
	assert.Equal(t, "Color", fmt.Sprintf("%#v", required))

	optional, err := r.SurfaceType(color, false, "models")
	require.NoError(t, err)
	assert.Equal(t, "*Color", fmt.Sprintf("%#v", optional))
}

func TestSurfaceTypeStructIsAlwaysPointer(t *testing.T) {
	t.Parallel()
	r := newResolver(t)

	// Required or not, a struct-typed field is always a pointer: presence
	// is never ambiguous for a message type the way it is for a scalar.
	req, err := r.SurfaceType(schema.StructRef("models", "Point"), true, "models")
	require.NoError(t, err)
	opt, err := r.SurfaceType(schema.StructRef("models", "Point"), false, "models")
	require.NoError(t, err)
	assert.Equal(t, "*Point", fmt.Sprintf("%#v", req))
	assert.Equal(t, "*Point", fmt.Sprintf("%#v", opt))
}

func TestSurfaceTypeCrossPackageQualifies(t *testing.T) {
	t.Parallel()
	r := newResolver(t)

	typ, err := r.SurfaceType(schema.StructRef("other", "Thing"), true, "models")
	require.NoError(t, err)
	assert.Contains(t, fmt.Sprintf("%#v", typ), "other.Thing")
}

func TestSurfaceTypeVoidIsRejected(t *testing.T) {
	t.Parallel()
	r := newResolver(t)

	_, err := r.SurfaceType(schema.Void, true, "models")
	require.Error(t, err)
	assert.ErrorIs(t, err, gen.ErrInternalInvariant)
}

func TestSurfaceTypeCollections(t *testing.T) {
	t.Parallel()
	r := newResolver(t)

	list, err := r.SurfaceType(schema.ListOf(schema.String), true, "models")
	require.NoError(t, err)
	assert.Equal(t, "[]string", fmt.Sprintf("%#v", list))

	set, err := r.SurfaceType(schema.SetOf(schema.I32), true, "models")
	require.NoError(t, err)
	assert.Equal(t, "map[int32]struct{}", fmt.Sprintf("%#v", set))

	m, err := r.SurfaceType(schema.MapOf(schema.String, schema.I32), true, "models")
	require.NoError(t, err)
	assert.Equal(t, "map[string]int32", fmt.Sprintf("%#v", m))
}

func TestWireCodeAndSymbol(t *testing.T) {
	t.Parallel()
	r := newResolver(t)

	code, err := r.WireCode(schema.I32)
	require.NoError(t, err)
	assert.Equal(t, thrift.TType(thrift.I32), code)

	symbol, err := r.WireCodeSymbol(schema.I32)
	require.NoError(t, err)
	assert.Equal(t, "I32", symbol)

	_, err = r.WireCode(schema.Void)
	require.Error(t, err)
}

func TestWireCodeEnumIsI32(t *testing.T) {
	t.Parallel()
	r := newResolver(t)

	code, err := r.WireCode(schema.EnumRef("models", "Color"))
	require.NoError(t, err)
	assert.Equal(t, thrift.TType(thrift.I32), code)
}
