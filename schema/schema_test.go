package schema_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thriftygen/thriftygen/schema"
)

func TestLocationString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "", schema.Location{}.String())
	assert.Equal(t, "point.thrift", schema.Location{File: "point.thrift"}.String())
	assert.Equal(t, "point.thrift:12", schema.Location{File: "point.thrift", Line: 12}.String())
}

func TestEnumTypeFindByIDAndName(t *testing.T) {
	t.Parallel()

	e := &schema.EnumType{
		Name:      "Color",
		Namespace: "models",
		Members: []schema.EnumMember{
			{Name: "RED", Value: 1},
			{Name: "GREEN", Value: 2},
			{Name: "BLUE", Value: 3},
		},
	}

	m, ok := e.FindByID(2)
	require.True(t, ok)
	assert.Equal(t, "GREEN", m.Name)

	_, ok = e.FindByID(99)
	assert.False(t, ok)

	m, ok = e.FindByName("BLUE")
	require.True(t, ok)
	assert.Equal(t, int32(3), m.Value)

	_, ok = e.FindByName("PURPLE")
	assert.False(t, ok)
}

func TestStructTypeKindPredicates(t *testing.T) {
	t.Parallel()

	union := &schema.StructType{Name: "Either", Kind: schema.StructUnion}
	assert.True(t, union.IsUnion())
	assert.False(t, union.IsException())

	exc := &schema.StructType{Name: "NotFound", Kind: schema.StructException}
	assert.True(t, exc.IsException())
	assert.False(t, exc.IsUnion())
}

func TestSchemaAddAndFindEnum(t *testing.T) {
	t.Parallel()

	sch := schema.NewSchema()
	color := &schema.EnumType{Name: "Color", Namespace: "models", Members: []schema.EnumMember{{Name: "RED", Value: 1}}}
	sch.AddEnum(color)

	found, ok := sch.FindEnum(schema.EnumRef("models", "Color"))
	require.True(t, ok)
	assert.Same(t, color, found)

	_, ok = sch.FindEnum(schema.EnumRef("models", "Missing"))
	assert.False(t, ok)

	_, ok = sch.FindEnum(schema.I32)
	assert.False(t, ok)
}

func TestSchemaAddStructRoutesByKind(t *testing.T) {
	t.Parallel()

	sch := schema.NewSchema()
	sch.AddStruct(&schema.StructType{Name: "Point", Kind: schema.StructPlain})
	sch.AddStruct(&schema.StructType{Name: "NotFound", Kind: schema.StructException})
	sch.AddStruct(&schema.StructType{Name: "Either", Kind: schema.StructUnion})

	require.Len(t, sch.Structs, 1)
	assert.Equal(t, "Point", sch.Structs[0].Name)
	require.Len(t, sch.Exceptions, 1)
	assert.Equal(t, "NotFound", sch.Exceptions[0].Name)
	require.Len(t, sch.Unions, 1)
	assert.Equal(t, "Either", sch.Unions[0].Name)
}

func TestConstantsByNamespacePreservesOrder(t *testing.T) {
	t.Parallel()

	sch := schema.NewSchema()
	sch.AddConstant(&schema.Constant{Name: "A", Namespace: "pkg1"})
	sch.AddConstant(&schema.Constant{Name: "B", Namespace: "pkg2"})
	sch.AddConstant(&schema.Constant{Name: "C", Namespace: "pkg1"})

	groups := sch.ConstantsByNamespace()
	require.Len(t, groups, 2)
	assert.Equal(t, "pkg1", groups[0].Namespace)
	require.Len(t, groups[0].Constants, 2)
	assert.Equal(t, "A", groups[0].Constants[0].Name)
	assert.Equal(t, "C", groups[0].Constants[1].Name)
	assert.Equal(t, "pkg2", groups[1].Namespace)
}
