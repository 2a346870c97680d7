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

func renderConstants(t *testing.T, sch *schema.Schema, group schema.ConstantGroup) string {
	t.Helper()
	cfg, err := gen.NewConfig()
	require.NoError(t, err)
	resolver := gen.NewTypeResolver(cfg)
	emitter := gen.NewConstantsEmitter(resolver, gen.NewConstRenderer(resolver, sch))

	f := jen.NewFilePath(group.Namespace)
	require.NoError(t, emitter.Emit(f, group))

	var buf bytes.Buffer
	require.NoError(t, f.Render(&buf))
	return buf.String()
}

// A list constant is declared as a var and populated inside init().
func TestConstantsEmitterListConstant(t *testing.T) {
	t.Parallel()

	group := schema.ConstantGroup{
		Namespace: "models",
		Constants: []*schema.Constant{{
			Name:      "xs",
			Namespace: "models",
			Type:      schema.ListOf(schema.I32),
			Value:     schema.ListValue(schema.IntValue(1), schema.IntValue(2), schema.IntValue(3)),
		}},
	}
	out := renderConstants(t, schema.NewSchema(), group)

	assert.Contains(t, out, "var xs []int32")
	assert.Contains(t, out, "func init()")
	assert.Contains(t, out, "list := []int32{}")
	assert.Contains(t, out, "list = append(list, 1)")
	assert.Contains(t, out, "list = append(list, 3)")
	assert.Contains(t, out, "xs = list")
}

func TestConstantsEmitterScalarAndEnumConstantsAreConsts(t *testing.T) {
	t.Parallel()

	sch := schema.NewSchema()
	sch.AddEnum(&schema.EnumType{
		Name: "Color", Namespace: "models",
		Members: []schema.EnumMember{{Name: "RED", Value: 1}},
	})
	group := schema.ConstantGroup{
		Namespace: "models",
		Constants: []*schema.Constant{
			{Name: "MaxRetries", Namespace: "models", Type: schema.I32, Value: schema.IntValue(3)},
			{Name: "DefaultColor", Namespace: "models", Type: schema.EnumRef("models", "Color"), Value: schema.IdentValue("RED")},
		},
	}
	out := renderConstants(t, sch, group)

	assert.Contains(t, out, "const MaxRetries int32 = 3")
	assert.Contains(t, out, "const DefaultColor Color = ColorRED")
	assert.NotContains(t, out, "func init()")
}

func TestConstantsEmitterMapConstant(t *testing.T) {
	t.Parallel()

	group := schema.ConstantGroup{
		Namespace: "models",
		Constants: []*schema.Constant{{
			Name:      "limits",
			Namespace: "models",
			Type:      schema.MapOf(schema.String, schema.I64),
			Value: schema.MapValue(
				schema.ConstValueEntry{Key: schema.StringValue("read"), Value: schema.IntValue(10)},
				schema.ConstValueEntry{Key: schema.StringValue("write"), Value: schema.IntValue(5)},
			),
		}},
	}
	out := renderConstants(t, schema.NewSchema(), group)

	assert.Contains(t, out, "var limits map[string]int64")
	assert.Contains(t, out, `m["read"] = 10`)
	assert.Contains(t, out, `m["write"] = 5`)
	assert.Contains(t, out, "limits = m")
}

func TestConstantsEmitterRejectsNestedCollectionConstant(t *testing.T) {
	t.Parallel()

	group := schema.ConstantGroup{
		Namespace: "models",
		Constants: []*schema.Constant{{
			Name:      "matrix",
			Namespace: "models",
			Type:      schema.ListOf(schema.ListOf(schema.I32)),
			Value:     schema.ListValue(schema.ListValue(schema.IntValue(1))),
		}},
	}

	cfg, err := gen.NewConfig()
	require.NoError(t, err)
	resolver := gen.NewTypeResolver(cfg)
	emitter := gen.NewConstantsEmitter(resolver, gen.NewConstRenderer(resolver, schema.NewSchema()))

	f := jen.NewFilePath("models")
	err = emitter.Emit(f, group)
	require.Error(t, err)
	assert.ErrorIs(t, err, gen.ErrUnsupportedConstruct)
}
