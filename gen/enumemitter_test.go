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

func TestEnumEmitterRendersTypeConstsAndLookup(t *testing.T) {
	t.Parallel()

	et := &schema.EnumType{
		Name:      "Color",
		Namespace: "models",
		Members: []schema.EnumMember{
			{Name: "RED", Value: 1},
			{Name: "GREEN", Value: 2},
			{Name: "BLUE", Value: 3},
		},
	}

	f := jen.NewFilePath("models")
	gen.NewEnumEmitter().Emit(f, et)

	var buf bytes.Buffer
	require.NoError(t, f.Render(&buf))
	out := buf.String()

	assert.Contains(t, out, "type Color int32")
	assert.Contains(t, out, "ColorRED   Color = 1")
	assert.Contains(t, out, "ColorGREEN Color = 2")
	assert.Contains(t, out, "ColorBLUE  Color = 3")
	assert.Contains(t, out, "func (e Color) Code() int32")
	assert.Contains(t, out, "func ColorFromCode(code int32) (Color, bool)")
	assert.Contains(t, out, "return Color(0), false")
}

func TestEnumEmitterDocComments(t *testing.T) {
	t.Parallel()

	et := &schema.EnumType{
		Name:      "Color",
		Namespace: "models",
		Doc:       "Color is a primary hue.",
		Members:   []schema.EnumMember{{Name: "RED", Value: 1, Doc: "RED is the warmest."}},
	}

	f := jen.NewFilePath("models")
	gen.NewEnumEmitter().Emit(f, et)

	var buf bytes.Buffer
	require.NoError(t, f.Render(&buf))
	out := buf.String()

	assert.Contains(t, out, "Color is a primary hue.")
	assert.Contains(t, out, "RED is the warmest.")
}
