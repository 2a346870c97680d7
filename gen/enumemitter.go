package gen

import (
	"fmt"

	"github.com/dave/jennifer/jen"

	"github.com/thriftygen/thriftygen/schema"
)

// EnumEmitter renders a Thrift enum declaration as a named int32 type, one
// package-level constant per member, a Code accessor, and a FromCode
// lookup. Go has no enum-scoped member namespace the way the Java original
// does (Color.RED); member constants are instead named by concatenating
// the enum name with the member name (ColorRED), and FromCode is named
// per-enum (ColorFromCode) since every enum in a namespace shares one flat
// package scope.
type EnumEmitter struct{}

// NewEnumEmitter builds an EnumEmitter.
func NewEnumEmitter() *EnumEmitter { return &EnumEmitter{} }

// Emit appends et's type, member constants, Code method, and FromCode
// lookup to f.
func (ee *EnumEmitter) Emit(f *jen.File, et *schema.EnumType) {
	if et.Doc != "" {
		f.Comment(et.Doc)
	}
	f.Type().Id(et.Name).Int32()

	f.Const().DefsFunc(func(g *jen.Group) {
		for _, m := range et.Members {
			if m.Doc != "" {
				g.Comment(m.Doc)
			}
			g.Id(et.Name + m.Name).Id(et.Name).Op("=").Lit(int(m.Value))
		}
	})

	f.Comment(fmt.Sprintf("Code returns the numeric value of this %s member.", et.Name))
	f.Func().Params(jen.Id("e").Id(et.Name)).Id("Code").Params().Int32().Block(
		jen.Return(jen.Int32().Call(jen.Id("e"))),
	)

	f.Comment(fmt.Sprintf(
		"%sFromCode looks up the %s member with the given numeric code.\n"+
			"It reports false, not an error, for an unrecognized code — including\n"+
			"signed negative or otherwise out-of-range values.",
		et.Name, et.Name,
	))
	f.Func().Id(et.Name+"FromCode").Params(jen.Id("code").Int32()).Params(jen.Id(et.Name), jen.Bool()).BlockFunc(func(g *jen.Group) {
		g.Switch(jen.Id("code")).BlockFunc(func(cases *jen.Group) {
			for _, m := range et.Members {
				cases.Case(jen.Lit(int(m.Value))).Block(
					jen.Return(jen.Id(et.Name+m.Name), jen.True()),
				)
			}
		})
		g.Return(jen.Id(et.Name).Call(jen.Lit(0)), jen.False())
	})
}
