package gen

import (
	"github.com/dave/jennifer/jen"

	"github.com/thriftygen/thriftygen/schema"
)

// ConstantsEmitter groups IDL constant declarations by their declared
// output namespace and renders one file per namespace. Go has no
// nested-class idiom for "one final uninstantiable holder class", so
// scalar/enum constants become top-level `const` declarations and
// collection constants become top-level `var` declarations populated by a
// single `init()` function — the idiomatic Go rendition of a static
// initializer block.
type ConstantsEmitter struct {
	resolver *TypeResolver
	renderer *ConstRenderer
}

// NewConstantsEmitter builds a ConstantsEmitter using resolver/renderer to
// resolve types and render values.
func NewConstantsEmitter(resolver *TypeResolver, renderer *ConstRenderer) *ConstantsEmitter {
	return &ConstantsEmitter{resolver: resolver, renderer: renderer}
}

// Emit appends every constant in group to f, which is being generated for
// package group.Namespace.
func (ce *ConstantsEmitter) Emit(f *jen.File, group schema.ConstantGroup) error {
	alloc := newNameAllocator()
	for _, c := range group.Constants {
		alloc.reserve(c.Name)
	}

	var initStmts []jen.Code
	for _, c := range group.Constants {
		typeExpr, err := ce.resolver.SurfaceType(c.Type, true, group.Namespace)
		if err != nil {
			return err
		}

		if c.Type.TrueType().IsCollection() {
			f.Comment(c.Name + " is a generated IDL constant.")
			f.Var().Id(c.Name).Add(typeExpr)
			stmts, err := ce.renderer.RenderInit(alloc, c.Name, c.Type, c.Value, group.Namespace, c.Name)
			if err != nil {
				return err
			}
			initStmts = append(initStmts, stmts...)
			continue
		}

		expr, err := ce.renderer.RenderExpr(c.Type, c.Value, group.Namespace, c.Name)
		if err != nil {
			return err
		}
		f.Comment(c.Name + " is a generated IDL constant.")
		f.Const().Id(c.Name).Add(typeExpr).Op("=").Add(expr)
	}

	if len(initStmts) > 0 {
		f.Func().Id("init").Params().Block(initStmts...)
	}
	return nil
}
