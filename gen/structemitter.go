package gen

import (
	"fmt"

	"github.com/dave/jennifer/jen"
	"github.com/go-openapi/inflect"

	"github.com/thriftygen/thriftygen/schema"
)

// StructEmitter renders a struct/exception/union declaration as three
// artifacts in one compilation unit: the value type, its Builder, and its
// Adapter.
type StructEmitter struct {
	resolver *TypeResolver
	writer   *WriterEmitter
	reader   *ReaderEmitter
	defaults *ConstRenderer
}

// NewStructEmitter builds a StructEmitter.
func NewStructEmitter(resolver *TypeResolver, writer *WriterEmitter, reader *ReaderEmitter) *StructEmitter {
	return &StructEmitter{resolver: resolver, writer: writer, reader: reader}
}

// WithDefaultsRenderer binds the ConstRenderer used to render Reset's
// default-value initializers, which needs a schema reference (to resolve
// enum-member defaults) that StructEmitter itself does not hold.
func (se *StructEmitter) WithDefaultsRenderer(cr *ConstRenderer) *StructEmitter {
	se.defaults = cr
	return se
}

// Emit appends the value type, Builder, and Adapter declarations for st to
// f, which is being generated for package currentPkg.
func (se *StructEmitter) Emit(f *jen.File, st *schema.StructType, currentPkg string) error {
	if err := se.emitValueType(f, st, currentPkg); err != nil {
		return err
	}
	if err := se.emitBuilder(f, st, currentPkg); err != nil {
		return err
	}
	if err := se.emitAdapter(f, st, currentPkg); err != nil {
		return err
	}
	return nil
}

func isCollectionField(f schema.Field) bool {
	return f.Type.IsCollection()
}

func (se *StructEmitter) emitValueType(f *jen.File, st *schema.StructType, currentPkg string) error {
	fields := make([]jen.Code, 0, len(st.Fields))
	for _, field := range st.Fields {
		typeExpr, err := se.resolver.SurfaceType(field.Type, field.Required, currentPkg)
		if err != nil {
			return err
		}
		tag := structTag(field)
		name := exportedFieldName(field.Name)
		if isCollectionField(field) {
			name = unexportedName(name)
		}
		if field.Doc != "" {
			fields = append(fields, jen.Comment(field.Doc))
		}
		fields = append(fields, jen.Id(name).Add(typeExpr).Tag(tag))
	}

	doc := st.Doc
	if doc != "" {
		f.Comment(doc)
	}
	f.Type().Id(st.Name).StructFunc(func(g *jen.Group) {
		for _, c := range fields {
			g.Add(c)
		}
	})

	for _, field := range st.Fields {
		if !isCollectionField(field) {
			continue
		}
		typeExpr, err := se.resolver.SurfaceType(field.Type, field.Required, currentPkg)
		if err != nil {
			return err
		}
		exported := exportedFieldName(field.Name)
		unexported := unexportedName(exported)
		body, err := se.emitCopyBody(field, unexported, currentPkg)
		if err != nil {
			return err
		}
		f.Comment(fmt.Sprintf("%s returns a copy of the %s field.", exported, field.Name))
		f.Func().Params(jen.Id("p").Op("*").Id(st.Name)).Id(exported).Params().Add(typeExpr).Block(body...)
	}

	se.emitEqual(f, st, currentPkg)
	se.emitHash(f, st)
	se.emitString(f, st)
	if st.IsException() {
		se.emitError(f, st)
	}
	return nil
}

// emitCopyBody renders the body of a collection field's accessor: it must
// never hand out the builder's backing storage, only a defensive copy, so
// callers cannot mutate a value type's collection field after Build.
func (se *StructEmitter) emitCopyBody(field schema.Field, unexported, currentPkg string) ([]jen.Code, error) {
	tt := field.Type.TrueType()
	switch tt.Kind {
	case schema.KindMap:
		keyExpr, err := se.resolver.SurfaceType(*tt.Key, true, currentPkg)
		if err != nil {
			return nil, err
		}
		valExpr, err := se.resolver.SurfaceType(*tt.Val, true, currentPkg)
		if err != nil {
			return nil, err
		}
		return []jen.Code{
			jen.If(jen.Id("p").Dot(unexported).Op("==").Nil()).Block(jen.Return(jen.Nil())),
			jen.Id("out").Op(":=").Make(jen.Map(keyExpr).Add(valExpr), jen.Len(jen.Id("p").Dot(unexported))),
			jen.For(jen.List(jen.Id("k"), jen.Id("v")).Op(":=").Range().Id("p").Dot(unexported)).Block(
				jen.Id("out").Index(jen.Id("k")).Op("=").Id("v"),
			),
			jen.Return(jen.Id("out")),
		}, nil
	default: // KindList, KindSet
		elemExpr, err := se.resolver.SurfaceType(*tt.Elem, true, currentPkg)
		if err != nil {
			return nil, err
		}
		if tt.Kind == schema.KindSet {
			return []jen.Code{
				jen.If(jen.Id("p").Dot(unexported).Op("==").Nil()).Block(jen.Return(jen.Nil())),
				jen.Id("out").Op(":=").Make(jen.Map(elemExpr).Struct(), jen.Len(jen.Id("p").Dot(unexported))),
				jen.For(jen.Id("k").Op(":=").Range().Id("p").Dot(unexported)).Block(
					jen.Id("out").Index(jen.Id("k")).Op("=").Struct().Values(),
				),
				jen.Return(jen.Id("out")),
			}, nil
		}
		return []jen.Code{
			jen.If(jen.Id("p").Dot(unexported).Op("==").Nil()).Block(jen.Return(jen.Nil())),
			jen.Id("out").Op(":=").Make(jen.Index().Add(elemExpr), jen.Len(jen.Id("p").Dot(unexported))),
			jen.Copy(jen.Id("out"), jen.Id("p").Dot(unexported)),
			jen.Return(jen.Id("out")),
		}, nil
	}
}

func structTag(f schema.Field) map[string]string {
	val := fmt.Sprintf("%s,%d", f.Name, f.ID)
	if f.Required {
		val += ",required"
	}
	if f.TypedefName != "" {
		val += ",typedef=" + f.TypedefName
	}
	return map[string]string{"thrift": val}
}

func (se *StructEmitter) emitEqual(f *jen.File, st *schema.StructType, currentPkg string) {
	body := []jen.Code{
		jen.If(jen.Id("p").Op("==").Id("other")).Block(jen.Return(jen.True())),
		jen.If(jen.Id("p").Op("==").Nil().Op("||").Id("other").Op("==").Nil()).Block(jen.Return(jen.False())),
	}
	for _, field := range st.Fields {
		exported := exportedFieldName(field.Name)
		name := exported
		if isCollectionField(field) {
			name = unexportedName(exported)
		}
		body = append(body, jen.If(jen.Op("!").Qual(thriftrtPkg, "EqualValue").Call(
			jen.Id("p").Dot(name), jen.Id("other").Dot(name),
		)).Block(jen.Return(jen.False())))
	}
	body = append(body, jen.Return(jen.True()))

	f.Comment(fmt.Sprintf("Equal reports whether p and other represent the same %s value.", st.Name))
	f.Func().Params(jen.Id("p").Op("*").Id(st.Name)).Id("Equal").Params(jen.Id("other").Op("*").Id(st.Name)).Bool().Block(body...)
}

func (se *StructEmitter) emitHash(f *jen.File, st *schema.StructType) {
	body := []jen.Code{jen.Id("h").Op(":=").Qual(thriftrtPkg, "HashSeed")}
	for _, field := range st.Fields {
		exported := exportedFieldName(field.Name)
		name := exported
		if isCollectionField(field) {
			name = unexportedName(exported)
		}
		body = append(body, jen.Id("h").Op("=").Qual(thriftrtPkg, "HashCombine").Call(
			jen.Id("h"), jen.Qual(thriftrtPkg, "HashOf").Call(jen.Id("p").Dot(name)),
		))
	}
	body = append(body, jen.Return(jen.Id("h")))

	f.Comment("Hash returns an FNV-1a-style hash over every field.")
	f.Func().Params(jen.Id("p").Op("*").Id(st.Name)).Id("Hash").Params().Int32().Block(body...)
}

func (se *StructEmitter) emitString(f *jen.File, st *schema.StructType) {
	body := []jen.Code{
		jen.Id("b").Op(":=").Qual("strings", "Builder").Values(),
		jen.Id("b").Dot("WriteString").Call(jen.Lit(st.Name + "{")),
	}
	for _, field := range st.Fields {
		exported := exportedFieldName(field.Name)
		name := exported
		if isCollectionField(field) {
			name = unexportedName(exported)
		}
		body = append(body,
			jen.Id("b").Dot("WriteString").Call(jen.Lit("\n  "+field.Name+"=")),
			jen.Id("b").Dot("WriteString").Call(jen.Qual(thriftrtPkg, "FormatValue").Call(jen.Id("p").Dot(name))),
			jen.Id("b").Dot("WriteString").Call(jen.Lit(",")),
		)
	}
	if len(st.Fields) > 0 {
		body = append(body, jen.Id("b").Dot("WriteString").Call(jen.Lit("\n")))
	}
	body = append(body,
		jen.Id("b").Dot("WriteString").Call(jen.Lit("}")),
		jen.Return(jen.Id("b").Dot("String").Call()),
	)

	f.Comment(fmt.Sprintf("String renders %s as \"%s{\\n  field=value,\\n}\".", st.Name, st.Name))
	f.Func().Params(jen.Id("p").Op("*").Id(st.Name)).Id("String").Params().String().Block(body...)
}

func (se *StructEmitter) emitError(f *jen.File, st *schema.StructType) {
	f.Comment("Error implements the error interface so " + st.Name + " may be returned as a Go error.")
	f.Func().Params(jen.Id("p").Op("*").Id(st.Name)).Id("Error").Params().String().Block(
		jen.Return(jen.Id("p").Dot("String").Call()),
	)
}

// emitBuilder renders the mutable Builder type: storage, fluent setters,
// Reset, and Build.
func (se *StructEmitter) emitBuilder(f *jen.File, st *schema.StructType, currentPkg string) error {
	builderName := st.Name + "Builder"

	f.Type().Id(builderName).StructFunc(func(g *jen.Group) {
		for _, field := range st.Fields {
			// Builder storage is always resolved as if optional, regardless
			// of field.Required: it must track "unset" until Build() runs
			// its required-field checks, even for fields whose value type
			// is a bare (non-pointer) required field.
			typeExpr, _ := se.resolver.SurfaceType(field.Type, false, currentPkg)
			g.Id(unexportedName(exportedFieldName(field.Name))).Add(typeExpr)
		}
	})

	f.Comment(fmt.Sprintf("New%s returns an empty %s, with any default values applied.", builderName, builderName))
	f.Func().Id("New"+builderName).Params().Op("*").Id(builderName).Block(
		append([]jen.Code{jen.Id("b").Op(":=").Op("&").Id(builderName).Values()},
			jen.Id("b").Dot("Reset").Call(),
			jen.Return(jen.Id("b")),
		)...,
	)

	f.Comment(fmt.Sprintf("%sFrom seeds a %s from an existing %s value.", builderName, builderName, st.Name))
	f.Func().Id(builderName+"From").Params(jen.Id("v").Op("*").Id(st.Name)).Op("*").Id(builderName).BlockFunc(func(g *jen.Group) {
		g.Id("b").Op(":=").Op("&").Id(builderName).Values()
		for _, field := range st.Fields {
			exported := exportedFieldName(field.Name)
			fname := unexportedName(exported)
			tt := field.Type.TrueType()
			switch {
			case isCollectionField(field):
				g.Id("b").Dot(fname).Op("=").Id("v").Dot(exported).Call()
			case field.Required && isScalarOrEnumKind(tt.Kind):
				// The value type's field is bare for a required scalar/enum;
				// the builder always stores these behind a pointer.
				g.Id("b").Dot(fname).Op("=").Op("&").Id("v").Dot(exported)
			default:
				g.Id("b").Dot(fname).Op("=").Id("v").Dot(exported)
			}
		}
		g.Return(jen.Id("b"))
	})

	for _, field := range st.Fields {
		se.emitSetter(f, builderName, field, currentPkg)
	}

	if err := se.emitReset(f, st, builderName, currentPkg); err != nil {
		return err
	}
	se.emitBuild(f, st, builderName)
	return nil
}

func (se *StructEmitter) emitSetter(f *jen.File, builderName string, field schema.Field, currentPkg string) {
	exported := exportedFieldName(field.Name)
	fname := unexportedName(exported)
	// The setter's parameter type matches the Builder's storage type (always
	// nilable), not the value type's required-aware type, so a required
	// setter can null-check its argument regardless of the field's kind.
	typeExpr, _ := se.resolver.SurfaceType(field.Type, false, currentPkg)

	var body []jen.Code
	if field.Required {
		body = append(body, jen.If(jen.Id("v").Op("==").Nil()).Block(
			jen.Panic(jen.Lit(fmt.Sprintf("%s: %s must not be nil", builderName, field.Name))),
		))
	}
	body = append(body,
		jen.Id("b").Dot(fname).Op("=").Id("v"),
		jen.Return(jen.Id("b")),
	)

	f.Comment(fmt.Sprintf("Set%s sets the %s field.", exported, field.Name))
	f.Func().Params(jen.Id("b").Op("*").Id(builderName)).Id("Set"+exported).Params(jen.Id("v").Add(typeExpr)).Op("*").Id(builderName).Block(body...)
}

func (se *StructEmitter) emitReset(f *jen.File, st *schema.StructType, builderName, currentPkg string) error {
	var body []jen.Code
	alloc := newNameAllocator()
	for _, field := range st.Fields {
		alloc.reserve(unexportedName(exportedFieldName(field.Name)))
	}
	for _, field := range st.Fields {
		fname := unexportedName(exportedFieldName(field.Name))
		if field.Default != nil {
			stmts, err := se.defaultInit(alloc, "b."+fname, field, currentPkg, st.Name)
			if err != nil {
				return err
			}
			body = append(body, stmts...)
			continue
		}
		// Builder storage is always nilable (pointer/slice/map), so clearing
		// a field back to "unset" is always a nil assignment.
		body = append(body, jen.Id("b").Dot(fname).Op("=").Nil())
	}
	body = append(body, jen.Return(jen.Id("b")))

	f.Comment("Reset re-applies default field values and clears the rest.")
	f.Func().Params(jen.Id("b").Op("*").Id(builderName)).Id("Reset").Params().Op("*").Id(builderName).Block(body...)
	return nil
}

// defaultInit renders the statement(s) that apply field's default value to
// the Builder's storage at target (a "b.<field>" expression string). Scalar
// and enum defaults are written through a generated temporary so the
// always-pointer Builder storage can take its address; collection defaults
// go through ConstRenderer's statement mode unchanged.
func (se *StructEmitter) defaultInit(alloc *nameAllocator, target string, field schema.Field, currentPkg, entity string) ([]jen.Code, error) {
	cr := se.constRendererForDefaults()
	tt := field.Type.TrueType()
	if isScalarOrEnumKind(tt.Kind) {
		expr, err := cr.RenderExpr(field.Type, *field.Default, currentPkg, entity)
		if err != nil {
			return nil, err
		}
		typeExpr, err := se.resolver.SurfaceType(field.Type, true, currentPkg)
		if err != nil {
			return nil, err
		}
		tmp := alloc.newName(unexportedName(exportedFieldName(field.Name)) + "Default")
		// An explicit var type: integer literals are untyped, and the
		// temporary's address must match the builder's pointer storage.
		return []jen.Code{
			jen.Var().Id(tmp).Add(typeExpr).Op("=").Add(expr),
			jen.Id(target).Op("=").Op("&").Id(tmp),
		}, nil
	}
	return cr.RenderInit(alloc, target, field.Type, *field.Default, currentPkg, entity)
}

// constRendererForDefaults returns the ConstRenderer bound via
// WithDefaultsRenderer, falling back to one with no schema reference (valid
// only for defaults that never reference an enum member).
func (se *StructEmitter) constRendererForDefaults() *ConstRenderer {
	if se.defaults != nil {
		return se.defaults
	}
	return NewConstRenderer(se.resolver, nil)
}

func (se *StructEmitter) emitBuild(f *jen.File, st *schema.StructType, builderName string) {
	var body []jen.Code
	if st.IsUnion() {
		body = append(body, jen.Id("set").Op(":=").Lit(0))
		for _, field := range st.Fields {
			fname := unexportedName(exportedFieldName(field.Name))
			body = append(body, jen.If(jen.Id("b").Dot(fname).Op("!=").Nil()).Block(jen.Id("set").Op("++")))
		}
		body = append(body, jen.If(jen.Id("set").Op("!=").Lit(1)).Block(
			jen.Return(jen.Nil(), jen.Qual("fmt", "Errorf").Call(
				jen.Lit(fmt.Sprintf("%s: exactly one field must be set, %%d %s were set", st.Name, inflect.Pluralize("field"))),
				jen.Id("set"),
			)),
		))
	} else {
		for _, field := range st.Fields {
			if !field.Required {
				continue
			}
			fname := unexportedName(exportedFieldName(field.Name))
			body = append(body, jen.If(jen.Id("b").Dot(fname).Op("==").Nil()).Block(
				jen.Return(jen.Nil(), jen.Qual("fmt", "Errorf").Call(jen.Lit(field.Name+" is required"))),
			))
		}
	}

	body = append(body, jen.Id("v").Op(":=").Op("&").Id(st.Name).Values(jen.DictFunc(func(d jen.Dict) {
		for _, field := range st.Fields {
			exported := exportedFieldName(field.Name)
			fname := unexportedName(exported)
			tt := field.Type.TrueType()
			switch {
			case isCollectionField(field):
				d[jen.Id(fname)] = jen.Id("b").Dot(fname)
			case field.Required && isScalarOrEnumKind(tt.Kind):
				// Builder storage is a pointer; the value type's required
				// field is bare, so dereference on the way out.
				d[jen.Id(exported)] = jen.Op("*").Id("b").Dot(fname)
			default:
				d[jen.Id(exported)] = jen.Id("b").Dot(fname)
			}
		}
	})))
	body = append(body, jen.Return(jen.Id("v"), jen.Nil()))

	f.Comment(fmt.Sprintf("Build validates and constructs a %s.", st.Name))
	f.Func().Params(jen.Id("b").Op("*").Id(builderName)).Id("Build").Params().Params(jen.Op("*").Id(st.Name), jen.Error()).Block(body...)
}

func (se *StructEmitter) emitAdapter(f *jen.File, st *schema.StructType, currentPkg string) error {
	adapterType := st.Name + "Adapter"
	builderName := st.Name + "Builder"

	f.Type().Id(adapterType).Struct()
	f.Var().Id("ADAPTER_" + st.Name).Op("=").Id(adapterType).Values()

	writeBody, err := se.emitWriteMethod(st, currentPkg)
	if err != nil {
		return err
	}
	f.Func().Params(jen.Id("a").Id(adapterType)).Id("Write").Params(
		jen.Id("ctx").Qual("context", "Context"),
		jen.Id("protocol").Qual(thriftPkg, "TProtocol"),
		jen.Id("v").Op("*").Id(st.Name),
	).Error().Block(writeBody...)

	readBody, err := se.emitReadMethod(st, currentPkg)
	if err != nil {
		return err
	}
	f.Func().Params(jen.Id("a").Id(adapterType)).Id("Read").Params(
		jen.Id("ctx").Qual("context", "Context"),
		jen.Id("protocol").Qual(thriftPkg, "TProtocol"),
		jen.Id("builder").Op("*").Id(builderName),
	).Params(jen.Op("*").Id(st.Name), jen.Error()).Block(readBody...)

	f.Func().Params(jen.Id("a").Id(adapterType)).Id("ReadNew").Params(
		jen.Id("ctx").Qual("context", "Context"),
		jen.Id("protocol").Qual(thriftPkg, "TProtocol"),
	).Params(jen.Op("*").Id(st.Name), jen.Error()).Block(
		jen.Return(jen.Id("a").Dot("Read").Call(jen.Id("ctx"), jen.Id("protocol"), jen.Id("New"+builderName).Call())),
	)
	return nil
}

func (se *StructEmitter) emitWriteMethod(st *schema.StructType, currentPkg string) ([]jen.Code, error) {
	var body []jen.Code
	body = append(body, jen.If(
		jen.Err().Op(":=").Id("protocol").Dot("WriteStructBegin").Call(jen.Id("ctx"), jen.Lit(st.Name)),
		jen.Err().Op("!=").Nil(),
	).Block(jen.Return(jen.Err())))

	for _, field := range st.Fields {
		stmts, err := se.writer.EmitField("protocol", "v", field, currentPkg, st.Name)
		if err != nil {
			return nil, err
		}
		body = append(body, stmts...)
	}
	body = append(body, se.writer.EmitFooter("protocol")...)
	body = append(body, jen.Return(jen.Nil()))
	return body, nil
}

func (se *StructEmitter) emitReadMethod(st *schema.StructType, currentPkg string) ([]jen.Code, error) {
	loop, err := se.reader.EmitLoop("protocol", "builder", st.Fields, currentPkg, st.Name)
	if err != nil {
		return nil, err
	}
	var body []jen.Code
	body = append(body, loop...)
	body = append(body, jen.Return(jen.Id("builder").Dot("Build").Call()))
	return body, nil
}
