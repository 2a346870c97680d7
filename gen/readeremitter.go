package gen

import (
	"github.com/dave/jennifer/jen"

	"github.com/thriftygen/thriftygen/schema"
)

// ReaderEmitter renders the body of an Adapter's Read method: a field loop
// that dispatches on the wire field id, validates the wire type against
// each known field's expected code, and falls back to Skip for both
// unknown field ids and type-mismatched known ones.
type ReaderEmitter struct {
	resolver *TypeResolver
}

// NewReaderEmitter builds a ReaderEmitter using resolver to determine wire
// type codes.
func NewReaderEmitter(resolver *TypeResolver) *ReaderEmitter {
	return &ReaderEmitter{resolver: resolver}
}

// EmitLoop renders the full read loop body for fields, assigning each
// successfully read value to builder.Set<Field>(...).
func (re *ReaderEmitter) EmitLoop(protocol, builder string, fields []schema.Field, currentPkg, entity string) ([]jen.Code, error) {
	cases := make([]jen.Code, 0, len(fields)+1)
	for _, f := range fields {
		c, err := re.emitFieldCase(protocol, builder, f, currentPkg, entity)
		if err != nil {
			return nil, err
		}
		cases = append(cases, c)
	}
	cases = append(cases, jen.Default().Block(
		jen.If(
			jen.Err().Op(":=").Qual(thriftrtPkg, "Skip").Call(jen.Id("ctx"), jen.Id(protocol), jen.Id("fieldTypeID")),
			jen.Err().Op("!=").Nil(),
		).Block(jen.Return(jen.Nil(), jen.Err())),
	))

	loopBody := []jen.Code{
		jen.List(jen.Id("_"), jen.Id("fieldTypeID"), jen.Id("fieldID"), jen.Err()).Op(":=").Id(protocol).Dot("ReadFieldBegin").Call(jen.Id("ctx")),
		jen.If(jen.Err().Op("!=").Nil()).Block(jen.Return(jen.Nil(), jen.Err())),
		jen.If(jen.Id("fieldTypeID").Op("==").Qual(thriftPkg, "STOP")).Block(jen.Break()),
		jen.Switch(jen.Id("fieldID")).Block(cases...),
		jen.If(
			jen.Err().Op(":=").Id(protocol).Dot("ReadFieldEnd").Call(jen.Id("ctx")),
			jen.Err().Op("!=").Nil(),
		).Block(jen.Return(jen.Nil(), jen.Err())),
	}

	return []jen.Code{
		jen.If(
			jen.List(jen.Id("_"), jen.Err()).Op(":=").Id(protocol).Dot("ReadStructBegin").Call(jen.Id("ctx")),
			jen.Err().Op("!=").Nil(),
		).Block(jen.Return(jen.Nil(), jen.Err())),
		jen.For().Block(loopBody...),
		jen.If(
			jen.Err().Op(":=").Id(protocol).Dot("ReadStructEnd").Call(jen.Id("ctx")),
			jen.Err().Op("!=").Nil(),
		).Block(jen.Return(jen.Nil(), jen.Err())),
	}, nil
}

func (re *ReaderEmitter) emitFieldCase(protocol, builder string, f schema.Field, currentPkg, entity string) (jen.Code, error) {
	symbol, err := re.resolver.WireCodeSymbol(f.Type)
	if err != nil {
		return nil, err
	}

	// A fresh allocator per field: every case is its own switch-case block
	// scope, so names only need to stay unique within one field's (possibly
	// nested) collection read, not across fields.
	alloc := newNameAllocator()
	tt := f.Type.TrueType()
	readExpr, readStmts, err := re.emitValue(alloc, protocol, tt, currentPkg, entity)
	if err != nil {
		return nil, err
	}

	// The Builder always stores scalar/enum fields behind a pointer (so it
	// can track "unset" regardless of required-ness); the read produces a
	// bare local variable, so the setter call needs its address.
	setArg := readExpr
	if isScalarOrEnumKind(tt.Kind) {
		setArg = jen.Op("&").Add(readExpr)
	}

	var body []jen.Code
	body = append(body, jen.If(jen.Id("fieldTypeID").Op("!=").Qual(thriftPkg, symbol)).Block(
		jen.If(
			jen.Err().Op(":=").Qual(thriftrtPkg, "Skip").Call(jen.Id("ctx"), jen.Id(protocol), jen.Id("fieldTypeID")),
			jen.Err().Op("!=").Nil(),
		).Block(jen.Return(jen.Nil(), jen.Err())),
		jen.Break(),
	))
	body = append(body, readStmts...)
	body = append(body, jen.Id(builder).Dot("Set"+exportedFieldName(f.Name)).Call(setArg))

	return jen.Case(jen.Lit(int(f.ID))).Block(body...), nil
}

// emitValue renders the expression and supporting statements that read one
// value of the true type tt from protocol. alloc hands out collision-free
// temporary names so that arbitrarily nested collection types (list<list<T>>,
// map<K,list<V>>, ...) never shadow an enclosing level's accumulator.
func (re *ReaderEmitter) emitValue(alloc *nameAllocator, protocol string, tt schema.ThriftType, currentPkg, entity string) (jen.Code, []jen.Code, error) {
	switch tt.Kind {
	case schema.KindBool, schema.KindByte, schema.KindI16, schema.KindI32, schema.KindI64, schema.KindDouble, schema.KindString:
		method := scalarReadMethod(tt.Kind)
		val := alloc.newName("val")
		stmts := []jen.Code{
			jen.List(jen.Id(val), jen.Err()).Op(":=").Id(protocol).Dot(method).Call(jen.Id("ctx")),
			jen.If(jen.Err().Op("!=").Nil()).Block(jen.Return(jen.Nil(), jen.Err())),
		}
		return jen.Id(val), stmts, nil
	case schema.KindBinary:
		val := alloc.newName("val")
		stmts := []jen.Code{
			jen.List(jen.Id(val), jen.Err()).Op(":=").Id(protocol).Dot("ReadBinary").Call(jen.Id("ctx")),
			jen.If(jen.Err().Op("!=").Nil()).Block(jen.Return(jen.Nil(), jen.Err())),
		}
		return jen.Id(val), stmts, nil
	case schema.KindEnum:
		code := alloc.newName("code")
		val := alloc.newName("val")
		ok := alloc.newName("ok")
		fromCode := re.resolver.qualOrID(tt.Namespace, tt.Name+"FromCode", currentPkg)
		stmts := []jen.Code{
			jen.List(jen.Id(code), jen.Err()).Op(":=").Id(protocol).Dot("ReadI32").Call(jen.Id("ctx")),
			jen.If(jen.Err().Op("!=").Nil()).Block(jen.Return(jen.Nil(), jen.Err())),
			jen.List(jen.Id(val), jen.Id(ok)).Op(":=").Add(fromCode).Call(jen.Id(code)),
			jen.If(jen.Op("!").Id(ok)).Block(
				jen.Return(jen.Nil(), jen.Qual("fmt", "Errorf").Call(jen.Lit("unknown "+entity+" enum code: %d"), jen.Id(code))),
			),
		}
		return jen.Id(val), stmts, nil
	case schema.KindStruct:
		adapterRef := re.resolver.qualOrID(tt.Namespace, "ADAPTER_"+tt.Name, currentPkg)
		val := alloc.newName("val")
		stmts := []jen.Code{
			jen.List(jen.Id(val), jen.Err()).Op(":=").Add(adapterRef).Dot("ReadNew").Call(jen.Id("ctx"), jen.Id(protocol)),
			jen.If(jen.Err().Op("!=").Nil()).Block(jen.Return(jen.Nil(), jen.Err())),
		}
		return jen.Id(val), stmts, nil
	case schema.KindList:
		return re.emitList(alloc, protocol, tt, currentPkg, entity)
	case schema.KindSet:
		return re.emitSet(alloc, protocol, tt, currentPkg, entity)
	case schema.KindMap:
		return re.emitMap(alloc, protocol, tt, currentPkg, entity)
	default:
		return nil, nil, newInternalInvariantError("no read dispatch for kind: " + tt.Kind.String())
	}
}

func (re *ReaderEmitter) emitList(alloc *nameAllocator, protocol string, tt schema.ThriftType, currentPkg, entity string) (jen.Code, []jen.Code, error) {
	elemExpr, err := re.resolver.SurfaceType(*tt.Elem, true, currentPkg)
	if err != nil {
		return nil, nil, err
	}
	container := re.resolver.ListOf(elemExpr)

	out := alloc.newName("out")
	size := alloc.newName("size")
	i := alloc.newName("i")

	itemExpr, itemStmts, err := re.emitValue(alloc, protocol, tt.Elem.TrueType(), currentPkg, entity)
	if err != nil {
		return nil, nil, err
	}

	var loopBody []jen.Code
	loopBody = append(loopBody, itemStmts...)
	loopBody = append(loopBody, jen.Id(out).Op("=").Append(jen.Id(out), itemExpr))

	stmts := []jen.Code{
		jen.List(jen.Id("_"), jen.Id(size), jen.Err()).Op(":=").Id(protocol).Dot("ReadListBegin").Call(jen.Id("ctx")),
		jen.If(jen.Err().Op("!=").Nil()).Block(jen.Return(jen.Nil(), jen.Err())),
		jen.Id(out).Op(":=").Make(container, jen.Lit(0), jen.Id(size)),
		jen.For(jen.Id(i).Op(":=").Lit(0), jen.Id(i).Op("<").Id(size), jen.Id(i).Op("++")).Block(loopBody...),
		jen.If(
			jen.Err().Op(":=").Id(protocol).Dot("ReadListEnd").Call(jen.Id("ctx")),
			jen.Err().Op("!=").Nil(),
		).Block(jen.Return(jen.Nil(), jen.Err())),
	}
	return jen.Id(out), stmts, nil
}

func (re *ReaderEmitter) emitSet(alloc *nameAllocator, protocol string, tt schema.ThriftType, currentPkg, entity string) (jen.Code, []jen.Code, error) {
	elemExpr, err := re.resolver.SurfaceType(*tt.Elem, true, currentPkg)
	if err != nil {
		return nil, nil, err
	}
	container := re.resolver.SetOf(elemExpr)

	out := alloc.newName("out")
	size := alloc.newName("size")
	i := alloc.newName("i")

	itemExpr, itemStmts, err := re.emitValue(alloc, protocol, tt.Elem.TrueType(), currentPkg, entity)
	if err != nil {
		return nil, nil, err
	}

	var loopBody []jen.Code
	loopBody = append(loopBody, itemStmts...)
	loopBody = append(loopBody, jen.Id(out).Index(itemExpr).Op("=").Struct().Values())

	stmts := []jen.Code{
		jen.List(jen.Id("_"), jen.Id(size), jen.Err()).Op(":=").Id(protocol).Dot("ReadSetBegin").Call(jen.Id("ctx")),
		jen.If(jen.Err().Op("!=").Nil()).Block(jen.Return(jen.Nil(), jen.Err())),
		jen.Id(out).Op(":=").Add(container).Values(),
		jen.For(jen.Id(i).Op(":=").Lit(0), jen.Id(i).Op("<").Id(size), jen.Id(i).Op("++")).Block(loopBody...),
		jen.If(
			jen.Err().Op(":=").Id(protocol).Dot("ReadSetEnd").Call(jen.Id("ctx")),
			jen.Err().Op("!=").Nil(),
		).Block(jen.Return(jen.Nil(), jen.Err())),
	}
	return jen.Id(out), stmts, nil
}

func (re *ReaderEmitter) emitMap(alloc *nameAllocator, protocol string, tt schema.ThriftType, currentPkg, entity string) (jen.Code, []jen.Code, error) {
	keyExpr, err := re.resolver.SurfaceType(*tt.Key, true, currentPkg)
	if err != nil {
		return nil, nil, err
	}
	valExpr, err := re.resolver.SurfaceType(*tt.Val, true, currentPkg)
	if err != nil {
		return nil, nil, err
	}
	container := re.resolver.MapOf(keyExpr, valExpr)

	out := alloc.newName("out")
	size := alloc.newName("size")
	i := alloc.newName("i")

	keyRead, keyStmts, err := re.emitValue(alloc, protocol, tt.Key.TrueType(), currentPkg, entity)
	if err != nil {
		return nil, nil, err
	}
	valRead, valStmts, err := re.emitValue(alloc, protocol, tt.Val.TrueType(), currentPkg, entity)
	if err != nil {
		return nil, nil, err
	}

	var loopBody []jen.Code
	loopBody = append(loopBody, keyStmts...)
	loopBody = append(loopBody, valStmts...)
	loopBody = append(loopBody, jen.Id(out).Index(keyRead).Op("=").Add(valRead))

	stmts := []jen.Code{
		jen.List(jen.Id("_"), jen.Id("_"), jen.Id(size), jen.Err()).Op(":=").Id(protocol).Dot("ReadMapBegin").Call(jen.Id("ctx")),
		jen.If(jen.Err().Op("!=").Nil()).Block(jen.Return(jen.Nil(), jen.Err())),
		jen.Id(out).Op(":=").Add(container).Values(),
		jen.For(jen.Id(i).Op(":=").Lit(0), jen.Id(i).Op("<").Id(size), jen.Id(i).Op("++")).Block(loopBody...),
		jen.If(
			jen.Err().Op(":=").Id(protocol).Dot("ReadMapEnd").Call(jen.Id("ctx")),
			jen.Err().Op("!=").Nil(),
		).Block(jen.Return(jen.Nil(), jen.Err())),
	}
	return jen.Id(out), stmts, nil
}

func scalarReadMethod(k schema.Kind) string {
	switch k {
	case schema.KindBool:
		return "ReadBool"
	case schema.KindByte:
		return "ReadByte"
	case schema.KindI16:
		return "ReadI16"
	case schema.KindI32:
		return "ReadI32"
	case schema.KindI64:
		return "ReadI64"
	case schema.KindDouble:
		return "ReadDouble"
	case schema.KindString:
		return "ReadString"
	default:
		return ""
	}
}
