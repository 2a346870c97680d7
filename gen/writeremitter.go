package gen

import (
	"github.com/dave/jennifer/jen"

	"github.com/thriftygen/thriftygen/schema"
)

// WriterEmitter renders the body of an Adapter's Write method: one
// field-write sequence per declared field, followed by the struct
// terminator. It never allocates state of its own; every call is a pure
// function of the resolver, the struct's receiver/builder names, and the
// field being emitted.
type WriterEmitter struct {
	resolver *TypeResolver
}

// NewWriterEmitter builds a WriterEmitter using resolver to determine wire
// type codes.
func NewWriterEmitter(resolver *TypeResolver) *WriterEmitter {
	return &WriterEmitter{resolver: resolver}
}

// EmitField renders the statements that write recv.<Field> to protocol,
// guarding with a nil check first when the field is optional.
func (w *WriterEmitter) EmitField(protocol, recv string, f schema.Field, currentPkg, entity string) ([]jen.Code, error) {
	tt := f.Type.TrueType()

	var fieldAccess *jen.Statement
	if f.Type.IsCollection() {
		// Collection fields store an unexported slice/map; the exported
		// accessor returns a defensive copy, so reads go through it rather
		// than the backing field directly.
		fieldAccess = jen.Id(recv).Dot(exportedFieldName(f.Name)).Call()
	} else {
		fieldAccess = jen.Id(recv).Dot(exportedFieldName(f.Name))
	}

	// An optional scalar field is a pointer on the value type; the
	// protocol's Write call takes the value itself, not the pointer. Enum
	// fields stay undereferenced: the write goes through the member's
	// Code() method, and a method call auto-dereferences the pointer
	// (prefixing * would instead parse as *(x.Code())).
	valueExpr := jen.Add(fieldAccess)
	if !f.Required && isScalarOrEnumKind(tt.Kind) && tt.Kind != schema.KindEnum {
		valueExpr = jen.Op("*").Add(fieldAccess)
	}

	body, err := w.emitFieldBody(protocol, valueExpr, f, currentPkg, entity)
	if err != nil {
		return nil, err
	}

	if !f.Required {
		return []jen.Code{
			jen.If(fieldAccess.Clone().Op("!=").Nil()).Block(body...),
		}, nil
	}
	return body, nil
}

func (w *WriterEmitter) emitFieldBody(protocol string, fieldAccess *jen.Statement, f schema.Field, currentPkg, entity string) ([]jen.Code, error) {
	symbol, err := w.resolver.WireCodeSymbol(f.Type)
	if err != nil {
		return nil, err
	}

	var out []jen.Code
	out = append(out, checkedCall(protocol, "WriteFieldBegin", jen.Lit(f.Name), jen.Qual(thriftPkg, symbol), jen.Lit(int(f.ID))))

	writeVal, err := w.emitValue(protocol, fieldAccess, f.Type, currentPkg, entity)
	if err != nil {
		return nil, err
	}
	out = append(out, writeVal...)

	out = append(out, checkedCall(protocol, "WriteFieldEnd"))

	return out, nil
}

// emitValue renders the statements that write a single value of type t,
// addressed by expr, to protocol, dispatching on t's true type.
func (w *WriterEmitter) emitValue(protocol string, expr *jen.Statement, t schema.ThriftType, currentPkg, entity string) ([]jen.Code, error) {
	tt := t.TrueType()
	switch tt.Kind {
	case schema.KindBool, schema.KindByte, schema.KindI16, schema.KindI32, schema.KindI64, schema.KindDouble, schema.KindString:
		method := scalarWriteMethod(tt.Kind)
		return []jen.Code{checkedCall(protocol, method, expr)}, nil
	case schema.KindBinary:
		return []jen.Code{checkedCall(protocol, "WriteBinary", expr)}, nil
	case schema.KindEnum:
		return []jen.Code{checkedCall(protocol, "WriteI32", jen.Id("int32").Call(expr.Clone().Dot("Code").Call()))}, nil
	case schema.KindStruct:
		adapterRef := w.resolver.qualOrID(tt.Namespace, "ADAPTER_"+tt.Name, currentPkg)
		return []jen.Code{
			jen.If(
				jen.Err().Op(":=").Add(adapterRef).Dot("Write").Call(jen.Id("ctx"), jen.Id(protocol), expr),
				jen.Err().Op("!=").Nil(),
			).Block(jen.Return(jen.Err())),
		}, nil
	case schema.KindList, schema.KindSet:
		return w.emitListOrSet(protocol, expr, tt, currentPkg, entity)
	case schema.KindMap:
		return w.emitMap(protocol, expr, tt, currentPkg, entity)
	default:
		return nil, newInternalInvariantError("no write dispatch for kind: " + tt.Kind.String())
	}
}

func (w *WriterEmitter) emitListOrSet(protocol string, expr *jen.Statement, tt schema.ThriftType, currentPkg, entity string) ([]jen.Code, error) {
	elemCode, err := w.resolver.WireCodeSymbol(*tt.Elem)
	if err != nil {
		return nil, err
	}
	beginCall, endCall := "WriteListBegin", "WriteListEnd"
	isSet := tt.Kind == schema.KindSet
	if isSet {
		beginCall, endCall = "WriteSetBegin", "WriteSetEnd"
	}

	if isSet {
		valStmts, err := w.emitValue(protocol, jen.Id("elem"), *tt.Elem, currentPkg, entity)
		if err != nil {
			return nil, err
		}
		return []jen.Code{
			checkedCall(protocol, beginCall, jen.Qual(thriftPkg, elemCode), jen.Len(expr)),
			jen.For(jen.Id("elem").Op(":=").Range().Add(expr)).Block(valStmts...),
			checkedCall(protocol, endCall),
		}, nil
	}

	valStmts, err := w.emitValue(protocol, jen.Id("elem"), *tt.Elem, currentPkg, entity)
	if err != nil {
		return nil, err
	}
	return []jen.Code{
		checkedCall(protocol, beginCall, jen.Qual(thriftPkg, elemCode), jen.Len(expr)),
		jen.For(jen.List(jen.Id("_"), jen.Id("elem")).Op(":=").Range().Add(expr)).Block(valStmts...),
		checkedCall(protocol, endCall),
	}, nil
}

func (w *WriterEmitter) emitMap(protocol string, expr *jen.Statement, tt schema.ThriftType, currentPkg, entity string) ([]jen.Code, error) {
	keyCode, err := w.resolver.WireCodeSymbol(*tt.Key)
	if err != nil {
		return nil, err
	}
	valCode, err := w.resolver.WireCodeSymbol(*tt.Val)
	if err != nil {
		return nil, err
	}

	keyStmts, err := w.emitValue(protocol, jen.Id("k"), *tt.Key, currentPkg, entity)
	if err != nil {
		return nil, err
	}
	valStmts, err := w.emitValue(protocol, jen.Id("v"), *tt.Val, currentPkg, entity)
	if err != nil {
		return nil, err
	}

	var loopBody []jen.Code
	loopBody = append(loopBody, keyStmts...)
	loopBody = append(loopBody, valStmts...)

	return []jen.Code{
		checkedCall(protocol, "WriteMapBegin", jen.Qual(thriftPkg, keyCode), jen.Qual(thriftPkg, valCode), jen.Len(expr)),
		jen.For(jen.List(jen.Id("k"), jen.Id("v")).Op(":=").Range().Add(expr)).Block(loopBody...),
		checkedCall(protocol, "WriteMapEnd"),
	}, nil
}

func scalarWriteMethod(k schema.Kind) string {
	switch k {
	case schema.KindBool:
		return "WriteBool"
	case schema.KindByte:
		return "WriteByte"
	case schema.KindI16:
		return "WriteI16"
	case schema.KindI32:
		return "WriteI32"
	case schema.KindI64:
		return "WriteI64"
	case schema.KindDouble:
		return "WriteDouble"
	case schema.KindString:
		return "WriteString"
	default:
		return ""
	}
}

// checkedCall renders `if err := protocol.Method(ctx, args...); err != nil {
// return err }`, the idiomatic Go rendition of the original's checked-void
// protocol calls.
func checkedCall(protocol, method string, args ...jen.Code) jen.Code {
	callArgs := append([]jen.Code{jen.Id("ctx")}, args...)
	return jen.If(
		jen.Err().Op(":=").Id(protocol).Dot(method).Call(callArgs...),
		jen.Err().Op("!=").Nil(),
	).Block(jen.Return(jen.Err()))
}

// EmitFooter renders the WriteFieldStop/WriteStructEnd tail common to every
// struct's Write method.
func (w *WriterEmitter) EmitFooter(protocol string) []jen.Code {
	return []jen.Code{
		checkedCall(protocol, "WriteFieldStop"),
		checkedCall(protocol, "WriteStructEnd"),
	}
}
