package gen

import (
	"github.com/apache/thrift/lib/go/thrift"

	"github.com/thriftygen/thriftygen/schema"
)

// typeCodeEntry is one row of the TypeCodeTable: a Thrift type category's
// on-wire type code and the symbolic name used to reference it in generated
// source (e.g. "thrift.I32" rather than a bare integer literal, so the
// emitted code stays readable and matches whatever the linked protocol
// library calls its own constant).
type typeCodeEntry struct {
	Code       thrift.TType
	SymbolName string
}

// typeCodeTable maps each Thrift.Kind to its on-wire type code and the
// protocol library's symbolic constant name for it. Values are the
// canonical github.com/apache/thrift/lib/go/thrift.TType encoding, since
// WriterEmitter/ReaderEmitter generate calls against that library's
// TProtocol for real wire interoperability (see DESIGN.md for why this
// departs from the illustrative byte values in the distilled spec).
var typeCodeTable = map[schema.Kind]typeCodeEntry{
	schema.KindBool:   {thrift.BOOL, "BOOL"},
	schema.KindByte:   {thrift.BYTE, "BYTE"},
	schema.KindI16:    {thrift.I16, "I16"},
	schema.KindI32:    {thrift.I32, "I32"},
	schema.KindI64:    {thrift.I64, "I64"},
	schema.KindDouble: {thrift.DOUBLE, "DOUBLE"},
	schema.KindString: {thrift.STRING, "STRING"},
	schema.KindBinary: {thrift.STRING, "STRING"},
	schema.KindStruct: {thrift.STRUCT, "STRUCT"},
	schema.KindMap:    {thrift.MAP, "MAP"},
	schema.KindSet:    {thrift.SET, "SET"},
	schema.KindList:   {thrift.LIST, "LIST"},
	// Enums are written as i32 on the wire, per spec.
	schema.KindEnum: {thrift.I32, "I32"},
}

func lookupTypeCode(k schema.Kind) (typeCodeEntry, bool) {
	e, ok := typeCodeTable[k]
	return e, ok
}

// isScalarOrEnumKind reports whether k resolves to a bare (non-pointer,
// non-collection) Go type on the value type when required, and therefore
// needs an extra indirection at the Builder/Adapter boundary: the Builder
// always stores these behind a pointer (so it can track "unset" regardless
// of required-ness), while the value type and Setter/read call sites trade
// in the bare or dereferenced form. Struct fields are always pointers and
// collections are always nilable slices/maps on both sides, so neither
// needs this extra indirection.
func isScalarOrEnumKind(k schema.Kind) bool {
	switch k {
	case schema.KindBool, schema.KindByte, schema.KindI16, schema.KindI32, schema.KindI64, schema.KindDouble, schema.KindString, schema.KindEnum:
		return true
	default:
		return false
	}
}
