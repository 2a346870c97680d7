// Package schema models a fully resolved Thrift IDL schema: enums, structs,
// unions, exceptions, constants and typedefs. It is the input to package gen
// and defines no parsing or validation of its own — schemas are assumed to
// already be acyclic and internally consistent, per the contract of an
// external Thrift IDL loader.
package schema

import "fmt"

// Kind identifies which case of the closed Thrift type sum a ThriftType is.
type Kind uint8

const (
	KindBool Kind = iota
	KindByte
	KindI16
	KindI32
	KindI64
	KindDouble
	KindString
	KindBinary
	KindVoid
	KindEnum
	KindList
	KindSet
	KindMap
	KindStruct
	KindTypedef
)

func (k Kind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindByte:
		return "byte"
	case KindI16:
		return "i16"
	case KindI32:
		return "i32"
	case KindI64:
		return "i64"
	case KindDouble:
		return "double"
	case KindString:
		return "string"
	case KindBinary:
		return "binary"
	case KindVoid:
		return "void"
	case KindEnum:
		return "enum"
	case KindList:
		return "list"
	case KindSet:
		return "set"
	case KindMap:
		return "map"
	case KindStruct:
		return "struct"
	case KindTypedef:
		return "typedef"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// IsBuiltin reports whether the type is one of the eight Thrift scalars.
func (k Kind) IsBuiltin() bool {
	switch k {
	case KindBool, KindByte, KindI16, KindI32, KindI64, KindDouble, KindString, KindBinary:
		return true
	default:
		return false
	}
}

// ThriftType is a tagged union over the closed set of Thrift type shapes.
// Only the fields relevant to Kind are populated; callers must dispatch on
// Kind (after TrueType, if typedef-unwrapping matters) rather than probe
// fields directly.
type ThriftType struct {
	Kind Kind

	// Name is populated for KindEnum and KindStruct: the declared name of
	// the referenced user type.
	Name string
	// Namespace is the declared output-package namespace of the referenced
	// user type (KindEnum, KindStruct) or, for KindTypedef, of the alias
	// itself.
	Namespace string

	// Elem is the element type for KindList/KindSet.
	Elem *ThriftType
	// Key/Val are the key/value types for KindMap.
	Key *ThriftType
	Val *ThriftType

	// Underlying is the aliased type for KindTypedef. TrueType follows this
	// chain to completion.
	Underlying *ThriftType
}

// TrueType returns the type obtained by transitively unwrapping typedefs.
// The schema guarantees this terminates.
func (t ThriftType) TrueType() ThriftType {
	cur := t
	for cur.Kind == KindTypedef {
		cur = *cur.Underlying
	}
	return cur
}

// IsCollection reports whether the true type is a list, set or map.
func (t ThriftType) IsCollection() bool {
	tt := t.TrueType()
	return tt.Kind == KindList || tt.Kind == KindSet || tt.Kind == KindMap
}

var (
	Bool   = ThriftType{Kind: KindBool}
	Byte   = ThriftType{Kind: KindByte}
	I16    = ThriftType{Kind: KindI16}
	I32    = ThriftType{Kind: KindI32}
	I64    = ThriftType{Kind: KindI64}
	Double = ThriftType{Kind: KindDouble}
	String = ThriftType{Kind: KindString}
	Binary = ThriftType{Kind: KindBinary}
	Void   = ThriftType{Kind: KindVoid}
)

// EnumRef builds a reference to a user-defined enum type.
func EnumRef(namespace, name string) ThriftType {
	return ThriftType{Kind: KindEnum, Namespace: namespace, Name: name}
}

// StructRef builds a reference to a user-defined struct/union/exception type.
func StructRef(namespace, name string) ThriftType {
	return ThriftType{Kind: KindStruct, Namespace: namespace, Name: name}
}

// ListOf builds a list<elem> type.
func ListOf(elem ThriftType) ThriftType {
	return ThriftType{Kind: KindList, Elem: &elem}
}

// SetOf builds a set<elem> type.
func SetOf(elem ThriftType) ThriftType {
	return ThriftType{Kind: KindSet, Elem: &elem}
}

// MapOf builds a map<key,val> type.
func MapOf(key, val ThriftType) ThriftType {
	return ThriftType{Kind: KindMap, Key: &key, Val: &val}
}

// TypedefOf builds a typedef alias over an underlying type.
func TypedefOf(namespace, name string, underlying ThriftType) ThriftType {
	return ThriftType{Kind: KindTypedef, Namespace: namespace, Name: name, Underlying: &underlying}
}
