package gen

import (
	"github.com/apache/thrift/lib/go/thrift"
	"github.com/dave/jennifer/jen"

	"github.com/thriftygen/thriftygen/schema"
)

// TypeResolver maps a schema.ThriftType to the Go surface-language type
// expression used in struct fields, builder fields, and constant
// declarations. It is parameterized by the configured list/set/map
// container implementations, which are used only when allocating a
// concrete container (constant initializers, builder defaults, Adapter
// reads) — field and
// parameter positions always use the abstract Go container type (slice/
// map), since Go has no separate interface/implementation distinction for
// these the way the Java original's List/Set/Map does.
type TypeResolver struct {
	cfg *Config
}

// NewTypeResolver builds a TypeResolver bound to cfg's container choices.
func NewTypeResolver(cfg *Config) *TypeResolver {
	return &TypeResolver{cfg: cfg}
}

// SurfaceType resolves t (unwrapping typedefs) to the Go type expression for
// a struct field or builder field. required controls whether builtin
// scalars resolve to a bare value (required: always present) or a pointer
// (optional: nullability expresses optionality). currentPkg is the Go
// import path of the file being generated; references to types declared in
// currentPkg are rendered unqualified.
func (r *TypeResolver) SurfaceType(t schema.ThriftType, required bool, currentPkg string) (jen.Code, error) {
	tt := t.TrueType()
	switch tt.Kind {
	case schema.KindVoid:
		return nil, newInternalInvariantError("void may not appear as a field type")
	case schema.KindBool:
		return scalarType(required, "bool"), nil
	case schema.KindByte:
		return scalarType(required, "int8"), nil
	case schema.KindI16:
		return scalarType(required, "int16"), nil
	case schema.KindI32:
		return scalarType(required, "int32"), nil
	case schema.KindI64:
		return scalarType(required, "int64"), nil
	case schema.KindDouble:
		return scalarType(required, "float64"), nil
	case schema.KindString:
		return scalarType(required, "string"), nil
	case schema.KindBinary:
		return jen.Index().Byte(), nil
	case schema.KindEnum:
		enumID := r.qualOrID(tt.Namespace, tt.Name, currentPkg)
		if required {
			return enumID, nil
		}
		return jen.Op("*").Add(enumID), nil
	case schema.KindStruct:
		return jen.Op("*").Add(r.qualOrID(tt.Namespace, tt.Name, currentPkg)), nil
	case schema.KindList:
		elem, err := r.SurfaceType(*tt.Elem, true, currentPkg)
		if err != nil {
			return nil, err
		}
		return jen.Index().Add(elem), nil
	case schema.KindSet:
		elem, err := r.SurfaceType(*tt.Elem, true, currentPkg)
		if err != nil {
			return nil, err
		}
		return jen.Map(elem).Struct(), nil
	case schema.KindMap:
		key, err := r.SurfaceType(*tt.Key, true, currentPkg)
		if err != nil {
			return nil, err
		}
		val, err := r.SurfaceType(*tt.Val, true, currentPkg)
		if err != nil {
			return nil, err
		}
		return jen.Map(key).Add(val), nil
	default:
		return nil, newInternalInvariantError("unresolvable type kind: " + tt.Kind.String())
	}
}

// scalarType returns the bare Go primitive when required, or a pointer to it
// when optional (so nil expresses "absent").
func scalarType(required bool, primitive string) jen.Code {
	if required {
		return jen.Id(primitive)
	}
	return jen.Op("*").Id(primitive)
}

func (r *TypeResolver) qualOrID(namespace, name, currentPkg string) jen.Code {
	if namespace == "" || namespace == currentPkg {
		return jen.Id(name)
	}
	return jen.Qual(namespace, name)
}

// ListOf returns the concrete list-implementation type expression used to
// allocate a list-typed constant or builder default, per the configured
// ListType.
func (r *TypeResolver) ListOf(elem jen.Code) jen.Code { return r.cfg.ListType(elem) }

// SetOf returns the concrete set-implementation type expression.
func (r *TypeResolver) SetOf(elem jen.Code) jen.Code { return r.cfg.SetType(elem) }

// MapOf returns the concrete map-implementation type expression.
func (r *TypeResolver) MapOf(key, val jen.Code) jen.Code { return r.cfg.MapType(key, val) }

// WireCode returns the on-wire Thrift type code for t's true type.
func (r *TypeResolver) WireCode(t schema.ThriftType) (thrift.TType, error) {
	tt := t.TrueType()
	if tt.Kind == schema.KindVoid {
		return 0, newInternalInvariantError("void has no wire type code")
	}
	entry, ok := lookupTypeCode(tt.Kind)
	if !ok {
		return 0, newInternalInvariantError("no wire code for kind: " + tt.Kind.String())
	}
	return entry.Code, nil
}

// WireCodeSymbol returns the protocol library's symbolic constant name for
// t's on-wire type code (e.g. "I32"), for embedding in generated source as
// jen.Qual(thriftPkg, symbol) rather than a bare integer literal.
func (r *TypeResolver) WireCodeSymbol(t schema.ThriftType) (string, error) {
	tt := t.TrueType()
	entry, ok := lookupTypeCode(tt.Kind)
	if !ok {
		return "", newInternalInvariantError("no wire code for kind: " + tt.Kind.String())
	}
	return entry.SymbolName, nil
}
