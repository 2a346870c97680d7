package gen

import (
	"github.com/dave/jennifer/jen"

	"github.com/thriftygen/thriftygen/schema"
)

// ConstRenderer renders IDL constant values as Go source, in two modes.
// Expression mode produces a single jen.Code usable inline (scalars,
// strings, booleans, enum member references). Statement mode produces the
// sequence of statements needed to populate a collection-typed target,
// allocating a concrete container and appending each element via a
// recursive call into expression mode.
//
// Nested collection constants and struct-typed defaults are unsupported in
// this version, exactly as the original generator: both raise
// UnsupportedConstructError rather than attempting a best-effort rendering.
type ConstRenderer struct {
	resolver *TypeResolver
	schema   *schema.Schema
}

// NewConstRenderer builds a ConstRenderer that resolves enum member
// references against sch.
func NewConstRenderer(resolver *TypeResolver, sch *schema.Schema) *ConstRenderer {
	return &ConstRenderer{resolver: resolver, schema: sch}
}

// RenderExpr renders v as a single Go expression of type t. entity names the
// declaration being rendered, for error messages.
func (r *ConstRenderer) RenderExpr(t schema.ThriftType, v schema.ConstValue, currentPkg, entity string) (jen.Code, error) {
	tt := t.TrueType()
	switch tt.Kind {
	case schema.KindBool:
		return r.renderBool(v, entity)
	case schema.KindByte:
		n, err := requireInt(v, entity)
		if err != nil {
			return nil, err
		}
		return jen.Int8().Call(jen.Lit(int(n))), nil
	case schema.KindI16:
		n, err := requireInt(v, entity)
		if err != nil {
			return nil, err
		}
		return jen.Int16().Call(jen.Lit(int(n))), nil
	case schema.KindI32:
		n, err := requireInt(v, entity)
		if err != nil {
			return nil, err
		}
		return jen.Lit(int(int32(n))), nil
	case schema.KindI64:
		n, err := requireInt(v, entity)
		if err != nil {
			return nil, err
		}
		return jen.Lit(int(n)), nil
	case schema.KindDouble:
		if v.Kind != schema.ValueDouble {
			return nil, newSchemaViolationError(entity, "", "invalid double constant")
		}
		return jen.Lit(v.DoubleVal), nil
	case schema.KindString:
		if v.Kind != schema.ValueString {
			return nil, newSchemaViolationError(entity, "", "invalid string constant")
		}
		return jen.Lit(v.Str), nil
	case schema.KindBinary:
		return nil, newUnsupportedConstructError(entity, "binary literal")
	case schema.KindVoid:
		return nil, newUnsupportedConstructError(entity, "void literal")
	case schema.KindEnum:
		return r.renderEnum(tt, v, currentPkg, entity)
	case schema.KindList:
		return nil, newUnsupportedConstructError(entity, "nested list constant")
	case schema.KindSet:
		return nil, newUnsupportedConstructError(entity, "nested set constant")
	case schema.KindMap:
		return nil, newUnsupportedConstructError(entity, "nested map constant")
	case schema.KindStruct:
		return nil, newUnsupportedConstructError(entity, "struct-typed default value")
	default:
		return nil, newInternalInvariantError("unrendered const kind: " + tt.Kind.String())
	}
}

func requireInt(v schema.ConstValue, entity string) (int64, error) {
	if v.Kind != schema.ValueInteger {
		return 0, newSchemaViolationError(entity, "", "invalid integer constant")
	}
	return v.Integer, nil
}

// renderBool implements the boolean-from-integer tie-break preserved from
// the Java original: a non-zero integer literal is true, zero is false.
func (r *ConstRenderer) renderBool(v schema.ConstValue, entity string) (jen.Code, error) {
	switch v.Kind {
	case schema.ValueIdentifier:
		return jen.Lit(v.Identifier == "true"), nil
	case schema.ValueInteger:
		return jen.Lit(v.Integer != 0), nil
	default:
		return nil, newSchemaViolationError(entity, "", "invalid boolean constant")
	}
}

// renderEnum resolves v against et's declared members. Lookup by integer id
// takes precedence over lookup by name, matching the original tie-break.
func (r *ConstRenderer) renderEnum(tt schema.ThriftType, v schema.ConstValue, currentPkg, entity string) (jen.Code, error) {
	et, ok := r.schema.FindEnum(tt)
	if !ok {
		return nil, newSchemaViolationError(entity, "", "missing enum type: "+tt.Name)
	}

	var member schema.EnumMember
	var found bool
	switch v.Kind {
	case schema.ValueInteger:
		member, found = et.FindByID(int32(v.Integer))
	case schema.ValueIdentifier:
		member, found = et.FindByName(v.Identifier)
	default:
		return nil, newInternalInvariantError("constant value kind is not possibly an enum")
	}
	if !found {
		return nil, newSchemaViolationError(entity, "", "no enum member in "+et.Name+" with value "+v.Identifier)
	}

	// Go enum members are package-level identifiers prefixed with the enum
	// name (ColorRED), not a Type.MEMBER selector — enum types carry no
	// member namespace of their own the way the Java original's does.
	return r.resolver.qualOrID(tt.Namespace, tt.Name+member.Name, currentPkg), nil
}

// RenderInit renders the statements needed to populate target, a variable
// or field of collection type t, with v's elements. alloc supplies
// collision-free temporary names ("list", "set", "m", ...).
func (r *ConstRenderer) RenderInit(alloc *nameAllocator, target string, t schema.ThriftType, v schema.ConstValue, currentPkg, entity string) ([]jen.Code, error) {
	tt := t.TrueType()
	switch tt.Kind {
	case schema.KindList, schema.KindSet:
		return r.renderListOrSetInit(alloc, target, tt, v, currentPkg, entity)
	case schema.KindMap:
		return r.renderMapInit(alloc, target, tt, v, currentPkg, entity)
	default:
		expr, err := r.RenderExpr(t, v, currentPkg, entity)
		if err != nil {
			return nil, err
		}
		return []jen.Code{jen.Id(target).Op("=").Add(expr)}, nil
	}
}

func (r *ConstRenderer) renderListOrSetInit(alloc *nameAllocator, target string, tt schema.ThriftType, v schema.ConstValue, currentPkg, entity string) ([]jen.Code, error) {
	if v.Kind != schema.ValueList {
		return nil, newSchemaViolationError(entity, "", "invalid collection constant")
	}
	elemType := *tt.Elem
	elemExpr, err := r.resolver.SurfaceType(elemType, true, currentPkg)
	if err != nil {
		return nil, err
	}

	isSet := tt.Kind == schema.KindSet
	var alloc1 jen.Code
	if isSet {
		alloc1 = r.resolver.SetOf(elemExpr)
	} else {
		alloc1 = r.resolver.ListOf(elemExpr)
	}

	if len(v.List) == 0 {
		return []jen.Code{jen.Id(target).Op("=").Add(alloc1).Values()}, nil
	}

	tempName := alloc.newName(map[bool]string{true: "set", false: "list"}[isSet])
	stmts := make([]jen.Code, 0, len(v.List)+2)
	stmts = append(stmts, jen.Id(tempName).Op(":=").Add(alloc1).Values())
	for _, item := range v.List {
		itemExpr, err := r.RenderExpr(elemType, item, currentPkg, entity)
		if err != nil {
			return nil, err
		}
		if isSet {
			stmts = append(stmts, jen.Id(tempName).Index(itemExpr).Op("=").Struct().Values())
		} else {
			stmts = append(stmts, jen.Id(tempName).Op("=").Append(jen.Id(tempName), itemExpr))
		}
	}
	stmts = append(stmts, jen.Id(target).Op("=").Id(tempName))
	return stmts, nil
}

func (r *ConstRenderer) renderMapInit(alloc *nameAllocator, target string, tt schema.ThriftType, v schema.ConstValue, currentPkg, entity string) ([]jen.Code, error) {
	if v.Kind != schema.ValueMap {
		return nil, newSchemaViolationError(entity, "", "invalid map constant")
	}
	keyType, valType := *tt.Key, *tt.Val
	keyExpr, err := r.resolver.SurfaceType(keyType, true, currentPkg)
	if err != nil {
		return nil, err
	}
	valExpr, err := r.resolver.SurfaceType(valType, true, currentPkg)
	if err != nil {
		return nil, err
	}
	mapImpl := r.resolver.MapOf(keyExpr, valExpr)

	if len(v.Map) == 0 {
		return []jen.Code{jen.Id(target).Op("=").Add(mapImpl).Values()}, nil
	}

	tempName := alloc.newName("m")
	stmts := make([]jen.Code, 0, len(v.Map)+2)
	stmts = append(stmts, jen.Id(tempName).Op(":=").Add(mapImpl).Values())
	for _, entry := range v.Map {
		keyLit, err := r.RenderExpr(keyType, entry.Key, currentPkg, entity)
		if err != nil {
			return nil, err
		}
		valLit, err := r.RenderExpr(valType, entry.Value, currentPkg, entity)
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, jen.Id(tempName).Index(keyLit).Op("=").Add(valLit))
	}
	stmts = append(stmts, jen.Id(target).Op("=").Id(tempName))
	return stmts, nil
}
