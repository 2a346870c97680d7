package thriftrt

import (
	"fmt"
	"reflect"
)

// HashSeed is the starting accumulator value generated Hash() methods fold
// each field's contribution into.
const HashSeed int32 = 16777619

// HashMultiplier is the multiplier applied after folding in each field,
// matching the FNV-1a-style mixing the generated Hash() methods use.
const HashMultiplier int32 = -2128831035 // 0x811c9dc5 as a signed int32

// HashCombine folds fieldHash into the running accumulator h.
func HashCombine(h, fieldHash int32) int32 {
	return (h ^ fieldHash) * HashMultiplier
}

// HashOf computes a stable hash for a single field's value. nil (an absent
// optional field) hashes to zero, matching the field-is-null case of the
// original mixing function.
func HashOf(v any) int32 {
	if v == nil {
		return 0
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Ptr && rv.IsNil() {
		return 0
	}
	if rv.Kind() == reflect.Slice && rv.IsNil() {
		return 0
	}
	if rv.Kind() == reflect.Map && rv.IsNil() {
		return 0
	}
	s := fmt.Sprintf("%v", derefForHash(v))
	var h int32 = HashSeed
	for i := 0; i < len(s); i++ {
		h = HashCombine(h, int32(s[i]))
	}
	return h
}

func derefForHash(v any) any {
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Ptr && !rv.IsNil() {
		return rv.Elem().Interface()
	}
	return v
}

// EqualValue reports whether a and b are deeply equal (reflect.DeepEqual).
// Two nils of the same type are equal; nils of different types are not, and
// a nil slice or map is not equal to an empty one.
func EqualValue(a, b any) bool {
	return reflect.DeepEqual(a, b)
}

// FormatValue renders a single field's value for String(): an absent
// optional field (nil pointer, slice or map) renders as the literal "null",
// and a present pointer renders its pointee rather than the address.
func FormatValue(v any) string {
	if v == nil {
		return "null"
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Slice, reflect.Map:
		if rv.IsNil() {
			return "null"
		}
	}
	if s, ok := v.(fmt.Stringer); ok {
		return s.String()
	}
	if rv.Kind() == reflect.Ptr {
		return fmt.Sprintf("%v", rv.Elem().Interface())
	}
	return fmt.Sprintf("%v", v)
}
