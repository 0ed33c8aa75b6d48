package typeutil

import (
	"reflect"
)

// NameOf returns the package qualified name of a reflect.Type. Named types are rendered
// as <package path>/<type name>, prefixed with a * for each level of pointer indirection.
// Builtin and unnamed types (int, []string, interface {}) use the reflect representation.
func NameOf(t reflect.Type) string {
	if t == nil {
		return "nil"
	}

	// pointer types do not carry the adequate type information, so we need to extract the
	// underlying types until we reach the non-pointer type, we prepend a * each depth
	var prefix string
	for t.Kind() == reflect.Pointer {
		prefix += "*"
		t = t.Elem()
	}

	if t.Name() == "" || t.PkgPath() == "" {
		return prefix + t.String()
	}

	return prefix + t.PkgPath() + "/" + t.Name()
}

// TypeOf is a utility that can covert a T type to a package + type name for generic types.
func TypeOf[T any]() string {
	return NameOf(reflect.TypeFor[T]())
}

// TypeFor returns the package + type name of the static type of the value provided.
func TypeFor[T any](value T) string {
	return TypeOf[T]()
}

// DynamicTypeOf returns the package + type name of the type held by value at runtime. A nil
// interface value has no type and results in "nil".
func DynamicTypeOf(value any) string {
	return NameOf(reflect.TypeOf(value))
}
