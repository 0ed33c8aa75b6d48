package match

import (
	"reflect"

	"github.com/opencost/match/pkg/util/typeutil"
)

// Kind is the runtime type tag a Case is registered against.
type Kind struct {
	t reflect.Type
}

// KindOf returns the Kind for U. When U is an interface type, any value whose dynamic type
// implements U holds the kind.
func KindOf[U any]() Kind {
	return Kind{t: reflect.TypeFor[U]()}
}

// Type returns the underlying reflect.Type, nil for the zero Kind.
func (k Kind) Type() reflect.Type {
	return k.t
}

// IsInterface returns true if the kind is an interface type.
func (k Kind) IsInterface() bool {
	return k.t != nil && k.t.Kind() == reflect.Interface
}

func (k Kind) String() string {
	return typeutil.NameOf(k.t)
}

// Holds is the instance-of check: it returns true if value's dynamic type is the kind, or
// implements it for interface kinds. A nil interface value holds no kind.
func (k Kind) Holds(value any) bool {
	if k.t == nil || value == nil {
		return false
	}

	vt := reflect.TypeOf(value)
	if k.IsInterface() {
		return vt.Implements(k.t)
	}
	return vt == k.t
}

// ReachableFrom returns true if a value with the static type provided could ever hold the kind.
func (k Kind) ReachableFrom(static reflect.Type) bool {
	if k.t == nil || static == nil {
		return false
	}

	switch {
	// some type may implement both, so this can't be ruled out
	case static.Kind() == reflect.Interface && k.IsInterface():
		return true
	case static.Kind() == reflect.Interface:
		return k.t.Implements(static)
	case k.IsInterface():
		return static.Implements(k.t)
	default:
		return static == k.t
	}
}
