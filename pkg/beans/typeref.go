package beans

import (
	"reflect"
	"strings"
)

// TypeRef is a semantic description of a type to match against. It wraps a
// reflect.Type and optionally carries type arguments, so callers can express
// parameterized requests ("a Repository of User") that are narrower than the
// raw type alone.
//
// Assignability follows the usual covariance rules: a concrete type is
// assignable to any interface it implements. When the target carries type
// arguments, the source must carry the same number and each must be
// assignable position-wise.
type TypeRef struct {
	Type reflect.Type
	Args []TypeRef
}

// TypeOf builds a TypeRef for T. It works for interface types as well as
// concrete ones:
//
//	beans.TypeOf[io.Reader]()
//	beans.TypeOf[*bytes.Buffer]()
func TypeOf[T any]() TypeRef {
	return TypeRef{Type: reflect.TypeOf((*T)(nil)).Elem()}
}

// RefOf wraps an already-obtained reflect.Type.
func RefOf(t reflect.Type) TypeRef {
	return TypeRef{Type: t}
}

// WithArgs returns a copy of the ref carrying the given type arguments.
func (r TypeRef) WithArgs(args ...TypeRef) TypeRef {
	return TypeRef{Type: r.Type, Args: args}
}

// IsZero reports whether the ref describes no type at all. A zero ref never
// matches anything and is used by callers that have no type constraint.
func (r TypeRef) IsZero() bool {
	return r.Type == nil
}

// AssignableTo reports whether a value of this ref's type satisfies a request
// for the target ref. Collection requests (slice, map, channel of T) do not
// match a plain T; the caller owns collection semantics.
func (r TypeRef) AssignableTo(target TypeRef) bool {
	if r.Type == nil || target.Type == nil {
		return false
	}
	if !r.Type.AssignableTo(target.Type) {
		return false
	}
	if len(target.Args) == 0 {
		return true
	}
	if len(r.Args) != len(target.Args) {
		return false
	}
	for i := range target.Args {
		if !r.Args[i].AssignableTo(target.Args[i]) {
			return false
		}
	}
	return true
}

// instanceAssignableTo reports whether a live instance satisfies the target
// ref. Argument constraints cannot be checked against an instance beyond its
// raw type, so a request with args only checks the raw type here.
func instanceAssignableTo(instance any, target TypeRef) bool {
	if instance == nil || target.Type == nil {
		return false
	}
	return reflect.TypeOf(instance).AssignableTo(target.Type)
}

// String renders the ref for error messages and logs.
func (r TypeRef) String() string {
	if r.Type == nil {
		return "<none>"
	}
	if len(r.Args) == 0 {
		return r.Type.String()
	}
	args := make([]string, len(r.Args))
	for i, a := range r.Args {
		args[i] = a.String()
	}
	return r.Type.String() + "[" + strings.Join(args, ", ") + "]"
}
