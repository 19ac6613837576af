package swapbuf

import "reflect"

// containsReferences reports if values of t share memory when assigned, so a
// plain assignment does not produce an independent copy. Strings are
// immutable and do not count.
func containsReferences(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Pointer, reflect.UnsafePointer, reflect.Slice, reflect.Map,
		reflect.Chan, reflect.Func, reflect.Interface:
		return true

	case reflect.Array:
		return t.Len() > 0 && containsReferences(t.Elem())

	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			if containsReferences(t.Field(i).Type) {
				return true
			}
		}
	}
	return false
}

// typeContainsReferences is containsReferences for a type parameter.
func typeContainsReferences[T any]() bool {
	return containsReferences(reflect.TypeOf((*T)(nil)).Elem())
}
