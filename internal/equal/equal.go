// Package equal provides the default value equalities: Default for
// signals and memos, Identity for reactive collections.
package equal

import "reflect"

// Func reports whether two values are equal.
type Func[T any] func(a, b T) bool

// Default provides type-appropriate equality checking.
// Uses == for basic kinds and reflect.DeepEqual for others. Values of
// different dynamic types (possible when T is an interface) are unequal.
func Default[T any](a, b T) bool {
	switch av := any(a).(type) {
	case int:
		bv, ok := any(b).(int)
		return ok && av == bv
	case int8:
		bv, ok := any(b).(int8)
		return ok && av == bv
	case int16:
		bv, ok := any(b).(int16)
		return ok && av == bv
	case int32:
		bv, ok := any(b).(int32)
		return ok && av == bv
	case int64:
		bv, ok := any(b).(int64)
		return ok && av == bv
	case uint:
		bv, ok := any(b).(uint)
		return ok && av == bv
	case uint8:
		bv, ok := any(b).(uint8)
		return ok && av == bv
	case uint16:
		bv, ok := any(b).(uint16)
		return ok && av == bv
	case uint32:
		bv, ok := any(b).(uint32)
		return ok && av == bv
	case uint64:
		bv, ok := any(b).(uint64)
		return ok && av == bv
	case float32:
		bv, ok := any(b).(float32)
		return ok && av == bv
	case float64:
		bv, ok := any(b).(float64)
		return ok && av == bv
	case string:
		bv, ok := any(b).(string)
		return ok && av == bv
	case bool:
		bv, ok := any(b).(bool)
		return ok && av == bv
	default:
		// Slices, maps, structs, pointers, interfaces.
		return reflect.DeepEqual(a, b)
	}
}

// Or returns fn, or Default when fn is nil.
func Or[T any](fn Func[T]) Func[T] {
	if fn != nil {
		return fn
	}
	return Default[T]
}

// Identity reports whether a and b are the same value. Comparable values
// use ==, so pointers match only when they point at the same object.
// Slices match when they share a first element and a length, maps when
// they are the same map. Funcs never match. Structs and arrays compare
// field by field with the same rules.
func Identity[T any](a, b T) bool {
	return same(reflect.ValueOf(&a).Elem(), reflect.ValueOf(&b).Elem())
}

// IdentityOr returns fn, or Identity when fn is nil.
func IdentityOr[T any](fn Func[T]) Func[T] {
	if fn != nil {
		return fn
	}
	return Identity[T]
}

func same(a, b reflect.Value) bool {
	switch a.Kind() {
	case reflect.Interface:
		if a.IsNil() || b.IsNil() {
			return a.IsNil() && b.IsNil()
		}
		a, b = a.Elem(), b.Elem()
		if a.Type() != b.Type() {
			return false
		}
		return same(a, b)
	case reflect.Slice:
		return a.Pointer() == b.Pointer() && a.Len() == b.Len()
	case reflect.Map:
		return a.Pointer() == b.Pointer()
	case reflect.Func:
		return false
	case reflect.Struct:
		for i := range a.NumField() {
			if !same(a.Field(i), b.Field(i)) {
				return false
			}
		}
		return true
	case reflect.Array:
		for i := range a.Len() {
			if !same(a.Index(i), b.Index(i)) {
				return false
			}
		}
		return true
	default:
		return a.Equal(b)
	}
}
