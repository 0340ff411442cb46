package common

import "reflect"

// ByteArrayCap returns the string capacity provided by backing array
// type t: one less than the array length, reserving the terminator
// slot. ok is false when t is not a byte array or leaves no room for
// content.
func ByteArrayCap(t reflect.Type) (int, bool) {
	if t.Kind() != reflect.Array || t.Elem().Kind() != reflect.Uint8 {
		return 0, false
	}
	if t.Len() < 2 {
		return 0, false
	}
	return t.Len() - 1, true
}

// Strnlen returns the number of bytes before the first NUL in b, or
// len(b) when none is present.
func Strnlen(b []byte) int {
	for i, c := range b {
		if c == 0 {
			return i
		}
	}
	return len(b)
}
