// Package fixstr provides a fixed-capacity string value type for
// allocation-free environments such as real-time loops and shared
// memory layouts. Capacity is part of the type: String[[5]byte] and
// String[[9]byte] are distinct types that cannot be mixed.
package fixstr

import (
	"bytes"
	"errors"
	"reflect"
	"sync"
	"unsafe"

	"github.com/rawbytedev/fixstr/internal/common"
)

var (
	ErrOverflow = errors.New("input exceeds string capacity")
)

// String is a fixed-capacity string stored inline, with no heap
// allocation and no growth. The type parameter A is the backing byte
// array holding the content plus one terminator byte, so
// String[[5]byte] stores at most 4 characters.
//
// The zero value is a valid empty string. Plain value assignment
// copies the whole string. Values are comparable with ==, but == also
// inspects stale bytes past the terminator; use Equal for content
// equality.
type String[A any] struct {
	buf  A
	size int
}

// Aliases for common capacities.
type (
	String8   = String[[9]byte]
	String16  = String[[17]byte]
	String32  = String[[33]byte]
	String64  = String[[65]byte]
	String128 = String[[129]byte]
)

// raw returns the whole backing array as a byte slice.
func raw[A any](buf *A) []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(buf)), int(unsafe.Sizeof(*buf)))
}

var capCache sync.Map // reflect.Type -> int

// arrayCap validates A once per type and returns its capacity.
// Instantiating with anything but a byte array of length >= 2 is a
// programmer error.
func arrayCap[A any]() int {
	t := reflect.TypeOf((*A)(nil)).Elem()
	if c, ok := capCache.Load(t); ok {
		return c.(int)
	}
	c, ok := common.ByteArrayCap(t)
	if !ok {
		panic("fixstr: backing type must be a byte array with capacity > 0")
	}
	capCache.Store(t, c)
	return c
}

// New returns an empty string, equivalent to the zero value.
func New[A any]() String[A] {
	arrayCap[A]()
	return String[A]{}
}

// FromArray constructs a string from its exact backing array type.
// An oversized literal does not compile and a shorter composite
// literal is zero padded, so this path never truncates. Content runs
// up to the first NUL; a full array without one is clamped to the
// capacity and re-terminated.
func FromArray[A any](arr A) String[A] {
	c := arrayCap[A]()
	s := String[A]{buf: arr}
	b := raw(&s.buf)
	n := common.Strnlen(b[:c])
	b[n] = 0
	s.size = n
	return s
}

// Truncate constructs a string from v, keeping at most a capacity's
// worth of leading bytes. Truncation here is deliberate and silent;
// use Set when oversized input must fail instead.
func Truncate[A any](v string) String[A] {
	c := arrayCap[A]()
	if len(v) > c {
		v = v[:c]
	}
	var s String[A]
	b := raw(&s.buf)
	n := copy(b, v)
	b[n] = 0
	s.size = n
	return s
}

// TruncateBytes constructs a string from a counted buffer. All len(b)
// bytes count as content, embedded NULs included; bytes past the
// capacity are dropped.
func TruncateBytes[A any](v []byte) String[A] {
	c := arrayCap[A]()
	if len(v) > c {
		v = v[:c]
	}
	var s String[A]
	b := raw(&s.buf)
	n := copy(b, v)
	b[n] = 0
	s.size = n
	return s
}

// TruncateCString constructs a string from a C-style buffer: content
// ends at the first NUL, or at the end of v when none is present, and
// is then truncated to the capacity.
func TruncateCString[A any](v []byte) String[A] {
	if i := bytes.IndexByte(v, 0); i >= 0 {
		v = v[:i]
	}
	return TruncateBytes[A](v)
}

// Set replaces the content with v. Oversized input returns ErrOverflow
// and leaves the string completely unchanged; Set never truncates.
func (s *String[A]) Set(v string) error {
	if len(v) > arrayCap[A]() {
		return ErrOverflow
	}
	b := raw(&s.buf)
	n := copy(b, v)
	b[n] = 0
	s.size = n
	return nil
}

// SetBytes is Set for counted buffers; embedded NULs are kept as data.
func (s *String[A]) SetBytes(v []byte) error {
	if len(v) > arrayCap[A]() {
		return ErrOverflow
	}
	b := raw(&s.buf)
	n := copy(b, v)
	b[n] = 0
	s.size = n
	return nil
}

// SetArray replaces the content from an exact-size array, reading up
// to the first NUL. Like FromArray this cannot fail.
func (s *String[A]) SetArray(arr A) {
	c := arrayCap[A]()
	s.buf = arr
	b := raw(&s.buf)
	n := common.Strnlen(b[:c])
	b[n] = 0
	s.size = n
}

// Clear resets the string to empty.
func (s *String[A]) Clear() {
	raw(&s.buf)[0] = 0
	s.size = 0
}

// Bytes returns a read-only view of the content. The view stays valid
// until the next mutation of s.
func (s *String[A]) Bytes() []byte {
	return raw(&s.buf)[:s.size]
}

// CStr returns the content plus its NUL terminator, for handoff to
// C-style consumers.
func (s *String[A]) CStr() []byte {
	return raw(&s.buf)[:s.size+1]
}

// Len returns the number of content bytes.
func (s *String[A]) Len() int { return s.size }

// Cap returns the capacity in bytes, excluding the terminator slot.
func (s *String[A]) Cap() int { return int(unsafe.Sizeof(s.buf)) - 1 }

// Empty reports whether the string has no content.
func (s *String[A]) Empty() bool { return s.size == 0 }

// String returns an owned copy of the content.
func (s String[A]) String() string {
	return string(raw(&s.buf)[:s.size])
}
