package fixstr

import "bytes"

// Compare three-way compares the content of s and o in lexicographic
// byte order: negative when s sorts before o, zero when the contents
// are identical, positive otherwise. Only buf[:size] of each operand
// is inspected; bytes past the terminator never participate.
func (s String[A]) Compare(o String[A]) int {
	return bytes.Compare(raw(&s.buf)[:s.size], raw(&o.buf)[:o.size])
}

// Equal reports whether s and o hold identical content.
func (s String[A]) Equal(o String[A]) bool {
	return s.size == o.size && s.Compare(o) == 0
}

// Less reports whether s sorts strictly before o. Suitable as a
// predicate for sort.Slice, slices.SortFunc and ordered containers.
func (s String[A]) Less(o String[A]) bool {
	return s.Compare(o) < 0
}
