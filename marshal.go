package fixstr

import "gopkg.in/yaml.v3"

// MarshalText implements encoding.TextMarshaler. The returned buffer
// is an owned copy of the content.
func (s String[A]) MarshalText() ([]byte, error) {
	return append([]byte(nil), raw(&s.buf)[:s.size]...), nil
}

// UnmarshalText implements encoding.TextUnmarshaler with the fallible
// assign contract: oversized input fails with ErrOverflow and leaves
// s unchanged.
func (s *String[A]) UnmarshalText(b []byte) error {
	return s.SetBytes(b)
}

// MarshalYAML implements yaml.Marshaler.
func (s String[A]) MarshalYAML() (any, error) {
	return s.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler. A value that does not fit
// fails with ErrOverflow and leaves s unchanged.
func (s *String[A]) UnmarshalYAML(node *yaml.Node) error {
	var v string
	if err := node.Decode(&v); err != nil {
		return err
	}
	return s.Set(v)
}
