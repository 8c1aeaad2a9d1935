package codec

import (
	enumwire "github.com/reoring/enumwire"
)

// Enum returns an enumwire.Codec[E] bridging tokens and constants through the
// descriptor's resolver and writer. It gives callers that work in terms of
// codecs a single bidirectional handle on one enum type.
func Enum[E comparable](d *enumwire.Descriptor[E]) enumwire.Codec[E] {
	return &enumCodec[E]{d: d}
}

type enumCodec[E comparable] struct {
	d *enumwire.Descriptor[E]
}

func (c *enumCodec[E]) Decode(tok enumwire.Token, pol enumwire.Policy) (*E, error) {
	return enumwire.Resolve(c.d, tok, pol)
}

func (c *enumCodec[E]) Encode(v E) (enumwire.Token, error) { return c.d.Write(v) }

// Fixed returns a Codec that resolves every token to the given constant,
// ignoring the input, and encodes it as the given wire string. Useful as an
// override codec when a type must collapse all input to one value.
func Fixed[E comparable](v E, wire string) enumwire.Codec[E] {
	return &fixedCodec[E]{v: v, wire: wire}
}

type fixedCodec[E comparable] struct {
	v    E
	wire string
}

func (c *fixedCodec[E]) Decode(tok enumwire.Token, pol enumwire.Policy) (*E, error) {
	v := c.v
	return &v, nil
}

func (c *fixedCodec[E]) Encode(v E) (enumwire.Token, error) {
	return enumwire.StringToken(c.wire), nil
}
