package enumwire

import (
	"fmt"

	"github.com/reoring/enumwire/i18n"
)

// Constant is one declared enumerated value. Ordinal is declaration position
// in the slice handed to NewDescriptor.
type Constant[E comparable] struct {
	Name  string
	Value E
}

// WireStringer is implemented by enum types that declare a custom wire-facing
// string. The projection is used for writing, and for reading when
// Flags.ReadEnumsUsingWireString is enabled.
type WireStringer interface {
	WireString() string
}

// Factory is a designated single-argument constructor from string input.
// The outcome is deliberately tri-state: (v, nil) means matched, (nil, nil)
// means explicitly unmatched (routed through the unknown-value policy), and
// (nil, err) is a hard error surfaced as-is.
type Factory[E comparable] func(s string) (*E, error)

// Codec replaces default resolution entirely for a type. Its Decode result is
// returned as-is, bypassing the unknown-value policy.
type Codec[E comparable] interface {
	Decode(tok Token, pol Policy) (*E, error)
	Encode(v E) (Token, error)
}

type readStrategy int

const (
	readByName readStrategy = iota
	readByWireString
	readByFactory
	readByCodec
)

type writeStrategy int

const (
	writeName writeStrategy = iota
	writeIndex
	writeWireString
)

// Descriptor is the cached static metadata plus resolved strategies for one
// enum type. Immutable after construction and safe to share across
// concurrent resolutions.
type Descriptor[E comparable] struct {
	name      string
	constants []Constant[E]
	names     []string
	wires     []string // per-ordinal projection; nil when the type has none

	nameIndex  map[string]int
	wireIndex  map[string]int // nil when the type has none
	valueIndex map[E]int

	read    readStrategy
	write   writeStrategy
	factory Factory[E]
	codec   Codec[E]
}

type descriptorConfig[E comparable] struct {
	factory    Factory[E]
	codec      Codec[E]
	wireOf     func(E) string
	hasFactory bool
	hasCodec   bool
}

// DescriptorOption supplies the externally discovered metadata for a type:
// a factory, an override codec, or a wire-string accessor.
type DescriptorOption[E comparable] func(*descriptorConfig[E])

// WithFactory designates fn as the canonical constructor from string input.
func WithFactory[E comparable](fn Factory[E]) DescriptorOption[E] {
	return func(c *descriptorConfig[E]) { c.factory = fn; c.hasFactory = true }
}

// WithCodec designates c as the override codec replacing default resolution.
func WithCodec[E comparable](cd Codec[E]) DescriptorOption[E] {
	return func(c *descriptorConfig[E]) { c.codec = cd; c.hasCodec = true }
}

// WithWireString designates fn as the wire-string accessor. It takes
// precedence over a WireStringer implementation on E.
func WithWireString[E comparable](fn func(E) string) DescriptorOption[E] {
	return func(c *descriptorConfig[E]) { c.wireOf = fn }
}

// NewDescriptor builds the descriptor for one enum type. Strategy selection
// happens here, once: override codec > factory > wire-string (only under
// Flags.ReadEnumsUsingWireString) > declared name for reads; ordinal index
// flag > wire-string presence > declared name for writes. Metadata problems
// (duplicate names, colliding projections, nil factory/codec) fail the build,
// never a later per-value call.
func NewDescriptor[E comparable](name string, constants []Constant[E], flags Flags, opts ...DescriptorOption[E]) (*Descriptor[E], error) {
	var cfg descriptorConfig[E]
	for _, o := range opts {
		o(&cfg)
	}
	if cfg.hasFactory && cfg.factory == nil {
		return nil, buildIssue(name, "factory is not resolvable")
	}
	if cfg.hasCodec && cfg.codec == nil {
		return nil, buildIssue(name, "override codec is nil")
	}

	d := &Descriptor[E]{
		name:       name,
		constants:  constants,
		names:      make([]string, len(constants)),
		nameIndex:  make(map[string]int, len(constants)),
		valueIndex: make(map[E]int, len(constants)),
		factory:    cfg.factory,
		codec:      cfg.codec,
	}
	for i, c := range constants {
		if _, dup := d.nameIndex[c.Name]; dup {
			return nil, buildIssue(name, fmt.Sprintf("duplicate constant name %q", c.Name))
		}
		if _, dup := d.valueIndex[c.Value]; dup {
			return nil, buildIssue(name, fmt.Sprintf("duplicate constant value for %q", c.Name))
		}
		d.names[i] = c.Name
		d.nameIndex[c.Name] = i
		d.valueIndex[c.Value] = i
	}

	wireOf := cfg.wireOf
	if wireOf == nil && len(constants) > 0 {
		if _, ok := any(constants[0].Value).(WireStringer); ok {
			wireOf = func(v E) string { return any(v).(WireStringer).WireString() }
		}
	}
	if wireOf != nil {
		d.wires = make([]string, len(constants))
		d.wireIndex = make(map[string]int, len(constants))
		for i, c := range constants {
			w := wireOf(c.Value)
			if prev, dup := d.wireIndex[w]; dup {
				return nil, buildIssue(name, fmt.Sprintf("wire string %q of %q collides with %q", w, c.Name, d.names[prev]))
			}
			d.wires[i] = w
			d.wireIndex[w] = i
		}
	}

	switch {
	case d.codec != nil:
		d.read = readByCodec
	case d.factory != nil:
		d.read = readByFactory
	case d.wireIndex != nil && flags.ReadEnumsUsingWireString:
		d.read = readByWireString
	default:
		d.read = readByName
	}
	switch {
	case flags.WriteEnumsUsingIndex:
		d.write = writeIndex
	case d.wires != nil:
		d.write = writeWireString
	default:
		d.write = writeName
	}
	return d, nil
}

// Name returns the type name the descriptor was registered under.
func (d *Descriptor[E]) Name() string { return d.name }

// Len returns the number of declared constants.
func (d *Descriptor[E]) Len() int { return len(d.constants) }

// Names returns the declared names in ordinal order. The slice is a copy.
func (d *Descriptor[E]) Names() []string {
	out := make([]string, len(d.names))
	copy(out, d.names)
	return out
}

// Constant returns the constant at the given ordinal.
func (d *Descriptor[E]) Constant(ordinal int) (Constant[E], bool) {
	if ordinal < 0 || ordinal >= len(d.constants) {
		return Constant[E]{}, false
	}
	return d.constants[ordinal], true
}

// Ordinal returns the declaration position of v.
func (d *Descriptor[E]) Ordinal(v E) (int, bool) {
	i, ok := d.valueIndex[v]
	return i, ok
}

func buildIssue(typeName, detail string) Issues {
	return Issues{Issue{
		Path:    "/",
		Code:    CodeEnumDescriptor,
		Message: i18n.T(CodeEnumDescriptor, nil),
		Hint:    detail,
		Offset:  -1,
		Params:  map[string]any{"type": typeName},
	}}
}
