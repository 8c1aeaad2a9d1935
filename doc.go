package enumwire

// Package enumwire resolves scalar wire tokens into strongly-typed enum
// constants and back:
//
// - Per-type Descriptor with read/write strategies fixed once at build time
//   (declared name, ordinal index, wire-string projection, factory, override codec)
// - A stable error model via Issues (JSON Pointer, code, message)
// - Per-call Policy for the strict/lenient unknown-value contract
// - Container adapters for sets, enum-keyed maps, and arrays over a
//   streaming Source
//
// Design policy:
// - Keep only public APIs in the root package; put the token engine under internal/.
// - Place token-source drivers under source/, codecs under codec/.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	reg := enumwire.NewRegistry(enumwire.Flags{})
//	d, err := enumwire.DescriptorOf(reg, "Color", colorConstants)
//	v, err := enumwire.Resolve(d, enumwire.StringToken("RED"), reg.Policy())
//	set, err := enumwire.DecodeSet(d, enumwire.JSONBytes(data), reg.Policy())
