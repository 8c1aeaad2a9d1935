package enumwire

// Flags is the registry-scoped configuration surface. It participates in
// descriptor strategy selection (once, at build time) and supplies the
// default per-call Policy.
type Flags struct {
	// ReadEnumsUsingWireString resolves string tokens against the custom
	// wire-string projection instead of declared names, for types that
	// declare a projection.
	ReadEnumsUsingWireString bool
	// WriteEnumsUsingIndex emits the ordinal index instead of a string.
	WriteEnumsUsingIndex bool
	// FailOnNumbersForEnums rejects number tokens instead of treating them
	// as ordinal indexes.
	FailOnNumbersForEnums bool
	// UnknownEnumValuesAsNull resolves unmatched values to null instead of
	// failing.
	UnknownEnumValuesAsNull bool
}

// Policy is the immutable per-call slice of Flags. The same enum type may be
// decoded under different policies in one process, so resolution accepts a
// Policy per invocation rather than consulting the registry.
type Policy struct {
	FailOnNumbers bool
	UnknownAsNull bool
}

// Policy derives the default per-call policy from the flags.
func (f Flags) Policy() Policy {
	return Policy{FailOnNumbers: f.FailOnNumbersForEnums, UnknownAsNull: f.UnknownEnumValuesAsNull}
}
