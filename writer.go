package enumwire

import (
	"fmt"
	"strconv"

	"github.com/reoring/enumwire/i18n"
)

// Write produces the scalar wire token for a constant, a pure function of the
// descriptor's write strategy. It never fails for a constant belonging to the
// declared set; a value outside the set is rejected so the caller does not
// emit an unrepresentable token. Writing null is the caller's responsibility.
func (d *Descriptor[E]) Write(v E) (Token, error) {
	ord, ok := d.valueIndex[v]
	if !ok {
		return Token{}, Issues{Issue{
			Path:    "/",
			Code:    CodeUnknownEnumValue,
			Message: i18n.T(CodeUnknownEnumValue, map[string]string{"type": d.name}),
			Hint:    fmt.Sprintf("value %v is not a declared constant", v),
			Offset:  -1,
			Params:  map[string]any{"type": d.name},
		}}
	}
	switch d.write {
	case writeIndex:
		return NumberToken(strconv.Itoa(ord)), nil
	case writeWireString:
		return StringToken(d.wires[ord]), nil
	default:
		return StringToken(d.names[ord]), nil
	}
}
