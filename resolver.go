package enumwire

import (
	"errors"
	"strconv"
	"strings"

	"github.com/reoring/enumwire/i18n"
)

// Resolve turns one decoded scalar token into a constant of E, null, or an
// error. A nil result with a nil error is the null outcome; under a lenient
// policy an unknown value and a wire null produce the same result.
//
// Null tokens resolve to null under every strategy and policy; nulls are
// typeless at this layer. Number tokens are 0-based ordinal indexes unless
// pol.FailOnNumbers rejects them outright. Container tokens where a scalar
// was expected fail with CodeInvalidType.
func Resolve[E comparable](d *Descriptor[E], tok Token, pol Policy) (*E, error) {
	return resolveToken(d, tok, pol, CodeUnknownEnumValue)
}

// resolveToken is Resolve with the unmatched-value issue code picked by the
// caller; map-key resolution reports CodeUnknownEnumKey instead.
func resolveToken[E comparable](d *Descriptor[E], tok Token, pol Policy, code string) (*E, error) {
	if tok.Kind == _tokenNull {
		return nil, nil
	}
	if d.read == readByCodec {
		return d.codec.Decode(tok, pol)
	}
	switch tok.Kind {
	case _tokenString, _tokenKey:
		return resolveString(d, tok.String, pol, code, tok.Offset)
	case _tokenNumber:
		return resolveNumber(d, tok, pol, code)
	default:
		return nil, Issues{Issue{
			Path:    "/",
			Code:    CodeInvalidType,
			Message: i18n.T(CodeInvalidType, nil),
			Hint:    "expected a scalar enum token",
			Offset:  tok.Offset,
		}}
	}
}

func resolveString[E comparable](d *Descriptor[E], s string, pol Policy, code string, off int64) (*E, error) {
	switch d.read {
	case readByFactory:
		v, err := d.factory(s)
		if err != nil {
			return nil, err
		}
		if v == nil {
			// A factory legitimately returns "no match"; that is not a hard
			// error, it goes through the unknown-value policy.
			return unmatched(d, s, code, pol, off)
		}
		return v, nil
	case readByWireString:
		if i, ok := d.wireIndex[s]; ok {
			return constantAt(d, i), nil
		}
		return unmatched(d, s, code, pol, off)
	default: // readByName
		if i, ok := d.nameIndex[s]; ok {
			return constantAt(d, i), nil
		}
		return unmatched(d, s, code, pol, off)
	}
}

func resolveNumber[E comparable](d *Descriptor[E], tok Token, pol Policy, code string) (*E, error) {
	if pol.FailOnNumbers {
		return nil, Issues{Issue{
			Path:    "/",
			Code:    CodeEnumFromNumber,
			Message: i18n.T(CodeEnumFromNumber, nil),
			Offset:  tok.Offset,
			Params:  map[string]any{"got": tok.Number, "type": d.name},
		}}
	}
	ord, err := strconv.Atoi(tok.Number)
	if err != nil {
		// Integer text too large for int is still an ordinal, just one that
		// can never be in range; it follows the unknown-value policy like
		// any other out-of-range ordinal. Non-integer text is a type error.
		if errors.Is(err, strconv.ErrRange) {
			return unmatched(d, tok.Number, code, pol, tok.Offset)
		}
		return nil, Issues{Issue{
			Path:    "/",
			Code:    CodeInvalidType,
			Message: i18n.T(CodeInvalidType, nil),
			Hint:    "enum ordinal must be an integer",
			Cause:   err,
			Offset:  tok.Offset,
		}}
	}
	if ord < 0 || ord >= len(d.constants) {
		return unmatched(d, tok.Number, code, pol, tok.Offset)
	}
	return constantAt(d, ord), nil
}

// unmatched applies the unknown-value policy: lenient resolves to null,
// strict fails carrying the offending token and the valid-name set.
func unmatched[E comparable](d *Descriptor[E], got, code string, pol Policy, off int64) (*E, error) {
	if pol.UnknownAsNull {
		return nil, nil
	}
	names := d.Names()
	return nil, Issues{Issue{
		Path:    "/",
		Code:    code,
		Message: i18n.T(code, map[string]string{"type": d.name}),
		Hint:    "value not one of declared: " + strings.Join(names, ", "),
		Offset:  off,
		Params:  map[string]any{"got": got, "type": d.name, "allowed": names},
	}}
}

func constantAt[E comparable](d *Descriptor[E], ordinal int) *E {
	v := d.constants[ordinal].Value
	return &v
}
