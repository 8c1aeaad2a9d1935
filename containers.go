package enumwire

import (
	"strconv"

	"github.com/reoring/enumwire/i18n"
	eng "github.com/reoring/enumwire/internal/engine"
)

// DecodeSet decodes an array of scalar tokens into a set of constants.
// Elements that resolve to null under the lenient policy are skipped, never
// inserted: a set of enum constants has no meaningful null member. Any
// strict-mode resolution failure aborts the whole decode.
func DecodeSet[E comparable](d *Descriptor[E], src Source, pol Policy) (map[E]struct{}, error) {
	out := make(map[E]struct{})
	err := decodeElements(d, src, pol, func(v *E) {
		if v != nil {
			out[*v] = struct{}{}
		}
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// DecodeArray decodes an array of scalar tokens into an ordered sequence,
// preserving duplicates and null positions (nil entries).
func DecodeArray[E comparable](d *Descriptor[E], src Source, pol Policy) ([]*E, error) {
	out := []*E{}
	err := decodeElements(d, src, pol, func(v *E) { out = append(out, v) })
	if err != nil {
		return nil, err
	}
	return out, nil
}

func decodeElements[E comparable](d *Descriptor[E], src Source, pol Policy, emit func(*E)) error {
	tok, err := src.NextToken()
	if err != nil {
		return Issues{Issue{Path: "/", Code: CodeParseError, Message: err.Error(), Cause: err, Offset: src.Location()}}
	}
	if tok.Kind != _tokenBeginArray {
		return Issues{Issue{Path: "/", Code: CodeInvalidType, Message: i18n.T(CodeInvalidType, nil), Hint: "expected array", Offset: tok.Offset}}
	}
	for i := 0; ; i++ {
		t, err := src.NextToken()
		if err != nil {
			return Issues{Issue{Path: "/", Code: CodeParseError, Message: err.Error(), Cause: err, Offset: src.Location()}}
		}
		if t.Kind == _tokenEndArray {
			return nil
		}
		v, rerr := Resolve(d, t, pol)
		if rerr != nil {
			return issuesAt(rerr, "/"+strconv.Itoa(i))
		}
		emit(v)
	}
}

// EnumMap is the result of decoding a mapping keyed by an enum type. Known
// keys keep insertion order; unmatched keys resolved to null under the
// lenient policy land in a single null-key bucket (last write wins),
// distinguishing "everything unrecognized" from the known entries.
type EnumMap[E comparable] struct {
	order   []E
	vals    map[E]any
	nullVal any
	hasNull bool
}

// Get returns the value stored under a known key.
func (m *EnumMap[E]) Get(k E) (any, bool) {
	v, ok := m.vals[k]
	return v, ok
}

// Null returns the null-key bucket.
func (m *EnumMap[E]) Null() (any, bool) { return m.nullVal, m.hasNull }

// Len counts entries including the null bucket when present.
func (m *EnumMap[E]) Len() int {
	n := len(m.vals)
	if m.hasNull {
		n++
	}
	return n
}

// Keys returns the known keys in insertion order. The slice is a copy.
func (m *EnumMap[E]) Keys() []E {
	out := make([]E, len(m.order))
	copy(out, m.order)
	return out
}

func (m *EnumMap[E]) put(k E, v any) {
	if m.vals == nil {
		m.vals = make(map[E]any)
	}
	if _, seen := m.vals[k]; !seen {
		m.order = append(m.order, k)
	}
	m.vals[k] = v
}

func (m *EnumMap[E]) putNull(v any) {
	m.nullVal = v
	m.hasNull = true
}

// DecodeMap decodes an object whose keys are enum tokens. Keys pass through
// the same resolver as scalars; under the lenient policy an unmatched key
// becomes the null-key bucket, which is inserted (unlike the set case).
// Under the strict policy an unmatched key aborts the whole decode with
// CodeUnknownEnumKey. Values are decoded as plain any subtrees.
func DecodeMap[E comparable](d *Descriptor[E], src Source, pol Policy) (*EnumMap[E], error) {
	engSrc := EngineTokenSource(src)
	tok, err := src.NextToken()
	if err != nil {
		return nil, Issues{Issue{Path: "/", Code: CodeParseError, Message: err.Error(), Cause: err, Offset: src.Location()}}
	}
	if tok.Kind != _tokenBeginObject {
		return nil, Issues{Issue{Path: "/", Code: CodeInvalidType, Message: i18n.T(CodeInvalidType, nil), Hint: "expected object", Offset: tok.Offset}}
	}
	out := &EnumMap[E]{}
	for {
		t, err := src.NextToken()
		if err != nil {
			return nil, Issues{Issue{Path: "/", Code: CodeParseError, Message: err.Error(), Cause: err, Offset: src.Location()}}
		}
		if t.Kind == _tokenEndObject {
			return out, nil
		}
		if t.Kind != _tokenKey {
			return nil, Issues{Issue{Path: "/", Code: CodeParseError, Message: "unexpected token in object", Offset: t.Offset}}
		}
		k, kerr := resolveToken(d, t, pol, CodeUnknownEnumKey)
		if kerr != nil {
			return nil, issuesAt(kerr, "/"+t.String)
		}
		val, verr := eng.DecodeAnyFromSource(engSrc)
		if verr != nil {
			return nil, Issues{Issue{Path: "/" + t.String, Code: CodeParseError, Message: verr.Error(), Cause: verr, Offset: src.Location()}}
		}
		if k == nil {
			out.putNull(val)
			continue
		}
		out.put(*k, val)
	}
}

// EncodeSet emits one token per member in ordinal order, so output is
// deterministic regardless of map iteration.
func EncodeSet[E comparable](d *Descriptor[E], set map[E]struct{}) ([]Token, error) {
	out := make([]Token, 0, len(set))
	for _, c := range d.constants {
		if _, ok := set[c.Value]; !ok {
			continue
		}
		t, err := d.Write(c.Value)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, nil
}

// EncodeArray emits one token per element preserving order; nil elements pass
// through untouched as null tokens.
func EncodeArray[E comparable](d *Descriptor[E], vals []*E) ([]Token, error) {
	out := make([]Token, 0, len(vals))
	for i, v := range vals {
		if v == nil {
			out = append(out, NullToken())
			continue
		}
		t, err := d.Write(*v)
		if err != nil {
			return nil, issuesAt(err, "/"+strconv.Itoa(i))
		}
		out = append(out, t)
	}
	return out, nil
}

// EncodeKeys emits the key tokens in insertion order, the null bucket last.
func (m *EnumMap[E]) EncodeKeys(d *Descriptor[E]) ([]Token, error) {
	out := make([]Token, 0, m.Len())
	for _, k := range m.order {
		t, err := d.Write(k)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	if m.hasNull {
		out = append(out, NullToken())
	}
	return out, nil
}

// issuesAt rebases issue paths under base, wrapping foreign errors.
func issuesAt(err error, base string) Issues {
	if iss, ok := AsIssues(err); ok {
		out := make(Issues, 0, len(iss))
		for _, it := range iss {
			p := it.Path
			if p == "" || p == "/" {
				p = base
			} else if p[0] == '/' {
				p = base + p
			} else {
				p = base + "/" + p
			}
			it.Path = p
			out = append(out, it)
		}
		return out
	}
	return Issues{Issue{Path: base, Code: CodeParseError, Message: err.Error(), Cause: err, Offset: -1}}
}
