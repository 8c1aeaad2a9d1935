package engine

import (
	"encoding/json"
	"fmt"
)

// Kind represents token kinds from a generic source.
type Kind int

const (
	KindBeginObject Kind = iota
	KindEndObject
	KindBeginArray
	KindEndArray
	KindKey
	KindString
	KindNumber
	KindBool
	KindNull
)

// Token represents a streaming token with approximate input offset.
type Token struct {
	Kind   Kind
	String string
	Number string
	Bool   bool
	Offset int64
}

// TokenSource is a minimal interface required by the engine.
type TokenSource interface {
	NextToken() (Token, error)
	Location() int64
}

// DecodeAnyFromSource reads one value from the token source and builds it as
// an "any" tree: objects become map[string]any, arrays []any, and numbers
// keep their text as json.Number. Container adapters use it to carry map
// values through untyped.
func DecodeAnyFromSource(src TokenSource) (any, error) {
	tok, err := src.NextToken()
	if err != nil {
		return nil, err
	}
	return buildValue(src, tok)
}

func buildValue(src TokenSource, tok Token) (any, error) {
	switch tok.Kind {
	case KindString:
		return tok.String, nil
	case KindNumber:
		return json.Number(tok.Number), nil
	case KindBool:
		return tok.Bool, nil
	case KindNull:
		return nil, nil
	case KindBeginObject:
		obj := make(map[string]any)
		for {
			kt, err := src.NextToken()
			if err != nil {
				return nil, err
			}
			if kt.Kind == KindEndObject {
				return obj, nil
			}
			if kt.Kind != KindKey {
				return nil, fmt.Errorf("engine: expected object key, got token kind %d", kt.Kind)
			}
			vt, err := src.NextToken()
			if err != nil {
				return nil, err
			}
			v, err := buildValue(src, vt)
			if err != nil {
				return nil, err
			}
			obj[kt.String] = v
		}
	case KindBeginArray:
		var arr []any
		for {
			et, err := src.NextToken()
			if err != nil {
				return nil, err
			}
			if et.Kind == KindEndArray {
				return arr, nil
			}
			v, err := buildValue(src, et)
			if err != nil {
				return nil, err
			}
			arr = append(arr, v)
		}
	default:
		return nil, fmt.Errorf("engine: unexpected token kind %d", tok.Kind)
	}
}
