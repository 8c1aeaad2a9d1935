package enumwire_test

import (
	"testing"

	enumwire "github.com/reoring/enumwire"
)

func TestWrite_DeclaredName(t *testing.T) {
	d := colorDescriptor(enumwire.Flags{})
	tok, err := d.Write(Green)
	if err != nil {
		t.Fatalf("write err: %v", err)
	}
	if tok.Kind != enumwire.TokenString || tok.String != "GREEN" {
		t.Fatalf("unexpected token: %+v", tok)
	}
}

func TestWrite_OrdinalIndex(t *testing.T) {
	d := colorDescriptor(enumwire.Flags{WriteEnumsUsingIndex: true})
	tok, err := d.Write(Green)
	if err != nil {
		t.Fatalf("write err: %v", err)
	}
	if tok.Kind != enumwire.TokenNumber || tok.Number != "1" {
		t.Fatalf("unexpected token: %+v", tok)
	}

	// Index write round-trips through default ordinal reads.
	v, err := enumwire.Resolve(d, tok, enumwire.Policy{})
	if err != nil || v == nil || *v != Green {
		t.Fatalf("round-trip: v=%v err=%v", v, err)
	}
}

func TestWrite_WireStringProjection(t *testing.T) {
	// Projection drives writes even when reads stay on declared names.
	d := sizeDescriptor(enumwire.Flags{})
	tok, err := d.Write(Large)
	if err != nil {
		t.Fatalf("write err: %v", err)
	}
	if tok.Kind != enumwire.TokenString || tok.String != "l" {
		t.Fatalf("unexpected token: %+v", tok)
	}

	// The index flag outranks the projection.
	di := sizeDescriptor(enumwire.Flags{WriteEnumsUsingIndex: true})
	tok, err = di.Write(Large)
	if err != nil || tok.Number != "2" {
		t.Fatalf("index should win over projection: tok=%+v err=%v", tok, err)
	}
}

func TestWrite_UndeclaredValueFails(t *testing.T) {
	d := colorDescriptor(enumwire.Flags{})
	_, err := d.Write(Color(42))
	iss, ok := enumwire.AsIssues(err)
	if !ok || iss[0].Code != enumwire.CodeUnknownEnumValue {
		t.Fatalf("expected unknown_enum_value, got %v", err)
	}
}

func TestWrite_WireStringRoundTripWithReadFlag(t *testing.T) {
	d := sizeDescriptor(enumwire.Flags{ReadEnumsUsingWireString: true})
	for _, c := range sizeConstants() {
		tok, err := d.Write(c.Value)
		if err != nil {
			t.Fatalf("write %v: %v", c.Name, err)
		}
		v, err := enumwire.Resolve(d, tok, enumwire.Policy{})
		if err != nil || v == nil || *v != c.Value {
			t.Fatalf("round-trip %v: v=%v err=%v", c.Name, v, err)
		}
	}
}
