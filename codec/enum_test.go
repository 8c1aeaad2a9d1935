package codec_test

import (
	"testing"

	enumwire "github.com/reoring/enumwire"
	"github.com/reoring/enumwire/codec"
)

type Fruit int

const (
	Apple Fruit = iota
	Banana
)

func fruitDescriptor(t *testing.T, flags enumwire.Flags) *enumwire.Descriptor[Fruit] {
	t.Helper()
	d, err := enumwire.NewDescriptor("Fruit", []enumwire.Constant[Fruit]{
		{Name: "APPLE", Value: Apple},
		{Name: "BANANA", Value: Banana},
	}, flags)
	if err != nil {
		t.Fatalf("build err: %v", err)
	}
	return d
}

func TestEnum_DecodeEncode(t *testing.T) {
	c := codec.Enum(fruitDescriptor(t, enumwire.Flags{}))

	v, err := c.Decode(enumwire.StringToken("BANANA"), enumwire.Policy{})
	if err != nil || v == nil || *v != Banana {
		t.Fatalf("decode: v=%v err=%v", v, err)
	}
	tok, err := c.Encode(Banana)
	if err != nil || tok.String != "BANANA" {
		t.Fatalf("encode: tok=%+v err=%v", tok, err)
	}

	// Strict/lenient behavior flows through unchanged.
	if _, err := c.Decode(enumwire.StringToken("NO-SUCH-VALUE"), enumwire.Policy{}); err == nil {
		t.Fatalf("expected strict failure")
	}
	if v, err := c.Decode(enumwire.StringToken("NO-SUCH-VALUE"), enumwire.Policy{UnknownAsNull: true}); v != nil || err != nil {
		t.Fatalf("lenient: v=%v err=%v", v, err)
	}
}

func TestFixed_IgnoresInput(t *testing.T) {
	c := codec.Fixed(Apple, "APPLE")
	for _, tok := range []enumwire.Token{
		enumwire.StringToken("BANANA"),
		enumwire.NumberToken("7"),
	} {
		v, err := c.Decode(tok, enumwire.Policy{})
		if err != nil || v == nil || *v != Apple {
			t.Fatalf("decode %+v: v=%v err=%v", tok, v, err)
		}
	}
	tok, err := c.Encode(Banana)
	if err != nil || tok.String != "APPLE" {
		t.Fatalf("encode: tok=%+v err=%v", tok, err)
	}
}
