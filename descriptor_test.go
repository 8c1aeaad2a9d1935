package enumwire_test

import (
	"testing"

	enumwire "github.com/reoring/enumwire"
)

func TestNewDescriptor_Basics(t *testing.T) {
	d := colorDescriptor(enumwire.Flags{})
	if d.Name() != "Color" || d.Len() != 3 {
		t.Fatalf("unexpected descriptor identity: name=%q len=%d", d.Name(), d.Len())
	}
	names := d.Names()
	if len(names) != 3 || names[0] != "RED" || names[2] != "BLUE" {
		t.Fatalf("names out of declaration order: %v", names)
	}
	if c, ok := d.Constant(1); !ok || c.Value != Green {
		t.Fatalf("Constant(1) = %v, %v", c, ok)
	}
	if _, ok := d.Constant(3); ok {
		t.Fatalf("Constant(3) should be out of range")
	}
	if ord, ok := d.Ordinal(Blue); !ok || ord != 2 {
		t.Fatalf("Ordinal(Blue) = %d, %v", ord, ok)
	}
}

func TestNewDescriptor_DuplicateNameFails(t *testing.T) {
	_, err := enumwire.NewDescriptor("Bad", []enumwire.Constant[Color]{
		{Name: "RED", Value: Red},
		{Name: "RED", Value: Green},
	}, enumwire.Flags{})
	if err == nil {
		t.Fatalf("expected build error for duplicate name")
	}
	iss, ok := enumwire.AsIssues(err)
	if !ok || iss[0].Code != enumwire.CodeEnumDescriptor {
		t.Fatalf("expected enum_descriptor issue, got %v", err)
	}
}

func TestNewDescriptor_DuplicateValueFails(t *testing.T) {
	_, err := enumwire.NewDescriptor("Bad", []enumwire.Constant[Color]{
		{Name: "RED", Value: Red},
		{Name: "ALSO_RED", Value: Red},
	}, enumwire.Flags{})
	if err == nil {
		t.Fatalf("expected build error for duplicate value")
	}
}

func TestNewDescriptor_DuplicateWireStringFails(t *testing.T) {
	_, err := enumwire.NewDescriptor("Color", colorConstants(), enumwire.Flags{},
		enumwire.WithWireString(func(Color) string { return "same" }))
	if err == nil {
		t.Fatalf("expected build error for colliding wire strings")
	}
	iss, _ := enumwire.AsIssues(err)
	if iss[0].Code != enumwire.CodeEnumDescriptor {
		t.Fatalf("expected enum_descriptor, got %v", iss)
	}
}

func TestNewDescriptor_NilFactoryFails(t *testing.T) {
	_, err := enumwire.NewDescriptor("Grade", gradeConstants(), enumwire.Flags{},
		enumwire.WithFactory[Grade](nil))
	if err == nil {
		t.Fatalf("expected build error for nil factory")
	}
}

func TestNewDescriptor_NilCodecFails(t *testing.T) {
	_, err := enumwire.NewDescriptor("Grade", gradeConstants(), enumwire.Flags{},
		enumwire.WithCodec[Grade](nil))
	if err == nil {
		t.Fatalf("expected build error for nil codec")
	}
}

// The read strategy is decided once at build time; lower-precedence metadata
// stays inert. Observable through Resolve: a factory-bearing descriptor does
// not match declared names, and a wire-string descriptor only matches
// projections when the read flag was set at build time.
func TestNewDescriptor_StrategyPrecedence(t *testing.T) {
	pol := enumwire.Policy{}

	// Factory outranks the name table.
	g := gradeDescriptor(enumwire.Flags{})
	if v, err := enumwire.Resolve(g, enumwire.StringToken("gradeA"), pol); err != nil || v == nil || *v != GradeA {
		t.Fatalf("factory resolve = %v, %v", v, err)
	}
	if _, err := enumwire.Resolve(g, enumwire.StringToken("A"), pol); err == nil {
		t.Fatalf("declared name should not match when a factory is designated")
	}

	// Wire-string projection participates only under the read flag.
	off := sizeDescriptor(enumwire.Flags{})
	if _, err := enumwire.Resolve(off, enumwire.StringToken("m"), pol); err == nil {
		t.Fatalf("projection should be ignored for reads when flag is off")
	}
	if v, err := enumwire.Resolve(off, enumwire.StringToken("MEDIUM"), pol); err != nil || *v != Medium {
		t.Fatalf("name resolve = %v, %v", v, err)
	}
	on := sizeDescriptor(enumwire.Flags{ReadEnumsUsingWireString: true})
	if v, err := enumwire.Resolve(on, enumwire.StringToken("m"), pol); err != nil || *v != Medium {
		t.Fatalf("projection resolve = %v, %v", v, err)
	}
	if _, err := enumwire.Resolve(on, enumwire.StringToken("MEDIUM"), pol); err == nil {
		t.Fatalf("declared name should not match under projection reads")
	}
}
