package enumwire_test

import (
	enumwire "github.com/reoring/enumwire"
)

// Color is the plain fixture: declared names only, no projection.
type Color int

const (
	Red Color = iota
	Green
	Blue
)

func colorConstants() []enumwire.Constant[Color] {
	return []enumwire.Constant[Color]{
		{Name: "RED", Value: Red},
		{Name: "GREEN", Value: Green},
		{Name: "BLUE", Value: Blue},
	}
}

func colorDescriptor(flags enumwire.Flags) *enumwire.Descriptor[Color] {
	d, err := enumwire.NewDescriptor("Color", colorConstants(), flags)
	if err != nil {
		panic(err)
	}
	return d
}

// Size declares a custom wire-facing string through WireStringer.
type Size int

const (
	Small Size = iota
	Medium
	Large
)

func (s Size) WireString() string {
	switch s {
	case Small:
		return "s"
	case Medium:
		return "m"
	default:
		return "l"
	}
}

func sizeConstants() []enumwire.Constant[Size] {
	return []enumwire.Constant[Size]{
		{Name: "SMALL", Value: Small},
		{Name: "MEDIUM", Value: Medium},
		{Name: "LARGE", Value: Large},
	}
}

func sizeDescriptor(flags enumwire.Flags) *enumwire.Descriptor[Size] {
	d, err := enumwire.NewDescriptor("Size", sizeConstants(), flags)
	if err != nil {
		panic(err)
	}
	return d
}

// Grade carries a designated factory mapping alternative spellings.
type Grade int

const (
	GradeA Grade = iota
	GradeB
)

func gradeFactory(s string) (*Grade, error) {
	var g Grade
	switch s {
	case "gradeA":
		g = GradeA
	case "gradeB":
		g = GradeB
	default:
		return nil, nil
	}
	return &g, nil
}

func gradeConstants() []enumwire.Constant[Grade] {
	return []enumwire.Constant[Grade]{
		{Name: "A", Value: GradeA},
		{Name: "B", Value: GradeB},
	}
}

func gradeDescriptor(flags enumwire.Flags) *enumwire.Descriptor[Grade] {
	d, err := enumwire.NewDescriptor("Grade", gradeConstants(), flags,
		enumwire.WithFactory(gradeFactory))
	if err != nil {
		panic(err)
	}
	return d
}

func ptr[E comparable](v E) *E { return &v }
